// Package item embeds the goose migrations for the item schema.
package item

import "embed"

// FS holds every migration file of the item schema.
//
//go:embed *.sql
var FS embed.FS
