package models

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// ItemName is a value object representing a valid item name.
// Surrounding whitespace is trimmed; the result holds 1 to 255 characters.
type ItemName string

const (
	minItemNameLength = 1
	maxItemNameLength = 255
)

// MaxItemNameLength is the longest name accepted, counted in characters.
const MaxItemNameLength = maxItemNameLength

// NewItemName trims s and constructs a valid ItemName, or returns an error if
// length constraints are violated.
func NewItemName(s string) (ItemName, error) {
	s = strings.TrimSpace(s)
	n := utf8.RuneCountInString(s)
	if n < minItemNameLength {
		return "", fmt.Errorf("item name must be at least %d character", minItemNameLength)
	}
	if n > maxItemNameLength {
		return "", fmt.Errorf("item name must not exceed %d characters", maxItemNameLength)
	}
	return ItemName(s), nil
}

// String returns the underlying string value.
func (n ItemName) String() string {
	return string(n)
}
