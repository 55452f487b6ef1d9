// Package render turns items into the table shown on the page. Everything here
// is pure: the same input always yields the same Table.
package render

import (
	"math"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ghuser/orcamento/services/item/domain/models"
)

// Row is one rendered line of the table.
type Row struct {
	ID        string
	Name      string
	Quantity  string
	UnitValue string
	LineTotal string
}

// Table is the rendered list plus its grand total.
type Table struct {
	Rows       []Row
	GrandTotal string
	Total      float64
}

// BuildTable renders items in the given order.
func BuildTable(items []*models.Item) Table {
	rows := make([]Row, 0, len(items))
	var total float64
	for _, it := range items {
		line := it.LineTotal()
		rows = append(rows, Row{
			ID:        it.ID.String(),
			Name:      it.Name.String(),
			Quantity:  strconv.FormatFloat(it.Quantity, 'f', -1, 64),
			UnitValue: FormatCurrency(it.UnitValue),
			LineTotal: FormatCurrency(line),
		})
		total += line
	}
	return Table{Rows: rows, GrandTotal: FormatCurrency(total), Total: total}
}

// FormatCurrency renders v as Brazilian reais, e.g. "R$ 1.234,50".
// nil, non-numeric, NaN and infinite values render as FormatCurrency(0).
func FormatCurrency(v any) string {
	p := message.NewPrinter(language.BrazilianPortuguese)
	return p.Sprintf("R$ %.2f", toAmount(v))
}

func toAmount(v any) float64 {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int32:
		f = float64(n)
	case int64:
		f = float64(n)
	case uint:
		f = float64(n)
	case uint32:
		f = float64(n)
	case uint64:
		f = float64(n)
	default:
		return 0
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
