package render

import (
	"math"
	"strconv"
	"strings"
)

// FormErrorMessage is shown whenever the add form is rejected.
const FormErrorMessage = "Por favor, preencha todos os campos corretamente. Quantidade deve ser maior que 0 e valor não pode ser negativo."

// FormError reports an add form the page refuses to submit.
type FormError struct {
	Message string
}

func (e *FormError) Error() string { return e.Message }

// ItemForm is a parsed add form.
type ItemForm struct {
	Name      string
	Quantity  int
	UnitValue float64
}

// ParseItemForm applies the page's input rules: a non-blank name, a positive
// whole quantity, and a non-negative unit value that may use a comma as the
// decimal separator.
func ParseItemForm(name, quantity, unitValue string) (ItemForm, error) {
	name = strings.TrimSpace(name)

	qty, qErr := strconv.Atoi(strings.TrimSpace(quantity))
	value, vErr := parseDecimal(unitValue)

	if name == "" || qErr != nil || qty <= 0 || vErr != nil || value < 0 {
		return ItemForm{}, &FormError{Message: FormErrorMessage}
	}
	return ItemForm{Name: name, Quantity: qty, UnitValue: value}, nil
}

// parseDecimal accepts "3.5" and "3,5"; only the first comma is treated as
// the decimal separator.
func parseDecimal(s string) (float64, error) {
	s = strings.Replace(strings.TrimSpace(s), ",", ".", 1)
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, strconv.ErrSyntax
	}
	return f, nil
}
