// Package errhttp maps domain sentinel errors to HTTP status codes and bodies.
// Add a case to WriteError for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/ghuser/orcamento/pkg/httpx"
	pkgvalidator "github.com/ghuser/orcamento/pkg/validator"
	itemdomain "github.com/ghuser/orcamento/services/item/domain"
)

// Fallback is the response written for errors no domain case recognizes.
// The error text is included under "error".
type Fallback struct {
	Status  int
	Message string
}

// WriteError maps err to an HTTP status code and writes a JSON error response.
// Uses errors.Is/As so wrapped sentinel errors are matched correctly.
func WriteError(w http.ResponseWriter, err error, fb Fallback) {
	var verr *itemdomain.ValidationError
	switch {
	case errors.As(err, &verr):
		httpx.JSON(w, http.StatusBadRequest, httpx.ErrorBody{
			Message: pkgvalidator.ValidationMessage,
			Errors:  verr.Fields,
		})
	case errors.Is(err, itemdomain.ErrInvalidItemID):
		httpx.JSONError(w, http.StatusBadRequest, "Invalid ID")
	case errors.Is(err, itemdomain.ErrItemNotFound):
		httpx.JSONError(w, http.StatusNotFound, "Item not found")
	default:
		httpx.JSONErrorCause(w, fb.Status, fb.Message, err)
	}
}
