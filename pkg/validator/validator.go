package validator

import (
	"encoding/json"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/ghuser/orcamento/pkg/httpx"
)

// ValidationMessage is the top-level message of every field validation response.
const ValidationMessage = "Validation error"

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]

		// ignore unexported or explicitly ignored
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
}

// Validate runs struct-level validation using go-playground/validator tags.
func Validate(s any) error {
	return validate.Struct(s)
}

// FormatValidationErrors converts validator.ValidationErrors into a map of
// field name → human-readable message.
func FormatValidationErrors(err error) map[string]string {
	errs := make(map[string]string)
	var ve validator.ValidationErrors
	if !isValidationErrors(err, &ve) {
		return errs
	}
	for _, e := range ve {
		errs[e.Field()] = formatFieldError(e)
	}
	return errs
}

func isValidationErrors(err error, target *validator.ValidationErrors) bool {
	ve, ok := err.(validator.ValidationErrors)
	if ok {
		*target = ve
	}
	return ok
}

func formatFieldError(e validator.FieldError) string {
	f := e.Field()
	switch e.Tag() {
	case "required":
		return f + " is required"
	case "uuid", "uuid4":
		return f + " must be a valid UUID"
	case "min":
		return fmt.Sprintf("%s must be at least %s", f, e.Param())
	case "max":
		return fmt.Sprintf("%s must not exceed %s", f, e.Param())
	case "numeric":
		return f + " must be a numeric value"
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", f, e.Param())
	case "lte":
		return fmt.Sprintf("%s must be less than or equal to %s", f, e.Param())
	default:
		return fmt.Sprintf("%s failed on '%s'", f, e.Tag())
	}
}

// ValidateRequest decodes the JSON request body into T, validates it, and
// writes a 400 response if either step fails:
//
//	undecodable body → {"message": failMessage, "error": "<decode error>"}
//	tag violations   → {"message": "Validation error", "errors": {field: message}}
//
// Returns (parsedStruct, true) on success or (nil, false) on failure.
func ValidateRequest[T any](w http.ResponseWriter, r *http.Request, failMessage string) (*T, bool) {
	var req T
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONErrorCause(w, http.StatusBadRequest, failMessage, err)
		return nil, false
	}
	if err := Validate(&req); err != nil {
		httpx.JSON(w, http.StatusBadRequest, httpx.ErrorBody{
			Message: ValidationMessage,
			Errors:  FormatValidationErrors(err),
		})
		return nil, false
	}
	return &req, true
}
