package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"items-api/internal/item"
	pkgErrors "items-api/pkg/errors"
)

var (
	errBlankName = errors.New("name must not be blank")
	errInvalidID = errors.New("id must be an integer")
)

// fieldError describes one rejected field of a request.
type fieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

// fieldRuleError is a request-level rule violation on a single field.
type fieldRuleError struct {
	fieldError
}

func (e fieldRuleError) Error() string {
	return e.Field + ": " + e.Rule
}

// bindError translates a decode or validation failure into a 400.
func (h *handler) bindError(err error) *pkgErrors.HTTPError {
	invalid := pkgErrors.NewHTTPError(http.StatusBadRequest, item.ErrInvalidPayload.Error())

	var (
		ve      validator.ValidationErrors
		ruleErr fieldRuleError
		typeErr *json.UnmarshalTypeError
		syntax  *json.SyntaxError
	)
	switch {
	case errors.As(err, &ve):
		details := make([]fieldError, 0, len(ve))
		for _, fe := range ve {
			details = append(details, fieldError{Field: fe.Field(), Rule: fe.Tag(), Param: fe.Param()})
		}
		return invalid.WithDetails(details)
	case errors.As(err, &ruleErr):
		return invalid.WithDetails([]fieldError{ruleErr.fieldError})
	case errors.Is(err, errBlankName):
		return invalid.WithDetails([]fieldError{{Field: "name", Rule: "not_blank"}})
	case errors.Is(err, errInvalidID):
		return invalid.WithDetails([]fieldError{{Field: "id", Rule: "integer"}})
	case errors.As(err, &typeErr):
		return invalid.WithDetails([]fieldError{{Field: typeErr.Field, Rule: "type", Param: typeErr.Type.String()}})
	case errors.As(err, &syntax):
		return pkgErrors.ErrBadRequest.WithDetails([]fieldError{{Field: "body", Rule: "json"}})
	default:
		return pkgErrors.ErrBadRequest
	}
}

// mapError translates use-case errors into HTTP errors from pkg/errors.
// Anything unrecognised becomes a 500.
func (h *handler) mapError(err error) *pkgErrors.HTTPError {
	switch {
	case errors.Is(err, item.ErrInvalidPayload):
		return h.bindError(errBlankName)
	case errors.Is(err, item.ErrItemNotFound):
		return pkgErrors.ErrNotFound
	case errors.Is(err, item.ErrUnavailable):
		return pkgErrors.ErrServiceUnavailable
	default:
		return pkgErrors.ErrInternalServerError
	}
}

var registerTagNameOnce sync.Once

// useJSONFieldNames makes validation errors report json field names.
func useJSONFieldNames() {
	registerTagNameOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
}
