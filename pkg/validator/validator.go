package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/metazeka/backend/pkg/httpx"
)

// MessageInvalidJSON is returned when a request body is not parseable JSON.
const MessageInvalidJSON = "Invalid JSON"

var validate *validator.Validate

var errTrailingData = errors.New("unexpected data after JSON body")

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
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
	if !errors.As(err, &ve) {
		return errs
	}
	for _, e := range ve {
		errs[e.Field()] = formatFieldError(e)
	}
	return errs
}

func formatFieldError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "This field is required"
	case "min":
		return fmt.Sprintf("Minimum length is %s", e.Param())
	case "max":
		return fmt.Sprintf("Maximum length is %s", e.Param())
	case "gte":
		return fmt.Sprintf("Must be greater than or equal to %s", e.Param())
	case "lte":
		return fmt.Sprintf("Must be less than or equal to %s", e.Param())
	default:
		return fmt.Sprintf("Validation failed on '%s'", e.Tag())
	}
}

type validationErrorResponse struct {
	OK     bool              `json:"ok"`
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// Decode reads the JSON body into T. An empty body decodes to the zero T so
// that required-field checks, not the parser, report what is missing. Anything
// after the first JSON value is an error.
func Decode[T any](r *http.Request) (*T, error) {
	var req T
	if r.Body == nil {
		return &req, nil
	}
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(&req); err != nil {
		if errors.Is(err, io.EOF) {
			return &req, nil
		}
		return nil, err
	}
	// The body must hold exactly one JSON value.
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, errTrailingData
	}
	return &req, nil
}

// ValidateRequest decodes the JSON body into T and validates it. On failure it
// writes a 400 error envelope and returns (nil, false); invalidMessage is the
// error text used when validation tags fail.
func ValidateRequest[T any](w http.ResponseWriter, r *http.Request, invalidMessage string) (*T, bool) {
	req, ok := DecodeRequest[T](w, r)
	if !ok {
		return nil, false
	}
	if err := Validate(req); err != nil {
		httpx.JSON(w, http.StatusBadRequest, validationErrorResponse{
			OK:     false,
			Error:  invalidMessage,
			Fields: FormatValidationErrors(err),
		})
		return nil, false
	}
	return req, true
}

// DecodeRequest is ValidateRequest without the tag checks, for bodies whose
// rules live in the domain layer.
func DecodeRequest[T any](w http.ResponseWriter, r *http.Request) (*T, bool) {
	req, err := Decode[T](r)
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, decodeErrorMessage(err))
		return nil, false
	}
	return req, true
}

func decodeErrorMessage(err error) string {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return fmt.Sprintf("%s must be a %s", typeErr.Field, typeErr.Type)
	}
	return MessageInvalidJSON
}
