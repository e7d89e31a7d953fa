package http

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Reusable error payload
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
type ErrorResponse struct {
	Error   string       `json:"error"`
	Details []FieldError `json:"details,omitempty"`
}

var rePhone11 = regexp.MustCompile(`^0\d{10}$`)

type CustomValidator struct{ v *validator.Validate }

func NewValidator() *CustomValidator {
	v := validator.New()

	// normalized local phone number: 0 + 10 digits
	_ = v.RegisterValidation("phone11", func(fl validator.FieldLevel) bool {
		return rePhone11.MatchString(fl.Field().String())
	})
	// uploaded file content must arrive as a data URL
	_ = v.RegisterValidation("dataurl", func(fl validator.FieldLevel) bool {
		return strings.HasPrefix(fl.Field().String(), "data:")
	})
	// share platform: sms | whatsapp | telegram
	_ = v.RegisterValidation("platform", func(fl validator.FieldLevel) bool {
		switch fl.Field().String() {
		case "sms", "whatsapp", "telegram":
			return true
		}
		return false
	})

	return &CustomValidator{v: v}
}

func (cv *CustomValidator) Validate(i any) error { return cv.v.Struct(i) }

// Map validator.ValidationErrors → []FieldError with readable messages.
func ToFieldErrors(err error) []FieldError {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "_", Message: err.Error()}}
	}
	out := make([]FieldError, 0, len(ve))
	for _, e := range ve {
		field := e.Field()
		switch e.Tag() {
		case "required":
			out = append(out, FieldError{Field: field, Message: "is required"})
		case "phone11":
			out = append(out, FieldError{Field: field, Message: "must be a normalized 11-digit phone number"})
		case "dataurl":
			out = append(out, FieldError{Field: field, Message: "must be a data URL"})
		case "platform":
			out = append(out, FieldError{Field: field, Message: "must be one of sms, whatsapp, telegram"})
		case "gt":
			out = append(out, FieldError{Field: field, Message: "must be greater than " + e.Param()})
		case "oneof":
			out = append(out, FieldError{Field: field, Message: "must be one of " + e.Param()})
		default:
			out = append(out, FieldError{Field: field, Message: e.Tag() + " validation failed"})
		}
	}
	return out
}
