package http

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("isbn", validISBN)
	return v
}

// validISBN accepts ISBN-10 (nine digits plus a digit or X check
// character) and ISBN-13 (thirteen digits), ignoring hyphens and spaces.
func validISBN(fl validator.FieldLevel) bool {
	var chars []rune
	for _, r := range fl.Field().String() {
		if r == '-' || r == ' ' {
			continue
		}
		chars = append(chars, r)
	}

	switch len(chars) {
	case 10:
		for i, r := range chars {
			if unicode.IsDigit(r) {
				continue
			}
			if i == 9 && r == 'X' {
				continue
			}
			return false
		}
		return true
	case 13:
		for _, r := range chars {
			if !unicode.IsDigit(r) {
				return false
			}
		}
		return true
	}
	return false
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	case "isbn":
		return fmt.Sprintf("%s must be a valid ISBN (10 or 13 digits)", fe.Field())
	case "gte", "lte":
		return fmt.Sprintf("%s must be between %s", fe.Field(), fe.Param())
	}
	return fmt.Sprintf("%s is invalid", fe.Field())
}

// ValidateStruct runs the struct validation tags and converts failures
// into the response detail shape, with json-style field names.
func ValidateStruct(s interface{}) []ValidationError {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	fieldErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []ValidationError{{Field: "request", Message: "invalid request"}}
	}

	out := make([]ValidationError, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		name := fe.Field()
		out = append(out, ValidationError{
			Field:   strings.ToLower(name[:1]) + name[1:],
			Message: validationMessage(fe),
		})
	}
	return out
}
