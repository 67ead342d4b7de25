package http

import (
	"strings"
	"testing"
)

type validatedInput struct {
	Email    string `validate:"required,email"`
	Name     string `validate:"required,max=100"`
	Password string `validate:"required,min=6"`
	ISBN     string `validate:"omitempty,isbn"`
	Copies   int    `validate:"gte=0"`
}

func TestValidateStruct_ValidInput(t *testing.T) {
	s := validatedInput{
		Email:    "reader@example.com",
		Name:     "Test Reader",
		Password: "secret1",
		ISBN:     "9780123456789",
		Copies:   3,
	}

	errors := ValidateStruct(s)
	if len(errors) != 0 {
		t.Errorf("Expected no validation errors, got %d", len(errors))
	}
}

func TestValidateStruct_RequiredFields(t *testing.T) {
	errors := ValidateStruct(validatedInput{})
	if len(errors) == 0 {
		t.Fatal("Expected validation errors for required fields")
	}

	hasEmailError := false
	hasNameError := false
	for _, err := range errors {
		if err.Field == "email" && strings.Contains(err.Message, "required") {
			hasEmailError = true
		}
		if err.Field == "name" && strings.Contains(err.Message, "required") {
			hasNameError = true
		}
	}

	if !hasEmailError {
		t.Error("Expected email required error")
	}
	if !hasNameError {
		t.Error("Expected name required error")
	}
}

func TestValidateStruct_FieldNamesAreLowerCamel(t *testing.T) {
	errors := ValidateStruct(validatedInput{Email: "not-an-email", Name: "x", Password: "secret1"})
	for _, err := range errors {
		if err.Field == "" || err.Field[0] >= 'A' && err.Field[0] <= 'Z' {
			t.Errorf("Expected lowerCamel field name, got %q", err.Field)
		}
	}
}

func TestValidISBN(t *testing.T) {
	tests := []struct {
		name  string
		isbn  string
		valid bool
	}{
		{"isbn-13", "9780123456789", true},
		{"isbn-13 with hyphens", "978-0-12-345678-9", true},
		{"isbn-10", "0123456789", true},
		{"isbn-10 with X check char", "012345678X", true},
		{"isbn-10 with spaces", "0 12345 678 X", true},
		{"too short", "12345", false},
		{"letters", "not-an-isbn", false},
		{"X in the wrong position", "01234X6789", false},
		{"fourteen digits", "97801234567890", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errors := ValidateStruct(validatedInput{
				Email:    "reader@example.com",
				Name:     "Test Reader",
				Password: "secret1",
				ISBN:     tt.isbn,
			})
			gotValid := len(errors) == 0
			if gotValid != tt.valid {
				t.Errorf("ISBN %q: expected valid=%v, got errors %v", tt.isbn, tt.valid, errors)
			}
		})
	}
}
