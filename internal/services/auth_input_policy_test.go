package services

import (
	"errors"
	"testing"
)

func TestNormalizeEmail(t *testing.T) {
	testCases := []struct {
		raw  string
		want string
	}{
		{"Ada@Example.COM", "ada@example.com"},
		{"  spaced@example.com  ", "spaced@example.com"},
		{"plain@example.com", "plain@example.com"},
	}
	for _, testCase := range testCases {
		if got := NormalizeEmail(testCase.raw); got != testCase.want {
			t.Errorf("NormalizeEmail(%q) = %q, want %q", testCase.raw, got, testCase.want)
		}
	}
}

func TestValidateRegistrationInput(t *testing.T) {
	valid := RegistrationInput{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", Password: "p4ssword"}
	if err := ValidateRegistrationInput(valid); err != nil {
		t.Fatalf("valid input rejected: %v", err)
	}

	testCases := []struct {
		name    string
		mutate  func(*RegistrationInput)
		wantErr error
	}{
		{"missing first name", func(input *RegistrationInput) { input.FirstName = " " }, ErrMissingFields},
		{"missing last name", func(input *RegistrationInput) { input.LastName = "" }, ErrMissingFields},
		{"missing email", func(input *RegistrationInput) { input.Email = "" }, ErrMissingFields},
		{"missing password", func(input *RegistrationInput) { input.Password = "" }, ErrMissingFields},
		{"malformed email", func(input *RegistrationInput) { input.Email = "not-an-email" }, ErrInvalidEmail},
	}
	for _, testCase := range testCases {
		input := valid
		testCase.mutate(&input)
		if err := ValidateRegistrationInput(input); !errors.Is(err, testCase.wantErr) {
			t.Errorf("%s: got %v, want %v", testCase.name, err, testCase.wantErr)
		}
	}
}
