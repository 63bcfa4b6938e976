package services

import (
	"errors"
	"net/mail"
	"strings"
)

var (
	ErrMissingFields = errors.New("all fields are required")
	ErrInvalidEmail  = errors.New("invalid email format")
)

type RegistrationInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

func NormalizeEmail(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

func ValidateRegistrationInput(input RegistrationInput) error {
	if strings.TrimSpace(input.FirstName) == "" ||
		strings.TrimSpace(input.LastName) == "" ||
		strings.TrimSpace(input.Email) == "" ||
		input.Password == "" {
		return ErrMissingFields
	}
	if _, err := mail.ParseAddress(NormalizeEmail(input.Email)); err != nil {
		return ErrInvalidEmail
	}
	return nil
}
