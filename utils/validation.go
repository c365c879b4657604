package utils

import (
	"errors"
	"regexp"
	"strings"
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateEmail checks the basic local@domain.tld shape
func ValidateEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// ValidateRegistration applies the registration rules: email shape, minimum
// password length, matching confirmation.
func ValidateRegistration(email, password, confirmPassword string) error {
	if !ValidateEmail(email) {
		return errors.New("invalid email address")
	}
	if len(password) < 6 {
		return errors.New("password must be at least 6 characters")
	}
	if password != confirmPassword {
		return errors.New("passwords do not match")
	}
	return nil
}

// ValidatePhone checks if a phone number is in a valid international format
func ValidatePhone(phone string) bool {
	cleaned := strings.ReplaceAll(phone, " ", "")
	cleaned = strings.ReplaceAll(cleaned, "-", "")
	cleaned = strings.ReplaceAll(cleaned, "(", "")
	cleaned = strings.ReplaceAll(cleaned, ")", "")

	regex := `^\+?[1-9]\d{1,14}$`
	match, _ := regexp.MatchString(regex, cleaned)
	return match
}
