package controllers

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/go-playground/validator"
)

var validate = validator.New()

// Indian mobile number, optionally with the +91 prefix and the canonical
// space between the two five-digit halves.
var phonePattern = regexp.MustCompile(`^(\+91 )?[6-9][0-9]{4} ?[0-9]{5}$`)

var nonDigits = regexp.MustCompile(`[^0-9]`)

// IsValidEmail checks the address shape only; no deliverability probing.
func IsValidEmail(email string) bool {
	return validate.Var(email, "required,email") == nil
}

// IsStrongPassword requires at least 8 characters with an uppercase letter,
// a lowercase letter and a digit.
func IsStrongPassword(password string) bool {
	if len(password) < 8 {
		return false
	}
	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	return hasUpper && hasLower && hasDigit
}

// FormatPhone canonicalizes an Indian mobile number to "+91 XXXXX XXXXX".
// Incomplete input is returned untouched so validation can reject it.
func FormatPhone(input string) string {
	digits := nonDigits.ReplaceAllString(input, "")

	if strings.HasPrefix(digits, "91") && len(digits) > 10 {
		digits = digits[len(digits)-10:]
	}

	if len(digits) == 10 {
		return "+91 " + digits[:5] + " " + digits[5:]
	}
	return input
}

// IsValidPhone reports whether the (canonicalized) number is acceptable.
func IsValidPhone(phone string) bool {
	return phonePattern.MatchString(phone)
}
