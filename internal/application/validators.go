package application

import (
	"fmt"
	"regexp"
	"strings"
)

// Validator contains input validation helpers for the booking flow.
type Validator struct{}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
var phoneRegex = regexp.MustCompile(`^\+?\d{7,15}$`)

// ValidateEmail checks the format of an email address.
func (v *Validator) ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email is required")
	}
	if !emailRegex.MatchString(email) {
		return fmt.Errorf("email %q is not a valid address", email)
	}
	return nil
}

// ValidatePhone checks the format of a phone number. Spaces, dashes and
// parentheses are stripped before checking.
func (v *Validator) ValidatePhone(phone string) error {
	if phone == "" {
		return fmt.Errorf("phone is required")
	}

	cleanPhone := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "").Replace(phone)
	if !phoneRegex.MatchString(cleanPhone) {
		return fmt.Errorf("phone %q must have 7 to 15 digits", phone)
	}
	return nil
}
