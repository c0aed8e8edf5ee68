// Package validators holds the shape checks shared by every endpoint.
// These are deliberately syntactic: a date like 2024-13-99 passes the
// date check, because only the pattern is enforced.
package validators

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var (
	// Indian mobile format: exactly 10 digits, first digit 6-9.
	phoneRX = regexp.MustCompile(`^[6-9][0-9]{9}$`)

	// Lightweight local-part@domain pattern, not full RFC 5322.
	emailRX = regexp.MustCompile(`^\w+([.-]?\w+)*@\w+([.-]?\w+)*(\.\w{2,3})+$`)

	// YYYY-MM-DD or YYYY/MM/DD, digits only in each segment.
	dateRX = regexp.MustCompile(`^[0-9]{4}[-/][0-9]{2}[-/][0-9]{2}$`)
)

var userTitles = []string{"Mr", "Mrs", "Miss"}

// IsPresent reports whether value contains anything besides whitespace.
func IsPresent(value string) bool {
	return strings.TrimSpace(value) != ""
}

// IsValidUserTitle is a membership test against Mr/Mrs/Miss.
func IsValidUserTitle(title string) bool {
	for _, t := range userTitles {
		if title == t {
			return true
		}
	}
	return false
}

func IsValidPhone(phone string) bool {
	return phoneRX.MatchString(phone)
}

func IsValidEmail(email string) bool {
	return emailRX.MatchString(email)
}

func IsValidDate(date string) bool {
	return dateRX.MatchString(date)
}

// IsValidPassword checks length only; content is unrestricted.
func IsValidPassword(password string) bool {
	return len(password) >= 8 && len(password) <= 15
}

func IsValidRating(rating int) bool {
	return rating >= 1 && rating <= 5
}

// IsValidID reports whether value is a well-formed record identifier.
func IsValidID(value string) bool {
	_, err := uuid.Parse(value)
	return err == nil
}
