// File: /utils/validators.go
package utils

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

var (
	emailRegex    = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_]{3,20}$`)
)

func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// IsValidUsername allows 3-20 letters, digits, and underscores.
func IsValidUsername(username string) bool {
	return usernameRegex.MatchString(username)
}

// IsValidPassword requires at least 8 characters with an uppercase letter,
// a lowercase letter, and a digit.
func IsValidPassword(password string) bool {
	if len(password) < 8 {
		return false
	}

	var hasUpper, hasLower, hasNumber bool
	for _, char := range password {
		switch {
		case unicode.IsUpper(char):
			hasUpper = true
		case unicode.IsLower(char):
			hasLower = true
		case unicode.IsNumber(char):
			hasNumber = true
		}
	}

	return hasUpper && hasLower && hasNumber
}

func IsValidLatitude(lat float64) bool {
	return lat >= -90 && lat <= 90
}

func IsValidLongitude(lng float64) bool {
	return lng >= -180 && lng <= 180
}

// ParseCoordinate parses a string coordinate, reporting whether it is numeric.
func ParseCoordinate(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return v, err == nil
}

// OneOf reports whether value appears in the allowed set.
func OneOf(value string, allowed []string) bool {
	for _, a := range allowed {
		if value == a {
			return true
		}
	}
	return false
}

// SanitizeText trims whitespace and strips angle brackets to defang HTML tags.
func SanitizeText(text string) string {
	text = strings.TrimSpace(text)
	return strings.NewReplacer("<", "", ">", "").Replace(text)
}
