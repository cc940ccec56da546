// Package validation holds the field format checks the onboarding form
// enforces. They are plain predicates so both the HTTP layer (through
// validator tags, see custom.go) and the services can call them directly.
package validation

import (
	"regexp"
	"strings"
	"time"
)

var (
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	// National Insurance: 2 letters (no D, F, I, Q, U, V; second also no O),
	// 6 digits, suffix A-D.
	niRegex = regexp.MustCompile(`^(?i)[A-CEGHJ-PR-TW-Z][A-CEGHJ-NPR-TW-Z][0-9]{6}[A-D]$`)

	utrRegex      = regexp.MustCompile(`^[0-9]{10}$`)
	vatRegex      = regexp.MustCompile(`^(?i)(GB)?([0-9]{9}([0-9]{3})?|[A-Z]{2}[0-9]{3})$`)
	sortCodeRegex = regexp.MustCompile(`^[0-9]{2}-?[0-9]{2}-?[0-9]{2}$`)
	accountRegex  = regexp.MustCompile(`^[0-9]{8}$`)
	postcodeRegex = regexp.MustCompile(`^(?i)[A-Z]{1,2}[0-9][A-Z0-9]?\s?[0-9][A-Z]{2}$`)
	nonDigitRegex = regexp.MustCompile(`\D`)
)

// IsFullName requires at least two words, 3-100 characters total.
func IsFullName(name string) bool {
	trimmed := strings.TrimSpace(name)
	if len(trimmed) < 3 || len(trimmed) > 100 {
		return false
	}
	return len(strings.Fields(trimmed)) >= 2
}

func IsEmail(email string) bool {
	return emailRegex.MatchString(strings.TrimSpace(email))
}

// IsPhone accepts any format carrying at least 10 digits.
func IsPhone(phone string) bool {
	digits := nonDigitRegex.ReplaceAllString(phone, "")
	return len(digits) >= 10
}

func IsNationalInsuranceNumber(ni string) bool {
	return niRegex.MatchString(stripSpaces(ni))
}

func IsUTRNumber(utr string) bool {
	return utrRegex.MatchString(stripSpaces(utr))
}

// IsVATNumber treats empty as valid: VAT registration is optional.
func IsVATNumber(vat string) bool {
	stripped := stripSpaces(vat)
	if stripped == "" {
		return true
	}
	return vatRegex.MatchString(stripped)
}

func IsSortCode(code string) bool {
	return sortCodeRegex.MatchString(strings.TrimSpace(code))
}

func IsAccountNumber(account string) bool {
	return accountRegex.MatchString(stripSpaces(account))
}

func IsUKPostcode(postcode string) bool {
	return postcodeRegex.MatchString(strings.TrimSpace(postcode))
}

// IsAdultBirthDate expects YYYY-MM-DD and an age of at least 18 years.
func IsAdultBirthDate(birthDate string, now time.Time) bool {
	date, err := time.Parse("2006-01-02", birthDate)
	if err != nil {
		return false
	}

	age := now.Year() - date.Year()
	if now.Month() < date.Month() || (now.Month() == date.Month() && now.Day() < date.Day()) {
		age--
	}
	return age >= 18
}

// IsAllowedUpload checks content type and size against the form's policy.
func IsAllowedUpload(contentType string, size int64, maxSize int64, allowed []string) bool {
	if size <= 0 || size > maxSize {
		return false
	}
	for _, a := range allowed {
		if strings.EqualFold(a, contentType) {
			return true
		}
	}
	return false
}

func stripSpaces(s string) string {
	return strings.ReplaceAll(strings.TrimSpace(s), " ", "")
}
