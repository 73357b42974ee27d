package dgii

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/rezonia/alanube-ecf/internal/model"
)

var (
	nonDigits      = regexp.MustCompile(`\D`)
	emailPattern   = regexp.MustCompile(`^[\w.-]+@[\w.-]+\.\w+$`)
	websitePattern = regexp.MustCompile(`^(?:https?://)?(?:www\.)?([\w.-]+)(?:\.\w+)+$`)
	identPattern   = regexp.MustCompile(`^(\d{9}|\d{11})$`)
)

// NormalizeRNC strips separators and returns the RNC as a number.
// Only 9 (company) or 11 (cédula) digit identifiers are valid.
func NormalizeRNC(rnc string) (int64, error) {
	digits := nonDigits.ReplaceAllString(rnc, "")
	if len(digits) != 9 && len(digits) != 11 {
		return 0, model.Invalid(rnc, "rnc", "RNC must have 9 or 11 digits")
	}
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, model.Invalid(rnc, "rnc", "RNC is not numeric")
	}
	return n, nil
}

// ValidIdentification reports whether s is a bare 9 or 11 digit identifier
func ValidIdentification(s string) bool {
	return identPattern.MatchString(s)
}

// FormatPhone normalizes a phone number to NNN-NNN-NNNN
func FormatPhone(number string) (string, error) {
	digits := nonDigits.ReplaceAllString(number, "")
	if len(digits) != 10 {
		return "", model.Invalid(number, "phone", "phone number must contain 10 digits")
	}
	return digits[:3] + "-" + digits[3:6] + "-" + digits[6:], nil
}

// ValidateEmail checks the address shape
func ValidateEmail(email string) (string, error) {
	email = strings.TrimSpace(email)
	if !emailPattern.MatchString(email) {
		return "", model.Invalid(email, "email", "email is not valid")
	}
	return email, nil
}

// ValidateWebsite strips the scheme, the www. prefix and the last domain
// label: https://www.empresa.com.do becomes empresa.com. Paths are rejected.
func ValidateWebsite(site string) (string, error) {
	m := websitePattern.FindStringSubmatch(strings.TrimSpace(site))
	if m == nil {
		return "", model.Invalid(site, "website", "web site is not valid")
	}
	return m[1], nil
}
