package inquiry

import "regexp"

var (
	// phoneRegex accepts an optional leading '+', a non-zero first digit and
	// up to 15 more digits. There is deliberately no lower length bound.
	phoneRegex = regexp.MustCompile(`^\+?[1-9]\d{0,15}$`)

	phoneSeparatorRegex = regexp.MustCompile(`[\s\-()]`)
)

// NormalizePhone strips whitespace, dashes and parentheses from a phone number.
func NormalizePhone(phone string) string {
	return phoneSeparatorRegex.ReplaceAllString(phone, "")
}

// IsValidPhone reports whether phone matches the loose international pattern
// once separators are removed.
func IsValidPhone(phone string) bool {
	return phoneRegex.MatchString(NormalizePhone(phone))
}
