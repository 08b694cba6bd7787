package strings

import "strings"

// Sanitize trims surrounding whitespace and strips the characters
// ', ; and \ from free-text input. All queries are parameterized,
// so this is a best-effort secondary filter, not the injection defense.
func Sanitize(s string) string {
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case '\'', ';', '\\':
			continue
		default:
			b.WriteRune(r)
		}
	}

	return strings.TrimSpace(b.String())
}

// NormalizeEmail sanitizes and lower-cases an email address.
// Emails are stored and compared in this normalized form.
func NormalizeEmail(email string) string {
	return strings.ToLower(Sanitize(email))
}
