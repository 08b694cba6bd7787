package strings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty string", input: "", want: ""},
		{name: "clean string untouched", input: "testuser", want: "testuser"},
		{name: "strips single quotes", input: "o'brien", want: "obrien"},
		{name: "strips semicolons", input: "a;b;c", want: "abc"},
		{name: "strips backslashes", input: `a\b`, want: "ab"},
		{name: "trims whitespace", input: "  testuser  ", want: "testuser"},
		{name: "injection attempt", input: `'; DROP TABLE users; \`, want: "DROP TABLE users"},
		{name: "unicode survives", input: "Пользователь", want: "Пользователь"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sanitize(tt.input))
		})
	}
}

func TestNormalizeEmail(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "lower case untouched", input: "test@example.com", want: "test@example.com"},
		{name: "mixed case lowered", input: "Test@Example.COM", want: "test@example.com"},
		{name: "whitespace trimmed", input: " test@example.com ", want: "test@example.com"},
		{name: "dangerous characters stripped", input: "te'st@example.com;", want: "test@example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeEmail(tt.input))
		})
	}
}
