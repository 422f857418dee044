// Package validation checks submitted registration forms and turns them into
// normalized records. A failed check yields per-field message lists meant for
// display next to the offending inputs, localized to the form's language.
package validation

import (
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// Errors maps a JSON field name to the messages accumulated for it.
type Errors map[string][]string

func (e Errors) add(field, message string) {
	e[field] = append(e[field], message)
}

var validate = validator.New()

func validEmail(email string) bool {
	return validate.Var(email, "email") == nil
}

// runeLen counts characters, not bytes. The Japanese form bounds would be
// meaningless otherwise.
func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}

// optional trims an optional field and returns nil when nothing is left.
func optional(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
