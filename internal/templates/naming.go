package templates

import (
	"fmt"
	"strings"
	"unicode"

	oerrors "github.com/opmodel/modgen/internal/errors"
)

// ValidateModuleName checks if a module name is usable in file names and
// identifiers. Letters, digits, hyphens and underscores are allowed.
func ValidateModuleName(name string) error {
	if name == "" {
		return oerrors.NewValidationError("module name cannot be empty", "", "name", "")
	}

	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '-' && r != '_' {
			return oerrors.NewValidationError(
				fmt.Sprintf("invalid module name %q: contains invalid character %q", name, r),
				"", "name", "use letters, digits, hyphens and underscores",
			)
		}
	}

	if !unicode.IsLetter([]rune(name)[0]) {
		return oerrors.NewValidationError(
			fmt.Sprintf("invalid module name %q: must start with a letter", name),
			"", "name", "",
		)
	}

	return nil
}

// splitWords breaks s on '-', '_', spaces, and lower-to-upper case changes.
// "userProfile", "user-profile" and "User_Profile" all yield [user profile].
func splitWords(s string) []string {
	var words []string
	var cur []rune

	flush := func() {
		if len(cur) > 0 {
			words = append(words, strings.ToLower(string(cur)))
			cur = cur[:0]
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		switch {
		case r == '-' || r == '_' || unicode.IsSpace(r):
			flush()
		case unicode.IsUpper(r) && i > 0 && len(cur) > 0:
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				flush()
			}
			cur = append(cur, r)
		default:
			cur = append(cur, r)
		}
	}
	flush()

	return words
}

// ToPascalCase converts "user-profile" or "userProfile" to "UserProfile".
func ToPascalCase(s string) string {
	var b strings.Builder
	for _, w := range splitWords(s) {
		r := []rune(w)
		b.WriteRune(unicode.ToUpper(r[0]))
		b.WriteString(string(r[1:]))
	}
	return b.String()
}

// ToCamelCase converts "user-profile" to "userProfile".
func ToCamelCase(s string) string {
	p := []rune(ToPascalCase(s))
	if len(p) == 0 {
		return ""
	}
	p[0] = unicode.ToLower(p[0])
	return string(p)
}

// ToSnakeCase converts "UserProfile" to "user_profile".
func ToSnakeCase(s string) string {
	return strings.Join(splitWords(s), "_")
}

// ToKebabCase converts "UserProfile" to "user-profile".
func ToKebabCase(s string) string {
	return strings.Join(splitWords(s), "-")
}
