// Package naming derives the name forms used by generated files.
package naming

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	oerrors "github.com/faspi/cli/internal/errors"
)

var (
	identifierPattern  = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
	projectNamePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_-]*$`)
)

// pythonKeywords cannot be used as module or class names in generated code.
var pythonKeywords = map[string]bool{
	"False": true, "None": true, "True": true, "and": true, "as": true,
	"assert": true, "async": true, "await": true, "break": true, "class": true,
	"continue": true, "def": true, "del": true, "elif": true, "else": true,
	"except": true, "finally": true, "for": true, "from": true, "global": true,
	"if": true, "import": true, "in": true, "is": true, "lambda": true,
	"nonlocal": true, "not": true, "or": true, "pass": true, "raise": true,
	"return": true, "try": true, "while": true, "with": true, "yield": true,
}

// Capitalize uppercases the first rune of name and leaves the rest unchanged.
func Capitalize(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if size == 0 {
		return ""
	}
	return string(unicode.ToUpper(r)) + name[size:]
}

// ToLower returns the module/file form of name.
func ToLower(name string) string {
	return strings.ToLower(name)
}

// ToSnake converts CamelCase and kebab-case names to snake_case.
// Already snake_case input is returned unchanged.
func ToSnake(name string) string {
	var sb strings.Builder
	runes := []rune(name)
	for i, r := range runes {
		switch {
		case r == '-' || r == ' ':
			sb.WriteRune('_')
		case unicode.IsUpper(r):
			if i > 0 && runes[i-1] != '_' && runes[i-1] != '-' && !unicode.IsUpper(runes[i-1]) {
				sb.WriteRune('_')
			}
			sb.WriteRune(unicode.ToLower(r))
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// Plural appends "s" to a lowercased name. No other inflection is applied.
func Plural(lower string) string {
	return lower + "s"
}

// Title converts a project name such as "my-app" to "My App".
func Title(name string) string {
	words := strings.FieldsFunc(name, func(r rune) bool {
		return r == '-' || r == '_' || r == ' '
	})
	return cases.Title(language.English).String(strings.Join(words, " "))
}

// Validate checks that name can be used as a Python module and class name.
func Validate(name string) error {
	if name == "" {
		return oerrors.NewConfigurationError("name must not be empty", "pass a name such as 'user'")
	}
	if !identifierPattern.MatchString(name) {
		return oerrors.NewConfigurationError(
			fmt.Sprintf("invalid name %q", name),
			"use letters, digits and underscores, starting with a letter or underscore",
		)
	}
	if pythonKeywords[name] || pythonKeywords[strings.ToLower(name)] {
		return oerrors.NewConfigurationError(
			fmt.Sprintf("%q is a reserved word", name),
			"choose a name that is not a Python keyword",
		)
	}
	return nil
}

// ValidateProjectName checks a directory name for a new project.
func ValidateProjectName(name string) error {
	if name == "" {
		return oerrors.NewConfigurationError("project name must not be empty", "")
	}
	if !projectNamePattern.MatchString(name) {
		return oerrors.NewConfigurationError(
			fmt.Sprintf("invalid project name %q", name),
			"use letters, digits, '-' and '_', starting with a letter",
		)
	}
	return nil
}
