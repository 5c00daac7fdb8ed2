package attr

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrValidation is flagged for attachments which violate structural or
// safety constraints: invalid child types, invalid tags, dangerous values.
var ErrValidation = errors.New("validation error")

// ErrInjection is a validation error for values which could inject script
// or rules into a style context.
var ErrInjection = fmt.Errorf("%w: injection", ErrValidation)

var dangerousCSS = regexp.MustCompile(`(?i)` +
	`javascript:|vbscript:` +
	`|expression\s*\(` +
	`|url\s*\(\s*["']?\s*data:` +
	`|url\s*\(\s*["']?\s*javascript:` +
	`|[{}<>]` +
	`|/\*|\*/` +
	`|\\[0-9a-f]` +
	`|&#` +
	`|%[01][0-9a-f]` +
	`|[\x00-\x08\x0b\x0c\x0e-\x1f\x7f]`)

var className = regexp.MustCompile(`^[A-Za-z_-][A-Za-z0-9_-]*$`)

// ValidateStyleValue checks a CSS value (or a complete declaration) against
// a denylist of script schemes, expression(), data-URLs, rule-breaking
// characters and encoded control characters.
// Returns an error wrapping ErrInjection for a match.
func ValidateStyleValue(value string) error {
	if loc := dangerousCSS.FindStringIndex(value); loc != nil {
		tracer().Infof("rejected style value %q", value)
		return fmt.Errorf("%w: style value contains %q", ErrInjection, value[loc[0]:loc[1]])
	}
	return nil
}

// ValidateClassName checks a class name intended for a style sheet.
// Names must start with a letter, '_' or '-' and may contain letters,
// digits, '-' and '_' only.
func ValidateClassName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty class name", ErrValidation)
	}
	if strings.ContainsAny(name, "{};,>+~ \t\r\n") {
		return fmt.Errorf("%w: class name %q contains selector or rule characters", ErrInjection, name)
	}
	if !className.MatchString(name) {
		return fmt.Errorf("%w: invalid class name %q", ErrValidation, name)
	}
	return nil
}
