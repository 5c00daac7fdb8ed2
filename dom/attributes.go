package dom

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/npillmayer/markup/attr"
)

func (e *Element) setAttribute(key, value string) {
	e.attrs.Set(attr.Canonical(key), value)
}

// AddAttribute sets an attribute. key is canonicalized.
func (e *Element) AddAttribute(key, value string) *Element {
	e.setAttribute(key, value)
	return e
}

// AddAttributes sets attributes in order.
func (e *Element) AddAttributes(pairs ...attr.Pair) *Element {
	for _, p := range pairs {
		e.setAttribute(p.Key, p.Value)
	}
	return e
}

// RemoveAttribute removes an attribute, if present.
func (e *Element) RemoveAttribute(key string) *Element {
	e.attrs.Delete(attr.Canonical(key))
	return e
}

// Attribute returns the value of an attribute.
func (e *Element) Attribute(key string) (string, bool) {
	return e.attrs.Get(attr.Canonical(key))
}

// HasAttribute is a predicate for the presence of an attribute.
func (e *Element) HasAttribute(key string) bool {
	return e.attrs.Has(attr.Canonical(key))
}

// Attributes returns a copy of the element's attributes. If keys are given,
// the copy is restricted to them. Mutating the copy does not affect e.
func (e *Element) Attributes(keys ...string) *attr.Map {
	if len(keys) == 0 {
		return e.attrs.Clone()
	}
	m := &attr.Map{}
	for _, k := range keys {
		k = attr.Canonical(k)
		if v, ok := e.attrs.Get(k); ok {
			m.Set(k, v)
		}
	}
	return m
}

// GenerateID sets an id attribute of the form "el-xxxxxxxx" unless the
// element already has an id.
func (e *Element) GenerateID() {
	if e.attrs.Has("id") {
		return
	}
	e.attrs.Set("id", "el-"+uuid.NewString()[:8])
}

// --- Inline styles ---------------------------------------------------------

// AddStyle sets a single property of the style attribute.
// The declaration is validated with attr.ValidateStyleValue.
func (e *Element) AddStyle(property, value string) (*Element, error) {
	return e.AddStyles(attr.Pair{Key: property, Value: value})
}

// AddStyles sets properties of the style attribute. If any declaration is
// rejected, none of them is applied.
func (e *Element) AddStyles(props ...attr.Pair) (*Element, error) {
	for _, p := range props {
		if err := validateDeclaration(p.Key, p.Value); err != nil {
			return e, err
		}
	}
	styles := e.styleMap()
	for _, p := range props {
		styles.Set(strings.TrimSpace(p.Key), styleValue(p.Value))
	}
	e.flushStyles(styles)
	return e, nil
}

// Style returns the value of a style property.
func (e *Element) Style(property string) (string, bool) {
	return e.styleMap().Get(property)
}

// Styles returns the style properties in order.
func (e *Element) Styles() []attr.Pair {
	return e.styleMap().Pairs()
}

// RemoveStyle removes a style property. An empty style attribute is removed.
func (e *Element) RemoveStyle(property string) *Element {
	styles := e.styleMap()
	if styles.Delete(property) {
		e.flushStyles(styles)
	}
	return e
}

func validateDeclaration(property, value string) error {
	property = strings.TrimSpace(property)
	if property == "" || strings.ContainsAny(property, ":;\"'") {
		return fmt.Errorf("%w: invalid style property %q", ErrValidation, property)
	}
	if err := attr.ValidateStyleValue(property); err != nil {
		return err
	}
	if err := attr.ValidateStyleValue(value); err != nil {
		return err
	}
	if len(splitDeclarations(styleValue(value))) > 1 {
		return fmt.Errorf("%w: style value %q contains more than one declaration", ErrValidation, value)
	}
	return nil
}

func styleValue(v string) string {
	return strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(v), ";"))
}

func (e *Element) styleMap() *attr.Map {
	s, _ := e.attrs.Get("style")
	return attr.NewMap(ParseStyle(s)...)
}

func (e *Element) flushStyles(styles *attr.Map) {
	if styles.Len() == 0 {
		e.attrs.Delete("style")
		return
	}
	e.attrs.Set("style", FormatStyle(styles.Pairs()))
}

// ParseStyle splits the value of a style attribute into declarations.
// Semicolons within parentheses or quotes do not separate declarations,
// so "background: url(a;b); color: red" yields two of them.
func ParseStyle(style string) []attr.Pair {
	var pairs []attr.Pair
	for _, decl := range splitDeclarations(style) {
		k, v, ok := strings.Cut(decl, ":")
		k, v = strings.TrimSpace(k), strings.TrimSpace(v)
		if ok && k != "" {
			pairs = append(pairs, attr.Pair{Key: k, Value: v})
		}
	}
	return pairs
}

func splitDeclarations(style string) []string {
	var decls []string
	var depth int
	var quote rune
	start := 0
	for i, r := range style {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			}
		case r == '"' || r == '\'':
			quote = r
		case r == '(':
			depth++
		case r == ')':
			if depth > 0 {
				depth--
			}
		case r == ';' && depth == 0:
			decls = append(decls, style[start:i])
			start = i + 1
		}
	}
	return append(decls, style[start:])
}

// FormatStyle joins declarations into the value of a style attribute.
func FormatStyle(pairs []attr.Pair) string {
	var b strings.Builder
	for i, p := range pairs {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(p.Key)
		b.WriteString(": ")
		b.WriteString(p.Value)
	}
	return b.String()
}
