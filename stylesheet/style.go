package stylesheet

import (
	"fmt"
	"slices"
	"strings"

	"github.com/npillmayer/markup/attr"
	"github.com/npillmayer/markup/dom"
)

type variantKind uint8

const (
	pseudoVariant variantKind = iota
	breakpointVariant
)

// Variant is a set of declarations which applies to a class under a
// condition: a pseudo-class or a minimum viewport width.
type Variant struct {
	kind  variantKind
	name  string
	props []attr.Pair
}

// Pseudo creates a variant for a pseudo-class or pseudo-element, e.g.
// "hover" or "first-child". Underscores in name are converted to hyphens.
func Pseudo(name string, props ...attr.Pair) Variant {
	return Variant{kind: pseudoVariant, name: strings.ReplaceAll(name, "_", "-"), props: props}
}

// Hover creates a :hover variant.
func Hover(props ...attr.Pair) Variant { return Pseudo("hover", props...) }

// Focus creates a :focus variant.
func Focus(props ...attr.Pair) Variant { return Pseudo("focus", props...) }

// Active creates an :active variant.
func Active(props ...attr.Pair) Variant { return Pseudo("active", props...) }

// Breakpoint creates a variant for viewports at least as wide as the named
// breakpoint.
func Breakpoint(name string, props ...attr.Pair) Variant {
	return Variant{kind: breakpointVariant, name: name, props: props}
}

var breakpointWidths = map[string]int{
	"sm":  640,
	"md":  768,
	"lg":  1024,
	"xl":  1280,
	"2xl": 1536,
}

// Breakpoints returns the known breakpoint names, narrowest first.
func Breakpoints() []string {
	names := make([]string, 0, len(breakpointWidths))
	for name := range breakpointWidths {
		names = append(names, name)
	}
	slices.SortFunc(names, func(a, b string) int {
		return breakpointWidths[a] - breakpointWidths[b]
	})
	return names
}

// MinWidth returns the minimum viewport width of a breakpoint in pixels.
func MinWidth(breakpoint string) (int, bool) {
	w, ok := breakpointWidths[breakpoint]
	return w, ok
}

// Style is a validated set of declarations together with its variants.
// Declarations keep the order in which they have been set.
type Style struct {
	props       *attr.Map
	pseudo      *variants
	breakpoints *variants
}

// variants is an ordered collection of named declaration sets.
type variants struct {
	names []string
	props map[string]*attr.Map
}

func (v *variants) get(name string) *attr.Map {
	if v.props == nil {
		v.props = make(map[string]*attr.Map)
	}
	m, ok := v.props[name]
	if !ok {
		m = attr.NewMap()
		v.props[name] = m
		v.names = append(v.names, name)
	}
	return m
}

func (v *variants) clone() *variants {
	c := &variants{names: slices.Clone(v.names), props: make(map[string]*attr.Map, len(v.props))}
	for name, m := range v.props {
		c.props[name] = m.Clone()
	}
	return c
}

func newStyle() *Style {
	return &Style{props: attr.NewMap(), pseudo: &variants{}, breakpoints: &variants{}}
}

// NewStyle creates a style from declarations and variants. Every property
// and value is validated; the first offending declaration results in an
// error wrapping attr.ErrValidation.
func NewStyle(props []attr.Pair, vs ...Variant) (*Style, error) {
	s := newStyle()
	if err := setAll(s.props, props); err != nil {
		return nil, err
	}
	for _, v := range vs {
		switch v.kind {
		case pseudoVariant:
			if !validPseudo(v.name) {
				return nil, fmt.Errorf("%w: invalid pseudo selector %q", attr.ErrValidation, v.name)
			}
			if err := setAll(s.pseudo.get(v.name), v.props); err != nil {
				return nil, err
			}
		case breakpointVariant:
			if _, ok := breakpointWidths[v.name]; !ok {
				return nil, fmt.Errorf("%w: unknown breakpoint %q", attr.ErrValidation, v.name)
			}
			if err := setAll(s.breakpoints.get(v.name), v.props); err != nil {
				return nil, err
			}
		}
	}
	return s, nil
}

func validPseudo(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		if !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '-') {
			return false
		}
	}
	return true
}

func setAll(m *attr.Map, props []attr.Pair) error {
	for _, p := range props {
		key := strings.ReplaceAll(strings.TrimSpace(p.Key), "_", "-")
		value := strings.TrimSuffix(strings.TrimSpace(p.Value), ";")
		if key == "" || strings.ContainsAny(key, ":;\"'") {
			return fmt.Errorf("%w: invalid CSS property %q", attr.ErrValidation, p.Key)
		}
		if err := attr.ValidateStyleValue(key); err != nil {
			return err
		}
		if err := attr.ValidateStyleValue(value); err != nil {
			return fmt.Errorf("%w (property %q)", err, key)
		}
		m.Set(key, value)
	}
	return nil
}

// Declarations returns the base declarations of s.
func (s *Style) Declarations() []attr.Pair {
	return s.props.Pairs()
}

// Variant returns the declarations of a pseudo-class or breakpoint variant.
func (s *Style) Variant(name string) []attr.Pair {
	if m, ok := s.pseudo.props[name]; ok {
		return m.Pairs()
	}
	if m, ok := s.breakpoints.props[name]; ok {
		return m.Pairs()
	}
	return nil
}

// HasVariants is true if s has pseudo-class or breakpoint variants.
// Those cannot be expressed as inline styles.
func (s *Style) HasVariants() bool {
	return len(s.pseudo.names) > 0 || len(s.breakpoints.names) > 0
}

// IsComplex is true if s has more than threshold base declarations.
func (s *Style) IsComplex(threshold int) bool {
	return s.props.Len() > threshold
}

// Inline returns the base declarations formatted for a style attribute.
func (s *Style) Inline() string {
	return dom.FormatStyle(s.props.Pairs())
}

// Apply sets the base declarations of s as inline styles of e.
func (s *Style) Apply(e *dom.Element) error {
	_, err := e.AddStyles(s.props.Pairs()...)
	return err
}

// Merge creates a new style from s and other. Declarations of other win;
// variants present in both are merged declaration by declaration.
func (s *Style) Merge(other *Style) *Style {
	m := s.clone()
	for k, v := range other.props.All() {
		m.props.Set(k, v)
	}
	for _, name := range other.pseudo.names {
		target := m.pseudo.get(name)
		for k, v := range other.pseudo.props[name].All() {
			target.Set(k, v)
		}
	}
	for _, name := range other.breakpoints.names {
		target := m.breakpoints.get(name)
		for k, v := range other.breakpoints.props[name].All() {
			target.Set(k, v)
		}
	}
	return m
}

func (s *Style) clone() *Style {
	return &Style{props: s.props.Clone(), pseudo: s.pseudo.clone(), breakpoints: s.breakpoints.clone()}
}

// Equal is true if s and other have the same declarations and variants,
// in the same order.
func (s *Style) Equal(other *Style) bool {
	if !s.props.Equal(other.props) {
		return false
	}
	return s.pseudo.equal(other.pseudo) && s.breakpoints.equal(other.breakpoints)
}

func (v *variants) equal(other *variants) bool {
	if !slices.Equal(v.names, other.names) {
		return false
	}
	for _, name := range v.names {
		if !v.props[name].Equal(other.props[name]) {
			return false
		}
	}
	return true
}
