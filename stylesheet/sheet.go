package stylesheet

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/markup/attr"
	"github.com/npillmayer/markup/dom"
)

// Sheet is a registry of named CSS classes. It is safe for concurrent use.
type Sheet struct {
	mx      sync.RWMutex
	names   []string
	classes map[string]*Style
	foreign []*css.Rule // loaded rules which do not describe a registered class
}

// NewSheet creates an empty style sheet.
func NewSheet() *Sheet {
	return &Sheet{classes: make(map[string]*Style)}
}

// Register validates and registers a class. It returns the class name, ready
// to be used with dom.Class. Registering an existing name replaces the
// class, keeping its position in the sheet.
func (sh *Sheet) Register(name string, props []attr.Pair, vs ...Variant) (string, error) {
	s, err := NewStyle(props, vs...)
	if err != nil {
		tracer().Infof("class %q rejected: %v", name, err)
		return "", err
	}
	return sh.RegisterStyle(name, s)
}

// RegisterStyle registers an existing style under a class name.
func (sh *Sheet) RegisterStyle(name string, s *Style) (string, error) {
	if err := attr.ValidateClassName(name); err != nil {
		tracer().Infof("class name %q rejected: %v", name, err)
		return "", err
	}
	if s == nil {
		return "", fmt.Errorf("%w: no style for class %q", attr.ErrValidation, name)
	}
	sh.mx.Lock()
	defer sh.mx.Unlock()
	sh.set(name, s.clone())
	return name, nil
}

func (sh *Sheet) set(name string, s *Style) {
	if _, ok := sh.classes[name]; !ok {
		sh.names = append(sh.names, name)
	} else {
		tracer().Debugf("replacing class %q", name)
	}
	sh.classes[name] = s
}

// Class returns the style registered for a class name.
func (sh *Sheet) Class(name string) (*Style, bool) {
	sh.mx.RLock()
	defer sh.mx.RUnlock()
	s, ok := sh.classes[name]
	if !ok {
		return nil, false
	}
	return s.clone(), true
}

// Names returns the registered class names in registration order.
func (sh *Sheet) Names() []string {
	sh.mx.RLock()
	defer sh.mx.RUnlock()
	return append([]string(nil), sh.names...)
}

// Empty is true if the sheet has neither classes nor loaded foreign rules.
func (sh *Sheet) Empty() bool {
	sh.mx.RLock()
	defer sh.mx.RUnlock()
	return len(sh.names) == 0 && len(sh.foreign) == 0
}

// --- Rendering -------------------------------------------------------------

// Stylesheet converts the sheet to a douceur style sheet. Loaded rules come
// first, followed by one rule per class and pseudo-class variant, followed by
// one media rule per breakpoint in use, narrowest first.
func (sh *Sheet) Stylesheet() *css.Stylesheet {
	sh.mx.RLock()
	defer sh.mx.RUnlock()
	out := css.NewStylesheet()
	out.Rules = append(out.Rules, sh.foreign...)
	for _, name := range sh.names {
		s := sh.classes[name]
		if s.props.Len() > 0 {
			out.Rules = append(out.Rules, qualifiedRule("."+name, s.props, 0))
		}
		for _, pseudo := range s.pseudo.names {
			out.Rules = append(out.Rules, qualifiedRule("."+name+":"+pseudo, s.pseudo.props[pseudo], 0))
		}
	}
	for _, bp := range Breakpoints() {
		media := css.NewRule(css.AtRule)
		media.Name = "@media"
		media.Prelude = fmt.Sprintf("(min-width: %dpx)", breakpointWidths[bp])
		for _, name := range sh.names {
			if props, ok := sh.classes[name].breakpoints.props[bp]; ok && props.Len() > 0 {
				media.Rules = append(media.Rules, qualifiedRule("."+name, props, 1))
			}
		}
		if len(media.Rules) > 0 {
			out.Rules = append(out.Rules, media)
		}
	}
	return out
}

func qualifiedRule(selector string, props *attr.Map, level int) *css.Rule {
	r := css.NewRule(css.QualifiedRule)
	r.Prelude = selector
	r.Selectors = []string{selector}
	r.EmbedLevel = level
	for k, v := range props.All() {
		d := css.NewDeclaration()
		d.Property = k
		d.Value = v
		r.Declarations = append(r.Declarations, d)
	}
	return r
}

// Render returns the sheet as CSS text.
func (sh *Sheet) Render() string {
	return sh.Stylesheet().String()
}

// Node returns a <style> element holding the rendered sheet. The element is
// in raw mode, its content is not escaped.
func (sh *Sheet) Node() *dom.Element {
	return dom.El("style", dom.Text(sh.Render())).SetRaw(true)
}

// --- Loading ---------------------------------------------------------------

var (
	classSelector = regexp.MustCompile(`^\.([A-Za-z_-][A-Za-z0-9_-]*)(?::([a-z][a-z0-9-]*))?$`)
	minWidthQuery = regexp.MustCompile(`^\(\s*min-width\s*:\s*(\d+)px\s*\)$`)
)

// Load parses CSS text and adds its rules to the sheet. Rules for a single
// class selector, optionally with a pseudo-class, and min-width media rules
// matching a breakpoint are merged into the sheet's classes. Other rules are
// kept as they are and rendered in front of the classes.
//
// Values are validated; if any of them is rejected, the sheet is unchanged.
func (sh *Sheet) Load(text string) error {
	parsed, err := parser.Parse(text)
	if err != nil {
		tracer().Errorf("cannot parse style sheet: %v", err)
		return fmt.Errorf("%w: cannot parse style sheet: %w", attr.ErrValidation, err)
	}
	imp := importer{styles: make(map[string]*Style)}
	for _, rule := range parsed.Rules {
		if err := imp.rule(rule); err != nil {
			return err
		}
	}
	sh.mx.Lock()
	defer sh.mx.Unlock()
	sh.foreign = append(sh.foreign, imp.foreign...)
	for _, name := range imp.names {
		if old, ok := sh.classes[name]; ok {
			sh.classes[name] = old.Merge(imp.styles[name])
			continue
		}
		sh.set(name, imp.styles[name])
	}
	tracer().Debugf("loaded %d classes and %d other rules", len(imp.names), len(imp.foreign))
	return nil
}

type importer struct {
	names   []string
	styles  map[string]*Style
	foreign []*css.Rule
}

func (imp *importer) style(name string) *Style {
	s, ok := imp.styles[name]
	if !ok {
		s = newStyle()
		imp.styles[name] = s
		imp.names = append(imp.names, name)
	}
	return s
}

func (imp *importer) rule(rule *css.Rule) error {
	switch rule.Kind {
	case css.QualifiedRule:
		name, pseudo, ok := classOf(rule)
		if !ok {
			break
		}
		s := imp.style(name)
		target := s.props
		if pseudo != "" {
			target = s.pseudo.get(pseudo)
		}
		return setAll(target, declarations(rule))
	case css.AtRule:
		bp, ok := breakpointOf(rule)
		if !ok {
			break
		}
		names := make([]string, len(rule.Rules))
		for i, sub := range rule.Rules {
			name, pseudo, ok := classOf(sub)
			if !ok || pseudo != "" {
				names = nil
				break
			}
			names[i] = name
		}
		if names == nil {
			break
		}
		for i, sub := range rule.Rules {
			if err := setAll(imp.style(names[i]).breakpoints.get(bp), declarations(sub)); err != nil {
				return err
			}
		}
		return nil
	}
	tracer().Debugf("keeping foreign rule %q", rule.Prelude)
	imp.foreign = append(imp.foreign, rule)
	return nil
}

func classOf(rule *css.Rule) (name, pseudo string, ok bool) {
	if rule.Kind != css.QualifiedRule || len(rule.Selectors) != 1 {
		return "", "", false
	}
	for _, d := range rule.Declarations {
		if d.Important {
			return "", "", false
		}
	}
	m := classSelector.FindStringSubmatch(strings.TrimSpace(rule.Selectors[0]))
	if m == nil {
		return "", "", false
	}
	return m[1], m[2], true
}

func breakpointOf(rule *css.Rule) (string, bool) {
	if rule.Name != "@media" {
		return "", false
	}
	m := minWidthQuery.FindStringSubmatch(strings.TrimSpace(rule.Prelude))
	if m == nil {
		return "", false
	}
	w, _ := strconv.Atoi(m[1])
	for name, width := range breakpointWidths {
		if width == w {
			return name, true
		}
	}
	return "", false
}

func declarations(rule *css.Rule) []attr.Pair {
	pairs := make([]attr.Pair, 0, len(rule.Declarations))
	for _, d := range rule.Declarations {
		pairs = append(pairs, attr.P(d.Property, d.Value))
	}
	return pairs
}

// Extract collects the content of all <style> elements of a tree into a new
// sheet.
func Extract(root *dom.Element) (*Sheet, error) {
	sh := NewSheet()
	if root.Tag() == "style" {
		return sh, sh.Load(root.TextContent())
	}
	for n, err := range root.Filter(dom.IsElement("style"), dom.Recursive()) {
		if err != nil {
			return nil, err
		}
		if err := sh.Load(n.(*dom.Element).TextContent()); err != nil {
			return nil, err
		}
	}
	return sh, nil
}
