/*
Package serial converts element trees to and from a canonical dictionary
form and its JSON or YAML encoding.

The dictionary of an element looks like this:

	{
	  "tag": "div",
	  "self_closing": false,
	  "attributes": {"id": "main", "class": "container"},
	  "text": "",
	  "children": [
	    {"tag": "h1", "self_closing": false, "attributes": {}, "text": "Welcome", "children": []}
	  ]
	}

"text" holds a leading text child, "children" holds all further children,
either as dictionaries or as plain strings. Specialized elements carry
their kind in "type"; fragments have a "type" but no "tag". Optional keys
are "raw", "doctype" and "source".

Decoding consults a Registry to reconstruct specialized elements. Kinds
without a registered constructor are decoded as plain elements (or plain
fragments) carrying the kind.

Round trips are lossless: FromMap(ToMap(e)) is structurally equal to e
(see dom.Equal). Hooks and loaders are not serialized.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package serial

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/markup/dom"
	"github.com/npillmayer/schuko/tracing"
	"gopkg.in/yaml.v3"
)

// tracer traces with key 'markup.serial'.
func tracer() tracing.Trace {
	return tracing.Select("markup.serial")
}

// ErrMalformedInput is flagged for structured input which does not describe
// an element tree.
var ErrMalformedInput = errors.New("malformed input")

// Options configure conversions.
type Options struct {
	maxDepth int
	indent   int
	registry *Registry
}

// Option is a type to help configuring conversions.
type Option func(Options) Options

// MaxDepth is an option to set the depth bound of conversions.
func MaxDepth(n int) Option {
	return func(o Options) Options {
		o.maxDepth = n
		return o
	}
}

// Indent is an option to indent JSON output by n spaces per level.
// The default is compact output.
func Indent(n int) Option {
	return func(o Options) Options {
		o.indent = n
		return o
	}
}

// WithRegistry is an option to decode with a registry other than
// DefaultRegistry.
func WithRegistry(r *Registry) Option {
	return func(o Options) Options {
		o.registry = r
		return o
	}
}

func options(opts []Option) Options {
	o := Options{maxDepth: dom.DefaultMaxDepth}
	for _, option := range opts {
		o = option(o)
	}
	if o.registry == nil {
		o.registry = DefaultRegistry()
	}
	return o
}

// Keys of the dictionary form.
const (
	KeyTag         = "tag"
	KeyType        = "type"
	KeySelfClosing = "self_closing"
	KeyRaw         = "raw"
	KeyDoctype     = "doctype"
	KeyAttributes  = "attributes"
	KeyText        = "text"
	KeyChildren    = "children"
	KeySource      = "source"
)

func depthError(op string, max int) error {
	tracer().Errorf("%s: maximum depth %d exceeded", op, max)
	return fmt.Errorf("%w: %s beyond depth %d", dom.ErrDepthExceeded, op, max)
}

// --- Encoding --------------------------------------------------------------

// ToMap converts an element tree to its dictionary form.
func ToMap(e *dom.Element, opts ...Option) (*Dict, error) {
	o := options(opts)
	return toMap(e, 0, o.maxDepth)
}

func toMap(e *dom.Element, depth, max int) (*Dict, error) {
	if depth > max {
		return nil, depthError("to-map", max)
	}
	d := NewDict()
	if !e.IsFragment() {
		d.Set(KeyTag, e.Tag())
	}
	if e.Kind() != "" {
		d.Set(KeyType, e.Kind())
	}
	d.Set(KeySelfClosing, e.IsSelfClosing())
	if e.IsRaw() {
		d.Set(KeyRaw, true)
	}
	if e.Kind() != "" || e.Doctype() != "" {
		d.Set(KeyDoctype, e.Doctype())
	}
	attrs := NewDict()
	for k, v := range e.Attributes().All() {
		attrs.Set(k, v)
	}
	d.Set(KeyAttributes, attrs)
	children := e.Children()
	text := ""
	if len(children) > 0 {
		if t, ok := children[0].(dom.Text); ok {
			text = string(t)
			children = children[1:]
		}
	}
	d.Set(KeyText, text)
	list := make([]any, 0, len(children))
	for _, ch := range children {
		switch c := ch.(type) {
		case dom.Text:
			list = append(list, string(c))
		case *dom.Element:
			cd, err := toMap(c, depth+1, max)
			if err != nil {
				return nil, err
			}
			list = append(list, cd)
		}
	}
	d.Set(KeyChildren, list)
	if e.Source() != "" {
		d.Set(KeySource, e.Source())
	}
	return d, nil
}

// ToJSON converts an element tree to JSON text.
func ToJSON(e *dom.Element, opts ...Option) (string, error) {
	o := options(opts)
	d, err := toMap(e, 0, o.maxDepth)
	if err != nil {
		return "", err
	}
	b, err := d.MarshalJSON()
	if err != nil || o.indent <= 0 {
		return string(b), err
	}
	var out bytes.Buffer
	err = json.Indent(&out, b, "", strings.Repeat(" ", o.indent))
	return out.String(), err
}

// ToYAML converts an element tree to YAML text.
func ToYAML(e *dom.Element, opts ...Option) (string, error) {
	o := options(opts)
	d, err := toMap(e, 0, o.maxDepth)
	if err != nil {
		return "", err
	}
	b, err := yaml.Marshal(d)
	return string(b), err
}

// --- Decoding --------------------------------------------------------------

// FromMap reconstructs an element tree from its dictionary form. Missing or
// mis-typed fields result in ErrMalformedInput.
func FromMap(d *Dict, opts ...Option) (*dom.Element, error) {
	o := options(opts)
	return fromMap(d, 0, o)
}

// FromJSON decodes JSON text and reconstructs an element tree from it.
func FromJSON(text string, opts ...Option) (*dom.Element, error) {
	d := NewDict()
	if err := json.Unmarshal([]byte(text), d); err != nil {
		tracer().Errorf("cannot decode JSON: %v", err)
		return nil, fmt.Errorf("%w: %w", ErrMalformedInput, err)
	}
	return FromMap(d, opts...)
}

// FromYAML decodes YAML text and reconstructs an element tree from it.
func FromYAML(text string, opts ...Option) (*dom.Element, error) {
	d := NewDict()
	if err := yaml.Unmarshal([]byte(text), d); err != nil {
		tracer().Errorf("cannot decode YAML: %v", err)
		return nil, fmt.Errorf("%w: %w", ErrMalformedInput, err)
	}
	return FromMap(d, opts...)
}

func malformed(format string, args ...any) error {
	err := fmt.Errorf("%w: "+format, append([]any{ErrMalformedInput}, args...)...)
	tracer().Errorf("%v", err)
	return err
}

// fields holds the validated fields of a dictionary.
type fields struct {
	tag, kind   string
	selfClosing bool
	raw         bool
	doctype     *string
	attrs       *Dict
	text        string
	children    []any
	source      string
}

func optional[T any](d *Dict, key string, target *T) error {
	v, ok := d.Get(key)
	if !ok || v == nil {
		return nil
	}
	t, ok := v.(T)
	if !ok {
		return malformed("%q must be of type %T, is %T", key, *target, v)
	}
	*target = t
	return nil
}

func validate(d *Dict) (fields, error) {
	var f fields
	if d == nil {
		return f, malformed("missing dictionary")
	}
	_, hasTag := d.Get(KeyTag)
	_, hasType := d.Get(KeyType)
	if !hasTag && !hasType {
		return f, malformed("dictionary needs %q or %q", KeyTag, KeyType)
	}
	var doctype string
	_, hasDoctype := d.Get(KeyDoctype)
	for _, err := range []error{
		optional(d, KeyTag, &f.tag),
		optional(d, KeyType, &f.kind),
		optional(d, KeySelfClosing, &f.selfClosing),
		optional(d, KeyRaw, &f.raw),
		optional(d, KeyDoctype, &doctype),
		optional(d, KeyAttributes, &f.attrs),
		optional(d, KeyText, &f.text),
		optional(d, KeyChildren, &f.children),
		optional(d, KeySource, &f.source),
	} {
		if err != nil {
			return f, err
		}
	}
	if hasDoctype {
		f.doctype = &doctype
	}
	if hasTag && f.tag == "" {
		return f, malformed("%q must not be empty", KeyTag)
	}
	for _, k := range f.attrs.Keys() {
		v, _ := f.attrs.Get(k)
		if _, ok := v.(string); !ok {
			return f, malformed("attribute %q must be a string, is %T", k, v)
		}
	}
	return f, nil
}

func fromMap(d *Dict, depth int, o Options) (*dom.Element, error) {
	if depth > o.maxDepth {
		return nil, depthError("from-map", o.maxDepth)
	}
	f, err := validate(d)
	if err != nil {
		return nil, err
	}
	e, err := construct(f, o.registry)
	if err != nil {
		return nil, err
	}
	for _, k := range e.Attributes().Keys() {
		e.RemoveAttribute(k)
	}
	for _, k := range f.attrs.Keys() {
		v, _ := f.attrs.Get(k)
		e.AddAttribute(k, v.(string))
	}
	e.Clear().SetSelfClosing(false).SetRaw(f.raw)
	if f.doctype != nil {
		e.SetDoctype(*f.doctype)
	}
	if f.source != "" {
		e.SetSource(f.source)
	}
	if f.text != "" {
		e.Add(dom.Text(f.text))
	}
	for i, ch := range f.children {
		switch c := ch.(type) {
		case string:
			e.Add(dom.Text(c))
		case *Dict:
			child, err := fromMap(c, depth+1, o)
			if err != nil {
				return nil, err
			}
			e.Add(child)
		default:
			return nil, malformed("child #%d must be a dictionary or a string, is %T", i, ch)
		}
	}
	e.SetSelfClosing(f.selfClosing)
	return e, nil
}

// construct creates the element for validated fields, consulting the registry
// for specialized kinds.
func construct(f fields, registry *Registry) (*dom.Element, error) {
	if f.kind != "" {
		if ctor, ok := registry.Lookup(f.kind); ok {
			tracer().Debugf("constructing kind %q", f.kind)
			e := ctor(f.tag)
			if e == nil {
				return nil, malformed("constructor for kind %q returned nothing", f.kind)
			}
			if f.tag != "" && e.Tag() != f.tag {
				return nil, malformed("tag %q conflicts with tag %q of kind %q", f.tag, e.Tag(), f.kind)
			}
			return e.SetKind(f.kind), nil
		}
		if f.tag == "" {
			return dom.NewFragment().SetKind(f.kind), nil
		}
	}
	e, err := dom.New(f.tag)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedInput, err)
	}
	return e.SetKind(f.kind), nil
}
