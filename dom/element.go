package dom

import (
	"fmt"

	"github.com/npillmayer/markup/attr"
)

// KindFragment is the kind discriminator of fragments.
const KindFragment = "fragment"

// KindDocument is the kind discriminator of document roots.
const KindDocument = "html"

// Doctype is the prefix of document roots.
const Doctype = "<!DOCTYPE html>"

// Element is a node carrying a tag, ordered attributes and ordered children.
//
// Elements are created by the constructors of this package (or package tags)
// and are mutated in place by their owner. Mutating operations return the
// element itself to allow for chaining.
type Element struct {
	tag         string    // empty for fragments
	fragment    bool      // contributes no markup of its own
	attrs       *attr.Map // canonical keys, insertion order
	children    []Node    // ordered children
	selfClosing bool      // rendered without end tag and children
	raw         bool      // Text children are trusted, rendered verbatim
	doctype     string    // literal prefix of document roots
	kind        string    // discriminator for specialized elements
	hooks       Hooks     // optional callbacks
	source      string    // path of lazily loaded raw content
	loader      Loader    // loads source
}

func newElement(tag string) *Element {
	return &Element{tag: tag, attrs: &attr.Map{}}
}

// New creates an element for tag. items may be Nodes, strings (converted to
// Text), Attributes, Groups, Hooks or (nested) slices of them; nil items are
// dropped. Other item types and invalid tags result in ErrValidation.
func New(tag string, items ...any) (*Element, error) {
	return create(tag, false, items)
}

// NewSelfClosing creates an element for tag which renders without an end tag.
func NewSelfClosing(tag string, items ...any) (*Element, error) {
	return create(tag, true, items)
}

func create(tag string, selfClosing bool, items []any) (*Element, error) {
	if !attr.ValidTag(tag) {
		tracer().Errorf("invalid tag %q", tag)
		return nil, fmt.Errorf("%w: invalid tag %q", ErrValidation, tag)
	}
	e := newElement(tag)
	e.selfClosing = selfClosing
	if _, err := e.Append(items...); err != nil {
		return nil, err
	}
	e.loaded()
	return e, nil
}

// El creates an element for a constant tag. It panics if tag is invalid,
// which is a programming error.
//
//     dom.El("p", dom.Class("lead"), dom.Text("Hello"))
//
func El(tag string, items ...Item) *Element {
	if !attr.ValidTag(tag) {
		panic(fmt.Sprintf("invalid tag %q", tag))
	}
	e := newElement(tag)
	e.Add(items...)
	e.loaded()
	return e
}

// Void creates a self-closing element for a constant tag.
func Void(tag string, items ...Item) *Element {
	if !attr.ValidTag(tag) {
		panic(fmt.Sprintf("invalid tag %q", tag))
	}
	e := newElement(tag)
	e.selfClosing = true
	e.Add(items...)
	e.loaded()
	return e
}

// NewFragment creates a fragment holding items.
func NewFragment(items ...Item) *Element {
	e := newElement("")
	e.fragment = true
	e.kind = KindFragment
	e.Add(items...)
	e.loaded()
	return e
}

// Raw creates a fragment holding trusted content, which is rendered verbatim.
func Raw(content string) *Element {
	f := NewFragment(Text(content))
	f.raw = true
	return f
}

// RawFile creates a raw fragment whose content is loaded from path at
// render time, using FileLoader. Use SetLoader to read from other sources.
func RawFile(path string) *Element {
	f := NewFragment()
	f.raw = true
	f.source = path
	f.loader = FileLoader
	return f
}

// NewDocument creates a document root: an html element with
// attributes lang="en" and dir="ltr", rendered with a doctype prefix.
// Items may override the default attributes.
func NewDocument(items ...Item) *Element {
	e := newElement("html")
	e.doctype = Doctype
	e.kind = KindDocument
	e.attrs.Set("lang", "en")
	e.attrs.Set("dir", "ltr")
	e.Add(items...)
	e.loaded()
	return e
}

func (e *Element) loaded() {
	if generateIDs && !e.fragment {
		e.GenerateID()
	}
	if e.hooks.OnLoad != nil {
		e.hooks.OnLoad(e)
	}
}

func (e *Element) String() string {
	if e.fragment {
		return fmt.Sprintf("(fragment #ch=%d)", len(e.children))
	}
	return fmt.Sprintf("(<%s> #ch=%d)", e.tag, len(e.children))
}

// --- Accessors -------------------------------------------------------------

// Tag returns the element's tag, or "" for fragments.
func (e *Element) Tag() string {
	return e.tag
}

// IsFragment is a predicate for fragments.
func (e *Element) IsFragment() bool {
	return e.fragment
}

// IsSelfClosing is a predicate for elements rendered without end tag.
func (e *Element) IsSelfClosing() bool {
	return e.selfClosing
}

// SetSelfClosing sets the self-closing flag.
func (e *Element) SetSelfClosing(on bool) *Element {
	e.selfClosing = on
	return e
}

// IsRaw is a predicate for elements holding trusted content.
func (e *Element) IsRaw() bool {
	return e.raw
}

// SetRaw flags the element's Text children as trusted content.
func (e *Element) SetRaw(on bool) *Element {
	e.raw = on
	return e
}

// Doctype returns the literal prefix of document roots, if any.
func (e *Element) Doctype() string {
	return e.doctype
}

// SetDoctype sets a literal prefix to be rendered before the element.
func (e *Element) SetDoctype(doctype string) *Element {
	e.doctype = doctype
	return e
}

// Kind returns the discriminator of specialized elements. Plain elements
// have an empty kind.
func (e *Element) Kind() string {
	return e.kind
}

// SetKind sets the discriminator used to reconstruct specialized elements
// from their serialized form.
func (e *Element) SetKind(kind string) *Element {
	e.kind = kind
	return e
}

// Hooks returns the element's callbacks.
func (e *Element) Hooks() Hooks {
	return e.hooks
}

// SetHooks replaces the element's callbacks.
func (e *Element) SetHooks(h Hooks) *Element {
	e.hooks = h
	return e
}

// Source returns the path of lazily loaded raw content, if any.
func (e *Element) Source() string {
	return e.source
}

// SetSource sets a path of raw content to be loaded at render time.
// If no loader is set, FileLoader will be used.
func (e *Element) SetSource(path string) *Element {
	e.source = path
	e.raw = true
	if e.loader == nil {
		e.loader = FileLoader
	}
	return e
}

// SetLoader sets the loader for raw content.
func (e *Element) SetLoader(loader Loader) *Element {
	e.loader = loader
	return e
}
