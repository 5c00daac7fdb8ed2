package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/markup/attr"
	"github.com/npillmayer/markup/dom"
	"golang.org/x/net/html"
)

// Options configure a rendering run.
type Options struct {
	pretty    bool
	maxDepth  int
	onWarning dom.WarningHandler
}

// Option is a type to help configuring rendering runs.
type Option func(Options) Options

// Pretty is an option to indent nested elements by two spaces per level and
// to put every element on a line of its own. Elements containing nothing
// but text stay on one line.
func Pretty() Option {
	return func(o Options) Options {
		o.pretty = true
		return o
	}
}

// MaxDepth is an option to set the maximum nesting depth. Deeper trees fail
// to render with dom.ErrDepthExceeded. The default is dom.DefaultMaxDepth.
func MaxDepth(n int) Option {
	return func(o Options) Options {
		o.maxDepth = n
		return o
	}
}

// OnWarning is an option to receive the warnings of a rendering run, instead
// of forwarding them to the process-wide warning handler.
func OnWarning(h dom.WarningHandler) Option {
	return func(o Options) Options {
		o.onWarning = h
		return o
	}
}

// HTML renders a node to a string.
//
//     s, err := render.HTML(page, render.Pretty())
//
func HTML(n dom.Node, opts ...Option) (string, error) {
	var b strings.Builder
	r := newRenderer(&b, opts)
	if err := r.top(n); err != nil {
		return "", err
	}
	return b.String(), nil
}

// Write renders a node to w. Nothing is written if rendering fails.
func Write(w io.Writer, n dom.Node, opts ...Option) error {
	s, err := HTML(n, opts...)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, s)
	return err
}

// renderer walks a tree in pre-order and emits markup. depth counts recursive
// descents, level counts indentation steps; they differ below fragments.
type renderer struct {
	Options
	b *strings.Builder
}

func newRenderer(b *strings.Builder, opts []Option) *renderer {
	o := Options{maxDepth: dom.DefaultMaxDepth}
	for _, option := range opts {
		o = option(o)
	}
	return &renderer{Options: o, b: b}
}

func (r *renderer) top(n dom.Node) error {
	switch v := n.(type) {
	case dom.Text:
		r.text(v, false)
		return nil
	case *dom.Element:
		if v == nil {
			return nil
		}
		return r.element(v, 0, 0)
	}
	return nil
}

func (r *renderer) element(e *dom.Element, depth, level int) error {
	if depth > r.maxDepth {
		tracer().Errorf("render: maximum depth %d exceeded at <%s>", r.maxDepth, e.Tag())
		return fmt.Errorf("%w: render beyond depth %d", dom.ErrDepthExceeded, r.maxDepth)
	}
	hooks := e.Hooks()
	if hooks.BeforeRender != nil {
		hooks.BeforeRender(e)
	}
	children, err := contentOf(e)
	if err != nil {
		return err
	}
	if e.IsFragment() {
		err = r.fragment(e, children, depth, level)
	} else {
		err = r.tagged(e, children, depth, level)
	}
	if err != nil {
		return err
	}
	if hooks.AfterRender != nil {
		hooks.AfterRender(e)
	}
	return nil
}

// contentOf returns the children of e, with lazily loaded raw content
// standing in for them.
func contentOf(e *dom.Element) ([]dom.Node, error) {
	if e.Source() == "" {
		return e.Children(), nil
	}
	content, err := e.Content()
	if err != nil {
		return nil, err
	}
	return []dom.Node{dom.Text(content)}, nil
}

func (r *renderer) fragment(e *dom.Element, children []dom.Node, depth, level int) error {
	r.b.WriteString(e.Doctype())
	for _, ch := range children {
		if err := r.child(ch, e.IsRaw(), depth+1, level); err != nil {
			return err
		}
	}
	return nil
}

func (r *renderer) tagged(e *dom.Element, children []dom.Node, depth, level int) error {
	r.b.WriteString(e.Doctype())
	r.indent(level)
	r.b.WriteByte('<')
	r.b.WriteString(e.Tag())
	r.attributes(e)
	if e.IsSelfClosing() {
		r.b.WriteString(" />")
		r.newline()
		return nil
	}
	r.b.WriteByte('>')
	if !r.pretty || textOnly(children) {
		for _, ch := range children {
			if t, ok := ch.(dom.Text); ok {
				r.text(t, e.IsRaw())
			} else if err := r.element(ch.(*dom.Element), depth+1, level+1); err != nil {
				return err
			}
		}
	} else {
		rest := children
		if t, ok := children[0].(dom.Text); ok {
			r.text(t, e.IsRaw())
			rest = children[1:]
		}
		r.newline()
		for _, ch := range rest {
			if err := r.child(ch, e.IsRaw(), depth+1, level+1); err != nil {
				return err
			}
		}
		r.indent(level)
	}
	r.b.WriteString("</")
	r.b.WriteString(e.Tag())
	r.b.WriteByte('>')
	r.newline()
	return nil
}

// child renders a node in a list of siblings. In pretty mode, text nodes get
// a line of their own.
func (r *renderer) child(n dom.Node, raw bool, depth, level int) error {
	switch v := n.(type) {
	case dom.Text:
		r.indent(level)
		r.text(v, raw)
		r.newline()
	case *dom.Element:
		return r.element(v, depth, level)
	}
	return nil
}

func textOnly(children []dom.Node) bool {
	for _, ch := range children {
		if _, ok := ch.(dom.Text); !ok {
			return false
		}
	}
	return true
}

func (r *renderer) attributes(e *dom.Element) {
	for k, v := range e.Attributes().All() {
		if !attr.ValidKey(k) {
			dom.Report(dom.Warning{
				Kind:    dom.InvalidAttribute,
				Tag:     e.Tag(),
				Message: fmt.Sprintf("skipping invalid attribute name %q on <%s>", k, e.Tag()),
			}, r.onWarning)
			continue
		}
		r.b.WriteByte(' ')
		r.b.WriteString(k)
		if attr.RendersBare(k, v) {
			continue
		}
		r.b.WriteString(`="`)
		r.b.WriteString(html.EscapeString(v))
		r.b.WriteByte('"')
	}
}

func (r *renderer) text(t dom.Text, raw bool) {
	if raw {
		r.b.WriteString(string(t))
		return
	}
	r.b.WriteString(html.EscapeString(string(t)))
}

func (r *renderer) indent(level int) {
	if r.pretty {
		for range level {
			r.b.WriteString("  ")
		}
	}
}

func (r *renderer) newline() {
	if r.pretty {
		r.b.WriteByte('\n')
	}
}
