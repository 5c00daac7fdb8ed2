package w3cdom

import (
	"fmt"
	"io"

	"github.com/npillmayer/markup/dom"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Document is the result of converting an element tree.
type Document struct {
	root   *html.Node
	origin map[*html.Node]*dom.Element
}

// Root returns the document node.
func (d *Document) Root() Node {
	return Node{h: d.root, doc: d}
}

// Origin returns the element an HTML node has been converted from.
func (d *Document) Origin(h *html.Node) (*dom.Element, bool) {
	e, ok := d.origin[h]
	return e, ok
}

// ToHTML converts a tree to a golang.org/x/net/html node tree, below a
// html.DocumentNode. The map associates HTML element nodes with their
// originating elements.
func ToHTML(n dom.Node) (*html.Node, map[*html.Node]*dom.Element, error) {
	doc, err := Convert(n)
	if err != nil {
		return nil, nil, err
	}
	return doc.root, doc.origin, nil
}

// Convert converts a tree into a Document. Option dom.MaxDepth bounds the
// depth of the conversion.
func Convert(n dom.Node, opts ...dom.Option) (*Document, error) {
	c := converter{
		doc:      &Document{root: &html.Node{Type: html.DocumentNode}, origin: make(map[*html.Node]*dom.Element)},
		maxDepth: dom.NewTraversal(opts...).Limit(),
	}
	if e, ok := n.(*dom.Element); ok && e.Doctype() != "" {
		c.doc.root.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
	}
	if err := c.node(c.doc.root, n, false, 0); err != nil {
		return nil, err
	}
	return c.doc, nil
}

type converter struct {
	doc      *Document
	maxDepth int
}

func (c *converter) node(parent *html.Node, n dom.Node, raw bool, depth int) error {
	switch x := n.(type) {
	case dom.Text:
		t := html.TextNode
		if raw {
			t = html.RawNode
		}
		parent.AppendChild(&html.Node{Type: t, Data: string(x)})
	case *dom.Element:
		if x == nil {
			return nil
		}
		return c.element(parent, x, depth)
	}
	return nil
}

func (c *converter) element(parent *html.Node, e *dom.Element, depth int) error {
	if depth > c.maxDepth {
		tracer().Errorf("conversion: maximum depth %d exceeded", c.maxDepth)
		return fmt.Errorf("%w: conversion beyond depth %d", dom.ErrDepthExceeded, c.maxDepth)
	}
	children := e.Children()
	if e.Source() != "" {
		content, err := e.Content()
		if err != nil {
			return err
		}
		children = []dom.Node{dom.Text(content)}
	}
	target := parent
	if !e.IsFragment() {
		target = &html.Node{
			Type:     html.ElementNode,
			Data:     e.Tag(),
			DataAtom: atom.Lookup([]byte(e.Tag())),
		}
		for k, v := range e.Attributes().All() {
			target.Attr = append(target.Attr, html.Attribute{Key: k, Val: v})
		}
		parent.AppendChild(target)
		c.doc.origin[target] = e
		if e.IsSelfClosing() {
			return nil
		}
	}
	for _, ch := range children {
		if err := c.node(target, ch, e.IsRaw(), depth+1); err != nil {
			return err
		}
	}
	return nil
}

// Render writes the converted tree with the renderer of golang.org/x/net/html.
func (d *Document) Render(w io.Writer) error {
	return html.Render(w, d.root)
}
