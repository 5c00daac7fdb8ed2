/*
Package w3cdom bridges element trees to the node trees of package
golang.org/x/net/html, giving access to the tools of that ecosystem, most
notably CSS selector queries.

	items, err := w3cdom.Select(page, "ul.menu > li:first-child a[href]")

Conversion keeps fragments transparent: their children are spliced into
the parent. Raw content becomes html.RawNode, and content loaded from a
source is read during conversion.

Converted trees are snapshots. Changes to an element tree are not
reflected in earlier conversions.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package w3cdom

import (
	"strings"

	"github.com/npillmayer/markup/dom"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
)

// tracer traces with key 'markup.w3cdom'.
func tracer() tracing.Trace {
	return tracing.Select("markup.w3cdom")
}

// Node is a W3C-style view onto a converted node.
type Node struct {
	h   *html.Node
	doc *Document
}

// NodeType returns the type of the underlying HTML node (ElementNode,
// TextNode, etc.).
func (n Node) NodeType() html.NodeType { return n.h.Type }

// NodeName returns the tag for elements and "#text", "#document" etc.
// for other nodes.
func (n Node) NodeName() string {
	switch n.h.Type {
	case html.ElementNode:
		return n.h.Data
	case html.TextNode, html.RawNode:
		return "#text"
	case html.DocumentNode:
		return "#document"
	case html.CommentNode:
		return "#comment"
	case html.DoctypeNode:
		return n.h.Data
	}
	return ""
}

// NodeValue returns the text of text nodes, "" otherwise.
func (n Node) NodeValue() string {
	if n.h.Type == html.TextNode || n.h.Type == html.RawNode || n.h.Type == html.CommentNode {
		return n.h.Data
	}
	return ""
}

// HasAttributes checks for existence of attributes.
func (n Node) HasAttributes() bool { return len(n.h.Attr) > 0 }

// Attributes returns all attributes of a node.
func (n Node) Attributes() []html.Attribute { return n.h.Attr }

// ParentNode returns the parent node, if any.
func (n Node) ParentNode() (Node, bool) { return n.wrap(n.h.Parent) }

// FirstChild returns the first child node, if any.
func (n Node) FirstChild() (Node, bool) { return n.wrap(n.h.FirstChild) }

// NextSibling returns the node's next sibling, if any.
func (n Node) NextSibling() (Node, bool) { return n.wrap(n.h.NextSibling) }

// HasChildNodes checks for existence of sub-nodes.
func (n Node) HasChildNodes() bool { return n.h.FirstChild != nil }

// ChildNodes returns all children of a node.
func (n Node) ChildNodes() []Node {
	var children []Node
	for ch := n.h.FirstChild; ch != nil; ch = ch.NextSibling {
		children = append(children, Node{h: ch, doc: n.doc})
	}
	return children
}

// Children returns the element children of a node.
func (n Node) Children() []Node {
	var children []Node
	for ch := n.h.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.Type == html.ElementNode {
			children = append(children, Node{h: ch, doc: n.doc})
		}
	}
	return children
}

// TextContent returns the text of a node and all its descendents.
func (n Node) TextContent() string {
	var b strings.Builder
	var collect func(*html.Node)
	collect = func(h *html.Node) {
		if h.Type == html.TextNode || h.Type == html.RawNode {
			b.WriteString(h.Data)
		}
		for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
			collect(ch)
		}
	}
	collect(n.h)
	return b.String()
}

// HTML returns the underlying node.
func (n Node) HTML() *html.Node { return n.h }

// Element returns the element a node has been converted from. It is nil
// for text nodes and the document node.
func (n Node) Element() *dom.Element { return n.doc.origin[n.h] }

func (n Node) wrap(h *html.Node) (Node, bool) {
	if h == nil {
		return Node{}, false
	}
	return Node{h: h, doc: n.doc}, true
}
