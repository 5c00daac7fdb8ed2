package dom

import (
	"strings"

	"github.com/npillmayer/markup/attr"
)

// Item is anything which may be handed to an element constructor:
// Nodes, Attributes, Groups and Hooks.
type Item interface {
	item()
}

// Node is a node of a tree: either an *Element or Text.
type Node interface {
	Item
	node()
}

// Text is an immutable text leaf.
type Text string

func (Text) item() {}
func (Text) node() {}

func (*Element) item() {}
func (*Element) node() {}

// Attribute is an Item setting an attribute of the element it is handed to.
// Key is canonicalized on attachment.
type Attribute struct {
	Key   string
	Value string
}

func (Attribute) item() {}

// Group bundles items. Groups are flattened on attachment.
type Group []Item

func (Group) item() {}

// Attr creates an attribute item.
func Attr(key, value string) Attribute {
	return Attribute{Key: key, Value: value}
}

// ID creates an id attribute.
func ID(id string) Attribute {
	return Attribute{Key: "id", Value: id}
}

// Class creates a class attribute from one or more class names.
func Class(names ...string) Attribute {
	return Attribute{Key: "class", Value: strings.Join(names, " ")}
}

// Data creates a data-* attribute. name is given without the prefix.
func Data(name, value string) Attribute {
	return Attribute{Key: "data-" + name, Value: value}
}

// Bool creates a boolean attribute. A switched-off boolean attribute is
// not attached at all.
func Bool(key string, on bool) Item {
	if !on {
		return Group(nil)
	}
	return Attribute{Key: key, Value: attr.True}
}

// Hooks are optional callbacks invoked at fixed points of an element's
// life. Hooks handed to a constructor replace the element's hooks.
type Hooks struct {
	OnLoad       func(*Element) // after construction items have been applied
	BeforeRender func(*Element) // before the element's open tag is rendered
	AfterRender  func(*Element) // after the element's close tag is rendered
}

func (Hooks) item() {}

func (h Hooks) empty() bool {
	return h.OnLoad == nil && h.BeforeRender == nil && h.AfterRender == nil
}
