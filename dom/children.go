package dom

import (
	"fmt"
	"reflect"
	"slices"

	"github.com/npillmayer/markup/attr"
)

// Append adds items at the end of the list of children. Accepted items are
// the same as for New. If any item has an invalid type, nothing is added and
// an error wrapping ErrValidation is returned.
//
// Adding content to a self-closing element is not an error, but results in
// a warning.
func (e *Element) Append(items ...any) (*Element, error) {
	resolved, err := resolve(items, nil)
	if err != nil {
		return e, err
	}
	e.attach(resolved, false)
	return e, nil
}

// Prepend adds items in front of the list of children, keeping their order.
func (e *Element) Prepend(items ...any) (*Element, error) {
	resolved, err := resolve(items, nil)
	if err != nil {
		return e, err
	}
	e.attach(resolved, true)
	return e, nil
}

// Add appends typed items. nil elements are ignored.
// It returns the element to allow for chaining.
func (e *Element) Add(items ...Item) *Element {
	e.attach(items, false)
	return e
}

// resolve maps dynamically typed items onto Items, flattening slices.
func resolve(items []any, out []Item) ([]Item, error) {
	var err error
	for _, it := range items {
		switch v := it.(type) {
		case nil:
		case *Element:
			if v != nil {
				out = append(out, v)
			}
		case Item:
			out = append(out, v)
		case string:
			out = append(out, Text(v))
		case attr.Pair:
			out = append(out, Attribute{Key: v.Key, Value: v.Value})
		case []any:
			if out, err = resolve(v, out); err != nil {
				return nil, err
			}
		case []Item:
			out = append(out, Group(v))
		case []Node:
			for _, n := range v {
				out = append(out, n)
			}
		case []*Element:
			for _, n := range v {
				out = append(out, n)
			}
		case []string:
			for _, s := range v {
				out = append(out, Text(s))
			}
		default:
			if rv := reflect.ValueOf(it); rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
				list := make([]any, rv.Len())
				for i := range list {
					list[i] = rv.Index(i).Interface()
				}
				if out, err = resolve(list, out); err != nil {
					return nil, err
				}
				continue
			}
			tracer().Errorf("cannot attach item of type %T", it)
			return nil, fmt.Errorf("%w: cannot attach item of type %T", ErrValidation, it)
		}
	}
	return out, nil
}

func isNil(it Item) bool {
	if it == nil {
		return true
	}
	v := reflect.ValueOf(it)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

func (e *Element) attach(items []Item, front bool) {
	var nodes []Node
	var collect func([]Item)
	collect = func(items []Item) {
		for _, it := range items {
			if isNil(it) {
				continue
			}
			switch v := it.(type) {
			case *Element:
				nodes = append(nodes, v)
			case Text:
				if v != "" {
					nodes = append(nodes, v)
				}
			case Attribute:
				e.setAttribute(v.Key, v.Value)
			case Group:
				collect(v)
			case Hooks:
				e.hooks = v
			}
		}
	}
	collect(items)
	if len(nodes) == 0 {
		return
	}
	if e.selfClosing {
		Warn(Warning{
			Kind:    SelfClosingContent,
			Tag:     e.tag,
			Message: fmt.Sprintf("self-closing element <%s /> cannot render children", e.tag),
		})
	}
	if front {
		e.children = append(nodes, e.children...)
	} else {
		e.children = append(e.children, nodes...)
	}
}

// Clear removes all children.
func (e *Element) Clear() *Element {
	e.children = nil
	return e
}

// Pop removes and returns the child at index. Negative indices count from
// the end, i.e. Pop(-1) removes the last child.
func (e *Element) Pop(index int) (Node, error) {
	i, err := e.position(index)
	if err != nil {
		return nil, err
	}
	n := e.children[i]
	e.children = slices.Delete(e.children, i, i+1)
	return n, nil
}

// RemoveAll removes every child for which pred returns true.
func (e *Element) RemoveAll(pred func(Node) bool) *Element {
	e.children = slices.DeleteFunc(e.children, pred)
	return e
}

// ReplaceChild replaces the child at index with n.
func (e *Element) ReplaceChild(index int, n Node) error {
	if isNil(n) {
		return fmt.Errorf("%w: cannot replace child by nil", ErrValidation)
	}
	i, err := e.position(index)
	if err != nil {
		return err
	}
	e.children[i] = n
	return nil
}

func (e *Element) position(index int) (int, error) {
	l := len(e.children)
	i := index
	if i < 0 {
		i += l
	}
	if i < 0 || i >= l {
		return 0, fmt.Errorf("%w: index %d for %d children", ErrOutOfRange, index, l)
	}
	return i, nil
}

// First returns the first child, or nil.
func (e *Element) First() Node {
	if len(e.children) == 0 {
		return nil
	}
	return e.children[0]
}

// Last returns the last child, or nil.
func (e *Element) Last() Node {
	if len(e.children) == 0 {
		return nil
	}
	return e.children[len(e.children)-1]
}

// Child returns the child at index. Negative indices count from the end.
func (e *Element) Child(index int) (Node, bool) {
	i, err := e.position(index)
	if err != nil {
		return nil, false
	}
	return e.children[i], true
}

// CountChildren returns the number of children.
func (e *Element) CountChildren() int {
	return len(e.children)
}

// Children returns a copy of the list of children.
func (e *Element) Children() []Node {
	return slices.Clone(e.children)
}

// TextContent concatenates all Text nodes of the subtree.
func (e *Element) TextContent() string {
	var s []byte
	var walk func(*Element)
	walk = func(e *Element) {
		for _, ch := range e.children {
			switch c := ch.(type) {
			case Text:
				s = append(s, c...)
			case *Element:
				walk(c)
			}
		}
	}
	walk(e)
	return string(s)
}
