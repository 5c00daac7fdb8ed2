package dom

import (
	"fmt"
	"iter"
)

// Traversal holds the options of recursive queries.
type Traversal struct {
	recursive bool
	maxDepth  int
}

// Option is a type to configure traversals.
type Option func(Traversal) Traversal

// Recursive is an option to include all descendants in a traversal,
// instead of direct children only.
func Recursive() Option {
	return func(t Traversal) Traversal {
		t.recursive = true
		return t
	}
}

// MaxDepth is an option to set the depth bound of a traversal.
// The default is DefaultMaxDepth.
func MaxDepth(n int) Option {
	return func(t Traversal) Traversal {
		t.maxDepth = n
		return t
	}
}

func traversal(opts []Option) Traversal {
	t := Traversal{maxDepth: DefaultMaxDepth}
	for _, option := range opts {
		t = option(t)
	}
	return t
}

// NewTraversal applies options to the default traversal settings. It is
// meant for packages implementing their own walks over element trees.
func NewTraversal(opts ...Option) Traversal {
	return traversal(opts)
}

// IsRecursive is true if all descendants are to be visited.
func (t Traversal) IsRecursive() bool { return t.recursive }

// Limit returns the depth bound of a traversal.
func (t Traversal) Limit() int { return t.maxDepth }

func depthError(op string, max int) error {
	tracer().Errorf("%s: maximum depth %d exceeded", op, max)
	return fmt.Errorf("%w: %s beyond depth %d", ErrDepthExceeded, op, max)
}

// Filter yields the children of e matching pred. With option Recursive, all
// descendants are visited in depth-first pre-order. Descending deeper than
// the maximum depth yields ErrDepthExceeded and ends the sequence.
//
//     for n, err := range e.Filter(isImage, dom.Recursive()) {
//         if err != nil { … }
//     }
//
func (e *Element) Filter(pred func(Node) bool, opts ...Option) iter.Seq2[Node, error] {
	t := traversal(opts)
	return func(yield func(Node, error) bool) {
		var walk func(*Element, int) bool
		walk = func(el *Element, depth int) bool {
			if depth > t.maxDepth {
				yield(nil, depthError("filter", t.maxDepth))
				return false
			}
			for _, ch := range el.children {
				if pred(ch) && !yield(ch, nil) {
					return false
				}
				if sub, ok := ch.(*Element); ok && t.recursive {
					if !walk(sub, depth+1) {
						return false
					}
				}
			}
			return true
		}
		walk(e, 0)
	}
}

// FindByAttribute returns the first element in pre-order, starting with e
// itself, having attribute key set to value. The result is nil if no
// element matches.
func (e *Element) FindByAttribute(key, value string, opts ...Option) (*Element, error) {
	t := traversal(opts)
	var find func(*Element, int) (*Element, error)
	find = func(el *Element, depth int) (*Element, error) {
		if depth > t.maxDepth {
			return nil, depthError("find", t.maxDepth)
		}
		if v, ok := el.Attribute(key); ok && v == value {
			return el, nil
		}
		for _, ch := range el.children {
			if sub, ok := ch.(*Element); ok {
				if found, err := find(sub, depth+1); found != nil || err != nil {
					return found, err
				}
			}
		}
		return nil, nil
	}
	return find(e, 0)
}

// IsElement is a predicate for element nodes with a given tag. An empty tag
// matches all elements except fragments.
func IsElement(tag string) func(Node) bool {
	return func(n Node) bool {
		e, ok := n.(*Element)
		return ok && !e.fragment && (tag == "" || e.tag == tag)
	}
}

// IsText is a predicate for text nodes.
func IsText(n Node) bool {
	_, ok := n.(Text)
	return ok
}
