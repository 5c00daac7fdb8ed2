package dom

// Clone returns a deep copy of e. The copy shares no mutable state with e.
// Hooks and loaders are copied by reference.
func (e *Element) Clone() *Element {
	if e == nil {
		return nil
	}
	c := *e
	c.attrs = e.attrs.Clone()
	if e.children != nil {
		c.children = make([]Node, len(e.children))
		for i, ch := range e.children {
			c.children[i] = Clone(ch)
		}
	}
	return &c
}

// Clone returns a deep copy of a node.
func Clone(n Node) Node {
	if e, ok := n.(*Element); ok {
		return e.Clone()
	}
	return n
}

// Equal compares two nodes structurally: tags, flags, doctype, kind, source,
// attributes in order and children in order. Hooks and loaders are not
// compared.
func Equal(a, b Node) bool {
	switch x := a.(type) {
	case Text:
		y, ok := b.(Text)
		return ok && x == y
	case *Element:
		y, ok := b.(*Element)
		if !ok || x == nil || y == nil {
			return ok && x == y
		}
		return equalElements(x, y)
	}
	return a == nil && b == nil
}

func equalElements(x, y *Element) bool {
	if x.tag != y.tag || x.fragment != y.fragment || x.selfClosing != y.selfClosing ||
		x.raw != y.raw || x.doctype != y.doctype || x.kind != y.kind || x.source != y.source {
		return false
	}
	if !x.attrs.Equal(y.attrs) || len(x.children) != len(y.children) {
		return false
	}
	for i := range x.children {
		if !Equal(x.children[i], y.children[i]) {
			return false
		}
	}
	return true
}
