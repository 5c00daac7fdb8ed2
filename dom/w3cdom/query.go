package w3cdom

import (
	"fmt"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/markup/dom"
)

// Select returns all elements below root, including root itself, matching a
// CSS selector, in document order. Invalid selectors result in an error
// wrapping dom.ErrValidation.
func Select(root dom.Node, selector string) ([]*dom.Element, error) {
	sel, doc, err := prepare(root, selector)
	if err != nil {
		return nil, err
	}
	matches := sel.MatchAll(doc.root)
	elements := make([]*dom.Element, 0, len(matches))
	for _, m := range matches {
		if e, ok := doc.origin[m]; ok {
			elements = append(elements, e)
		}
	}
	tracer().Debugf("selector %q matches %d elements", selector, len(elements))
	return elements, nil
}

// SelectFirst returns the first element matching a CSS selector, or nil.
func SelectFirst(root dom.Node, selector string) (*dom.Element, error) {
	sel, doc, err := prepare(root, selector)
	if err != nil {
		return nil, err
	}
	if m := sel.MatchFirst(doc.root); m != nil {
		return doc.origin[m], nil
	}
	return nil, nil
}

// Query returns the converted nodes matching a CSS selector.
func (d *Document) Query(selector string) ([]Node, error) {
	sel, err := compile(selector)
	if err != nil {
		return nil, err
	}
	var nodes []Node
	for _, m := range sel.MatchAll(d.root) {
		nodes = append(nodes, Node{h: m, doc: d})
	}
	return nodes, nil
}

func prepare(root dom.Node, selector string) (cascadia.Selector, *Document, error) {
	sel, err := compile(selector)
	if err != nil {
		return nil, nil, err
	}
	doc, err := Convert(root)
	if err != nil {
		return nil, nil, err
	}
	return sel, doc, nil
}

func compile(selector string) (cascadia.Selector, error) {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		tracer().Infof("invalid selector %q: %v", selector, err)
		return nil, fmt.Errorf("%w: invalid selector %q: %w", dom.ErrValidation, selector, err)
	}
	return sel, nil
}

