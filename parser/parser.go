/*
Package parser reconstructs element trees from markup text.

Parsing is tolerant: it never fails. Input is tokenized into a stream of
events (Tokenize) and reduced into a tree using a stack of open elements.
Anomalies are repaired where a simple repair exists and reported as
dom.Warnings:

	<div><span></div></span>

yields a div holding an empty span, a mismatched-tag warning for </div>
(which implicitly closes the span) and an unmatched-close-tag warning
for the trailing </span>.

This is not an implementation of the HTML5 tree construction algorithm.
There is no implicit opening of elements, no foster parenting and no
re-ordering of content.

Whitespace-only text between elements is dropped. It is kept within
pre, code, textarea, script and style, and as the sole content of an
element. Content of script and style elements is not decoded and the
elements are flagged as raw, so they render as they were found.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package parser

import (
	"fmt"

	"github.com/npillmayer/markup/dom"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'markup.parser'.
func tracer() tracing.Trace {
	return tracing.Select("markup.parser")
}

type config struct {
	keepComments bool
}

// Option configures a parse.
type Option func(config) config

// KeepComments is an option to keep comments in the tree, as raw fragments
// holding the comment's markup.
func KeepComments() Option {
	return func(c config) config {
		c.keepComments = true
		return c
	}
}

func run(text string, opts []Option) ([]dom.Node, []dom.Warning) {
	c := config{}
	for _, option := range opts {
		c = option(c)
	}
	r := newReducer(c)
	roots := r.reduce(Tokenize(text))
	tracer().Debugf("parsed %d root nodes with %d warnings", len(roots), len(r.warnings))
	return roots, r.warnings
}

// Parse reconstructs a single tree. If text contains more than one top-level
// node, the first one is returned together with a dom.MultipleRoots warning;
// use ParseFragment to retrieve all of them. Parse returns nil for empty or
// whitespace-only input.
func Parse(text string, opts ...Option) (dom.Node, []dom.Warning) {
	roots, warnings := run(text, opts)
	if len(roots) == 0 {
		return nil, warnings
	}
	if len(roots) > 1 {
		w := dom.Warning{
			Kind:    dom.MultipleRoots,
			Message: fmt.Sprintf("input has %d top-level nodes, returning the first one only", len(roots)),
		}
		if e, ok := roots[0].(*dom.Element); ok {
			w.Tag = e.Tag()
		}
		dom.Warn(w)
		warnings = append(warnings, w)
	}
	return roots[0], warnings
}

// ParseFragment reconstructs all top-level nodes of text.
func ParseFragment(text string, opts ...Option) ([]dom.Node, []dom.Warning) {
	return run(text, opts)
}

// ParseElement is a shortcut for Parse for input known to contain a single
// element. It returns nil if the first top-level node is not an element.
func ParseElement(text string, opts ...Option) (*dom.Element, []dom.Warning) {
	n, warnings := Parse(text, opts...)
	e, _ := n.(*dom.Element)
	return e, warnings
}
