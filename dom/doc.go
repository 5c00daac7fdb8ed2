/*
Package dom implements mutable trees of markup elements.

Overview

A tree consists of two kinds of nodes: *Element and Text. Elements carry a
tag, an ordered set of attributes and an ordered list of children. Text
nodes are immutable string leafs. A fragment is an element without a tag of
its own; rendering a fragment emits its children only. Fragments are used to
compose sibling subtrees without introducing a wrapping container.

Trees are built from Items:

	page := dom.El("div", dom.ID("main"), dom.Class("container"),
	    dom.El("h1", dom.Text("Welcome")),
	)

Constructors taking Items are typed and used by package tags. Clients
assembling trees from dynamic input use New, Append and Prepend, which
accept arbitrary values and return a validation error for anything which is
not a node, a string, an attribute or a (nested) slice of them.

Attribute keys are canonicalized on attachment (see package attr) and
lookups canonicalize their argument, so

	e.AddAttribute("data_user_id", "7")
	e.Attribute("data-user-id") // "7", true

Single Owner

Trees are exclusively owned by their creator. Nodes are never shared
between two positions of a tree: re-using a subtree requires a Clone.
Operations on a single tree are not synchronized.

Anomalies which do not stop an operation, for example adding content to a
self-closing element, are reported as Warnings through a side channel
(see SetWarningHandler) and are traced to 'markup.dom'.

Errors

Validation errors are returned synchronously from the mutating call. All
errors of this package wrap one of the sentinel errors ErrValidation,
ErrDepthExceeded, ErrOutOfRange, ErrNotFound or ErrIO.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"os"

	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'markup.dom'.
func tracer() tracing.Trace {
	return tracing.Select("markup.dom")
}

// generateIDs is set if every constructed element should receive an id.
var generateIDs = os.Getenv("MARKUP_GENERATE_IDS") != ""
