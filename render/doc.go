/*
Package render serializes element trees to markup text.

Text and attribute values are entity-escaped, except for the children of
raw elements, which are trusted and written verbatim. Fragments contribute
their children only. Document roots are prefixed by their doctype.

Rendering is bounded by a maximum depth (option MaxDepth). Trees nested
deeper, usually the result of a cycle introduced by aliasing a node, fail
with dom.ErrDepthExceeded instead of exhausting the stack.

Attributes with keys which cannot be written safely are skipped and
reported as dom.InvalidAttribute warnings.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package render

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'markup.render'.
func tracer() tracing.Trace {
	return tracing.Select("markup.render")
}
