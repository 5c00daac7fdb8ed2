/*
Package tags is a catalog of element constructors, one for each standard
HTML tag and a few SVG and MathML ones.

	page := tags.HTML(
	    tags.Head(tags.Title(dom.Text("Hello"))),
	    tags.Body(tags.H1(dom.Class("title"), dom.Text("Hello World"))),
	)

Constructors of void elements (img, br, input, …) create self-closing
elements. Script and Style create ordinary elements, their content is
escaped like any other text unless the element is switched to raw mode.

Constructors panic for invalid tag names, which cannot happen for the
catalog's fixed names.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tags

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'markup.tags'.
func tracer() tracing.Trace {
	return tracing.Select("markup.tags")
}
