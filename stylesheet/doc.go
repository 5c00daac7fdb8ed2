/*
Package stylesheet is a registry of CSS classes. Clients register named
classes with their declarations, optionally with pseudo-class and
breakpoint variants, and embed the resulting style sheet into an element
tree.

	sheet := stylesheet.NewSheet()
	btn, err := sheet.Register("btn",
	    []attr.Pair{attr.P("background_color", "#007bff"), attr.P("color", "white")},
	    stylesheet.Hover(attr.P("background_color", "#0056b3")),
	    stylesheet.Breakpoint("md", attr.P("padding", "20px")),
	)
	…
	head.Add(sheet.Node())

Style sheets are rendered and parsed with package github.com/aymerick/douceur.
Breakpoints are mobile-first min-width media queries:

	sm   640px
	md   768px
	lg  1024px
	xl  1280px
	2xl 1536px

Property names use CSS spelling; underscores are converted to hyphens.
Values are checked for injection patterns like any inline style.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package stylesheet

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'markup.stylesheet'.
func tracer() tracing.Trace {
	return tracing.Select("markup.stylesheet")
}
