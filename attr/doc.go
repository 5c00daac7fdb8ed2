/*
Package attr implements the attribute policy shared by all markup trees.

Overview

Attribute keys reach a tree from three directions: Go call sites, parsed
markup, and decoded structured text. Each of them spells keys a little
differently. Go identifiers cannot contain hyphens, parsed markup arrives
lower-cased, and SVG wants camelCase. Canonical maps every spelling to the
single key stored in a tree:

   class_, cls, class_name, className   →  class
   for_, for_element, html_for, htmlFor →  for
   data_user_id                         →  data-user-id
   view_box, viewbox, viewBox           →  viewBox
   aria_label                           →  aria-label

Canonicalization is idempotent, so keys may safely be canonicalized again at
lookup time.

The package also owns the validation of values which could break out of
their attribute context: inline style values (ValidateStyleValue) and class
names registered with a style sheet (ValidateClassName).

Map is the insertion-ordered attribute container used by element nodes.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package attr

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'markup.attr'.
func tracer() tracing.Trace {
	return tracing.Select("markup.attr")
}
