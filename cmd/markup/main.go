/*
Command markup formats, converts and inspects HTML fragments.

	markup fmt page.html               # pretty-print
	markup json --indent 2 page.html   # structured form as JSON
	markup json --yaml page.html       # structured form as YAML
	markup html tree.json              # structured form back to HTML
	markup tree page.html              # outline of the element tree
	markup select "ul > li" page.html  # elements matching a CSS selector
	markup dot page.html | dot -Tsvg   # GraphViz diagram

Input is read from standard input if no file is given. Parser warnings are
reported on standard error.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
