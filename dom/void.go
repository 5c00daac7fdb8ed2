package dom

import (
	"strings"

	"golang.org/x/net/html/atom"
)

var voidElements = map[atom.Atom]bool{
	atom.Area:   true,
	atom.Base:   true,
	atom.Br:     true,
	atom.Col:    true,
	atom.Embed:  true,
	atom.Hr:     true,
	atom.Img:    true,
	atom.Input:  true,
	atom.Link:   true,
	atom.Meta:   true,
	atom.Param:  true,
	atom.Source: true,
	atom.Track:  true,
	atom.Wbr:    true,
}

var preformatted = map[atom.Atom]bool{
	atom.Pre:      true,
	atom.Code:     true,
	atom.Textarea: true,
	atom.Script:   true,
	atom.Style:    true,
}

// IsVoidElement is a predicate for tags which never have content
// (br, img, input, …). Matching is case-insensitive.
func IsVoidElement(tag string) bool {
	return voidElements[atom.Lookup([]byte(strings.ToLower(tag)))]
}

// IsPreformatted is a predicate for tags whose whitespace is significant.
func IsPreformatted(tag string) bool {
	return preformatted[atom.Lookup([]byte(strings.ToLower(tag)))]
}

// IsRawText is a predicate for tags whose content is not markup
// (script and style).
func IsRawText(tag string) bool {
	a := atom.Lookup([]byte(strings.ToLower(tag)))
	return a == atom.Script || a == atom.Style
}
