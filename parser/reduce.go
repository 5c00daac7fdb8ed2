package parser

import (
	"fmt"
	"strings"

	"github.com/npillmayer/markup/attr"
	"github.com/npillmayer/markup/dom"
)

// reducer builds a tree from a stream of markup events, using an explicit
// stack of open elements.
type reducer struct {
	config
	stack    []*dom.Element
	roots    []dom.Node
	warnings []dom.Warning
	doctype  string   // pending doctype, waiting for an html root
	blank    dom.Text // pending whitespace-only text
}

func newReducer(c config) *reducer {
	return &reducer{config: c}
}

func (r *reducer) reduce(tokens []Token) []dom.Node {
	for _, tok := range tokens {
		if tok.Kind != Text {
			r.settleBlank(tok)
		}
		switch tok.Kind {
		case OpenTag, SelfClosingTag:
			r.open(tok)
		case CloseTag:
			r.close(tok)
		case Text:
			r.text(tok)
		case Comment:
			if r.keepComments {
				r.attach(dom.Raw(tok.Raw))
			}
		case Doctype:
			if len(r.roots) == 0 && len(r.stack) == 0 {
				r.doctype = tok.Data
			} else {
				tracer().Debugf("ignoring doctype %q inside document", tok.Data)
			}
		}
	}
	r.blank = ""
	for i := len(r.stack) - 1; i >= 0; i-- {
		tag := r.stack[i].Tag()
		r.warn(dom.UnclosedTag, tag, fmt.Sprintf("element <%s> not closed at end of input", tag))
	}
	r.stack = nil
	return r.roots
}

func (r *reducer) top() *dom.Element {
	if len(r.stack) == 0 {
		return nil
	}
	return r.stack[len(r.stack)-1]
}

func (r *reducer) attach(n dom.Node) {
	if top := r.top(); top != nil {
		top.Add(n)
	} else {
		r.roots = append(r.roots, n)
	}
}

func (r *reducer) open(tok Token) {
	if !attr.ValidTag(tok.Name) {
		tracer().Debugf("tag %q is not a valid tag name, taken as text", tok.Name)
		r.attach(dom.Text(tok.Raw))
		return
	}
	e, err := dom.New(tok.Name)
	if err != nil { // cannot happen for valid tags
		tracer().Errorf("cannot create <%s>: %v", tok.Name, err)
		return
	}
	r.attributes(e, tok.Attrs)
	if r.doctype != "" && len(r.stack) == 0 {
		if e.Tag() == "html" && len(r.roots) == 0 {
			e.SetDoctype(r.doctype)
		} else {
			tracer().Debugf("dropping doctype %q before <%s>", r.doctype, e.Tag())
		}
		r.doctype = ""
	}
	if dom.IsRawText(e.Tag()) {
		e.SetRaw(true)
	}
	r.attach(e)
	if tok.Kind == SelfClosingTag {
		e.SetSelfClosing(true)
		tracer().Debugf("<%s/>", e.Tag())
		return
	}
	tracer().Debugf("push <%s>", e.Tag())
	r.stack = append(r.stack, e)
}

// attributes canonicalizes attribute keys. If two spellings map onto the
// same key, the last value wins.
func (r *reducer) attributes(e *dom.Element, attrs []RawAttr) {
	spelling := make(map[string]string, len(attrs))
	for _, a := range attrs {
		key := attr.Canonical(a.Key)
		if prev, ok := spelling[key]; ok && prev != a.Key {
			r.warn(dom.AttributeCollision, e.Tag(), fmt.Sprintf(
				"attribute collision in <%s>: %q and %q both map to %q, keeping the last value",
				e.Tag(), prev, a.Key, key))
		}
		spelling[key] = a.Key
		e.AddAttribute(key, a.Value)
	}
}

func (r *reducer) close(tok Token) {
	if dom.IsVoidElement(tok.Name) {
		tracer().Debugf("ignoring close tag of void element </%s>", tok.Name)
		return
	}
	at := -1
	for i := len(r.stack) - 1; i >= 0; i-- {
		if r.stack[i].Tag() == tok.Name {
			at = i
			break
		}
	}
	if at < 0 {
		r.warn(dom.UnmatchedCloseTag, tok.Name, fmt.Sprintf(
			"unexpected closing tag </%s> with no matching opening tag", tok.Name))
		return
	}
	if at < len(r.stack)-1 {
		expected := r.top().Tag()
		r.warn(dom.MismatchedTag, expected, fmt.Sprintf(
			"mismatched tags: expected </%s> but found </%s>", expected, tok.Name))
	}
	tracer().Debugf("pop <%s>", tok.Name)
	r.stack = r.stack[:at]
}

func (r *reducer) text(tok Token) {
	if strings.TrimSpace(tok.Data) != "" || r.preformatted() {
		t := r.blank + dom.Text(tok.Data)
		r.blank = ""
		r.attach(t)
		return
	}
	r.blank += dom.Text(tok.Data)
}

// settleBlank decides on pending whitespace when the next non-text event
// arrives. Whitespace is kept only as the sole content of a leaf element.
func (r *reducer) settleBlank(next Token) {
	if r.blank == "" {
		return
	}
	blank := r.blank
	r.blank = ""
	top := r.top()
	if top == nil || next.Kind != CloseTag || next.Name != top.Tag() {
		return
	}
	for _, ch := range top.Children() {
		if _, isElement := ch.(*dom.Element); isElement {
			return
		}
	}
	top.Add(blank)
}

func (r *reducer) preformatted() bool {
	for _, e := range r.stack {
		if dom.IsPreformatted(e.Tag()) {
			return true
		}
	}
	return false
}

func (r *reducer) warn(kind dom.WarningKind, tag, msg string) {
	w := dom.Warning{Kind: kind, Tag: tag, Message: msg}
	r.warnings = append(r.warnings, w)
	dom.Warn(w)
}
