package parser

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/markup/dom"
	"golang.org/x/net/html"
)

// TokenKind is the type of a markup event.
type TokenKind int

// Kinds of markup events.
const (
	OpenTag        TokenKind = iota + 1 // <name attrs>
	CloseTag                            // </name>
	SelfClosingTag                      // <name attrs/> or a void element
	Text                                // character data, entities decoded
	Comment                             // <!--…-->
	Doctype                             // <!DOCTYPE …>
)

func (k TokenKind) String() string {
	switch k {
	case OpenTag:
		return "open"
	case CloseTag:
		return "close"
	case SelfClosingTag:
		return "self-closing"
	case Text:
		return "text"
	case Comment:
		return "comment"
	case Doctype:
		return "doctype"
	}
	return "unknown"
}

// RawAttr is an attribute as spelled in the input.
type RawAttr struct {
	Key   string
	Value string // bare attributes have an empty value
}

// Token is a single markup event.
type Token struct {
	Kind  TokenKind
	Name  string    // tag name for tag events, lower case
	Attrs []RawAttr // attributes of open and self-closing tags
	Data  string    // text, comment content, or the literal doctype
	Raw   string    // the event as found in the input
}

func (t Token) String() string {
	switch t.Kind {
	case Text, Comment, Doctype:
		return fmt.Sprintf("%s(%q)", t.Kind, t.Data)
	}
	return fmt.Sprintf("%s(%s %v)", t.Kind, t.Name, t.Attrs)
}

// Tokenize scans markup text into a sequence of events. Tokenizing never
// fails: input which cannot be read as markup, e.g. a tag left open at the
// end of input, is returned as Text.
//
// Content of script and style elements is returned as a single Text event
// without entity decoding.
func Tokenize(text string) []Token {
	var tokens []Token
	z := html.NewTokenizer(strings.NewReader(text))
	for {
		tt := z.Next()
		raw := string(z.Raw())
		switch tt {
		case html.ErrorToken:
			if z.Err() != io.EOF {
				tracer().Errorf("tokenizer: %v", z.Err())
			}
			if raw != "" {
				tracer().Debugf("tokenizer: trailing input %q taken as text", raw)
				tokens = append(tokens, Token{Kind: Text, Data: raw, Raw: raw})
			}
			return tokens
		case html.TextToken:
			tokens = append(tokens, Token{Kind: Text, Data: string(z.Text()), Raw: raw})
		case html.StartTagToken, html.SelfClosingTagToken:
			name, hasAttr := z.TagName()
			tok := Token{Kind: OpenTag, Name: string(name), Raw: raw}
			for hasAttr {
				var k, v []byte
				k, v, hasAttr = z.TagAttr()
				tok.Attrs = append(tok.Attrs, RawAttr{Key: string(k), Value: string(v)})
			}
			if tt == html.SelfClosingTagToken || dom.IsVoidElement(tok.Name) {
				tok.Kind = SelfClosingTag
			}
			tokens = append(tokens, tok)
		case html.EndTagToken:
			name, _ := z.TagName()
			tokens = append(tokens, Token{Kind: CloseTag, Name: string(name), Raw: raw})
		case html.CommentToken:
			tokens = append(tokens, Token{Kind: Comment, Data: string(z.Text()), Raw: raw})
		case html.DoctypeToken:
			tokens = append(tokens, Token{Kind: Doctype, Data: raw, Raw: raw})
		}
	}
}
