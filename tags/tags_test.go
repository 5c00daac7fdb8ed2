package tags

import (
	"bytes"
	"errors"
	"go/format"
	"os"
	"testing"

	"github.com/npillmayer/markup/dom"
	"github.com/npillmayer/markup/render"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func renderString(t *testing.T, n dom.Node) string {
	t.Helper()
	s, err := render.HTML(n)
	if err != nil {
		t.Fatalf("cannot render: %v", err)
	}
	return s
}

func TestCatalog(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markup.tags")
	defer teardown()
	//
	table := Table(THead(Tr(Th(dom.Text("k")))), TBody(Tr(Td(dom.Text("v")))))
	if s := renderString(t, table); s != "<table><thead><tr><th>k</th></tr></thead><tbody><tr><td>v</td></tr></tbody></table>" {
		t.Errorf("unexpected table %s", s)
	}
	for _, e := range []*dom.Element{Img(), Br(), Input(), Meta(), Link(), Hr(), Wbr()} {
		if !e.IsSelfClosing() || !dom.IsVoidElement(e.Tag()) {
			t.Errorf("expected %s to be a self-closing void element", e.Tag())
		}
	}
	if s := renderString(t, Img(dom.Attr("src", "x.png"))); s != `<img src="x.png" />` {
		t.Errorf("expected self-closing img, is %s", s)
	}
	if s := renderString(t, Script(dom.Text("a<b"))); s != "<script>a&lt;b</script>" {
		t.Errorf("expected script content to be escaped, is %s", s)
	}
}

func TestDocument(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markup.tags")
	defer teardown()
	//
	page := HTML(Head(Title(dom.Text("Hello"))), Body(H1(dom.Text("Hello World"))))
	expected := `<!DOCTYPE html><html lang="en" dir="ltr"><head><title>Hello</title></head>` +
		`<body><h1>Hello World</h1></body></html>`
	if s := renderString(t, page); s != expected {
		t.Errorf("expected %s, is %s", expected, s)
	}
	if page.Kind() != dom.KindDocument {
		t.Errorf("expected document kind, is %q", page.Kind())
	}
	de := HTML(dom.Attr("lang", "de"))
	if v, _ := de.Attribute("lang"); v != "de" {
		t.Errorf("expected lang to be overridable, is %q", v)
	}
}

func TestFormHelpers(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markup.tags")
	defer teardown()
	//
	sel, err := SelectWithItems("a", Option(dom.Attr("value", "2"), dom.Text("b")))
	if err != nil {
		t.Fatal(err)
	}
	if s := renderString(t, sel); s != `<select><option>a</option><option value="2">b</option></select>` {
		t.Errorf("unexpected select %s", s)
	}
	form, err := FormWithFields(LabelFor("q", dom.Text("Query")), "or", Input(dom.ID("q")))
	if err != nil {
		t.Fatal(err)
	}
	if s := renderString(t, form); s != `<form><label for="q">Query</label>or<input id="q" /></form>` {
		t.Errorf("unexpected form %s", s)
	}
	if _, err := FormWithFields(42); !errors.Is(err, dom.ErrValidation) {
		t.Errorf("expected validation error for non-element field, is %v", err)
	}
	if _, err := SelectWithItems(3.14); !errors.Is(err, dom.ErrValidation) {
		t.Errorf("expected validation error for non-element item, is %v", err)
	}
}

func TestCatalogFormatting(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markup.tags")
	defer teardown()
	//
	src, err := os.ReadFile("catalog.go")
	if err != nil {
		t.Fatalf("cannot read catalog: %v", err)
	}
	formatted, err := format.Source(src)
	if err != nil {
		t.Fatalf("cannot format catalog: %v", err)
	}
	if !bytes.Equal(src, formatted) {
		t.Errorf("expected catalog.go to be gofmt-clean")
	}
}
