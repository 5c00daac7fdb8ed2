package render

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/markup/dom"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestConcreteScenario(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markup.render")
	defer teardown()
	//
	div, err := dom.New("div", dom.El("h1", dom.Text("Welcome")), dom.ID("main"), dom.Attr("class_", "container"))
	if err != nil {
		t.Fatal(err)
	}
	s, err := HTML(div)
	if err != nil {
		t.Fatal(err)
	}
	if s != `<div id="main" class="container"><h1>Welcome</h1></div>` {
		t.Errorf("unexpected markup: %s", s)
	}
}

func TestEscaping(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markup.render")
	defer teardown()
	//
	p := dom.El("p", dom.Attr("title", `a "quoted" <b> & c`), dom.Text(`x < y && "z" > 1`))
	s, _ := HTML(p)
	inner := strings.TrimSuffix(strings.TrimPrefix(s, "<p "), "</p>")
	t.Logf("rendered: %s", s)
	if strings.Count(inner, "<") != 0 || strings.Count(inner, `"`) != 2 {
		t.Errorf("expected markup characters to be escaped, is %s", s)
	}
	if !strings.Contains(s, "x &lt; y &amp;&amp; &#34;z&#34; &gt; 1") {
		t.Errorf("expected escaped text, is %s", s)
	}
	raw := dom.El("div", dom.Raw("<b>trusted & bold</b>"))
	if s, _ := HTML(raw); s != "<div><b>trusted & bold</b></div>" {
		t.Errorf("expected raw content verbatim, is %s", s)
	}
	script := dom.El("script", dom.Text("if (a < b) {}")).SetRaw(true)
	if s, _ := HTML(script); s != "<script>if (a < b) {}</script>" {
		t.Errorf("expected raw script, is %s", s)
	}
}

func TestBooleanAttributeLaw(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markup.render")
	defer teardown()
	//
	on, _ := HTML(dom.Void("input", dom.Bool("checked", true)))
	off, _ := HTML(dom.Void("input", dom.Bool("checked", false)))
	absent, _ := HTML(dom.Void("input"))
	if on != "<input checked />" {
		t.Errorf("expected bare checked, is %s", on)
	}
	if off != "<input />" || absent != off {
		t.Errorf("expected checked to be omitted, is %s / %s", off, absent)
	}
	named, _ := HTML(dom.Void("input", dom.Attr("disabled", "disabled")))
	other, _ := HTML(dom.Void("input", dom.Attr("disabled", "maybe")))
	if named != "<input disabled />" || other != `<input disabled="maybe" />` {
		t.Errorf("unexpected boolean rendering: %s / %s", named, other)
	}
	plain, _ := HTML(dom.El("a", dom.Attr("title", "")))
	if plain != `<a title=""></a>` {
		t.Errorf("expected empty non-boolean value to be kept, is %s", plain)
	}
}

func TestFragmentTransparency(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markup.render")
	defer teardown()
	//
	a := dom.El("p", dom.Text("A"))
	b := dom.El("ul", dom.El("li", dom.Text("B")))
	for _, opts := range [][]Option{nil, {Pretty()}} {
		sa, _ := HTML(a, opts...)
		sb, _ := HTML(b, opts...)
		sf, _ := HTML(dom.NewFragment(a, b), opts...)
		if sf != sa+sb {
			t.Errorf("expected fragment to render as %q, is %q", sa+sb, sf)
		}
	}
}

func TestDepthGuard(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markup.render")
	defer teardown()
	//
	root := dom.El("div")
	e := root
	for i := 1; i < 2000; i++ {
		ch := dom.El("div")
		e.Add(ch)
		e = ch
	}
	if _, err := HTML(root, MaxDepth(1000)); !errors.Is(err, dom.ErrDepthExceeded) {
		t.Errorf("expected depth error, is %v", err)
	}
	s, err := HTML(root, MaxDepth(5000))
	if err != nil {
		t.Fatalf("expected deep tree to render with larger bound, is %v", err)
	}
	if strings.Count(s, "<div>") != 2000 {
		t.Errorf("expected 2000 div elements, have %d", strings.Count(s, "<div>"))
	}
}

func TestPretty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markup.render")
	defer teardown()
	//
	page := dom.El("div", dom.Class("card"),
		dom.El("h1", dom.Text("Title")),
		dom.El("p", dom.Text("Hello"), dom.El("b", dom.Text("you"))),
		dom.Void("br"),
		dom.El("span"),
	)
	s, err := HTML(page, Pretty())
	if err != nil {
		t.Fatal(err)
	}
	expected := `<div class="card">
  <h1>Title</h1>
  <p>Hello
    <b>you</b>
  </p>
  <br />
  <span></span>
</div>
`
	if s != expected {
		t.Errorf("expected\n%s\nis\n%s", expected, s)
	}
}

func TestDocumentPrefix(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markup.render")
	defer teardown()
	//
	doc := dom.NewDocument(dom.El("body"))
	s, _ := HTML(doc)
	if s != `<!DOCTYPE html><html lang="en" dir="ltr"><body></body></html>` {
		t.Errorf("unexpected document: %s", s)
	}
	s, _ = HTML(doc, Pretty())
	if !strings.HasPrefix(s, "<!DOCTYPE html><html") || strings.Count(s, "DOCTYPE") != 1 {
		t.Errorf("expected single doctype prefix in pretty mode, is %s", s)
	}
}

func TestInvalidAttributeAndHooks(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markup.render")
	defer teardown()
	//
	var warnings []dom.Warning
	var order []string
	e := dom.El("div", dom.Attr("on click", "x"), dom.Attr("id", "a"), dom.Hooks{
		BeforeRender: func(*dom.Element) { order = append(order, "before") },
		AfterRender:  func(*dom.Element) { order = append(order, "after") },
	})
	s, err := HTML(e, OnWarning(func(w dom.Warning) { warnings = append(warnings, w) }))
	if err != nil || s != `<div id="a"></div>` {
		t.Errorf("expected invalid attribute to be skipped, is %s (%v)", s, err)
	}
	if len(warnings) != 1 || warnings[0].Kind != dom.InvalidAttribute {
		t.Errorf("expected one invalid-attribute warning, is %v", warnings)
	}
	if strings.Join(order, ",") != "before,after" {
		t.Errorf("expected hooks around rendering, is %v", order)
	}
}

func TestRawFileErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markup.render")
	defer teardown()
	//
	missing := dom.El("div", dom.RawFile(t.TempDir()+"/nothing.html"))
	if _, err := HTML(missing); !errors.Is(err, dom.ErrNotFound) {
		t.Errorf("expected not-found error, is %v", err)
	}
	loaded := dom.RawFile("banner").SetLoader(dom.LoaderFunc(func(p string) (string, error) {
		return "<em>" + p + "</em>", nil
	}))
	if s, _ := HTML(dom.El("header", loaded)); s != "<header><em>banner</em></header>" {
		t.Errorf("expected loaded content, is %s", s)
	}
	var b strings.Builder
	if err := Write(&b, missing); err == nil || b.Len() != 0 {
		t.Error("expected Write to write nothing on failure")
	}
}
