package serial

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/markup/dom"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTrees() map[string]*dom.Element {
	return map[string]*dom.Element{
		"plain": dom.El("div", dom.ID("main"), dom.Class("container"),
			dom.El("h1", dom.Text("Welcome"))),
		"mixed": dom.El("p", dom.Text("Hello "), dom.El("b", dom.Text("you")), dom.Text(" & <them>")),
		"void": dom.El("form", dom.Void("input", dom.Bool("disabled", true), dom.Attr("name", "q")),
			dom.Void("br")),
		"document": dom.NewDocument(dom.El("body", dom.Data("user_id", "7"))),
		"fragment": dom.El("main", dom.NewFragment(dom.El("p"), dom.Text("x")), dom.Raw("<hr>")),
		"svg":      dom.El("svg", dom.Attr("view_box", "0 0 1 1"), dom.Void("rect", dom.Attr("stroke_width", "2"))),
		"source":   dom.El("div", dom.RawFile("/tmp/banner.html")),
		"kind":     dom.El("section").SetKind("widget"),
		"doctype":  dom.El("html").SetDoctype("<!doctype html>"),
	}
}

func TestRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markup.serial")
	defer teardown()
	//
	for name, tree := range sampleTrees() {
		d, err := ToMap(tree)
		require.NoError(t, err, name)
		back, err := FromMap(d)
		require.NoError(t, err, name)
		assert.True(t, dom.Equal(tree, back), "map round trip of %s", name)
		//
		js, err := ToJSON(tree)
		require.NoError(t, err, name)
		back, err = FromJSON(js)
		require.NoError(t, err, name)
		assert.True(t, dom.Equal(tree, back), "JSON round trip of %s: %s", name, js)
		//
		ym, err := ToYAML(tree)
		require.NoError(t, err, name)
		back, err = FromYAML(ym)
		require.NoError(t, err, name)
		assert.True(t, dom.Equal(tree, back), "YAML round trip of %s:\n%s", name, ym)
	}
}

func TestJSONShape(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markup.serial")
	defer teardown()
	//
	e := dom.El("div", dom.ID("main"), dom.El("h1", dom.Text("Welcome <&>")))
	js, err := ToJSON(e)
	require.NoError(t, err)
	assert.Equal(t, `{"tag":"div","self_closing":false,"attributes":{"id":"main"},"text":"","children":`+
		`[{"tag":"h1","self_closing":false,"attributes":{},"text":"Welcome <&>","children":[]}]}`, js)
	indented, err := ToJSON(e, Indent(2))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(indented, "{\n  \"tag\": \"div\",\n"), indented)
	//
	f, err := ToMap(dom.NewFragment())
	require.NoError(t, err)
	assert.Equal(t, []string{"type", "self_closing", "doctype", "attributes", "text", "children"}, f.Keys())
}

func TestDictOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markup.serial")
	defer teardown()
	//
	d := NewDict()
	require.NoError(t, d.UnmarshalJSON([]byte(`{"z":1,"a":[true,null,"s",{"y":2,"b":3}],"m":"x"}`)))
	assert.Equal(t, []string{"z", "a", "m"}, d.Keys())
	list, _ := d.Get("a")
	inner := list.([]any)[3].(*Dict)
	assert.Equal(t, []string{"y", "b"}, inner.Keys())
	out, err := d.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"z":1,"a":[true,null,"s",{"y":2,"b":3}],"m":"x"}`, string(out))
	assert.Error(t, d.UnmarshalJSON([]byte(`[1,2]`)))
}

func TestMalformedInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markup.serial")
	defer teardown()
	//
	inputs := []string{
		`{"tag": "div"`,
		`[]`,
		`{"self_closing": false}`,
		`{"tag": 5}`,
		`{"tag": ""}`,
		`{"tag": "di v"}`,
		`{"tag": "div", "attributes": {"id": 7}}`,
		`{"tag": "div", "attributes": []}`,
		`{"tag": "div", "children": {"tag": "p"}}`,
		`{"tag": "div", "children": [3]}`,
		`{"tag": "div", "children": [{"text": "x"}]}`,
		`{"tag": "div", "self_closing": "yes"}`,
		`{"tag": "div", "text": ["a"]}`,
		`{"tag": "div", "type": "html"}`,
		`{"tag": "p", "type": "fragment"}`,
	}
	for _, in := range inputs {
		_, err := FromJSON(in)
		assert.True(t, errors.Is(err, ErrMalformedInput), "expected %s to be malformed, is %v", in, err)
	}
	_, err := FromYAML("tag: [div")
	assert.ErrorIs(t, err, ErrMalformedInput)
	e, err := FromJSON(`{"tag": "p", "text": null, "children": ["a", {"tag": "br", "self_closing": true}]}`)
	require.NoError(t, err)
	assert.Equal(t, 2, e.CountChildren())
}

func TestHandWrittenYAML(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markup.serial")
	defer teardown()
	//
	e, err := FromYAML(`
tag: ul
attributes:
  class_: menu
children:
  - tag: li
    text: "1"
  - tag: li
    text: "true"
`)
	require.NoError(t, err)
	assert.Equal(t, 2, e.CountChildren())
	v, _ := e.Attribute("class")
	assert.Equal(t, "menu", v)
	li, _ := e.Last().(*dom.Element)
	assert.Equal(t, "true", li.TextContent())
}

func TestRegistry(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markup.serial")
	defer teardown()
	//
	r := NewRegistry()
	require.NoError(t, r.Register("card", func(string) *dom.Element {
		return dom.El("div", dom.Class("card"), dom.Hooks{
			BeforeRender: func(e *dom.Element) { e.AddAttribute("data-card", "") },
		})
	}))
	card := dom.El("div", dom.Class("card", "wide"), dom.El("p", dom.Text("x"))).SetKind("card")
	js, err := ToJSON(card)
	require.NoError(t, err)
	back, err := FromJSON(js, WithRegistry(r))
	require.NoError(t, err)
	assert.True(t, dom.Equal(card, back))
	assert.NotNil(t, back.Hooks().BeforeRender, "expected specialized element")
	//
	plain, err := FromJSON(js)
	require.NoError(t, err)
	assert.Equal(t, "card", plain.Kind())
	assert.Nil(t, plain.Hooks().BeforeRender)
	//
	doc, err := FromJSON(`{"type": "html", "tag": "html", "children": []}`)
	require.NoError(t, err)
	assert.Equal(t, dom.Doctype, doc.Doctype())
	//
	r.Seal()
	assert.ErrorIs(t, r.Register("other", func(string) *dom.Element { return dom.El("p") }), ErrSealed)
	_, ok := r.Lookup(dom.KindFragment)
	assert.True(t, ok)
}

func TestDepthGuard(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markup.serial")
	defer teardown()
	//
	root := dom.El("div")
	e := root
	for i := 1; i < 2000; i++ {
		ch := dom.El("div")
		e.Add(ch)
		e = ch
	}
	_, err := ToMap(root)
	assert.ErrorIs(t, err, dom.ErrDepthExceeded)
	d, err := ToMap(root, MaxDepth(5000))
	require.NoError(t, err)
	_, err = FromMap(d)
	assert.ErrorIs(t, err, dom.ErrDepthExceeded)
	back, err := FromMap(d, MaxDepth(5000))
	require.NoError(t, err)
	assert.True(t, dom.Equal(root, back))
}
