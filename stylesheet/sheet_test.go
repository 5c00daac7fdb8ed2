package stylesheet

import (
	"strings"
	"testing"

	"github.com/npillmayer/markup/attr"
	"github.com/npillmayer/markup/dom"
	"github.com/npillmayer/markup/render"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buttonSheet(t *testing.T) *Sheet {
	t.Helper()
	sheet := NewSheet()
	name, err := sheet.Register("btn",
		[]attr.Pair{attr.P("background_color", "#007bff"), attr.P("color", "white")},
		Hover(attr.P("background_color", "#0056b3")),
		Active(attr.P("transform", "scale(0.98)")),
		Breakpoint("md", attr.P("padding", "20px")),
		Breakpoint("sm", attr.P("padding", "15px")),
	)
	require.NoError(t, err)
	assert.Equal(t, "btn", name)
	_, err = sheet.Register("card", []attr.Pair{attr.P("margin", "0 auto")},
		Breakpoint("sm", attr.P("margin", "1rem")))
	require.NoError(t, err)
	return sheet
}

func TestRegisterAndRender(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markup.stylesheet")
	defer teardown()
	//
	sheet := buttonSheet(t)
	assert.Equal(t, []string{"btn", "card"}, sheet.Names())
	text := sheet.Render()
	t.Logf("style sheet:\n%s", text)
	for _, fragment := range []string{".btn {", "background-color: #007bff;", ".btn:hover {",
		".btn:active {", "transform: scale(0.98);", "@media (min-width: 640px) {",
		"@media (min-width: 768px) {", "margin: 0 auto;"} {
		assert.Contains(t, text, fragment)
	}
	assert.Less(t, strings.Index(text, "640px"), strings.Index(text, "768px"),
		"expected breakpoints ordered by width")
	s, ok := sheet.Class("btn")
	require.True(t, ok)
	assert.True(t, s.HasVariants())
	assert.Equal(t, "background-color: #007bff; color: white", s.Inline())
	assert.Equal(t, []attr.Pair{attr.P("padding", "20px")}, s.Variant("md"))
}

func TestValidation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markup.stylesheet")
	defer teardown()
	//
	sheet := NewSheet()
	cases := []struct {
		name  string
		props []attr.Pair
		vs    []Variant
	}{
		{"bad name", nil, nil},
		{"x{}", nil, nil},
		{"ok", []attr.Pair{attr.P("background", "url(javascript:alert(1))")}, nil},
		{"ok", []attr.Pair{attr.P("width", "expression(alert(1))")}, nil},
		{"ok", []attr.Pair{attr.P("color:red", "x")}, nil},
		{"ok", nil, []Variant{Hover(attr.P("color", "red;}</style><script>"))}},
		{"ok", nil, []Variant{Breakpoint("huge", attr.P("color", "red"))}},
		{"ok", nil, []Variant{Pseudo("hover)", attr.P("color", "red"))}},
	}
	for _, c := range cases {
		_, err := sheet.Register(c.name, c.props, c.vs...)
		assert.ErrorIs(t, err, attr.ErrValidation, "class %q %v", c.name, c.props)
	}
	assert.True(t, sheet.Empty())
	_, err := sheet.Register("first_child-ok", nil, Pseudo("first_child", attr.P("margin", "0")))
	assert.NoError(t, err)
}

func TestLoad(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markup.stylesheet")
	defer teardown()
	//
	original := buttonSheet(t)
	loaded := NewSheet()
	require.NoError(t, loaded.Load(original.Render()))
	assert.Equal(t, original.Names(), loaded.Names())
	for _, name := range original.Names() {
		a, _ := original.Class(name)
		b, _ := loaded.Class(name)
		assert.True(t, a.Merge(b).Equal(a), "class %s changed by loading", name)
	}
	//
	other := NewSheet()
	require.NoError(t, other.Load(`body { margin: 0 }
.btn { color: black !important }
.note, .hint { color: gray }
.tag { color: blue }`))
	assert.Equal(t, []string{"tag"}, other.Names())
	assert.Contains(t, other.Render(), "body {")
	assert.False(t, other.Empty())
	//
	assert.ErrorIs(t, NewSheet().Load(`.x { background: url(data:text/html,foo) }`), attr.ErrValidation)
}

func TestMerge(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markup.stylesheet")
	defer teardown()
	//
	base, err := NewStyle([]attr.Pair{attr.P("color", "red"), attr.P("margin", "0")},
		Hover(attr.P("color", "blue"), attr.P("cursor", "pointer")))
	require.NoError(t, err)
	over, err := NewStyle([]attr.Pair{attr.P("color", "green")},
		Hover(attr.P("color", "navy")), Breakpoint("lg", attr.P("margin", "2rem")))
	require.NoError(t, err)
	merged := base.Merge(over)
	assert.Equal(t, "color: green; margin: 0", merged.Inline())
	assert.Equal(t, []attr.Pair{attr.P("color", "navy"), attr.P("cursor", "pointer")}, merged.Variant("hover"))
	assert.Equal(t, []attr.Pair{attr.P("margin", "2rem")}, merged.Variant("lg"))
	assert.Equal(t, "color: red; margin: 0", base.Inline(), "merge must not modify its receiver")
	assert.False(t, merged.IsComplex(3))
	//
	e := dom.El("div")
	require.NoError(t, merged.Apply(e))
	v, _ := e.Style("color")
	assert.Equal(t, "green", v)
}

func TestEmbedding(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markup.stylesheet")
	defer teardown()
	//
	sheet := NewSheet()
	_, err := sheet.Register("a", []attr.Pair{attr.P("content", `">"`)})
	require.Error(t, err)
	_, err = sheet.Register("lead", []attr.Pair{attr.P("font_size", "1.25rem")})
	require.NoError(t, err)
	page := dom.El("html", dom.El("head", sheet.Node()), dom.El("body", dom.Class("lead")))
	s, err := render.HTML(page)
	require.NoError(t, err)
	assert.Contains(t, s, "<style>.lead {")
	assert.Contains(t, s, "font-size: 1.25rem;")
	//
	extracted, err := Extract(page)
	require.NoError(t, err)
	assert.Equal(t, []string{"lead"}, extracted.Names())
}

func TestBreakpoints(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markup.stylesheet")
	defer teardown()
	//
	assert.Equal(t, []string{"sm", "md", "lg", "xl", "2xl"}, Breakpoints())
	w, ok := MinWidth("2xl")
	assert.True(t, ok)
	assert.Equal(t, 1536, w)
}
