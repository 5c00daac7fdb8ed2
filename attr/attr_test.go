package attr

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestCanonicalAliases(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markup.attr")
	defer teardown()
	//
	for _, k := range []string{"class_", "cls", "class_name", "className", "class"} {
		if c := Canonical(k); c != "class" {
			t.Errorf("expected %q to canonicalize to 'class', is %q", k, c)
		}
	}
	for _, k := range []string{"for_", "for_element", "html_for", "htmlFor", "for"} {
		if c := Canonical(k); c != "for" {
			t.Errorf("expected %q to canonicalize to 'for', is %q", k, c)
		}
	}
}

func TestCanonicalRules(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markup.attr")
	defer teardown()
	//
	cases := []struct{ in, out string }{
		{"data_user_id", "data-user-id"},
		{"data-user_id", "data-user-id"},
		{"aria_label", "aria-label"},
		{"view_box", "viewBox"},
		{"viewbox", "viewBox"},
		{"viewBox", "viewBox"},
		{"preserve_aspect_ratio", "preserveAspectRatio"},
		{"stroke_width", "stroke-width"},
		{"href", "href"},
		{"xlink:href", "xlink:href"},
	}
	for _, c := range cases {
		if got := Canonical(c.in); got != c.out {
			t.Errorf("expected Canonical(%q) = %q, is %q", c.in, c.out, got)
		}
		if again := Canonical(Canonical(c.in)); again != c.out {
			t.Errorf("expected canonicalization of %q to be idempotent, is %q", c.in, again)
		}
	}
}

func TestSVGTableSize(t *testing.T) {
	if len(svgCamelAttrs) != 53 {
		t.Errorf("expected 53 camelCase attributes, have %d", len(svgCamelAttrs))
	}
	for lower, camel := range svgCamelAttrs {
		if Canonical(camel) != camel || !IsSVGCamel(camel) {
			t.Errorf("expected %q (%s) to be stable", camel, lower)
		}
	}
}

func TestKeysAndTags(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markup.attr")
	defer teardown()
	//
	for _, k := range []string{"id", "data-x", "xlink:href", "aria-label", "viewBox"} {
		if !ValidKey(k) {
			t.Errorf("expected %q to be a valid key", k)
		}
	}
	for _, k := range []string{"", "1a", "on click", `a"b`, "a=b", "a:b:c", "-x"} {
		if ValidKey(k) {
			t.Errorf("expected %q to be rejected as key", k)
		}
	}
	if !ValidTag("my-widget") || ValidTag("my widget") || ValidTag("") || ValidTag("9p") {
		t.Error("expected tag validation to follow [A-Za-z][A-Za-z0-9-]*")
	}
}

func TestBooleanAttributes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markup.attr")
	defer teardown()
	//
	if len(booleanAttrs) != 25 {
		t.Errorf("expected 25 boolean attributes, have %d", len(booleanAttrs))
	}
	if !IsBoolean("checked") || IsBoolean("value") {
		t.Error("expected checked to be boolean and value not to be")
	}
	if !RendersBare("disabled", True) || !RendersBare("disabled", "disabled") {
		t.Error("expected switched-on disabled to render bare")
	}
	if RendersBare("disabled", "yes") || RendersBare("title", "") {
		t.Error("expected other values to render as values")
	}
}

func TestStyleInjection(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markup.attr")
	defer teardown()
	//
	if err := ValidateStyleValue("color: red"); err != nil {
		t.Errorf("expected 'color: red' to pass, is %v", err)
	}
	if err := ValidateStyleValue("url(/img/bg.png) no-repeat"); err != nil {
		t.Errorf("expected plain url to pass, is %v", err)
	}
	bad := []string{
		"background: url(javascript:alert(1))",
		"JavaScript:alert(1)",
		"vbscript:msgbox",
		"width: expression (alert(1))",
		`url( "data:text/html;base64,xx")`,
		"red} body {color: blue",
		"</style><script>",
		"red /* comment */",
		`\65 xpression(1)`,
		"&#106;avascript:",
		"red%0a",
		"red\x00",
	}
	for _, v := range bad {
		err := ValidateStyleValue(v)
		if err == nil {
			t.Errorf("expected %q to be rejected", v)
			continue
		}
		if !errors.Is(err, ErrValidation) || !errors.Is(err, ErrInjection) {
			t.Errorf("expected rejection of %q to be a validation error, is %v", v, err)
		}
	}
}

func TestClassNames(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markup.attr")
	defer teardown()
	//
	for _, n := range []string{"btn", "btn-primary", "card__title", "card--active", "_private", "-webkit-x"} {
		if err := ValidateClassName(n); err != nil {
			t.Errorf("expected class name %q to pass, is %v", n, err)
		}
	}
	for _, n := range []string{"", "9col", "a b", "a{", "a;b", "a,b", "a>b", "ä"} {
		if err := ValidateClassName(n); !errors.Is(err, ErrValidation) {
			t.Errorf("expected class name %q to be rejected, is %v", n, err)
		}
	}
}

func TestMapOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markup.attr")
	defer teardown()
	//
	m := NewMap(P("id", "main"), P("class", "container"), P("title", "x"))
	if m.Set("class", "wide") != true {
		t.Error("expected Set to report an existing key")
	}
	keys := m.Keys()
	if len(keys) != 3 || keys[0] != "id" || keys[1] != "class" || keys[2] != "title" {
		t.Errorf("expected order [id class title], is %v", keys)
	}
	if v, _ := m.Get("class"); v != "wide" {
		t.Errorf("expected class=wide, is %q", v)
	}
	m.Delete("id")
	m.Set("id", "other")
	keys = m.Keys()
	if keys[0] != "class" || keys[2] != "id" {
		t.Errorf("expected re-inserted key at the end, is %v", keys)
	}
	c := m.Clone()
	c.Set("lang", "en")
	if m.Has("lang") {
		t.Error("expected clone to be independent")
	}
	if m.Equal(c) {
		t.Error("expected maps of different length to differ")
	}
	c.Delete("lang")
	if !m.Equal(c) {
		t.Errorf("expected maps to be equal: %v vs %v", m.Pairs(), c.Pairs())
	}
	var empty *Map
	if empty.Len() != 0 || empty.Has("x") || !empty.Equal(&Map{}) {
		t.Error("expected nil map to read as empty")
	}
}
