package tags

import "github.com/npillmayer/markup/dom"

// --- Elements with content --------------------------------------------------
//
// Every constructor X(items...) is a shortcut for dom.El("x", items...).

func A(items ...dom.Item) *dom.Element           { return dom.El("a", items...) }
func Abbr(items ...dom.Item) *dom.Element        { return dom.El("abbr", items...) }
func Address(items ...dom.Item) *dom.Element     { return dom.El("address", items...) }
func Article(items ...dom.Item) *dom.Element     { return dom.El("article", items...) }
func Aside(items ...dom.Item) *dom.Element       { return dom.El("aside", items...) }
func Audio(items ...dom.Item) *dom.Element       { return dom.El("audio", items...) }
func B(items ...dom.Item) *dom.Element           { return dom.El("b", items...) }
func Bdi(items ...dom.Item) *dom.Element         { return dom.El("bdi", items...) }
func Bdo(items ...dom.Item) *dom.Element         { return dom.El("bdo", items...) }
func BlockQuote(items ...dom.Item) *dom.Element  { return dom.El("blockquote", items...) }
func Body(items ...dom.Item) *dom.Element        { return dom.El("body", items...) }
func Button(items ...dom.Item) *dom.Element      { return dom.El("button", items...) }
func Canvas(items ...dom.Item) *dom.Element      { return dom.El("canvas", items...) }
func Caption(items ...dom.Item) *dom.Element     { return dom.El("caption", items...) }
func Cite(items ...dom.Item) *dom.Element        { return dom.El("cite", items...) }
func Code(items ...dom.Item) *dom.Element        { return dom.El("code", items...) }
func ColGroup(items ...dom.Item) *dom.Element    { return dom.El("colgroup", items...) }
func DataElement(items ...dom.Item) *dom.Element { return dom.El("data", items...) }
func DataList(items ...dom.Item) *dom.Element    { return dom.El("datalist", items...) }
func Dd(items ...dom.Item) *dom.Element          { return dom.El("dd", items...) }
func Del(items ...dom.Item) *dom.Element         { return dom.El("del", items...) }
func Details(items ...dom.Item) *dom.Element     { return dom.El("details", items...) }
func Dfn(items ...dom.Item) *dom.Element         { return dom.El("dfn", items...) }
func Dialog(items ...dom.Item) *dom.Element      { return dom.El("dialog", items...) }
func Div(items ...dom.Item) *dom.Element         { return dom.El("div", items...) }
func Dl(items ...dom.Item) *dom.Element          { return dom.El("dl", items...) }
func Dt(items ...dom.Item) *dom.Element          { return dom.El("dt", items...) }
func Em(items ...dom.Item) *dom.Element          { return dom.El("em", items...) }
func FieldSet(items ...dom.Item) *dom.Element    { return dom.El("fieldset", items...) }
func FigCaption(items ...dom.Item) *dom.Element  { return dom.El("figcaption", items...) }
func Figure(items ...dom.Item) *dom.Element      { return dom.El("figure", items...) }
func Footer(items ...dom.Item) *dom.Element      { return dom.El("footer", items...) }
func Form(items ...dom.Item) *dom.Element        { return dom.El("form", items...) }
func H1(items ...dom.Item) *dom.Element          { return dom.El("h1", items...) }
func H2(items ...dom.Item) *dom.Element          { return dom.El("h2", items...) }
func H3(items ...dom.Item) *dom.Element          { return dom.El("h3", items...) }
func H4(items ...dom.Item) *dom.Element          { return dom.El("h4", items...) }
func H5(items ...dom.Item) *dom.Element          { return dom.El("h5", items...) }
func H6(items ...dom.Item) *dom.Element          { return dom.El("h6", items...) }
func Head(items ...dom.Item) *dom.Element        { return dom.El("head", items...) }
func Header(items ...dom.Item) *dom.Element      { return dom.El("header", items...) }
func HGroup(items ...dom.Item) *dom.Element      { return dom.El("hgroup", items...) }
func I(items ...dom.Item) *dom.Element           { return dom.El("i", items...) }
func IFrame(items ...dom.Item) *dom.Element      { return dom.El("iframe", items...) }
func Ins(items ...dom.Item) *dom.Element         { return dom.El("ins", items...) }
func Kbd(items ...dom.Item) *dom.Element         { return dom.El("kbd", items...) }
func Label(items ...dom.Item) *dom.Element       { return dom.El("label", items...) }
func Legend(items ...dom.Item) *dom.Element      { return dom.El("legend", items...) }
func Li(items ...dom.Item) *dom.Element          { return dom.El("li", items...) }
func Main(items ...dom.Item) *dom.Element        { return dom.El("main", items...) }
func MapElement(items ...dom.Item) *dom.Element  { return dom.El("map", items...) }
func Mark(items ...dom.Item) *dom.Element        { return dom.El("mark", items...) }
func Menu(items ...dom.Item) *dom.Element        { return dom.El("menu", items...) }
func Meter(items ...dom.Item) *dom.Element       { return dom.El("meter", items...) }
func Nav(items ...dom.Item) *dom.Element         { return dom.El("nav", items...) }
func NoScript(items ...dom.Item) *dom.Element    { return dom.El("noscript", items...) }
func Object(items ...dom.Item) *dom.Element      { return dom.El("object", items...) }
func Ol(items ...dom.Item) *dom.Element          { return dom.El("ol", items...) }
func OptGroup(items ...dom.Item) *dom.Element    { return dom.El("optgroup", items...) }
func Option(items ...dom.Item) *dom.Element      { return dom.El("option", items...) }
func Output(items ...dom.Item) *dom.Element      { return dom.El("output", items...) }
func P(items ...dom.Item) *dom.Element           { return dom.El("p", items...) }
func Picture(items ...dom.Item) *dom.Element     { return dom.El("picture", items...) }
func Pre(items ...dom.Item) *dom.Element         { return dom.El("pre", items...) }
func Progress(items ...dom.Item) *dom.Element    { return dom.El("progress", items...) }
func Q(items ...dom.Item) *dom.Element           { return dom.El("q", items...) }
func Rp(items ...dom.Item) *dom.Element          { return dom.El("rp", items...) }
func Rt(items ...dom.Item) *dom.Element          { return dom.El("rt", items...) }
func Ruby(items ...dom.Item) *dom.Element        { return dom.El("ruby", items...) }
func S(items ...dom.Item) *dom.Element           { return dom.El("s", items...) }
func Samp(items ...dom.Item) *dom.Element        { return dom.El("samp", items...) }
func Script(items ...dom.Item) *dom.Element      { return dom.El("script", items...) }
func Search(items ...dom.Item) *dom.Element      { return dom.El("search", items...) }
func Section(items ...dom.Item) *dom.Element     { return dom.El("section", items...) }
func Select(items ...dom.Item) *dom.Element      { return dom.El("select", items...) }
func Slot(items ...dom.Item) *dom.Element        { return dom.El("slot", items...) }
func Small(items ...dom.Item) *dom.Element       { return dom.El("small", items...) }
func Span(items ...dom.Item) *dom.Element        { return dom.El("span", items...) }
func Strong(items ...dom.Item) *dom.Element      { return dom.El("strong", items...) }
func Style(items ...dom.Item) *dom.Element       { return dom.El("style", items...) }
func Sub(items ...dom.Item) *dom.Element         { return dom.El("sub", items...) }
func Summary(items ...dom.Item) *dom.Element     { return dom.El("summary", items...) }
func Sup(items ...dom.Item) *dom.Element         { return dom.El("sup", items...) }
func Table(items ...dom.Item) *dom.Element       { return dom.El("table", items...) }
func TBody(items ...dom.Item) *dom.Element       { return dom.El("tbody", items...) }
func Td(items ...dom.Item) *dom.Element          { return dom.El("td", items...) }
func Template(items ...dom.Item) *dom.Element    { return dom.El("template", items...) }
func TextArea(items ...dom.Item) *dom.Element    { return dom.El("textarea", items...) }
func TFoot(items ...dom.Item) *dom.Element       { return dom.El("tfoot", items...) }
func Th(items ...dom.Item) *dom.Element          { return dom.El("th", items...) }
func THead(items ...dom.Item) *dom.Element       { return dom.El("thead", items...) }
func Time(items ...dom.Item) *dom.Element        { return dom.El("time", items...) }
func Title(items ...dom.Item) *dom.Element       { return dom.El("title", items...) }
func Tr(items ...dom.Item) *dom.Element          { return dom.El("tr", items...) }
func U(items ...dom.Item) *dom.Element           { return dom.El("u", items...) }
func Ul(items ...dom.Item) *dom.Element          { return dom.El("ul", items...) }
func Var(items ...dom.Item) *dom.Element         { return dom.El("var", items...) }
func Video(items ...dom.Item) *dom.Element       { return dom.El("video", items...) }
func SVG(items ...dom.Item) *dom.Element         { return dom.El("svg", items...) }
func G(items ...dom.Item) *dom.Element           { return dom.El("g", items...) }
func Path(items ...dom.Item) *dom.Element        { return dom.El("path", items...) }
func Circle(items ...dom.Item) *dom.Element      { return dom.El("circle", items...) }
func Ellipse(items ...dom.Item) *dom.Element     { return dom.El("ellipse", items...) }
func Line(items ...dom.Item) *dom.Element        { return dom.El("line", items...) }
func PolyLine(items ...dom.Item) *dom.Element    { return dom.El("polyline", items...) }
func Polygon(items ...dom.Item) *dom.Element     { return dom.El("polygon", items...) }
func Defs(items ...dom.Item) *dom.Element        { return dom.El("defs", items...) }
func Symbol(items ...dom.Item) *dom.Element      { return dom.El("symbol", items...) }
func Use(items ...dom.Item) *dom.Element         { return dom.El("use", items...) }
func Math(items ...dom.Item) *dom.Element        { return dom.El("math", items...) }

// --- Void elements ----------------------------------------------------------

// Void elements are constructed self-closing; content added to them is not
// rendered.

func Area(items ...dom.Item) *dom.Element   { return dom.Void("area", items...) }
func Base(items ...dom.Item) *dom.Element   { return dom.Void("base", items...) }
func Br(items ...dom.Item) *dom.Element     { return dom.Void("br", items...) }
func Col(items ...dom.Item) *dom.Element    { return dom.Void("col", items...) }
func Embed(items ...dom.Item) *dom.Element  { return dom.Void("embed", items...) }
func Hr(items ...dom.Item) *dom.Element     { return dom.Void("hr", items...) }
func Img(items ...dom.Item) *dom.Element    { return dom.Void("img", items...) }
func Input(items ...dom.Item) *dom.Element  { return dom.Void("input", items...) }
func Link(items ...dom.Item) *dom.Element   { return dom.Void("link", items...) }
func Meta(items ...dom.Item) *dom.Element   { return dom.Void("meta", items...) }
func Param(items ...dom.Item) *dom.Element  { return dom.Void("param", items...) }
func Source(items ...dom.Item) *dom.Element { return dom.Void("source", items...) }
func Track(items ...dom.Item) *dom.Element  { return dom.Void("track", items...) }
func Wbr(items ...dom.Item) *dom.Element    { return dom.Void("wbr", items...) }
