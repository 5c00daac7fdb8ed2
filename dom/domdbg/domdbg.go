/*
Package domdbg implements helpers to debug element trees.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package domdbg

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"testing"
	"text/template"

	"github.com/npillmayer/markup/dom"
	"github.com/xlab/treeprint"
)

// Print returns an indented outline of a tree, one line per node.
func Print(n dom.Node) string {
	p := treeprint.New()
	outline(p, n)
	return p.String()
}

func outline(p treeprint.Tree, n dom.Node) {
	e, ok := n.(*dom.Element)
	if !ok || e == nil {
		p.AddNode(label(n))
		return
	}
	if e.CountChildren() == 0 {
		p.AddNode(label(n))
		return
	}
	branch := p.AddBranch(label(n))
	for _, ch := range e.Children() {
		outline(branch, ch)
	}
}

func label(n dom.Node) string {
	switch x := n.(type) {
	case dom.Text:
		return shortText(string(x), 40)
	case *dom.Element:
		if x == nil {
			return "<nil>"
		}
		var b strings.Builder
		switch {
		case x.IsFragment() && x.IsRaw():
			b.WriteString("#raw")
		case x.IsFragment():
			b.WriteString("#fragment")
		default:
			b.WriteString("<" + x.Tag())
			for k, v := range x.Attributes().All() {
				fmt.Fprintf(&b, " %s=%q", k, v)
			}
			if x.IsSelfClosing() {
				b.WriteString(" /")
			}
			b.WriteString(">")
		}
		if x.Kind() != "" && x.Kind() != dom.KindFragment {
			fmt.Fprintf(&b, " (%s)", x.Kind())
		}
		if x.Source() != "" {
			fmt.Fprintf(&b, " ← %s", x.Source())
		}
		return b.String()
	}
	return "?"
}

func shortText(s string, max int) string {
	if r := []rune(s); len(r) > max {
		s = string(r[:max]) + "…"
	}
	return fmt.Sprintf("%q", s)
}

// --- GraphViz ---------------------------------------------------------

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname  string
	NodeTmpl  *template.Template
	EdgeTmpl  *template.Template
	AttrsTmpl *template.Template
	AttrEdge  *template.Template
}

// ToGraphViz outputs a diagram for a tree in GraphViz (DOT) format.
// Elements carrying attributes are connected to a table of their
// attributes.
func ToGraphViz(n dom.Node, w io.Writer) error {
	gparams := graphParamsType{Fontname: "Helvetica"}
	gparams.NodeTmpl = template.Must(template.New("domnode").Funcs(
		template.FuncMap{
			"shortstring": func(s string) string { return dotLabel(shortText(s, 10)) },
		}).Parse(domNodeTmpl))
	gparams.EdgeTmpl = template.Must(template.New("domedge").Parse(domEdgeTmpl))
	gparams.AttrsTmpl = template.Must(template.New("attrs").Parse(attrsTmpl))
	gparams.AttrEdge = template.Must(template.New("attredge").Parse(attrEdgeTmpl))
	head := template.Must(template.New("dom").Parse(graphHeadTmpl))
	if err := head.Execute(w, gparams); err != nil {
		return err
	}
	g := grapher{w: w, params: &gparams}
	if err := g.nodes(n, 0); err != nil {
		return err
	}
	_, err := io.WriteString(w, "}\n")
	return err
}

type grapher struct {
	w      io.Writer
	params *graphParamsType
	count  int
}

// gnode is a node of the diagram.
type gnode struct {
	Name  string
	Label string
	Text  bool
	Attrs []attrEntry
}

type attrEntry struct{ Key, Value string }

type edge struct {
	N1, N2 string
}

func (g *grapher) name() string {
	g.count++
	return fmt.Sprintf("node%05d", g.count)
}

func (g *grapher) nodes(n dom.Node, depth int) error {
	if depth > dom.DefaultMaxDepth {
		return fmt.Errorf("%w: diagram beyond depth %d", dom.ErrDepthExceeded, dom.DefaultMaxDepth)
	}
	name, err := g.domNode(n)
	if err != nil {
		return err
	}
	e, ok := n.(*dom.Element)
	if !ok {
		return nil
	}
	for _, ch := range e.Children() {
		chname := g.peek()
		if err := g.nodes(ch, depth+1); err != nil {
			return err
		}
		if err := g.params.EdgeTmpl.Execute(g.w, edge{name, chname}); err != nil {
			return err
		}
	}
	return nil
}

// peek returns the name the next node will receive.
func (g *grapher) peek() string {
	return fmt.Sprintf("node%05d", g.count+1)
}

func (g *grapher) domNode(n dom.Node) (string, error) {
	gn := gnode{Name: g.name()}
	switch x := n.(type) {
	case dom.Text:
		gn.Text = true
		gn.Label = string(x)
	case *dom.Element:
		gn.Label = x.Tag()
		if x.IsFragment() {
			gn.Label = "#fragment"
			if x.IsRaw() {
				gn.Label = "#raw"
			}
		}
		for k, v := range x.Attributes().All() {
			gn.Attrs = append(gn.Attrs, attrEntry{k, dotHTML(v)})
		}
	}
	if err := g.params.NodeTmpl.Execute(g.w, gn); err != nil {
		return "", err
	}
	if len(gn.Attrs) > 0 {
		if err := g.params.AttrsTmpl.Execute(g.w, gn); err != nil {
			return "", err
		}
		if err := g.params.AttrEdge.Execute(g.w, gn); err != nil {
			return "", err
		}
	}
	return gn.Name, nil
}

// dotLabel turns a Go-quoted string into a DOT label.
func dotLabel(quoted string) string {
	s := strings.ReplaceAll(quoted, `\n`, `\\n`)
	s = strings.ReplaceAll(s, `\t`, `\\t`)
	return strings.ReplaceAll(s, " ", "␣")
}

func dotHTML(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")
	return r.Replace(s)
}

// Dotty is a helper for testing. Given a tree and a testing.T, it will
// create a GraphViz image of the tree and write it to a file in the
// current folder, choosing a unique file name. The image is in SVG format.
//
// If GraphViz is not installed, the test is skipped. If an error occurs,
// t.Error(…) will be set, causing the test to fail.
func Dotty(n dom.Node, t *testing.T) {
	if _, err := exec.LookPath("dot"); err != nil {
		t.Skip("GraphViz not installed")
	}
	tmpfile, err := os.CreateTemp(".", "dom.*.dot")
	if err != nil {
		t.Error(err)
		return
	}
	defer func() {
		tmpfile.Close()
		os.Remove(tmpfile.Name())
	}()
	t.Logf("writing digraph to %s\n", tmpfile.Name())
	if err := ToGraphViz(n, tmpfile); err != nil {
		t.Error(err)
		return
	}
	outOption := fmt.Sprintf("-o%s.svg", tmpfile.Name())
	cmd := exec.Command("dot", "-Tsvg", outOption, tmpfile.Name())
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	t.Logf("writing tree image to %s.svg\n", tmpfile.Name())
	if err := cmd.Run(); err != nil {
		t.Error(err.Error())
	}
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [fontname = "{{ .Fontname }}" fontsize=14] ;
   node [fontname = "{{ .Fontname }}" fontsize=14] ;
   edge [fontname = "{{ .Fontname }}" fontsize=14] ;
`

const domNodeTmpl = `{{ if .Text }}
{{ .Name }}	[ label={{ shortstring .Label }} shape=box style=filled fillcolor=grey95 fontname="Courier" fontsize=11.0 ] ;
{{ else }}
{{ .Name }}	[ label={{ printf "%q" .Label }} shape=ellipse style=filled fillcolor=lightblue3 ] ;
{{ end }}
`

const attrsTmpl = `{{ .Name }}attrs [ style="filled" penwidth=1 fillcolor="ivory3" shape="Mrecord" fontsize=12
    label=<<table border="0" cellborder="0" cellpadding="2" cellspacing="0" bgcolor="ivory3">
      <tr><td bgcolor="azure4" align="center" colspan="2"><font color="white">attributes</font></td></tr>
      {{ range .Attrs }}
      <tr><td align="right">{{ .Key }}:</td><td>{{ .Value }}</td></tr>
      {{ end }}
    </table>> ] ;
`

const domEdgeTmpl = `{{ .N1 }} -> {{ .N2 }} [weight=1] ;
`

const attrEdgeTmpl = `{{ .Name }} -> {{ .Name }}attrs [dir=none weight=1 style="dashed"] ;
`
