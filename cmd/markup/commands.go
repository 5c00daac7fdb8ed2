package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/markup/dom"
	"github.com/npillmayer/markup/dom/domdbg"
	"github.com/npillmayer/markup/dom/w3cdom"
	"github.com/npillmayer/markup/parser"
	"github.com/npillmayer/markup/render"
	"github.com/npillmayer/markup/serial"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	keepComments bool
	quiet        bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "markup",
		Short:         "Format, convert and inspect HTML fragments",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	fs := cmd.PersistentFlags()
	fs.BoolVar(&opts.keepComments, "comments", false, "keep comments of the input")
	fs.BoolVarP(&opts.quiet, "quiet", "q", false, "do not report parser warnings")
	cmd.AddCommand(
		newFmtCmd(opts),
		newJSONCmd(opts),
		newHTMLCmd(),
		newTreeCmd(opts),
		newSelectCmd(opts),
		newDotCmd(opts),
	)
	return cmd
}

// readInput reads the named file, or standard input if there is no name.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		b, err := io.ReadAll(cmd.InOrStdin())
		return string(b), err
	}
	b, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("read %s: %w", args[0], err)
	}
	return string(b), nil
}

// parseInput parses the input into a fragment holding all top-level nodes.
func parseInput(cmd *cobra.Command, args []string, opts *rootOptions) (*dom.Element, error) {
	text, err := readInput(cmd, args)
	if err != nil {
		return nil, err
	}
	var popts []parser.Option
	if opts.keepComments {
		popts = append(popts, parser.KeepComments())
	}
	nodes, warnings := parser.ParseFragment(text, popts...)
	if !opts.quiet {
		for _, w := range warnings {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", w)
		}
	}
	root := dom.NewFragment()
	for _, n := range nodes {
		root.Add(n)
	}
	return root, nil
}

// singleElement returns the only element of a parsed fragment.
func singleElement(root *dom.Element) (*dom.Element, error) {
	var elements []*dom.Element
	for _, n := range root.Children() {
		switch x := n.(type) {
		case *dom.Element:
			elements = append(elements, x)
		case dom.Text:
			if strings.TrimSpace(string(x)) != "" {
				return nil, errors.New("input has text outside of an element")
			}
		}
	}
	if len(elements) != 1 {
		return nil, fmt.Errorf("input must hold exactly one top-level element, has %d", len(elements))
	}
	return elements[0], nil
}

func newFmtCmd(opts *rootOptions) *cobra.Command {
	var compact bool
	cmd := &cobra.Command{
		Use:   "fmt [file]",
		Short: "Parse and re-render markup",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := parseInput(cmd, args, opts)
			if err != nil {
				return err
			}
			var ropts []render.Option
			if !compact {
				ropts = append(ropts, render.Pretty())
			}
			out := cmd.OutOrStdout()
			if err := render.Write(out, root, ropts...); err != nil {
				return err
			}
			if compact {
				_, err = fmt.Fprintln(out)
			}
			return err
		},
	}
	cmd.Flags().BoolVar(&compact, "compact", false, "render without indentation")
	return cmd
}

func newJSONCmd(opts *rootOptions) *cobra.Command {
	var asYAML bool
	var indent int
	cmd := &cobra.Command{
		Use:   "json [file]",
		Short: "Convert markup to its structured form",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := parseInput(cmd, args, opts)
			if err != nil {
				return err
			}
			e, err := singleElement(root)
			if err != nil {
				return err
			}
			var text string
			if asYAML {
				text, err = serial.ToYAML(e)
			} else {
				text, err = serial.ToJSON(e, serial.Indent(indent))
			}
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.TrimRight(text, "\n"))
			return err
		},
	}
	fs := cmd.Flags()
	fs.BoolVar(&asYAML, "yaml", false, "output YAML instead of JSON")
	fs.IntVar(&indent, "indent", 0, "indent JSON output by n spaces")
	return cmd
}

func newHTMLCmd() *cobra.Command {
	var fromYAML, pretty bool
	cmd := &cobra.Command{
		Use:   "html [file]",
		Short: "Convert a structured form to markup",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			var e *dom.Element
			if fromYAML {
				e, err = serial.FromYAML(text)
			} else {
				e, err = serial.FromJSON(text)
			}
			if err != nil {
				return err
			}
			var ropts []render.Option
			if pretty {
				ropts = append(ropts, render.Pretty())
			}
			out := cmd.OutOrStdout()
			if err := render.Write(out, e, ropts...); err != nil {
				return err
			}
			if !pretty {
				_, err = fmt.Fprintln(out)
			}
			return err
		},
	}
	fs := cmd.Flags()
	fs.BoolVar(&fromYAML, "yaml", false, "read YAML instead of JSON")
	fs.BoolVar(&pretty, "pretty", false, "render with indentation")
	return cmd
}

func newTreeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tree [file]",
		Short: "Print an outline of the element tree",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := parseInput(cmd, args, opts)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), domdbg.Print(root))
			return err
		},
	}
}

func newSelectCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "select <selector> [file]",
		Short: "Print the elements matching a CSS selector",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := parseInput(cmd, args[1:], opts)
			if err != nil {
				return err
			}
			matches, err := w3cdom.Select(root, args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, e := range matches {
				s, err := render.HTML(e)
				if err != nil {
					return err
				}
				if _, err := fmt.Fprintln(out, s); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newDotCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "dot [file]",
		Short: "Print a GraphViz diagram of the element tree",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := parseInput(cmd, args, opts)
			if err != nil {
				return err
			}
			return domdbg.ToGraphViz(root, cmd.OutOrStdout())
		},
	}
}
