// Package cmd — convert command.
// This is the main command that orchestrates the pipeline:
// parse → select fields → transform → merge → write.
//
// It handles flag validation, the per-paper field loop, and diagnostics for
// every field whose serialized form changed.
package cmd

import (
	"fmt"
	"os"

	"github.com/gaurav-prasanna/detexml/core"
	"github.com/gaurav-prasanna/detexml/core/detex"
	"github.com/gaurav-prasanna/detexml/core/diag"
	"github.com/gaurav-prasanna/detexml/core/input"
	"github.com/gaurav-prasanna/detexml/core/normalize"
	"github.com/gaurav-prasanna/detexml/core/output"
	"github.com/gaurav-prasanna/detexml/core/transform"
	"github.com/gaurav-prasanna/detexml/core/xmltree"
	"github.com/spf13/cobra"
)

// Flag variables.
var (
	flagFields  []string
	flagOutfile string
	flagDiff    bool
)

var convertCmd = &cobra.Command{
	Use:   "convert <infile>",
	Short: "Convert LaTeX in the selected fields of an XML file to Unicode",
	Long: `Convert parses a bibliographic XML file, normalizes LaTeX commands and
special characters in the selected fields of every paper, isolates $...$
math regions into <tex-math> elements, and writes the whole document back.

One line per changed field is printed to stderr.

Examples:
  detexml convert anthology.xml -f title -f abstract -o anthology.out.xml
  detexml convert anthology.xml -f title --diff`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringArrayVarP(&flagFields, "field", "f", nil,
		"Field to convert (can be used more than once)")
	convertCmd.Flags().StringVarP(&flagOutfile, "output", "o", "",
		"XML file to write (default stdout)")
	convertCmd.Flags().BoolVar(&flagDiff, "diff", false,
		"Render diagnostics as inline diffs instead of old -> new pairs")
}

func runConvert(cmd *cobra.Command, args []string) error {
	infile := args[0]

	if len(flagFields) == 0 {
		return fmt.Errorf("at least one field (-f) is required")
	}

	root, err := input.Load(infile)
	if err != nil {
		return err
	}

	writer, err := output.New(flagOutfile)
	if err != nil {
		return fmt.Errorf("initializing output writer: %w", err)
	}

	// Pipeline: decoder → text normalizer → tree transformer.
	transformer := transform.New(normalize.New(detex.New()))
	reporter := diag.New(os.Stderr, flagDiff)

	if err := processDocument(root, flagFields, transformer, reporter); err != nil {
		return err
	}

	return writer.Write(root)
}

// processDocument transforms the selected fields of every paper in place.
// A paper without a given field is skipped; a field whose compact serialized
// form did not change is neither reported nor replaced. A decoding error
// aborts the whole run.
func processDocument(root *xmltree.Element, fields []string, tr core.TreeTransformer, rep core.Reporter) error {
	rootID := root.Attribute("id")

	for _, paper := range root.Children {
		if paper.Tag != "paper" {
			continue
		}
		for _, field := range fields {
			node := paper.FindFirst(field)
			if node == nil {
				continue
			}

			replacement, err := tr.Transform(node)
			if err != nil {
				return fmt.Errorf("paper %s field %s: %w",
					paper.Attribute("id"), field, err)
			}

			orig := xmltree.CompactString(node)
			mod := xmltree.CompactString(replacement)
			if orig == mod {
				continue
			}

			rep.Changed(rootID, paper.Attribute("id"), orig, mod)
			transform.MergeInto(node, replacement)
		}
	}

	return nil
}
