// Package diag emits the diagnostics stream: one line per field whose
// serialized form changed, keyed by collection and paper id. The primary
// output is the rewritten document itself, so these lines go to a separate
// writer (stderr in the CLI).
package diag

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

var (
	idColor  = color.New(color.FgCyan)
	delColor = color.New(color.FgRed, color.CrossedOut)
	insColor = color.New(color.FgGreen)
)

// Reporter writes one diagnostic line per changed field.
type Reporter struct {
	out  io.Writer
	diff bool
}

// New creates a Reporter writing to out. With diff enabled, changed fields
// are rendered as an inline character diff instead of the two full
// serializations side by side.
func New(out io.Writer, diff bool) *Reporter {
	return &Reporter{out: out, diff: diff}
}

// Changed reports one changed field. orig and mod are the compact serialized
// forms before and after the transform.
func (r *Reporter) Changed(rootID, paperID, orig, mod string) {
	id := idColor.Sprintf("%s-%s", rootID, paperID)
	if r.diff {
		fmt.Fprintf(r.out, "%s: %s\n", id, inlineDiff(orig, mod))
		return
	}
	fmt.Fprintf(r.out, "%s: %s -> %s\n", id, orig, mod)
}

// inlineDiff renders a character-level diff of the two serializations,
// deletions struck out in red, insertions in green.
func inlineDiff(orig, mod string) string {
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMain(orig, mod, false)
	diffs = diffCfg.DiffCleanupSemantic(diffs)

	var out string
	for _, d := range diffs {
		switch d.Type {
		case diffpatch.DiffDelete:
			out += delColor.Sprint(d.Text)
		case diffpatch.DiffInsert:
			out += insColor.Sprint(d.Text)
		default:
			out += d.Text
		}
	}
	return out
}
