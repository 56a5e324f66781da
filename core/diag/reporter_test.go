package diag_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/gaurav-prasanna/detexml/core/diag"
)

func TestChanged(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer
	r := diag.New(&buf, false)
	r.Changed("C1", "42", "<title>a $x$ b</title>", "<title>a <tex-math>x</tex-math> b</title>")

	want := "C1-42: <title>a $x$ b</title> -> <title>a <tex-math>x</tex-math> b</title>\n"
	if got := buf.String(); got != want {
		t.Errorf("Changed = %q, want %q", got, want)
	}
}

func TestChangedDiff(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer
	r := diag.New(&buf, true)
	r.Changed("C1", "42", "same old same", "same new same")

	got := buf.String()
	if !strings.HasPrefix(got, "C1-42: ") {
		t.Fatalf("missing id prefix: %q", got)
	}
	// with color stripped, the inline diff carries both variants in order
	for _, fragment := range []string{"old", "new", "same"} {
		if !strings.Contains(got, fragment) {
			t.Errorf("diff output %q missing %q", got, fragment)
		}
	}
}
