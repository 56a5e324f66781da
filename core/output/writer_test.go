package output_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gaurav-prasanna/detexml/core/output"
	"github.com/gaurav-prasanna/detexml/core/xmltree"
)

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "result.xml")

	w, err := output.New(path)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	root := &xmltree.Element{
		Tag:      "collection",
		Attr:     []xmltree.Attr{{Name: "id", Value: "C1"}},
		Children: []*xmltree.Element{{Tag: "paper", Attr: []xmltree.Attr{{Name: "id", Value: "1"}}}},
	}
	if err := w.Write(root); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}

	got := string(data)
	if !strings.HasPrefix(got, "<?xml version='1.0' encoding='UTF-8'?>\n") {
		t.Errorf("missing declaration: %q", got)
	}
	if !strings.Contains(got, `<collection id="C1">`) {
		t.Errorf("missing document body: %q", got)
	}
}
