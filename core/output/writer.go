// Package output writes the rewritten document. The destination is either a
// file path or, when none is given, standard output, keeping the diagnostics
// stream (stderr) separate from the document itself.
package output

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gaurav-prasanna/detexml/core/xmltree"
)

// Writer writes a serialized document to its destination.
type Writer struct {
	Path string // empty means stdout
}

// New creates a Writer targeting the given path. An empty path targets
// standard output. For a file target, the parent directory must exist or be
// creatable.
func New(path string) (*Writer, error) {
	if path != "" {
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating output directory %s: %w", dir, err)
		}
	}
	return &Writer{Path: path}, nil
}

// Write serializes the whole document as UTF-8 XML to the destination.
func (w *Writer) Write(root *xmltree.Element) error {
	if w.Path == "" {
		return xmltree.Serialize(os.Stdout, root)
	}

	f, err := os.Create(w.Path)
	if err != nil {
		return fmt.Errorf("creating output file %s: %w", w.Path, err)
	}
	defer f.Close()

	if err := xmltree.Serialize(f, root); err != nil {
		return fmt.Errorf("writing %s: %w", w.Path, err)
	}
	return f.Close()
}
