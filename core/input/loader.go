// Package input loads the XML document to process.
package input

import (
	"fmt"
	"os"

	"github.com/gaurav-prasanna/detexml/core/xmltree"
)

// Load reads and parses the XML document at path and returns its root
// element.
func Load(path string) (*xmltree.Element, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	root, err := xmltree.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return root, nil
}
