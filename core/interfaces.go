// Package core defines the pipeline interfaces for detexml.
// Each stage of the pipeline is a clean, testable interface.
package core

import "github.com/gaurav-prasanna/detexml/core/xmltree"

// Decoder is the LaTeX-to-Unicode text codec. It expands known LaTeX command
// sequences and accent macros into Unicode, leaves unrecognized commands as
// literal text, and treats an unescaped % as a comment introducer that
// discards the rest of the line. Malformed LaTeX groups yield an error.
type Decoder interface {
	Decode(s string) (string, error)
}

// TextNormalizer prepares one text segment for math extraction: it escapes
// bare comment introducers, decodes LaTeX to Unicode, and strips soft
// hyphens. An empty input is an empty output.
type TextNormalizer interface {
	Normalize(s string) (string, error)
}

// TreeTransformer rebuilds an element subtree with all text and tail segments
// normalized and $...$ math spans isolated into tex-math child elements.
// The input tree is never mutated; nil in, nil out.
type TreeTransformer interface {
	Transform(el *xmltree.Element) (*xmltree.Element, error)
}

// Reporter emits one diagnostic line per changed field.
type Reporter interface {
	Changed(rootID, paperID, orig, mod string)
}
