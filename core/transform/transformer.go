// Package transform implements the TreeTransformer interface.
// It rebuilds an element subtree with every text and tail segment normalized
// and $...$ math spans isolated into tex-math child elements, leaving the
// rest of the structure (tags, attributes, child order) untouched.
package transform

import (
	"regexp"

	"github.com/gaurav-prasanna/detexml/core"
	"github.com/gaurav-prasanna/detexml/core/xmltree"
)

// MathTag is the tag given to isolated math spans.
const MathTag = "tex-math"

// mathRe matches one single-line math span. The interior is captured raw and
// never decoded.
var mathRe = regexp.MustCompile(`(?m)\$([^$]*)\$`)

// Transformer rebuilds element subtrees using an injected text normalizer.
type Transformer struct {
	norm core.TextNormalizer
}

// New creates a Transformer around the given text normalizer.
func New(norm core.TextNormalizer) *Transformer {
	return &Transformer{norm: norm}
}

// Transform returns a new subtree equivalent to el with normalized text and
// isolated math spans. The input tree is never mutated. The element's own
// tail is carried over verbatim: content inside the element is this
// function's concern, the outer tail is the caller's.
func (t *Transformer) Transform(el *xmltree.Element) (*xmltree.Element, error) {
	if el == nil {
		return nil, nil
	}

	out := &xmltree.Element{Tag: el.Tag, Attr: el.CopyAttr()}

	if err := t.extractMath(out, el.Text); err != nil {
		return nil, err
	}
	for _, child := range el.Children {
		next, err := t.Transform(child)
		if err != nil {
			return nil, err
		}
		out.Children = append(out.Children, next)

		// The recursion copied the child's tail verbatim, but the tail
		// belongs to this element's text flow and is re-extracted here.
		next.Tail = ""
		if err := t.extractMath(out, child.Tail); err != nil {
			return nil, err
		}
	}
	out.Tail = el.Tail

	return out, nil
}

// extractMath normalizes one text segment and appends it to node: plain-text
// runs extend the current last slot, each $...$ span becomes a tex-math
// child holding the raw interior.
func (t *Transformer) extractMath(node *xmltree.Element, text string) error {
	if text == "" {
		return nil
	}

	normalized, err := t.norm.Normalize(text)
	if err != nil {
		return err
	}

	prev := 0
	for _, m := range mathRe.FindAllStringSubmatchIndex(normalized, -1) {
		appendText(node, normalized[prev:m[0]])
		node.Children = append(node.Children, &xmltree.Element{
			Tag:  MathTag,
			Text: normalized[m[2]:m[3]],
		})
		prev = m[1]
	}
	appendText(node, normalized[prev:])

	return nil
}

// appendText concatenates a plain-text run onto the node's current last slot:
// the node's own text while it has no children, the last child's tail after
// that. Zero-length runs are dropped so absent slots stay absent.
func appendText(node *xmltree.Element, text string) {
	if text == "" {
		return
	}
	if len(node.Children) == 0 {
		node.Text += text
	} else {
		node.Children[len(node.Children)-1].Tail += text
	}
}

// MergeInto destructively overwrites target's tag, attributes, text,
// children, and tail with replacement's. References to target elsewhere in
// the document stay valid, so a field can be replaced in place without
// touching its parent's child list.
func MergeInto(target, replacement *xmltree.Element) {
	target.Tag = replacement.Tag
	target.Attr = replacement.Attr
	target.Text = replacement.Text
	target.Children = replacement.Children
	target.Tail = replacement.Tail
}
