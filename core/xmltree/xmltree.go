// Package xmltree provides a mutable element tree for XML documents with
// mixed content. Unlike encoding/xml struct mapping, it keeps character data
// positioned: Text is the run after an element's start tag, and each child
// carries the Tail run that follows its end tag. That positioning is what the
// transform stage rearranges when it lifts math spans into child elements.
package xmltree

import (
	"encoding/xml"
	"fmt"
	"io"
)

// Attr is one attribute of an element. Attributes keep document order.
type Attr struct {
	Name  string
	Value string
}

// Element is one XML tag instance.
type Element struct {
	Tag      string
	Attr     []Attr
	Text     string // character data before the first child
	Children []*Element
	Tail     string // character data after this element's end tag
}

// Attribute returns the value of the named attribute, or "" when absent.
func (e *Element) Attribute(name string) string {
	for _, a := range e.Attr {
		if a.Name == name {
			return a.Value
		}
	}
	return ""
}

// FindFirst returns the first direct child with the given tag, or nil.
func (e *Element) FindFirst(tag string) *Element {
	for _, c := range e.Children {
		if c.Tag == tag {
			return c
		}
	}
	return nil
}

// CopyAttr returns a copy of the element's attribute list. Mutating the copy
// never affects the original.
func (e *Element) CopyAttr() []Attr {
	if len(e.Attr) == 0 {
		return nil
	}
	out := make([]Attr, len(e.Attr))
	copy(out, e.Attr)
	return out
}

// Parse reads an XML document and returns its root element.
// Comments and processing instructions are discarded; character data outside
// the root element is ignored.
func Parse(r io.Reader) (*Element, error) {
	dec := xml.NewDecoder(r)

	var root *Element
	var stack []*Element

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parsing XML: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			el := &Element{Tag: t.Name.Local}
			for _, a := range t.Attr {
				el.Attr = append(el.Attr, Attr{Name: a.Name.Local, Value: a.Value})
			}
			if len(stack) == 0 {
				if root != nil {
					return nil, fmt.Errorf("parsing XML: multiple root elements")
				}
				root = el
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, el)
			}
			stack = append(stack, el)

		case xml.EndElement:
			stack = stack[:len(stack)-1]

		case xml.CharData:
			if len(stack) == 0 {
				continue
			}
			cur := stack[len(stack)-1]
			if len(cur.Children) == 0 {
				cur.Text += string(t)
			} else {
				last := cur.Children[len(cur.Children)-1]
				last.Tail += string(t)
			}
		}
	}

	if root == nil {
		return nil, fmt.Errorf("parsing XML: no root element")
	}
	return root, nil
}
