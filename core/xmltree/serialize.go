package xmltree

import (
	"fmt"
	"io"
	"strings"
)

// declaration is written ahead of every serialized document.
const declaration = "<?xml version='1.0' encoding='UTF-8'?>\n"

// Serialize writes the whole document, declaration included, as UTF-8 XML.
func Serialize(w io.Writer, root *Element) error {
	if _, err := io.WriteString(w, declaration); err != nil {
		return fmt.Errorf("writing declaration: %w", err)
	}
	var b strings.Builder
	writeElement(&b, root)
	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("writing document: %w", err)
	}
	return nil
}

// String returns one element serialized without a declaration.
func String(el *Element) string {
	if el == nil {
		return ""
	}
	var b strings.Builder
	writeElement(&b, el)
	return b.String()
}

// CompactString serializes one element with every whitespace run collapsed to
// a single space. Compact forms are used for change detection and diagnostic
// lines, so a transform that only reflows whitespace is not reported as a
// change.
func CompactString(el *Element) string {
	if el == nil {
		return ""
	}
	return strings.Join(strings.Fields(String(el)), " ")
}

func writeElement(b *strings.Builder, el *Element) {
	b.WriteByte('<')
	b.WriteString(el.Tag)
	for _, a := range el.Attr {
		b.WriteByte(' ')
		b.WriteString(a.Name)
		b.WriteString(`="`)
		b.WriteString(escapeAttr(a.Value))
		b.WriteByte('"')
	}

	if el.Text == "" && len(el.Children) == 0 {
		b.WriteString(" />")
		b.WriteString(escapeText(el.Tail))
		return
	}

	b.WriteByte('>')
	b.WriteString(escapeText(el.Text))
	for _, c := range el.Children {
		writeElement(b, c)
	}
	b.WriteString("</")
	b.WriteString(el.Tag)
	b.WriteByte('>')
	b.WriteString(escapeText(el.Tail))
}

var textEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

var attrEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"\n", "&#10;",
	"\t", "&#09;",
)

func escapeText(s string) string {
	return textEscaper.Replace(s)
}

func escapeAttr(s string) string {
	return attrEscaper.Replace(s)
}
