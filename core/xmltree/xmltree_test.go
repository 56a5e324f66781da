package xmltree_test

import (
	"strings"
	"testing"

	"github.com/gaurav-prasanna/detexml/core/xmltree"
	"github.com/google/go-cmp/cmp"
)

const sample = `<?xml version='1.0' encoding='UTF-8'?>
<collection id="C1">
<paper id="42"><title type="main">A <b>bold</b> claim</title>
<abstract>Mixing &amp; matching</abstract></paper>
</collection>`

func TestParse(t *testing.T) {
	root, err := xmltree.Parse(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	if root.Tag != "collection" || root.Attribute("id") != "C1" {
		t.Fatalf("unexpected root: %+v", root)
	}

	paper := root.FindFirst("paper")
	if paper == nil || paper.Attribute("id") != "42" {
		t.Fatalf("unexpected paper: %+v", paper)
	}

	title := paper.FindFirst("title")
	want := &xmltree.Element{
		Tag:  "title",
		Attr: []xmltree.Attr{{Name: "type", Value: "main"}},
		Text: "A ",
		Children: []*xmltree.Element{
			{Tag: "b", Text: "bold", Tail: " claim"},
		},
		Tail: "\n",
	}
	if diff := cmp.Diff(want, title); diff != "" {
		t.Errorf("title mismatch (-want +got):\n%s", diff)
	}

	if got := paper.FindFirst("abstract").Text; got != "Mixing & matching" {
		t.Errorf("entity not decoded: %q", got)
	}
}

func TestParseErrors(t *testing.T) {
	for _, input := range []string{"", "<a><b></a></b>", "<a></a><b></b>", "just text"} {
		if _, err := xmltree.Parse(strings.NewReader(input)); err == nil {
			t.Errorf("Parse(%q): expected error, got none", input)
		}
	}
}

func TestSerializeRoundTrip(t *testing.T) {
	root, err := xmltree.Parse(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	var b strings.Builder
	if err := xmltree.Serialize(&b, root); err != nil {
		t.Fatalf("Serialize returned error: %v", err)
	}

	if diff := cmp.Diff(sample, b.String()); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestString(t *testing.T) {
	tt := []struct {
		name   string
		el     *xmltree.Element
		output string
	}{
		{
			name:   "nil element",
			el:     nil,
			output: "",
		},
		{
			name:   "empty element self-closes",
			el:     &xmltree.Element{Tag: "x"},
			output: "<x />",
		},
		{
			name: "attributes and text are escaped",
			el: &xmltree.Element{
				Tag:  "title",
				Attr: []xmltree.Attr{{Name: "alt", Value: `a "b" & c`}},
				Text: "1 < 2 & 3 > 2",
			},
			output: `<title alt="a &quot;b&quot; &amp; c">1 &lt; 2 &amp; 3 &gt; 2</title>`,
		},
		{
			name: "tail follows the closing tag",
			el: &xmltree.Element{
				Tag:      "p",
				Children: []*xmltree.Element{{Tag: "b", Text: "x", Tail: " y"}},
			},
			output: "<p><b>x</b> y</p>",
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			if diff := cmp.Diff(tc.output, xmltree.String(tc.el)); diff != "" {
				t.Errorf("String mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCompactString(t *testing.T) {
	el := &xmltree.Element{
		Tag:  "abstract",
		Text: "  spread \n\t over   lines ",
		Children: []*xmltree.Element{
			{Tag: "b", Text: "x", Tail: "\n end\n"},
		},
	}
	want := "<abstract> spread over lines <b>x</b> end </abstract>"
	if got := xmltree.CompactString(el); got != want {
		t.Errorf("CompactString = %q, want %q", got, want)
	}
}
