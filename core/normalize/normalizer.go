// Package normalize implements the TextNormalizer interface.
// It prepares one text segment for math extraction: comment introducers are
// escaped, LaTeX is decoded to Unicode, and soft hyphens are stripped.
package normalize

import (
	"fmt"
	"strings"

	"github.com/gaurav-prasanna/detexml/core"
)

// Normalizer normalizes LaTeX-encoded text segments using an injected
// decoding codec.
type Normalizer struct {
	dec core.Decoder
}

// New creates a Normalizer around the given decoder.
func New(dec core.Decoder) *Normalizer {
	return &Normalizer{dec: dec}
}

// Normalize converts one text segment to Unicode. We don't actually know
// whether the segment is LaTeX at all: a bare % in plain text would be taken
// for a comment delimiter by the decoder and silently discard the rest of the
// segment. Assuming titles and abstracts don't contain comments, every
// unescaped % is escaped first so it decodes to a literal percent sign.
func (n *Normalizer) Normalize(s string) (string, error) {
	if s == "" {
		return "", nil
	}

	escaped := escapePercent(s)

	decoded, err := n.dec.Decode(escaped)
	if err != nil {
		return "", fmt.Errorf("decoding LaTeX: %w", err)
	}

	// Soft hyphens are hyphenation hints, not content.
	return strings.ReplaceAll(decoded, "­", ""), nil
}

// escapePercent rewrites every % not immediately preceded by a backslash to
// \%. Already-escaped \% sequences are left untouched.
func escapePercent(s string) string {
	if !strings.ContainsRune(s, '%') {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 2)
	for i := 0; i < len(s); i++ {
		if s[i] == '%' && (i == 0 || s[i-1] != '\\') {
			b.WriteByte('\\')
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
