// Package detex implements the LaTeX-to-Unicode text codec used by the
// normalize stage. It expands accent commands and named macros into their
// Unicode equivalents, drops grouping braces, discards comments, and passes
// $...$ math regions through verbatim so a later stage can isolate them.
//
// Known limitations, kept deliberately: directional double-quote ligatures
// (backtick and apostrophe pairs) and plain single quotes are not converted.
package detex

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Decoder converts LaTeX-encoded text into Unicode text.
type Decoder struct{}

// New creates a Decoder.
func New() *Decoder {
	return &Decoder{}
}

// Decode expands LaTeX commands and special characters in s. Unrecognized
// commands are left as literal text. An unescaped % discards the rest of its
// line. Unbalanced groups return an error.
func (d *Decoder) Decode(s string) (string, error) {
	sc := &scanner{r: strings.NewReader(s)}
	if err := sc.run(); err != nil {
		return "", err
	}
	return sc.b.String(), nil
}

type scanner struct {
	r     io.RuneScanner
	b     strings.Builder
	depth int // open group braces
}

func (s *scanner) run() error {
	for {
		char, _, err := s.r.ReadRune()
		if err == io.EOF {
			if s.depth > 0 {
				return fmt.Errorf("unbalanced group: missing '}'")
			}
			return nil
		}
		if err != nil {
			return err
		}

		switch char {
		case '{':
			s.depth++
		case '}':
			if s.depth == 0 {
				return fmt.Errorf("unbalanced group: unexpected '}'")
			}
			s.depth--
		case '$':
			if err := s.copyMath(); err != nil {
				return err
			}
		case '%':
			if err := s.skipComment(); err != nil {
				return err
			}
		case '\\':
			if err := s.readBackslash(); err != nil {
				return err
			}
		case '-':
			if err := s.readDashes(); err != nil {
				return err
			}
		case '~':
			s.b.WriteRune(' ')
		default:
			s.b.WriteRune(char)
		}
	}
}

// copyMath copies a $...$ region through verbatim, delimiters included.
// The math interior is not decoded; isolating it is the caller's concern.
// An unclosed region is copied to end of input as-is.
func (s *scanner) copyMath() error {
	s.b.WriteByte('$')
	for {
		read, _, err := s.r.ReadRune()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		s.b.WriteRune(read)
		if read == '$' {
			return nil
		}
	}
}

// skipComment discards the rest of the line after %, the line break, and
// leading whitespace on the following line, matching how LaTeX consumes
// comments.
func (s *scanner) skipComment() error {
	for {
		read, _, err := s.r.ReadRune()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if read == '\n' {
			return s.whitespaces()
		}
	}
}

func (s *scanner) readBackslash() error {
	r, _, err := s.r.ReadRune()
	if err == io.EOF {
		s.b.WriteByte('\\')
		return nil
	}
	if err != nil {
		return err
	}

	// single-symbol commands
	switch r {
	case '%', '$', '&', '#', '_', '{', '}':
		s.b.WriteRune(r)
		return nil
	case '\\':
		s.b.WriteByte('\n')
		return nil
	case '-':
		// discretionary hyphen, drop
		return nil
	case ' ':
		s.b.WriteByte(' ')
		return nil
	case ',':
		s.b.WriteRune(' ')
		return nil
	}

	if !isLetter(r) {
		// accent symbols like \' and \^; letter-named accents such as
		// \v or \c are full control words and are matched below
		if mark, ok := accents[string(r)]; ok {
			return s.applyAccent(mark)
		}
		// unknown one-symbol command, keep literal
		s.b.WriteByte('\\')
		s.b.WriteRune(r)
		return nil
	}

	if err := s.r.UnreadRune(); err != nil {
		return err
	}
	name, err := s.word()
	if err != nil {
		return err
	}

	if len(name) == 1 {
		if mark, ok := accents[name]; ok {
			return s.applyAccent(mark)
		}
	}
	if expansion, ok := macros[name]; ok {
		s.b.WriteString(expansion)
		// TeX consumes the whitespace that terminates a control word
		return s.whitespaces()
	}

	// unrecognized command, keep literal
	s.b.WriteByte('\\')
	s.b.WriteString(name)
	return nil
}

// applyAccent reads the accent's argument and attaches the combining mark to
// its first character, composing to the precomposed form where one exists.
func (s *scanner) applyAccent(mark rune) error {
	arg, err := s.argument()
	if err != nil {
		return err
	}
	if arg == "" {
		s.b.WriteRune(mark)
		return nil
	}
	first, size := utf8.DecodeRuneInString(arg)
	s.b.WriteString(norm.NFC.String(string(first) + string(mark)))
	s.b.WriteString(arg[size:])
	return nil
}

// argument reads one command argument: a braced group (decoded recursively),
// a nested command (macro expansion only), or a single rune.
func (s *scanner) argument() (string, error) {
	if err := s.whitespaces(); err != nil {
		return "", err
	}

	read, _, err := s.r.ReadRune()
	if err == io.EOF {
		return "", nil
	}
	if err != nil {
		return "", err
	}

	switch read {
	case '{':
		raw, err := s.group()
		if err != nil {
			return "", err
		}
		dec := &Decoder{}
		return dec.Decode(raw)
	case '\\':
		name, err := s.word()
		if err != nil {
			return "", err
		}
		if expansion, ok := macros[name]; ok {
			return expansion, nil
		}
		return "\\" + name, nil
	default:
		return string(read), nil
	}
}

// group reads the raw content of a braced group, the opening brace already
// consumed, up to its matching closing brace.
func (s *scanner) group() (string, error) {
	var runes []rune
	depth := 1
	for {
		read, _, err := s.r.ReadRune()
		if err == io.EOF {
			return "", fmt.Errorf("unbalanced group: missing '}'")
		}
		if err != nil {
			return "", err
		}

		switch read {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return string(runes), nil
			}
		}
		runes = append(runes, read)
	}
}

// readDashes collapses -- and --- ligatures into en and em dashes.
func (s *scanner) readDashes() error {
	count := 1
	for count < 3 {
		read, _, err := s.r.ReadRune()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		if read != '-' {
			if err := s.r.UnreadRune(); err != nil {
				return err
			}
			break
		}
		count++
	}

	switch count {
	case 3:
		s.b.WriteRune('—')
	case 2:
		s.b.WriteRune('–')
	default:
		s.b.WriteByte('-')
	}
	return nil
}

// whitespaces skips until the next non-whitespace symbol.
func (s *scanner) whitespaces() error {
	for {
		r, _, err := s.r.ReadRune()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if !isWhitespace(r) {
			return s.r.UnreadRune()
		}
	}
}

// word reads a sequence of letters.
func (s *scanner) word() (string, error) {
	var runes []rune
	for {
		read, _, err := s.r.ReadRune()
		if err == io.EOF {
			return string(runes), nil
		}
		if err != nil {
			return "", err
		}
		if !isLetter(read) {
			return string(runes), s.r.UnreadRune()
		}
		runes = append(runes, read)
	}
}

func isLetter(r rune) bool {
	return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z'
}

func isWhitespace(r rune) bool {
	switch r {
	case ' ', '\n', '\t', '\r':
		return true
	default:
		return false
	}
}
