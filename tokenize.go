package tagcheck

import (
	"errors"
	"io"
	"iter"
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// A Tokenizer extracts tag tokens from a document, in document order.
// The returned sequence can be ranged over more than once.
type Tokenizer interface {
	Tokens(doc string) iter.Seq[Token]
}

// tagPattern recognizes `<name attrs>` and `</name attrs>`.
// Anything else starting with `<!` never matches, since `!` is not part of a name;
// comments are matched as a whole only so that their content is skipped.
//
// The attribute span stops at the first '>', so a quoted `>` inside a value
// (e.g. title=">") ends the tag early. Use [HTML5Tokenizer] where that matters.
var tagPattern = regexp.MustCompile(`<!--[\s\S]*?(?:-->|$)|<(/?)([a-zA-Z0-9]+)(\s[^>]*)?>`)

// PatternTokenizer scans the document with a single regular expression.
// Text that does not look like a tag is skipped silently.
type PatternTokenizer struct{}

func (PatternTokenizer) Tokens(doc string) iter.Seq[Token] {
	return func(yield func(Token) bool) {
		lines := newLineCounter(doc)
		pos := 0
		for off := 0; off < len(doc); {
			m := tagPattern.FindStringSubmatchIndex(doc[off:])
			if m == nil {
				return
			}
			if m[4] < 0 {
				off += m[1] // comment
				continue
			}

			tk := Token{
				Position: pos,
				Closing:  m[3] > m[2],
				Name:     strings.ToLower(doc[off+m[4] : off+m[5]]),
				Offset:   off + m[0],
				Raw:      doc[off+m[0] : off+m[1]],
			}
			if m[6] >= 0 {
				tk.Attrs = doc[off+m[6] : off+m[7]]
			}
			tk.Line = lines.at(tk.Offset)
			off += m[1]
			pos++

			if !yield(tk) {
				return
			}
		}
	}
}

// HTML5Tokenizer relies on the WHATWG tokenizer from x/net/html.
// Comments, doctypes, raw text elements (script, style) and quoted attributes are handled properly,
// and self-closing syntax (`<svg/>`) is flagged on the token.
type HTML5Tokenizer struct{}

func (HTML5Tokenizer) Tokens(doc string) iter.Seq[Token] {
	return func(yield func(Token) bool) {
		lines := newLineCounter(doc)
		tk := html.NewTokenizer(strings.NewReader(doc))
		pos, off := 0, 0
		for {
			tt := tk.Next()
			raw := tk.Raw()
			start := off
			off += len(raw)

			var prefix string
			switch tt {
			case html.ErrorToken:
				if !errors.Is(tk.Err(), io.EOF) {
					// only I/O errors end here, and the reader is in memory
					panic(tk.Err())
				}
				return
			case html.StartTagToken, html.SelfClosingTagToken:
				prefix = "<"
			case html.EndTagToken:
				prefix = "</"
			default:
				continue
			}

			n, _ := tk.TagName()
			t := Token{
				Position:    pos,
				Name:        string(n),
				Closing:     tt == html.EndTagToken,
				SelfClosing: tt == html.SelfClosingTagToken,
				Offset:      start,
				Line:        lines.at(start),
				Raw:         doc[start:off],
			}
			if rest := len(prefix) + len(n); rest < len(raw) {
				a := strings.TrimSuffix(string(raw[rest:]), ">")
				if t.SelfClosing {
					a = strings.TrimSuffix(a, "/")
				}
				t.Attrs = a
			}
			pos++

			if !yield(t) {
				return
			}
		}
	}
}

// Tokenizers lists the available tokenizers by name.
var Tokenizers = map[string]Tokenizer{
	"pattern": PatternTokenizer{},
	"html5":   HTML5Tokenizer{},
}
