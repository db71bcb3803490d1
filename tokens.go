package tagcheck

import "strings"

// DefaultPath is the document checked when the command is given no argument.
const DefaultPath = "index.html"

// Token is a single tag occurrence found in a document.
//
// Position is the index of the token among all recognized tags (void ones included),
// and is only used to identify the tag in a report.
// Attrs holds the text between the tag name and the closing bracket, verbatim.
type Token struct {
	Position int
	Name     string
	Closing  bool
	Attrs    string

	// SelfClosing is only set by tokenizers understanding `<tag/>`.
	SelfClosing bool

	Raw    string // tag as written, brackets included
	Offset int    // byte offset of '<' in the document
	Line   int
}

// Void reports whether the tag never takes a closing counterpart.
func (t Token) Void() bool { return VoidTags[strings.ToLower(t.Name)] }

func (t Token) String() string {
	if t.Closing {
		return "</" + t.Name + t.Attrs + ">"
	}
	return "<" + t.Name + t.Attrs + ">"
}

// VoidTags are excluded from matching altogether, in both opening and closing form.
var VoidTags = map[string]bool{
	"br":     true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"meta":   true,
	"link":   true,
	"col":    true,
	"source": true,
	"embed":  true,
	"param":  true,
	"track":  true,
	"wbr":    true,
}

// lineCounter resolves byte offsets to lines.
// Offsets must be queried in increasing order.
type lineCounter struct {
	doc  string
	off  int
	line int
}

func newLineCounter(doc string) *lineCounter { return &lineCounter{doc: doc, line: 1} }

func (lc *lineCounter) at(off int) int {
	assert(off >= lc.off, "line lookup going backward: %d < %d", off, lc.off)
	lc.line += strings.Count(lc.doc[lc.off:off], "\n")
	lc.off = off
	return lc.line
}
