package tagcheck

import (
	"iter"
	"log/slog"
	"strings"
)

// Kind of a [Diagnostic].
type Kind int

//go:generate stringer -type Kind

const (
	UnexpectedClose  Kind = iota + 1 // closing tag with nothing open
	MismatchedClose                  // closing tag not matching the innermost open tag
	UnclosedAtEnd                    // tag still open at end of input
	ImplicitlyClosed                 // popped to reach a matching ancestor, Realign mode only
)

// Diagnostic describes one nesting anomaly.
//
// For MismatchedClose, Expected holds the open tag that was due for closing.
// For ImplicitlyClosed, Tag is the abandoned open tag and Expected the closing tag which caused it.
// Expected is the zero Token otherwise.
type Diagnostic struct {
	Kind     Kind
	Tag      Token
	Expected Token
}

// Mode selects how the matcher behaves after a mismatched closing tag.
type Mode int

const (
	// Cascade pops the open tag and moves on, without trying to realign the stack.
	// A single mistake can then be reported many times over, for every enclosing element.
	Cascade Mode = iota

	// Realign looks deeper in the stack for an open tag of the same name.
	// When found, every tag above it is reported as implicitly closed and discarded;
	// when not, the closing tag is reported and the stack is left untouched.
	Realign
)

// Options configure a [Matcher]. The zero value is usable.
type Options struct {
	Mode   Mode
	Logger *slog.Logger

	// Emit, when set, receives each diagnostic as soon as it is found,
	// before the next token is consumed.
	Emit func(Diagnostic)
}

// Report is the outcome of matching a whole document.
// Unclosed is ordered outermost first; the same tags appear as UnclosedAtEnd diagnostics.
type Report struct {
	Diagnostics []Diagnostic
	Unclosed    []Token
}

// OK is true when no diagnostic was found.
func (r Report) OK() bool { return len(r.Diagnostics) == 0 }

// Matcher replays tag tokens against a stack of open tags.
// A Matcher must not be shared between goroutines; it can be reused after [Matcher.Close].
type Matcher struct {
	opts   Options
	logger *slog.Logger
	stack  []Token
	report Report
}

func NewMatcher(opts Options) *Matcher {
	m := &Matcher{opts: opts, logger: opts.Logger}
	if m.logger == nil {
		m.logger = slog.New(slog.DiscardHandler)
	}
	return m
}

// Match consumes all tokens, then reports what is left open.
func Match(tokens iter.Seq[Token], opts Options) Report {
	m := NewMatcher(opts)
	for tk := range tokens {
		m.Feed(tk)
	}
	return m.Close()
}

// Open returns the tags currently open, outermost first.
// The slice is owned by the matcher and changes with the next call to Feed.
func (m *Matcher) Open() []Token { return m.stack }

// Feed processes a single token.
func (m *Matcher) Feed(tk Token) {
	switch {
	case tk.Void(), tk.SelfClosing:
		m.logger.Debug("skip", "pos", tk.Position, "tag", tk.Name)

	case !tk.Closing:
		m.logger.Debug("push", "pos", tk.Position, "tag", tk.Name, "depth", len(m.stack))
		m.stack = append(m.stack, tk)

	case len(m.stack) == 0:
		m.emit(Diagnostic{Kind: UnexpectedClose, Tag: tk})

	case m.opts.Mode == Realign:
		m.realign(tk)

	default:
		top := m.pop()
		m.logger.Debug("pop", "pos", tk.Position, "tag", tk.Name, "open", top.Name)
		if !strings.EqualFold(top.Name, tk.Name) {
			m.emit(Diagnostic{Kind: MismatchedClose, Tag: tk, Expected: top})
		}
	}
}

func (m *Matcher) realign(tk Token) {
	i := len(m.stack) - 1
	for i >= 0 && !strings.EqualFold(m.stack[i].Name, tk.Name) {
		i--
	}
	if i < 0 {
		m.emit(Diagnostic{Kind: MismatchedClose, Tag: tk, Expected: m.stack[len(m.stack)-1]})
		return
	}

	for len(m.stack)-1 > i {
		m.emit(Diagnostic{Kind: ImplicitlyClosed, Tag: m.pop(), Expected: tk})
	}
	top := m.pop()
	m.logger.Debug("pop", "pos", tk.Position, "tag", tk.Name, "open", top.Name)
}

func (m *Matcher) pop() Token {
	assert(len(m.stack) > 0, "pop on empty stack")
	top := m.stack[len(m.stack)-1]
	m.stack = m.stack[:len(m.stack)-1]
	return top
}

func (m *Matcher) emit(d Diagnostic) {
	m.report.Diagnostics = append(m.report.Diagnostics, d)
	if m.opts.Emit != nil {
		m.opts.Emit(d)
	}
}

// Close reports every tag still open, outermost first, and returns the full report.
// The matcher is reset, and can be fed a new document.
func (m *Matcher) Close() Report {
	for _, tk := range m.stack {
		m.emit(Diagnostic{Kind: UnclosedAtEnd, Tag: tk})
	}
	rp := m.report
	rp.Unclosed = m.stack

	m.stack = nil
	m.report = Report{}
	return rp
}
