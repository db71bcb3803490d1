package tagcheck

import (
	"fmt"
	"io"
	"strings"
)

// Printer writes diagnostics in a human-readable form.
// Write errors are sticky, and returned by [Printer.Finish].
type Printer struct {
	w       io.Writer
	err     error
	heading bool
}

func NewPrinter(w io.Writer) *Printer { return &Printer{w: w} }

func (p *Printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

// Print writes a single diagnostic. It is meant as [Options.Emit].
func (p *Printer) Print(d Diagnostic) {
	tk := d.Tag
	switch d.Kind {
	case UnexpectedClose:
		p.printf("[%d] ERROR: Closing </%s> but stack is empty. Context: %s\n", tk.Position, tk.Name, asWritten(tk))
	case MismatchedClose:
		op := d.Expected
		p.printf("[%d] ERROR: Closing </%s> but expected </%s> (opened at [%d]).\n", tk.Position, tk.Name, op.Name, op.Position)
		p.printf("    Opened at [%d]: %s\n", op.Position, op)
		p.printf("    Closing at [%d]: </%s>\n", tk.Position, tk.Name)
	case ImplicitlyClosed:
		p.printf("[%d] WARNING: %s implicitly closed by </%s> at [%d].\n", tk.Position, tk, d.Expected.Name, d.Expected.Position)
	case UnclosedAtEnd:
		if !p.heading {
			p.printf("\nUNCLOSED TAGS:\n")
			p.heading = true
		}
		p.printf("[%d] %s\n", tk.Position, tk)
	default:
		panic(fmt.Sprintf("unknown diagnostic kind %s", d.Kind))
	}
}

// Finish closes the output once the report is complete.
// Unclosed tags are expected to have gone through Print already.
func (p *Printer) Finish(rp Report) error {
	if len(rp.Unclosed) == 0 {
		p.printf("\nAll tags matched!\n")
	}
	p.heading = false
	return p.err
}

// asWritten is the tag as written, without its brackets.
func asWritten(tk Token) string {
	if tk.Raw == "" {
		return strings.TrimSuffix(strings.TrimPrefix(tk.String(), "<"), ">")
	}
	return strings.TrimSuffix(strings.TrimPrefix(tk.Raw, "<"), ">")
}
