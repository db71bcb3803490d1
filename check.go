package tagcheck

import (
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"
)

// ErrNotUTF8 is wrapped in a [ReadError] when the document cannot be decoded.
var ErrNotUTF8 = errors.New("not valid UTF-8")

// ReadError is returned when the document cannot be obtained.
// It is the only failure of a check; nesting anomalies are part of the [Report].
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string { return fmt.Sprintf("cannot read %s: %s", e.Path, e.Err) }
func (e *ReadError) Unwrap() error { return e.Err }

// ReadDocument loads a UTF-8 document in memory.
func ReadDocument(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", &ReadError{Path: path, Err: err}
	}
	defer f.Close()

	buf, err := io.ReadAll(f)
	if err != nil {
		return "", &ReadError{Path: path, Err: err}
	}
	if !utf8.Valid(buf) {
		return "", &ReadError{Path: path, Err: ErrNotUTF8}
	}
	return string(buf), nil
}

// Check matches the tags of doc, and prints diagnostics to w as they are found.
// A nil tokenizer defaults to [PatternTokenizer].
// Any Emit function in opts is still called, after printing.
func Check(w io.Writer, doc string, tz Tokenizer, opts Options) (Report, error) {
	if tz == nil {
		tz = PatternTokenizer{}
	}

	p := NewPrinter(w)
	next := opts.Emit
	opts.Emit = func(d Diagnostic) {
		p.Print(d)
		if next != nil {
			next(d)
		}
	}

	rp := Match(tz.Tokens(doc), opts)
	if err := p.Finish(rp); err != nil {
		return rp, fmt.Errorf("writing report: %w", err)
	}
	return rp, nil
}

// CheckFile is [Check] on the document at path.
func CheckFile(w io.Writer, path string, tz Tokenizer, opts Options) (Report, error) {
	doc, err := ReadDocument(path)
	if err != nil {
		return Report{}, err
	}
	return Check(w, doc, tz, opts)
}
