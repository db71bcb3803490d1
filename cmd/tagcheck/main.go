// Command tagcheck reports mismatched and unclosed tags in an HTML document.
//
// Usage:
//
//	tagcheck [-mode cascade|realign] [-tokenizer pattern|html5] [-strict] [-v] [file]
//
// The file defaults to index.html in the current directory.
// Diagnostics go to standard output; the exit status is 1 when the file cannot be read,
// and 2 in strict mode when anything was reported.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/TroutSoftware/tagcheck"
)

const (
	exitOK       = 0
	exitFailure  = 1
	exitFindings = 2
)

var modes = map[string]tagcheck.Mode{
	"cascade": tagcheck.Cascade,
	"realign": tagcheck.Realign,
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("tagcheck", flag.ContinueOnError)
	fs.SetOutput(stderr)
	mode := fs.String("mode", "cascade", "recovery after a mismatched close: cascade or realign")
	tokenizer := fs.String("tokenizer", "pattern", "tag recognition: pattern or html5")
	strict := fs.Bool("strict", false, "exit with status 2 when anything is reported")
	verbose := fs.Bool("v", false, "log matching steps to stderr")
	if err := fs.Parse(args); err != nil {
		return exitFailure
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	md, ok := modes[*mode]
	if !ok {
		fmt.Fprintf(stderr, "unknown mode %q\n", *mode)
		fs.Usage()
		return exitFailure
	}
	tz, ok := tagcheck.Tokenizers[*tokenizer]
	if !ok {
		fmt.Fprintf(stderr, "unknown tokenizer %q\n", *tokenizer)
		fs.Usage()
		return exitFailure
	}

	path := tagcheck.DefaultPath
	if fs.NArg() > 0 {
		path = fs.Arg(0)
	}

	rp, err := tagcheck.CheckFile(stdout, path, tz, tagcheck.Options{Mode: md, Logger: logger})
	var rerr *tagcheck.ReadError
	switch {
	case errors.As(err, &rerr):
		logger.Error("cannot read document", "path", rerr.Path, "err", rerr.Err)
		return exitFailure
	case err != nil:
		logger.Error("cannot write report", "err", err)
		return exitFailure
	}

	logger.Debug("done", "path", path, "diagnostics", len(rp.Diagnostics), "unclosed", len(rp.Unclosed))
	if *strict && !rp.OK() {
		return exitFindings
	}
	return exitOK
}
