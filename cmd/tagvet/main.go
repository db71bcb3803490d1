// Command tagvet is a vet tool checking HTML templates found in Go sources.
//
//	go vet -vettool=$(which tagvet) ./...
package main

import (
	"github.com/TroutSoftware/tagcheck/cmd/tagvet/internal/tmpl"
	"github.com/TroutSoftware/tagcheck/cmd/tagvet/internal/voidclose"
	"golang.org/x/tools/go/analysis/unitchecker"
)

func main() {
	unitchecker.Main(tmpl.Analyzer, voidclose.Analyzer)
}
