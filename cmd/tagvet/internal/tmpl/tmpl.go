// Package tmpl checks tag nesting in HTML literals given to the template packages.
package tmpl

import (
	"go/ast"
	"go/constant"

	"github.com/TroutSoftware/tagcheck"
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
	"golang.org/x/tools/go/types/typeutil"
)

var Analyzer = &analysis.Analyzer{
	Name:     "tmplnest",
	Doc:      `Check that constant templates passed to Parse have well-nested tags`,
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run_nesting,
}

// Parsers are the functions whose single argument is checked.
var Parsers = map[string]bool{
	"(*html/template.Template).Parse": true,
	"(*text/template.Template).Parse": true,
}

var realign bool

func init() {
	Analyzer.Flags.BoolVar(&realign, "realign", false, "realign the stack after a mismatched close")
}

func run_nesting(pass *analysis.Pass) (any, error) {
	inspect := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	funcs := []ast.Node{(*ast.CallExpr)(nil)}

	opts := tagcheck.Options{Mode: tagcheck.Cascade}
	if realign {
		opts.Mode = tagcheck.Realign
	}

	inspect.Preorder(funcs, func(node ast.Node) {
		call := node.(*ast.CallExpr)
		fn := typeutil.StaticCallee(pass.TypesInfo, call)
		if fn == nil {
			return // dynamic call
		}
		if len(call.Args) != 1 {
			return
		}
		if !Parsers[fn.FullName()] {
			return
		}

		tv, ok := pass.TypesInfo.Types[call.Args[0]]
		if !ok || tv.Value == nil || tv.Value.Kind() != constant.String {
			return // only constant templates are known at this stage
		}

		rp := tagcheck.Match(tagcheck.HTML5Tokenizer{}.Tokens(constant.StringVal(tv.Value)), opts)
		for _, d := range rp.Diagnostics {
			switch d.Kind {
			case tagcheck.UnexpectedClose:
				pass.ReportRangef(node, "extraneous close token: %s", d.Tag.Name)
			case tagcheck.MismatchedClose:
				pass.ReportRangef(node, "unmatched close token: %s closing %s", d.Tag.Name, d.Expected.Name)
			case tagcheck.ImplicitlyClosed:
				pass.ReportRangef(node, "implicitly closed: %s by %s", d.Tag.Name, d.Expected.Name)
			case tagcheck.UnclosedAtEnd:
				pass.ReportRangef(node, "unbalanced: %s", d.Tag.Name)
			}
		}
	})
	return nil, nil
}
