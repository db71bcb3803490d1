// Package voidclose flags closing tags of void elements in constant templates.
// Browsers do not agree on what `</br>` means, and the nesting check skips them entirely.
package voidclose

import (
	"go/ast"
	"go/constant"

	"github.com/TroutSoftware/tagcheck"
	"github.com/TroutSoftware/tagcheck/cmd/tagvet/internal/tmpl"
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
	"golang.org/x/tools/go/types/typeutil"
)

var Analyzer = &analysis.Analyzer{
	Name:     "voidclose",
	Doc:      "void elements (br, img, input…) must not be closed",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run_voidclose,
}

func run_voidclose(pass *analysis.Pass) (any, error) {
	inspect := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	funcs := []ast.Node{(*ast.CallExpr)(nil)}
	inspect.Preorder(funcs, func(node ast.Node) {
		call := node.(*ast.CallExpr)
		fn := typeutil.StaticCallee(pass.TypesInfo, call)
		if fn == nil {
			return // dynamic call
		}
		if len(call.Args) != 1 || !tmpl.Parsers[fn.FullName()] {
			return
		}

		tv, ok := pass.TypesInfo.Types[call.Args[0]]
		if !ok || tv.Value == nil || tv.Value.Kind() != constant.String {
			return
		}

		for tk := range (tagcheck.HTML5Tokenizer{}).Tokens(constant.StringVal(tv.Value)) {
			if tk.Closing && tk.Void() {
				pass.Reportf(call.Args[0].Pos(), "void element closed: </%s> (line %d)", tk.Name, tk.Line)
			}
		}
	})

	return nil, nil
}
