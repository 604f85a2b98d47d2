package staticlint

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/analysis"
)

const stdoutPrintWarn = "printing to stdout outside main package"

// StdoutPrintAnalyzer запрещает fmt.Print* и os.Stdout вне пакета main:
// stdout зарезервирован для строк результата.
var StdoutPrintAnalyzer = &analysis.Analyzer{
	Name: "stdoutprint",
	Doc:  "check printing to stdout outside main package",
	Run:  run,
}

func run(pass *analysis.Pass) (interface{}, error) {
	const mainPackageName = "main"

	if pass.Pkg.Name() == mainPackageName {
		return nil, nil
	}

	isStdoutUse := func(sel *ast.SelectorExpr) bool {
		obj := pass.TypesInfo.Uses[sel.Sel]
		if obj == nil || obj.Pkg() == nil {
			return false
		}

		switch obj.Pkg().Path() {
		case "fmt":
			_, isFunc := obj.(*types.Func)
			return isFunc && isPrintFunc(obj.Name())
		case "os":
			_, isVar := obj.(*types.Var)
			return isVar && obj.Name() == "Stdout"
		}
		return false
	}

	for _, file := range pass.Files {
		ast.Inspect(file, func(node ast.Node) bool {
			if sel, ok := node.(*ast.SelectorExpr); ok && isStdoutUse(sel) {
				pass.Reportf(sel.Pos(), stdoutPrintWarn)
			}
			return true
		})
	}

	return nil, nil
}

func isPrintFunc(name string) bool {
	switch name {
	case "Print", "Println", "Printf":
		return true
	}
	return false
}
