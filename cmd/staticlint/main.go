// Command staticlint runs the repository analyzers:
// staticcheck SA checks, simple and stylecheck checks, go-critic, bodyclose
// and stdoutprint.
//
//	go run ./cmd/staticlint ./...
package main

import (
	"strings"

	"github.com/go-critic/go-critic/checkers/analyzer"
	"github.com/timakin/bodyclose/passes/bodyclose"
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/multichecker"
	"golang.org/x/tools/go/analysis/passes/printf"
	"golang.org/x/tools/go/analysis/passes/structtag"
	"honnef.co/go/tools/simple"
	"honnef.co/go/tools/staticcheck"
	"honnef.co/go/tools/stylecheck"

	"github.com/nestjam/astrotools/internal/staticlint"
)

func main() {
	analyzers := []*analysis.Analyzer{
		printf.Analyzer,
		structtag.Analyzer,
		analyzer.Analyzer,
		bodyclose.Analyzer,
		staticlint.StdoutPrintAnalyzer,
	}

	for _, a := range staticcheck.Analyzers {
		if strings.HasPrefix(a.Analyzer.Name, "SA") {
			analyzers = append(analyzers, a.Analyzer)
		}
	}

	for _, a := range simple.Analyzers {
		analyzers = append(analyzers, a.Analyzer)
	}

	// ST1000 wants a package comment everywhere.
	for _, a := range stylecheck.Analyzers {
		if a.Analyzer.Name != "ST1000" {
			analyzers = append(analyzers, a.Analyzer)
		}
	}

	multichecker.Main(analyzers...)
}
