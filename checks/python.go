package checks

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"

	"github.com/thombet/addon-check/addon"
	"github.com/thombet/addon-check/report"
)

// PythonSyntax parses every Python source in the index and reports a problem
// for each file whose parse tree contains syntax errors. Unreadable files
// count as invalid.
func PythonSyntax(rep *report.Report, addonPath string, index []addon.FileEntry) {
	parser := sitter.NewParser()
	parser.SetLanguage(python.GetLanguage())

	for _, entry := range index {
		if !strings.HasSuffix(entry.Name, ".py") {
			continue
		}

		path := filepath.Join(entry.Path, entry.Name)
		if !wellFormedPython(parser, path) {
			rep.Add(report.NewProblem("Invalid python code found. %s", addon.RelativePath(path, addonPath)))
		}
	}
}

func wellFormedPython(parser *sitter.Parser, path string) bool {
	content, err := os.ReadFile(path)
	if err != nil {
		return false
	}

	tree, err := parser.ParseCtx(context.Background(), nil, content)
	if err != nil {
		return false
	}
	defer tree.Close()

	return !tree.RootNode().HasError()
}
