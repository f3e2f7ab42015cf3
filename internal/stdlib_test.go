package stdlib_test

import (
	"go/parser"
	"go/token"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

// TestStdlibOnlyCore checks that the root solver package imports nothing
// outside the standard library. Adapters under internal/ carry the external
// dependencies.
func TestStdlibOnlyCore(t *testing.T) {
	files, err := filepath.Glob(filepath.Join("..", "*.go"))
	if err != nil {
		t.Fatalf("Failed to list root package: %v", err)
	}
	if len(files) == 0 {
		t.Fatal("No Go files found in root package")
	}

	fset := token.NewFileSet()
	for _, fn := range files {
		if strings.HasSuffix(fn, "_test.go") {
			continue
		}
		f, err := parser.ParseFile(fset, fn, nil, parser.ImportsOnly)
		if err != nil {
			t.Fatalf("Failed to parse %s: %v", fn, err)
		}
		for _, imp := range f.Imports {
			path, err := strconv.Unquote(imp.Path.Value)
			if err != nil {
				t.Fatalf("Bad import in %s: %v", fn, err)
			}
			// Standard library paths have no dot in their first element.
			first, _, _ := strings.Cut(path, "/")
			if strings.Contains(first, ".") {
				t.Errorf("Non-stdlib import in %s: %s", filepath.Base(fn), path)
			}
		}
	}
}
