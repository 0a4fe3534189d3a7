// Package testutil holds test helpers that keep package boundaries honest:
// the public contract stays free of internal imports and only the blob facade
// reaches into the blob drivers.
package testutil

import (
	"fmt"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"golang.org/x/tools/go/packages"
)

// ImportBoundary forbids packages outside Allowed from importing anything
// under Guarded. Packages under Guarded may import each other.
type ImportBoundary struct {
	Guarded string
	Allowed string
}

// AssertImportBoundary loads pattern (test variants included) and fails t for
// every package that crosses b.
func AssertImportBoundary(t testing.TB, pattern string, b ImportBoundary) {
	t.Helper()
	viols, err := boundaryViolations(pattern, b)
	if err != nil {
		t.Fatalf("load packages: %v", err)
	}
	failIf(t, "import boundary "+b.Guarded, viols)
}

// AssertNoDirectImports parses the non-test .go files in dir and fails t if
// an import satisfies forbidden. Build tags are ignored.
func AssertNoDirectImports(t testing.TB, dir string, forbidden func(importPath string) bool, reason string) {
	t.Helper()
	viols, err := directImportViolations(dir, forbidden)
	if err != nil {
		t.Fatalf("scan %s: %v", dir, err)
	}
	failIf(t, reason, viols)
}

// InternalImportForbidden matches import paths inside an internal/ tree.
func InternalImportForbidden(path string) bool {
	return strings.Contains(path, "/internal/") || strings.HasSuffix(path, "/internal")
}

// Under reports whether path is prefix or one of its subpackages.
func Under(path, prefix string) bool {
	return path == prefix || strings.HasPrefix(path, prefix+"/")
}

var loadPackages = func(pattern string) ([]*packages.Package, error) {
	cfg := &packages.Config{Mode: packages.NeedName | packages.NeedImports, Tests: true}
	return packages.Load(cfg, pattern)
}

func boundaryViolations(pattern string, b ImportBoundary) ([]string, error) {
	pkgs, err := loadPackages(pattern)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{})
	for _, pkg := range pkgs {
		if Under(pkg.PkgPath, b.Allowed) || Under(pkg.PkgPath, b.Guarded) {
			continue
		}
		for imp := range pkg.Imports {
			if Under(imp, b.Guarded) {
				seen[fmt.Sprintf("%s imports %s", pkg.PkgPath, imp)] = struct{}{}
			}
		}
	}
	out := make([]string, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Strings(out)
	return out, nil
}

func directImportViolations(dir string, forbidden func(string) bool) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	fset := token.NewFileSet()
	var viols []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") {
			continue
		}
		f, err := parser.ParseFile(fset, filepath.Join(dir, name), nil, parser.ImportsOnly)
		if err != nil {
			return nil, err
		}
		for _, imp := range f.Imports {
			p := strings.Trim(imp.Path.Value, `"`)
			if forbidden(p) {
				viols = append(viols, p+" (in "+name+")")
			}
		}
	}
	return viols, nil
}

type fatalf interface {
	Fatalf(format string, args ...any)
}

func failIf(t fatalf, reason string, viols []string) {
	if len(viols) > 0 {
		t.Fatalf("forbidden imports (%s):\n%s", reason, strings.Join(viols, "\n"))
	}
}
