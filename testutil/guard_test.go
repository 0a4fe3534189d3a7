package testutil

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/go/packages"
)

type recordingT struct {
	msg string
}

func (r *recordingT) Fatalf(format string, _ ...any) { r.msg = format }

func writeFile(t *testing.T, dir, name, src string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(src), 0o600))
}

func TestInternalImportForbidden(t *testing.T) {
	cases := map[string]bool{
		"omemeta/internal/core":    true,
		"omemeta/internal":         true,
		"omemeta/pkg/domain":       false,
		"github.com/x/internalish": false,
	}
	for in, want := range cases {
		assert.Equal(t, want, InternalImportForbidden(in), in)
	}
}

func TestUnder(t *testing.T) {
	assert.True(t, Under("omemeta/internal/blob", "omemeta/internal/blob"))
	assert.True(t, Under("omemeta/internal/blob/core", "omemeta/internal/blob"))
	assert.False(t, Under("omemeta/internal/blobby", "omemeta/internal/blob"))
}

func TestDirectImportViolations(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.go", "package tmp\nimport (\n\t\"fmt\"\n\t\"omemeta/internal/core\"\n)\nvar _ = fmt.Sprint\n")
	writeFile(t, dir, "a_test.go", "package tmp\nimport \"omemeta/internal/config\"\n")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.go"), 0o700))

	viols, err := directImportViolations(dir, InternalImportForbidden)
	require.NoError(t, err)
	assert.Equal(t, []string{"omemeta/internal/core (in a.go)"}, viols)
}

func TestDirectImportViolationsParseError(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "bad.go", "package tmp\nimport (")
	_, err := directImportViolations(dir, InternalImportForbidden)
	assert.Error(t, err)
}

func TestAssertNoDirectImportsClean(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "x.go", "package tmp\nimport \"fmt\"\nfunc X() { fmt.Println(1) }\n")
	AssertNoDirectImports(t, dir, InternalImportForbidden, "clean")
}

func TestBoundaryViolations(t *testing.T) {
	orig := loadPackages
	t.Cleanup(func() { loadPackages = orig })
	loadPackages = func(string) ([]*packages.Package, error) {
		drv := &packages.Package{PkgPath: "m/internal/infra/blob/fs"}
		return []*packages.Package{
			{PkgPath: "m/internal/blob", Imports: map[string]*packages.Package{drv.PkgPath: drv}},
			{PkgPath: "m/internal/infra/blob/s3", Imports: map[string]*packages.Package{"m/internal/infra/blob/core": {}}},
			{PkgPath: "m/internal/core", Imports: map[string]*packages.Package{drv.PkgPath: drv, "fmt": {}}},
		}, nil
	}
	viols, err := boundaryViolations("m/...", ImportBoundary{Guarded: "m/internal/infra/blob", Allowed: "m/internal/blob"})
	require.NoError(t, err)
	assert.Equal(t, []string{"m/internal/core imports m/internal/infra/blob/fs"}, viols)

	loadPackages = func(string) ([]*packages.Package, error) { return nil, errors.New("boom") }
	_, err = boundaryViolations("m/...", ImportBoundary{})
	assert.Error(t, err)
}

func TestFailIf(t *testing.T) {
	rec := &recordingT{}
	failIf(rec, "reason", nil)
	assert.Empty(t, rec.msg)
	failIf(rec, "reason", []string{"a"})
	assert.NotEmpty(t, rec.msg)
}
