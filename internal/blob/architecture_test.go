package blob

import (
	"omemeta/testutil"
	"testing"
)

// Only this package wraps the drivers; everything else goes through Store.
func TestOnlyBlobPackageImportsDrivers(t *testing.T) {
	testutil.AssertImportBoundary(t, "omemeta/...", testutil.ImportBoundary{
		Guarded: "omemeta/internal/infra/blob",
		Allowed: "omemeta/internal/blob",
	})
}
