// SPDX-License-Identifier: MPL-2.0

package schema_test

import (
	"testing"

	"github.com/danos/mgmterror"

	"github.com/schemafwd/yangcore/schema"
	"github.com/schemafwd/yangcore/schema/diag"
)

// NewDiagTaggedError stamps the diag.Code onto AppTag the same way
// schema/types.go stamps pattern/length-violation app-tags; verify the
// stamping rather than the mgmterror plumbing it reuses.
func TestDiagTaggedErrorCarriesCode(t *testing.T) {
	err := schema.NewDiagTaggedError(diag.NoResolv, []string{"a", "b"}, "grouping cycle detected")

	merr, ok := err.(*mgmterror.OperationFailedApplicationError)
	if !ok {
		t.Fatalf("expected *mgmterror.OperationFailedApplicationError, got %T", err)
	}
	if merr.AppTag != diag.NoResolv.String() {
		t.Errorf("got AppTag %q, want %q", merr.AppTag, diag.NoResolv.String())
	}
	if merr.Message != "grouping cycle detected" {
		t.Errorf("got Message %q, want %q", merr.Message, "grouping cycle detected")
	}
}
