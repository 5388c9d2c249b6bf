// SPDX-License-Identifier: MPL-2.0

package schema_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/schemafwd/yangcore/data/encoding"
	"github.com/schemafwd/yangcore/schema"
	"github.com/schemafwd/yangcore/schema/diag"
)

const whenPolicyTestSchema = `
	leaf x {
		type string;
	}
	container a {
		when "../x = 'on'";
		leaf y {
			type string;
		}
	}
`

const whenPolicyTestData = `{"x":"off","a":{"y":"foo"}}`

// A false when auto-deletes its subtree by default, recording a diag.NoWhen
// note on the configured sink instead of failing the unmarshal.
func TestWhenPolicyAutoDeletesByDefault(t *testing.T) {
	sn := getSchema(t, whenPolicyTestSchema)

	sink := &diag.Sink{}
	_, err := encoding.NewUnmarshaller(encoding.JSON).
		SetWhenPolicy(schema.WhenPolicy{Sink: sink}).
		Unmarshal(sn, []byte(whenPolicyTestData))
	if err != nil {
		t.Fatalf("expected auto-delete, got error: %s", err.Error())
	}

	if !sink.HasErrors() {
		t.Fatalf("expected a diag.NoWhen record for the pruned container")
	}

	want := []diag.Record{
		{Code: diag.NoWhen, Message: "when evaluated false, node auto-deleted"},
	}
	// Path is the pruned node's runtime data-tree path, not worth pinning
	// down exactly here; Code and Message are the part callers switch on.
	if diff := cmp.Diff(want, sink.Records(), cmpopts.IgnoreFields(diag.Record{}, "Path")); diff != "" {
		t.Errorf("sink records mismatch (-want +got):\n%s", diff)
	}
}

// NoAutoDelete turns the same false when into a hard error instead.
func TestWhenPolicyNoAutoDeleteIsHardError(t *testing.T) {
	sn := getSchema(t, whenPolicyTestSchema)

	_, err := encoding.NewUnmarshaller(encoding.JSON).
		SetWhenPolicy(schema.WhenPolicy{NoAutoDelete: true}).
		Unmarshal(sn, []byte(whenPolicyTestData))
	if err == nil {
		t.Fatalf("expected a hard error with NoAutoDelete set")
	}
}
