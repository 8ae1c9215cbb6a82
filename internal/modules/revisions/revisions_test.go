package revisions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/charlespers/boardroom/internal/modules/bom"
)

func TestLog_RecordAndList(t *testing.T) {
	l := NewLog()

	first := l.Record("alice", "initial import", []bom.PartRecord{
		{ID: "R1", MPN: "RC0603FR-0710KL"},
		{ID: "C1", MPN: "CL10A105KB8NNNC"},
	})
	assert.Equal(t, 1, first.Number)
	assert.ElementsMatch(t, []string{"R1", "C1"}, first.Diff.Added)
	assert.Empty(t, first.Diff.Removed)

	second := l.Record("bob", "swap cap, drop resistor", []bom.PartRecord{
		{ID: "C1", MPN: "CL10B105KB8NNNC"},
	})
	assert.Equal(t, 2, second.Number)
	assert.Empty(t, second.Diff.Added)
	assert.Equal(t, []string{"R1"}, second.Diff.Removed)
	assert.Equal(t, []string{"C1"}, second.Diff.Changed)

	history := l.List()
	require.Len(t, history, 2)
	assert.Equal(t, 2, history[0].Number, "newest first")
	assert.Equal(t, 1, history[0].PartCount)
	assert.Equal(t, 2, history[1].PartCount)
}

func TestLog_Get(t *testing.T) {
	l := NewLog()
	rev := l.Record("alice", "initial", []bom.PartRecord{{ID: "R1"}})

	got, err := l.Get(rev.ID)
	require.NoError(t, err)
	assert.Equal(t, rev.ID, got.ID)
	require.Len(t, got.Parts, 1)
	assert.Equal(t, "R1", got.Parts[0].ID)

	_, err = l.Get("nope")
	assert.Error(t, err)
}

func TestLog_SnapshotIsolation(t *testing.T) {
	l := NewLog()
	parts := []bom.PartRecord{{ID: "R1", Quantity: "2"}}
	rev := l.Record("alice", "initial", parts)

	// Mutating the caller's slice must not affect the stored snapshot.
	parts[0].Quantity = "99"

	got, err := l.Get(rev.ID)
	require.NoError(t, err)
	assert.Equal(t, bom.TextValue("2"), got.Parts[0].Quantity)
}

func TestDiffParts_QuantityChange(t *testing.T) {
	before := []bom.PartRecord{{ID: "R1", Quantity: "2", UnitPrice: "$0.01"}}
	after := []bom.PartRecord{{ID: "R1", Quantity: "4", UnitPrice: "$0.01"}}

	diff := diffParts(before, after)

	assert.Empty(t, diff.Added)
	assert.Empty(t, diff.Removed)
	assert.Equal(t, []string{"R1"}, diff.Changed)
}
