package board

import (
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/charlespers/boardroom/internal/modules/bom"
)

func newTestStore() *Store {
	s := New("demo-board", zerolog.Nop())
	s.ReplaceParts(DemoParts())
	return s
}

func TestStore_PartsReturnsCopy(t *testing.T) {
	s := newTestStore()

	parts := s.Parts()
	require.NotEmpty(t, parts)
	parts[0].MPN = "mutated"

	assert.NotEqual(t, "mutated", s.Parts()[0].MPN)
}

func TestStore_UpdatePart(t *testing.T) {
	s := newTestStore()

	err := s.UpdatePart("R1", bom.PartRecord{MPN: "RC0603FR-0722KL", Quantity: "8", UnitPrice: "$0.01"})
	require.NoError(t, err)

	got, err := s.GetPart("R1")
	require.NoError(t, err)
	assert.Equal(t, "R1", got.ID, "ID is preserved on update")
	assert.Equal(t, "RC0603FR-0722KL", got.MPN)

	// Position in the list is unchanged.
	ids := make([]string, 0)
	for _, p := range s.Parts() {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, "R1", ids[3])
}

func TestStore_UpdatePart_NotFound(t *testing.T) {
	s := newTestStore()
	assert.Error(t, s.UpdatePart("nope", bom.PartRecord{}))
}

func TestStore_DeletePart(t *testing.T) {
	s := newTestStore()
	before := len(s.Parts())

	require.NoError(t, s.DeletePart("C1"))
	assert.Len(t, s.Parts(), before-1)

	_, err := s.GetPart("C1")
	assert.Error(t, err)

	assert.Error(t, s.DeletePart("C1"), "second delete fails")
}

func TestStore_ConcurrentAccess(t *testing.T) {
	s := newTestStore()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = s.Parts()
		}()
		go func() {
			defer wg.Done()
			s.ReplaceParts(DemoParts())
		}()
	}
	wg.Wait()

	assert.Len(t, s.Parts(), len(DemoParts()))
}
