// Package board holds the in-memory state of the currently open board.
// Nothing is persisted: the store is rebuilt from a demo seed on startup and
// replaced wholesale by BOM imports.
package board

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/charlespers/boardroom/internal/modules/bom"
)

// Store is the thread-safe owner of the board's part list. Handlers read and
// mutate it concurrently, so all access goes through the RWMutex.
type Store struct {
	log   zerolog.Logger
	mu    sync.RWMutex
	name  string
	parts []bom.PartRecord
}

// New creates an empty board store.
func New(name string, log zerolog.Logger) *Store {
	return &Store{
		name: name,
		log:  log.With().Str("component", "board").Logger(),
	}
}

// Name returns the board's display name.
func (s *Store) Name() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.name
}

// Parts returns a copy of the current part list in insertion order. Callers
// own the returned slice.
func (s *Store) Parts() []bom.PartRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	parts := make([]bom.PartRecord, len(s.parts))
	copy(parts, s.parts)
	return parts
}

// ReplaceParts swaps in a new part list, e.g. after a BOM import or a
// revision restore.
func (s *Store) ReplaceParts(parts []bom.PartRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.parts = make([]bom.PartRecord, len(parts))
	copy(s.parts, parts)
	s.log.Debug().Int("count", len(parts)).Msg("Part list replaced")
}

// GetPart returns the part with the given ID.
func (s *Store) GetPart(id string) (bom.PartRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.parts {
		if p.ID == id {
			return p, nil
		}
	}
	return bom.PartRecord{}, fmt.Errorf("part %q not found", id)
}

// UpdatePart replaces the part with the given ID in place, keeping its
// position in the list.
func (s *Store) UpdatePart(id string, part bom.PartRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, p := range s.parts {
		if p.ID == id {
			part.ID = id
			s.parts[i] = part
			return nil
		}
	}
	return fmt.Errorf("part %q not found", id)
}

// DeletePart removes the part with the given ID.
func (s *Store) DeletePart(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, p := range s.parts {
		if p.ID == id {
			s.parts = append(s.parts[:i], s.parts[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("part %q not found", id)
}
