// Package revisions keeps the board's version history: an append-only,
// in-memory log of part-list snapshots with diff summaries between
// consecutive entries.
package revisions

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/charlespers/boardroom/internal/modules/bom"
)

// Revision is one entry in the version history. Parts is a full snapshot of
// the board's part list at the time the revision was recorded.
type Revision struct {
	ID        string           `json:"id"`
	Number    int              `json:"number"`
	Author    string           `json:"author"`
	Label     string           `json:"label"`
	CreatedAt time.Time        `json:"created_at"`
	Parts     []bom.PartRecord `json:"parts,omitempty"`
	Diff      Diff             `json:"diff"`
}

// Diff summarizes the change from the previous revision by part ID.
type Diff struct {
	Added   []string `json:"added"`
	Removed []string `json:"removed"`
	Changed []string `json:"changed"`
}

// Summary is a Revision without its snapshot, for history listings.
type Summary struct {
	ID        string    `json:"id"`
	Number    int       `json:"number"`
	Author    string    `json:"author"`
	Label     string    `json:"label"`
	CreatedAt time.Time `json:"created_at"`
	PartCount int       `json:"part_count"`
	Diff      Diff      `json:"diff"`
}

// Log is the append-only revision history, guarded for concurrent handlers.
type Log struct {
	mu        sync.RWMutex
	revisions []Revision
}

// NewLog creates an empty revision log.
func NewLog() *Log {
	return &Log{}
}

// Record appends a new revision holding a snapshot of parts, diffed against
// the previous revision.
func (l *Log) Record(author, label string, parts []bom.PartRecord) Revision {
	snapshot := make([]bom.PartRecord, len(parts))
	copy(snapshot, parts)

	l.mu.Lock()
	defer l.mu.Unlock()

	var previous []bom.PartRecord
	if n := len(l.revisions); n > 0 {
		previous = l.revisions[n-1].Parts
	}

	rev := Revision{
		ID:        uuid.New().String(),
		Number:    len(l.revisions) + 1,
		Author:    author,
		Label:     label,
		CreatedAt: time.Now().UTC(),
		Parts:     snapshot,
		Diff:      diffParts(previous, snapshot),
	}
	l.revisions = append(l.revisions, rev)
	return rev
}

// List returns history summaries, newest first.
func (l *Log) List() []Summary {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]Summary, 0, len(l.revisions))
	for i := len(l.revisions) - 1; i >= 0; i-- {
		rev := l.revisions[i]
		out = append(out, Summary{
			ID:        rev.ID,
			Number:    rev.Number,
			Author:    rev.Author,
			Label:     rev.Label,
			CreatedAt: rev.CreatedAt,
			PartCount: len(rev.Parts),
			Diff:      rev.Diff,
		})
	}
	return out
}

// Get returns a full revision including its snapshot.
func (l *Log) Get(id string) (Revision, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	for _, rev := range l.revisions {
		if rev.ID == id {
			return rev, nil
		}
	}
	return Revision{}, fmt.Errorf("revision %q not found", id)
}

// diffParts compares two snapshots by part ID. A part present in both but
// with any differing field counts as changed.
func diffParts(before, after []bom.PartRecord) Diff {
	prev := make(map[string]bom.PartRecord, len(before))
	for _, p := range before {
		prev[p.ID] = p
	}

	diff := Diff{Added: []string{}, Removed: []string{}, Changed: []string{}}
	seen := make(map[string]bool, len(after))
	for _, p := range after {
		seen[p.ID] = true
		old, ok := prev[p.ID]
		switch {
		case !ok:
			diff.Added = append(diff.Added, p.ID)
		case old != p:
			diff.Changed = append(diff.Changed, p.ID)
		}
	}
	for _, p := range before {
		if !seen[p.ID] {
			diff.Removed = append(diff.Removed, p.ID)
		}
	}
	return diff
}
