// Package comments implements the board's discussion panel: threaded
// comments attached to a part, the schematic, or the board itself. Comments
// live in memory only.
package comments

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Comment is one entry in the comments panel. Replies reference their parent
// comment via ParentID.
type Comment struct {
	ID        string    `json:"id"`
	Target    string    `json:"target"`
	ParentID  string    `json:"parent_id,omitempty"`
	Author    string    `json:"author"`
	Body      string    `json:"body"`
	Resolved  bool      `json:"resolved"`
	CreatedAt time.Time `json:"created_at"`
}

// Store holds comments in insertion order, guarded for concurrent handlers.
type Store struct {
	mu       sync.RWMutex
	comments []Comment
}

// NewStore creates an empty comments store.
func NewStore() *Store {
	return &Store{}
}

// Add validates and stores a new comment, assigning its ID and timestamp.
// Target defaults to "board" when empty.
func (s *Store) Add(target, parentID, author, body string) (Comment, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return Comment{}, fmt.Errorf("comment body is required")
	}
	target = strings.TrimSpace(target)
	if target == "" {
		target = "board"
	}
	author = strings.TrimSpace(author)
	if author == "" {
		author = "anonymous"
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if parentID != "" && s.indexOf(parentID) < 0 {
		return Comment{}, fmt.Errorf("parent comment %q not found", parentID)
	}

	c := Comment{
		ID:        uuid.New().String(),
		Target:    target,
		ParentID:  parentID,
		Author:    author,
		Body:      body,
		CreatedAt: time.Now().UTC(),
	}
	s.comments = append(s.comments, c)
	return c, nil
}

// List returns comments in insertion order. A non-empty target filters to
// that target's thread.
func (s *Store) List(target string) []Comment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Comment, 0, len(s.comments))
	for _, c := range s.comments {
		if target == "" || c.Target == target {
			out = append(out, c)
		}
	}
	return out
}

// Resolve marks a comment as resolved.
func (s *Store) Resolve(id string) (Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return Comment{}, fmt.Errorf("comment %q not found", id)
	}
	s.comments[i].Resolved = true
	return s.comments[i], nil
}

// Delete removes a comment and its whole reply tree, so no reply is left
// pointing at a missing parent.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(id) < 0 {
		return fmt.Errorf("comment %q not found", id)
	}

	doomed := map[string]bool{id: true}
	// Replies always follow their parent in insertion order, so one forward
	// pass collects the full tree.
	for _, c := range s.comments {
		if doomed[c.ParentID] {
			doomed[c.ID] = true
		}
	}

	kept := s.comments[:0]
	for _, c := range s.comments {
		if doomed[c.ID] {
			continue
		}
		kept = append(kept, c)
	}
	s.comments = kept
	return nil
}

// indexOf returns the position of a comment, or -1. Caller holds the lock.
func (s *Store) indexOf(id string) int {
	for i, c := range s.comments {
		if c.ID == id {
			return i
		}
	}
	return -1
}
