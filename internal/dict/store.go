// Package dict implements the session-scoped dictionary store: an ordered
// set of named tactics, each a mutable list of keywords. Insertion order is
// significant; it determines match order and the column order of annotated
// output.
package dict

import (
	"encoding/json"
	"fmt"
	"strings"

	"tacticlens/internal/models"
)

// Store holds the current tactics in insertion order. Tactic names are
// compared exactly and case-sensitively; "Urgency" and "urgency" are two
// distinct tactics.
type Store struct {
	tactics []models.Tactic
	index   map[string]int
}

// New returns an empty store.
func New() *Store {
	return &Store{index: make(map[string]int)}
}

// NewDefault returns a store seeded with the built-in tactics.
func NewDefault() *Store {
	return NewFromTactics(DefaultTactics())
}

// NewFromTactics builds a store from an ordered tactic list, applying the
// usual name and keyword normalization. Entries that fail to add (empty or
// duplicate names) are skipped; every seed list reaching here is already
// validated, built-in defaults and values this store wrote itself, or
// presets checked by config.SeedTactics at startup.
func NewFromTactics(tactics []models.Tactic) *Store {
	s := New()
	for _, t := range tactics {
		if err := s.AddTactic(t.Name, t.Keywords); err != nil {
			continue
		}
	}
	return s
}

// AddTactic inserts a new tactic at the end of the ordering.
func (s *Store) AddTactic(name string, keywords []string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrInvalidName
	}
	if _, ok := s.index[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateTactic, name)
	}
	s.index[name] = len(s.tactics)
	s.tactics = append(s.tactics, models.Tactic{
		Name:     name,
		Keywords: normalizeKeywords(keywords),
	})
	return nil
}

// SetKeywords replaces the keyword list of an existing tactic. An empty list
// is legal; the tactic simply matches nothing.
func (s *Store) SetKeywords(name string, keywords []string) error {
	i, ok := s.index[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownTactic, name)
	}
	s.tactics[i].Keywords = normalizeKeywords(keywords)
	return nil
}

// RemoveTactic deletes a tactic from the store.
func (s *Store) RemoveTactic(name string) error {
	i, ok := s.index[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownTactic, name)
	}
	s.tactics = append(s.tactics[:i], s.tactics[i+1:]...)
	delete(s.index, name)
	for j := i; j < len(s.tactics); j++ {
		s.index[s.tactics[j].Name] = j
	}
	return nil
}

// Get returns a copy of the named tactic.
func (s *Store) Get(name string) (models.Tactic, bool) {
	i, ok := s.index[name]
	if !ok {
		return models.Tactic{}, false
	}
	return s.tactics[i].Clone(), true
}

// Tactics returns a deep-copied snapshot of the tactics in insertion order.
// Classification passes iterate the snapshot, so store mutations made after
// the snapshot cannot change a pass already underway.
func (s *Store) Tactics() []models.Tactic {
	out := make([]models.Tactic, len(s.tactics))
	for i, t := range s.tactics {
		out[i] = t.Clone()
	}
	return out
}

// Len returns the number of tactics in the store.
func (s *Store) Len() int {
	return len(s.tactics)
}

// MarshalJSON encodes the store as an ordered array of tactics. A JSON
// object would lose the insertion order on the way back in.
func (s *Store) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.tactics)
}

// UnmarshalJSON decodes the ordered-array form produced by MarshalJSON.
func (s *Store) UnmarshalJSON(data []byte) error {
	var tactics []models.Tactic
	if err := json.Unmarshal(data, &tactics); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	*s = *NewFromTactics(tactics)
	return nil
}

// normalizeKeywords trims surrounding whitespace, drops entries that are
// empty after trimming, and collapses exact-string duplicates while keeping
// first-seen order. Case is preserved; "a" and "A" remain distinct entries.
func normalizeKeywords(keywords []string) []string {
	out := make([]string, 0, len(keywords))
	seen := make(map[string]struct{}, len(keywords))
	for _, kw := range keywords {
		kw = strings.TrimSpace(kw)
		if kw == "" {
			continue
		}
		if _, ok := seen[kw]; ok {
			continue
		}
		seen[kw] = struct{}{}
		out = append(out, kw)
	}
	return out
}
