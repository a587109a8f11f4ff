package setdex

import (
	"slices"

	"setdex/internal/analysis"
)

// Set is one labelled moveset of a subject.
type Set struct {
	Label   string
	Details analysis.Details
}

// Setdex maps subject keys to their sets in the order they were encountered.
type Setdex struct {
	sets map[string][]Set
}

// New returns an empty setdex.
func New() *Setdex {
	return &Setdex{sets: make(map[string][]Set)}
}

// Add appends set to the sequence of subject.
func (s *Setdex) Add(subject string, set Set) {
	s.sets[subject] = append(s.sets[subject], set)
}

// Subjects returns every subject key in lexical order.
func (s *Setdex) Subjects() []string {
	keys := make([]string, 0, len(s.sets))
	for key := range s.sets {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}

// Sets returns the sets of subject in insertion order.
func (s *Setdex) Sets(subject string) []Set {
	return s.sets[subject]
}

// Len reports the number of subjects.
func (s *Setdex) Len() int {
	return len(s.sets)
}

// SetCount reports the number of sets across all subjects.
func (s *Setdex) SetCount() int {
	total := 0
	for _, sets := range s.sets {
		total += len(sets)
	}
	return total
}
