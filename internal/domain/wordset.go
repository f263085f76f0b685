package domain

import "fmt"

// WordSet is the dedup set of Finnish words already in the store.
// Keys are NormalizeWord forms; insertion order is kept so the most
// recently recorded words can be quoted back to the model.
type WordSet struct {
	index map[string]struct{}
	order []string
}

// NewWordSet builds a set from raw words. Blank entries are ignored.
func NewWordSet(words ...string) *WordSet {
	s := &WordSet{index: make(map[string]struct{}, len(words))}
	for _, w := range words {
		s.Add(w)
	}
	return s
}

// Add inserts the word and reports whether it was new.
func (s *WordSet) Add(word string) bool {
	key := NormalizeWord(word)
	if key == "" {
		return false
	}
	if s.index == nil {
		s.index = make(map[string]struct{})
	}
	if _, ok := s.index[key]; ok {
		return false
	}
	s.index[key] = struct{}{}
	s.order = append(s.order, key)
	return true
}

// Reserve inserts the word. A word already in the set returns an error
// wrapping ErrDuplicate; a blank word returns one wrapping ErrValidation.
func (s *WordSet) Reserve(word string) error {
	if NormalizeWord(word) == "" {
		return fmt.Errorf("%w: blank word", ErrValidation)
	}
	if !s.Add(word) {
		return fmt.Errorf("%w: %q", ErrDuplicate, word)
	}
	return nil
}

// Contains reports whether the normalized word is in the set.
func (s *WordSet) Contains(word string) bool {
	if s == nil {
		return false
	}
	_, ok := s.index[NormalizeWord(word)]
	return ok
}

func (s *WordSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.order)
}

// Recent returns up to n of the most recently added words, oldest first.
// n <= 0 returns nil.
func (s *WordSet) Recent(n int) []string {
	if s == nil || n <= 0 {
		return nil
	}
	start := len(s.order) - n
	if start < 0 {
		start = 0
	}
	out := make([]string, len(s.order)-start)
	copy(out, s.order[start:])
	return out
}
