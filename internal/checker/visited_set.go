package checker

import "sync"

// VisitedSet records normalized links already claimed for verification in one run.
// It is safe for concurrent use.
type VisitedSet struct {
	mu    sync.Mutex
	links map[string]struct{}
}

// NewVisitedSet creates an empty set.
func NewVisitedSet() *VisitedSet {
	return &VisitedSet{links: make(map[string]struct{})}
}

// Add claims link and returns true if it was not in the set yet.
func (s *VisitedSet) Add(link string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.links[link]; ok {
		return false
	}
	s.links[link] = struct{}{}
	return true
}

// Len returns the number of claimed links.
func (s *VisitedSet) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.links)
}
