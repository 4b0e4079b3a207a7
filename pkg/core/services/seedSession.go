package services

import "sync"

// SeedSession keeps one seed across repeated generations so a rota can be
// regenerated identically until the session is reset
type SeedSession struct {
	mu   sync.Mutex
	seed *int64
	draw func() int64
}

// NewSeedSession creates an empty session that draws fresh seeds with FreshSeed
func NewSeedSession() *SeedSession {
	return &SeedSession{draw: FreshSeed}
}

// Seed returns the session's seed, drawing one on first use
func (s *SeedSession) Seed() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.seed == nil {
		seed := s.draw()
		s.seed = &seed
	}
	return *s.seed
}

// Set pins the session to the given seed
func (s *SeedSession) Set(seed int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seed = &seed
}

// Current returns the seed in use, if one has been drawn or set
func (s *SeedSession) Current() (int64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.seed == nil {
		return 0, false
	}
	return *s.seed, true
}

// Reset clears the seed so the next generation draws a new one
func (s *SeedSession) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seed = nil
}
