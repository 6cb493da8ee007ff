package profile

import (
	"sync"

	"github.com/mkarlsen/resume-profiler/internal/types"
)

// Session owns a canonical profile across a sequence of parse attempts.
// Each attempt registers with Begin and applies its result with Apply,
// carrying the generation token Begin issued. When a newer attempt has
// begun in the meantime, the older result is discarded rather than
// merged, so the latest upload always wins regardless of completion
// order.
type Session struct {
	mu         sync.Mutex
	current    *types.Profile
	generation uint64
}

// NewSession starts a session around an empty canonical profile
func NewSession() *Session {
	return &Session{current: New()}
}

// Begin registers a new parse attempt and returns its generation token.
// Any attempt holding an older token becomes stale immediately.
func (s *Session) Begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	return s.generation
}

// Apply merges a parse result into the canonical profile, unless a newer
// attempt has begun since gen was issued. Returns whether the result was
// applied.
func (s *Session) Apply(gen uint64, partial *types.PartialProfile) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		return false
	}
	s.current = Merge(s.current, partial)
	return true
}

// Profile returns the current canonical profile
func (s *Session) Profile() *types.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Reset replaces the canonical profile with a fresh empty one and
// invalidates any in-flight attempts.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = New()
	s.generation++
}
