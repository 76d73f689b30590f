package calendarview

import "sync"

// Session is one dashboard session's calendar state: its loader plus the
// range it is currently looking at. Lists live only for the session; nothing
// is cached across sessions or server restarts.
type Session struct {
	ID     string
	Loader *Loader

	mu      sync.Mutex
	current Range
}

func (s *Session) SetRange(r Range) {
	s.mu.Lock()
	s.current = r
	s.mu.Unlock()
}

func (s *Session) Range() Range {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Registry hands out per-session calendar state keyed by the session cookie.
type Registry struct {
	fetch Fetcher

	mu       sync.Mutex
	sessions map[string]*Session
}

func NewRegistry(fetch Fetcher) *Registry {
	return &Registry{
		fetch:    fetch,
		sessions: make(map[string]*Session),
	}
}

// Get returns the session for id, creating it on first sight.
func (r *Registry) Get(id string) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]
	if !ok {
		s = &Session{ID: id, Loader: NewLoader(r.fetch)}
		r.sessions[id] = s
	}
	return s
}
