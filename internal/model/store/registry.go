package store

import (
	"sync"
)

// Registry keeps one Store per chat. Sessions live only in memory.
type Registry struct {
	mu       sync.Mutex
	sessions map[int64]*Store
}

func NewRegistry() *Registry {
	return &Registry{sessions: make(map[int64]*Store)}
}

func (r *Registry) Session(chatID int64) *Store {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[chatID]
	if !ok {
		s = New()
		r.sessions[chatID] = s
	}
	return s
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Sessions returns a snapshot of the registered sessions by chat ID.
func (r *Registry) Sessions() map[int64]*Store {
	r.mu.Lock()
	defer r.mu.Unlock()

	res := make(map[int64]*Store, len(r.sessions))
	for id, s := range r.sessions {
		res[id] = s
	}
	return res
}
