// Package session holds live game sessions in memory. Nothing survives a
// process restart; durable storage is deliberately out of scope.
package session

import (
	"fmt"
	"sync"
	"time"
)

var ErrNotFound = fmt.Errorf("session not found")

// Session is one player's game. State carries the gob-encoded board.
type Session struct {
	ID        int64
	State     []byte
	StartedAt time.Time
	EndedAt   *time.Time
}

// Registry is a mutex-guarded in-memory session table. Session ids are
// assigned from a monotonically increasing counter.
type Registry struct {
	mu     sync.Mutex
	nextID int64
	items  map[int64]*Session
}

func NewRegistry() *Registry {
	return &Registry{
		nextID: 1,
		items:  make(map[int64]*Session),
	}
}

// Create stores a new session around the given board snapshot and
// returns a copy of it.
func (r *Registry) Create(state []byte) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := &Session{
		ID:        r.nextID,
		State:     state,
		StartedAt: time.Now().UTC(),
	}
	r.nextID++
	r.items[s.ID] = s
	return s.clone()
}

// Get retrieves a copy of a session. Returns [ErrNotFound] for unknown
// ids.
func (r *Registry) Get(id int64) (*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	return s.clone(), nil
}

// Update replaces a session's board snapshot and end timestamp.
func (r *Registry) Update(id int64, state []byte, endedAt *time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.items[id]
	if !ok {
		return ErrNotFound
	}
	s.State = state
	s.EndedAt = endedAt
	return nil
}

// Delete removes a session without checking whether it existed.
func (r *Registry) Delete(id int64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, id)
}

// Count reports the number of live sessions.
func (r *Registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.items)
}

func (s *Session) clone() *Session {
	c := *s
	c.State = make([]byte, len(s.State))
	copy(c.State, s.State)
	if s.EndedAt != nil {
		e := *s.EndedAt
		c.EndedAt = &e
	}
	return &c
}
