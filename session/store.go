package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/itc-kingsavage/savagebots/syncmap"
)

// Store holds the sessions for one bot.
type Store struct {
	m *syncmap.Map[string, *entry]
	// idle is how long a session may go without activity before a sweep
	// evicts it.
	idle time.Duration
	// sweep is how often Run looks for idle sessions.
	sweep time.Duration
}

type entry struct {
	mu sync.Mutex
	s  *Session
}

// New creates a session store. Sessions idle longer than idle are
// evicted by sweeps every sweepEvery.
func New(idle, sweepEvery time.Duration) *Store {
	return &Store{
		m:     syncmap.New[string, *entry](),
		idle:  idle,
		sweep: sweepEvery,
	}
}

func (s *Store) get(id string) *entry {
	e, ok := s.m.Load(id)
	if ok {
		return e
	}
	now := time.Now()
	e, _ = s.m.LoadOrStore(id, &entry{
		s: &Session{
			ID:           id,
			Token:        uuid.NewString(),
			Created:      now,
			LastActivity: now,
		},
	})
	return e
}

// Mutate applies mod to the user's session, creating it first if needed,
// and returns a snapshot of the result. Mutations to the same session
// serialize, and a mod that returns an error or panics leaves the
// session as it was.
func (s *Store) Mutate(id, cmd string, mod func(*Session) error) (Session, error) {
	e := s.get(id)
	e.mu.Lock()
	defer e.mu.Unlock()
	c := e.s.clone()
	c.LastActivity = time.Now()
	if cmd != "" {
		c.pushHistory(cmd)
	}
	if mod != nil {
		if err := mod(c); err != nil {
			return *e.s.clone(), err
		}
	}
	e.s = c
	return *c.clone(), nil
}

// View calls f with the user's session if one exists and reports whether
// it did. f must not retain or modify the session.
func (s *Store) View(id string, f func(*Session)) bool {
	e, ok := s.m.Load(id)
	if !ok {
		return false
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	f(e.s)
	return true
}

// Len reports the number of sessions in the store.
func (s *Store) Len() int {
	return s.m.Len()
}

// Active reports the number of sessions with activity within the idle
// window as of now.
func (s *Store) Active(now time.Time) int {
	n := 0
	for _, e := range s.m.All() {
		e.mu.Lock()
		if now.Sub(e.s.LastActivity) < s.idle {
			n++
		}
		e.mu.Unlock()
	}
	return n
}

// Sweep evicts every session idle as of now and reports how many it
// evicted.
func (s *Store) Sweep(now time.Time) int {
	n := 0
	for id, e := range s.m.All() {
		e.mu.Lock()
		idle := now.Sub(e.s.LastActivity) >= s.idle
		e.mu.Unlock()
		if idle {
			s.m.Delete(id)
			n++
		}
	}
	return n
}

// Run sweeps the store periodically until the context is canceled.
// Evicted counts are reported through notify if it is not nil.
func (s *Store) Run(ctx context.Context, notify func(n int)) error {
	tick := time.NewTicker(s.sweep)
	defer tick.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-tick.C:
			n := s.Sweep(now)
			if n > 0 && notify != nil {
				notify(n)
			}
		}
	}
}
