package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/pageza/recipe-rover/backend/internal/catalog"
)

// Store is an in-memory registry of live sessions keyed by uuid. Nothing is
// persisted; sessions vanish on restart or after the idle TTL.
type Store struct {
	catalog  *catalog.Catalog
	ttl      time.Duration
	debounce time.Duration
	now      func() time.Time
	log      zerolog.Logger

	mu       sync.RWMutex
	sessions map[string]*Session
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithTTL sets how long a session may stay idle before it is swept.
func WithTTL(d time.Duration) StoreOption {
	return func(s *Store) {
		s.ttl = d
	}
}

// WithSearchDebounce sets the debounce window for new sessions.
func WithSearchDebounce(d time.Duration) StoreOption {
	return func(s *Store) {
		s.debounce = d
	}
}

// WithStoreClock overrides time.Now.
func WithStoreClock(now func() time.Time) StoreOption {
	return func(s *Store) {
		s.now = now
	}
}

// WithStoreLogger sets the logger shared by the store and its sessions.
func WithStoreLogger(l zerolog.Logger) StoreOption {
	return func(s *Store) {
		s.log = l
	}
}

// NewStore creates an empty store over cat.
func NewStore(cat *catalog.Catalog, opts ...StoreOption) *Store {
	s := &Store{
		catalog:  cat,
		ttl:      30 * time.Minute,
		debounce: DefaultDebounce,
		now:      time.Now,
		log:      zerolog.Nop(),
		sessions: make(map[string]*Session),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create registers a new session with a fresh filter state.
func (s *Store) Create() *Session {
	sess := New(uuid.NewString(), s.catalog,
		WithDebounce(s.debounce),
		WithClock(s.now),
		WithLogger(s.log),
	)

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	s.log.Debug().Str("session", sess.ID).Msg("session created")
	return sess
}

// Get returns the session with id and records activity on it.
func (s *Store) Get(id string) (*Session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	sess.Touch()
	return sess, nil
}

// Delete closes and removes the session with id.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	sess, ok := s.sessions[id]
	delete(s.sessions, id)
	s.mu.Unlock()
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	sess.Close()
	s.log.Debug().Str("session", id).Msg("session deleted")
	return nil
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Sweep removes every session idle for longer than the TTL and returns how
// many were evicted.
func (s *Store) Sweep() int {
	cutoff := s.now().Add(-s.ttl)

	s.mu.Lock()
	var expired []*Session
	for id, sess := range s.sessions {
		if sess.LastSeen().Before(cutoff) {
			expired = append(expired, sess)
			delete(s.sessions, id)
		}
	}
	s.mu.Unlock()

	for _, sess := range expired {
		sess.Close()
	}
	return len(expired)
}

// Sweeper periodically evicts idle sessions from a Store.
type Sweeper struct {
	store    *Store
	interval time.Duration
	log      zerolog.Logger
}

// NewSweeper creates a sweeper that runs every interval.
func NewSweeper(store *Store, interval time.Duration, log zerolog.Logger) *Sweeper {
	if interval <= 0 {
		interval = time.Minute
	}
	return &Sweeper{store: store, interval: interval, log: log}
}

// Run blocks until ctx is cancelled. Intended to be called as a goroutine.
func (w *Sweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.log.Info().Dur("interval", w.interval).Msg("session sweeper started")
	for {
		select {
		case <-ctx.Done():
			w.log.Info().Msg("session sweeper stopped")
			return
		case <-ticker.C:
			if n := w.store.Sweep(); n > 0 {
				w.log.Info().Int("evicted", n).Int("live", w.store.Len()).Msg("idle sessions evicted")
			}
		}
	}
}
