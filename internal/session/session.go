// Package session owns per-client filter state. Each Session pairs one
// filter.State with the shared read-only catalog, recomputes the filtered
// result on every mutation and pushes it to its subscribers.
package session

import (
	"errors"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/pageza/recipe-rover/backend/internal/catalog"
	"github.com/pageza/recipe-rover/backend/internal/filter"
	"github.com/pageza/recipe-rover/backend/internal/model"
)

// ErrNotFound is returned for unknown or expired session ids.
var ErrNotFound = errors.New("session not found")

// DefaultDebounce is the quiet window applied to QueueSearch.
const DefaultDebounce = 300 * time.Millisecond

// Snapshot is an immutable view of a session after a recompute.
type Snapshot struct {
	State   *filter.State
	Results []model.Recipe
}

// Listener receives a snapshot after every recompute. Listeners run on the
// goroutine that mutated the session and must not mutate it themselves.
type Listener func(Snapshot)

// Session is safe for concurrent use. Mutations are serialized so that
// listeners observe snapshots in mutation order.
type Session struct {
	ID string

	catalog   *catalog.Catalog
	debouncer *Debouncer
	log       zerolog.Logger
	now       func() time.Time

	// notifyMu serializes mutate+notify; mu guards the fields below.
	notifyMu  sync.Mutex
	mu        sync.Mutex
	state     *filter.State
	results   []model.Recipe
	listeners map[int]Listener
	nextID    int
	closed    bool

	lastSeen atomic.Int64
}

// Option configures a Session.
type Option func(*Session)

// WithDebounce sets the quiet window for QueueSearch.
func WithDebounce(d time.Duration) Option {
	return func(s *Session) {
		s.debouncer = NewDebouncer(d)
	}
}

// WithClock overrides time.Now for idle tracking.
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		s.now = now
	}
}

// WithLogger sets the session logger.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Session) {
		s.log = l
	}
}

// New creates a session over cat with the initial filter snapshot applied.
func New(id string, cat *catalog.Catalog, opts ...Option) *Session {
	s := &Session{
		ID:        id,
		catalog:   cat,
		debouncer: NewDebouncer(DefaultDebounce),
		log:       zerolog.Nop(),
		now:       time.Now,
		state:     cat.NewState(),
		listeners: make(map[int]Listener),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.results = filter.Apply(cat.Recipes(), s.state)
	s.Touch()
	return s
}

// Catalog returns the catalog the session filters.
func (s *Session) Catalog() *catalog.Catalog {
	return s.catalog
}

// Snapshot returns a copy of the current state and results.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Session) snapshotLocked() Snapshot {
	return Snapshot{State: s.state.Clone(), Results: slices.Clone(s.results)}
}

// Subscribe registers fn for future snapshots and returns a function that
// removes it.
func (s *Session) Subscribe(fn Listener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.listeners[id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.listeners, id)
			s.mu.Unlock()
		})
	}
}

// Update applies fn to the filter state, recomputes the results and
// notifies subscribers. An error from fn leaves the state as fn left it but
// still triggers the recompute.
func (s *Session) Update(fn func(*filter.State) error) (Snapshot, error) {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return Snapshot{}, ErrNotFound
	}
	err := fn(s.state)
	s.results = filter.Apply(s.catalog.Recipes(), s.state)
	snap := s.snapshotLocked()
	listeners := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	s.mu.Unlock()

	s.Touch()
	s.log.Debug().
		Str("session", s.ID).
		Int("results", len(snap.Results)).
		Bool("active", snap.State.Active()).
		Msg("filter recomputed")

	for _, l := range listeners {
		l(snap)
	}
	return snap, err
}

// SetSearch applies term immediately and drops any queued search.
func (s *Session) SetSearch(term string) (Snapshot, error) {
	s.debouncer.Cancel()
	return s.Update(func(st *filter.State) error {
		st.SetSearch(term)
		return nil
	})
}

// QueueSearch applies term once input has been quiet for the debounce
// window. A newer call supersedes a pending one.
func (s *Session) QueueSearch(term string) {
	s.Touch()
	s.debouncer.Trigger(func() {
		if _, err := s.Update(func(st *filter.State) error {
			st.SetSearch(term)
			return nil
		}); err != nil {
			s.log.Debug().Err(err).Str("session", s.ID).Msg("queued search dropped")
		}
	})
}

// CancelSearch drops a queued search. It reports whether one was pending.
func (s *Session) CancelSearch() bool {
	return s.debouncer.Cancel()
}

// SearchPending reports whether a queued search has not been applied yet.
func (s *Session) SearchPending() bool {
	return s.debouncer.Pending()
}

// FlushSearch applies a queued search now. It reports whether one ran.
func (s *Session) FlushSearch() bool {
	return s.debouncer.Flush()
}

// Reset restores the initial filter snapshot.
func (s *Session) Reset() (Snapshot, error) {
	s.debouncer.Cancel()
	return s.Update(func(st *filter.State) error {
		st.Reset()
		return nil
	})
}

// Close cancels pending work and detaches every listener.
func (s *Session) Close() {
	s.debouncer.Cancel()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	clear(s.listeners)
}

// Touch records activity for idle expiry.
func (s *Session) Touch() {
	s.lastSeen.Store(s.now().UnixNano())
}

// LastSeen returns the time of the last recorded activity.
func (s *Session) LastSeen() time.Time {
	return time.Unix(0, s.lastSeen.Load())
}
