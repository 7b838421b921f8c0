package session

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/recipe-rover/backend/internal/catalog"
	"github.com/pageza/recipe-rover/backend/internal/filter"
	"github.com/pageza/recipe-rover/backend/internal/model"
)

func newCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.New(catalog.SampleRecipes())
	require.NoError(t, err)
	return cat
}

func ids(recipes []model.Recipe) []uint {
	out := make([]uint, 0, len(recipes))
	for _, r := range recipes {
		out = append(out, r.ID)
	}
	return out
}

func TestNewSessionStartsUnfiltered(t *testing.T) {
	s := New("s1", newCatalog(t))
	snap := s.Snapshot()

	assert.Len(t, snap.Results, 10)
	assert.False(t, snap.State.Active())
}

func TestUpdateNotifiesSubscribers(t *testing.T) {
	s := New("s1", newCatalog(t))

	var got []Snapshot
	unsubscribe := s.Subscribe(func(snap Snapshot) { got = append(got, snap) })

	_, err := s.Update(func(st *filter.State) error {
		st.AddExcludedIngredient("chicken")
		return nil
	})
	require.NoError(t, err)
	_, err = s.SetSearch("quinoa")
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.Len(t, got[0].Results, 9)
	assert.Equal(t, []uint{2}, ids(got[1].Results))

	unsubscribe()
	unsubscribe()
	_, err = s.Reset()
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Len(t, s.Snapshot().Results, 10)
}

func TestUpdatePropagatesSetterError(t *testing.T) {
	s := New("s1", newCatalog(t))
	snap, err := s.Update(func(st *filter.State) error {
		return st.SetNutrientMin(model.Macro("fiber"), 3)
	})
	assert.True(t, errors.Is(err, filter.ErrUnknownMacro))
	assert.Len(t, snap.Results, 10)
}

func TestSnapshotIsIsolated(t *testing.T) {
	s := New("s1", newCatalog(t))
	snap := s.Snapshot()
	snap.State.SetSearch("quinoa")
	snap.Results[0].Name = "changed"

	again := s.Snapshot()
	assert.Empty(t, again.State.Search)
	assert.Equal(t, "Avocado Toast with Poached Egg", again.Results[0].Name)
}

func TestQueueSearchDebounces(t *testing.T) {
	s := New("s1", newCatalog(t), WithDebounce(20*time.Millisecond))

	results := make(chan Snapshot, 4)
	s.Subscribe(func(snap Snapshot) { results <- snap })

	s.QueueSearch("q")
	s.QueueSearch("qui")
	s.QueueSearch("quinoa")

	select {
	case snap := <-results:
		assert.Equal(t, "quinoa", snap.State.Search)
		assert.Equal(t, []uint{2}, ids(snap.Results))
	case <-time.After(time.Second):
		t.Fatal("debounced search never fired")
	}

	select {
	case snap := <-results:
		t.Fatalf("unexpected extra recompute for %q", snap.State.Search)
	case <-time.After(60 * time.Millisecond):
	}
}

func TestQueueSearchFlushAndCancel(t *testing.T) {
	s := New("s1", newCatalog(t), WithDebounce(time.Hour))

	assert.False(t, s.SearchPending())
	s.QueueSearch("salmon")
	assert.True(t, s.SearchPending())
	assert.True(t, s.FlushSearch())
	assert.False(t, s.SearchPending())
	assert.Equal(t, "salmon", s.Snapshot().State.Search)

	s.QueueSearch("burger")
	assert.True(t, s.CancelSearch())
	assert.False(t, s.SearchPending())
	assert.False(t, s.FlushSearch())
	assert.Equal(t, "salmon", s.Snapshot().State.Search)
}

func TestSetSearchSupersedesQueued(t *testing.T) {
	s := New("s1", newCatalog(t), WithDebounce(time.Hour))
	s.QueueSearch("burger")

	_, err := s.SetSearch("salad")
	require.NoError(t, err)
	assert.False(t, s.FlushSearch())
	assert.Equal(t, "salad", s.Snapshot().State.Search)
}

func TestClosedSessionRejectsUpdates(t *testing.T) {
	s := New("s1", newCatalog(t))
	s.Close()

	_, err := s.SetSearch("x")
	assert.True(t, errors.Is(err, ErrNotFound))
}
