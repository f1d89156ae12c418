package mapview

import (
	"context"
	"sync"
	"testing"
	"time"

	"foodmap/internal/domain/entity"
	"foodmap/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// blockingFetcher lets a test hold each fetch open and release answers in a
// chosen order.
type blockingFetcher struct {
	mu      sync.Mutex
	pending []*pendingFetch
}

type pendingFetch struct {
	query   entity.ViewportQuery
	ctx     context.Context
	release chan fetchAnswer
}

type fetchAnswer struct {
	data *ViewportData
	err  error
}

// FetchViewport blocks until the test releases an answer, deliberately
// ignoring cancellation so late completions of superseded queries still
// reach the coordinator.
func (f *blockingFetcher) FetchViewport(ctx context.Context, query entity.ViewportQuery) (*ViewportData, error) {
	p := &pendingFetch{
		query:   query,
		ctx:     ctx,
		release: make(chan fetchAnswer, 1),
	}

	f.mu.Lock()
	f.pending = append(f.pending, p)
	f.mu.Unlock()

	answer := <-p.release
	return answer.data, answer.err
}

func (f *blockingFetcher) waitForPending(t *testing.T, n int) []*pendingFetch {
	t.Helper()
	require.Eventually(t, func() bool {
		f.mu.Lock()
		defer f.mu.Unlock()

		return len(f.pending) >= n
	}, time.Second, time.Millisecond)

	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]*pendingFetch(nil), f.pending...)
}

// byWest picks the pending fetch whose bounds start at the given longitude;
// fetch goroutines register in no particular order.
func byWest(t *testing.T, pending []*pendingFetch, west float64) *pendingFetch {
	t.Helper()
	for _, p := range pending {
		if p.query.Bounds.West == west {
			return p
		}
	}
	t.Fatalf("no pending fetch with west %v", west)

	return nil
}

func testBounds(west float64) entity.Bounds {
	return entity.Bounds{North: 42.4, South: 42.3, East: west + 0.1, West: west}
}

func TestCoordinator_PublishesResult(t *testing.T) {
	fetcher := &blockingFetcher{}
	coord := NewCoordinator(fetcher, nil, 0)

	coord.ViewportChanged(testBounds(-71.10), 16, "")

	pending := fetcher.waitForPending(t, 1)
	pending[0].release <- fetchAnswer{data: &ViewportData{
		Tier:   entity.TierPoint,
		Points: []entity.Facility{{ID: 1, Name: "Corner Market"}},
	}}

	require.Eventually(t, func() bool {
		return coord.Snapshot().Data != nil
	}, time.Second, time.Millisecond)

	state := coord.Snapshot()
	assert.Equal(t, entity.TierPoint, state.Data.Tier)
	assert.Empty(t, state.Status)
	assert.Equal(t, 16.0, state.Query.Zoom)
}

// Q1 issued, then Q2; Q2 answers first, then Q1's stale answer arrives. The
// overlay must keep Q2's data.
func TestCoordinator_StaleCompletionNeverOverwrites(t *testing.T) {
	fetcher := &blockingFetcher{}
	coord := NewCoordinator(fetcher, nil, 0)

	coord.ViewportChanged(testBounds(-71.10), 16, "")
	coord.ViewportChanged(testBounds(-71.20), 16, "")

	pending := fetcher.waitForPending(t, 2)
	first := byWest(t, pending, -71.10)
	second := byWest(t, pending, -71.20)

	// The first query's context is cancelled the moment the second is issued.
	require.Error(t, first.ctx.Err())
	require.NoError(t, second.ctx.Err())

	second.release <- fetchAnswer{data: &ViewportData{
		Tier:   entity.TierPoint,
		Points: []entity.Facility{{ID: 2, Name: "Fresh Grocer"}},
	}}

	require.Eventually(t, func() bool {
		return coord.Snapshot().Data != nil
	}, time.Second, time.Millisecond)

	// The first query's answer arrives after the second already published.
	first.release <- fetchAnswer{data: &ViewportData{
		Tier:   entity.TierPoint,
		Points: []entity.Facility{{ID: 1, Name: "Stale Market"}},
	}}

	// Give the stale completion a chance to (incorrectly) land.
	time.Sleep(20 * time.Millisecond)

	state := coord.Snapshot()
	require.NotNil(t, state.Data)
	require.Len(t, state.Data.Points, 1)
	assert.Equal(t, "Fresh Grocer", state.Data.Points[0].Name)
}

func TestCoordinator_IdenticalQuerySuppressed(t *testing.T) {
	fetcher := &blockingFetcher{}
	coord := NewCoordinator(fetcher, nil, 0)

	coord.ViewportChanged(testBounds(-71.10), 14, entity.PlaceTypeGroceryStore)
	pending := fetcher.waitForPending(t, 1)
	pending[0].release <- fetchAnswer{data: &ViewportData{Tier: entity.TierCluster}}

	require.Eventually(t, func() bool {
		return coord.Snapshot().Data != nil
	}, time.Second, time.Millisecond)

	// Same bounds, zoom and filter again: no second fetch.
	coord.ViewportChanged(testBounds(-71.10), 14, entity.PlaceTypeGroceryStore)
	time.Sleep(20 * time.Millisecond)

	fetcher.mu.Lock()
	defer fetcher.mu.Unlock()
	assert.Len(t, fetcher.pending, 1)
}

func TestCoordinator_FetchErrorKeepsLastGoodData(t *testing.T) {
	fetcher := &blockingFetcher{}
	coord := NewCoordinator(fetcher, nil, 0)

	coord.ViewportChanged(testBounds(-71.10), 16, "")
	pending := fetcher.waitForPending(t, 1)
	pending[0].release <- fetchAnswer{data: &ViewportData{
		Tier:   entity.TierPoint,
		Points: []entity.Facility{{ID: 1, Name: "Corner Market"}},
	}}

	require.Eventually(t, func() bool {
		return coord.Snapshot().Data != nil
	}, time.Second, time.Millisecond)

	coord.ViewportChanged(testBounds(-71.20), 16, "")
	pending = fetcher.waitForPending(t, 2)
	byWest(t, pending, -71.20).release <- fetchAnswer{err: errors.New("store unavailable")}

	require.Eventually(t, func() bool {
		return coord.Snapshot().Status != ""
	}, time.Second, time.Millisecond)

	state := coord.Snapshot()
	require.NotNil(t, state.Data)
	assert.Equal(t, "Corner Market", state.Data.Points[0].Name)
}

func TestCoordinator_DebounceCollapsesMovements(t *testing.T) {
	fetcher := &blockingFetcher{}
	coord := NewCoordinator(fetcher, nil, 30*time.Millisecond)

	// A burst of movements; only the last survives the debounce window.
	coord.ViewportChanged(testBounds(-71.10), 16, "")
	coord.ViewportChanged(testBounds(-71.15), 16, "")
	coord.ViewportChanged(testBounds(-71.20), 16, "")

	pending := fetcher.waitForPending(t, 1)
	assert.Equal(t, -71.20, pending[0].query.Bounds.West)

	time.Sleep(50 * time.Millisecond)
	fetcher.mu.Lock()
	assert.Len(t, fetcher.pending, 1)
	fetcher.mu.Unlock()

	pending[0].release <- fetchAnswer{data: &ViewportData{Tier: entity.TierPoint}}
}
