package mapview

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"foodmap/internal/domain/entity"
)

// ViewportData is the tier-shaped payload one coordinator fetch produces.
// Exactly one of the three slices is populated, matching the query's tier.
type ViewportData struct {
	Tier     entity.Tier
	Areas    []*entity.Area
	Clusters []entity.ClusterPoint
	Points   []entity.Facility
}

// Fetcher loads tier-appropriate data for a stabilized viewport query.
// Implementations must honor context cancellation promptly; the coordinator
// cancels superseded fetches.
type Fetcher interface {
	FetchViewport(ctx context.Context, query entity.ViewportQuery) (*ViewportData, error)
}

// State is the coordinator's observable output: the last good data plus a
// transient status message when the most recent fetch failed.
type State struct {
	Query  *entity.ViewportQuery // The query the data answers; nil before the first success.
	Data   *ViewportData
	Status string // Empty unless the latest fetch failed.
}

// Coordinator turns a stream of viewport movements into at most one
// in-flight fetch. Movements are debounced; a stabilized query identical to
// the last issued one is suppressed; issuing a new query cancels the
// previous fetch, and only the latest issued query may publish its result,
// so a slow stale response can never overwrite a newer one.
type Coordinator struct {
	fetcher  Fetcher
	logger   *slog.Logger
	debounce time.Duration

	mu         sync.Mutex
	timer      *time.Timer
	lastIssued *entity.ViewportQuery
	cancel     context.CancelFunc
	seq        uint64
	state      State
}

// NewCoordinator creates a viewport query coordinator. A zero debounce
// issues queries synchronously with ViewportChanged, which tests rely on.
func NewCoordinator(fetcher Fetcher, logger *slog.Logger, debounce time.Duration) *Coordinator {
	return &Coordinator{
		fetcher:  fetcher,
		logger:   logger,
		debounce: debounce,
	}
}

// ViewportChanged records a viewport movement. The query is issued once the
// viewport has been stable for the debounce window; movements inside the
// window restart it.
func (c *Coordinator) ViewportChanged(bounds entity.Bounds, zoom float64, filter entity.PlaceType) {
	query := entity.ViewportQuery{
		Bounds:          bounds,
		Zoom:            zoom,
		Tier:            TierFor(zoom),
		PlaceTypeFilter: filter,
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}

	if c.debounce <= 0 {
		c.issueLocked(query)

		return
	}

	c.timer = time.AfterFunc(c.debounce, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.issueLocked(query)
	})
}

// Snapshot returns the current observable state.
func (c *Coordinator) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state
}

// issueLocked starts a fetch for a stabilized query. Caller holds c.mu.
func (c *Coordinator) issueLocked(query entity.ViewportQuery) {
	// A stabilized viewport identical to the last issued query changes
	// nothing; skip the round trip.
	if c.lastIssued != nil && *c.lastIssued == query {
		return
	}

	if c.cancel != nil {
		c.cancel()
	}

	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	c.lastIssued = &query
	c.seq++
	seq := c.seq

	go c.fetch(ctx, query, seq)
}

// fetch runs one query and publishes its result only if it is still the
// latest issued one.
func (c *Coordinator) fetch(ctx context.Context, query entity.ViewportQuery, seq uint64) {
	data, err := c.fetcher.FetchViewport(ctx, query)

	c.mu.Lock()
	defer c.mu.Unlock()

	// A newer query was issued while this one ran; its answer is stale
	// regardless of arrival order.
	if seq != c.seq {
		return
	}

	if err != nil {
		// Cancellation is internal plumbing, never a user-visible condition.
		if ctx.Err() != nil {
			return
		}

		if c.logger != nil {
			c.logger.Warn("viewport fetch failed", slog.Any("error", err))
		}
		c.state.Status = "map data is temporarily unavailable"

		return
	}

	c.state = State{
		Query: &query,
		Data:  data,
	}
}
