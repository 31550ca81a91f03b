package session

import (
	"context"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/FACorreiaa/population-dashboard/internal/app/api"
	"github.com/FACorreiaa/population-dashboard/internal/app/observability/metrics"
)

// ClientFactory builds the remote client for a new browser session.
type ClientFactory func() (*api.Client, error)

// Entry is everything held for one browser session.
type Entry struct {
	ID     string
	Store  *Store
	Client *api.Client
}

// Registry keeps one Store per browser session id. Entries expire after the
// configured idle TTL; expiry and Close both close the store.
type Registry struct {
	factory     ClientFactory
	initTimeout time.Duration
	logger      *zap.Logger

	mu      sync.Mutex
	entries *cache.Cache

	ctx    context.Context
	cancel context.CancelFunc
}

func NewRegistry(factory ClientFactory, ttl, initTimeout time.Duration, logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	cleanup := ttl / 2
	if cleanup > time.Minute || cleanup <= 0 {
		cleanup = time.Minute
	}
	ctx, cancel := context.WithCancel(context.Background())
	r := &Registry{
		factory:     factory,
		initTimeout: initTimeout,
		logger:      logger,
		entries:     cache.New(ttl, cleanup),
		ctx:         ctx,
		cancel:      cancel,
	}
	r.entries.OnEvicted(func(id string, v interface{}) {
		entry, ok := v.(*Entry)
		if !ok {
			return
		}
		entry.Store.Close()
		metrics.Get().ActiveSessions.Add(context.Background(), -1)
		r.logger.Debug("Session store released", zap.String("session_id", id))
	})
	return r
}

// Acquire returns the entry for id, creating it when absent. A new store
// starts resolving the current identity in the background, so callers see
// it Loading until that finishes. The bool reports whether it was created.
func (r *Registry) Acquire(id string) (*Entry, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if v, ok := r.entries.Get(id); ok {
		entry := v.(*Entry)
		r.entries.SetDefault(id, entry)
		return entry, false, nil
	}

	client, err := r.factory()
	if err != nil {
		return nil, false, err
	}
	entry := &Entry{
		ID:     id,
		Store:  New(client, r.logger.With(zap.String("session_id", id))),
		Client: client,
	}

	// Releases an expired entry the janitor has not collected yet.
	r.entries.Delete(id)
	r.entries.SetDefault(id, entry)
	metrics.Get().ActiveSessions.Add(r.ctx, 1)

	go func() {
		ctx, cancel := context.WithTimeout(r.ctx, r.initTimeout)
		defer cancel()
		entry.Store.Initialize(ctx)
	}()

	return entry, true, nil
}

func (r *Registry) Drop(id string) {
	r.entries.Delete(id)
}

func (r *Registry) Len() int {
	return r.entries.ItemCount()
}

// Close releases every store. It is called once on process teardown.
func (r *Registry) Close() {
	r.cancel()
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries.DeleteExpired()
	for id := range r.entries.Items() {
		r.entries.Delete(id)
	}
}
