package session

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/FACorreiaa/population-dashboard/internal/app/api"
)

func newRemote(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/auth/current/" {
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]any{"id": 1, "username": "alice", "role": "admin"})
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTestRegistry(t *testing.T, ttl time.Duration) *Registry {
	srv := newRemote(t)
	r := NewRegistry(func() (*api.Client, error) {
		return api.NewClient(api.Options{BaseURL: srv.URL + "/api"}, zap.NewNop())
	}, ttl, time.Second, zap.NewNop())
	t.Cleanup(r.Close)
	return r
}

func TestRegistryAcquireCreatesAndReuses(t *testing.T) {
	r := newTestRegistry(t, time.Hour)

	first, created, err := r.Acquire("sid-1")
	require.NoError(t, err)
	assert.True(t, created)

	again, created, err := r.Acquire("sid-1")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Same(t, first.Store, again.Store)
	assert.Equal(t, 1, r.Len())

	other, _, err := r.Acquire("sid-2")
	require.NoError(t, err)
	assert.NotSame(t, first.Store, other.Store)
	assert.Equal(t, 2, r.Len())
}

func TestRegistryInitializesInBackground(t *testing.T) {
	r := newTestRegistry(t, time.Hour)
	entry, _, err := r.Acquire("sid")
	require.NoError(t, err)

	select {
	case <-entry.Store.Ready():
	case <-time.After(2 * time.Second):
		t.Fatal("store never became ready")
	}
	snap := entry.Store.Snapshot()
	require.NotNil(t, snap.Identity)
	assert.Equal(t, "alice", snap.Identity.Username)
}

func TestRegistryDropClosesStore(t *testing.T) {
	r := newTestRegistry(t, time.Hour)
	entry, _, err := r.Acquire("sid")
	require.NoError(t, err)
	updates, _ := entry.Store.Subscribe()
	<-updates

	r.Drop("sid")
	assert.Equal(t, 0, r.Len())
	assert.Eventually(t, func() bool {
		for {
			select {
			case _, open := <-updates:
				if !open {
					return true
				}
			default:
				return false
			}
		}
	}, time.Second, 5*time.Millisecond)

	fresh, created, err := r.Acquire("sid")
	require.NoError(t, err)
	assert.True(t, created)
	assert.NotSame(t, entry.Store, fresh.Store)
}

func TestRegistryExpiredEntryIsReplaced(t *testing.T) {
	r := newTestRegistry(t, 20*time.Millisecond)
	entry, _, err := r.Acquire("sid")
	require.NoError(t, err)

	time.Sleep(40 * time.Millisecond)
	fresh, created, err := r.Acquire("sid")
	require.NoError(t, err)
	assert.True(t, created)
	assert.NotSame(t, entry.Store, fresh.Store)
}

func TestRegistryCloseReleasesAll(t *testing.T) {
	r := newTestRegistry(t, time.Hour)
	for _, id := range []string{"a", "b", "c"} {
		_, _, err := r.Acquire(id)
		require.NoError(t, err)
	}
	r.Close()
	assert.Equal(t, 0, r.Len())
}
