// internal/service/catalog/catalog_test.go
package catalog_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"hopegivers-web/internal/apiclient"
	"hopegivers-web/internal/domain/charity"
	"hopegivers-web/internal/service/catalog"
)

func newService(t *testing.T, backend http.Handler) (*catalog.Service, *int64) {
	t.Helper()

	var hits int64
	counting := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&hits, 1)
		backend.ServeHTTP(w, r)
	})
	srv := httptest.NewServer(counting)
	t.Cleanup(srv.Close)

	mr := miniredis.RunT(t)
	cache := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { cache.Close() })

	api := apiclient.New(srv.URL, 5*time.Second, zap.NewNop())
	return catalog.NewService(api, cache, time.Minute, zap.NewNop()), &hits
}

func envelope(w http.ResponseWriter, data interface{}) {
	json.NewEncoder(w).Encode(map[string]interface{}{
		"statusCode": 200,
		"message":    "ok",
		"data":       data,
	})
}

func TestCharityListCached(t *testing.T) {
	svc, hits := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		envelope(w, []charity.Charity{{ID: 1, Name: "Food for All", Status: charity.StatusApproved}})
	}))
	ctx := context.Background()
	filter := charity.ListFilter{Query: "food", Page: 1, PageSize: 20}

	first, err := svc.Charities(ctx, filter)
	require.NoError(t, err)
	require.Len(t, first, 1)

	second, err := svc.Charities(ctx, filter)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	assert.Equal(t, int64(1), atomic.LoadInt64(hits), "second lookup should be served from cache")
}

func TestDifferentFiltersMissCache(t *testing.T) {
	svc, hits := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		envelope(w, []charity.Charity{})
	}))
	ctx := context.Background()

	_, err := svc.Charities(ctx, charity.ListFilter{Query: "food"})
	require.NoError(t, err)
	_, err = svc.Charities(ctx, charity.ListFilter{Query: "water"})
	require.NoError(t, err)

	assert.Equal(t, int64(2), atomic.LoadInt64(hits))
}

func TestSingleCharityCached(t *testing.T) {
	svc, hits := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		envelope(w, charity.Charity{ID: 42, Name: "Hope Shelter"})
	}))
	ctx := context.Background()

	ch, err := svc.Charity(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, "Hope Shelter", ch.Name)

	_, err = svc.Charity(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, int64(1), atomic.LoadInt64(hits))
}

func TestBackendErrorNotCached(t *testing.T) {
	svc, _ := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"statusCode": 500,
			"message":    "boom",
		})
	}))

	_, err := svc.Charity(context.Background(), 7)
	require.Error(t, err)
}
