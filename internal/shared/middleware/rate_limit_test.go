package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"userbook-backend/internal/config"
)

// counterStore is an in-memory stand-in for the Redis counter.
type counterStore struct {
	mu      sync.Mutex
	counts  map[string]int64
	expires map[string]time.Duration
	down    bool
}

func newCounterStore() *counterStore {
	return &counterStore{counts: make(map[string]int64), expires: make(map[string]time.Duration)}
}

func (s *counterStore) Get(_ context.Context, _ string, _ interface{}) (bool, error) {
	return false, nil
}

func (s *counterStore) Set(_ context.Context, _ string, _ interface{}, _ time.Duration) error {
	return nil
}

func (s *counterStore) Delete(_ context.Context, _ ...string) error { return nil }

func (s *counterStore) Increment(_ context.Context, key string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.down {
		return 0, errors.New("connection refused")
	}
	s.counts[key]++
	return s.counts[key], nil
}

func (s *counterStore) Expire(_ context.Context, key string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expires[key] = ttl
	return nil
}

func (s *counterStore) Ping(_ context.Context) error { return nil }

func newRateLimitRouter(store *counterStore, cfg config.RateLimitConfig) *gin.Engine {
	router := gin.New()
	router.Use(RateLimit(store, cfg))
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	return router
}

func hit(router *gin.Engine) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRateLimit_AllowsUnderLimit(t *testing.T) {
	store := newCounterStore()
	router := newRateLimitRouter(store, config.RateLimitConfig{
		Enabled: true,
		Window:  time.Minute,
		Limit:   3,
	})

	for i := 0; i < 3; i++ {
		w := hit(router)
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestRateLimit_RejectsOverLimit(t *testing.T) {
	store := newCounterStore()
	router := newRateLimitRouter(store, config.RateLimitConfig{
		Enabled: true,
		Window:  time.Minute,
		Limit:   2,
	})

	hit(router)
	hit(router)
	w := hit(router)

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.JSONEq(t, `{"error":"Too many requests, please try again later"}`, w.Body.String())
}

func TestRateLimit_FirstHitOwnsExpiry(t *testing.T) {
	store := newCounterStore()
	router := newRateLimitRouter(store, config.RateLimitConfig{
		Enabled: true,
		Window:  30 * time.Second,
		Limit:   10,
	})

	hit(router)
	hit(router)

	store.mu.Lock()
	defer store.mu.Unlock()
	assert.Len(t, store.expires, 1)
	for _, ttl := range store.expires {
		assert.Equal(t, 30*time.Second, ttl)
	}
}

func TestRateLimit_FailsOpenWhenStoreDown(t *testing.T) {
	store := newCounterStore()
	store.down = true
	router := newRateLimitRouter(store, config.RateLimitConfig{
		Enabled: true,
		Window:  time.Minute,
		Limit:   1,
	})

	for i := 0; i < 5; i++ {
		w := hit(router)
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestRateLimit_DisabledSkipsCounting(t *testing.T) {
	store := newCounterStore()
	router := newRateLimitRouter(store, config.RateLimitConfig{Enabled: false, Limit: 1})

	for i := 0; i < 5; i++ {
		w := hit(router)
		assert.Equal(t, http.StatusOK, w.Code)
	}

	store.mu.Lock()
	defer store.mu.Unlock()
	assert.Empty(t, store.counts)
}
