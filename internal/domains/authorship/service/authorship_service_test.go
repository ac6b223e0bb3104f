package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	authorsCalls int
	booksCalls   int
	authors      []int64
	books        []int64
	err          error
}

func (r *fakeRepo) AuthorsOfBook(_ context.Context, _ int64) ([]int64, error) {
	r.authorsCalls++
	return r.authors, r.err
}

func (r *fakeRepo) BooksOfUser(_ context.Context, _ int64) ([]int64, error) {
	r.booksCalls++
	return r.books, r.err
}

// memoryCache mirrors the Redis adapter's contract closely enough for these
// tests: values round-trip by reference and Get reports found/not-found.
type memoryCache struct {
	data  map[string][]int64
	fails bool
}

func newMemoryCache() *memoryCache {
	return &memoryCache{data: make(map[string][]int64)}
}

func (m *memoryCache) Get(_ context.Context, key string, dest interface{}) (bool, error) {
	if m.fails {
		return false, errors.New("connection refused")
	}
	v, ok := m.data[key]
	if !ok {
		return false, nil
	}
	*dest.(*[]int64) = v
	return true, nil
}

func (m *memoryCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	if m.fails {
		return errors.New("connection refused")
	}
	m.data[key] = value.([]int64)
	return nil
}

func (m *memoryCache) Delete(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(m.data, k)
	}
	return nil
}

func (m *memoryCache) Increment(_ context.Context, _ string) (int64, error) { return 0, nil }

func (m *memoryCache) Expire(_ context.Context, _ string, _ time.Duration) error { return nil }

func (m *memoryCache) Ping(_ context.Context) error { return nil }

func TestAuthorsOfBook_CacheMissThenHit(t *testing.T) {
	repo := &fakeRepo{authors: []int64{1, 3}}
	store := newMemoryCache()
	svc := NewAuthorshipService(repo, store)

	ids, err := svc.AuthorsOfBook(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 3}, ids)
	assert.Equal(t, 1, repo.authorsCalls)

	// Second call services from cache without touching the repository.
	ids, err = svc.AuthorsOfBook(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 3}, ids)
	assert.Equal(t, 1, repo.authorsCalls)
}

func TestBooksOfUser_CacheKeyMatchesInvalidation(t *testing.T) {
	repo := &fakeRepo{books: []int64{2, 5}}
	store := newMemoryCache()
	svc := NewAuthorshipService(repo, store)

	_, err := svc.BooksOfUser(context.Background(), 1)
	require.NoError(t, err)

	// The user service invalidates this exact key on write, so the two sides
	// must agree on its shape.
	_, ok := store.data["books:user:1"]
	assert.True(t, ok)
}

func TestCachedLookup_StoreFailureFallsThrough(t *testing.T) {
	repo := &fakeRepo{authors: []int64{1}}
	store := newMemoryCache()
	store.fails = true
	svc := NewAuthorshipService(repo, store)

	ids, err := svc.AuthorsOfBook(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, ids)
	assert.Equal(t, 1, repo.authorsCalls)
}

func TestCachedLookup_RepoErrorPropagates(t *testing.T) {
	repo := &fakeRepo{err: errors.New("query association: timeout")}
	svc := NewAuthorshipService(repo, newMemoryCache())

	ids, err := svc.AuthorsOfBook(context.Background(), 2)
	assert.Nil(t, ids)
	assert.Error(t, err)
}
