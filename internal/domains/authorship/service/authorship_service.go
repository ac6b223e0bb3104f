package service

import (
	"context"
	"fmt"
	"time"

	"userbook-backend/internal/domains/authorship"
	"userbook-backend/pkg/cache"
	"userbook-backend/pkg/logger"
)

// Association rows only change through seeds and cascades, so a short TTL is
// enough to bound staleness after a user deletion.
const associationCacheTTL = 5 * time.Minute

type authorshipService struct {
	repo  authorship.Repository
	cache cache.Cache
}

func NewAuthorshipService(repo authorship.Repository, c cache.Cache) authorship.Service {
	return &authorshipService{repo: repo, cache: c}
}

func (s *authorshipService) AuthorsOfBook(ctx context.Context, bookID int64) ([]int64, error) {
	key := fmt.Sprintf("authors:book:%d", bookID)
	return s.cachedLookup(ctx, key, func() ([]int64, error) {
		return s.repo.AuthorsOfBook(ctx, bookID)
	})
}

func (s *authorshipService) BooksOfUser(ctx context.Context, userID int64) ([]int64, error) {
	key := fmt.Sprintf("books:user:%d", userID)
	return s.cachedLookup(ctx, key, func() ([]int64, error) {
		return s.repo.BooksOfUser(ctx, userID)
	})
}

func (s *authorshipService) cachedLookup(ctx context.Context, key string, fetch func() ([]int64, error)) ([]int64, error) {
	var cached []int64
	found, err := s.cache.Get(ctx, key, &cached)
	if err != nil {
		logger.Error("association cache read failed", err)
	}
	if found {
		return cached, nil
	}

	ids, err := fetch()
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, key, ids, associationCacheTTL); err != nil {
		logger.Error("association cache write failed", err)
	}

	return ids, nil
}
