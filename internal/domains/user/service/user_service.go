package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"userbook-backend/internal/domains/user"
	"userbook-backend/pkg/cache"
	"userbook-backend/pkg/database"
	"userbook-backend/pkg/logger"
)

const userCacheTTL = 15 * time.Minute

type userService struct {
	db    *sql.DB
	repo  user.Repository
	cache cache.Cache
}

// NewUserService wires the business rules over the repository. The *sql.DB
// handle is needed to open the transactions that make the check-then-act
// sequences atomic.
func NewUserService(db *sql.DB, repo user.Repository, c cache.Cache) user.Service {
	return &userService{db: db, repo: repo, cache: c}
}

func userCacheKey(id int64) string {
	return fmt.Sprintf("user:%d", id)
}

// GetByID serves the demo endpoint with a cache-aside read. Cache failures
// are logged and treated as misses.
func (s *userService) GetByID(ctx context.Context, id int64) (*user.User, error) {
	key := userCacheKey(id)

	var cached user.User
	found, err := s.cache.Get(ctx, key, &cached)
	if err != nil {
		logger.Error("user cache read failed", err)
	}
	if found {
		return &cached, nil
	}

	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, key, u, userCacheTTL); err != nil {
		logger.Error("user cache write failed", err)
	}

	return u, nil
}

// Create inserts the (validated, normalized) payload unless the identical
// name pair already exists. Probe and insert share one transaction, closing
// the race window between concurrent identical requests.
func (s *userService) Create(ctx context.Context, req user.CreateUserRequest) (user.CreateResult, error) {
	return database.WithTransactionResult(ctx, s.db, func(tx *sql.Tx) (user.CreateResult, error) {
		repo := s.repo.WithTx(tx)

		_, err := repo.FindByName(ctx, req.GivenName, req.FamilyName)
		if err == nil {
			return user.AlreadyExists, nil
		}
		if !errors.Is(err, user.ErrUserNotFound) {
			return 0, err
		}

		u := &user.User{
			FirstName: req.GivenName,
			LastName:  req.FamilyName,
			Gender:    req.Gender,
		}
		if _, err := repo.Create(ctx, u); err != nil {
			// The unique index catches inserts that slipped past the probe
			// in a concurrent transaction; same idempotent outcome.
			if errors.Is(err, user.ErrUserAlreadyExists) {
				return user.AlreadyExists, nil
			}
			return 0, err
		}

		return user.Created, nil
	})
}

func (s *userService) List(ctx context.Context, q user.ListUsersQuery) ([]user.User, int64, error) {
	q.SetDefaults()
	return s.repo.List(ctx, q)
}

// Update applies the provided fields after an existence probe, with both
// statements in one transaction. A request whose values all match the stored
// row is reported as AlreadyUpToDate and writes nothing.
func (s *userService) Update(ctx context.Context, id int64, req user.UpdateUserRequest) (user.UpdateResult, error) {
	if !req.HasUpdates() {
		return 0, user.ErrNoFields
	}

	result, err := database.WithTransactionResult(ctx, s.db, func(tx *sql.Tx) (user.UpdateResult, error) {
		repo := s.repo.WithTx(tx)

		current, err := repo.FindByID(ctx, id)
		if err != nil {
			return 0, err
		}

		if req.MatchesCurrent(current) {
			return user.AlreadyUpToDate, nil
		}

		if err := repo.Update(ctx, id, req.Fields()); err != nil {
			return 0, err
		}
		return user.Updated, nil
	})
	if err != nil {
		return 0, err
	}

	if result == user.Updated {
		s.invalidate(ctx, id)
	}
	return result, nil
}

// Delete removes the user after an in-transaction existence probe.
// Association rows cascade at the storage layer.
func (s *userService) Delete(ctx context.Context, id int64) error {
	err := database.WithTransaction(ctx, s.db, func(tx *sql.Tx) error {
		repo := s.repo.WithTx(tx)

		if _, err := repo.FindByID(ctx, id); err != nil {
			return err
		}
		return repo.Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	s.invalidate(ctx, id)
	return nil
}

func (s *userService) invalidate(ctx context.Context, id int64) {
	keys := []string{
		userCacheKey(id),
		fmt.Sprintf("books:user:%d", id),
	}
	if err := s.cache.Delete(ctx, keys...); err != nil {
		logger.Error("user cache invalidation failed", err)
	}
}
