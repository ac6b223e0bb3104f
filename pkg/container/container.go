package container

import (
	"context"
	"fmt"
	"time"

	"userbook-backend/internal/config"
	"userbook-backend/migrations"
	"userbook-backend/pkg/cache"
	"userbook-backend/pkg/logger"

	infraCache "userbook-backend/internal/infrastructure/cache"
	"userbook-backend/internal/infrastructure/database"

	"userbook-backend/internal/domains/authorship"
	authorshipHandler "userbook-backend/internal/domains/authorship/handler"
	authorshipRepo "userbook-backend/internal/domains/authorship/repository"
	authorshipService "userbook-backend/internal/domains/authorship/service"
	"userbook-backend/internal/domains/user"
	userHandler "userbook-backend/internal/domains/user/handler"
	userRepo "userbook-backend/internal/domains/user/repository"
	userService "userbook-backend/internal/domains/user/service"
)

// Container is the root of the dependency graph. Everything in it is a
// singleton constructed once at startup; request handlers receive their
// dependencies from here instead of reaching for ambient globals.
type Container struct {
	Config *config.Config
	DB     *database.PostgresDB
	Cache  cache.Cache

	UserRepo       user.Repository
	AuthorshipRepo authorship.Repository

	UserService       user.Service
	AuthorshipService authorship.Service

	UserHandler       *userHandler.UserHandler
	AuthorshipHandler *authorshipHandler.AuthorshipHandler
}

// NewContainer builds the graph in dependency order: config, infrastructure,
// repositories, services, handlers. Migrations run right after the database
// connects so the schema is current before any request is served.
func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	db := database.NewPostgresDB(&cfg.Database)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	c.DB = db

	if err := migrations.Migrate(db.DB); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	redisCache := infraCache.NewRedisCache(
		cfg.Redis.Host,
		cfg.Redis.Password,
		cfg.Redis.DB,
	)
	if err := redisCache.Ping(ctx); err != nil {
		// The cache is an optimization; a missing Redis degrades to
		// database-only reads and an open rate limiter.
		logger.Warn("redis unavailable at startup", map[string]interface{}{
			"error": err.Error(),
		})
	}
	c.Cache = redisCache

	c.UserRepo = userRepo.NewPostgresRepository(db.DB)
	c.AuthorshipRepo = authorshipRepo.NewPostgresRepository(db.DB)

	c.UserService = userService.NewUserService(db.DB, c.UserRepo, c.Cache)
	c.AuthorshipService = authorshipService.NewAuthorshipService(c.AuthorshipRepo, c.Cache)

	c.UserHandler = userHandler.NewUserHandler(c.UserService)
	c.AuthorshipHandler = authorshipHandler.NewAuthorshipHandler(c.AuthorshipService)

	logger.Info("container initialized", map[string]interface{}{
		"environment": cfg.App.Environment,
	})

	return c, nil
}

// Cleanup releases infrastructure resources on shutdown.
func (c *Container) Cleanup() {
	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			logger.Error("closing database", err)
		}
	}
	if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
		if err := rc.Close(); err != nil {
			logger.Error("closing redis", err)
		}
	}
}
