package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	userHandler "userbook-backend/internal/domains/user/handler"
	"userbook-backend/internal/shared/middleware"
	"userbook-backend/pkg/container"
)

// SetupRouter wires the middleware pipeline and the route table. Each route's
// chain is explicit and ordered: recovery → request id → logging → rate
// limiting, then the key guard per group, then (for creation) the validator
// stage, then the handler.
func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.RateLimit(c.Cache, c.Config.RateLimit),
	)

	router.GET("/health", healthCheckHandler(c))

	rest := router.Group("/rest")
	rest.Use(middleware.APIKeyAuth(c.Config.Auth.APIKeyHeader, c.Config.Auth.APIKey))
	{
		rest.GET("/demo/:id", c.UserHandler.Demo)

		rest.POST("/user", userHandler.ValidateCreateUser(), c.UserHandler.Create)
		rest.GET("/user", c.UserHandler.List)
		rest.PATCH("/user/:id", c.UserHandler.Update)
		rest.DELETE("/user/:id", c.UserHandler.Delete)

		rest.GET("/authors/:bookId", c.AuthorshipHandler.AuthorsOfBook)
		rest.GET("/books/:userId", c.AuthorshipHandler.BooksOfUser)
	}

	return router
}

func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		status := http.StatusOK
		dbStatus := "up"
		cacheStatus := "up"

		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			status = http.StatusServiceUnavailable
			dbStatus = "down"
		}
		if err := c.Cache.Ping(ctx.Request.Context()); err != nil {
			cacheStatus = "down"
		}

		ctx.JSON(status, gin.H{
			"name":     c.Config.App.Name,
			"version":  c.Config.App.Version,
			"database": dbStatus,
			"cache":    cacheStatus,
		})
	}
}
