package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/yourusername/media-relay-go/api/handlers"
	"github.com/yourusername/media-relay-go/api/middleware"
	"github.com/yourusername/media-relay-go/internal/app"
	"github.com/yourusername/media-relay-go/internal/domain"
)

// SetupRouter sets up the HTTP router
func SetupRouter(pipeline *app.Pipeline, repo domain.FetchRepository, log *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	router.Use(middleware.Logger(log))
	router.Use(middleware.Recovery(log))

	healthHandler := handlers.NewHealthHandler(repo)
	router.GET("/health", healthHandler.Health)

	v1 := router.Group("/api/v1")
	{
		fetchHandler := handlers.NewFetchHandler(pipeline, repo, log)
		fetches := v1.Group("/fetches")
		{
			fetches.GET("", fetchHandler.ListFetches)
			fetches.GET("/stats", fetchHandler.GetStats)
			fetches.GET("/:id", fetchHandler.GetFetch)
		}
		v1.POST("/probe", fetchHandler.Probe)
	}

	return router
}
