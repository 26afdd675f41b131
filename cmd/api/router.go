package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"authors-backend/internal/shared/middleware"
	"authors-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	router.GET("/health", healthCheckHandler(c))

	setupAuthorRoutes(router, c)
	setupAuthorInfoRoutes(router, c)

	return router
}

// ========================================
// AUTHOR ROUTES
// ========================================
// The static /total and /nomeOrSobrenome routes coexist with /:id;
// gin resolves static segments before the parameter.
func setupAuthorRoutes(router *gin.Engine, c *container.Container) {
	authors := router.Group("/authors")
	{
		authors.POST("", c.AuthorHandler.Create)
		authors.PUT("", c.AuthorHandler.Update)
		authors.GET("", c.AuthorHandler.ListAll)
		authors.GET("/total", c.AuthorHandler.Count)
		authors.GET("/nomeOrSobrenome", c.AuthorHandler.FindByTerm)
		authors.GET("/:id", c.AuthorHandler.FindByID)
		authors.DELETE("/:id", c.AuthorHandler.Delete)
	}
}

// ========================================
// AUTHOR INFO ROUTES
// ========================================
func setupAuthorInfoRoutes(router *gin.Engine, c *container.Container) {
	infos := router.Group("/author-infos")
	{
		infos.POST("", c.AuthorInfoHandler.Create)
		infos.PUT("", c.AuthorInfoHandler.Update)
		infos.GET("", c.AuthorInfoHandler.ListAll)
		infos.GET("/total", c.AuthorInfoHandler.Count)
		infos.GET("/role", c.AuthorInfoHandler.FindByTerm)
		infos.GET("/:id", c.AuthorInfoHandler.FindByID)
		infos.DELETE("/:id", c.AuthorInfoHandler.Delete)
	}
}

// ========================================
// HEALTH CHECK HANDLER
// ========================================
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
		}

		dbStatus := "ok"
		if appCtx.DB == nil || appCtx.DB.Pool == nil {
			dbStatus = "disconnected"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.DB.HealthCheck(ctx); err != nil {
				dbStatus = err.Error()
			}
		}

		health["database"] = dbStatus

		statusCode := http.StatusOK
		if dbStatus != "ok" {
			health["status"] = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, health)
	}
}
