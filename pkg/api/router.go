// Package api exposes the remote inventory and state control over HTTP.
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/iracd/iracd/pkg/api/handlers"
	"github.com/iracd/iracd/pkg/remote"
)

// Router holds the Gin engine and dependencies
type Router struct {
	engine *gin.Engine
	svc    remote.Service
}

// NewRouter creates a new API router
func NewRouter(svc remote.Service) *Router {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()
	SetupMiddleware(engine)

	router := &Router{
		engine: engine,
		svc:    svc,
	}

	router.setupRoutes()

	return router
}

// setupRoutes configures all API routes
func (r *Router) setupRoutes() {
	// Swagger UI
	r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(301, "/swagger/index.html")
	})

	// Health check at root
	healthHandler := handlers.NewHealthHandler(r.svc)
	r.engine.GET("/health", healthHandler.Health)

	// API v1 routes
	v1 := r.engine.Group("/api/v1")
	{
		// Health
		v1.GET("/health", healthHandler.Health)

		// Protocol catalog and capture decoding
		v1.GET("/protocols", handlers.NewProtocolsHandler(r.svc).ListProtocols)
		v1.POST("/decode", handlers.NewDecodeHandler(r.svc).Decode)

		// Remotes
		remotesHandler := handlers.NewRemotesHandler(r.svc)
		controlHandler := handlers.NewControlHandler(r.svc)
		remotes := v1.Group("/remotes")
		{
			remotes.GET("", remotesHandler.ListRemotes)
			remotes.POST("", remotesHandler.CreateRemote)
			remotes.GET("/:id", remotesHandler.GetRemote)
			remotes.PATCH("/:id", remotesHandler.RenameRemote)
			remotes.DELETE("/:id", remotesHandler.RemoveRemote)

			// Remote state control
			remotes.GET("/:id/state", controlHandler.GetState)
			remotes.POST("/:id/state", controlHandler.SetState)
			remotes.GET("/:id/transmissions", controlHandler.ListTransmissions)
		}
	}
}

// Handler exposes the engine as an http.Handler, for tests and embedding
func (r *Router) Handler() http.Handler {
	return r.engine
}

// Run starts the HTTP server
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}
