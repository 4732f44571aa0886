// Package api exposes the HTTP edge: the run API (create/resume/cancel
// plus the JSON/SSE event feed), conventional CRUD for sessions, pages,
// product docs, and snapshots, and a health endpoint.
package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/TheSmartAz/instant-coffee-sub001/pkg/config"
	"github.com/TheSmartAz/instant-coffee-sub001/pkg/database"
	"github.com/TheSmartAz/instant-coffee-sub001/pkg/events"
	"github.com/TheSmartAz/instant-coffee-sub001/pkg/executor"
	"github.com/TheSmartAz/instant-coffee-sub001/pkg/llm"
	"github.com/TheSmartAz/instant-coffee-sub001/pkg/orchestrator"
	"github.com/TheSmartAz/instant-coffee-sub001/pkg/services"
)

// Deps are the collaborators the HTTP layer delegates to.
type Deps struct {
	DB           *database.Client
	Sessions     *services.SessionService
	Runs         *services.RunService
	State        *services.StateService
	Docs         *services.ProductDocService
	Pages        *services.PageService
	Snapshots    *services.SnapshotService
	Plans        *services.PlanService
	Orchestrator *orchestrator.Orchestrator
	Executor     *executor.ParallelExecutor
	LLM          llm.Client
	Store        *events.Store
	Emitter      *events.Emitter
	Idempotency  *services.IdempotencyCache
}

// Server is the HTTP server for the orchestrator API.
type Server struct {
	cfg  *config.ServerConfig
	deps Deps
	http *http.Server
}

// NewServer creates the server and mounts all routes.
func NewServer(cfg *config.ServerConfig, deps Deps) *Server {
	if cfg == nil {
		cfg = config.DefaultServerConfig()
	}
	s := &Server{cfg: cfg, deps: deps}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(), corsMiddleware(cfg.CORS))
	s.mountRoutes(router)

	s.http = &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: router,
	}
	return s
}

func (s *Server) mountRoutes(router *gin.Engine) {
	router.GET("/health", s.handleHealth)

	apiGroup := router.Group("/api")

	runs := apiGroup.Group("/runs")
	if s.cfg.RunAPIEnabled {
		runs.POST("", s.handleCreateRun)
		runs.GET("/:id", s.handleGetRun)
		runs.POST("/:id/resume", s.handleResumeRun)
		runs.POST("/:id/cancel", s.handleCancelRun)
		runs.GET("/:id/events", s.handleRunEvents)
	} else {
		disabled := func(c *gin.Context) {
			c.JSON(http.StatusNotFound, errorBody{Error: "run API disabled"})
		}
		runs.Any("", disabled)
		runs.Any("/*path", disabled)
	}

	sessions := apiGroup.Group("/sessions")
	sessions.POST("", s.handleCreateSession)
	sessions.GET("", s.handleListSessions)
	sessions.GET("/:id", s.handleGetSession)
	sessions.DELETE("/:id", s.handleDeleteSession)
	sessions.GET("/:id/events", s.handleSessionEvents)
	sessions.GET("/:id/runs", s.handleListSessionRuns)

	sessions.GET("/:id/doc", s.handleGetDoc)
	sessions.PUT("/:id/doc", s.handleUpdateDoc)
	sessions.POST("/:id/doc/confirm", s.handleConfirmDoc)
	sessions.GET("/:id/doc/history", s.handleListDocHistory)

	sessions.GET("/:id/pages", s.handleListPages)
	sessions.POST("/:id/pages", s.handleCreatePage)

	sessions.GET("/:id/snapshots", s.handleListSnapshots)
	sessions.POST("/:id/snapshots", s.handleCreateSnapshot)

	sessions.GET("/:id/plans", s.handleListPlans)
	sessions.POST("/:id/plans", s.handleCreatePlan)
	apiGroup.GET("/plans/:id", s.handleGetPlan)

	pages := apiGroup.Group("/pages")
	pages.GET("/:id", s.handleGetPage)
	pages.GET("/:id/versions", s.handleListVersions)
	pages.GET("/:id/preview", s.handlePreviewPage)
	pages.GET("/:id/versions/:versionID/preview", s.handlePreviewVersion)
	pages.POST("/:id/versions/:versionID/pin", s.handlePinVersion)

	apiGroup.POST("/history/:id/pin", s.handlePinHistory)

	snapshots := apiGroup.Group("/snapshots")
	snapshots.GET("/:id", s.handleGetSnapshot)
	snapshots.POST("/:id/rollback", s.handleRollbackSnapshot)
	snapshots.POST("/:id/pin", s.handlePinSnapshot)
}

// Start begins serving. Blocks until the listener closes.
func (s *Server) Start() error {
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
