// Package http provides the API server, router assembly, and shared middleware.
package http

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/metric"

	analyticsHTTP "github.com/allisson/identity/internal/analytics/http"
	apikeyHTTP "github.com/allisson/identity/internal/apikey/http"
	authHTTP "github.com/allisson/identity/internal/auth/http"
	authUseCase "github.com/allisson/identity/internal/auth/usecase"
	emailDomainHTTP "github.com/allisson/identity/internal/emaildomain/http"
	fileHTTP "github.com/allisson/identity/internal/file/http"
	"github.com/allisson/identity/internal/metrics"
	projectHTTP "github.com/allisson/identity/internal/project/http"
	userHTTP "github.com/allisson/identity/internal/user/http"
)

// Handlers groups the resource handlers mounted on the API server.
// CounterHandler may be nil when the counter store is disabled; its routes
// are skipped in that case.
type Handlers struct {
	Token           *authHTTP.TokenHandler
	Project         *projectHTTP.ProjectHandler
	User            *userHTTP.UserHandler
	APIKey          *apikeyHTTP.APIKeyHandler
	FileProvider    *fileHTTP.FileProviderHandler
	FileBucket      *fileHTTP.FileBucketHandler
	File            *fileHTTP.FileHandler
	AnalyticsConfig *analyticsHTTP.AnalyticsConfigHandler
	Counter         *analyticsHTTP.CounterHandler
	EmailDomain     *emailDomainHTTP.EmailDomainHandler
}

// Options holds router-level configuration for the API server.
type Options struct {
	CORSEnabled      bool
	CORSAllowOrigins string

	RateLimitTokenEnabled        bool
	RateLimitTokenRequestsPerSec float64
	RateLimitTokenBurst          int

	// MeterProvider enables per-request HTTP metrics when set.
	MeterProvider    metric.MeterProvider
	MetricsNamespace string
}

// Server represents the API HTTP server.
type Server struct {
	server *http.Server
	db     *sql.DB
	logger *slog.Logger
}

// NewServer creates the API server and assembles the full router.
func NewServer(
	db *sql.DB,
	host string,
	port int,
	logger *slog.Logger,
	authUC authUseCase.AuthUseCase,
	handlers Handlers,
	opts Options,
) *Server {
	s := &Server{
		db:     db,
		logger: logger,
	}

	router := s.setupRouter(authUC, handlers, opts)

	s.server = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", host, port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// setupRouter builds the gin engine with middleware chain and route registration.
func (s *Server) setupRouter(
	authUC authUseCase.AuthUseCase,
	handlers Handlers,
	opts Options,
) *gin.Engine {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))

	if corsMiddleware := createCORSMiddleware(opts.CORSEnabled, opts.CORSAllowOrigins, s.logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if opts.MeterProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(opts.MeterProvider, opts.MetricsNamespace))
	}

	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	v1 := router.Group("/v1")

	// Token issuance runs before authentication and gets its own IP-based
	// rate limit.
	tokens := v1.Group("/tokens")
	if opts.RateLimitTokenEnabled {
		tokens.Use(authHTTP.TokenRateLimitMiddleware(
			opts.RateLimitTokenRequestsPerSec,
			opts.RateLimitTokenBurst,
			s.logger,
		))
	}
	tokens.POST("", handlers.Token.IssueFromAPIKeyHandler)
	tokens.POST("/login", handlers.Token.IssueFromCredentialsHandler)

	// Everything else requires an authenticated caller.
	authed := v1.Group("")
	authed.Use(authHTTP.AuthenticationMiddleware(authUC, s.logger))

	// Project-scoped routes additionally resolve and authorize the project
	// the request operates on.
	scoped := authed.Group("")
	scoped.Use(authHTTP.ProjectMiddleware(authUC, s.logger))

	// Projects
	authed.POST("/projects", handlers.Project.CreateHandler)
	authed.GET("/projects", handlers.Project.ListHandler)
	authed.GET("/projects/lookup", handlers.Project.GetHandler)
	authed.GET("/projects/:projectId", handlers.Project.GetByIDHandler)
	authed.PUT("/projects/:projectId", handlers.Project.UpdateHandler)
	authed.DELETE("/projects/:projectId", handlers.Project.DeleteHandler)

	// Users
	authed.POST("/users", handlers.User.CreateHandler)
	authed.GET("/users", handlers.User.ListHandler)
	authed.GET("/users/by-email", handlers.User.GetByEmailHandler)
	authed.GET("/users/:id", handlers.User.GetHandler)
	authed.PUT("/users/:id", handlers.User.UpdateHandler)
	authed.DELETE("/users/:id", handlers.User.DeleteHandler)
	authed.POST("/users/:id/projects", handlers.User.LinkProjectHandler)
	authed.DELETE("/users/:id/projects/:projectId", handlers.User.UnlinkProjectHandler)

	// API keys. The project-scoped routes run through the project middleware
	// so listing and mass revocation are authorized against the caller's
	// project access before the handler executes.
	authed.POST("/api-keys", handlers.APIKey.IssueHandler)
	authed.POST("/api-keys/revoke", handlers.APIKey.RevokeByKeyHandler)
	authed.GET("/api-keys/:id", handlers.APIKey.GetHandler)
	authed.DELETE("/api-keys/:id", handlers.APIKey.RevokeHandler)
	scoped.GET("/projects/:projectId/api-keys", handlers.APIKey.ListHandler)
	scoped.DELETE("/projects/:projectId/api-keys", handlers.APIKey.RevokeAllForProjectHandler)

	// File providers
	authed.POST("/file-providers", handlers.FileProvider.CreateHandler)
	authed.GET("/file-providers", handlers.FileProvider.ListHandler)
	authed.GET("/file-providers/:id", handlers.FileProvider.GetHandler)
	authed.PUT("/file-providers/:id", handlers.FileProvider.UpdateHandler)
	authed.DELETE("/file-providers/:id", handlers.FileProvider.DeleteHandler)

	// File buckets
	authed.POST("/file-buckets", handlers.FileBucket.CreateHandler)
	scoped.GET("/file-buckets", handlers.FileBucket.ListHandler)
	authed.GET("/file-buckets/:id", handlers.FileBucket.GetHandler)
	authed.PUT("/file-buckets/:id", handlers.FileBucket.UpdateHandler)
	authed.DELETE("/file-buckets/:id", handlers.FileBucket.DeleteHandler)

	// Files
	authed.POST("/files", handlers.File.CreateHandler)
	scoped.GET("/files", handlers.File.ListHandler)
	authed.GET("/files/:id", handlers.File.GetHandler)
	authed.PUT("/files/:id", handlers.File.UpdateHandler)
	authed.DELETE("/files/:id", handlers.File.DeleteHandler)

	// Analytics configs
	authed.POST("/analytics-configs", handlers.AnalyticsConfig.CreateHandler)
	authed.GET("/analytics-configs", handlers.AnalyticsConfig.ListHandler)
	authed.GET("/analytics-configs/:id", handlers.AnalyticsConfig.GetHandler)
	authed.PUT("/analytics-configs/:id", handlers.AnalyticsConfig.UpdateHandler)
	authed.DELETE("/analytics-configs/:id", handlers.AnalyticsConfig.DeleteHandler)

	// Counters
	if handlers.Counter != nil {
		scoped.POST("/counters/:name/increment", handlers.Counter.IncrementHandler)
		scoped.GET("/counters/:name", handlers.Counter.GetHandler)
		scoped.DELETE("/counters/:name", handlers.Counter.ResetHandler)
	}

	// Email domains
	authed.POST("/email-domains", handlers.EmailDomain.CreateHandler)
	scoped.GET("/email-domains", handlers.EmailDomain.ListHandler)
	authed.GET("/email-domains/:id", handlers.EmailDomain.GetHandler)
	authed.PUT("/email-domains/:id", handlers.EmailDomain.UpdateHandler)
	authed.DELETE("/email-domains/:id", handlers.EmailDomain.DeleteHandler)

	return router
}

// healthHandler reports process liveness.
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports whether the server can reach its dependencies.
func (s *Server) readinessHandler(c *gin.Context) {
	components := gin.H{}
	ready := true

	if s.db == nil {
		components["database"] = "error"
		ready = false
	} else {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := s.db.PingContext(ctx); err != nil {
			components["database"] = "error"
			ready = false
		} else {
			components["database"] = "ok"
		}
	}

	if !ready {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready", "components": components})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ready", "components": components})
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.server.Handler
}

// Start starts the API HTTP server.
func (s *Server) Start(ctx context.Context) error {
	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the API HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}
