package web

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hpungsan/roster/internal/config"
	"github.com/hpungsan/roster/internal/ops"
)

//go:embed templates/*.html
var templateFS embed.FS

// maxUploadBytes caps the request body accepted by the import route.
const maxUploadBytes = 8 << 20

// NewServer creates and configures the HTTP server for the roster API and page.
func NewServer(roster *ops.Roster, cfg *config.Config, version string, logger *slog.Logger) *http.Server {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	h := &Handlers{
		roster:  roster,
		logger:  logger,
		page:    template.Must(template.ParseFS(templateFS, "templates/index.html")),
		version: version,
	}

	return &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.Web.Bind, cfg.Web.Port),
		Handler: newRouter(h),
	}
}

// newRouter wires every route onto a fresh gin engine.
func newRouter(h *Handlers) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(h.logger), securityHeaders())
	router.MaxMultipartMemory = maxUploadBytes

	router.GET("/", h.HandleIndex)

	api := router.Group("/api")
	{
		api.GET("/ping", h.HandlePing)
		api.GET("/status", h.HandleStatus)

		api.GET("/students", h.HandleList)
		api.POST("/students", h.HandleAdd)
		api.POST("/students/sort", h.HandleSort)
		api.GET("/students/:id", h.HandleSearch)
		api.GET("/students/:id/exists", h.HandleExists)
		api.DELETE("/students/:id", h.HandleDelete)

		api.POST("/undo", h.HandleUndo)
		api.POST("/import", h.HandleImport)
	}

	return router
}

// securityHeaders adds security-related HTTP headers to all responses.
func securityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Security-Policy", "default-src 'self'; style-src 'self' 'unsafe-inline'")
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Next()
	}
}

// requestLogger logs one line per request at debug level.
func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Debug("http request",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}

// Run starts the HTTP server and handles graceful shutdown on SIGINT/SIGTERM.
func Run(srv *http.Server, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	logger.Info("roster web running", "url", "http://"+srv.Addr)

	if strings.Contains(srv.Addr, "0.0.0.0") || strings.Contains(srv.Addr, "::") {
		logger.Warn("server is binding to all interfaces and may be accessible from the network")
	}

	select {
	case err := <-errCh:
		return err
	case <-sigCh:
		logger.Info("shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(ctx)
	}
}
