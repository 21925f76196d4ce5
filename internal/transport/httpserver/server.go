package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sandevgo/memobot/internal/config"
	"github.com/sandevgo/memobot/internal/service/assistant"
	"github.com/sandevgo/memobot/pkg/log"
	"github.com/sandevgo/memobot/pkg/netutil"
)

// Server is the HTTP boundary of the assistant: the browser client talks
// to the dispatch pipeline and the event store through it.
type Server struct {
	cfg *config.AppConfig
	srv *http.Server
}

func NewServer(ctx context.Context, cfg *config.AppConfig, a *assistant.Assistant, generatorReady bool) *Server {
	if !config.IsDebug() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(ContextLogger(ctx))
	router.Use(RequestLogger())
	router.Use(CORS())

	h := newHandler(a, generatorReady)
	registerRoutes(router, h)

	return &Server{
		cfg: cfg,
		srv: &http.Server{
			Addr:    fmt.Sprintf(":%d", cfg.Port),
			Handler: router,
		},
	}
}

func registerRoutes(router *gin.Engine, h *handler) {
	api := router.Group("/api")
	api.GET("/status", h.Status)
	api.POST("/chat", h.Chat)
	api.GET("/chat-history", h.ChatHistory)
	api.POST("/event", h.RecordEvent)
	api.GET("/events/:type", h.EventsByType)
}

func (s *Server) Start(ctx context.Context) error {
	logger := log.FromCtx(ctx)
	logger.Info().Msgf("local:   http://localhost:%d", s.cfg.Port)
	logger.Info().Msgf("network: http://%s:%d", netutil.LocalIP(), s.cfg.Port)

	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server failed: %w", err)
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
