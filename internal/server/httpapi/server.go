// Package httpapi is the HTTP transport: a gin router over the core
// services, plus request/response shaping and error-to-status mapping.
// No business rules live here.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rwi001/Valentine-Funs/internal/logging"
)

type Server struct {
	addr   string
	engine *gin.Engine
	logger logging.Logger
}

func NewServer(addr string, handler *Handler, logger logging.Logger) *Server {
	engine := gin.New()
	engine.Use(gin.Recovery())

	RegisterRoutes(engine, handler)

	return &Server{
		addr:   addr,
		engine: engine,
		logger: logger.With("module", "http_server"),
	}
}

func RegisterRoutes(engine *gin.Engine, handler *Handler) {
	engine.GET("/healthz", handler.Health)

	api := engine.Group("/api")
	{
		auth := api.Group("/auth")
		auth.POST("/send-otp", handler.SendOTP)
		auth.POST("/verify-otp", handler.VerifyOTP)

		payment := api.Group("/payment")
		payment.POST("/create-order", handler.CreateOrder)
		payment.POST("/verify", handler.VerifyPayment)
	}
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.addr,
		Handler: s.engine,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.addr)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
