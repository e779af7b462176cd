// Package httpapi exposes the payroll API over HTTP/JSON.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/anshumat/paystream/internal/logging"
	"github.com/anshumat/paystream/internal/server/services"
	"github.com/gin-gonic/gin"
)

// Server wires the gin router to the service layer.
type Server struct {
	router  *gin.Engine
	logger  logging.Logger
	users   *services.UserService
	payroll *services.PayrollService
}

// NewServer builds the router with all routes registered.
func NewServer(logger logging.Logger, users *services.UserService, payroll *services.PayrollService) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	s := &Server{
		router:  router,
		logger:  logger,
		users:   users,
		payroll: payroll,
	}

	auth := router.Group("/auth")
	{
		auth.POST("/signup", s.handleSignup)
		auth.POST("/login", s.handleLogin)
		auth.GET("/me", s.authRequired(), s.handleMe)
	}

	slips := router.Group("/salary-slip", s.authRequired())
	{
		slips.POST("", s.adminRequired(), s.handleCreateSlip)
		slips.GET("", s.handleListSlips)
		slips.GET("/:id/download", s.handleDownloadSlip)
	}

	expense := router.Group("/expense", s.authRequired())
	{
		expense.POST("", s.handleSubmitExpense)
		expense.GET("", s.handleListExpenses)
		expense.PUT("/:id/status", s.adminRequired(), s.handleUpdateExpenseStatus)
	}

	router.GET("/admin/stats", s.authRequired(), s.adminRequired(), s.handleStats)
	router.GET("/users", s.authRequired(), s.adminRequired(), s.handleListUsers)

	return s
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.router}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
