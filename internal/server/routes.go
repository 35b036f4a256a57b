package server

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (s *Server) registerRoutes() {
	// Observability endpoints (no auth required)
	s.echo.GET("/health/live", s.handleLiveness)
	s.echo.GET("/health/ready", s.handleReadiness)
	s.echo.GET("/version", s.handleVersion)
	s.echo.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Auth endpoints get a per-IP throttle against credential stuffing
	authThrottle := s.throttle(NewIPRateLimiter(5, 10))

	// Account and feedback API
	s.echo.POST("/api/signup", s.handleSignup, authThrottle)
	s.echo.POST("/api/signin", s.handleSignin, authThrottle)
	s.echo.POST("/api/feedback", s.handleSubmitFeedback)
	s.echo.GET("/api/feedback/user/:id", s.handleListUserFeedback)
	s.echo.GET("/api/feedback/user/:id/summary", s.handleUserSummary)

	// Admin area (session protected)
	s.echo.POST("/api/admin/login", s.handleAdminLogin, authThrottle)
	s.echo.POST("/api/admin/logout", s.handleAdminLogout, s.requireAdmin)
	s.echo.GET("/api/admin/feedbacks", s.handleAdminListFeedbacks, s.requireAdmin)
	s.echo.GET("/api/admin/summary", s.handleAdminSummary, s.requireAdmin)
	s.echo.GET("/api/admin/users", s.handleAdminListUsers, s.requireAdmin)
}
