package server

import (
	"crypto/subtle"
	"log/slog"

	"github.com/labstack/echo/v4"
	apperrors "github.com/pscheid92/feedbackpulse/internal/errors"
)

type adminLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// requireAdmin gates the admin endpoints behind the session cookie set by
// handleAdminLogin.
func (s *Server) requireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		session, err := s.sessionStore.Get(c.Request(), sessionName)
		if err != nil {
			return apperrors.UnauthorizedError("admin login required")
		}

		isAdmin, ok := session.Values[sessionKeyAdmin].(bool)
		if !ok || !isAdmin {
			return apperrors.UnauthorizedError("admin login required")
		}

		return next(c)
	}
}

func (s *Server) handleAdminLogin(c echo.Context) error {
	var req adminLoginRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ValidationError("invalid request body")
	}

	// Constant-time comparison so timing does not leak which field was wrong
	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(s.config.AdminUsername)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(s.config.AdminPassword)) == 1
	if !userOK || !passOK {
		return apperrors.UnauthorizedError("invalid admin credentials")
	}

	session, err := s.sessionStore.Get(c.Request(), sessionName)
	if err != nil {
		// Corrupt cookie, start a fresh session
		session, err = s.sessionStore.New(c.Request(), sessionName)
		if err != nil {
			return apperrors.InternalError("failed to create session", err)
		}
	}

	session.Values[sessionKeyAdmin] = true
	if err := session.Save(c.Request(), c.Response().Writer); err != nil {
		return apperrors.InternalError("failed to save session", err)
	}

	slog.Info("Admin logged in", "remote_ip", c.RealIP())
	return c.JSON(200, map[string]any{
		"success": true,
		"message": "admin logged in",
	})
}

func (s *Server) handleAdminLogout(c echo.Context) error {
	session, err := s.sessionStore.Get(c.Request(), sessionName)
	if err == nil {
		delete(session.Values, sessionKeyAdmin)
		session.Options.MaxAge = -1
		if err := session.Save(c.Request(), c.Response().Writer); err != nil {
			return apperrors.InternalError("failed to clear session", err)
		}
	}

	return c.JSON(200, map[string]any{
		"success": true,
		"message": "admin logged out",
	})
}

func (s *Server) handleAdminListFeedbacks(c echo.Context) error {
	feedbacks, err := s.app.ListAllFeedback(c.Request().Context())
	if err != nil {
		return apperrors.InternalError("failed to list feedback", err)
	}

	return c.JSON(200, map[string]any{
		"success":   true,
		"feedbacks": toFeedbackResponses(feedbacks),
	})
}

func (s *Server) handleAdminSummary(c echo.Context) error {
	summary, err := s.app.SentimentSummary(c.Request().Context())
	if err != nil {
		return apperrors.InternalError("failed to compute summary", err)
	}

	return c.JSON(200, map[string]any{
		"success": true,
		"summary": summary,
	})
}

func (s *Server) handleAdminListUsers(c echo.Context) error {
	users, err := s.app.ListUsers(c.Request().Context())
	if err != nil {
		return apperrors.InternalError("failed to list users", err)
	}

	out := make([]userResponse, 0, len(users))
	for i := range users {
		out = append(out, toUserResponse(&users[i]))
	}

	return c.JSON(200, map[string]any{
		"success": true,
		"users":   out,
	})
}
