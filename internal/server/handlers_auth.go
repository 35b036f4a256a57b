package server

import (
	"errors"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pscheid92/feedbackpulse/internal/domain"
	apperrors "github.com/pscheid92/feedbackpulse/internal/errors"
)

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signinRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func validateName(name string) error {
	if len(name) < 2 || len(name) > 100 {
		return apperrors.ValidationError("name must be between 2 and 100 characters")
	}
	return nil
}

func validateEmail(email string) error {
	if len(email) > 120 || !strings.Contains(email, "@") || !strings.Contains(email, ".") {
		return apperrors.ValidationError("invalid email address")
	}
	return nil
}

func validatePassword(password string) error {
	if len(password) < 6 {
		return apperrors.ValidationError("password must be at least 6 characters")
	}
	return nil
}

func (s *Server) handleSignup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ValidationError("invalid request body")
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if err := validateName(req.Name); err != nil {
		return err
	}
	if err := validateEmail(req.Email); err != nil {
		return err
	}
	if err := validatePassword(req.Password); err != nil {
		return err
	}

	user, err := s.app.Signup(c.Request().Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return apperrors.ConflictError("email already registered")
		}
		return apperrors.InternalError("failed to create account", err)
	}

	return c.JSON(201, map[string]any{
		"success": true,
		"message": "account created",
		"user":    toUserResponse(user),
	})
}

func (s *Server) handleSignin(c echo.Context) error {
	var req signinRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ValidationError("invalid request body")
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" {
		return apperrors.ValidationError("email and password are required")
	}

	user, err := s.app.Signin(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return apperrors.UnauthorizedError("invalid email or password")
		}
		return apperrors.InternalError("failed to sign in", err)
	}

	return c.JSON(200, map[string]any{
		"success": true,
		"message": "signed in",
		"user":    toUserResponse(user),
	})
}
