package server

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pscheid92/feedbackpulse/internal/domain"
	apperrors "github.com/pscheid92/feedbackpulse/internal/errors"
)

type submitFeedbackRequest struct {
	UserID  uuid.UUID `json:"user_id"`
	Rating  int       `json:"rating"`
	Comment string    `json:"comment"`
}

func (s *Server) handleSubmitFeedback(c echo.Context) error {
	var req submitFeedbackRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ValidationError("invalid request body")
	}

	if req.UserID == uuid.Nil {
		return apperrors.ValidationError("user_id is required")
	}
	if req.Rating < 1 || req.Rating > 5 {
		return apperrors.ValidationError("rating must be between 1 and 5")
	}

	req.Comment = strings.TrimSpace(req.Comment)
	if len(req.Comment) < 5 || len(req.Comment) > 1000 {
		return apperrors.ValidationError("comment must be between 5 and 1000 characters")
	}

	if s.limiter != nil && !s.limiter.Allow(c.Request().Context(), req.UserID) {
		return apperrors.TooManyRequestsError("too many submissions, try again later")
	}

	fb, err := s.app.SubmitFeedback(c.Request().Context(), req.UserID, req.Rating, req.Comment)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return apperrors.NotFoundError("user not found")
		}
		return apperrors.InternalError("failed to submit feedback", err)
	}

	return c.JSON(201, map[string]any{
		"success":  true,
		"message":  "feedback submitted",
		"feedback": toFeedbackResponse(fb),
	})
}

func (s *Server) handleListUserFeedback(c echo.Context) error {
	userID, err := parseUserID(c)
	if err != nil {
		return err
	}

	feedbacks, err := s.app.ListUserFeedback(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return apperrors.NotFoundError("user not found")
		}
		return apperrors.InternalError("failed to list feedback", err)
	}

	return c.JSON(200, map[string]any{
		"success":   true,
		"feedbacks": toFeedbackResponses(feedbacks),
	})
}

func (s *Server) handleUserSummary(c echo.Context) error {
	userID, err := parseUserID(c)
	if err != nil {
		return err
	}

	summary, err := s.app.UserSentimentSummary(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return apperrors.NotFoundError("user not found")
		}
		return apperrors.InternalError("failed to compute summary", err)
	}

	return c.JSON(200, map[string]any{
		"success": true,
		"summary": summary,
	})
}
