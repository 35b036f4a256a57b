package server

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pscheid92/feedbackpulse/internal/domain"
	apperrors "github.com/pscheid92/feedbackpulse/internal/errors"
)

// Session keys
const (
	sessionName     = "feedbackpulse-session"
	sessionKeyAdmin = "admin"
)

// --- Response DTOs ---

type userResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

type feedbackResponse struct {
	ID        uuid.UUID        `json:"id"`
	UserID    uuid.UUID        `json:"user_id"`
	UserName  string           `json:"user_name,omitempty"`
	Rating    int              `json:"rating"`
	Comment   string           `json:"comment"`
	Sentiment domain.Sentiment `json:"sentiment"`
	CreatedAt time.Time        `json:"created_at"`
}

func toFeedbackResponse(f *domain.Feedback) feedbackResponse {
	return feedbackResponse{
		ID:        f.ID,
		UserID:    f.UserID,
		UserName:  f.UserName,
		Rating:    f.Rating,
		Comment:   f.Comment,
		Sentiment: f.Sentiment,
		CreatedAt: f.CreatedAt,
	}
}

func toFeedbackResponses(feedbacks []domain.Feedback) []feedbackResponse {
	out := make([]feedbackResponse, 0, len(feedbacks))
	for i := range feedbacks {
		out = append(out, toFeedbackResponse(&feedbacks[i]))
	}
	return out
}

// --- Helpers ---

// parseUserID reads the :id path parameter as a UUID.
func parseUserID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, apperrors.ValidationError("invalid user id")
	}
	return id, nil
}
