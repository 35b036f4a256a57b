package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Feedback struct {
	ID     uuid.UUID
	UserID uuid.UUID
	// UserName is joined in for listings; empty on freshly inserted rows.
	UserName  string
	Rating    int
	Comment   string
	Sentiment Sentiment
	CreatedAt time.Time
}

type FeedbackRepository interface {
	Insert(ctx context.Context, userID uuid.UUID, rating int, comment string, sentiment Sentiment) (*Feedback, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]Feedback, error)
	ListAll(ctx context.Context) ([]Feedback, error)
	// ListSentiments returns the labels of all stored feedback, unordered.
	// The zero-length result is valid and means "no data yet".
	ListSentiments(ctx context.Context) ([]Sentiment, error)
	ListSentimentsByUser(ctx context.Context, userID uuid.UUID) ([]Sentiment, error)
}
