package database

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pscheid92/feedbackpulse/internal/domain"
)

// FeedbackRepo implements domain.FeedbackRepository backed by PostgreSQL.
type FeedbackRepo struct {
	pool *pgxpool.Pool
}

var _ domain.FeedbackRepository = (*FeedbackRepo)(nil)

func NewFeedbackRepo(pool *pgxpool.Pool) *FeedbackRepo {
	return &FeedbackRepo{pool: pool}
}

func (r *FeedbackRepo) Insert(ctx context.Context, userID uuid.UUID, rating int, comment string, sentiment domain.Sentiment) (*domain.Feedback, error) {
	var fb domain.Feedback
	var label string
	err := r.pool.QueryRow(ctx, `
		INSERT INTO feedbacks (user_id, rating, comment, sentiment)
		VALUES ($1, $2, $3, $4)
		RETURNING id, user_id, rating, comment, sentiment, created_at`,
		userID, rating, comment, string(sentiment)).
		Scan(&fb.ID, &fb.UserID, &fb.Rating, &fb.Comment, &label, &fb.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert feedback: %w", err)
	}

	fb.Sentiment, err = domain.ParseSentiment(label)
	if err != nil {
		return nil, fmt.Errorf("stored feedback has invalid sentiment: %w", err)
	}
	return &fb, nil
}

const feedbackListQuery = `
	SELECT f.id, f.user_id, u.name, f.rating, f.comment, f.sentiment, f.created_at
	FROM feedbacks f
	JOIN users u ON u.id = f.user_id`

func (r *FeedbackRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Feedback, error) {
	rows, err := r.pool.Query(ctx,
		feedbackListQuery+` WHERE f.user_id = $1 ORDER BY f.created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list feedback for user: %w", err)
	}
	return collectFeedback(rows)
}

func (r *FeedbackRepo) ListAll(ctx context.Context) ([]domain.Feedback, error) {
	rows, err := r.pool.Query(ctx, feedbackListQuery+` ORDER BY f.created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list feedback: %w", err)
	}
	return collectFeedback(rows)
}

func (r *FeedbackRepo) ListSentiments(ctx context.Context) ([]domain.Sentiment, error) {
	rows, err := r.pool.Query(ctx, `SELECT sentiment FROM feedbacks`)
	if err != nil {
		return nil, fmt.Errorf("failed to list sentiments: %w", err)
	}
	return collectSentiments(rows)
}

func (r *FeedbackRepo) ListSentimentsByUser(ctx context.Context, userID uuid.UUID) ([]domain.Sentiment, error) {
	rows, err := r.pool.Query(ctx, `SELECT sentiment FROM feedbacks WHERE user_id = $1`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sentiments for user: %w", err)
	}
	return collectSentiments(rows)
}

func collectFeedback(rows pgx.Rows) ([]domain.Feedback, error) {
	defer rows.Close()

	var feedbacks []domain.Feedback
	for rows.Next() {
		var fb domain.Feedback
		var label string
		if err := rows.Scan(&fb.ID, &fb.UserID, &fb.UserName, &fb.Rating, &fb.Comment, &label, &fb.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan feedback: %w", err)
		}
		sentiment, err := domain.ParseSentiment(label)
		if err != nil {
			return nil, fmt.Errorf("stored feedback has invalid sentiment: %w", err)
		}
		fb.Sentiment = sentiment
		feedbacks = append(feedbacks, fb)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate feedback: %w", err)
	}
	return feedbacks, nil
}

func collectSentiments(rows pgx.Rows) ([]domain.Sentiment, error) {
	defer rows.Close()

	var sentiments []domain.Sentiment
	for rows.Next() {
		var label string
		if err := rows.Scan(&label); err != nil {
			return nil, fmt.Errorf("failed to scan sentiment: %w", err)
		}
		sentiment, err := domain.ParseSentiment(label)
		if err != nil {
			return nil, fmt.Errorf("stored feedback has invalid sentiment: %w", err)
		}
		sentiments = append(sentiments, sentiment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate sentiments: %w", err)
	}
	return sentiments, nil
}
