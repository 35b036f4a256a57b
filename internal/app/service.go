package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/pscheid92/feedbackpulse/internal/domain"
	"github.com/pscheid92/feedbackpulse/internal/metrics"
	"github.com/pscheid92/feedbackpulse/internal/report"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/singleflight"
)

// probabilityReporter is implemented by classifiers that can expose per-label
// probabilities alongside the predicted label.
type probabilityReporter interface {
	Probabilities(text string) map[domain.Sentiment]float64
}

// Service is the application layer. It orchestrates all use cases across the
// user and feedback repositories and the sentiment classifier.
type Service struct {
	users        domain.UserRepository
	feedbacks    domain.FeedbackRepository
	classifier   domain.SentimentClassifier
	summaryGroup singleflight.Group
}

// NewService creates the application layer service.
func NewService(users domain.UserRepository, feedbacks domain.FeedbackRepository, classifier domain.SentimentClassifier) *Service {
	return &Service{
		users:      users,
		feedbacks:  feedbacks,
		classifier: classifier,
	}
}

// Signup registers a new account. The password is stored as a bcrypt hash,
// never in plain text.
func (s *Service) Signup(ctx context.Context, name, email, password string) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.users.Create(ctx, name, email, string(hash))
	if err != nil {
		return nil, err
	}

	slog.Info("User registered", "user_id", user.ID, "email", user.Email)
	return user, nil
}

// Signin verifies credentials and returns the matching user. Unknown emails
// and wrong passwords both map to ErrInvalidCredentials so responses do not
// reveal which accounts exist.
func (s *Service) Signin(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	return user, nil
}

// GetUserByID retrieves a user by internal ID.
func (s *Service) GetUserByID(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	return s.users.GetByID(ctx, userID)
}

// ListUsers retrieves all registered users.
func (s *Service) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

// SubmitFeedback classifies the comment and stores the feedback entry for the
// given user. The stored sentiment is always the classifier's prediction;
// callers never choose the label.
func (s *Service) SubmitFeedback(ctx context.Context, userID uuid.UUID, rating int, comment string) (*domain.Feedback, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	sentiment := s.classifier.Classify(comment)
	metrics.ClassificationDuration.Observe(time.Since(start).Seconds())

	if pr, ok := s.classifier.(probabilityReporter); ok && slog.Default().Enabled(ctx, slog.LevelDebug) {
		slog.Debug("Classified feedback comment",
			"user_id", user.ID,
			"sentiment", sentiment,
			"probabilities", pr.Probabilities(comment),
		)
	}

	fb, err := s.feedbacks.Insert(ctx, user.ID, rating, comment, sentiment)
	if err != nil {
		return nil, err
	}

	metrics.FeedbackSubmissionsTotal.WithLabelValues(string(sentiment)).Inc()
	slog.Info("Feedback submitted",
		"feedback_id", fb.ID,
		"user_id", user.ID,
		"rating", rating,
		"sentiment", sentiment,
	)
	return fb, nil
}

// ListUserFeedback retrieves all feedback submitted by one user, newest first.
// The user must exist.
func (s *Service) ListUserFeedback(ctx context.Context, userID uuid.UUID) ([]domain.Feedback, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.feedbacks.ListByUser(ctx, userID)
}

// ListAllFeedback retrieves every stored feedback entry, newest first.
func (s *Service) ListAllFeedback(ctx context.Context) ([]domain.Feedback, error) {
	return s.feedbacks.ListAll(ctx)
}

// SentimentSummary aggregates all stored sentiment labels. Concurrent
// requests collapse into a single computation via singleflight.
func (s *Service) SentimentSummary(ctx context.Context) (domain.Summary, error) {
	result, err, _ := s.summaryGroup.Do("all", func() (any, error) {
		labels, err := s.feedbacks.ListSentiments(ctx)
		if err != nil {
			return domain.Summary{}, err
		}
		metrics.SummaryRequestsTotal.Inc()
		return report.Summarize(labels), nil
	})
	if err != nil {
		return domain.Summary{}, err
	}
	return result.(domain.Summary), nil
}

// UserSentimentSummary aggregates the sentiment labels of one user's
// feedback. The user must exist.
func (s *Service) UserSentimentSummary(ctx context.Context, userID uuid.UUID) (domain.Summary, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return domain.Summary{}, err
	}

	result, err, _ := s.summaryGroup.Do("user:"+userID.String(), func() (any, error) {
		labels, err := s.feedbacks.ListSentimentsByUser(ctx, userID)
		if err != nil {
			return domain.Summary{}, err
		}
		metrics.SummaryRequestsTotal.Inc()
		return report.Summarize(labels), nil
	})
	if err != nil {
		return domain.Summary{}, err
	}
	return result.(domain.Summary), nil
}
