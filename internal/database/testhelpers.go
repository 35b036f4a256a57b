package database

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pscheid92/feedbackpulse/internal/domain"
	"github.com/stretchr/testify/require"
)

// CreateTestUser is a helper that creates a user with default values for testing.
// Returns the created user.
func CreateTestUser(t *testing.T, pool *pgxpool.Pool, email string) *domain.User {
	t.Helper()

	repo := NewUserRepo(pool)
	ctx := context.Background()

	user, err := repo.Create(ctx, "Test User", email, "$2a$10$testhashtesthashtesthashtesthashtesthashtesthashtest")
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, user.ID)

	return user
}

// CreateTestFeedback is a helper that inserts a feedback entry for testing.
func CreateTestFeedback(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, rating int, comment string, sentiment domain.Sentiment) *domain.Feedback {
	t.Helper()

	repo := NewFeedbackRepo(pool)
	ctx := context.Background()

	fb, err := repo.Insert(ctx, userID, rating, comment, sentiment)
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, fb.ID)

	return fb
}
