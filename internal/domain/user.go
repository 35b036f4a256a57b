package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID    uuid.UUID
	Name  string
	Email string
	// PasswordHash is the bcrypt hash of the user's password. It never leaves
	// the repository/app layers; HTTP responses carry the User without it.
	PasswordHash string
	CreatedAt    time.Time
}

type UserRepository interface {
	Create(ctx context.Context, name, email, passwordHash string) (*User, error)
	GetByID(ctx context.Context, userID uuid.UUID) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context) ([]User, error)
}
