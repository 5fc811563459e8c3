package ports

import (
	"context"

	"github.com/birthdaybook/birthday-api/internal/core/domain"
)

// UserChanges lists the account fields to overwrite; empty fields are left alone.
type UserChanges struct {
	Username string
	Email    string
}

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	Update(ctx context.Context, id string, changes UserChanges) (*domain.User, error)
	SetPassword(ctx context.Context, id, passwordHash string) error
	// SetRefreshToken stores the refresh token digest; an empty digest unsets it.
	SetRefreshToken(ctx context.Context, id, digest string) error
	// SwapRefreshToken replaces the digest only while it still equals current
	// and reports whether it did.
	SwapRefreshToken(ctx context.Context, id, current, next string) (bool, error)
}
