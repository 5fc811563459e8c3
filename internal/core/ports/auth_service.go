package ports

import (
	"context"

	"github.com/birthdaybook/birthday-api/internal/core/domain"
)

type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// LoginInput identifies the account by email or username; email wins when
// both are set.
type LoginInput struct {
	Username string
	Email    string
	Password string
}

type ChangePasswordInput struct {
	OldPassword     string
	NewPassword     string
	ConfirmPassword string
}

// Session is a freshly issued token pair and the user it belongs to.
type Session struct {
	User         *domain.User
	AccessToken  string
	RefreshToken string
}

// AuthService covers account management and token sessions.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	Login(ctx context.Context, in LoginInput) (*Session, error)
	Refresh(ctx context.Context, refreshToken string) (*Session, error)
	Logout(ctx context.Context, userID string) error
	ChangePassword(ctx context.Context, userID string, in ChangePasswordInput) error
	UpdateAccount(ctx context.Context, userID string, changes UserChanges) (*domain.User, error)
	// Authenticate resolves the user behind an access token.
	Authenticate(ctx context.Context, accessToken string) (*domain.User, error)
}
