package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/birthdaybook/birthday-api/internal/core/domain"
	"github.com/birthdaybook/birthday-api/internal/core/ports"
)

// AuthService implements account management and token sessions.
type AuthService struct {
	repo   ports.UserRepository
	tokens TokenConfig
	log    zerolog.Logger
	now    func() time.Time
}

func NewAuthService(repo ports.UserRepository, tokens TokenConfig, log zerolog.Logger) *AuthService {
	if tokens.AccessTTL <= 0 {
		tokens.AccessTTL = 24 * time.Hour
	}
	if tokens.RefreshTTL <= 0 {
		tokens.RefreshTTL = 10 * 24 * time.Hour
	}
	return &AuthService{repo: repo, tokens: tokens, log: log, now: time.Now}
}

func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	username := strings.TrimSpace(in.Username)
	email := normalizeEmail(in.Email)
	if username == "" || email == "" || strings.TrimSpace(in.Password) == "" {
		return nil, domain.Validation("username, email and password are required")
	}
	if err := checkPasswordLength(in.Password); err != nil {
		return nil, err
	}

	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("register: %w", err)
	}

	hash, err := hashPassword(in.Password)
	if errors.Is(err, domain.ErrValidation) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("register: hash password: %w", err)
	}

	now := s.now().UTC()
	created, err := s.repo.Create(ctx, &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", created.ID).Msg("user registered")
	return created, nil
}

func (s *AuthService) Login(ctx context.Context, in ports.LoginInput) (*ports.Session, error) {
	email := normalizeEmail(in.Email)
	username := strings.TrimSpace(in.Username)
	if (email == "" && username == "") || strings.TrimSpace(in.Password) == "" {
		return nil, domain.Validation("username or email and password are required")
	}

	var (
		user *domain.User
		err  error
	)
	if email != "" {
		user, err = s.repo.FindByEmail(ctx, email)
	} else {
		user, err = s.repo.FindByUsername(ctx, username)
	}
	if err != nil {
		return nil, err
	}

	if !passwordMatches(user.PasswordHash, in.Password) {
		return nil, domain.Unauthorized("invalid credentials")
	}

	pair, err := issueTokenPair(s.tokens, user.ID, s.now())
	if err != nil {
		return nil, fmt.Errorf("login: issue tokens: %w", err)
	}
	if err := s.repo.SetRefreshToken(ctx, user.ID, tokenDigest(pair.Refresh)); err != nil {
		return nil, fmt.Errorf("login: store refresh token: %w", err)
	}

	s.log.Info().Str("user_id", user.ID).Msg("user logged in")
	return &ports.Session{User: user, AccessToken: pair.Access, RefreshToken: pair.Refresh}, nil
}

// Refresh rotates the token pair. The presented refresh token must be the one
// currently stored for the user; once rotated or logged out it is rejected.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*ports.Session, error) {
	refreshToken = strings.TrimSpace(refreshToken)
	if refreshToken == "" {
		return nil, domain.Validation("refresh token is required")
	}

	userID, err := parseToken(s.tokens.RefreshSecret, refreshToken)
	if err != nil {
		return nil, domain.Unauthorized("invalid refresh token")
	}

	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	pair, err := issueTokenPair(s.tokens, user.ID, s.now())
	if err != nil {
		return nil, fmt.Errorf("refresh: issue tokens: %w", err)
	}

	swapped, err := s.repo.SwapRefreshToken(ctx, user.ID, tokenDigest(refreshToken), tokenDigest(pair.Refresh))
	if err != nil {
		return nil, fmt.Errorf("refresh: rotate refresh token: %w", err)
	}
	if !swapped {
		s.log.Warn().Str("user_id", user.ID).Msg("stale refresh token presented")
		return nil, domain.Unauthorized("refresh token is expired or used")
	}

	return &ports.Session{User: user, AccessToken: pair.Access, RefreshToken: pair.Refresh}, nil
}

// Logout revokes the stored refresh token. Calling it twice is harmless.
func (s *AuthService) Logout(ctx context.Context, userID string) error {
	err := s.repo.SetRefreshToken(ctx, userID, "")
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return fmt.Errorf("logout: %w", err)
	}
	s.log.Info().Str("user_id", userID).Msg("user logged out")
	return nil
}

func (s *AuthService) ChangePassword(ctx context.Context, userID string, in ports.ChangePasswordInput) error {
	if strings.TrimSpace(in.OldPassword) == "" || strings.TrimSpace(in.NewPassword) == "" || strings.TrimSpace(in.ConfirmPassword) == "" {
		return domain.Validation("old, new and confirm password are required")
	}
	if in.NewPassword != in.ConfirmPassword {
		return domain.Validation("new password and confirm password do not match")
	}
	if err := checkPasswordLength(in.NewPassword); err != nil {
		return err
	}

	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if !passwordMatches(user.PasswordHash, in.OldPassword) {
		return domain.Unauthorized("invalid old password")
	}

	hash, err := hashPassword(in.NewPassword)
	if errors.Is(err, domain.ErrValidation) {
		return err
	}
	if err != nil {
		return fmt.Errorf("change password: hash: %w", err)
	}
	if err := s.repo.SetPassword(ctx, userID, hash); err != nil {
		return err
	}

	s.log.Info().Str("user_id", userID).Msg("password changed")
	return nil
}

func (s *AuthService) UpdateAccount(ctx context.Context, userID string, changes ports.UserChanges) (*domain.User, error) {
	changes.Username = strings.TrimSpace(changes.Username)
	changes.Email = normalizeEmail(changes.Email)
	if changes.Username == "" && changes.Email == "" {
		return nil, domain.Validation("username or email is required")
	}

	if changes.Email != "" {
		existing, err := s.repo.FindByEmail(ctx, changes.Email)
		switch {
		case err == nil && existing.ID != userID:
			return nil, domain.ErrUserExists
		case err != nil && !errors.Is(err, domain.ErrUserNotFound):
			return nil, fmt.Errorf("update account: %w", err)
		}
	}

	return s.repo.Update(ctx, userID, changes)
}

func (s *AuthService) Authenticate(ctx context.Context, accessToken string) (*domain.User, error) {
	userID, err := parseToken(s.tokens.AccessSecret, accessToken)
	if err != nil {
		return nil, domain.Unauthorized("invalid access token")
	}
	return s.repo.FindByID(ctx, userID)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
