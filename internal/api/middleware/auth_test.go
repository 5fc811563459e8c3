package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/birthdaybook/birthday-api/internal/core/domain"
)

type stubAuthenticator struct {
	calls int
}

func (s *stubAuthenticator) Authenticate(_ context.Context, token string) (*domain.User, error) {
	s.calls++
	switch token {
	case "good-token":
		return &domain.User{ID: "user-1", Username: "alice"}, nil
	case "orphan-token":
		return nil, domain.ErrUserNotFound
	default:
		return nil, domain.Unauthorized("invalid access token")
	}
}

func runAuth(t *testing.T, auth Authenticator, prepare func(*http.Request)) (*domain.User, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	prepare(req)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen *domain.User
	handler := Auth(auth)(func(c echo.Context) error {
		seen, _ = c.Get("user").(*domain.User)
		return c.NoContent(http.StatusOK)
	})
	err := handler(c)
	return seen, err
}

func TestAuthMiddleware_BearerHeader(t *testing.T) {
	auth := &stubAuthenticator{}
	user, err := runAuth(t, auth, func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer good-token")
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user == nil || user.ID != "user-1" {
		t.Fatalf("expected user to be injected, got %+v", user)
	}
}

func TestAuthMiddleware_CookieWins(t *testing.T) {
	auth := &stubAuthenticator{}
	user, err := runAuth(t, auth, func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: "accessToken", Value: "good-token"})
		r.Header.Set("Authorization", "Bearer bad-token")
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user == nil {
		t.Fatalf("expected user from the cookie token")
	}
	if auth.calls != 1 {
		t.Fatalf("expected exactly one authentication, got %d", auth.calls)
	}
}

func TestAuthMiddleware_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		prepare func(*http.Request)
		wantErr error
	}{
		{"missing", func(*http.Request) {}, domain.ErrUnauthorized},
		{"wrong scheme", func(r *http.Request) { r.Header.Set("Authorization", "Token good-token") }, domain.ErrUnauthorized},
		{"empty bearer", func(r *http.Request) { r.Header.Set("Authorization", "Bearer ") }, domain.ErrUnauthorized},
		{"invalid", func(r *http.Request) { r.Header.Set("Authorization", "Bearer expired") }, domain.ErrUnauthorized},
		{"user gone", func(r *http.Request) { r.Header.Set("Authorization", "Bearer orphan-token") }, domain.ErrNotFound},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			user, err := runAuth(t, &stubAuthenticator{}, tc.prepare)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
			if user != nil {
				t.Fatalf("next must not run")
			}
		})
	}
}
