package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/birthdaybook/birthday-api/internal/api/handler"
	"github.com/birthdaybook/birthday-api/internal/core/domain"
	"github.com/birthdaybook/birthday-api/internal/core/ports"
)

type fakeAuth struct {
	users map[string]*domain.User // by email
}

func (f *fakeAuth) Register(_ context.Context, in ports.RegisterInput) (*domain.User, error) {
	if _, ok := f.users[in.Email]; ok {
		return nil, domain.ErrUserExists
	}
	u := &domain.User{ID: "u1", Username: in.Username, Email: in.Email, PasswordHash: "hash:" + in.Password}
	f.users[in.Email] = u
	return u, nil
}

func (f *fakeAuth) Login(context.Context, ports.LoginInput) (*ports.Session, error) {
	return nil, domain.Unauthorized("invalid credentials")
}

func (f *fakeAuth) Refresh(context.Context, string) (*ports.Session, error) {
	return nil, domain.Unauthorized("invalid refresh token")
}

func (f *fakeAuth) Logout(context.Context, string) error { return nil }

func (f *fakeAuth) ChangePassword(context.Context, string, ports.ChangePasswordInput) error {
	return nil
}

func (f *fakeAuth) UpdateAccount(context.Context, string, ports.UserChanges) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func (f *fakeAuth) Authenticate(_ context.Context, token string) (*domain.User, error) {
	if token == "valid" {
		return &domain.User{ID: "u1", Username: "ana"}, nil
	}
	return nil, domain.Unauthorized("invalid access token")
}

type fakeBirthdays struct{}

func (fakeBirthdays) Register(_ context.Context, owner string, d time.Time) (*domain.Birthday, error) {
	return &domain.Birthday{ID: "b1", Owner: owner, Date: d}, nil
}

func (fakeBirthdays) Update(context.Context, string, time.Time) (*domain.Birthday, error) {
	return nil, domain.ErrBirthdayNotFound
}

func (fakeBirthdays) Delete(context.Context, string) error { return nil }

func (fakeBirthdays) GetByID(_ context.Context, id string) (*domain.BirthdayDetail, error) {
	if id == "bogus" {
		return nil, domain.Validation("invalid birthday id")
	}
	return nil, domain.ErrBirthdayNotFound
}

func (fakeBirthdays) ListUpcoming(context.Context, time.Time) ([]domain.UpcomingBirthday, error) {
	return []domain.UpcomingBirthday{}, nil
}

func newTestRouter() *echo.Echo {
	return NewRouter(Deps{
		Log:         zerolog.Nop(),
		Auth:        &fakeAuth{users: map[string]*domain.User{}},
		Birthdays:   fakeBirthdays{},
		Cookies:     handler.CookieConfig{Secure: true},
		CORSOrigins: "http://localhost:3000",
		BodyLimit:   "16K",
	})
}

func do(t *testing.T, e *echo.Echo, method, path, body string, prepare ...func(*http.Request)) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for _, p := range prepare {
		p(req)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var resp map[string]any
	if strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	}
	return rec, resp
}

func TestRouter_RegisterTwice(t *testing.T) {
	e := newTestRouter()
	body := `{"username":"ana","email":"a@x.com","password":"secret123"}`

	rec, resp := do(t, e, http.MethodPost, "/api/v2/users/register", body)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, resp["success"])
	assert.NotContains(t, rec.Body.String(), "secret123")
	assert.NotContains(t, rec.Body.String(), "hash:")

	rec, resp = do(t, e, http.MethodPost, "/api/v2/users/register", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, float64(400), resp["statusCode"])
	assert.Equal(t, false, resp["success"])
	assert.Nil(t, resp["data"])
	assert.Equal(t, "user already exists", resp["message"])
	assert.Equal(t, []any{}, resp["errors"])
}

func TestRouter_ValidationDetails(t *testing.T) {
	rec, resp := do(t, newTestRouter(), http.MethodPost, "/api/v2/users/register", `{"email":"nope"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Len(t, resp["errors"], 3)
}

func TestRouter_ProtectedRoutes(t *testing.T) {
	e := newTestRouter()

	rec, resp := do(t, e, http.MethodGet, "/api/v2/birthdays/upcomingBirthdays", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "unauthenticated", resp["message"])

	rec, _ = do(t, e, http.MethodGet, "/api/v2/birthdays/upcomingBirthdays", "", func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer expired")
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, resp = do(t, e, http.MethodGet, "/api/v2/birthdays/upcomingBirthdays", "", func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: "accessToken", Value: "valid"})
	})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []any{}, resp["data"])

	rec, _ = do(t, e, http.MethodPost, "/api/v2/users/logout", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_BirthdayErrors(t *testing.T) {
	e := newTestRouter()
	withToken := func(r *http.Request) { r.Header.Set("Authorization", "Bearer valid") }

	rec, _ := do(t, e, http.MethodGet, "/api/v2/birthdays/c/bogus", "", withToken)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, resp := do(t, e, http.MethodGet, "/api/v2/birthdays/c/64b7f0c2a1b2c3d4e5f60718", "", withToken)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "birthday not found", resp["message"])

	rec, _ = do(t, e, http.MethodPost, "/api/v2/birthdays/registerBirthday", `{"birthday":"1990-05-17"}`, withToken)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_UnknownRoute(t *testing.T) {
	rec, resp := do(t, newTestRouter(), http.MethodGet, "/api/v2/nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, false, resp["success"])
}

func TestRouter_OperationalRoutes(t *testing.T) {
	e := newTestRouter()

	rec, _ := do(t, e, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = do(t, e, http.MethodGet, "/health/ready", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	do(t, e, http.MethodPost, "/api/v2/users/login", `{"username":"ana","password":"x"}`)
	rec, _ = do(t, e, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "http_requests_total")
}
