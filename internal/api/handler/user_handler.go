package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/birthdaybook/birthday-api/internal/api/metrics"
	"github.com/birthdaybook/birthday-api/internal/core/domain"
	"github.com/birthdaybook/birthday-api/internal/core/ports"
)

const (
	accessTokenCookie  = "accessToken"
	refreshTokenCookie = "refreshToken"
)

// CookieConfig controls the session cookies set on login and refresh.
type CookieConfig struct {
	Secure     bool
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

type UserHandler struct {
	authService ports.AuthService
	cookies     CookieConfig
}

func NewUserHandler(authService ports.AuthService, cookies CookieConfig) *UserHandler {
	return &UserHandler{authService: authService, cookies: cookies}
}

type registerRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,max=72"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required_without=Email"`
	Email    string `json:"email"    validate:"omitempty,email"`
	Password string `json:"password" validate:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type changePasswordRequest struct {
	OldPassword     string `json:"oldPassword"     validate:"required"`
	NewPassword     string `json:"newPassword"     validate:"required,max=72"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=NewPassword"`
}

type changeAccountRequest struct {
	Username string `json:"username"`
	Email    string `json:"email" validate:"omitempty,email"`
}

type sessionResponse struct {
	User         *domain.User `json:"user"`
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
}

func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domain.Validation("request body is missing or invalid")
	}
	return c.Validate(req)
}

// Register creates a new user account.
//
// @Summary      Register a new user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "User registration details"
// @Success      200   {object}  Envelope{data=domain.User}
// @Failure      400   {object}  ErrorEnvelope
// @Failure      500   {object}  ErrorEnvelope
// @Router       /users/register [post]
func (h *UserHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := bindAndValidate(c, &req); err != nil {
		metrics.RegistrationsTotal.WithLabelValues(metrics.Result(err)).Inc()
		return err
	}

	user, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	metrics.RegistrationsTotal.WithLabelValues(metrics.Result(err)).Inc()
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, user, "User registered successfully")
}

// Login authenticates a user by username or email and starts a session.
//
// @Summary      Login
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  Envelope{data=sessionResponse}
// @Failure      400   {object}  ErrorEnvelope
// @Failure      401   {object}  ErrorEnvelope
// @Failure      404   {object}  ErrorEnvelope
// @Router       /users/login [post]
func (h *UserHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bindAndValidate(c, &req); err != nil {
		metrics.LoginsTotal.WithLabelValues(metrics.Result(err)).Inc()
		return err
	}

	session, err := h.authService.Login(c.Request().Context(), ports.LoginInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	metrics.LoginsTotal.WithLabelValues(metrics.Result(err)).Inc()
	if err != nil {
		return err
	}

	h.setSessionCookies(c, session)
	return respond(c, http.StatusOK, sessionResponse{
		User:         session.User,
		AccessToken:  session.AccessToken,
		RefreshToken: session.RefreshToken,
	}, "User logged in successfully")
}

// Logout revokes the refresh token and clears the session cookies.
//
// @Summary      Logout
// @Tags         users
// @Produce      json
// @Security     CookieAuth
// @Security     BearerAuth
// @Success      200   {object}  Envelope
// @Failure      401   {object}  ErrorEnvelope
// @Router       /users/logout [post]
func (h *UserHandler) Logout(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	if err := h.authService.Logout(c.Request().Context(), user.ID); err != nil {
		return err
	}

	h.clearSessionCookies(c)
	return respond(c, http.StatusOK, struct{}{}, "User logged out successfully")
}

// RefreshAccessToken rotates the token pair. The refreshToken cookie takes
// precedence; the body's refreshToken is read only when the cookie is absent
// or empty, so a stale cookie wins over a token in the body.
//
// @Summary      Rotate session tokens
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Security     BearerAuth
// @Param        body  body      refreshRequest  false  "Refresh token when not sent as a cookie"
// @Success      200   {object}  Envelope{data=sessionResponse}
// @Failure      400   {object}  ErrorEnvelope
// @Failure      401   {object}  ErrorEnvelope
// @Failure      404   {object}  ErrorEnvelope
// @Router       /users/accessToken [post]
func (h *UserHandler) RefreshAccessToken(c echo.Context) error {
	token := ""
	if cookie, err := c.Cookie(refreshTokenCookie); err == nil {
		token = cookie.Value
	}
	if token == "" {
		var req refreshRequest
		_ = c.Bind(&req)
		token = req.RefreshToken
	}

	session, err := h.authService.Refresh(c.Request().Context(), token)
	metrics.TokenRefreshesTotal.WithLabelValues(metrics.Result(err)).Inc()
	if err != nil {
		return err
	}

	h.setSessionCookies(c, session)
	return respond(c, http.StatusOK, sessionResponse{
		User:         session.User,
		AccessToken:  session.AccessToken,
		RefreshToken: session.RefreshToken,
	}, "Session restored successfully")
}

// ChangePassword replaces the current user's password.
//
// @Summary      Change password
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Security     BearerAuth
// @Param        body  body      changePasswordRequest  true  "Old and new password"
// @Success      200   {object}  Envelope
// @Failure      400   {object}  ErrorEnvelope
// @Failure      401   {object}  ErrorEnvelope
// @Router       /users/passwordChange [patch]
func (h *UserHandler) ChangePassword(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req changePasswordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.authService.ChangePassword(c.Request().Context(), user.ID, ports.ChangePasswordInput{
		OldPassword:     req.OldPassword,
		NewPassword:     req.NewPassword,
		ConfirmPassword: req.ConfirmPassword,
	}); err != nil {
		return err
	}

	return respond(c, http.StatusOK, struct{}{}, "Password changed successfully")
}

// ChangeAccountDetails updates the current user's username and/or email.
//
// @Summary      Change account details
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Security     BearerAuth
// @Param        body  body      changeAccountRequest  true  "New username and/or email"
// @Success      200   {object}  Envelope{data=domain.User}
// @Failure      400   {object}  ErrorEnvelope
// @Failure      401   {object}  ErrorEnvelope
// @Failure      404   {object}  ErrorEnvelope
// @Router       /users/changeAccount-details [patch]
func (h *UserHandler) ChangeAccountDetails(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req changeAccountRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	updated, err := h.authService.UpdateAccount(c.Request().Context(), user.ID, ports.UserChanges{
		Username: req.Username,
		Email:    req.Email,
	})
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, updated, "User details changed successfully")
}

func (h *UserHandler) setSessionCookies(c echo.Context, s *ports.Session) {
	c.SetCookie(h.cookie(accessTokenCookie, s.AccessToken, h.cookies.AccessTTL))
	c.SetCookie(h.cookie(refreshTokenCookie, s.RefreshToken, h.cookies.RefreshTTL))
}

func (h *UserHandler) clearSessionCookies(c echo.Context) {
	for _, name := range []string{accessTokenCookie, refreshTokenCookie} {
		ck := h.cookie(name, "", 0)
		ck.MaxAge = -1
		ck.Expires = time.Unix(0, 0)
		c.SetCookie(ck)
	}
}

func (h *UserHandler) cookie(name, value string, ttl time.Duration) *http.Cookie {
	ck := &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookies.Secure,
		SameSite: http.SameSiteLaxMode,
	}
	if h.cookies.Secure {
		// Cross-site frontends only receive the cookie with SameSite=None.
		ck.SameSite = http.SameSiteNoneMode
	}
	if ttl > 0 {
		ck.MaxAge = int(ttl.Seconds())
	}
	return ck
}
