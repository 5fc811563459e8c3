package api

import (
	"strings"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/birthdaybook/birthday-api/docs" // registers the swagger document
	"github.com/birthdaybook/birthday-api/internal/api/handler"
	"github.com/birthdaybook/birthday-api/internal/api/middleware"
	"github.com/birthdaybook/birthday-api/internal/core/ports"
	"github.com/birthdaybook/birthday-api/internal/infrastructure/http/handlers"
)

// Deps is everything the router needs; main wires the concrete types.
type Deps struct {
	Log       zerolog.Logger
	Auth      ports.AuthService
	Birthdays ports.BirthdayService
	Cookies   handler.CookieConfig

	// Readiness probes; the route answers 200 when empty.
	Dependencies map[string]handlers.Pinger

	// CORSOrigins is a comma-separated allow list.
	CORSOrigins string
	BodyLimit   string

	// Registerer and Gatherer back the HTTP metrics. A private registry is
	// used when nil.
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	if d.Registerer == nil || d.Gatherer == nil {
		reg := prometheus.NewRegistry()
		d.Registerer, d.Gatherer = reg, reg
	}

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(d.Log))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     splitOrigins(d.CORSOrigins),
		AllowCredentials: true,
	}))
	if d.BodyLimit != "" {
		e.Use(echomiddleware.BodyLimit(d.BodyLimit))
	}
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "http",
		Registerer: d.Registerer,
		Skipper: func(c echo.Context) bool {
			return strings.HasPrefix(c.Path(), "/health") || c.Path() == "/metrics"
		},
	}))

	// --- Operational routes (no auth required) ---
	health := handlers.NewHealthHandler()
	ready := handlers.NewHealthDependenciesHandler(d.Dependencies)
	e.GET("/health", health.Liveness)
	e.GET("/health/ready", ready.Readiness)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: d.Gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	auth := middleware.Auth(d.Auth)
	v2 := e.Group("/api/v2")

	// --- Users ---
	users := handler.NewUserHandler(d.Auth, d.Cookies)
	u := v2.Group("/users")
	u.POST("/register", users.Register)
	u.POST("/login", users.Login)
	u.POST("/logout", users.Logout, auth)
	u.POST("/accessToken", users.RefreshAccessToken, auth)
	u.PATCH("/passwordChange", users.ChangePassword, auth)
	u.PATCH("/changeAccount-details", users.ChangeAccountDetails, auth)

	// --- Birthdays ---
	birthdays := handler.NewBirthdayHandler(d.Birthdays)
	b := v2.Group("/birthdays", auth)
	b.GET("/upcomingBirthdays", birthdays.ListUpcoming)
	b.POST("/registerBirthday", birthdays.Register)
	b.GET("/c/:birthdayId", birthdays.Get)
	b.POST("/c/:birthdayId", birthdays.Delete)
	b.PATCH("/c/:birthdayId", birthdays.Update)

	return e
}

func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogRemoteIP:  true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			switch {
			case v.Status >= 500:
				ev = log.Error().Err(v.Error)
			case v.Status >= 400:
				ev = log.Warn()
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Str("remote_ip", v.RemoteIP).
				Msg("request")
			return nil
		},
	})
}

func splitOrigins(s string) []string {
	var out []string
	for _, o := range strings.Split(s, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}
