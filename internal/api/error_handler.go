package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/birthdaybook/birthday-api/internal/api/handler"
	"github.com/birthdaybook/birthday-api/internal/core/domain"
)

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps domain error kinds to their HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders the error envelope: {"statusCode", "data": null, "message", "success": false, "errors"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg, details := resolveError(err, log, c)
		if details == nil {
			details = []string{}
		}
		body := handler.ErrorEnvelope{
			StatusCode: code,
			Message:    msg,
			Errors:     details,
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, body)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string, []string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		if he.Internal != nil {
			log.Debug().Err(he.Internal).Str("path", c.Path()).Msg("request rejected")
		}
		return he.Code, fmt.Sprintf("%v", he.Message), nil
	}

	var de *domain.Error
	if errors.As(err, &de) {
		switch {
		case errors.Is(de.Kind, domain.ErrValidation), errors.Is(de.Kind, domain.ErrConflict):
			return http.StatusBadRequest, de.Error(), de.Details
		case errors.Is(de.Kind, domain.ErrUnauthorized):
			return http.StatusUnauthorized, de.Error(), de.Details
		case errors.Is(de.Kind, domain.ErrNotFound):
			return http.StatusNotFound, de.Error(), de.Details
		}
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Str("request_id", c.Response().Header().Get(echo.HeaderXRequestID)).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error", nil
}
