package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/birthdaybook/birthday-api/internal/core/domain"
)

// UserContextKey is where the Auth middleware stores the authenticated user.
const UserContextKey = "user"

// currentUser returns the user injected by the Auth middleware. Its absence
// means the route was registered without the middleware.
func currentUser(c echo.Context) (*domain.User, error) {
	user, ok := c.Get(UserContextKey).(*domain.User)
	if !ok || user == nil {
		return nil, domain.Unauthorized("unauthenticated")
	}
	return user, nil
}
