package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kwolosonovich/warbler/internal/models"
	"github.com/kwolosonovich/warbler/internal/repositories"
	"github.com/kwolosonovich/warbler/internal/sessions"
)

const currentUserKey = "currentUser"

// ResolveUser resolves the session cookie to a user and stores it on the
// request context. Requests without a valid session pass through as
// anonymous; gating happens in RequireUser so routes with optional auth
// can share this middleware.
func ResolveUser(store sessions.Store, users repositories.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(sessions.CookieName)
			if err != nil || cookie.Value == "" {
				return next(c)
			}

			userID, err := store.Get(c.Request().Context(), cookie.Value)
			if err != nil {
				return echo.NewHTTPError(http.StatusInternalServerError, "Session lookup failed")
			}
			if userID == 0 {
				return next(c)
			}

			user, err := users.GetUserByID(userID)
			if err != nil {
				// A session can outlive its account; treat it as anonymous.
				if errors.Is(err, models.ErrNotFound) {
					return next(c)
				}
				return echo.NewHTTPError(http.StatusInternalServerError, "User lookup failed")
			}

			c.Set(currentUserKey, user)
			return next(c)
		}
	}
}

// RequireUser rejects requests that did not resolve to a logged-in user
func RequireUser() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if CurrentUser(c) == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Access unauthorized")
			}
			return next(c)
		}
	}
}

// CurrentUser returns the user resolved for this request, or nil for an
// anonymous caller
func CurrentUser(c echo.Context) *models.User {
	user, _ := c.Get(currentUserKey).(*models.User)
	return user
}
