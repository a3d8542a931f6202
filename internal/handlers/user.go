package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/kwolosonovich/warbler/internal/credentials"
	"github.com/kwolosonovich/warbler/internal/middleware"
	"github.com/kwolosonovich/warbler/internal/models"
	"github.com/kwolosonovich/warbler/internal/repositories"
	"github.com/kwolosonovich/warbler/internal/sessions"
)

// UserHandler handles HTTP requests related to users
type UserHandler struct {
	userRepository    repositories.UserRepository
	messageRepository repositories.MessageRepository
	followRepository  repositories.FollowRepository
	sessions          sessions.Store
	pageMessageLimit  int
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userRepo repositories.UserRepository, messageRepo repositories.MessageRepository, followRepo repositories.FollowRepository, sessionStore sessions.Store, pageMessageLimit int) *UserHandler {
	return &UserHandler{
		userRepository:    userRepo,
		messageRepository: messageRepo,
		followRepository:  followRepo,
		sessions:          sessionStore,
		pageMessageLimit:  pageMessageLimit,
	}
}

// RegisterUserRoutes registers user directory routes. requireUser gates
// the routes that need a session.
func (h *UserHandler) RegisterUserRoutes(g *echo.Group, requireUser echo.MiddlewareFunc) {
	g.GET("/users", h.ListUsers)
	g.GET("/users/:id", h.ShowUser)
	g.GET("/users/:id/following", h.ShowFollowing, requireUser)
	g.GET("/users/:id/followers", h.ShowFollowers, requireUser)
	g.POST("/users/profile", h.UpdateProfile, requireUser)
	g.POST("/users/delete", h.DeleteAccount, requireUser)
}

// ListUsers lists users, optionally filtered by a 'q' substring
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.userRepository.SearchUsers(c.QueryParam("q"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, users)
}

// ShowUser returns a user's profile plus their most recent messages
func (h *UserHandler) ShowUser(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	user, err := h.userRepository.GetUserByID(id)
	if err != nil {
		return httpError(err)
	}

	messages, err := h.messageRepository.GetMessagesByUser(id, h.pageMessageLimit)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"user": user, "messages": messages})
}

// ShowFollowing lists the users this user follows
func (h *UserHandler) ShowFollowing(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	if _, err := h.userRepository.GetUserByID(id); err != nil {
		return httpError(err)
	}
	users, err := h.followRepository.GetFollowing(id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, users)
}

// ShowFollowers lists the users following this user
func (h *UserHandler) ShowFollowers(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	if _, err := h.userRepository.GetUserByID(id); err != nil {
		return httpError(err)
	}
	users, err := h.followRepository.GetFollowers(id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, users)
}

// UpdateProfile edits the current user's own record. The request must
// carry the current password; a new password, when present, is re-hashed
// before persisting.
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	user := middleware.CurrentUser(c)

	var req models.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if !credentials.Check(user.PasswordHash, req.Password) {
		return echo.NewHTTPError(http.StatusUnauthorized, "Access unauthorized")
	}

	if req.Email != "" {
		user.Email = req.Email
	}
	if req.ImageURL != "" {
		user.ImageURL = req.ImageURL
	}
	if req.HeaderImageURL != "" {
		user.HeaderImageURL = req.HeaderImageURL
	}
	if req.Location != "" {
		user.Location = req.Location
	}
	if req.Bio != "" {
		user.Bio = req.Bio
	}
	if req.NewPassword != "" {
		hash, err := credentials.Hash(req.NewPassword)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to hash password")
		}
		user.PasswordHash = hash
	}

	if err := h.userRepository.UpdateUser(user); err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, user)
}

// DeleteAccount deletes the current user and everything they own, and
// ends their session
func (h *UserHandler) DeleteAccount(c echo.Context) error {
	user := middleware.CurrentUser(c)

	if cookie, err := c.Cookie(sessions.CookieName); err == nil && cookie.Value != "" {
		if err := h.sessions.Delete(c.Request().Context(), cookie.Value); err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "Logout failed")
		}
	}
	clearSessionCookie(c)

	if err := h.userRepository.DeleteUser(user.ID); err != nil {
		return httpError(err)
	}

	logrus.WithField("user_id", user.ID).Info("account deleted")
	return c.NoContent(http.StatusNoContent)
}
