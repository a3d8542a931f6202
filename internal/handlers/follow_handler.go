package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kwolosonovich/warbler/internal/metrics"
	"github.com/kwolosonovich/warbler/internal/middleware"
	"github.com/kwolosonovich/warbler/internal/repositories"
)

// FollowHandler handles follow/unfollow HTTP requests
type FollowHandler struct {
	followRepository repositories.FollowRepository
	userRepository   repositories.UserRepository
	metrics          *metrics.Metrics
}

// NewFollowHandler creates a new FollowHandler
func NewFollowHandler(followRepo repositories.FollowRepository, userRepo repositories.UserRepository, m *metrics.Metrics) *FollowHandler {
	return &FollowHandler{
		followRepository: followRepo,
		userRepository:   userRepo,
		metrics:          m,
	}
}

// RegisterFollowRoutes registers follow-related routes; all require a session
func (h *FollowHandler) RegisterFollowRoutes(g *echo.Group, requireUser echo.MiddlewareFunc) {
	g.POST("/users/follow/:id", h.Follow, requireUser)
	g.POST("/users/stop-following/:id", h.StopFollowing, requireUser)
}

// Follow makes the current user follow the target. Following someone
// already followed is a no-op.
func (h *FollowHandler) Follow(c echo.Context) error {
	currentUser := middleware.CurrentUser(c)

	targetID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	if _, err := h.userRepository.GetUserByID(targetID); err != nil {
		return httpError(err)
	}

	if err := h.followRepository.CreateFollow(currentUser.ID, targetID); err != nil {
		return httpError(err)
	}

	if h.metrics != nil {
		h.metrics.FollowRequests.WithLabelValues(c.Path()).Inc()
	}
	return c.JSON(http.StatusOK, echo.Map{"following": true})
}

// StopFollowing removes the follow edge; absent edges are a no-op
func (h *FollowHandler) StopFollowing(c echo.Context) error {
	currentUser := middleware.CurrentUser(c)

	targetID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.followRepository.DeleteFollow(currentUser.ID, targetID); err != nil {
		return httpError(err)
	}

	if h.metrics != nil {
		h.metrics.UnfollowRequests.WithLabelValues(c.Path()).Inc()
	}
	return c.JSON(http.StatusOK, echo.Map{"following": false})
}
