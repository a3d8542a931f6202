package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/kwolosonovich/warbler/internal/middleware"
	"github.com/kwolosonovich/warbler/internal/repositories"
)

// FeedHandler composes the home timeline from the social graph and the
// message store
type FeedHandler struct {
	messageRepository repositories.MessageRepository
	followRepository  repositories.FollowRepository
	feedLimit         int
}

// NewFeedHandler creates a new FeedHandler
func NewFeedHandler(messageRepo repositories.MessageRepository, followRepo repositories.FollowRepository, feedLimit int) *FeedHandler {
	return &FeedHandler{
		messageRepository: messageRepo,
		followRepository:  followRepo,
		feedLimit:         feedLimit,
	}
}

// RegisterFeedRoutes registers the home route
func (h *FeedHandler) RegisterFeedRoutes(g *echo.Group) {
	g.GET("/", h.Home)
}

// Home returns the viewer's feed: the most recent messages from users
// they follow, or the global most recent messages when they follow
// nobody yet. Anonymous callers get the landing payload instead.
func (h *FeedHandler) Home(c echo.Context) error {
	currentUser := middleware.CurrentUser(c)
	if currentUser == nil {
		return c.JSON(http.StatusOK, echo.Map{
			"anonymous": true,
			"message":   "Sign up or log in to see your feed",
		})
	}

	limit := h.feedLimit
	if raw := c.QueryParam("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 && n < limit {
			limit = n
		}
	}

	followedIDs, err := h.followRepository.GetFollowingIDs(currentUser.ID)
	if err != nil {
		return httpError(err)
	}

	if len(followedIDs) == 0 {
		messages, err := h.messageRepository.RecentMessages(limit)
		if err != nil {
			return httpError(err)
		}
		return c.JSON(http.StatusOK, echo.Map{
			"messages": messages,
			"notice":   "Start following users to create a custom feed",
		})
	}

	messages, err := h.messageRepository.MessagesByAuthors(followedIDs, limit)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"messages": messages})
}
