package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kwolosonovich/warbler/internal/middleware"
	"github.com/kwolosonovich/warbler/internal/repositories"
)

// LikeHandler handles HTTP requests related to likes on messages
type LikeHandler struct {
	likeRepository    repositories.LikeRepository
	messageRepository repositories.MessageRepository
	userRepository    repositories.UserRepository
}

// NewLikeHandler creates a new LikeHandler
func NewLikeHandler(likeRepo repositories.LikeRepository, messageRepo repositories.MessageRepository, userRepo repositories.UserRepository) *LikeHandler {
	return &LikeHandler{
		likeRepository:    likeRepo,
		messageRepository: messageRepo,
		userRepository:    userRepo,
	}
}

// RegisterLikeRoutes registers like-related routes; all require a session
func (h *LikeHandler) RegisterLikeRoutes(g *echo.Group, requireUser echo.MiddlewareFunc) {
	g.POST("/messages/:id/like", h.LikeMessage, requireUser)
	g.POST("/messages/:id/unlike", h.UnlikeMessage, requireUser)
	g.GET("/users/:id/likes", h.ShowLikedMessages, requireUser)
}

// LikeMessage records a like from the current user. Liking a message
// twice is a no-op.
func (h *LikeHandler) LikeMessage(c echo.Context) error {
	currentUser := middleware.CurrentUser(c)

	messageID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	if _, err := h.messageRepository.GetMessageByID(messageID); err != nil {
		return httpError(err)
	}

	if err := h.likeRepository.CreateLike(currentUser.ID, messageID); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"liked": true})
}

// UnlikeMessage removes the current user's like; absent likes are a no-op
func (h *LikeHandler) UnlikeMessage(c echo.Context) error {
	currentUser := middleware.CurrentUser(c)

	messageID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.likeRepository.DeleteLike(currentUser.ID, messageID); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"liked": false})
}

// ShowLikedMessages lists the messages a user has liked
func (h *LikeHandler) ShowLikedMessages(c echo.Context) error {
	userID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	if _, err := h.userRepository.GetUserByID(userID); err != nil {
		return httpError(err)
	}

	messages, err := h.likeRepository.GetLikedMessages(userID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, messages)
}
