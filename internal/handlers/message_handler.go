package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kwolosonovich/warbler/internal/metrics"
	"github.com/kwolosonovich/warbler/internal/middleware"
	"github.com/kwolosonovich/warbler/internal/models"
	"github.com/kwolosonovich/warbler/internal/repositories"
)

// MessageHandler handles HTTP requests related to messages
type MessageHandler struct {
	messageRepository repositories.MessageRepository
	likeRepository    repositories.LikeRepository
	metrics           *metrics.Metrics
}

// NewMessageHandler creates a new MessageHandler
func NewMessageHandler(messageRepo repositories.MessageRepository, likeRepo repositories.LikeRepository, m *metrics.Metrics) *MessageHandler {
	return &MessageHandler{
		messageRepository: messageRepo,
		likeRepository:    likeRepo,
		metrics:           m,
	}
}

// RegisterMessageRoutes registers message-related routes
func (h *MessageHandler) RegisterMessageRoutes(g *echo.Group, requireUser echo.MiddlewareFunc) {
	g.POST("/messages/new", h.CreateMessage, requireUser)
	g.GET("/messages/:id", h.ShowMessage)
	g.POST("/messages/:id/delete", h.DeleteMessage, requireUser)
}

// CreateMessage posts a new message owned by the current user
func (h *MessageHandler) CreateMessage(c echo.Context) error {
	currentUser := middleware.CurrentUser(c)

	var req models.CreateMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	message := &models.Message{
		Text:   req.Text,
		UserID: currentUser.ID,
	}
	if err := h.messageRepository.CreateMessage(message); err != nil {
		return httpError(err)
	}

	if h.metrics != nil {
		h.metrics.MessagesSent.WithLabelValues(c.Path()).Inc()
	}
	return c.JSON(http.StatusCreated, message)
}

// ShowMessage returns a message with its like count
func (h *MessageHandler) ShowMessage(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	message, err := h.messageRepository.GetMessageByID(id)
	if err != nil {
		return httpError(err)
	}

	likeCount, err := h.likeRepository.GetLikeCount(id)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"message": message, "like_count": likeCount})
}

// DeleteMessage removes the current user's own message. Deleting an id
// that is already gone is a no-op; deleting another user's message is
// forbidden.
func (h *MessageHandler) DeleteMessage(c echo.Context) error {
	currentUser := middleware.CurrentUser(c)

	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.messageRepository.DeleteMessage(id, currentUser.ID); err != nil {
		return httpError(err)
	}

	return c.NoContent(http.StatusNoContent)
}
