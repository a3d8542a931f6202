package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/kwolosonovich/warbler/internal/credentials"
	"github.com/kwolosonovich/warbler/internal/metrics"
	"github.com/kwolosonovich/warbler/internal/models"
	"github.com/kwolosonovich/warbler/internal/repositories"
	"github.com/kwolosonovich/warbler/internal/sessions"
)

// AuthHandler handles signup, login, and logout
type AuthHandler struct {
	userRepository repositories.UserRepository
	credentials    *credentials.Store
	sessions       sessions.Store
	metrics        *metrics.Metrics
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(userRepo repositories.UserRepository, creds *credentials.Store, sessionStore sessions.Store, m *metrics.Metrics) *AuthHandler {
	return &AuthHandler{
		userRepository: userRepo,
		credentials:    creds,
		sessions:       sessionStore,
		metrics:        m,
	}
}

// RegisterAuthRoutes registers authentication-related routes
func (h *AuthHandler) RegisterAuthRoutes(g *echo.Group) {
	g.POST("/signup", h.Signup)
	g.POST("/login", h.Login)
	g.GET("/logout", h.Logout)
}

// Signup creates a new account and starts a session for it. A duplicate
// username or email comes back as 409 with nothing persisted, so the
// client can re-present the form.
func (h *AuthHandler) Signup(c echo.Context) error {
	var req models.SignupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	hash, err := credentials.Hash(req.Password)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to hash password")
	}

	user := &models.User{
		Username:       req.Username,
		Email:          req.Email,
		PasswordHash:   hash,
		ImageURL:       req.ImageURL,
		HeaderImageURL: req.HeaderImageURL,
		Location:       req.Location,
		Bio:            req.Bio,
	}
	if user.ImageURL == "" {
		user.ImageURL = models.DefaultImageURL
	}
	if user.HeaderImageURL == "" {
		user.HeaderImageURL = models.DefaultHeaderImageURL
	}

	if err := h.userRepository.CreateUser(user); err != nil {
		return httpError(err)
	}

	if err := h.startSession(c, user.ID); err != nil {
		return err
	}

	if h.metrics != nil {
		h.metrics.Signups.WithLabelValues(c.Path()).Inc()
	}
	logrus.WithField("user_id", user.ID).Info("user signed up")

	return c.JSON(http.StatusCreated, user)
}

// Login verifies credentials and starts a session. An unknown username and
// a wrong password produce the same response.
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.credentials.Verify(req.Username, req.Password)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Login failed")
	}
	if user == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid credentials.")
	}

	if err := h.startSession(c, user.ID); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, user)
}

// Logout invalidates the current session, if any
func (h *AuthHandler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(sessions.CookieName); err == nil && cookie.Value != "" {
		if err := h.sessions.Delete(c.Request().Context(), cookie.Value); err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "Logout failed")
		}
	}
	clearSessionCookie(c)
	return c.JSON(http.StatusOK, echo.Map{"message": "Logged you out"})
}

func (h *AuthHandler) startSession(c echo.Context, userID uint) error {
	token, err := h.sessions.Create(c.Request().Context(), userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to start session")
	}
	c.SetCookie(&http.Cookie{
		Name:     sessions.CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

func clearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     sessions.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
}
