package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/elcanhuseyn22/website/internal/auth"
	"github.com/elcanhuseyn22/website/internal/domain"
	"github.com/elcanhuseyn22/website/internal/forms"
	"github.com/elcanhuseyn22/website/internal/logger"
	"github.com/elcanhuseyn22/website/internal/metrics"
	"github.com/elcanhuseyn22/website/internal/middleware"
	"github.com/elcanhuseyn22/website/internal/password"
	"github.com/elcanhuseyn22/website/internal/repository"
)

// AuthHandler handles registration, login and logout.
type AuthHandler struct {
	users  repository.UserRepository
	hasher *password.Hasher
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(users repository.UserRepository, hasher *password.Hasher) *AuthHandler {
	return &AuthHandler{users: users, hasher: hasher}
}

// ShowRegister handles GET /register
func (h *AuthHandler) ShowRegister(c *gin.Context) {
	render(c, http.StatusOK, "register", gin.H{"form": forms.RegisterForm{}})
}

// Register handles POST /register
func (h *AuthHandler) Register(c *gin.Context) {
	var form forms.RegisterForm
	_ = c.ShouldBind(&form)

	if err := form.Validate(); err != nil {
		render(c, http.StatusBadRequest, "register", gin.H{
			"form":   forms.RegisterForm{Name: form.Name, Username: form.Username, Email: form.Email},
			"errors": forms.FieldErrors(err),
		})
		return
	}

	digest, err := h.hasher.Hash(form.Password)
	if err != nil {
		logger.WithRequestID(middleware.GetRequestID(c)).Error("Failed to hash password",
			slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process registration"})
		return
	}

	user := &domain.User{
		ID:           uuid.New().String(),
		Name:         form.Name,
		Username:     form.Username,
		Email:        form.Email,
		PasswordHash: digest,
	}

	if err := h.users.Create(c.Request.Context(), user); err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicateUsername):
			render(c, http.StatusBadRequest, "register", gin.H{
				"form":   forms.RegisterForm{Name: form.Name, Username: form.Username, Email: form.Email},
				"errors": map[string]string{"username": "this username is already taken"},
			})
		case errors.Is(err, domain.ErrDuplicateEmail):
			render(c, http.StatusBadRequest, "register", gin.H{
				"form":   forms.RegisterForm{Name: form.Name, Username: form.Username, Email: form.Email},
				"errors": map[string]string{"email": "this email is already registered"},
			})
		default:
			logger.WithRequestID(middleware.GetRequestID(c)).Error("Failed to create user",
				slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process registration"})
		}
		return
	}

	metrics.RegistrationsTotal.Inc()
	logger.WithUsername(user.Username).Info("User registered")

	auth.AddFlash(c, auth.FlashSuccess, "Registration completed successfully!")
	c.Redirect(http.StatusSeeOther, "/login")
}

// ShowLogin handles GET /login
func (h *AuthHandler) ShowLogin(c *gin.Context) {
	render(c, http.StatusOK, "login", gin.H{"form": forms.LoginForm{}})
}

// Login handles POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	var form forms.LoginForm
	_ = c.ShouldBind(&form)

	if err := form.Validate(); err != nil {
		render(c, http.StatusBadRequest, "login", gin.H{
			"form":   forms.LoginForm{Username: form.Username},
			"errors": forms.FieldErrors(err),
		})
		return
	}

	user, err := h.users.GetByUsername(c.Request.Context(), form.Username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			metrics.LoginsTotal.WithLabelValues("unknown_user").Inc()
			auth.AddFlash(c, auth.FlashDanger, "No such user was found!")
			c.Redirect(http.StatusSeeOther, "/login")
			return
		}
		logger.WithRequestID(middleware.GetRequestID(c)).Error("Failed to look up user",
			slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process login"})
		return
	}

	if !h.hasher.Verify(form.Password, user.PasswordHash) {
		metrics.LoginsTotal.WithLabelValues("wrong_password").Inc()
		auth.AddFlash(c, auth.FlashDanger, "Password is incorrect!")
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	if err := auth.SignIn(c, user); err != nil {
		logger.WithRequestID(middleware.GetRequestID(c)).Error("Failed to save session",
			slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process login"})
		return
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	logger.WithUsername(user.Username).Info("User logged in")

	auth.AddFlash(c, auth.FlashSuccess, "Logged in successfully!")
	c.Redirect(http.StatusSeeOther, "/")
}

// Logout handles GET /logout
func (h *AuthHandler) Logout(c *gin.Context) {
	username := auth.MustPrincipal(c).Username

	if err := auth.SignOut(c); err != nil {
		logger.WithRequestID(middleware.GetRequestID(c)).Error("Failed to clear session",
			slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to log out"})
		return
	}

	logger.WithUsername(username).Info("User logged out")

	auth.AddFlash(c, auth.FlashWarning, "Logged out.")
	c.Redirect(http.StatusFound, "/")
}
