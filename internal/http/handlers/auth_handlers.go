package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/drax210310/jugueteria-backend/domain"
	"github.com/drax210310/jugueteria-backend/internal/http/metrics"
)

// AuthHandlers handles authentication HTTP requests
type AuthHandlers struct {
	authSvc domain.AuthService
}

// NewAuthHandlers creates new auth handlers
func NewAuthHandlers(authSvc domain.AuthService) *AuthHandlers {
	return &AuthHandlers{authSvc: authSvc}
}

// RegisterRequest represents a registration request. There is no role
// field: everyone registers as a customer.
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=64"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name"`
	Surname  string `json:"surname"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

// LoginRequest represents a login request
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// VerifyRequest represents a token verification request
type VerifyRequest struct {
	Token string `json:"token" binding:"required"`
}

// Register handles POST /api/auth/register
func (h *AuthHandlers) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, "username, email and password are required", nil)
		return
	}

	result, err := h.authSvc.Register(c.Request.Context(), domain.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Surname:  req.Surname,
		Phone:    req.Phone,
		Address:  req.Address,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserAlreadyExists):
			metrics.AuthAttemptsTotal.WithLabelValues("register", "duplicate").Inc()
		case errors.Is(err, domain.ErrValidation):
			// Not counted as an attempt.
		default:
			metrics.AuthAttemptsTotal.WithLabelValues("register", "error").Inc()
		}
		respondErr(c, err)
		return
	}

	metrics.AuthAttemptsTotal.WithLabelValues("register", "success").Inc()
	respond(c, http.StatusCreated, "user registered successfully", gin.H{
		"token":   result.Token,
		"user_id": result.User.ID,
	})
}

// Login handles POST /api/auth/login
func (h *AuthHandlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, "username and password are required", nil)
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidCredentials):
			metrics.AuthAttemptsTotal.WithLabelValues("login", "invalid_credentials").Inc()
		case errors.Is(err, domain.ErrTooManyAttempts):
			metrics.AuthAttemptsTotal.WithLabelValues("login", "throttled").Inc()
		default:
			metrics.AuthAttemptsTotal.WithLabelValues("login", "error").Inc()
		}
		respondErr(c, err)
		return
	}

	metrics.AuthAttemptsTotal.WithLabelValues("login", "success").Inc()
	respond(c, http.StatusOK, "login successful", gin.H{
		"token": result.Token,
		"user":  userPayload(result.User),
	})
}

// Verify handles POST /api/auth/verify. The token travels in the body so
// clients can check a stored token without setting auth headers.
func (h *AuthHandlers) Verify(c *gin.Context) {
	var req VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, "token is required", nil)
		return
	}

	claims, err := h.authSvc.VerifyToken(req.Token)
	if err != nil {
		respondErr(c, err)
		return
	}

	respond(c, http.StatusOK, "token is valid", gin.H{
		"user": gin.H{
			"id":       claims.UserID,
			"username": claims.Username,
			"role":     claims.Role,
		},
	})
}
