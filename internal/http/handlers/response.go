package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/drax210310/jugueteria-backend/domain"
)

// respond writes the conventional response envelope:
// {"success": bool, "message": string, ...payload}
func respond(c *gin.Context, status int, message string, payload gin.H) {
	body := gin.H{
		"success": status < 400,
		"message": message,
	}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(status, body)
}

// respondErr maps a domain error to an HTTP status and writes the envelope.
// Authentication failures share one generic message so a caller cannot
// tell an unknown username from a wrong password.
func respondErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		respond(c, http.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, domain.ErrUserAlreadyExists):
		respond(c, http.StatusConflict, "username or email already exists", nil)
	case errors.Is(err, domain.ErrInvalidCredentials):
		respond(c, http.StatusUnauthorized, "incorrect credentials", nil)
	case errors.Is(err, domain.ErrTokenExpired):
		respond(c, http.StatusUnauthorized, "token has expired", nil)
	case errors.Is(err, domain.ErrTokenInvalid), errors.Is(err, domain.ErrTokenMalformed):
		respond(c, http.StatusUnauthorized, "invalid token", nil)
	case errors.Is(err, domain.ErrUnauthenticated):
		respond(c, http.StatusUnauthorized, "authentication required", nil)
	case errors.Is(err, domain.ErrForbidden):
		respond(c, http.StatusForbidden, "forbidden", nil)
	case errors.Is(err, domain.ErrUserNotFound):
		respond(c, http.StatusNotFound, "user not found", nil)
	case errors.Is(err, domain.ErrProductNotFound):
		respond(c, http.StatusNotFound, "product not found", nil)
	case errors.Is(err, domain.ErrProductLineNotFound):
		respond(c, http.StatusNotFound, "product line not found", nil)
	case errors.Is(err, domain.ErrSaleNotFound):
		respond(c, http.StatusNotFound, "sale not found", nil)
	case errors.Is(err, domain.ErrTooManyAttempts):
		respond(c, http.StatusTooManyRequests, "too many login attempts, try again later", nil)
	case errors.Is(err, domain.ErrStorageUnavailable):
		respond(c, http.StatusServiceUnavailable, "service temporarily unavailable", nil)
	default:
		respond(c, http.StatusInternalServerError, "internal server error", nil)
	}
}

// userPayload renders a user record for clients. The password hash never
// appears here.
func userPayload(u *domain.User) gin.H {
	return gin.H{
		"id":         u.ID,
		"username":   u.Username,
		"email":      u.Email,
		"name":       u.Name,
		"surname":    u.Surname,
		"phone":      u.Phone,
		"address":    u.Address,
		"role":       u.Role,
		"created_at": u.CreatedAt,
	}
}
