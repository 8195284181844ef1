package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/drax210310/jugueteria-backend/domain"
	"github.com/drax210310/jugueteria-backend/internal/http/middleware"
)

// UserHandlers handles user management HTTP requests
type UserHandlers struct {
	userSvc domain.UserService
}

// NewUserHandlers creates new user handlers
func NewUserHandlers(userSvc domain.UserService) *UserHandlers {
	return &UserHandlers{userSvc: userSvc}
}

// UpdateProfileRequest represents a partial profile update. Absent fields
// stay unchanged; role and password have no place here.
type UpdateProfileRequest struct {
	Name    *string `json:"name"`
	Surname *string `json:"surname"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
	Email   *string `json:"email"`
}

// UpdateRoleRequest represents a role change request
type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

// GetProfile handles GET /api/users/profile
func (h *UserHandlers) GetProfile(c *gin.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		respondErr(c, domain.ErrUnauthenticated)
		return
	}

	user, err := h.userSvc.GetProfile(c.Request.Context(), identity.UserID)
	if err != nil {
		respondErr(c, err)
		return
	}

	respond(c, http.StatusOK, "profile retrieved", gin.H{"user": userPayload(user)})
}

// UpdateProfile handles PUT /api/users/profile
func (h *UserHandlers) UpdateProfile(c *gin.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		respondErr(c, domain.ErrUnauthenticated)
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, "invalid request body", nil)
		return
	}

	update := domain.ProfileUpdate{
		Name:    req.Name,
		Surname: req.Surname,
		Phone:   req.Phone,
		Address: req.Address,
		Email:   req.Email,
	}
	if err := h.userSvc.UpdateProfile(c.Request.Context(), identity.UserID, update); err != nil {
		respondErr(c, err)
		return
	}

	respond(c, http.StatusOK, "profile updated successfully", nil)
}

// ListUsers handles GET /api/users (admin only, enforced by middleware).
func (h *UserHandlers) ListUsers(c *gin.Context) {
	users, err := h.userSvc.ListUsers(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return
	}

	payload := make([]gin.H, 0, len(users))
	for i := range users {
		payload = append(payload, userPayload(&users[i]))
	}
	respond(c, http.StatusOK, "users retrieved", gin.H{
		"users": payload,
		"total": len(users),
	})
}

// GetUser handles GET /api/users/:id. A user may read their own record;
// anyone else's requires the admin role.
func (h *UserHandlers) GetUser(c *gin.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		respondErr(c, domain.ErrUnauthenticated)
		return
	}

	id, err := parseID(c.Param("id"))
	if err != nil {
		respond(c, http.StatusBadRequest, "invalid user id", nil)
		return
	}

	if err := domain.Authorize(identity, domain.SelfOrAdmin(id)); err != nil {
		respondErr(c, err)
		return
	}

	user, err := h.userSvc.GetUser(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err)
		return
	}

	respond(c, http.StatusOK, "user retrieved", gin.H{"user": userPayload(user)})
}

// UpdateRole handles PUT /api/users/:id/role (admin only, enforced by
// middleware).
func (h *UserHandlers) UpdateRole(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		respond(c, http.StatusBadRequest, "invalid user id", nil)
		return
	}

	var req UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, "role is required", nil)
		return
	}

	if err := h.userSvc.UpdateRole(c.Request.Context(), id, req.Role); err != nil {
		respondErr(c, err)
		return
	}

	respond(c, http.StatusOK, "role updated to "+req.Role, nil)
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
