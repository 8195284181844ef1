package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/drax210310/jugueteria-backend/domain"
)

// UserServiceImpl implements domain.UserService
type UserServiceImpl struct {
	userRepo domain.UserRepository
	audit    domain.AuditLogger
	logger   zerolog.Logger
}

// NewUserService creates a new user service
func NewUserService(userRepo domain.UserRepository, audit domain.AuditLogger, logger zerolog.Logger) domain.UserService {
	return &UserServiceImpl{
		userRepo: userRepo,
		audit:    audit,
		logger:   logger.With().Str("component", "user_service").Logger(),
	}
}

// GetProfile implements domain.UserService
func (s *UserServiceImpl) GetProfile(ctx context.Context, userID uint) (*domain.User, error) {
	return s.userRepo.FindByID(ctx, userID)
}

// UpdateProfile implements domain.UserService. Role and password are not
// reachable through this path by construction of ProfileUpdate.
func (s *UserServiceImpl) UpdateProfile(ctx context.Context, userID uint, update domain.ProfileUpdate) error {
	if update.Email != nil && strings.TrimSpace(*update.Email) == "" {
		return fmt.Errorf("%w: email must not be empty", domain.ErrValidation)
	}
	return s.userRepo.UpdateProfile(ctx, userID, update)
}

// ListUsers implements domain.UserService
func (s *UserServiceImpl) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.userRepo.List(ctx)
}

// GetUser implements domain.UserService
func (s *UserServiceImpl) GetUser(ctx context.Context, id uint) (*domain.User, error) {
	return s.userRepo.FindByID(ctx, id)
}

// UpdateRole implements domain.UserService. The caller (authorization
// guard) has already established admin rights; this only validates the
// target role and records the change.
func (s *UserServiceImpl) UpdateRole(ctx context.Context, id uint, role string) error {
	if !domain.ValidRole(role) {
		return fmt.Errorf("%w: role must be %q or %q", domain.ErrValidation, domain.RoleAdmin, domain.RoleCustomer)
	}

	if err := s.userRepo.UpdateRole(ctx, id, role); err != nil {
		return err
	}

	s.audit.LogEvent(domain.NewAuditEvent(domain.RoleChangedEvent).
		WithUser(id, "").
		WithMetadata("new_role", role))
	return nil
}
