package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/drax210310/jugueteria-backend/domain"
)

// AuthServiceImpl implements domain.AuthService
type AuthServiceImpl struct {
	userRepo    domain.UserRepository
	passwordSvc domain.PasswordService
	tokenSvc    domain.TokenService
	limiter     domain.LoginLimiter
	audit       domain.AuditLogger
	logger      zerolog.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo domain.UserRepository,
	passwordSvc domain.PasswordService,
	tokenSvc domain.TokenService,
	limiter domain.LoginLimiter,
	audit domain.AuditLogger,
	logger zerolog.Logger,
) domain.AuthService {
	return &AuthServiceImpl{
		userRepo:    userRepo,
		passwordSvc: passwordSvc,
		tokenSvc:    tokenSvc,
		limiter:     limiter,
		audit:       audit,
		logger:      logger.With().Str("component", "auth_service").Logger(),
	}
}

// Register implements domain.AuthService. New accounts are always created
// as customers; role escalation goes through the admin-gated role update.
func (s *AuthServiceImpl) Register(ctx context.Context, input domain.RegisterInput) (*domain.AuthResult, error) {
	username := strings.TrimSpace(input.Username)
	email := strings.TrimSpace(input.Email)
	if username == "" || email == "" || input.Password == "" {
		return nil, fmt.Errorf("%w: username, email and password are required", domain.ErrValidation)
	}

	// Friendly early rejection. The unique indexes remain the authoritative
	// guard: two concurrent registrations both passing this check still end
	// with exactly one row and one duplicate error from Create.
	if existing, err := s.userRepo.FindByUsername(ctx, username); err == nil && existing != nil {
		return nil, domain.ErrUserAlreadyExists
	}

	hash, err := s.passwordSvc.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Name:         input.Name,
		Surname:      input.Surname,
		Phone:        input.Phone,
		Address:      input.Address,
		Role:         domain.RoleCustomer,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	token, expiresAt, err := s.tokenSvc.Issue(user.ID, user.Username, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	s.audit.LogEvent(domain.NewAuditEvent(domain.UserRegistrationEvent).WithUser(user.ID, user.Username))

	user.PasswordHash = ""
	return &domain.AuthResult{User: user, Token: token, ExpiresAt: expiresAt}, nil
}

// Login implements domain.AuthService. Unknown username and wrong password
// are indistinguishable to the caller.
func (s *AuthServiceImpl) Login(ctx context.Context, username, password string) (*domain.AuthResult, error) {
	if username == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password are required", domain.ErrValidation)
	}

	allowed, err := s.limiter.Allow(ctx, username)
	if err != nil {
		// Fail open: throttling is a hardening measure, losing Redis must
		// not take logins down with it.
		s.logger.Warn().Err(err).Msg("login limiter unavailable")
		allowed = true
	}
	if !allowed {
		s.audit.LogEvent(domain.NewAuditEvent(domain.LoginThrottledEvent).WithUser(0, username).WithError(domain.ErrTooManyAttempts))
		return nil, domain.ErrTooManyAttempts
	}

	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.audit.LogEvent(domain.NewAuditEvent(domain.UserLoginFailureEvent).WithUser(0, username).WithError(domain.ErrInvalidCredentials))
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.passwordSvc.Verify(user.PasswordHash, password) {
		s.audit.LogEvent(domain.NewAuditEvent(domain.UserLoginFailureEvent).WithUser(user.ID, user.Username).WithError(domain.ErrInvalidCredentials))
		return nil, domain.ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokenSvc.Issue(user.ID, user.Username, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	if err := s.limiter.Reset(ctx, username); err != nil {
		s.logger.Warn().Err(err).Msg("failed to reset login attempts")
	}

	s.audit.LogEvent(domain.NewAuditEvent(domain.UserLoginEvent).WithUser(user.ID, user.Username))

	user.PasswordHash = ""
	return &domain.AuthResult{User: user, Token: token, ExpiresAt: expiresAt}, nil
}

// VerifyToken implements domain.AuthService
func (s *AuthServiceImpl) VerifyToken(token string) (*domain.TokenClaims, error) {
	return s.tokenSvc.Verify(token)
}
