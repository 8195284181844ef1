package mocks

import (
	"context"

	"github.com/drax210310/jugueteria-backend/domain"
)

// MockAuthService implements domain.AuthService for testing
type MockAuthService struct {
	RegisterFunc    func(ctx context.Context, input domain.RegisterInput) (*domain.AuthResult, error)
	LoginFunc       func(ctx context.Context, username, password string) (*domain.AuthResult, error)
	VerifyTokenFunc func(token string) (*domain.TokenClaims, error)
}

// NewMockAuthService creates a new MockAuthService with default behaviors
func NewMockAuthService() *MockAuthService {
	return &MockAuthService{}
}

func (m *MockAuthService) Register(ctx context.Context, input domain.RegisterInput) (*domain.AuthResult, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, input)
	}
	return nil, domain.ErrValidation
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (*domain.AuthResult, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, username, password)
	}
	return nil, domain.ErrInvalidCredentials
}

func (m *MockAuthService) VerifyToken(token string) (*domain.TokenClaims, error) {
	if m.VerifyTokenFunc != nil {
		return m.VerifyTokenFunc(token)
	}
	return nil, domain.ErrTokenInvalid
}

// Compile-time interface compliance verification
var _ domain.AuthService = (*MockAuthService)(nil)
