package mocks

import (
	"context"

	"github.com/drax210310/jugueteria-backend/domain"
)

// MockLoginLimiter implements domain.LoginLimiter for testing
type MockLoginLimiter struct {
	AllowFunc func(ctx context.Context, username string) (bool, error)
	ResetFunc func(ctx context.Context, username string) error
}

// NewMockLoginLimiter creates a new MockLoginLimiter with default behaviors
func NewMockLoginLimiter() *MockLoginLimiter {
	return &MockLoginLimiter{}
}

func (m *MockLoginLimiter) Allow(ctx context.Context, username string) (bool, error) {
	if m.AllowFunc != nil {
		return m.AllowFunc(ctx, username)
	}
	// Default behavior: never throttle
	return true, nil
}

func (m *MockLoginLimiter) Reset(ctx context.Context, username string) error {
	if m.ResetFunc != nil {
		return m.ResetFunc(ctx, username)
	}
	return nil
}

// Compile-time interface compliance verification
var _ domain.LoginLimiter = (*MockLoginLimiter)(nil)
