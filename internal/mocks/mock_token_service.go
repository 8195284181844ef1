package mocks

import (
	"time"

	"github.com/drax210310/jugueteria-backend/domain"
)

// MockTokenService implements domain.TokenService for testing
type MockTokenService struct {
	IssueFunc  func(userID uint, username, role string) (string, time.Time, error)
	VerifyFunc func(token string) (*domain.TokenClaims, error)
}

// NewMockTokenService creates a new MockTokenService with default behaviors
func NewMockTokenService() *MockTokenService {
	return &MockTokenService{}
}

func (m *MockTokenService) Issue(userID uint, username, role string) (string, time.Time, error) {
	if m.IssueFunc != nil {
		return m.IssueFunc(userID, username, role)
	}
	// Default behavior: deterministic fake token
	return "token_" + username, time.Now().Add(24 * time.Hour), nil
}

func (m *MockTokenService) Verify(token string) (*domain.TokenClaims, error) {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(token)
	}
	// Default behavior: reject everything
	return nil, domain.ErrTokenInvalid
}

// Compile-time interface compliance verification
var _ domain.TokenService = (*MockTokenService)(nil)
