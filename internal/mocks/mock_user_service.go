package mocks

import (
	"context"

	"github.com/drax210310/jugueteria-backend/domain"
)

// MockUserService implements domain.UserService for testing
type MockUserService struct {
	GetProfileFunc    func(ctx context.Context, userID uint) (*domain.User, error)
	UpdateProfileFunc func(ctx context.Context, userID uint, update domain.ProfileUpdate) error
	ListUsersFunc     func(ctx context.Context) ([]domain.User, error)
	GetUserFunc       func(ctx context.Context, id uint) (*domain.User, error)
	UpdateRoleFunc    func(ctx context.Context, id uint, role string) error
}

// NewMockUserService creates a new MockUserService with default behaviors
func NewMockUserService() *MockUserService {
	return &MockUserService{}
}

func (m *MockUserService) GetProfile(ctx context.Context, userID uint) (*domain.User, error) {
	if m.GetProfileFunc != nil {
		return m.GetProfileFunc(ctx, userID)
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockUserService) UpdateProfile(ctx context.Context, userID uint, update domain.ProfileUpdate) error {
	if m.UpdateProfileFunc != nil {
		return m.UpdateProfileFunc(ctx, userID, update)
	}
	return nil
}

func (m *MockUserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	if m.ListUsersFunc != nil {
		return m.ListUsersFunc(ctx)
	}
	return []domain.User{}, nil
}

func (m *MockUserService) GetUser(ctx context.Context, id uint) (*domain.User, error) {
	if m.GetUserFunc != nil {
		return m.GetUserFunc(ctx, id)
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockUserService) UpdateRole(ctx context.Context, id uint, role string) error {
	if m.UpdateRoleFunc != nil {
		return m.UpdateRoleFunc(ctx, id, role)
	}
	return nil
}

// Compile-time interface compliance verification
var _ domain.UserService = (*MockUserService)(nil)
