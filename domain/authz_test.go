package domain

import (
	"errors"
	"testing"
)

func TestAuthorize_SelfOrAdmin(t *testing.T) {
	tests := []struct {
		name     string
		identity Identity
		targetID uint
		allowed  bool
	}{
		{
			name:     "customer accessing own record",
			identity: Identity{UserID: 5, Username: "ana", Role: RoleCustomer},
			targetID: 5,
			allowed:  true,
		},
		{
			name:     "admin accessing someone else's record",
			identity: Identity{UserID: 1, Username: "root", Role: RoleAdmin},
			targetID: 5,
			allowed:  true,
		},
		{
			name:     "admin accessing own record",
			identity: Identity{UserID: 5, Username: "root", Role: RoleAdmin},
			targetID: 5,
			allowed:  true,
		},
		{
			name:     "customer accessing someone else's record",
			identity: Identity{UserID: 7, Username: "ana", Role: RoleCustomer},
			targetID: 5,
			allowed:  false,
		},
		{
			name:     "unknown role accessing someone else's record",
			identity: Identity{UserID: 7, Username: "x", Role: "superuser"},
			targetID: 5,
			allowed:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Authorize(tt.identity, SelfOrAdmin(tt.targetID))
			if tt.allowed && err != nil {
				t.Errorf("expected access allowed, got %v", err)
			}
			if !tt.allowed {
				if err == nil {
					t.Fatal("expected access denied, got nil")
				}
				if !errors.Is(err, ErrForbidden) {
					t.Errorf("expected ErrForbidden, got %v", err)
				}
			}
		})
	}
}

func TestAuthorize_AdminOnly(t *testing.T) {
	tests := []struct {
		name     string
		identity Identity
		allowed  bool
	}{
		{
			name:     "admin",
			identity: Identity{UserID: 1, Role: RoleAdmin},
			allowed:  true,
		},
		{
			name:     "customer",
			identity: Identity{UserID: 2, Role: RoleCustomer},
			allowed:  false,
		},
		{
			name:     "empty role",
			identity: Identity{UserID: 3},
			allowed:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Authorize(tt.identity, AdminOnly())
			if tt.allowed && err != nil {
				t.Errorf("expected access allowed, got %v", err)
			}
			if !tt.allowed && !errors.Is(err, ErrForbidden) {
				t.Errorf("expected ErrForbidden, got %v", err)
			}
		})
	}
}

func TestAuthorize_NilPolicy(t *testing.T) {
	err := Authorize(Identity{UserID: 1, Role: RoleAdmin}, nil)
	if !errors.Is(err, ErrForbidden) {
		t.Errorf("nil policy must deny, got %v", err)
	}
}

func TestValidRole(t *testing.T) {
	if !ValidRole(RoleAdmin) || !ValidRole(RoleCustomer) {
		t.Error("admin and customer must be valid roles")
	}
	for _, r := range []string{"", "superuser", "Admin", "cliente"} {
		if ValidRole(r) {
			t.Errorf("role %q should not be valid", r)
		}
	}
}
