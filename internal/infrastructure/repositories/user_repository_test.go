package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/drax210310/jugueteria-backend/domain"
)

// setupTestDB creates an in-memory SQLite database for testing. Error
// translation is on so unique violations surface the same way they do
// against Postgres.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	if err := db.AutoMigrate(&DBUser{}, &DBProductLine{}, &DBProduct{}, &DBMunicipality{}, &DBDepartment{}, &DBSale{}, &DBSaleItem{}); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	return db
}

func strPtr(s string) *string { return &s }

func TestUserRepositoryImpl_CreateAndFind(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db, time.Second)

	user := &domain.User{
		Username:     "ana",
		Email:        "ana@example.com",
		PasswordHash: "hashed_password",
		Name:         "Ana",
		Surname:      "Lopez",
		Role:         domain.RoleCustomer,
	}
	if err := repo.Create(context.Background(), user); err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	if user.ID == 0 {
		t.Fatal("create should backfill the generated ID")
	}

	byName, err := repo.FindByUsername(context.Background(), "ana")
	if err != nil {
		t.Fatalf("failed to find by username: %v", err)
	}
	if byName.PasswordHash != "hashed_password" {
		t.Error("username lookup must return the stored hash")
	}
	if byName.Email != "ana@example.com" {
		t.Errorf("expected email ana@example.com, got %s", byName.Email)
	}

	byID, err := repo.FindByID(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("failed to find by id: %v", err)
	}
	if byID.PasswordHash != "" {
		t.Error("id lookup must never return the password hash")
	}
	if byID.Username != "ana" {
		t.Errorf("expected username ana, got %s", byID.Username)
	}
}

func TestUserRepositoryImpl_FindNotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db, time.Second)

	if _, err := repo.FindByUsername(context.Background(), "nobody"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
	if _, err := repo.FindByID(context.Background(), 999); !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserRepositoryImpl_Create_Duplicates(t *testing.T) {
	tests := []struct {
		name      string
		duplicate *domain.User
	}{
		{
			name: "duplicate username",
			duplicate: &domain.User{
				Username:     "ana",
				Email:        "other@example.com",
				PasswordHash: "hash",
				Role:         domain.RoleCustomer,
			},
		},
		{
			name: "duplicate email",
			duplicate: &domain.User{
				Username:     "other",
				Email:        "ana@example.com",
				PasswordHash: "hash",
				Role:         domain.RoleCustomer,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := setupTestDB(t)
			repo := NewUserRepository(db, time.Second)

			seed := &domain.User{
				Username:     "ana",
				Email:        "ana@example.com",
				PasswordHash: "hash",
				Role:         domain.RoleCustomer,
			}
			if err := repo.Create(context.Background(), seed); err != nil {
				t.Fatalf("failed to seed user: %v", err)
			}

			err := repo.Create(context.Background(), tt.duplicate)
			if !errors.Is(err, domain.ErrUserAlreadyExists) {
				t.Errorf("expected ErrUserAlreadyExists, got %v", err)
			}
		})
	}
}

func TestUserRepositoryImpl_List(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db, time.Second)

	now := time.Now()
	seed := []DBUser{
		{Username: "older", Email: "older@example.com", PasswordHash: "h1", Role: domain.RoleCustomer, CreatedAt: now.Add(-time.Hour)},
		{Username: "newer", Email: "newer@example.com", PasswordHash: "h2", Role: domain.RoleAdmin, CreatedAt: now},
	}
	for i := range seed {
		if err := db.Create(&seed[i]).Error; err != nil {
			t.Fatalf("failed to seed user: %v", err)
		}
	}

	users, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("failed to list: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
	if users[0].Username != "newer" {
		t.Errorf("expected newest first, got %s", users[0].Username)
	}
	for _, u := range users {
		if u.PasswordHash != "" {
			t.Errorf("list must not expose hashes, user %s has one", u.Username)
		}
	}
}

func TestUserRepositoryImpl_UpdateProfile(t *testing.T) {
	tests := []struct {
		name          string
		update        domain.ProfileUpdate
		expectedError error
		validate      func(t *testing.T, db *gorm.DB, id uint)
	}{
		{
			name:   "partial update changes only provided fields",
			update: domain.ProfileUpdate{Name: strPtr("Anita"), Phone: strPtr("555-0102")},
			validate: func(t *testing.T, db *gorm.DB, id uint) {
				var u DBUser
				if err := db.First(&u, id).Error; err != nil {
					t.Fatalf("failed to reload user: %v", err)
				}
				if u.Name != "Anita" {
					t.Errorf("name not updated, got %s", u.Name)
				}
				if u.Phone != "555-0102" {
					t.Errorf("phone not updated, got %s", u.Phone)
				}
				if u.Email != "ana@example.com" {
					t.Errorf("email must be untouched, got %s", u.Email)
				}
				if u.PasswordHash != "hash" {
					t.Error("password must be untouched")
				}
			},
		},
		{
			name:   "empty update is a no-op",
			update: domain.ProfileUpdate{},
			validate: func(t *testing.T, db *gorm.DB, id uint) {
				var u DBUser
				if err := db.First(&u, id).Error; err != nil {
					t.Fatalf("failed to reload user: %v", err)
				}
				if u.Name != "Ana" {
					t.Errorf("name should be unchanged, got %s", u.Name)
				}
			},
		},
		{
			name:          "email taken by another user",
			update:        domain.ProfileUpdate{Email: strPtr("taken@example.com")},
			expectedError: domain.ErrUserAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := setupTestDB(t)
			repo := NewUserRepository(db, time.Second)

			user := &domain.User{
				Username:     "ana",
				Email:        "ana@example.com",
				PasswordHash: "hash",
				Name:         "Ana",
				Role:         domain.RoleCustomer,
			}
			if err := repo.Create(context.Background(), user); err != nil {
				t.Fatalf("failed to seed user: %v", err)
			}
			other := &domain.User{
				Username:     "bob",
				Email:        "taken@example.com",
				PasswordHash: "hash",
				Role:         domain.RoleCustomer,
			}
			if err := repo.Create(context.Background(), other); err != nil {
				t.Fatalf("failed to seed second user: %v", err)
			}

			err := repo.UpdateProfile(context.Background(), user.ID, tt.update)
			if tt.expectedError != nil {
				if !errors.Is(err, tt.expectedError) {
					t.Errorf("expected error %v, got %v", tt.expectedError, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			tt.validate(t, db, user.ID)
		})
	}
}

func TestUserRepositoryImpl_UpdateProfile_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db, time.Second)

	err := repo.UpdateProfile(context.Background(), 999, domain.ProfileUpdate{Name: strPtr("Ghost")})
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserRepositoryImpl_UpdateRole(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db, time.Second)

	user := &domain.User{
		Username:     "ana",
		Email:        "ana@example.com",
		PasswordHash: "hash",
		Role:         domain.RoleCustomer,
	}
	if err := repo.Create(context.Background(), user); err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}

	if err := repo.UpdateRole(context.Background(), user.ID, domain.RoleAdmin); err != nil {
		t.Fatalf("failed to update role: %v", err)
	}

	reloaded, err := repo.FindByID(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("failed to reload user: %v", err)
	}
	if reloaded.Role != domain.RoleAdmin {
		t.Errorf("expected role admin, got %s", reloaded.Role)
	}

	if err := repo.UpdateRole(context.Background(), 999, domain.RoleAdmin); !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound for unknown id, got %v", err)
	}
}
