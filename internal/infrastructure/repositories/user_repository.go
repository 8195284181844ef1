package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/drax210310/jugueteria-backend/domain"
)

// DBUser represents the database model for User. Username and email carry
// unique indexes: the constraint, not the application pre-check, is what
// serialises concurrent registrations with the same values.
type DBUser struct {
	ID           uint           `gorm:"primaryKey"`
	Username     string         `gorm:"uniqueIndex;size:64;not null"`
	Email        string         `gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string         `gorm:"column:password;not null"`
	Name         string         `gorm:"size:128"`
	Surname      string         `gorm:"size:128"`
	Phone        string         `gorm:"size:32"`
	Address      string         `gorm:"size:255"`
	Role         string         `gorm:"index;size:32;not null;default:customer"`
	CreatedAt    time.Time      `gorm:"index"`
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

// TableName returns the table name for GORM
func (DBUser) TableName() string {
	return "users"
}

// UserRepositoryImpl implements domain.UserRepository using GORM.
type UserRepositoryImpl struct {
	db      *gorm.DB
	timeout time.Duration
}

// NewUserRepository creates a new user repository. Every operation runs
// under the given timeout so a stalled store surfaces as
// ErrStorageUnavailable instead of hanging the request.
func NewUserRepository(db *gorm.DB, timeout time.Duration) domain.UserRepository {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &UserRepositoryImpl{db: db, timeout: timeout}
}

// Create implements domain.UserRepository
func (r *UserRepositoryImpl) Create(ctx context.Context, user *domain.User) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	dbUser := r.domainToDB(user)
	if err := r.db.WithContext(ctx).Create(dbUser).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrUserAlreadyExists
		}
		return storageErr("create user", err)
	}
	user.ID = dbUser.ID
	user.CreatedAt = dbUser.CreatedAt
	return nil
}

// FindByUsername implements domain.UserRepository. This is the only lookup
// that returns the password hash.
func (r *UserRepositoryImpl) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var dbUser DBUser
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&dbUser).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, storageErr("find user by username", err)
	}
	return r.dbToDomain(&dbUser, true), nil
}

// FindByID implements domain.UserRepository. The password hash is never
// populated on this path.
func (r *UserRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var dbUser DBUser
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbUser).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, storageErr("find user by id", err)
	}
	return r.dbToDomain(&dbUser, false), nil
}

// List implements domain.UserRepository, newest first, without hashes.
func (r *UserRepositoryImpl) List(ctx context.Context) ([]domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var dbUsers []DBUser
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&dbUsers).Error; err != nil {
		return nil, storageErr("list users", err)
	}

	users := make([]domain.User, 0, len(dbUsers))
	for i := range dbUsers {
		users = append(users, *r.dbToDomain(&dbUsers[i], false))
	}
	return users, nil
}

// UpdateProfile implements domain.UserRepository. Only the provided fields
// change; password and role are untouchable through this path.
func (r *UserRepositoryImpl) UpdateProfile(ctx context.Context, id uint, update domain.ProfileUpdate) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	fields := map[string]interface{}{}
	if update.Name != nil {
		fields["name"] = *update.Name
	}
	if update.Surname != nil {
		fields["surname"] = *update.Surname
	}
	if update.Phone != nil {
		fields["phone"] = *update.Phone
	}
	if update.Address != nil {
		fields["address"] = *update.Address
	}
	if update.Email != nil {
		fields["email"] = *update.Email
	}
	if len(fields) == 0 {
		return nil
	}

	res := r.db.WithContext(ctx).Model(&DBUser{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return domain.ErrUserAlreadyExists
		}
		return storageErr("update profile", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// UpdateRole implements domain.UserRepository
func (r *UserRepositoryImpl) UpdateRole(ctx context.Context, id uint, role string) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	res := r.db.WithContext(ctx).Model(&DBUser{}).Where("id = ?", id).Update("role", role)
	if res.Error != nil {
		return storageErr("update role", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) domainToDB(user *domain.User) *DBUser {
	return &DBUser{
		ID:           user.ID,
		Username:     user.Username,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		Name:         user.Name,
		Surname:      user.Surname,
		Phone:        user.Phone,
		Address:      user.Address,
		Role:         user.Role,
	}
}

func (r *UserRepositoryImpl) dbToDomain(dbUser *DBUser, withHash bool) *domain.User {
	u := &domain.User{
		ID:        dbUser.ID,
		Username:  dbUser.Username,
		Email:     dbUser.Email,
		Name:      dbUser.Name,
		Surname:   dbUser.Surname,
		Phone:     dbUser.Phone,
		Address:   dbUser.Address,
		Role:      dbUser.Role,
		CreatedAt: dbUser.CreatedAt,
		UpdatedAt: dbUser.UpdatedAt,
	}
	if withHash {
		u.PasswordHash = dbUser.PasswordHash
	}
	return u
}

// storageErr classifies unexpected database failures as transient storage
// errors so callers can distinguish them from business outcomes.
func storageErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %v", op, domain.ErrStorageUnavailable, err)
}
