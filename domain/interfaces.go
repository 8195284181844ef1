package domain

import (
	"context"
	"time"
)

// UserRepository defines user data access operations. FindByUsername is the
// only lookup permitted to return the password hash.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByUsername(ctx context.Context, username string) (*User, error)
	FindByID(ctx context.Context, id uint) (*User, error)
	List(ctx context.Context) ([]User, error)
	UpdateProfile(ctx context.Context, id uint, update ProfileUpdate) error
	UpdateRole(ctx context.Context, id uint, role string) error
}

// ProductRepository defines catalog data access operations.
type ProductRepository interface {
	Create(ctx context.Context, product *Product) error
	FindByID(ctx context.Context, id uint) (*Product, error)
	List(ctx context.Context) ([]Product, error)
	Update(ctx context.Context, product *Product) error
	Delete(ctx context.Context, id uint) error
}

// ProductLineRepository defines product line data access operations.
type ProductLineRepository interface {
	List(ctx context.Context) ([]ProductLine, error)
}

// GeoRepository defines read access to the geographic reference lists.
type GeoRepository interface {
	ListMunicipalities(ctx context.Context) ([]Municipality, error)
	ListDepartments(ctx context.Context) ([]Department, error)
}

// SaleRepository defines sale data access operations. Create persists the
// sale and all its items in a single transaction.
type SaleRepository interface {
	Create(ctx context.Context, sale *Sale) error
	List(ctx context.Context) ([]Sale, error)
}

// PasswordService defines password hashing operations. Verify is a boolean,
// not an error: a wrong password is an expected outcome, not a failure.
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) bool
}

// TokenService defines token issuance and validation.
type TokenService interface {
	Issue(userID uint, username, role string) (string, time.Time, error)
	Verify(token string) (*TokenClaims, error)
}

// LoginLimiter throttles repeated login attempts per username.
type LoginLimiter interface {
	Allow(ctx context.Context, username string) (bool, error)
	Reset(ctx context.Context, username string) error
}

// AuthService defines authentication business logic.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, username, password string) (*AuthResult, error)
	VerifyToken(token string) (*TokenClaims, error)
}

// RegisterInput carries registration data. Role is not accepted here: new
// accounts always start as customers.
type RegisterInput struct {
	Username string
	Email    string
	Password string
	Name     string
	Surname  string
	Phone    string
	Address  string
}

// UserService defines user management business logic.
type UserService interface {
	GetProfile(ctx context.Context, userID uint) (*User, error)
	UpdateProfile(ctx context.Context, userID uint, update ProfileUpdate) error
	ListUsers(ctx context.Context) ([]User, error)
	GetUser(ctx context.Context, id uint) (*User, error)
	UpdateRole(ctx context.Context, id uint, role string) error
}

// CatalogService defines product and product line business logic.
type CatalogService interface {
	ListProducts(ctx context.Context) ([]Product, error)
	GetProduct(ctx context.Context, id uint) (*Product, error)
	CreateProduct(ctx context.Context, product *Product) error
	UpdateProduct(ctx context.Context, product *Product) error
	DeleteProduct(ctx context.Context, id uint) error
	ListProductLines(ctx context.Context) ([]ProductLine, error)
	ListMunicipalities(ctx context.Context) ([]Municipality, error)
	ListDepartments(ctx context.Context) ([]Department, error)
}

// SaleService defines sale business logic.
type SaleService interface {
	CreateSale(ctx context.Context, userID uint, items []SaleItem) (*Sale, error)
	ListSales(ctx context.Context) ([]Sale, error)
}
