package domain

import "time"

// Roles recognised by the authorization policies.
const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

// ValidRole reports whether r is one of the recognised roles.
func ValidRole(r string) bool {
	return r == RoleAdmin || r == RoleCustomer
}

// User represents a user account. PasswordHash is populated only by the
// credential lookup path (FindByUsername) and must never reach a client.
type User struct {
	ID           uint
	Username     string
	Email        string
	PasswordHash string `json:"-"`
	Name         string
	Surname      string
	Phone        string
	Address      string
	Role         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Identity is the validated result of authenticating a request.
type Identity struct {
	UserID   uint
	Username string
	Role     string
}

// IsAdmin reports whether the identity carries the admin role.
func (i Identity) IsAdmin() bool { return i.Role == RoleAdmin }

// TokenClaims is the decoded payload of a bearer token.
type TokenClaims struct {
	UserID    uint   `json:"id"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp"`
}

// Identity converts token claims into a request identity.
func (c *TokenClaims) Identity() Identity {
	return Identity{UserID: c.UserID, Username: c.Username, Role: c.Role}
}

// AuthResult is the outcome of a successful registration or login.
type AuthResult struct {
	User      *User
	Token     string
	ExpiresAt time.Time
}

// ProfileUpdate carries the mutable profile fields. Nil pointers mean
// "leave unchanged"; role and password are deliberately absent.
type ProfileUpdate struct {
	Name    *string
	Surname *string
	Phone   *string
	Address *string
	Email   *string
}

// Product is a catalog entry.
type Product struct {
	ID          uint
	Name        string
	Description string
	Price       float64
	Stock       int
	LineID      uint
	LineName    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ProductLine groups products.
type ProductLine struct {
	ID   uint
	Name string
}

// Municipality is a geographic reference entry used by shipping forms.
type Municipality struct {
	ID   uint
	Name string
}

// Department is a geographic reference entry tied to a municipality.
type Department struct {
	ID               uint
	Name             string
	MunicipalityID   uint
	MunicipalityName string
}

// Sale is a purchase record with its line items.
type Sale struct {
	ID        uint
	UserID    uint
	Total     float64
	Items     []SaleItem
	CreatedAt time.Time
}

// SaleItem is a single product position inside a sale.
type SaleItem struct {
	ID        uint
	SaleID    uint
	ProductID uint
	Quantity  int
	UnitPrice float64
}
