package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/drax210310/jugueteria-backend/domain"
)

// PasswordServiceImpl implements domain.PasswordService using bcrypt. The
// hash output embeds algorithm, cost and salt, so verification needs no
// side channel, and two hashes of the same password never match.
type PasswordServiceImpl struct {
	cost int
}

// NewPasswordService creates a new password service. A cost of 0 selects
// bcrypt.DefaultCost.
func NewPasswordService(cost int) domain.PasswordService {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &PasswordServiceImpl{cost: cost}
}

// Hash implements domain.PasswordService
func (p *PasswordServiceImpl) Hash(password string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), p.cost)
	if err != nil {
		return "", err
	}
	return string(hashedBytes), nil
}

// Verify implements domain.PasswordService. A malformed hash verifies as
// false rather than erroring: the caller only cares whether the password
// matches.
func (p *PasswordServiceImpl) Verify(hashedPassword, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}
