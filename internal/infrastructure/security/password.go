package security

import (
	"golang.org/x/crypto/bcrypt"

	"locksmith_invoicing/internal/usecase/interfaces"
)

// BcryptCost is the work factor for operator password hashes.
const BcryptCost = 12

type PasswordHasher struct {
	cost int
}

var _ interfaces.IPasswordHasher = (*PasswordHasher)(nil)

// NewPasswordHasher uses cost, or BcryptCost when cost is out of range.
func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = BcryptCost
	}
	return &PasswordHasher{cost: cost}
}

func (h *PasswordHasher) Hash(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (h *PasswordHasher) Compare(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
