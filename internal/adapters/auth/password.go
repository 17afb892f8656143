package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"seminarmanager/internal/domain"
)

// AdminBcryptCost is the work factor used when creating the admin password hash.
const AdminBcryptCost = 14

type bcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a PasswordHasher backed by bcrypt. The cost only applies
// to Hash; Compare uses whatever cost is encoded in the stored hash.
func NewBcryptHasher(cost int) domain.PasswordHasher {
	return &bcryptHasher{cost: cost}
}

func (h *bcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

func (h *bcryptHasher) Compare(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
