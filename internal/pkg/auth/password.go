package auth

import (
	"github.com/studentvault/backend/internal/pkg/apperrors"
	"golang.org/x/crypto/bcrypt"
)

// BcryptCost is deliberately above the bcrypt default so offline brute force
// stays expensive.
const BcryptCost = 12

// MinPasswordLength is the minimum accepted source-password length.
const MinPasswordLength = 6

// HashPassword derives a salted one-way hash from a plain password.
func HashPassword(password string) (string, error) {
	if len(password) < MinPasswordLength {
		return "", apperrors.ErrPasswordTooShort
	}

	bytes, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// CheckPassword verifies a plain password against a stored hash. It never
// errors on mismatch, it just returns false.
func CheckPassword(hashedPassword, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}
