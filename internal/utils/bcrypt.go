package utils

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// BcryptCost is the work factor for every stored password hash.
const BcryptCost = 12

// MaxPasswordBytes is the longest input bcrypt accepts.
const MaxPasswordBytes = 72

var ErrPasswordTooLong = errors.New("password must be at most 72 bytes")

// HashPassword hashes a plaintext password. bcrypt embeds a fresh salt in each result.
func HashPassword(password string) (string, error) {
	if len(password) > MaxPasswordBytes {
		return "", ErrPasswordTooLong
	}
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(bytes), nil
}

// VerifyPassword compares a plaintext password against a stored hash.
// A mismatch is (false, nil); an error means the hash itself could not be used.
func VerifyPassword(password, hash string) (bool, error) {
	// HashPassword never stores such a password, so it cannot match.
	if len(password) > MaxPasswordBytes {
		return false, nil
	}
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, fmt.Errorf("failed to verify password: %w", err)
}

// CheckPasswordHash is VerifyPassword with any failure reported as a mismatch
func CheckPasswordHash(password, hash string) bool {
	ok, err := VerifyPassword(password, hash)
	return err == nil && ok
}
