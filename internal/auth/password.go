package auth

import (
	"crypto/sha256"

	"golang.org/x/crypto/bcrypt"
)

// Passwords are SHA-256 digested before bcrypt, which ignores input past
// 72 bytes.
func prehash(password string) []byte {
	sum := sha256.Sum256([]byte(password))
	return sum[:]
}

// HashPassword returns the bcrypt hash of password.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(prehash(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether password matches hash.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), prehash(password)) == nil
}
