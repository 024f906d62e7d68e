package security

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

const (
	saltLength = 16
	iterations = 120000
	keyLength  = 32
)

// HashPassword derives a PBKDF2-SHA256 digest of the password. A random salt
// is generated when none is supplied; passing the stored salt reproduces the
// stored digest for the same password.
func HashPassword(password string, salt []byte) ([]byte, []byte, error) {
	if salt == nil {
		salt = make([]byte, saltLength)
		if _, err := rand.Read(salt); err != nil {
			return nil, nil, fmt.Errorf("security.HashPassword: %w", err)
		}
	}
	hash := pbkdf2.Key([]byte(password), salt, iterations, keyLength, sha256.New)
	return salt, hash, nil
}

// VerifyPassword recomputes the digest with the stored salt and compares it in
// constant time. A wrong password and a corrupted digest are indistinguishable.
func VerifyPassword(password string, salt, hash []byte) bool {
	recomputed := pbkdf2.Key([]byte(password), salt, iterations, keyLength, sha256.New)
	if len(recomputed) != len(hash) {
		return false
	}
	return subtle.ConstantTimeCompare(recomputed, hash) == 1
}
