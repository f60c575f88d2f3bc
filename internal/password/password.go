package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const hashCost = 10

// Hash generates a salted bcrypt hash of the given plaintext.
func Hash(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), hashCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// Verify reports whether plaintext matches the stored hash. The comparison
// is constant time; a malformed hash verifies as false.
func Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
