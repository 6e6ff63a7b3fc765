package auth

import "golang.org/x/crypto/bcrypt"

const bcryptCost = 10

// Hasher produces and verifies salted bcrypt digests. bcrypt embeds a fresh
// random salt on every call, so hashing the same plaintext twice yields
// different digests.
type Hasher struct {
	cost int
}

func NewHasher() *Hasher {
	return &Hasher{cost: bcryptCost}
}

func (h *Hasher) Hash(plaintext string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// Check reports whether plaintext matches digest. A malformed digest is
// reported as a mismatch, not an error.
func (h *Hasher) Check(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
