// Package security holds the credential and token primitives used by the
// authentication flow: password hashing, access-token issue/validation,
// bearer header extraction and ownership checks.
package security

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"cashflow-api/internal/model"
)

// PasswordHasher hashes and verifies passwords with bcrypt. The salt is
// generated per call and stored inside the digest.
type PasswordHasher struct {
	cost  int
	decoy string
}

func NewPasswordHasher(cost int) (*PasswordHasher, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	h := &PasswordHasher{cost: cost}

	seed := make([]byte, 16)
	if _, err := rand.Read(seed); err != nil {
		return nil, fmt.Errorf("generate decoy seed: %w", err)
	}

	decoy, err := h.Hash(hex.EncodeToString(seed))
	if err != nil {
		return nil, fmt.Errorf("generate decoy digest: %w", err)
	}
	h.decoy = decoy

	return h, nil
}

// Hash fails with model.ErrInvalidInput for passwords bcrypt cannot take.
func (h *PasswordHasher) Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", fmt.Errorf("%w: %w", model.ErrInvalidInput, err)
	}
	if err != nil {
		return "", err
	}

	return string(digest), nil
}

// Verify reports whether plaintext matches digest. An empty plaintext, an
// empty digest or a digest that is not bcrypt never matches.
func (h *PasswordHasher) Verify(plaintext string, digest string) bool {
	if plaintext == "" || digest == "" {
		return false
	}

	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}

// DecoyDigest is a digest of a random value nobody knows. Verifying against
// it costs the same as a real check and always fails.
func (h *PasswordHasher) DecoyDigest() string {
	return h.decoy
}
