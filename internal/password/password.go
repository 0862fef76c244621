// Package password wraps bcrypt hashing for account credentials.
package password

import (
	"net/http"

	"golang.org/x/crypto/bcrypt"

	internal_errors "github.com/rideon-dev/rideon/internal/errors"
	"github.com/rideon-dev/rideon/internal/logger"
)

// DefaultCost matches the work factor the rest of the deployment assumes.
const DefaultCost = 10

type Hasher struct {
	cost int
}

func New(cost int) *Hasher {
	if cost < bcrypt.MinCost {
		cost = DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash produces a salted bcrypt hash. Two hashes of the same input never match.
// Fails only on internal failure, surfaced as 500.
func (h *Hasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		logger.Log.Error("failed to hash password", "error", err)
		return "", &internal_errors.ErrorWithStatusCode{Message: "Internal server error", StatusCode: http.StatusInternalServerError}
	}
	return string(hash), nil
}

// Verify reports whether candidate matches the stored hash.
// A mismatch is not an error; a malformed stored hash is.
func (h *Hasher) Verify(candidate, stored string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(stored), []byte(candidate))
	if err == nil {
		return true, nil
	}
	if err == bcrypt.ErrMismatchedHashAndPassword {
		return false, nil
	}
	logger.Log.Error("stored password hash is malformed", "error", err)
	return false, &internal_errors.ErrorWithStatusCode{Message: "Internal server error", StatusCode: http.StatusInternalServerError}
}
