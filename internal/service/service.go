// Package service holds the account services and the session-invalidation logic.
package service

import (
	"time"

	"github.com/rideon-dev/rideon/internal/domain"
	"github.com/rideon-dev/rideon/internal/jwt"
)

// Jwt is the token issuer/verifier dependency shared by both account services.
type Jwt interface {
	NewToken(accountId domain.AccountId, kind domain.AccountKind) (string, error)
	DecodeToken(jwtStr string) (*jwt.Claims, error)
	TTL() time.Duration
}

// Hasher is the credential hashing dependency.
type Hasher interface {
	Hash(password string) (string, error)
	Verify(candidate, stored string) (bool, error)
}

// BlacklistStorage is the persisted revocation set.
type BlacklistStorage interface {
	BlacklistToken(token string, expiresAt time.Time) error
}
