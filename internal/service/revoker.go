package service

import (
	"net/http"
	"time"

	internal_errors "github.com/rideon-dev/rideon/internal/errors"
	"github.com/rideon-dev/rideon/internal/logger"
)

// Revoker blacklists session tokens on logout. The entry's expiry is aligned
// with the token's own expiry so the sweeper can drop it once the token would
// have died naturally anyway.
type Revoker struct {
	jwt     Jwt
	storage BlacklistStorage
}

func NewRevoker(jwt Jwt, storage BlacklistStorage) *Revoker {
	return &Revoker{jwt: jwt, storage: storage}
}

// Revoke records the token as revoked. A missing token is a 401: logout
// requires a session to end, uniformly for users and captains.
// A storage failure propagates; logout must not silently succeed while the
// token stays valid.
func (r *Revoker) Revoke(token string) error {
	if token == "" {
		return &internal_errors.ErrorWithStatusCode{Message: "Unauthorized", StatusCode: http.StatusUnauthorized}
	}

	// Tokens that no longer decode still get a TTL-bounded entry.
	expiresAt := time.Now().Add(r.jwt.TTL())
	if claims, err := r.jwt.DecodeToken(token); err == nil {
		expiresAt = claims.ExpiresAt
	}

	if err := r.storage.BlacklistToken(token, expiresAt); err != nil {
		logger.Log.Error("failed to blacklist token on logout", "error", err)
		return err
	}
	return nil
}
