package pg

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// =========================================================================
// Public Methods (satisfy the service blacklist interfaces)
// =========================================================================

// BlacklistToken records a revoked token. Idempotent: blacklisting the same
// token twice is not an error. The stored expiry bounds how long the row has
// to live before the sweeper may drop it.
func (s *Storage) BlacklistToken(token string, expiresAt time.Time) error {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	return s.withTx(ctx, func(tx *sql.Tx) error {
		return s.blacklistToken(tx, token, expiresAt)
	})
}

// IsTokenBlacklisted is consulted synchronously before honoring any request
// bearing that token.
func (s *Storage) IsTokenBlacklisted(token string) (bool, error) {
	return s.isTokenBlacklisted(s.db, token)
}

// DeleteExpiredBlacklistedTokens prunes rows whose token expiry has passed.
// A structurally expired token is rejected by signature verification anyway,
// so dropping its blacklist row loses nothing.
func (s *Storage) DeleteExpiredBlacklistedTokens() (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	var deleted int64
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		var err error
		deleted, err = s.deleteExpiredBlacklistedTokens(tx)
		return err
	})
	return deleted, err
}

// =========================================================================
// Internal Methods (Core Database Logic)
// =========================================================================

func (s *Storage) blacklistToken(q Querier, token string, expiresAt time.Time) error {
	_, err := q.Exec(`
        INSERT INTO blacklisted_tokens(token, expires_at)
        VALUES($1, $2)
        ON CONFLICT (token) DO NOTHING`,
		token, expiresAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to blacklist token: %w", err)
	}
	return nil
}

func (s *Storage) isTokenBlacklisted(q Querier, token string) (bool, error) {
	var exists bool
	err := q.QueryRow("SELECT EXISTS(SELECT 1 FROM blacklisted_tokens WHERE token = $1)", token).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check token blacklist: %w", err)
	}
	return exists, nil
}

func (s *Storage) deleteExpiredBlacklistedTokens(q Querier) (int64, error) {
	result, err := q.Exec("DELETE FROM blacklisted_tokens WHERE expires_at < NOW() AT TIME ZONE 'utc'")
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired blacklisted tokens: %w", err)
	}
	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to check affected rows for blacklist sweep: %w", err)
	}
	return deleted, nil
}
