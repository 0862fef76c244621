package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rideon-dev/rideon/internal/domain"
	internal_errors "github.com/rideon-dev/rideon/internal/errors"
)

// =========================================================================
// Public Methods (satisfy the service.UserStorage interface)
// =========================================================================

// SaveUser inserts a new user record inside a transaction. A conflict on the
// email unique constraint maps to a 400 so a lost duplicate-check race
// surfaces as DuplicateEmail, not a 500.
func (s *Storage) SaveUser(user domain.User) error {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	return s.withTx(ctx, func(tx *sql.Tx) error {
		return s.saveUser(tx, user)
	})
}

// UserByEmail fetches a user including the password hash. Only the login path
// may call this; every other read goes through UserById which excludes the hash.
func (s *Storage) UserByEmail(email domain.Email) (domain.User, error) {
	return s.userByEmail(s.db, email)
}

// UserById fetches a user without the password hash.
func (s *Storage) UserById(id domain.AccountId) (domain.User, error) {
	return s.userById(s.db, id)
}

// UserEmailExists reports whether a user with the given email is registered.
func (s *Storage) UserEmailExists(email domain.Email) (bool, error) {
	return s.emailExists(s.db, "users", email)
}

// =========================================================================
// Internal Methods (Core Database Logic)
// These methods accept a Querier and are transaction-agnostic.
// =========================================================================

func (s *Storage) saveUser(q Querier, user domain.User) error {
	var lat, lng *float64
	if user.Location != nil {
		lat, lng = &user.Location.Lat, &user.Location.Lng
	}
	_, err := q.Exec(`
        INSERT INTO users(id, email, firstname, lastname, password_hash, lat, lng, socket_id)
        VALUES($1, $2, $3, NULLIF($4, ''), $5, $6, $7, $8)`,
		user.Id, user.Email, user.Fullname.Firstname, user.Fullname.Lastname, user.PassHash, lat, lng, user.SocketId,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return internal_errors.BadRequest("User already exists")
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

func (s *Storage) userByEmail(q Querier, email domain.Email) (domain.User, error) {
	var user domain.User
	var lastname, socketId sql.NullString
	var lat, lng sql.NullFloat64
	err := q.QueryRow(`
        SELECT id, email, firstname, lastname, password_hash, lat, lng, socket_id
        FROM users WHERE email = $1`,
		email,
	).Scan(&user.Id, &user.Email, &user.Fullname.Firstname, &lastname, &user.PassHash, &lat, &lng, &socketId)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, internal_errors.NotFound("User not found")
		}
		return domain.User{}, fmt.Errorf("failed to query user: %w", err)
	}
	applyUserNullables(&user, lastname, lat, lng, socketId)
	return user, nil
}

func (s *Storage) userById(q Querier, id domain.AccountId) (domain.User, error) {
	var user domain.User
	var lastname, socketId sql.NullString
	var lat, lng sql.NullFloat64
	err := q.QueryRow(`
        SELECT id, email, firstname, lastname, lat, lng, socket_id
        FROM users WHERE id = $1`,
		id,
	).Scan(&user.Id, &user.Email, &user.Fullname.Firstname, &lastname, &lat, &lng, &socketId)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, internal_errors.NotFound("User not found")
		}
		return domain.User{}, fmt.Errorf("failed to query user: %w", err)
	}
	applyUserNullables(&user, lastname, lat, lng, socketId)
	return user, nil
}

func (s *Storage) emailExists(q Querier, table string, email domain.Email) (bool, error) {
	// table is always a compile-time constant ("users" or "captains")
	var exists bool
	err := q.QueryRow("SELECT EXISTS(SELECT 1 FROM "+table+" WHERE email = $1)", email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check email existence: %w", err)
	}
	return exists, nil
}

func applyUserNullables(user *domain.User, lastname sql.NullString, lat, lng sql.NullFloat64, socketId sql.NullString) {
	if lastname.Valid {
		user.Fullname.Lastname = lastname.String
	}
	if lat.Valid && lng.Valid {
		user.Location = &domain.Location{Lat: lat.Float64, Lng: lng.Float64}
	}
	if socketId.Valid {
		user.SocketId = &socketId.String
	}
}
