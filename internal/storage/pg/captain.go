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
// Public Methods (satisfy the service.CaptainStorage interface)
// =========================================================================

func (s *Storage) SaveCaptain(captain domain.Captain) error {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	return s.withTx(ctx, func(tx *sql.Tx) error {
		return s.saveCaptain(tx, captain)
	})
}

// CaptainByEmail fetches a captain including the password hash, for login only.
func (s *Storage) CaptainByEmail(email domain.Email) (domain.Captain, error) {
	return s.captainByEmail(s.db, email)
}

// CaptainById fetches a captain without the password hash.
func (s *Storage) CaptainById(id domain.AccountId) (domain.Captain, error) {
	return s.captainById(s.db, id)
}

func (s *Storage) CaptainEmailExists(email domain.Email) (bool, error) {
	return s.emailExists(s.db, "captains", email)
}

// =========================================================================
// Internal Methods (Core Database Logic)
// =========================================================================

func (s *Storage) saveCaptain(q Querier, captain domain.Captain) error {
	var lat, lng *float64
	if captain.Location != nil {
		lat, lng = &captain.Location.Lat, &captain.Location.Lng
	}
	_, err := q.Exec(`
        INSERT INTO captains(id, email, firstname, lastname, password_hash, status,
                             vehicle_color, vehicle_plate, vehicle_capacity, vehicle_type,
                             lat, lng, socket_id)
        VALUES($1, $2, $3, NULLIF($4, ''), $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		captain.Id, captain.Email, captain.Fullname.Firstname, captain.Fullname.Lastname,
		captain.PassHash, captain.Status,
		captain.Vehicle.Color, captain.Vehicle.Plate, captain.Vehicle.Capacity, captain.Vehicle.Type,
		lat, lng, captain.SocketId,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return internal_errors.BadRequest("Captain already exists")
		}
		return fmt.Errorf("failed to insert captain: %w", err)
	}
	return nil
}

func (s *Storage) captainByEmail(q Querier, email domain.Email) (domain.Captain, error) {
	var captain domain.Captain
	var lastname, socketId sql.NullString
	var lat, lng sql.NullFloat64
	var status string
	err := q.QueryRow(`
        SELECT id, email, firstname, lastname, password_hash, status,
               vehicle_color, vehicle_plate, vehicle_capacity, vehicle_type,
               lat, lng, socket_id
        FROM captains WHERE email = $1`,
		email,
	).Scan(&captain.Id, &captain.Email, &captain.Fullname.Firstname, &lastname,
		&captain.PassHash, &status,
		&captain.Vehicle.Color, &captain.Vehicle.Plate, &captain.Vehicle.Capacity, &captain.Vehicle.Type,
		&lat, &lng, &socketId)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Captain{}, internal_errors.NotFound("Captain not found")
		}
		return domain.Captain{}, fmt.Errorf("failed to query captain: %w", err)
	}
	if captain.Status, err = domain.NewCaptainStatus(status); err != nil {
		return domain.Captain{}, fmt.Errorf("captain %s has invalid status %q: %w", captain.Id, status, err)
	}
	applyCaptainNullables(&captain, lastname, lat, lng, socketId)
	return captain, nil
}

func (s *Storage) captainById(q Querier, id domain.AccountId) (domain.Captain, error) {
	var captain domain.Captain
	var lastname, socketId sql.NullString
	var lat, lng sql.NullFloat64
	var status string
	err := q.QueryRow(`
        SELECT id, email, firstname, lastname, status,
               vehicle_color, vehicle_plate, vehicle_capacity, vehicle_type,
               lat, lng, socket_id
        FROM captains WHERE id = $1`,
		id,
	).Scan(&captain.Id, &captain.Email, &captain.Fullname.Firstname, &lastname,
		&status,
		&captain.Vehicle.Color, &captain.Vehicle.Plate, &captain.Vehicle.Capacity, &captain.Vehicle.Type,
		&lat, &lng, &socketId)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Captain{}, internal_errors.NotFound("Captain not found")
		}
		return domain.Captain{}, fmt.Errorf("failed to query captain: %w", err)
	}
	if captain.Status, err = domain.NewCaptainStatus(status); err != nil {
		return domain.Captain{}, fmt.Errorf("captain %s has invalid status %q: %w", captain.Id, status, err)
	}
	applyCaptainNullables(&captain, lastname, lat, lng, socketId)
	return captain, nil
}

func applyCaptainNullables(captain *domain.Captain, lastname sql.NullString, lat, lng sql.NullFloat64, socketId sql.NullString) {
	if lastname.Valid {
		captain.Fullname.Lastname = lastname.String
	}
	if lat.Valid && lng.Valid {
		captain.Location = &domain.Location{Lat: lat.Float64, Lng: lng.Float64}
	}
	if socketId.Valid {
		captain.SocketId = &socketId.String
	}
}
