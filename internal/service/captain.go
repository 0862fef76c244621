package service

import (
	"github.com/google/uuid"

	"github.com/rideon-dev/rideon/internal/domain"
	internal_errors "github.com/rideon-dev/rideon/internal/errors"
	"github.com/rideon-dev/rideon/internal/logger"
)

type CaptainService interface {
	Register(data RegisterCaptainData) (domain.Captain, string, error)
	Login(email domain.Email, password domain.Password) (domain.Captain, string, error)
	Logout(token string) error
	Profile(id domain.AccountId) (domain.Captain, error)
}

type RegisterCaptainData struct {
	Firstname       string
	Lastname        string
	Email           domain.Email
	Password        domain.Password
	VehicleColor    string
	VehiclePlate    string
	VehicleCapacity int
	VehicleType     string
}

type CaptainStorage interface {
	SaveCaptain(captain domain.Captain) error
	CaptainByEmail(email domain.Email) (domain.Captain, error)
	CaptainById(id domain.AccountId) (domain.Captain, error)
	CaptainEmailExists(email domain.Email) (bool, error)
}

type Captain struct {
	storage CaptainStorage
	hasher  Hasher
	jwt     Jwt
	revoker *Revoker
}

func NewCaptain(storage CaptainStorage, hasher Hasher, jwt Jwt, revoker *Revoker) *Captain {
	return &Captain{storage: storage, hasher: hasher, jwt: jwt, revoker: revoker}
}

// Register creates a captain account with its vehicle descriptor and issues
// a session token. New captains start inactive until dispatch marks them
// available.
func (s *Captain) Register(data RegisterCaptainData) (domain.Captain, string, error) {
	email := domain.NormalizeEmail(data.Email)

	fullname, err := domain.NewFullname(data.Firstname, data.Lastname)
	if err != nil {
		return domain.Captain{}, "", err
	}

	vehicle, err := domain.NewVehicle(data.VehicleColor, data.VehiclePlate, data.VehicleCapacity, data.VehicleType)
	if err != nil {
		return domain.Captain{}, "", err
	}

	exists, err := s.storage.CaptainEmailExists(email)
	if err != nil {
		return domain.Captain{}, "", err
	}
	if exists {
		return domain.Captain{}, "", internal_errors.BadRequest("Captain already exists")
	}

	passHash, err := s.hasher.Hash(data.Password)
	if err != nil {
		return domain.Captain{}, "", err
	}

	captain := domain.Captain{
		Id:       uuid.New(),
		Email:    email,
		Fullname: fullname,
		PassHash: passHash,
		Status:   domain.StatusInactive,
		Vehicle:  vehicle,
	}
	if err := s.storage.SaveCaptain(captain); err != nil {
		return domain.Captain{}, "", err
	}

	token, err := s.jwt.NewToken(captain.Id, domain.KindCaptain)
	if err != nil {
		logger.Log.Error("failed to create token", "captain_id", captain.Id, "error", err)
		return domain.Captain{}, "", err
	}

	captain.PassHash = ""
	return captain, token, nil
}

func (s *Captain) Login(email domain.Email, password domain.Password) (domain.Captain, string, error) {
	email = domain.NormalizeEmail(email)

	captain, err := s.storage.CaptainByEmail(email)
	if err != nil {
		if internal_errors.IsNotFound(err) {
			return domain.Captain{}, "", invalidCredentials()
		}
		return domain.Captain{}, "", err
	}

	ok, err := s.hasher.Verify(password, captain.PassHash)
	if err != nil {
		return domain.Captain{}, "", err
	}
	if !ok {
		logger.Log.Debug("password verification failed", "captain_id", captain.Id)
		return domain.Captain{}, "", invalidCredentials()
	}

	token, err := s.jwt.NewToken(captain.Id, domain.KindCaptain)
	if err != nil {
		logger.Log.Error("failed to create token", "captain_id", captain.Id, "error", err)
		return domain.Captain{}, "", err
	}

	captain.PassHash = ""
	return captain, token, nil
}

func (s *Captain) Logout(token string) error {
	return s.revoker.Revoke(token)
}

func (s *Captain) Profile(id domain.AccountId) (domain.Captain, error) {
	return s.storage.CaptainById(id)
}
