package service

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/rideon-dev/rideon/internal/domain"
	internal_errors "github.com/rideon-dev/rideon/internal/errors"
	"github.com/rideon-dev/rideon/internal/logger"
)

type UserService interface {
	Register(data RegisterUserData) (domain.User, string, error)
	Login(email domain.Email, password domain.Password) (domain.User, string, error)
	Logout(token string) error
	Profile(id domain.AccountId) (domain.User, error)
}

type RegisterUserData struct {
	Firstname string
	Lastname  string
	Email     domain.Email
	Password  domain.Password
}

type UserStorage interface {
	SaveUser(user domain.User) error
	UserByEmail(email domain.Email) (domain.User, error)
	UserById(id domain.AccountId) (domain.User, error)
	UserEmailExists(email domain.Email) (bool, error)
}

type User struct {
	storage UserStorage
	hasher  Hasher
	jwt     Jwt
	revoker *Revoker
}

func NewUser(storage UserStorage, hasher Hasher, jwt Jwt, revoker *Revoker) *User {
	return &User{storage: storage, hasher: hasher, jwt: jwt, revoker: revoker}
}

// Register creates a user account and issues a session token.
// The duplicate pre-check is best-effort; the storage unique constraint is
// what actually closes the race.
func (s *User) Register(data RegisterUserData) (domain.User, string, error) {
	email := domain.NormalizeEmail(data.Email)

	fullname, err := domain.NewFullname(data.Firstname, data.Lastname)
	if err != nil {
		return domain.User{}, "", err
	}

	exists, err := s.storage.UserEmailExists(email)
	if err != nil {
		return domain.User{}, "", err
	}
	if exists {
		return domain.User{}, "", internal_errors.BadRequest("User already exists")
	}

	passHash, err := s.hasher.Hash(data.Password)
	if err != nil {
		return domain.User{}, "", err
	}

	user := domain.User{
		Id:       uuid.New(),
		Email:    email,
		Fullname: fullname,
		PassHash: passHash,
	}
	if err := s.storage.SaveUser(user); err != nil {
		return domain.User{}, "", err
	}

	token, err := s.jwt.NewToken(user.Id, domain.KindUser)
	if err != nil {
		logger.Log.Error("failed to create token", "user_id", user.Id, "error", err)
		return domain.User{}, "", err
	}

	user.PassHash = ""
	return user, token, nil
}

// Login verifies credentials and issues a session token.
// Unknown email and wrong password both surface as the same generic 401
// to not leak which accounts exist.
func (s *User) Login(email domain.Email, password domain.Password) (domain.User, string, error) {
	email = domain.NormalizeEmail(email)

	user, err := s.storage.UserByEmail(email)
	if err != nil {
		if internal_errors.IsNotFound(err) {
			return domain.User{}, "", invalidCredentials()
		}
		return domain.User{}, "", err
	}

	ok, err := s.hasher.Verify(password, user.PassHash)
	if err != nil {
		return domain.User{}, "", err
	}
	if !ok {
		logger.Log.Debug("password verification failed", "user_id", user.Id)
		return domain.User{}, "", invalidCredentials()
	}

	token, err := s.jwt.NewToken(user.Id, domain.KindUser)
	if err != nil {
		logger.Log.Error("failed to create token", "user_id", user.Id, "error", err)
		return domain.User{}, "", err
	}

	user.PassHash = ""
	return user, token, nil
}

func (s *User) Logout(token string) error {
	return s.revoker.Revoke(token)
}

func (s *User) Profile(id domain.AccountId) (domain.User, error) {
	return s.storage.UserById(id)
}

func invalidCredentials() error {
	return &internal_errors.ErrorWithStatusCode{Message: "Invalid credentials", StatusCode: http.StatusUnauthorized}
}
