package service

import (
	"time"

	"github.com/rideon-dev/rideon/internal/domain"
	internal_errors "github.com/rideon-dev/rideon/internal/errors"
	"github.com/rideon-dev/rideon/internal/jwt"
)

// Shared mocks for the account-service tests.

type MockUserStorage struct {
	MockSaveUser        func(user domain.User) error
	MockUserByEmail     func(email domain.Email) (domain.User, error)
	MockUserById        func(id domain.AccountId) (domain.User, error)
	MockUserEmailExists func(email domain.Email) (bool, error)
}

func (m *MockUserStorage) SaveUser(user domain.User) error {
	if m.MockSaveUser != nil {
		return m.MockSaveUser(user)
	}
	return nil // Default behavior
}

func (m *MockUserStorage) UserByEmail(email domain.Email) (domain.User, error) {
	if m.MockUserByEmail != nil {
		return m.MockUserByEmail(email)
	}
	return domain.User{}, internal_errors.NotFound("User not found")
}

func (m *MockUserStorage) UserById(id domain.AccountId) (domain.User, error) {
	if m.MockUserById != nil {
		return m.MockUserById(id)
	}
	return domain.User{}, internal_errors.NotFound("User not found")
}

func (m *MockUserStorage) UserEmailExists(email domain.Email) (bool, error) {
	if m.MockUserEmailExists != nil {
		return m.MockUserEmailExists(email)
	}
	return false, nil // Default behavior
}

type MockCaptainStorage struct {
	MockSaveCaptain        func(captain domain.Captain) error
	MockCaptainByEmail     func(email domain.Email) (domain.Captain, error)
	MockCaptainById        func(id domain.AccountId) (domain.Captain, error)
	MockCaptainEmailExists func(email domain.Email) (bool, error)
}

func (m *MockCaptainStorage) SaveCaptain(captain domain.Captain) error {
	if m.MockSaveCaptain != nil {
		return m.MockSaveCaptain(captain)
	}
	return nil // Default behavior
}

func (m *MockCaptainStorage) CaptainByEmail(email domain.Email) (domain.Captain, error) {
	if m.MockCaptainByEmail != nil {
		return m.MockCaptainByEmail(email)
	}
	return domain.Captain{}, internal_errors.NotFound("Captain not found")
}

func (m *MockCaptainStorage) CaptainById(id domain.AccountId) (domain.Captain, error) {
	if m.MockCaptainById != nil {
		return m.MockCaptainById(id)
	}
	return domain.Captain{}, internal_errors.NotFound("Captain not found")
}

func (m *MockCaptainStorage) CaptainEmailExists(email domain.Email) (bool, error) {
	if m.MockCaptainEmailExists != nil {
		return m.MockCaptainEmailExists(email)
	}
	return false, nil // Default behavior
}

type MockHasher struct {
	MockHash   func(password string) (string, error)
	MockVerify func(candidate, stored string) (bool, error)
}

func (m *MockHasher) Hash(password string) (string, error) {
	if m.MockHash != nil {
		return m.MockHash(password)
	}
	return "hashed:" + password, nil // Default behavior
}

func (m *MockHasher) Verify(candidate, stored string) (bool, error) {
	if m.MockVerify != nil {
		return m.MockVerify(candidate, stored)
	}
	return "hashed:"+candidate == stored, nil // Default behavior
}

type MockJwt struct {
	MockNewToken    func(accountId domain.AccountId, kind domain.AccountKind) (string, error)
	MockDecodeToken func(jwtStr string) (*jwt.Claims, error)
	MockTTL         func() time.Duration
}

func (m *MockJwt) NewToken(accountId domain.AccountId, kind domain.AccountKind) (string, error) {
	if m.MockNewToken != nil {
		return m.MockNewToken(accountId, kind)
	}
	return "test_token", nil // Default behavior
}

func (m *MockJwt) DecodeToken(jwtStr string) (*jwt.Claims, error) {
	if m.MockDecodeToken != nil {
		return m.MockDecodeToken(jwtStr)
	}
	return nil, jwt.ErrTokenInvalid
}

func (m *MockJwt) TTL() time.Duration {
	if m.MockTTL != nil {
		return m.MockTTL()
	}
	return 24 * time.Hour // Default behavior
}

type MockBlacklistStorage struct {
	MockBlacklistToken func(token string, expiresAt time.Time) error
}

func (m *MockBlacklistStorage) BlacklistToken(token string, expiresAt time.Time) error {
	if m.MockBlacklistToken != nil {
		return m.MockBlacklistToken(token, expiresAt)
	}
	return nil // Default behavior
}
