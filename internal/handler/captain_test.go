package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rideon-dev/rideon/internal/domain"
	internal_errors "github.com/rideon-dev/rideon/internal/errors"
	"github.com/rideon-dev/rideon/internal/middleware"
	"github.com/rideon-dev/rideon/internal/service"
)

func TestRegisterCaptainHandler(t *testing.T) {
	h := &Handler{cfg: testConfig()}

	requestBody := []byte(`{
		"fullname": {"firstname": "Ravi", "lastname": "Kumar"},
		"email": "ravi@example.com",
		"password": "secret123",
		"vehicle": {"color": "red", "plate": "MH12AB1234", "capacity": 4, "type": "car"}
	}`)

	t.Run("successful request", func(t *testing.T) {
		captainId := uuid.New()
		h.captains = &MockCaptainService{
			MockRegister: func(data service.RegisterCaptainData) (domain.Captain, string, error) {
				assert.Equal(t, "red", data.VehicleColor)
				assert.Equal(t, 4, data.VehicleCapacity)
				return domain.Captain{
					Id:       captainId,
					Email:    data.Email,
					Fullname: domain.Fullname{Firstname: data.Firstname, Lastname: data.Lastname},
					Status:   domain.StatusInactive,
					Vehicle:  domain.Vehicle{Color: "red", Plate: "MH12AB1234", Capacity: 4, Type: domain.VehicleCar},
				}, "test_token", nil
			},
		}

		req := createRequest(t, http.MethodPost, "/captains/register", requestBody)
		rr := httptest.NewRecorder()

		h.RegisterCaptain(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.Contains(t, rr.Body.String(), "test_token")
		assert.Contains(t, rr.Body.String(), `"status":"inactive"`)
	})

	t.Run("missing vehicle", func(t *testing.T) {
		req := createRequest(t, http.MethodPost, "/captains/register",
			[]byte(`{"fullname": {"firstname": "Ravi"}, "email": "ravi@example.com", "password": "secret123"}`))
		rr := httptest.NewRecorder()

		h.RegisterCaptain(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("zero capacity", func(t *testing.T) {
		req := createRequest(t, http.MethodPost, "/captains/register",
			[]byte(`{
				"fullname": {"firstname": "Ravi"},
				"email": "ravi@example.com",
				"password": "secret123",
				"vehicle": {"color": "red", "plate": "MH12AB1234", "capacity": 0, "type": "car"}
			}`))
		rr := httptest.NewRecorder()

		h.RegisterCaptain(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("duplicate email", func(t *testing.T) {
		h.captains = &MockCaptainService{
			MockRegister: func(data service.RegisterCaptainData) (domain.Captain, string, error) {
				return domain.Captain{}, "", internal_errors.BadRequest("Captain already exists")
			},
		}

		req := createRequest(t, http.MethodPost, "/captains/register", requestBody)
		rr := httptest.NewRecorder()

		h.RegisterCaptain(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestLoginCaptainHandler(t *testing.T) {
	h := &Handler{cfg: testConfig()}

	t.Run("successful request sets session cookie", func(t *testing.T) {
		h.captains = &MockCaptainService{
			MockLogin: func(email domain.Email, password domain.Password) (domain.Captain, string, error) {
				return domain.Captain{Id: uuid.New(), Email: email}, "test_token", nil
			},
		}

		req := createRequest(t, http.MethodPost, "/captains/login", []byte(`{"email": "ravi@example.com", "password": "secret123"}`))
		rr := httptest.NewRecorder()

		h.LoginCaptain(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		cookies := rr.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, middleware.SessionCookieName, cookies[0].Name)
		assert.Equal(t, "test_token", cookies[0].Value)
	})

	t.Run("invalid credentials", func(t *testing.T) {
		h.captains = &MockCaptainService{
			MockLogin: func(email domain.Email, password domain.Password) (domain.Captain, string, error) {
				return domain.Captain{}, "", internal_errors.Unauthorized("Invalid credentials")
			},
		}

		req := createRequest(t, http.MethodPost, "/captains/login", []byte(`{"email": "ravi@example.com", "password": "wrong1"}`))
		rr := httptest.NewRecorder()

		h.LoginCaptain(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Empty(t, rr.Result().Cookies())
	})
}

func TestCaptainProfileHandler(t *testing.T) {
	h := &Handler{cfg: testConfig()}
	captainId := uuid.New()
	captain := domain.Captain{
		Id:       captainId,
		Email:    "ravi@example.com",
		Fullname: domain.Fullname{Firstname: "Ravi"},
		Status:   domain.StatusActive,
		Vehicle:  domain.Vehicle{Color: "red", Plate: "MH12AB1234", Capacity: 4, Type: domain.VehicleCar},
	}

	t.Run("successful request", func(t *testing.T) {
		h.captains = &MockCaptainService{
			MockProfile: func(id domain.AccountId) (domain.Captain, error) {
				assert.Equal(t, captainId, id)
				return captain, nil
			},
		}

		req := createRequest(t, http.MethodGet, "/captains/profile", nil)
		req = req.WithContext(context.WithValue(req.Context(), middleware.CaptainKey, &captain))
		rr := httptest.NewRecorder()

		h.CaptainProfile(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"plate":"MH12AB1234"`)
	})

	t.Run("missing principal", func(t *testing.T) {
		req := createRequest(t, http.MethodGet, "/captains/profile", nil)
		rr := httptest.NewRecorder()

		h.CaptainProfile(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestLogoutCaptainHandler(t *testing.T) {
	h := &Handler{cfg: testConfig()}

	var revoked string
	h.captains = &MockCaptainService{
		MockLogout: func(token string) error {
			revoked = token
			return nil
		},
	}

	req := createRequest(t, http.MethodGet, "/captains/logout", nil)
	req = req.WithContext(context.WithValue(req.Context(), middleware.TokenKey, "abc"))
	rr := httptest.NewRecorder()

	h.LogoutCaptain(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "abc", revoked)

	cookies := rr.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Less(t, cookies[0].MaxAge, 0)
}
