package handler

import (
	"net/http"

	"github.com/rideon-dev/rideon/internal/api"
	internal_errors "github.com/rideon-dev/rideon/internal/errors"
	"github.com/rideon-dev/rideon/internal/middleware"
	"github.com/rideon-dev/rideon/internal/service"
	"github.com/rideon-dev/rideon/internal/utils"
)

// errMissingPrincipal means a protected handler ran without the auth
// middleware attaching a principal. That is a wiring bug, not a client error.
var errMissingPrincipal = &internal_errors.ErrorWithStatusCode{Message: "Internal server error", StatusCode: http.StatusInternalServerError}

func (h *Handler) RegisterCaptain(w http.ResponseWriter, r *http.Request) {
	var body api.RegisterCaptainRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteError(w, err)
		return
	}

	captain, token, err := h.captains.Register(service.RegisterCaptainData{
		Firstname:       body.Fullname.Firstname,
		Lastname:        body.Fullname.Lastname,
		Email:           body.Email,
		Password:        body.Password,
		VehicleColor:    body.Vehicle.Color,
		VehiclePlate:    body.Vehicle.Plate,
		VehicleCapacity: body.Vehicle.Capacity,
		VehicleType:     body.Vehicle.Type,
	})
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, api.CaptainResponse{Token: token, Captain: captain})
}

func (h *Handler) LoginCaptain(w http.ResponseWriter, r *http.Request) {
	var body api.LoginRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteError(w, err)
		return
	}

	captain, token, err := h.captains.Login(body.Email, body.Password)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	h.setSessionCookie(w, token)
	writeJSON(w, http.StatusOK, api.CaptainResponse{Token: token, Captain: captain})
}

func (h *Handler) CaptainProfile(w http.ResponseWriter, r *http.Request) {
	principal := middleware.CaptainFromContext(r)
	if principal == nil {
		utils.WriteError(w, errMissingPrincipal)
		return
	}

	captain, err := h.captains.Profile(principal.Id)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, api.CaptainResponse{Captain: captain})
}

func (h *Handler) LogoutCaptain(w http.ResponseWriter, r *http.Request) {
	if err := h.captains.Logout(middleware.TokenFromContext(r)); err != nil {
		utils.WriteError(w, err)
		return
	}

	middleware.ClearSessionCookie(w, h.cfg.Public.SecureCookies)
	writeJSON(w, http.StatusOK, api.MessageResponse{Message: "Logged out successfully"})
}
