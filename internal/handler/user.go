package handler

import (
	"net/http"

	"github.com/rideon-dev/rideon/internal/api"
	"github.com/rideon-dev/rideon/internal/middleware"
	"github.com/rideon-dev/rideon/internal/service"
	"github.com/rideon-dev/rideon/internal/utils"
)

func (h *Handler) RegisterUser(w http.ResponseWriter, r *http.Request) {
	var body api.RegisterUserRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteError(w, err)
		return
	}

	user, token, err := h.users.Register(service.RegisterUserData{
		Firstname: body.Fullname.Firstname,
		Lastname:  body.Fullname.Lastname,
		Email:     body.Email,
		Password:  body.Password,
	})
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, api.UserResponse{Token: token, User: user})
}

func (h *Handler) LoginUser(w http.ResponseWriter, r *http.Request) {
	var body api.LoginRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteError(w, err)
		return
	}

	user, token, err := h.users.Login(body.Email, body.Password)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	h.setSessionCookie(w, token)
	writeJSON(w, http.StatusOK, api.UserResponse{Token: token, User: user})
}

func (h *Handler) UserProfile(w http.ResponseWriter, r *http.Request) {
	principal := middleware.UserFromContext(r)
	if principal == nil {
		utils.WriteError(w, errMissingPrincipal)
		return
	}

	user, err := h.users.Profile(principal.Id)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, api.UserResponse{User: user})
}

func (h *Handler) LogoutUser(w http.ResponseWriter, r *http.Request) {
	if err := h.users.Logout(middleware.TokenFromContext(r)); err != nil {
		utils.WriteError(w, err)
		return
	}

	middleware.ClearSessionCookie(w, h.cfg.Public.SecureCookies)
	writeJSON(w, http.StatusOK, api.MessageResponse{Message: "Logged out successfully"})
}
