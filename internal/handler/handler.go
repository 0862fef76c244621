package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rideon-dev/rideon/internal/config"
	"github.com/rideon-dev/rideon/internal/logger"
	"github.com/rideon-dev/rideon/internal/middleware"
	"github.com/rideon-dev/rideon/internal/service"
)

// Pinger is the storage dependency of the readiness probe.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	users    service.UserService
	captains service.CaptainService
	cfg      *config.Config
	health   Pinger
}

func New(users service.UserService, captains service.CaptainService, cfg *config.Config, health Pinger) *Handler {
	return &Handler{users: users, captains: captains, cfg: cfg, health: health}
}

func writeJSON(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Error("failed to encode response", "error", err)
	}
}

// setSessionCookie attaches the session token as an httpOnly cookie with a
// max-age matching the token lifetime.
func (h *Handler) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Path:     "/",
		Name:     middleware.SessionCookieName,
		Value:    token,
		MaxAge:   int(h.cfg.JwtTTL().Seconds()),
		HttpOnly: true,
		Secure:   h.cfg.Public.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}
