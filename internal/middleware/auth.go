package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/rideon-dev/rideon/internal/domain"
	internal_errors "github.com/rideon-dev/rideon/internal/errors"
	"github.com/rideon-dev/rideon/internal/jwt"
	"github.com/rideon-dev/rideon/internal/logger"
	"github.com/rideon-dev/rideon/internal/utils"
)

// SessionCookieName is the cookie carrying the session token. The cookie
// takes precedence over the Authorization header.
const SessionCookieName = "token"

// BlacklistChecker defines the revocation check needed by auth middleware.
type BlacklistChecker interface {
	IsTokenBlacklisted(token string) (bool, error)
}

// UserResolver and CaptainResolver fetch the principal after token
// verification. The resolved account never includes the password hash.
type UserResolver interface {
	UserById(id domain.AccountId) (domain.User, error)
}

type CaptainResolver interface {
	CaptainById(id domain.AccountId) (domain.Captain, error)
}

// Keys to store the principal and raw token in the request context
type key int

const (
	UserKey key = iota
	CaptainKey
	TokenKey
)

// Auth holds dependencies for authentication middleware
type Auth struct {
	jwtService    jwt.JwtService
	blacklist     BlacklistChecker
	users         UserResolver
	captains      CaptainResolver
	secureCookies bool
}

func NewAuth(jwtService jwt.JwtService, blacklist BlacklistChecker, users UserResolver, captains CaptainResolver, secureCookies bool) *Auth {
	return &Auth{
		jwtService:    jwtService,
		blacklist:     blacklist,
		users:         users,
		captains:      captains,
		secureCookies: secureCookies,
	}
}

// RequireUser returns middleware that authenticates a user session.
func (a *Auth) RequireUser() func(http.Handler) http.Handler {
	return a.auth(domain.KindUser)
}

// RequireCaptain returns middleware that authenticates a captain session.
func (a *Auth) RequireCaptain() func(http.Handler) http.Handler {
	return a.auth(domain.KindCaptain)
}

// Sentinel errors for the rejection paths. They stay internal: every
// rejection surfaces to the client as the same generic 401 so absent,
// invalid, expired and blacklisted tokens are indistinguishable.
var (
	errNoToken      = errorString("no token")
	errBlacklisted  = errorString("token blacklisted")
	errKindMismatch = errorString("token kind mismatch")
	errAccountGone  = errorString("account no longer exists")
)

type errorString string

func (e errorString) Error() string { return string(e) }

// ExtractToken pulls the session token from the request: cookie first
// (browser clients), then Authorization: Bearer (API/mobile clients).
func ExtractToken(r *http.Request) string {
	if cookie, err := r.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	if token, found := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer "); found {
		return token
	}
	return ""
}

// authenticate walks the per-request state machine: token present ->
// not blacklisted -> verify -> kind matches. It returns the validated claims.
// A blacklist store failure is the only path that is not a 401.
func (a *Auth) authenticate(r *http.Request, kind domain.AccountKind) (*jwt.Claims, string, error) {
	token := ExtractToken(r)
	if token == "" {
		return nil, "", errNoToken
	}

	// Revocation check comes first: a blacklisted token is dead even if it
	// would still verify.
	blacklisted, err := a.blacklist.IsTokenBlacklisted(token)
	if err != nil {
		logger.Log.Error("blacklist check failed", "error", err)
		return nil, "", err
	}
	if blacklisted {
		return nil, "", errBlacklisted
	}

	claims, err := a.jwtService.DecodeToken(token)
	if err != nil {
		return nil, "", err
	}

	if claims.Kind != kind {
		return nil, "", errKindMismatch
	}

	return claims, token, nil
}

func (a *Auth) auth(kind domain.AccountKind) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, token, err := a.authenticate(r, kind)
			if err != nil {
				a.reject(w, err)
				return
			}

			// Resolve the principal; an account deleted after token issuance
			// maps to the same generic 401.
			ctx := r.Context()
			switch kind {
			case domain.KindUser:
				user, err := a.users.UserById(claims.AccountId)
				if err != nil {
					if internal_errors.IsNotFound(err) {
						err = errAccountGone
					}
					a.reject(w, err)
					return
				}
				ctx = context.WithValue(ctx, UserKey, &user)
			case domain.KindCaptain:
				captain, err := a.captains.CaptainById(claims.AccountId)
				if err != nil {
					if internal_errors.IsNotFound(err) {
						err = errAccountGone
					}
					a.reject(w, err)
					return
				}
				ctx = context.WithValue(ctx, CaptainKey, &captain)
			}

			ctx = context.WithValue(ctx, TokenKey, token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// reject answers every authentication failure with the same generic 401,
// clearing a stale session cookie where one caused the rejection.
// Only a blacklist store failure surfaces differently (500).
func (a *Auth) reject(w http.ResponseWriter, err error) {
	switch err {
	case errNoToken, errBlacklisted, errKindMismatch, errAccountGone,
		jwt.ErrTokenExpired, jwt.ErrTokenInvalid:
		if err != errNoToken {
			// Force re-login for browser clients carrying a dead cookie.
			ClearSessionCookie(w, a.secureCookies)
		}
		logger.Log.Debug("request rejected", "reason", err.Error())
		utils.WriteError(w, internal_errors.Unauthorized("Unauthorized"))
	default:
		utils.WriteError(w, err)
	}
}

// ClearSessionCookie expires the session cookie on the response.
func ClearSessionCookie(w http.ResponseWriter, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Path:     "/",
		Name:     SessionCookieName,
		Value:    "",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// UserFromContext retrieves the authenticated user from the context
func UserFromContext(r *http.Request) *domain.User {
	user, ok := r.Context().Value(UserKey).(*domain.User)
	if !ok {
		return nil
	}
	return user
}

// CaptainFromContext retrieves the authenticated captain from the context
func CaptainFromContext(r *http.Request) *domain.Captain {
	captain, ok := r.Context().Value(CaptainKey).(*domain.Captain)
	if !ok {
		return nil
	}
	return captain
}

// TokenFromContext retrieves the raw session token attached by the auth middleware
func TokenFromContext(r *http.Request) string {
	token, ok := r.Context().Value(TokenKey).(string)
	if !ok {
		return ""
	}
	return token
}
