package jwt

import (
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/rideon-dev/rideon/internal/domain"
	internal_errors "github.com/rideon-dev/rideon/internal/errors"
	"github.com/rideon-dev/rideon/internal/logger"
)

// Sentinel errors, distinguished for logging and tests. Handlers surface
// both as the same generic 401.
var (
	ErrTokenExpired = &internal_errors.ErrorWithStatusCode{Message: "Unauthorized", StatusCode: http.StatusUnauthorized}
	ErrTokenInvalid = &internal_errors.ErrorWithStatusCode{Message: "Unauthorized", StatusCode: http.StatusUnauthorized}
)

type JwtService interface {
	NewToken(accountId domain.AccountId, kind domain.AccountKind) (string, error)
	DecodeToken(jwtStr string) (*Claims, error)
}

// Claims is the decoded, validated content of a session token.
type Claims struct {
	AccountId domain.AccountId
	Kind      domain.AccountKind
	ExpiresAt time.Time
}

type Jwt struct {
	secretKey string
	ttl       time.Duration
}

func New(secretKey string, ttl time.Duration) *Jwt {
	return &Jwt{secretKey, ttl}
}

func (j *Jwt) TTL() time.Duration {
	return j.ttl
}

// NewToken signs a token binding the account identifier and kind, expiring
// exactly ttl from issuance.
func (j *Jwt) NewToken(accountId domain.AccountId, kind domain.AccountKind) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  accountId.String(),
		"kind": string(kind),
		"iat":  now.Unix(),
		"exp":  now.Add(j.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		logger.Log.Error("failed to sign token", "error", err)
		return "", errors.New("Can't create token")
	}

	return tokenString, nil
}

// DecodeToken checks signature integrity and expiry. It deliberately does not
// consult the blacklist; revocation is the middleware's concern.
func (j *Jwt) DecodeToken(jwtStr string) (*Claims, error) {
	token, err := jwt.Parse(jwtStr, func(token *jwt.Token) (interface{}, error) {
		// Verify signing algorithm
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return []byte(j.secretKey), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		logger.Log.Debug("token decode failed", "error", err)
		return nil, ErrTokenInvalid
	}
	if !token.Valid {
		return nil, ErrTokenInvalid
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrTokenInvalid
	}

	sub, ok := mapClaims["sub"].(string)
	if !ok {
		return nil, ErrTokenInvalid
	}
	accountId, parseErr := uuid.Parse(sub)
	if parseErr != nil {
		return nil, ErrTokenInvalid
	}

	kind, ok := mapClaims["kind"].(string)
	if !ok {
		return nil, ErrTokenInvalid
	}
	switch domain.AccountKind(kind) {
	case domain.KindUser, domain.KindCaptain:
	default:
		return nil, ErrTokenInvalid
	}

	expFloat, ok := mapClaims["exp"].(float64)
	if !ok {
		return nil, ErrTokenInvalid
	}

	return &Claims{
		AccountId: accountId,
		Kind:      domain.AccountKind(kind),
		ExpiresAt: time.Unix(int64(expFloat), 0),
	}, nil
}
