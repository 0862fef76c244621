package domain

import "github.com/google/uuid"

type (
	Email     = string
	Password  = string
	AccountId = uuid.UUID
)

// AccountKind distinguishes rider and driver accounts inside token claims.
type AccountKind string

const (
	KindUser    AccountKind = "user"
	KindCaptain AccountKind = "captain"
)

// Location is a last-known position reported by a client.
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}
