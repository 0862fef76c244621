package domain

import (
	"strings"

	internal_errors "github.com/rideon-dev/rideon/internal/errors"
)

const minNameLen = 3

type Fullname struct {
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname,omitempty"`
}

type User struct {
	Id       AccountId `json:"id"`
	Email    Email     `json:"email"`
	Fullname Fullname  `json:"fullname"`
	PassHash string    `json:"-"`
	Location *Location `json:"location,omitempty"`
	SocketId *string   `json:"socketId,omitempty"`
}

// NewFullname validates name constraints: firstname is required with at least
// 3 characters, lastname is optional but must be at least 3 characters when present.
func NewFullname(firstname, lastname string) (Fullname, error) {
	firstname = strings.TrimSpace(firstname)
	lastname = strings.TrimSpace(lastname)

	if len(firstname) < minNameLen {
		return Fullname{}, internal_errors.BadRequest("First name must be at least 3 characters long")
	}
	if lastname != "" && len(lastname) < minNameLen {
		return Fullname{}, internal_errors.BadRequest("Last name must be at least 3 characters long")
	}
	return Fullname{Firstname: firstname, Lastname: lastname}, nil
}

// NormalizeEmail lowercases and trims an email the way the storage layer
// expects it. Uniqueness is checked against the normalized form only.
func NormalizeEmail(email Email) Email {
	return strings.ToLower(strings.TrimSpace(email))
}
