package domain

import (
	internal_errors "github.com/rideon-dev/rideon/internal/errors"
)

type CaptainStatus = string

const (
	StatusActive   CaptainStatus = "active"
	StatusInactive CaptainStatus = "inactive"
)

type Captain struct {
	Id       AccountId     `json:"id"`
	Email    Email         `json:"email"`
	Fullname Fullname      `json:"fullname"`
	PassHash string        `json:"-"`
	Status   CaptainStatus `json:"status"`
	Vehicle  Vehicle       `json:"vehicle"`
	Location *Location     `json:"location,omitempty"`
	SocketId *string       `json:"socketId,omitempty"`
}

// NewCaptainStatus validates the status enum. Empty input defaults to inactive.
func NewCaptainStatus(status string) (CaptainStatus, error) {
	switch status {
	case "":
		return StatusInactive, nil
	case StatusActive, StatusInactive:
		return status, nil
	default:
		return "", internal_errors.BadRequest("Status must be either active or inactive")
	}
}
