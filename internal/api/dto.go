package api

import "github.com/rideon-dev/rideon/internal/domain"

// Request DTOs
//
// Validator tags cover shape and required fields only; domain constructors
// re-check lengths and enums at the data-model boundary.

type FullnameRequest struct {
	Firstname string `json:"firstname" validate:"required"`
	Lastname  string `json:"lastname,omitempty"`
}

type VehicleRequest struct {
	Color    string `json:"color" validate:"required"`
	Plate    string `json:"plate" validate:"required"`
	Capacity int    `json:"capacity" validate:"required,gte=1"`
	Type     string `json:"type" validate:"required"`
}

type RegisterUserRequest struct {
	Fullname FullnameRequest `json:"fullname" validate:"required"`
	Email    string          `json:"email" validate:"required,email"`
	Password string          `json:"password" validate:"required,min=6"`
}

type RegisterCaptainRequest struct {
	Fullname FullnameRequest `json:"fullname" validate:"required"`
	Email    string          `json:"email" validate:"required,email"`
	Password string          `json:"password" validate:"required,min=6"`
	Vehicle  VehicleRequest  `json:"vehicle" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Response DTOs

type UserResponse struct {
	Token string      `json:"token,omitempty"`
	User  domain.User `json:"user"`
}

type CaptainResponse struct {
	Token   string         `json:"token,omitempty"`
	Captain domain.Captain `json:"captain"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
