package domain

import (
	"strings"

	internal_errors "github.com/rideon-dev/rideon/internal/errors"
)

type VehicleType = string

const (
	VehicleCar  VehicleType = "car"
	VehicleBike VehicleType = "bike"
	VehicleAuto VehicleType = "auto"
)

type Vehicle struct {
	Color    string      `json:"color"`
	Plate    string      `json:"plate"`
	Capacity int         `json:"capacity"`
	Type     VehicleType `json:"type"`
}

// NewVehicle validates the vehicle descriptor: color and plate need at least
// 3 characters, capacity at least 1 seat, and type must be a known kind.
func NewVehicle(color, plate string, capacity int, vehicleType string) (Vehicle, error) {
	color = strings.TrimSpace(color)
	plate = strings.TrimSpace(plate)

	if len(color) < 3 {
		return Vehicle{}, internal_errors.BadRequest("Vehicle color must be at least 3 characters long")
	}
	if len(plate) < 3 {
		return Vehicle{}, internal_errors.BadRequest("Vehicle plate must be at least 3 characters long")
	}
	if capacity < 1 {
		return Vehicle{}, internal_errors.BadRequest("Vehicle capacity must be at least 1")
	}
	switch vehicleType {
	case VehicleCar, VehicleBike, VehicleAuto:
	default:
		return Vehicle{}, internal_errors.BadRequest("Vehicle type must be one of car, bike, auto")
	}
	return Vehicle{Color: color, Plate: plate, Capacity: capacity, Type: vehicleType}, nil
}
