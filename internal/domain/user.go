package domain

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleAdmin     Role = "admin"
	RoleNGO       Role = "ngo"
	RoleVolunteer Role = "volunteer"
	RoleVictim    Role = "victim"
)

type UserLocation struct {
	Address string  `json:"address,omitempty"`
	Lat     float64 `json:"lat" validate:"lat"`
	Lng     float64 `json:"lng" validate:"lng"`
}

type User struct {
	ID           uuid.UUID    `json:"id"`
	Name         string       `json:"name"`
	Email        string       `json:"email"`
	PasswordHash string       `json:"-"`
	Role         Role         `json:"role"`
	Phone        string       `json:"phone,omitempty"`
	Location     UserLocation `json:"location"`
	Skills       []string     `json:"skills"`
	IsAvailable  bool         `json:"is_available"`
	CreatedAt    time.Time    `json:"created_at"`
}

type AvailabilityRequest struct {
	IsAvailable *bool `json:"is_available" validate:"required"`
}
