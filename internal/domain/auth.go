package domain

import "github.com/google/uuid"

// Principal is the already validated identity carried by a bearer token.
type Principal struct {
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email"`
	Role   Role      `json:"role"`
}

func (p Principal) HasRole(roles ...Role) bool {
	for _, r := range roles {
		if p.Role == r {
			return true
		}
	}
	return false
}

type RegisterRequest struct {
	Name     string        `json:"name" validate:"required,max=128"`
	Email    string        `json:"email" validate:"required,email"`
	Password string        `json:"password" validate:"required,min=8,max=72"`
	Role     Role          `json:"role" validate:"omitempty,oneof=admin ngo volunteer victim"`
	Phone    string        `json:"phone" validate:"max=32"`
	Location *UserLocation `json:"location"`
	Skills   []string      `json:"skills" validate:"max=32,dive,max=64"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}
