package domain

import (
	"time"

	"github.com/google/uuid"
)

type ResourceStatus string

const (
	ResourceAvailable ResourceStatus = "available"
	ResourceAllocated ResourceStatus = "allocated"
	ResourceDepleted  ResourceStatus = "depleted"
)

const DefaultUnit = "units"

type Resource struct {
	ID         uuid.UUID      `json:"id"`
	Type       string         `json:"type"`
	Quantity   int            `json:"quantity"`
	Unit       string         `json:"unit"`
	Location   Location       `json:"location"`
	Status     ResourceStatus `json:"status"`
	ProvidedBy uuid.UUID      `json:"provided_by"`
	ExpiryDate *time.Time     `json:"expiry_date,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
}

type CreateResourceRequest struct {
	Type       string         `json:"type" validate:"required,max=64"`
	Quantity   int            `json:"quantity" validate:"min=0"`
	Unit       string         `json:"unit" validate:"omitempty,max=32"`
	Location   LocationInput  `json:"location"`
	Status     ResourceStatus `json:"status" validate:"omitempty,oneof=available allocated depleted"`
	ExpiryDate *time.Time     `json:"expiry_date"`
}

type UpdateResourceRequest struct {
	Type       *string         `json:"type" validate:"omitempty,min=1,max=64"`
	Quantity   *int            `json:"quantity" validate:"omitempty,min=0"`
	Unit       *string         `json:"unit" validate:"omitempty,max=32"`
	Location   *LocationInput  `json:"location"`
	Status     *ResourceStatus `json:"status" validate:"omitempty,oneof=available allocated depleted"`
	ExpiryDate *time.Time      `json:"expiry_date"`
}

type ResourceFilter struct {
	Type   string         `json:"type" validate:"omitempty,max=64"`
	Status ResourceStatus `json:"status" validate:"omitempty,oneof=available allocated depleted"`
}

// CandidateQuery selects resources that could satisfy a request.
// MaxRadiusKM <= 0 means no distance bound.
type CandidateQuery struct {
	Type        string
	MinQuantity int
	Near        Coordinate
	MaxRadiusKM float64
}
