package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type Urgency string

const (
	UrgencyCritical Urgency = "critical"
	UrgencyHigh     Urgency = "high"
	UrgencyMedium   Urgency = "medium"
	UrgencyLow      Urgency = "low"
)

// Severity orders urgencies: critical > high > medium > low. Unknown values rank lowest.
func (u Urgency) Severity() int {
	switch u {
	case UrgencyCritical:
		return 4
	case UrgencyHigh:
		return 3
	case UrgencyMedium:
		return 2
	case UrgencyLow:
		return 1
	default:
		return 0
	}
}

type RequestStatus string

const (
	RequestPending   RequestStatus = "pending"
	RequestAllocated RequestStatus = "allocated"
	RequestFulfilled RequestStatus = "fulfilled"
	RequestCancelled RequestStatus = "cancelled"
)

var ErrInvalidTransition = errors.New("invalid request status transition")

var requestTransitions = map[RequestStatus][]RequestStatus{
	RequestPending:   {RequestAllocated, RequestCancelled},
	RequestAllocated: {RequestFulfilled, RequestCancelled},
}

// CanTransitionTo reports whether the lifecycle allows moving from s to next.
// A status never transitions to itself.
func (s RequestStatus) CanTransitionTo(next RequestStatus) bool {
	for _, allowed := range requestTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type AidRequest struct {
	ID                uuid.UUID     `json:"id"`
	Type              string        `json:"type"`
	Quantity          int           `json:"quantity"`
	Urgency           Urgency       `json:"urgency"`
	Location          Location      `json:"location"`
	Description       string        `json:"description,omitempty"`
	Status            RequestStatus `json:"status"`
	RequestedBy       uuid.UUID     `json:"requested_by"`
	AllocatedResource *uuid.UUID    `json:"allocated_resource,omitempty"`
	AssignedVolunteer *uuid.UUID    `json:"assigned_volunteer,omitempty"`
	CreatedAt         time.Time     `json:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at"`
}

type CreateAidRequest struct {
	Type        string        `json:"type" validate:"required,max=64"`
	Quantity    int           `json:"quantity" validate:"gt=0"`
	Urgency     Urgency       `json:"urgency" validate:"omitempty,oneof=critical high medium low"`
	Location    LocationInput `json:"location"`
	Description string        `json:"description" validate:"max=2000"`
}

type UpdateAidRequest struct {
	Type        *string        `json:"type" validate:"omitempty,min=1,max=64"`
	Quantity    *int           `json:"quantity" validate:"omitempty,gt=0"`
	Urgency     *Urgency       `json:"urgency" validate:"omitempty,oneof=critical high medium low"`
	Location    *LocationInput `json:"location"`
	Description *string        `json:"description" validate:"omitempty,max=2000"`
	Status      *RequestStatus `json:"status" validate:"omitempty,oneof=pending allocated fulfilled cancelled"`
}

type AidRequestFilter struct {
	Status  RequestStatus `json:"status" validate:"omitempty,oneof=pending allocated fulfilled cancelled"`
	Urgency Urgency       `json:"urgency" validate:"omitempty,oneof=critical high medium low"`
}

// AllocateRequest binds a resource and optionally a volunteer to an aid request.
type AllocateRequest struct {
	ResourceID  *uuid.UUID `json:"resourceId"`
	VolunteerID *uuid.UUID `json:"volunteerId"`
}
