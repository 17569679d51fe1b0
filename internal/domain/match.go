package domain

import "github.com/google/uuid"

// MatchCandidate is computed per matching call and never stored.
type MatchCandidate struct {
	Resource   Resource `json:"resource"`
	DistanceKM float64  `json:"distance_km"`
	MatchScore float64  `json:"match_score"`
}

type VolunteerMatch struct {
	VolunteerID uuid.UUID `json:"volunteer_id"`
	Name        string    `json:"name"`
	Score       float64   `json:"score"`
	DistanceKM  float64   `json:"distance_km"`
	SkillMatch  int       `json:"skill_match"`
	IsAvailable bool      `json:"is_available"`
}

type VolunteerMatchRequest struct {
	Skills []string `json:"skills" validate:"max=32,dive,max=64"`
}

type AllocationSuggestion struct {
	RequestID  uuid.UUID `json:"request_id"`
	ResourceID uuid.UUID `json:"resource_id"`
	MatchScore float64   `json:"match_score"`
	DistanceKM float64   `json:"distance_km"`
}
