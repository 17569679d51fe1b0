package matcher_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reliefhub/internal/domain"
	"reliefhub/internal/matcher"
)

func TestPlan_SeverityFirstAndNoDoubleBooking(t *testing.T) {
	t.Parallel()

	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	low := aidRequest("Water", 100, 31.3260, 75.5762)
	low.Urgency = domain.UrgencyLow
	low.CreatedAt = base

	critical := aidRequest("Water", 100, 31.3260, 75.5762)
	critical.Urgency = domain.UrgencyCritical
	critical.CreatedAt = base.Add(time.Hour)

	done := aidRequest("Water", 1, 31.3260, 75.5762)
	done.Status = domain.RequestAllocated

	only := resource("Water", 200, domain.ResourceAvailable, 31.3260, 75.5762)

	got := matcher.New(nil).Plan([]domain.AidRequest{low, done, critical}, []domain.Resource{only})

	require.Len(t, got, 1)
	assert.Equal(t, critical.ID, got[0].RequestID)
	assert.Equal(t, only.ID, got[0].ResourceID)
	// 100 - 0 + min(100/10, 20)
	assert.InDelta(t, 110.0, got[0].MatchScore, 1e-9)
}

func TestPlan_PrefersCloseAndCapsExcessBonus(t *testing.T) {
	t.Parallel()

	req := aidRequest("Food", 10, 31.3260, 75.5762)
	huge := resource("Food", 100000, domain.ResourceAvailable, 30.9010, 75.8573)
	nearby := resource("Food", 10, domain.ResourceAvailable, 31.3260, 75.5762)

	got := matcher.New(nil).Plan([]domain.AidRequest{req}, []domain.Resource{huge, nearby})

	require.Len(t, got, 1)
	assert.Equal(t, nearby.ID, got[0].ResourceID)
	assert.Zero(t, got[0].DistanceKM)
}

func TestPlan_NoEligibleResources(t *testing.T) {
	t.Parallel()

	got := matcher.New(nil).Plan(
		[]domain.AidRequest{aidRequest("Shelter", 5, 0, 0)},
		[]domain.Resource{resource("Shelter", 4, domain.ResourceAvailable, 0, 0)},
	)
	assert.Empty(t, got)
}
