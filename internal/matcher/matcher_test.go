package matcher_test

import (
	"math/rand"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reliefhub/internal/domain"
	"reliefhub/internal/matcher"
)

func resource(typ string, qty int, status domain.ResourceStatus, lat, lng float64) domain.Resource {
	return domain.Resource{
		ID:       uuid.New(),
		Type:     typ,
		Quantity: qty,
		Status:   status,
		Location: domain.Location{Name: "depot", Lat: lat, Lng: lng},
	}
}

func aidRequest(typ string, qty int, lat, lng float64) domain.AidRequest {
	return domain.AidRequest{
		ID:       uuid.New(),
		Type:     typ,
		Quantity: qty,
		Urgency:  domain.UrgencyMedium,
		Status:   domain.RequestPending,
		Location: domain.Location{Name: "village", Lat: lat, Lng: lng},
	}
}

func TestMatch_NegativeScoreScenario(t *testing.T) {
	t.Parallel()

	req := aidRequest("Water", 500, 30.8156, 75.1706)
	req.Urgency = domain.UrgencyCritical
	res := resource("Water", 1000, domain.ResourceAvailable, 30.7333, 76.7794)

	got := matcher.New(nil).Match(req, []domain.Resource{res})

	require.Len(t, got, 1)
	assert.Equal(t, res.ID, got[0].Resource.ID)
	assert.InDelta(t, 153.97, got[0].DistanceKM, 0.05)
	assert.InDelta(t, -1439.7, got[0].MatchScore, 0.5)
}

func TestMatch_Filter(t *testing.T) {
	t.Parallel()

	req := aidRequest("Food", 100, 31.3260, 75.5762)
	ok := resource("Food", 100, domain.ResourceAvailable, 31.3260, 75.5762)
	resources := []domain.Resource{
		resource("Water", 500, domain.ResourceAvailable, 31.3260, 75.5762),
		resource("Food", 99, domain.ResourceAvailable, 31.3260, 75.5762),
		resource("Food", 500, domain.ResourceAllocated, 31.3260, 75.5762),
		resource("Food", 500, domain.ResourceDepleted, 31.3260, 75.5762),
		ok,
	}

	got := matcher.New(nil).Match(req, resources)

	require.Len(t, got, 1)
	assert.Equal(t, ok.ID, got[0].Resource.ID)
	assert.Zero(t, got[0].DistanceKM)
	assert.Equal(t, 100.0, got[0].MatchScore)
}

func TestMatch_EmptyInput(t *testing.T) {
	t.Parallel()

	got := matcher.New(nil).Match(aidRequest("Food", 1, 0, 0), nil)
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestMatch_OrderAndStability(t *testing.T) {
	t.Parallel()

	req := aidRequest("Medical", 10, 31.3260, 75.5762)
	far := resource("Medical", 50, domain.ResourceAvailable, 30.7333, 76.7794)
	tieA := resource("Medical", 50, domain.ResourceAvailable, 30.9010, 75.8573)
	near := resource("Medical", 50, domain.ResourceAvailable, 31.3300, 75.5800)
	tieB := resource("Medical", 80, domain.ResourceAvailable, 30.9010, 75.8573)

	got := matcher.New(nil).Match(req, []domain.Resource{far, tieA, near, tieB})

	require.Len(t, got, 4)
	ids := []uuid.UUID{got[0].Resource.ID, got[1].Resource.ID, got[2].Resource.ID, got[3].Resource.ID}
	assert.Equal(t, []uuid.UUID{near.ID, tieA.ID, tieB.ID, far.ID}, ids)
}

func TestMatch_CustomScorer(t *testing.T) {
	t.Parallel()

	req := aidRequest("Shelter", 1, 0, 0)
	near := resource("Shelter", 1, domain.ResourceAvailable, 0, 0.1)
	far := resource("Shelter", 1, domain.ResourceAvailable, 0, 1)

	// prefer distant resources
	m := matcher.New(matcher.ScorerFunc(func(d float64) float64 { return d }))
	got := m.Match(req, []domain.Resource{near, far})

	require.Len(t, got, 2)
	assert.Equal(t, far.ID, got[0].Resource.ID)
	assert.Equal(t, got[0].DistanceKM, got[0].MatchScore)
}

func TestMatch_InvariantsOnRandomInput(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(42))
	types := []string{"Food", "Water", "Medical"}
	statuses := []domain.ResourceStatus{domain.ResourceAvailable, domain.ResourceAllocated, domain.ResourceDepleted}
	m := matcher.New(nil)

	for round := 0; round < 200; round++ {
		req := aidRequest(types[rng.Intn(len(types))], 1+rng.Intn(500), rng.Float64()*180-90, rng.Float64()*360-180)

		resources := make([]domain.Resource, rng.Intn(20))
		for i := range resources {
			resources[i] = resource(
				types[rng.Intn(len(types))],
				rng.Intn(1000),
				statuses[rng.Intn(len(statuses))],
				rng.Float64()*180-90,
				rng.Float64()*360-180,
			)
		}

		got := m.Match(req, resources)
		for i, c := range got {
			assert.Equal(t, req.Type, c.Resource.Type)
			assert.Equal(t, domain.ResourceAvailable, c.Resource.Status)
			assert.GreaterOrEqual(t, c.Resource.Quantity, req.Quantity)
			assert.GreaterOrEqual(t, c.DistanceKM, 0.0)
			if i > 0 {
				assert.GreaterOrEqual(t, got[i-1].MatchScore, c.MatchScore)
			}
		}
	}
}

func TestLinearScorer(t *testing.T) {
	t.Parallel()

	s := matcher.DefaultScorer()
	assert.Equal(t, 100.0, s.Score(0))
	assert.Equal(t, 0.0, s.Score(10))
	assert.Equal(t, -1400.0, s.Score(150))
}
