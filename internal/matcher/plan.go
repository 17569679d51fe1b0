package matcher

import (
	"math"
	"sort"

	"github.com/google/uuid"

	"reliefhub/internal/domain"
	"reliefhub/internal/geo"
)

const (
	planPenaltyPerKM = 5.0
	planExcessBonus  = 20.0
)

// Plan proposes one resource per pending request. Requests are served by
// severity, then age. A resource is proposed at most once per plan.
func (m *Matcher) Plan(requests []domain.AidRequest, resources []domain.Resource) []domain.AllocationSuggestion {
	pending := make([]domain.AidRequest, 0, len(requests))
	for _, r := range requests {
		if r.Status == domain.RequestPending {
			pending = append(pending, r)
		}
	}

	sort.SliceStable(pending, func(i, j int) bool {
		si, sj := pending[i].Urgency.Severity(), pending[j].Urgency.Severity()
		if si != sj {
			return si > sj
		}
		return pending[i].CreatedAt.Before(pending[j].CreatedAt)
	})

	taken := make(map[uuid.UUID]struct{}, len(resources))
	out := make([]domain.AllocationSuggestion, 0, len(pending))

	for _, req := range pending {
		origin := req.Location.Coordinate()

		var (
			best      *domain.Resource
			bestScore = math.Inf(-1)
			bestDist  float64
		)
		for i := range resources {
			res := &resources[i]
			if _, used := taken[res.ID]; used || !Eligible(req, *res) {
				continue
			}
			dist := geo.DistanceKM(origin, res.Location.Coordinate())
			excess := float64(res.Quantity - req.Quantity)
			score := 100 - dist*planPenaltyPerKM + math.Min(excess/10, planExcessBonus)
			if score > bestScore {
				best, bestScore, bestDist = res, score, dist
			}
		}
		if best == nil {
			continue
		}

		taken[best.ID] = struct{}{}
		out = append(out, domain.AllocationSuggestion{
			RequestID:  req.ID,
			ResourceID: best.ID,
			MatchScore: bestScore,
			DistanceKM: bestDist,
		})
	}

	return out
}
