// Package matcher ranks resources and volunteers against aid requests.
// Everything here is pure: callers load the candidates and apply the result.
package matcher

import (
	"sort"

	"reliefhub/internal/domain"
	"reliefhub/internal/geo"
)

type Matcher struct {
	scorer Scorer
}

// New returns a Matcher using scorer, or DefaultScorer when scorer is nil.
func New(scorer Scorer) *Matcher {
	if scorer == nil {
		scorer = DefaultScorer()
	}
	return &Matcher{scorer: scorer}
}

// Eligible is the resource filter: same type, still available, enough stock.
func Eligible(req domain.AidRequest, res domain.Resource) bool {
	return res.Type == req.Type &&
		res.Status == domain.ResourceAvailable &&
		res.Quantity >= req.Quantity
}

// Match returns the eligible resources ordered by descending score. Equal
// scores keep their input order. The result is never nil.
func (m *Matcher) Match(req domain.AidRequest, resources []domain.Resource) []domain.MatchCandidate {
	out := make([]domain.MatchCandidate, 0, len(resources))
	origin := req.Location.Coordinate()

	for _, res := range resources {
		if !Eligible(req, res) {
			continue
		}
		dist := geo.DistanceKM(origin, res.Location.Coordinate())
		out = append(out, domain.MatchCandidate{
			Resource:   res,
			DistanceKM: dist,
			MatchScore: m.scorer.Score(dist),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].MatchScore > out[j].MatchScore
	})

	return out
}
