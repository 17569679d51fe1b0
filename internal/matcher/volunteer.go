package matcher

import (
	"math"
	"sort"
	"strings"

	"reliefhub/internal/domain"
	"reliefhub/internal/geo"
)

const (
	distanceWeight     = 0.4
	skillWeight        = 0.4
	availabilityWeight = 0.2
	availabilityBonus  = 20.0
)

// MatchVolunteers ranks volunteers for req by proximity, skill overlap and
// availability. Non-volunteer users are ignored.
func (m *Matcher) MatchVolunteers(req domain.AidRequest, skills []string, volunteers []domain.User) []domain.VolunteerMatch {
	wanted := skillSet(skills)
	origin := req.Location.Coordinate()

	out := make([]domain.VolunteerMatch, 0, len(volunteers))
	for _, v := range volunteers {
		if v.Role != domain.RoleVolunteer {
			continue
		}

		dist := geo.DistanceKM(origin, domain.Coordinate{Lat: v.Location.Lat, Lng: v.Location.Lng})
		distanceScore := math.Max(0, 100-dist*10)

		overlap := 0
		for s := range skillSet(v.Skills) {
			if _, ok := wanted[s]; ok {
				overlap++
			}
		}
		skillScore := float64(overlap) / math.Max(float64(len(wanted)), 1) * 100

		bonus := 0.0
		if v.IsAvailable {
			bonus = availabilityBonus
		}

		out = append(out, domain.VolunteerMatch{
			VolunteerID: v.ID,
			Name:        v.Name,
			Score:       distanceScore*distanceWeight + skillScore*skillWeight + bonus*availabilityWeight,
			DistanceKM:  dist,
			SkillMatch:  overlap,
			IsAvailable: v.IsAvailable,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})

	return out
}

func skillSet(skills []string) map[string]struct{} {
	set := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" {
			continue
		}
		set[s] = struct{}{}
	}
	return set
}
