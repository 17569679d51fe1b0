package matcher_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reliefhub/internal/domain"
	"reliefhub/internal/matcher"
)

func volunteer(name string, lat, lng float64, available bool, skills ...string) domain.User {
	return domain.User{
		ID:          uuid.New(),
		Name:        name,
		Role:        domain.RoleVolunteer,
		Location:    domain.UserLocation{Lat: lat, Lng: lng},
		Skills:      skills,
		IsAvailable: available,
	}
}

func TestMatchVolunteers_Scoring(t *testing.T) {
	t.Parallel()

	req := aidRequest("Medical", 1, 31.3260, 75.5762)

	onSite := volunteer("Priya", 31.3260, 75.5762, true, "Medical", "first aid")
	unavailable := volunteer("Amit", 31.3260, 75.5762, false, "medical")
	far := volunteer("Raj", 30.7333, 76.7794, true, "Medical", "First Aid")

	got := matcher.New(nil).MatchVolunteers(req, []string{"medical", "First Aid"}, []domain.User{far, unavailable, onSite})

	require.Len(t, got, 3)

	// 0.4*100 + 0.4*100 + 0.2*20
	assert.Equal(t, onSite.ID, got[0].VolunteerID)
	assert.InDelta(t, 84.0, got[0].Score, 1e-9)
	assert.Equal(t, 2, got[0].SkillMatch)

	// 0.4*100 + 0.4*50
	assert.Equal(t, unavailable.ID, got[1].VolunteerID)
	assert.InDelta(t, 60.0, got[1].Score, 1e-9)
	assert.Equal(t, 1, got[1].SkillMatch)

	// far away volunteers get no distance credit
	assert.Equal(t, far.ID, got[2].VolunteerID)
	assert.InDelta(t, 44.0, got[2].Score, 1e-9)
}

func TestMatchVolunteers_IgnoresOtherRoles(t *testing.T) {
	t.Parallel()

	ngo := volunteer("Red Cross", 0, 0, true)
	ngo.Role = domain.RoleNGO

	got := matcher.New(nil).MatchVolunteers(aidRequest("Food", 1, 0, 0), nil, []domain.User{ngo})
	assert.Empty(t, got)
}

func TestMatchVolunteers_NoSkillsRequested(t *testing.T) {
	t.Parallel()

	v := volunteer("Priya", 0, 0, false, "Transport")
	got := matcher.New(nil).MatchVolunteers(aidRequest("Food", 1, 0, 0), nil, []domain.User{v})

	require.Len(t, got, 1)
	assert.Equal(t, 0, got[0].SkillMatch)
	assert.InDelta(t, 40.0, got[0].Score, 1e-9)
}
