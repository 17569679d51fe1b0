package seed

import (
	"context"
	"fmt"

	"reliefhub/internal/domain"
	"reliefhub/pkg/e"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	AdminID        = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	NGOID          = uuid.MustParse("22222222-2222-2222-2222-222222222222")
	VolunteerRaj   = uuid.MustParse("33333333-3333-3333-3333-333333333333")
	VolunteerPriya = uuid.MustParse("44444444-4444-4444-4444-444444444444")
	VolunteerAmit  = uuid.MustParse("55555555-5555-5555-5555-555555555555")
	VictimID       = uuid.MustParse("66666666-6666-6666-6666-666666666666")
)

var demoUsers = []domain.User{
	{
		ID: AdminID, Name: "Admin User", Email: "admin@disaster.com", Role: domain.RoleAdmin,
		Phone:    "+91-9876543210",
		Location: domain.UserLocation{Address: "Jalandhar, Punjab", Lat: 31.3260, Lng: 75.5762},
	},
	{
		ID: NGOID, Name: "Red Cross NGO", Email: "redcross@ngo.com", Role: domain.RoleNGO,
		Phone:    "+91-9876543211",
		Location: domain.UserLocation{Address: "Ludhiana, Punjab", Lat: 30.9010, Lng: 75.8573},
	},
	{
		ID: VolunteerRaj, Name: "Raj Kumar", Email: "raj@volunteer.com", Role: domain.RoleVolunteer,
		Phone:       "+91-9876543212",
		Location:    domain.UserLocation{Address: "Amritsar, Punjab", Lat: 31.6340, Lng: 74.8723},
		Skills:      []string{"Medical", "Transport", "First Aid"},
		IsAvailable: true,
	},
	{
		ID: VolunteerPriya, Name: "Priya Singh", Email: "priya@volunteer.com", Role: domain.RoleVolunteer,
		Phone:       "+91-9876543213",
		Location:    domain.UserLocation{Address: "Jalandhar, Punjab", Lat: 31.3260, Lng: 75.5762},
		Skills:      []string{"Food Distribution", "Shelter Management"},
		IsAvailable: true,
	},
	{
		ID: VolunteerAmit, Name: "Amit Patel", Email: "amit@volunteer.com", Role: domain.RoleVolunteer,
		Phone:    "+91-9876543214",
		Location: domain.UserLocation{Address: "Chandigarh", Lat: 30.7333, Lng: 76.7794},
		Skills:   []string{"Rescue Operations", "Medical"},
	},
	{
		ID: VictimID, Name: "Victim User", Email: "victim@test.com", Role: domain.RoleVictim,
		Phone:    "+91-9876543215",
		Location: domain.UserLocation{Address: "Patiala, Punjab", Lat: 30.3398, Lng: 76.3869},
	},
}

func seedUsers(ctx context.Context, store UserStore) (int, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(DefaultPassword), bcrypt.DefaultCost)
	if err != nil {
		return 0, fmt.Errorf("hash seed password: %w", err)
	}

	created := 0
	for _, u := range demoUsers {
		_, err := store.Get(ctx, u.ID)
		if err == nil {
			continue
		}
		if !e.IsNotFound(err) {
			return created, fmt.Errorf("fetch seed user %s: %w", u.Email, err)
		}

		user := u
		user.PasswordHash = string(hash)
		if user.Skills == nil {
			user.Skills = []string{}
		}
		if err := store.Create(ctx, &user); err != nil {
			return created, fmt.Errorf("create seed user %s: %w", u.Email, err)
		}
		created++
	}
	return created, nil
}
