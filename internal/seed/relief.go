package seed

import (
	"context"
	"fmt"

	"reliefhub/internal/domain"
	"reliefhub/pkg/e"

	"github.com/google/uuid"
)

var demoResources = []domain.Resource{
	{
		ID: uuid.MustParse("a0000000-0000-0000-0000-000000000001"), Type: "Food", Quantity: 500, Unit: "packets",
		Location: domain.Location{Name: "Central Warehouse A", Lat: 31.3260, Lng: 75.5762},
	},
	{
		ID: uuid.MustParse("a0000000-0000-0000-0000-000000000002"), Type: "Medical", Quantity: 200, Unit: "kits",
		Location: domain.Location{Name: "Government Hospital", Lat: 30.9010, Lng: 75.8573},
	},
	{
		ID: uuid.MustParse("a0000000-0000-0000-0000-000000000003"), Type: "Shelter", Quantity: 100, Unit: "tents",
		Location: domain.Location{Name: "Community Center", Lat: 31.6340, Lng: 74.8723},
	},
	{
		ID: uuid.MustParse("a0000000-0000-0000-0000-000000000004"), Type: "Water", Quantity: 1000, Unit: "liters",
		Location: domain.Location{Name: "Water Treatment Plant", Lat: 30.7333, Lng: 76.7794},
	},
	{
		ID: uuid.MustParse("a0000000-0000-0000-0000-000000000005"), Type: "Clothing", Quantity: 300, Unit: "sets",
		Location: domain.Location{Name: "Relief Center", Lat: 30.3398, Lng: 76.3869},
	},
}

var demoRequests = []domain.AidRequest{
	{
		ID: uuid.MustParse("b0000000-0000-0000-0000-000000000001"), Type: "Food", Quantity: 150, Urgency: domain.UrgencyHigh,
		Location:    domain.Location{Name: "Sector 15, Jalandhar", Lat: 31.3200, Lng: 75.5700},
		Description: "Urgent need for food packets for 50 families affected by floods",
		Status:      domain.RequestPending,
	},
	{
		ID: uuid.MustParse("b0000000-0000-0000-0000-000000000002"), Type: "Medical", Quantity: 50, Urgency: domain.UrgencyCritical,
		Location:    domain.Location{Name: "Village Khanna", Lat: 30.7050, Lng: 76.2200},
		Description: "Medical emergency - need first aid kits and basic medicines",
		Status:      domain.RequestPending,
	},
	{
		ID: uuid.MustParse("b0000000-0000-0000-0000-000000000003"), Type: "Shelter", Quantity: 30, Urgency: domain.UrgencyMedium,
		Location:    domain.Location{Name: "Sector 22, Chandigarh", Lat: 30.7400, Lng: 76.7800},
		Description: "Temporary shelter needed for displaced families",
		Status:      domain.RequestAllocated,
	},
	{
		ID: uuid.MustParse("b0000000-0000-0000-0000-000000000004"), Type: "Water", Quantity: 500, Urgency: domain.UrgencyCritical,
		Location:    domain.Location{Name: "Rural Area, Moga", Lat: 30.8156, Lng: 75.1706},
		Description: "Clean drinking water urgently needed for 100+ people",
		Status:      domain.RequestPending,
	},
	{
		ID: uuid.MustParse("b0000000-0000-0000-0000-000000000005"), Type: "Clothing", Quantity: 80, Urgency: domain.UrgencyLow,
		Location:    domain.Location{Name: "Relief Camp, Bathinda", Lat: 30.2110, Lng: 74.9455},
		Description: "Winter clothing needed for affected families",
		Status:      domain.RequestPending,
	},
}

func seedResources(ctx context.Context, store ResourceStore) (int, error) {
	created := 0
	for _, r := range demoResources {
		_, err := store.Get(ctx, r.ID)
		if err == nil {
			continue
		}
		if !e.IsNotFound(err) {
			return created, fmt.Errorf("fetch seed resource %s: %w", r.Location.Name, err)
		}

		res := r
		res.Status = domain.ResourceAvailable
		res.ProvidedBy = NGOID
		if err := store.Create(ctx, &res); err != nil {
			return created, fmt.Errorf("create seed resource %s: %w", r.Location.Name, err)
		}
		created++
	}
	return created, nil
}

func seedRequests(ctx context.Context, store RequestStore) (int, error) {
	created := 0
	for _, r := range demoRequests {
		_, err := store.Get(ctx, r.ID)
		if err == nil {
			continue
		}
		if !e.IsNotFound(err) {
			return created, fmt.Errorf("fetch seed request %s: %w", r.Location.Name, err)
		}

		req := r
		req.RequestedBy = VictimID
		if err := store.Create(ctx, &req); err != nil {
			return created, fmt.Errorf("create seed request %s: %w", r.Location.Name, err)
		}
		created++
	}
	return created, nil
}

func seedNotifications(ctx context.Context, store NotificationStore) (int, error) {
	notes := []domain.Notification{
		{Message: "New critical request for medical supplies in Village Khanna", Type: domain.NotificationAlert, Recipient: domain.UserRecipient(AdminID)},
		{Message: "Resource allocation successful for Sector 22", Type: domain.NotificationSuccess, Recipient: domain.UserRecipient(VictimID)},
		{Message: "New volunteer Raj Kumar registered", Type: domain.NotificationInfo, Recipient: domain.UserRecipient(AdminID), IsRead: true},
	}

	for i := range notes {
		if err := store.Create(ctx, &notes[i]); err != nil {
			return i, fmt.Errorf("create seed notification: %w", err)
		}
	}
	return len(notes), nil
}
