package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"reliefhub/internal/domain"
	"reliefhub/internal/service"
	mock_service "reliefhub/internal/service/mocks"
	"reliefhub/pkg/e"
)

func TestVolunteers_SetAvailability_Permissions(t *testing.T) {
	t.Parallel()

	target := uuid.New()
	off := false

	cases := []struct {
		name    string
		caller  domain.Principal
		allowed bool
	}{
		{name: "self", caller: domain.Principal{UserID: target, Role: domain.RoleVolunteer}, allowed: true},
		{name: "admin", caller: domain.Principal{UserID: uuid.New(), Role: domain.RoleAdmin}, allowed: true},
		{name: "ngo", caller: domain.Principal{UserID: uuid.New(), Role: domain.RoleNGO}, allowed: true},
		{name: "other volunteer", caller: domain.Principal{UserID: uuid.New(), Role: domain.RoleVolunteer}},
		{name: "victim", caller: domain.Principal{UserID: uuid.New(), Role: domain.RoleVictim}},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			users := mock_service.NewMockUserRepository(ctrl)
			if tc.allowed {
				users.EXPECT().SetAvailability(gomock.Any(), target, false).
					Return(&domain.User{ID: target, Role: domain.RoleVolunteer}, nil).Times(1)
			} else {
				users.EXPECT().SetAvailability(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			}

			svc := service.NewVolunteerService(users, discardLogger())

			_, err := svc.SetAvailability(context.Background(), tc.caller, target, domain.AvailabilityRequest{IsAvailable: &off})
			if tc.allowed && err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if !tc.allowed && !errors.Is(err, e.ErrForbidden) {
				t.Fatalf("expected ErrForbidden, got %v", err)
			}
		})
	}
}

func TestVolunteers_SetAvailability_MissingFlag(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	users := mock_service.NewMockUserRepository(ctrl)
	svc := service.NewVolunteerService(users, discardLogger())

	id := uuid.New()
	_, err := svc.SetAvailability(context.Background(), domain.Principal{UserID: id}, id, domain.AvailabilityRequest{})
	if !errors.Is(err, e.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
