package service

import (
	"context"
	"fmt"
	"log/slog"

	"reliefhub/internal/domain"
	"reliefhub/pkg/e"

	"github.com/google/uuid"
)

type VolunteerService struct {
	users  UserRepository
	logger *slog.Logger
}

func NewVolunteerService(users UserRepository, logger *slog.Logger) *VolunteerService {
	return &VolunteerService{users: users, logger: logger}
}

func (s *VolunteerService) List(ctx context.Context) ([]*domain.User, error) {
	return s.users.ListVolunteers(ctx)
}

// SetAvailability is allowed for the volunteer themselves and for coordinators.
func (s *VolunteerService) SetAvailability(ctx context.Context, p domain.Principal, id uuid.UUID, req domain.AvailabilityRequest) (*domain.User, error) {
	const op = "service.Volunteer.SetAvailability"

	if p.UserID != id && !p.HasRole(domain.RoleAdmin, domain.RoleNGO) {
		return nil, fmt.Errorf("%s: %w", op, e.ErrForbidden)
	}
	if req.IsAvailable == nil {
		return nil, fmt.Errorf("%s: %w", op, e.Invalid(fmt.Errorf("is_available failed required")))
	}

	user, err := s.users.SetAvailability(ctx, id, *req.IsAvailable)
	if err != nil {
		return nil, err
	}

	s.logger.Info("volunteer availability changed",
		slog.String("user_id", id.String()),
		slog.Bool("is_available", user.IsAvailable),
	)
	return user, nil
}
