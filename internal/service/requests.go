package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"reliefhub/internal/domain"
	"reliefhub/internal/matcher"
	"reliefhub/pkg/e"
	"reliefhub/pkg/validator"

	"github.com/google/uuid"
)

type RequestService struct {
	requests  AidRequestRepository
	resources ResourceRepository
	users     UserRepository
	notifier  Notifier
	matcher   *matcher.Matcher
	logger    *slog.Logger

	maxRadiusKM       float64
	strictTransitions bool
}

type RequestServiceOptions struct {
	MaxRadiusKM       float64
	StrictTransitions bool
}

func NewRequestService(
	requests AidRequestRepository,
	resources ResourceRepository,
	users UserRepository,
	notifier Notifier,
	m *matcher.Matcher,
	opts RequestServiceOptions,
	logger *slog.Logger,
) *RequestService {
	if m == nil {
		m = matcher.New(nil)
	}
	return &RequestService{
		requests:          requests,
		resources:         resources,
		users:             users,
		notifier:          notifier,
		matcher:           m,
		logger:            logger,
		maxRadiusKM:       opts.MaxRadiusKM,
		strictTransitions: opts.StrictTransitions,
	}
}

func (s *RequestService) List(ctx context.Context, filter domain.AidRequestFilter) ([]*domain.AidRequest, error) {
	return s.requests.List(ctx, filter)
}

func (s *RequestService) Get(ctx context.Context, id uuid.UUID) (*domain.AidRequest, error) {
	return s.requests.Get(ctx, id)
}

func (s *RequestService) Create(ctx context.Context, p domain.Principal, in domain.CreateAidRequest) (*domain.AidRequest, error) {
	const op = "service.Request.Create"

	if err := validator.ValidateStruct(in); err != nil {
		return nil, fmt.Errorf("%s: %w", op, e.Invalid(err))
	}

	now := time.Now().UTC()
	req := &domain.AidRequest{
		ID:          uuid.New(),
		Type:        strings.TrimSpace(in.Type),
		Quantity:    in.Quantity,
		Urgency:     in.Urgency,
		Location:    in.Location.Location(),
		Description: in.Description,
		Status:      domain.RequestPending,
		RequestedBy: p.UserID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if req.Urgency == "" {
		req.Urgency = domain.UrgencyMedium
	}

	if err := s.requests.Create(ctx, req); err != nil {
		return nil, err
	}

	s.logger.Info("aid request created",
		slog.String("request_id", req.ID.String()),
		slog.String("type", req.Type),
		slog.String("urgency", string(req.Urgency)),
	)

	notifyBestEffort(ctx, s.notifier, s.logger, &domain.Notification{
		Message:   fmt.Sprintf("New %s priority request for %s at %s", req.Urgency, req.Type, req.Location.Name),
		Type:      domain.NotificationAlert,
		Recipient: domain.Broadcast(),
	})

	return req, nil
}

func (s *RequestService) Update(ctx context.Context, id uuid.UUID, in domain.UpdateAidRequest) (*domain.AidRequest, error) {
	const op = "service.Request.Update"

	if err := validator.ValidateStruct(in); err != nil {
		return nil, fmt.Errorf("%s: %w", op, e.Invalid(err))
	}

	req, err := s.requests.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Status != nil && *in.Status != req.Status {
		if err := checkTransition(s.strictTransitions, req.Status, *in.Status); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		req.Status = *in.Status
	}
	if in.Type != nil {
		req.Type = strings.TrimSpace(*in.Type)
	}
	if in.Quantity != nil {
		req.Quantity = *in.Quantity
	}
	if in.Urgency != nil {
		req.Urgency = *in.Urgency
	}
	if in.Location != nil {
		req.Location = in.Location.Location()
	}
	if in.Description != nil {
		req.Description = *in.Description
	}
	req.UpdatedAt = time.Now().UTC()

	if err := s.requests.Update(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}

// Matches ranks the stored resources that could serve the request.
func (s *RequestService) Matches(ctx context.Context, id uuid.UUID) ([]domain.MatchCandidate, error) {
	req, err := s.requests.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	candidates, err := s.resources.ListCandidates(ctx, domain.CandidateQuery{
		Type:        req.Type,
		MinQuantity: req.Quantity,
		Near:        req.Location.Coordinate(),
		MaxRadiusKM: s.maxRadiusKM,
	})
	if err != nil {
		return nil, err
	}

	return s.matcher.Match(*req, candidates), nil
}

func (s *RequestService) VolunteerMatches(ctx context.Context, id uuid.UUID, in domain.VolunteerMatchRequest) ([]domain.VolunteerMatch, error) {
	const op = "service.Request.VolunteerMatches"

	if err := validator.ValidateStruct(in); err != nil {
		return nil, fmt.Errorf("%s: %w", op, e.Invalid(err))
	}

	req, err := s.requests.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	volunteers, err := s.users.ListVolunteers(ctx)
	if err != nil {
		return nil, err
	}

	users := make([]domain.User, 0, len(volunteers))
	for _, v := range volunteers {
		users = append(users, *v)
	}

	return s.matcher.MatchVolunteers(*req, in.Skills, users), nil
}

// checkTransition enforces the request lifecycle unless strict is off.
func checkTransition(strict bool, from, to domain.RequestStatus) error {
	if !strict || from.CanTransitionTo(to) {
		return nil
	}
	return fmt.Errorf("%w: %s -> %s: %w", domain.ErrInvalidTransition, from, to, e.ErrConflict)
}
