package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"reliefhub/internal/domain"
	"reliefhub/internal/matcher"
	"reliefhub/pkg/e"

	"github.com/google/uuid"
)

type AllocationService struct {
	store     AllocationStore
	requests  AidRequestRepository
	resources ResourceRepository
	queue     NotificationQueue
	matcher   *matcher.Matcher
	logger    *slog.Logger

	strictTransitions bool
	now               func() time.Time
}

func NewAllocationService(
	store AllocationStore,
	requests AidRequestRepository,
	resources ResourceRepository,
	queue NotificationQueue,
	m *matcher.Matcher,
	strictTransitions bool,
	logger *slog.Logger,
) *AllocationService {
	if m == nil {
		m = matcher.New(nil)
	}
	return &AllocationService{
		store:             store,
		requests:          requests,
		resources:         resources,
		queue:             queue,
		matcher:           m,
		logger:            logger,
		strictTransitions: strictTransitions,
		now:               time.Now,
	}
}

// Allocate binds a resource and optionally a volunteer to the request and
// notifies the requester. Either every write lands or none does.
func (s *AllocationService) Allocate(ctx context.Context, requestID uuid.UUID, in domain.AllocateRequest) (*domain.AidRequest, error) {
	const op = "service.Allocation.Allocate"

	var (
		allocated *domain.AidRequest
		note      *domain.Notification
	)

	err := s.store.WithinTx(ctx, func(tx domain.AllocationTx) error {
		req, err := tx.GetRequestForUpdate(ctx, requestID)
		if err != nil {
			return err
		}

		if err := checkTransition(s.strictTransitions, req.Status, domain.RequestAllocated); err != nil {
			return err
		}

		if in.ResourceID != nil {
			if err := tx.ClaimResource(ctx, *in.ResourceID); err != nil {
				if errors.Is(err, e.ErrNotFound) {
					s.logger.Warn("allocation references unknown resource",
						slog.String("request_id", requestID.String()),
						slog.String("resource_id", in.ResourceID.String()),
					)
				}
				return err
			}
			id := *in.ResourceID
			req.AllocatedResource = &id
		} else {
			s.logger.Warn("allocation without resource, nothing claimed",
				slog.String("request_id", requestID.String()),
			)
		}

		if in.VolunteerID != nil {
			volunteer, err := tx.GetVolunteer(ctx, *in.VolunteerID)
			if err != nil {
				return err
			}
			if volunteer.Role != domain.RoleVolunteer {
				return fmt.Errorf("user %s is not a volunteer: %w", volunteer.ID, e.ErrNotFound)
			}
			id := volunteer.ID
			req.AssignedVolunteer = &id
		}

		now := s.now().UTC()
		req.Status = domain.RequestAllocated
		req.UpdatedAt = now

		if err := tx.SaveAllocation(ctx, req); err != nil {
			return err
		}

		n := &domain.Notification{
			ID:        uuid.New(),
			Message:   fmt.Sprintf("Resource allocated for request at %s", req.Location.Name),
			Type:      domain.NotificationSuccess,
			Recipient: domain.UserRecipient(req.RequestedBy),
			CreatedAt: now,
		}
		if err := tx.CreateNotification(ctx, n); err != nil {
			return err
		}

		allocated, note = req, n
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.logger.Info("request allocated",
		slog.String("request_id", allocated.ID.String()),
		slog.Any("resource_id", allocated.AllocatedResource),
		slog.Any("volunteer_id", allocated.AssignedVolunteer),
	)

	publish(ctx, s.queue, s.logger, note)

	return allocated, nil
}

// Plan suggests one resource per pending request. Nothing is written.
func (s *AllocationService) Plan(ctx context.Context) ([]domain.AllocationSuggestion, error) {
	requests, err := s.requests.List(ctx, domain.AidRequestFilter{Status: domain.RequestPending})
	if err != nil {
		return nil, err
	}
	resources, err := s.resources.List(ctx, domain.ResourceFilter{Status: domain.ResourceAvailable})
	if err != nil {
		return nil, err
	}

	reqs := make([]domain.AidRequest, 0, len(requests))
	for _, r := range requests {
		reqs = append(reqs, *r)
	}
	res := make([]domain.Resource, 0, len(resources))
	for _, r := range resources {
		res = append(res, *r)
	}

	return s.matcher.Plan(reqs, res), nil
}
