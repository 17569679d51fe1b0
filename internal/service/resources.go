package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"reliefhub/internal/domain"
	"reliefhub/pkg/e"
	"reliefhub/pkg/validator"

	"github.com/google/uuid"
)

type ResourceService struct {
	repo     ResourceRepository
	notifier Notifier
	logger   *slog.Logger
}

func NewResourceService(repo ResourceRepository, notifier Notifier, logger *slog.Logger) *ResourceService {
	return &ResourceService{repo: repo, notifier: notifier, logger: logger}
}

func (s *ResourceService) List(ctx context.Context, filter domain.ResourceFilter) ([]*domain.Resource, error) {
	return s.repo.List(ctx, filter)
}

func (s *ResourceService) Get(ctx context.Context, id uuid.UUID) (*domain.Resource, error) {
	return s.repo.Get(ctx, id)
}

func (s *ResourceService) Create(ctx context.Context, p domain.Principal, req domain.CreateResourceRequest) (*domain.Resource, error) {
	const op = "service.Resource.Create"

	if err := validator.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%s: %w", op, e.Invalid(err))
	}

	res := &domain.Resource{
		ID:         uuid.New(),
		Type:       strings.TrimSpace(req.Type),
		Quantity:   req.Quantity,
		Unit:       req.Unit,
		Location:   req.Location.Location(),
		Status:     req.Status,
		ProvidedBy: p.UserID,
		ExpiryDate: req.ExpiryDate,
		CreatedAt:  time.Now().UTC(),
	}
	if res.Unit == "" {
		res.Unit = domain.DefaultUnit
	}
	if res.Status == "" {
		res.Status = domain.ResourceAvailable
	}

	if err := s.repo.Create(ctx, res); err != nil {
		return nil, err
	}

	s.logger.Info("resource created",
		slog.String("resource_id", res.ID.String()),
		slog.String("type", res.Type),
		slog.Int("quantity", res.Quantity),
	)

	notifyBestEffort(ctx, s.notifier, s.logger, &domain.Notification{
		Message:   fmt.Sprintf("New %s resource added at %s", res.Type, res.Location.Name),
		Type:      domain.NotificationSuccess,
		Recipient: domain.Broadcast(),
	})

	return res, nil
}

func (s *ResourceService) Update(ctx context.Context, id uuid.UUID, req domain.UpdateResourceRequest) (*domain.Resource, error) {
	const op = "service.Resource.Update"

	if err := validator.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%s: %w", op, e.Invalid(err))
	}

	res, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Type != nil {
		res.Type = strings.TrimSpace(*req.Type)
	}
	if req.Quantity != nil {
		res.Quantity = *req.Quantity
	}
	if req.Unit != nil {
		res.Unit = *req.Unit
		if res.Unit == "" {
			res.Unit = domain.DefaultUnit
		}
	}
	if req.Location != nil {
		res.Location = req.Location.Location()
	}
	if req.Status != nil {
		res.Status = *req.Status
	}
	if req.ExpiryDate != nil {
		res.ExpiryDate = req.ExpiryDate
	}

	if err := s.repo.Update(ctx, res); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *ResourceService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("resource deleted", slog.String("resource_id", id.String()))
	return nil
}
