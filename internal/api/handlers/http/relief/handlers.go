package relief

import (
	"context"
	"log/slog"
	"net/http"

	"reliefhub/internal/domain"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type Resources interface {
	List(ctx context.Context, filter domain.ResourceFilter) ([]*domain.Resource, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Resource, error)
	Create(ctx context.Context, p domain.Principal, req domain.CreateResourceRequest) (*domain.Resource, error)
	Update(ctx context.Context, id uuid.UUID, req domain.UpdateResourceRequest) (*domain.Resource, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type Requests interface {
	List(ctx context.Context, filter domain.AidRequestFilter) ([]*domain.AidRequest, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.AidRequest, error)
	Create(ctx context.Context, p domain.Principal, in domain.CreateAidRequest) (*domain.AidRequest, error)
	Update(ctx context.Context, id uuid.UUID, in domain.UpdateAidRequest) (*domain.AidRequest, error)
	Matches(ctx context.Context, id uuid.UUID) ([]domain.MatchCandidate, error)
	VolunteerMatches(ctx context.Context, id uuid.UUID, in domain.VolunteerMatchRequest) ([]domain.VolunteerMatch, error)
}

type Allocator interface {
	Allocate(ctx context.Context, requestID uuid.UUID, in domain.AllocateRequest) (*domain.AidRequest, error)
	Plan(ctx context.Context) ([]domain.AllocationSuggestion, error)
}

type Volunteers interface {
	List(ctx context.Context) ([]*domain.User, error)
	SetAvailability(ctx context.Context, p domain.Principal, id uuid.UUID, req domain.AvailabilityRequest) (*domain.User, error)
}

type Handler struct {
	logger     *slog.Logger
	Resources  Resources
	Requests   Requests
	Allocator  Allocator
	Volunteers Volunteers
}

func NewHandler(logger *slog.Logger, resources Resources, requests Requests, allocator Allocator, volunteers Volunteers) *Handler {
	return &Handler{
		logger:     logger,
		Resources:  resources,
		Requests:   requests,
		Allocator:  allocator,
		Volunteers: volunteers,
	}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}
