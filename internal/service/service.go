package service

import (
	"context"
	"time"

	"reliefhub/internal/domain"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go
type ResourceRepository interface {
	Create(ctx context.Context, res *domain.Resource) error
	List(ctx context.Context, filter domain.ResourceFilter) ([]*domain.Resource, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Resource, error)
	Update(ctx context.Context, res *domain.Resource) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListCandidates(ctx context.Context, q domain.CandidateQuery) ([]domain.Resource, error)
}

type AidRequestRepository interface {
	Create(ctx context.Context, req *domain.AidRequest) error
	List(ctx context.Context, filter domain.AidRequestFilter) ([]*domain.AidRequest, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.AidRequest, error)
	Update(ctx context.Context, req *domain.AidRequest) error
}

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	Get(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	ListVolunteers(ctx context.Context) ([]*domain.User, error)
	SetAvailability(ctx context.Context, id uuid.UUID, available bool) (*domain.User, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, n *domain.Notification) error
	ListFor(ctx context.Context, userID uuid.UUID, limit int) ([]*domain.Notification, error)
	MarkRead(ctx context.Context, id, userID uuid.UUID) (*domain.Notification, error)
}

// StatsRepository counts are independent reads, not one snapshot.
type StatsRepository interface {
	CountRequests(ctx context.Context, filter domain.AidRequestFilter) (int64, error)
	CountResources(ctx context.Context, filter domain.ResourceFilter) (int64, error)
	CountVolunteers(ctx context.Context, onlyAvailable bool) (int64, error)
	ResourceDistribution(ctx context.Context) ([]domain.ResourceDistribution, error)
}

// AllocationStore runs fn in a single transaction. fn's error rolls everything back.
type AllocationStore interface {
	WithinTx(ctx context.Context, fn func(tx domain.AllocationTx) error) error
}

type NotificationQueue interface {
	Enqueue(ctx context.Context, ev domain.NotificationEvent) error
}

// DashboardCache returns nil, nil on a miss.
type DashboardCache interface {
	GetStats(ctx context.Context) (*domain.DashboardStats, error)
	SetStats(ctx context.Context, stats *domain.DashboardStats, ttl time.Duration) error
	GetDistribution(ctx context.Context) ([]domain.ResourceDistribution, error)
	SetDistribution(ctx context.Context, dist []domain.ResourceDistribution, ttl time.Duration) error
}

// Notifier is the "create" side of notifications used by the other services.
type Notifier interface {
	Notify(ctx context.Context, n *domain.Notification) error
}

type Service struct {
	Auth          *AuthService
	Resources     *ResourceService
	Requests      *RequestService
	Allocation    *AllocationService
	Volunteers    *VolunteerService
	Notifications *NotificationService
	Dashboard     *DashboardService
}

func NewService(
	auth *AuthService,
	resources *ResourceService,
	requests *RequestService,
	allocation *AllocationService,
	volunteers *VolunteerService,
	notifications *NotificationService,
	dashboard *DashboardService,
) *Service {
	return &Service{
		Auth:          auth,
		Resources:     resources,
		Requests:      requests,
		Allocation:    allocation,
		Volunteers:    volunteers,
		Notifications: notifications,
		Dashboard:     dashboard,
	}
}
