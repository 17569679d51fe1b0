// Package seed loads a fixed demo data set: a handful of users for every role,
// stocked resources and open aid requests around Punjab. Records use fixed ids,
// so running it twice leaves the first run's rows untouched.
package seed

import (
	"context"
	"log/slog"

	"reliefhub/internal/domain"

	"github.com/google/uuid"
)

// DefaultPassword is the plain text password of every seeded account.
const DefaultPassword = "password123"

//go:generate mockgen -source=seed.go -destination=mocks/mock.go
type UserStore interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) error
}

type ResourceStore interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.Resource, error)
	Create(ctx context.Context, res *domain.Resource) error
}

type RequestStore interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.AidRequest, error)
	Create(ctx context.Context, req *domain.AidRequest) error
}

type NotificationStore interface {
	Create(ctx context.Context, n *domain.Notification) error
}

type Stores struct {
	Users         UserStore
	Resources     ResourceStore
	Requests      RequestStore
	Notifications NotificationStore
}

type Result struct {
	Users         int
	Resources     int
	Requests      int
	Notifications int
}

// Run inserts every missing demo record. Notifications are only written when
// the users were created by this run.
func Run(ctx context.Context, s Stores, logger *slog.Logger) (Result, error) {
	var res Result

	users, err := seedUsers(ctx, s.Users)
	if err != nil {
		return res, err
	}
	res.Users = users
	logger.Info("users seeded", slog.Int("created", users))

	if res.Resources, err = seedResources(ctx, s.Resources); err != nil {
		return res, err
	}
	logger.Info("resources seeded", slog.Int("created", res.Resources))

	if res.Requests, err = seedRequests(ctx, s.Requests); err != nil {
		return res, err
	}
	logger.Info("requests seeded", slog.Int("created", res.Requests))

	if users > 0 {
		if res.Notifications, err = seedNotifications(ctx, s.Notifications); err != nil {
			return res, err
		}
		logger.Info("notifications seeded", slog.Int("created", res.Notifications))
	}

	return res, nil
}
