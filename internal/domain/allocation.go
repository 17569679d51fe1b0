package domain

import (
	"context"

	"github.com/google/uuid"
)

// AllocationTx is the set of writes an allocation performs inside one unit of work.
//
//go:generate mockgen -source=allocation.go -destination=mocks/mock.go
type AllocationTx interface {
	// GetRequestForUpdate loads and locks the aid request.
	GetRequestForUpdate(ctx context.Context, id uuid.UUID) (*AidRequest, error)
	// ClaimResource moves a resource from available to allocated.
	// It fails with e.ErrNotFound when the id does not exist and with
	// e.ErrConflict when the resource is no longer available.
	ClaimResource(ctx context.Context, id uuid.UUID) error
	GetVolunteer(ctx context.Context, id uuid.UUID) (*User, error)
	SaveAllocation(ctx context.Context, req *AidRequest) error
	CreateNotification(ctx context.Context, n *Notification) error
}
