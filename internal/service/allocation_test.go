package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"reliefhub/internal/domain"
	mock_domain "reliefhub/internal/domain/mocks"
	"reliefhub/internal/service"
	mock_service "reliefhub/internal/service/mocks"
	"reliefhub/pkg/e"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// runTx makes the store mock execute the unit of work against tx.
func runTx(store *mock_service.MockAllocationStore, tx domain.AllocationTx) *gomock.Call {
	return store.EXPECT().
		WithinTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn func(domain.AllocationTx) error) error {
			return fn(tx)
		})
}

func pendingRequest(id, requester uuid.UUID) *domain.AidRequest {
	return &domain.AidRequest{
		ID:          id,
		Type:        "water",
		Quantity:    50,
		Urgency:     domain.UrgencyHigh,
		Location:    domain.Location{Name: "Moga Relief Camp", Lat: 30.8165, Lng: 75.1717},
		Status:      domain.RequestPending,
		RequestedBy: requester,
		CreatedAt:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		UpdatedAt:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestAllocation_Allocate_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mock_service.NewMockAllocationStore(ctrl)
	queue := mock_service.NewMockNotificationQueue(ctrl)
	tx := mock_domain.NewMockAllocationTx(ctrl)

	reqID, requester, resID, volID := uuid.New(), uuid.New(), uuid.New(), uuid.New()

	runTx(store, tx).Times(1)
	tx.EXPECT().GetRequestForUpdate(gomock.Any(), reqID).Return(pendingRequest(reqID, requester), nil).Times(1)
	tx.EXPECT().ClaimResource(gomock.Any(), resID).Return(nil).Times(1)
	tx.EXPECT().GetVolunteer(gomock.Any(), volID).Return(&domain.User{ID: volID, Role: domain.RoleVolunteer}, nil).Times(1)

	var saved *domain.AidRequest
	tx.EXPECT().SaveAllocation(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r *domain.AidRequest) error {
			saved = r
			return nil
		}).Times(1)

	var note *domain.Notification
	tx.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, n *domain.Notification) error {
			note = n
			return nil
		}).Times(1)

	var event domain.NotificationEvent
	queue.EXPECT().Enqueue(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ev domain.NotificationEvent) error {
			event = ev
			return nil
		}).Times(1)

	svc := service.NewAllocationService(store, nil, nil, queue, nil, true, discardLogger())

	got, err := svc.Allocate(context.Background(), reqID, domain.AllocateRequest{ResourceID: &resID, VolunteerID: &volID})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if got.Status != domain.RequestAllocated {
		t.Fatalf("expected status allocated, got %s", got.Status)
	}
	if got.AllocatedResource == nil || *got.AllocatedResource != resID {
		t.Fatalf("expected allocated resource %s, got %v", resID, got.AllocatedResource)
	}
	if got.AssignedVolunteer == nil || *got.AssignedVolunteer != volID {
		t.Fatalf("expected volunteer %s, got %v", volID, got.AssignedVolunteer)
	}
	if !got.UpdatedAt.After(got.CreatedAt) {
		t.Fatalf("expected UpdatedAt to move forward")
	}
	if saved != got {
		t.Fatalf("returned request differs from saved one")
	}

	if note == nil {
		t.Fatalf("expected a notification")
	}
	if note.Type != domain.NotificationSuccess {
		t.Fatalf("expected success notification, got %s", note.Type)
	}
	if uid, ok := note.Recipient.UserID(); !ok || uid != requester {
		t.Fatalf("expected notification to requester %s, got %+v", requester, note.Recipient)
	}
	if note.Message != "Resource allocated for request at Moga Relief Camp" {
		t.Fatalf("unexpected message: %q", note.Message)
	}
	if event.NotificationID != note.ID {
		t.Fatalf("enqueued event does not match stored notification")
	}
}

func TestAllocation_Allocate_RequestNotFound(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mock_service.NewMockAllocationStore(ctrl)
	queue := mock_service.NewMockNotificationQueue(ctrl)
	tx := mock_domain.NewMockAllocationTx(ctrl)

	runTx(store, tx).Times(1)
	tx.EXPECT().GetRequestForUpdate(gomock.Any(), gomock.Any()).Return(nil, e.ErrNotFound).Times(1)
	queue.EXPECT().Enqueue(gomock.Any(), gomock.Any()).Times(0)

	svc := service.NewAllocationService(store, nil, nil, queue, nil, true, discardLogger())

	resID := uuid.New()
	_, err := svc.Allocate(context.Background(), uuid.New(), domain.AllocateRequest{ResourceID: &resID})
	if !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAllocation_Allocate_ResourceErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		claimErr error
	}{
		{name: "missing resource", claimErr: e.ErrNotFound},
		{name: "resource already taken", claimErr: e.ErrConflict},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := mock_service.NewMockAllocationStore(ctrl)
			queue := mock_service.NewMockNotificationQueue(ctrl)
			tx := mock_domain.NewMockAllocationTx(ctrl)

			reqID, resID := uuid.New(), uuid.New()

			runTx(store, tx).Times(1)
			tx.EXPECT().GetRequestForUpdate(gomock.Any(), reqID).Return(pendingRequest(reqID, uuid.New()), nil).Times(1)
			tx.EXPECT().ClaimResource(gomock.Any(), resID).Return(tc.claimErr).Times(1)
			tx.EXPECT().SaveAllocation(gomock.Any(), gomock.Any()).Times(0)
			tx.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).Times(0)
			queue.EXPECT().Enqueue(gomock.Any(), gomock.Any()).Times(0)

			svc := service.NewAllocationService(store, nil, nil, queue, nil, true, discardLogger())

			_, err := svc.Allocate(context.Background(), reqID, domain.AllocateRequest{ResourceID: &resID})
			if !errors.Is(err, tc.claimErr) {
				t.Fatalf("expected %v, got %v", tc.claimErr, err)
			}
		})
	}
}

func TestAllocation_Allocate_StrictTransition(t *testing.T) {
	t.Parallel()

	for _, status := range []domain.RequestStatus{domain.RequestAllocated, domain.RequestFulfilled, domain.RequestCancelled} {
		status := status
		t.Run(string(status), func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := mock_service.NewMockAllocationStore(ctrl)
			tx := mock_domain.NewMockAllocationTx(ctrl)

			reqID, resID := uuid.New(), uuid.New()
			req := pendingRequest(reqID, uuid.New())
			req.Status = status

			runTx(store, tx).Times(1)
			tx.EXPECT().GetRequestForUpdate(gomock.Any(), reqID).Return(req, nil).Times(1)
			tx.EXPECT().ClaimResource(gomock.Any(), gomock.Any()).Times(0)

			svc := service.NewAllocationService(store, nil, nil, nil, nil, true, discardLogger())

			_, err := svc.Allocate(context.Background(), reqID, domain.AllocateRequest{ResourceID: &resID})
			if !errors.Is(err, e.ErrConflict) {
				t.Fatalf("expected ErrConflict, got %v", err)
			}
			if !errors.Is(err, domain.ErrInvalidTransition) {
				t.Fatalf("expected ErrInvalidTransition, got %v", err)
			}
		})
	}
}

func TestAllocation_Allocate_LegacyModeAcceptsAnyStatus(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mock_service.NewMockAllocationStore(ctrl)
	tx := mock_domain.NewMockAllocationTx(ctrl)

	reqID, resID := uuid.New(), uuid.New()
	req := pendingRequest(reqID, uuid.New())
	req.Status = domain.RequestFulfilled

	runTx(store, tx).Times(1)
	tx.EXPECT().GetRequestForUpdate(gomock.Any(), reqID).Return(req, nil).Times(1)
	tx.EXPECT().ClaimResource(gomock.Any(), resID).Return(nil).Times(1)
	tx.EXPECT().SaveAllocation(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	tx.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	svc := service.NewAllocationService(store, nil, nil, nil, nil, false, discardLogger())

	got, err := svc.Allocate(context.Background(), reqID, domain.AllocateRequest{ResourceID: &resID})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.Status != domain.RequestAllocated {
		t.Fatalf("expected allocated, got %s", got.Status)
	}
}

func TestAllocation_Allocate_WithoutResource_NoClaim(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mock_service.NewMockAllocationStore(ctrl)
	tx := mock_domain.NewMockAllocationTx(ctrl)

	reqID := uuid.New()

	runTx(store, tx).Times(1)
	tx.EXPECT().GetRequestForUpdate(gomock.Any(), reqID).Return(pendingRequest(reqID, uuid.New()), nil).Times(1)
	tx.EXPECT().ClaimResource(gomock.Any(), gomock.Any()).Times(0)
	tx.EXPECT().SaveAllocation(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	tx.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	svc := service.NewAllocationService(store, nil, nil, nil, nil, true, discardLogger())

	got, err := svc.Allocate(context.Background(), reqID, domain.AllocateRequest{})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.AllocatedResource != nil {
		t.Fatalf("expected no resource, got %v", got.AllocatedResource)
	}
}

func TestAllocation_Allocate_VolunteerMustHaveVolunteerRole(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mock_service.NewMockAllocationStore(ctrl)
	tx := mock_domain.NewMockAllocationTx(ctrl)

	reqID, resID, userID := uuid.New(), uuid.New(), uuid.New()

	runTx(store, tx).Times(1)
	tx.EXPECT().GetRequestForUpdate(gomock.Any(), reqID).Return(pendingRequest(reqID, uuid.New()), nil).Times(1)
	tx.EXPECT().ClaimResource(gomock.Any(), resID).Return(nil).Times(1)
	tx.EXPECT().GetVolunteer(gomock.Any(), userID).Return(&domain.User{ID: userID, Role: domain.RoleVictim}, nil).Times(1)
	tx.EXPECT().SaveAllocation(gomock.Any(), gomock.Any()).Times(0)

	svc := service.NewAllocationService(store, nil, nil, nil, nil, true, discardLogger())

	_, err := svc.Allocate(context.Background(), reqID, domain.AllocateRequest{ResourceID: &resID, VolunteerID: &userID})
	if !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAllocation_Allocate_QueueFailureDoesNotFail(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mock_service.NewMockAllocationStore(ctrl)
	queue := mock_service.NewMockNotificationQueue(ctrl)
	tx := mock_domain.NewMockAllocationTx(ctrl)

	reqID, resID := uuid.New(), uuid.New()

	runTx(store, tx).Times(1)
	tx.EXPECT().GetRequestForUpdate(gomock.Any(), reqID).Return(pendingRequest(reqID, uuid.New()), nil).Times(1)
	tx.EXPECT().ClaimResource(gomock.Any(), resID).Return(nil).Times(1)
	tx.EXPECT().SaveAllocation(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	tx.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	queue.EXPECT().Enqueue(gomock.Any(), gomock.Any()).Return(errors.New("redis down")).Times(1)

	svc := service.NewAllocationService(store, nil, nil, queue, nil, true, discardLogger())

	if _, err := svc.Allocate(context.Background(), reqID, domain.AllocateRequest{ResourceID: &resID}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestAllocation_Allocate_ConcurrentSameResource_OneWins(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mock_service.NewMockAllocationStore(ctrl)
	tx := mock_domain.NewMockAllocationTx(ctrl)

	resID := uuid.New()
	var claimed atomic.Bool

	store.EXPECT().
		WithinTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn func(domain.AllocationTx) error) error {
			return fn(tx)
		}).Times(2)
	tx.EXPECT().GetRequestForUpdate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, id uuid.UUID) (*domain.AidRequest, error) {
			return pendingRequest(id, uuid.New()), nil
		}).Times(2)
	tx.EXPECT().ClaimResource(gomock.Any(), resID).
		DoAndReturn(func(context.Context, uuid.UUID) error {
			if claimed.CompareAndSwap(false, true) {
				return nil
			}
			return e.ErrConflict
		}).Times(2)
	tx.EXPECT().SaveAllocation(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	tx.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	svc := service.NewAllocationService(store, nil, nil, nil, nil, true, discardLogger())

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Allocate(context.Background(), uuid.New(), domain.AllocateRequest{ResourceID: &resID})
		}(i)
	}
	wg.Wait()

	var ok, conflict int
	for _, err := range errs {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, e.ErrConflict):
			conflict++
		default:
			t.Fatalf("unexpected err: %v", err)
		}
	}
	if ok != 1 || conflict != 1 {
		t.Fatalf("expected one success and one conflict, got ok=%d conflict=%d", ok, conflict)
	}
}

func TestAllocation_Plan(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	requests := mock_service.NewMockAidRequestRepository(ctrl)
	resources := mock_service.NewMockResourceRepository(ctrl)

	reqID := uuid.New()
	req := pendingRequest(reqID, uuid.New())
	res := &domain.Resource{
		ID:       uuid.New(),
		Type:     "water",
		Quantity: 100,
		Location: domain.Location{Name: "Depot", Lat: 30.8165, Lng: 75.1717},
		Status:   domain.ResourceAvailable,
	}

	requests.EXPECT().List(gomock.Any(), domain.AidRequestFilter{Status: domain.RequestPending}).
		Return([]*domain.AidRequest{req}, nil).Times(1)
	resources.EXPECT().List(gomock.Any(), domain.ResourceFilter{Status: domain.ResourceAvailable}).
		Return([]*domain.Resource{res}, nil).Times(1)

	svc := service.NewAllocationService(nil, requests, resources, nil, nil, true, discardLogger())

	plan, err := svc.Plan(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(plan) != 1 {
		t.Fatalf("expected 1 suggestion, got %d", len(plan))
	}
	if plan[0].RequestID != reqID || plan[0].ResourceID != res.ID {
		t.Fatalf("unexpected suggestion: %+v", plan[0])
	}
	// same point, excess 50 -> 100 + 5
	if plan[0].MatchScore != 105 {
		t.Fatalf("expected score 105, got %v", plan[0].MatchScore)
	}
}
