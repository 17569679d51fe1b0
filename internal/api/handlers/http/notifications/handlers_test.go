package notifications_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"reliefhub/internal/api/handlers/http/notifications"
	mock_notifications "reliefhub/internal/api/handlers/http/notifications/mocks"
	"reliefhub/internal/domain"
	"reliefhub/internal/middleware"
	"reliefhub/pkg/e"
)

func newHandler(t *testing.T) (*notifications.Handler, *mock_notifications.MockInbox) {
	t.Helper()
	inbox := mock_notifications.NewMockInbox(gomock.NewController(t))
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return notifications.NewHandler(logger, inbox), inbox
}

func withID(r *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestNotificationList_OK(t *testing.T) {
	t.Parallel()

	h, inbox := newHandler(t)
	p := domain.Principal{UserID: uuid.New(), Role: domain.RoleVictim}

	inbox.EXPECT().ListFor(gomock.Any(), p).Return([]*domain.Notification{
		{ID: uuid.New(), Message: "Resource allocated", Type: domain.NotificationSuccess, Recipient: domain.UserRecipient(p.UserID)},
		{ID: uuid.New(), Message: "New Food resource added", Type: domain.NotificationSuccess, Recipient: domain.Broadcast()},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/notifications", nil)
	req = req.WithContext(middleware.WithPrincipal(req.Context(), p))
	rr := httptest.NewRecorder()

	h.NotificationList(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d, body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}

	var got []map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 notifications got %d", len(got))
	}
	if got[1]["recipient"] != nil {
		t.Fatalf("broadcast recipient should encode as null, got %v", got[1]["recipient"])
	}
}

func TestNotificationList_NoPrincipal_401(t *testing.T) {
	t.Parallel()

	h, _ := newHandler(t)
	rr := httptest.NewRecorder()

	h.NotificationList(rr, httptest.NewRequest(http.MethodGet, "/api/v1/notifications", nil))

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected %d got %d", http.StatusUnauthorized, rr.Code)
	}
}

func TestNotificationRead(t *testing.T) {
	t.Parallel()

	p := domain.Principal{UserID: uuid.New(), Role: domain.RoleVolunteer}

	tests := []struct {
		name string
		err  error
		code int
	}{
		{"own notification", nil, http.StatusOK},
		{"someone else's notification", e.ErrNotFound, http.StatusNotFound},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h, inbox := newHandler(t)
			id := uuid.New()

			var out *domain.Notification
			if tt.err == nil {
				out = &domain.Notification{ID: id, IsRead: true, Recipient: domain.UserRecipient(p.UserID)}
			}
			inbox.EXPECT().MarkRead(gomock.Any(), p, id).Return(out, tt.err)

			req := withID(httptest.NewRequest(http.MethodPut, "/x", nil), id.String())
			req = req.WithContext(middleware.WithPrincipal(req.Context(), p))
			rr := httptest.NewRecorder()

			h.NotificationRead(rr, req)

			if rr.Code != tt.code {
				t.Fatalf("expected %d got %d, body=%s", tt.code, rr.Code, rr.Body.String())
			}
		})
	}
}

func TestNotificationRead_InvalidID_400(t *testing.T) {
	t.Parallel()

	h, _ := newHandler(t)
	req := withID(httptest.NewRequest(http.MethodPut, "/x", nil), "not-a-uuid")
	req = req.WithContext(middleware.WithPrincipal(req.Context(), domain.Principal{UserID: uuid.New()}))
	rr := httptest.NewRecorder()

	h.NotificationRead(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d", http.StatusBadRequest, rr.Code)
	}
}
