package api_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"reliefhub/internal/api"
	"reliefhub/internal/api/handlers/http/auth"
	mock_auth "reliefhub/internal/api/handlers/http/auth/mocks"
	"reliefhub/internal/api/handlers/http/dashboard"
	mock_dashboard "reliefhub/internal/api/handlers/http/dashboard/mocks"
	"reliefhub/internal/api/handlers/http/notifications"
	mock_notifications "reliefhub/internal/api/handlers/http/notifications/mocks"
	"reliefhub/internal/api/handlers/http/relief"
	mock_relief "reliefhub/internal/api/handlers/http/relief/mocks"
	"reliefhub/internal/api/handlers/http/system"
	"reliefhub/internal/domain"
)

type tokenTable map[string]domain.Principal

func (t tokenTable) ParseToken(raw string) (domain.Principal, error) {
	if p, ok := t[raw]; ok {
		return p, nil
	}
	return domain.Principal{}, errors.New("unknown token")
}

type routerFixture struct {
	srv        http.Handler
	resources  *mock_relief.MockResources
	requests   *mock_relief.MockRequests
	allocator  *mock_relief.MockAllocator
	volunteers *mock_relief.MockVolunteers
	dash       *mock_dashboard.MockAggregator
}

var (
	victim = domain.Principal{UserID: uuid.New(), Role: domain.RoleVictim}
	ngo    = domain.Principal{UserID: uuid.New(), Role: domain.RoleNGO}
)

func newRouter(t *testing.T) routerFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	f := routerFixture{
		resources:  mock_relief.NewMockResources(ctrl),
		requests:   mock_relief.NewMockRequests(ctrl),
		allocator:  mock_relief.NewMockAllocator(ctrl),
		volunteers: mock_relief.NewMockVolunteers(ctrl),
		dash:       mock_dashboard.NewMockAggregator(ctrl),
	}

	h := api.Handlers{
		Auth:          auth.NewHandler(logger, mock_auth.NewMockAuthenticator(ctrl)),
		Relief:        relief.NewHandler(logger, f.resources, f.requests, f.allocator, f.volunteers),
		Notifications: notifications.NewHandler(logger, mock_notifications.NewMockInbox(ctrl)),
		Dashboard:     dashboard.NewHandler(logger, f.dash),
		System:        system.NewHandler(logger, nil),
	}
	tokens := tokenTable{"victim": victim, "ngo": ngo}

	f.srv = api.InitRouter(ctx, h, tokens, logger)
	return f
}

func (f routerFixture) do(method, path, token, body string) *httptest.ResponseRecorder {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	f.srv.ServeHTTP(rr, req)
	return rr
}

func TestRouter_HealthIsPublic(t *testing.T) {
	f := newRouter(t)

	if rr := f.do(http.MethodGet, "/api/v1/health", "", ""); rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rr.Code)
	}
}

func TestRouter_ProtectedRoutesNeedToken(t *testing.T) {
	f := newRouter(t)

	for _, path := range []string{
		"/api/v1/resources",
		"/api/v1/requests",
		"/api/v1/volunteers",
		"/api/v1/notifications",
		"/api/v1/dashboard/stats",
	} {
		if rr := f.do(http.MethodGet, path, "", ""); rr.Code != http.StatusUnauthorized {
			t.Fatalf("%s: expected 401 got %d", path, rr.Code)
		}
		if rr := f.do(http.MethodGet, path, "forged", ""); rr.Code != http.StatusUnauthorized {
			t.Fatalf("%s with bad token: expected 401 got %d", path, rr.Code)
		}
	}
}

func TestRouter_AllocateRequiresCoordinator(t *testing.T) {
	f := newRouter(t)

	id := uuid.New()
	path := "/api/v1/requests/" + id.String() + "/allocate"

	if rr := f.do(http.MethodPost, path, "victim", `{}`); rr.Code != http.StatusForbidden {
		t.Fatalf("victim: expected 403 got %d", rr.Code)
	}

	f.allocator.EXPECT().
		Allocate(gomock.Any(), id, domain.AllocateRequest{}).
		Return(&domain.AidRequest{ID: id, Status: domain.RequestAllocated}, nil)

	if rr := f.do(http.MethodPost, path, "ngo", `{}`); rr.Code != http.StatusOK {
		t.Fatalf("ngo: expected 200 got %d, body=%s", rr.Code, rr.Body.String())
	}
}

func TestRouter_DeleteResourceRequiresCoordinator(t *testing.T) {
	f := newRouter(t)

	id := uuid.New()
	path := "/api/v1/resources/" + id.String()

	if rr := f.do(http.MethodDelete, path, "victim", ""); rr.Code != http.StatusForbidden {
		t.Fatalf("victim: expected 403 got %d", rr.Code)
	}

	f.resources.EXPECT().Delete(gomock.Any(), id).Return(nil)
	if rr := f.do(http.MethodDelete, path, "ngo", ""); rr.Code != http.StatusOK {
		t.Fatalf("ngo: expected 200 got %d", rr.Code)
	}
}

func TestRouter_PlanRequiresCoordinator(t *testing.T) {
	f := newRouter(t)

	if rr := f.do(http.MethodGet, "/api/v1/allocations/plan", "victim", ""); rr.Code != http.StatusForbidden {
		t.Fatalf("victim: expected 403 got %d", rr.Code)
	}

	f.allocator.EXPECT().Plan(gomock.Any()).Return(nil, nil)
	if rr := f.do(http.MethodGet, "/api/v1/allocations/plan", "ngo", ""); rr.Code != http.StatusOK {
		t.Fatalf("ngo: expected 200 got %d", rr.Code)
	}
}

func TestRouter_AnyRoleReadsDashboard(t *testing.T) {
	f := newRouter(t)

	f.dash.EXPECT().Stats(gomock.Any()).Return(&domain.DashboardStats{}, nil)
	if rr := f.do(http.MethodGet, "/api/v1/dashboard/stats", "victim", ""); rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rr.Code)
	}
}

func TestRouter_AuthIsRateLimited(t *testing.T) {
	f := newRouter(t)

	limited := false
	for i := 0; i < 10; i++ {
		// malformed bodies never reach the service
		rr := f.do(http.MethodPost, "/api/v1/auth/login", "", "{")
		if rr.Code == http.StatusTooManyRequests {
			limited = true
			break
		}
		if rr.Code != http.StatusBadRequest {
			t.Fatalf("attempt %d: expected 400 got %d", i, rr.Code)
		}
	}
	if !limited {
		t.Fatalf("expected auth routes to be rate limited")
	}
}
