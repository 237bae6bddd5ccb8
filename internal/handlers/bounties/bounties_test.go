package bounties

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/bountyhub/internal/domain"
	"github.com/GlebRadaev/bountyhub/internal/service/bountyservice"
	"github.com/GlebRadaev/bountyhub/pkg/auth"
)

var (
	admin  = domain.Identity{UserID: "admin-1", Role: domain.RoleAdmin}
	client = domain.Identity{UserID: "client-1", Role: domain.RoleClient}
)

func NewMock(t *testing.T) (*BountyHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func newRequest(method, target, body string, caller domain.Identity, params map[string]string) *http.Request {
	r := httptest.NewRequest(method, target, strings.NewReader(body))
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	ctx := context.WithValue(auth.WithIdentity(r.Context(), caller), chi.RouteCtxKey, rctx)
	return r.WithContext(ctx)
}

func TestCreateBountyHandler(t *testing.T) {
	handler, service := NewMock(t)
	amount := decimal.RequireFromString("10")

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful creation",
			body: `{"title":"Docs","description":"Write docs","bountyAmount":"10"}`,
			prepareMock: func() {
				service.EXPECT().
					CreateBounty(gomock.Any(), client, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ domain.Identity, in bountyservice.BountyInput) (*domain.Bounty, error) {
						assert.Equal(t, "Docs", in.Title)
						assert.True(t, amount.Equal(in.Amount))
						return &domain.Bounty{ID: "b1", Title: in.Title, Amount: in.Amount, Status: domain.StatusToDo}, nil
					})
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:          "Invalid request body",
			body:          `{"title":`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid request body",
		},
		{
			name: "Validation failure",
			body: `{"title":"","bountyAmount":"10"}`,
			prepareMock: func() {
				service.EXPECT().
					CreateBounty(gomock.Any(), client, gomock.Any()).
					Return(nil, domain.Invalid("title is required"))
			},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: "validation failed: title is required",
		},
		{
			name: "Internal server error",
			body: `{"title":"Docs","bountyAmount":"10"}`,
			prepareMock: func() {
				service.EXPECT().
					CreateBounty(gomock.Any(), client, gomock.Any()).
					Return(nil, errors.New("db down"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := newRequest(http.MethodPost, "/api/bounties", tt.body, client, nil)
			w := httptest.NewRecorder()
			handler.CreateBounty(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				var resp map[string]string
				require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp["message"])
			}
		})
	}
}

func TestListBountiesHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		target       string
		prepareMock  func()
		expectedCode int
		expectedLen  int
	}{
		{
			name:   "Filter by status and category",
			target: "/api/bounties?status=TO_DO&categoryId=3",
			prepareMock: func() {
				category := 3
				service.EXPECT().
					ListBounties(gomock.Any(), domain.BountyFilter{Status: domain.StatusToDo, CategoryID: &category}).
					Return([]domain.Bounty{{ID: "b1"}, {ID: "b2"}}, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  2,
		},
		{
			name:   "Empty list is an empty array",
			target: "/api/bounties",
			prepareMock: func() {
				service.EXPECT().ListBounties(gomock.Any(), domain.BountyFilter{}).Return(nil, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Invalid category",
			target:       "/api/bounties?categoryId=abc",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := newRequest(http.MethodGet, tt.target, "", client, nil)
			w := httptest.NewRecorder()
			handler.ListBounties(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body []domain.Bounty
				require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.Len(t, body, tt.expectedLen)
			}
		})
	}
}

func TestGetBountyHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().GetBounty(gomock.Any(), "missing").Return(nil, domain.NotFound("bounty", "missing"))
	r := newRequest(http.MethodGet, "/api/bounties/missing", "", client, map[string]string{"id": "missing"})
	w := httptest.NewRecorder()
	handler.GetBounty(w, r)
	assert.Equal(t, http.StatusNotFound, w.Code)

	service.EXPECT().GetBounty(gomock.Any(), "b1").Return(&domain.Bounty{ID: "b1", Title: "Docs"}, nil)
	r = newRequest(http.MethodGet, "/api/bounties/b1", "", client, map[string]string{"id": "b1"})
	w = httptest.NewRecorder()
	handler.GetBounty(w, r)
	assert.Equal(t, http.StatusOK, w.Code)
	var body domain.Bounty
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "Docs", body.Title)
}

func TestDeleteBountyHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Unreferenced bounty is removed",
			prepareMock: func() {
				service.EXPECT().DeleteBounty(gomock.Any(), client, "b1").Return(nil, nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name: "Referenced bounty is cancelled",
			prepareMock: func() {
				service.EXPECT().DeleteBounty(gomock.Any(), client, "b1").
					Return(&domain.Bounty{ID: "b1", Status: domain.StatusCancelled}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Not the creator",
			prepareMock: func() {
				service.EXPECT().DeleteBounty(gomock.Any(), client, "b1").Return(nil, domain.ErrForbidden)
			},
			expectedCode: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := newRequest(http.MethodDelete, "/api/bounties/b1", "", client, map[string]string{"id": "b1"})
			w := httptest.NewRecorder()
			handler.DeleteBounty(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestChangeStatusHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successful transition",
			body: `{"status":"IN_PROGRESS"}`,
			prepareMock: func() {
				service.EXPECT().ChangeStatus(gomock.Any(), admin, "b1", domain.StatusInProgress).
					Return(&domain.Bounty{ID: "b1", Status: domain.StatusInProgress}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Transition not allowed",
			body: `{"status":"DONE"}`,
			prepareMock: func() {
				service.EXPECT().ChangeStatus(gomock.Any(), admin, "b1", domain.StatusDone).
					Return(nil, domain.Precondition("bounty b1 cannot move from TO_DO to DONE"))
			},
			expectedCode: http.StatusPreconditionFailed,
		},
		{
			name:         "Invalid request body",
			body:         `status`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := newRequest(http.MethodPut, "/api/bounties/b1/status", tt.body, admin, map[string]string{"id": "b1"})
			w := httptest.NewRecorder()
			handler.ChangeStatus(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestApproveBountyHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Approve",
			body: `{"approved":true}`,
			prepareMock: func() {
				service.EXPECT().ApproveBounty(gomock.Any(), admin, "b1", true).
					Return(&domain.Bounty{ID: "b1", IsApproved: true}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Missing flag",
			body:         `{}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Conflict surfaces as 409",
			body: `{"approved":false}`,
			prepareMock: func() {
				service.EXPECT().ApproveBounty(gomock.Any(), admin, "b1", false).
					Return(nil, domain.Conflict("bounty b1 was modified concurrently"))
			},
			expectedCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := newRequest(http.MethodPut, "/api/bounties/b1/approve", tt.body, admin, map[string]string{"id": "b1"})
			w := httptest.NewRecorder()
			handler.ApproveBounty(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestLeaderboardHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().Leaderboard(gomock.Any(), 5).Return([]domain.LeaderboardEntry{
		{UserID: "h1", Name: "Hunter", Completed: 2, Earned: decimal.RequireFromString("3.5")},
	}, nil)

	r := newRequest(http.MethodGet, "/api/bounties/leaderboard?limit=5", "", client, nil)
	w := httptest.NewRecorder()
	handler.Leaderboard(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	var body []domain.LeaderboardEntry
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	require.Len(t, body, 1)
	assert.Equal(t, "h1", body[0].UserID)
}
