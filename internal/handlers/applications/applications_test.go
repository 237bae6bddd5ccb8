package applications

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/bountyhub/internal/domain"
	"github.com/GlebRadaev/bountyhub/pkg/auth"
)

var (
	admin  = domain.Identity{UserID: "admin-1", Role: domain.RoleAdmin}
	hunter = domain.Identity{UserID: "hunter-1", Role: domain.RoleHunter}
)

func NewMock(t *testing.T) (*ApplicationHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func newRequest(method, target, body string, caller domain.Identity, id string) *http.Request {
	r := httptest.NewRequest(method, target, strings.NewReader(body))
	rctx := chi.NewRouteContext()
	if id != "" {
		rctx.URLParams.Add("id", id)
	}
	ctx := context.WithValue(auth.WithIdentity(r.Context(), caller), chi.RouteCtxKey, rctx)
	return r.WithContext(ctx)
}

func TestApplyHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successful application",
			body: `{"bountyId":"b1","message":"I can do this"}`,
			prepareMock: func() {
				service.EXPECT().ApplyToBounty(gomock.Any(), hunter, "b1", "I can do this").
					Return(&domain.Application{ID: "a1", BountyID: "b1", Status: domain.ApplicationPending}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "Missing bounty id",
			body:         `{"message":"hi"}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Duplicate application",
			body: `{"bountyId":"b1","message":"again"}`,
			prepareMock: func() {
				service.EXPECT().ApplyToBounty(gomock.Any(), hunter, "b1", "again").
					Return(nil, domain.Conflict("already applied to bounty b1"))
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Bounty not found",
			body: `{"bountyId":"nope","message":"hi"}`,
			prepareMock: func() {
				service.EXPECT().ApplyToBounty(gomock.Any(), hunter, "nope", "hi").
					Return(nil, domain.NotFound("bounty", "nope"))
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := newRequest(http.MethodPost, "/api/bounties/apply", tt.body, hunter, "")
			w := httptest.NewRecorder()
			handler.Apply(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestDecideHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Accept",
			body: `{"status":"accepted"}`,
			prepareMock: func() {
				service.EXPECT().AcceptApplication(gomock.Any(), admin, "a1").
					Return(&domain.Application{ID: "a1", Status: domain.ApplicationAccepted}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Reject",
			body: `{"status":"rejected"}`,
			prepareMock: func() {
				service.EXPECT().RejectApplication(gomock.Any(), admin, "a1").
					Return(&domain.Application{ID: "a1", Status: domain.ApplicationRejected}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Unknown decision",
			body:         `{"status":"pending"}`,
			prepareMock:  func() {},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name: "Bounty already assigned",
			body: `{"status":"accepted"}`,
			prepareMock: func() {
				service.EXPECT().AcceptApplication(gomock.Any(), admin, "a1").
					Return(nil, domain.Conflict("bounty b1 already has an assignee"))
			},
			expectedCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := newRequest(http.MethodPut, "/api/bounties/applications/a1", tt.body, admin, "a1")
			w := httptest.NewRecorder()
			handler.Decide(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestWithdrawHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().WithdrawApplication(gomock.Any(), hunter, "a1").Return(nil)
	w := httptest.NewRecorder()
	handler.Withdraw(w, newRequest(http.MethodDelete, "/api/bounties/applications/a1", "", hunter, "a1"))
	assert.Equal(t, http.StatusNoContent, w.Code)

	service.EXPECT().WithdrawApplication(gomock.Any(), hunter, "a2").Return(domain.Precondition("application a2 is accepted"))
	w = httptest.NewRecorder()
	handler.Withdraw(w, newRequest(http.MethodDelete, "/api/bounties/applications/a2", "", hunter, "a2"))
	assert.Equal(t, http.StatusPreconditionFailed, w.Code)
}

func TestListHandlers(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().ListApplications(gomock.Any(), "b1").Return([]domain.Application{{ID: "a1"}}, nil)
	w := httptest.NewRecorder()
	handler.ListByBounty(w, newRequest(http.MethodGet, "/api/bounties/b1/applications", "", hunter, "b1"))
	assert.Equal(t, http.StatusOK, w.Code)
	var body []domain.Application
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Len(t, body, 1)

	service.EXPECT().MyApplications(gomock.Any(), hunter).Return(nil, nil)
	w = httptest.NewRecorder()
	handler.Mine(w, newRequest(http.MethodGet, "/api/bounties/my-applications", "", hunter, ""))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	service.EXPECT().AllApplications(gomock.Any(), hunter).Return(nil, domain.ErrForbidden)
	w = httptest.NewRecorder()
	handler.All(w, newRequest(http.MethodGet, "/api/bounties/all-applications", "", hunter, ""))
	assert.Equal(t, http.StatusForbidden, w.Code)
}
