package submissions

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
	"github.com/GlebRadaev/bountyhub/internal/dto"
	"github.com/GlebRadaev/bountyhub/internal/service/bountyservice"
	"github.com/GlebRadaev/bountyhub/pkg/auth"
)

var (
	admin  = domain.Identity{UserID: "admin-1", Role: domain.RoleAdmin}
	hunter = domain.Identity{UserID: "hunter-1", Role: domain.RoleHunter}
)

func NewMock(t *testing.T) (*SubmissionHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func newRequest(method, target, body string, caller domain.Identity, id string) *http.Request {
	r := httptest.NewRequest(method, target, strings.NewReader(body))
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	ctx := context.WithValue(auth.WithIdentity(r.Context(), caller), chi.RouteCtxKey, rctx)
	return r.WithContext(ctx)
}

func TestSubmitHandler(t *testing.T) {
	handler, service := NewMock(t)
	url := "https://example.org/pr/1"

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successful submission",
			body: `{"description":"done","deliverableUrl":"https://example.org/pr/1"}`,
			prepareMock: func() {
				service.EXPECT().
					SubmitWork(gomock.Any(), hunter, "b1", bountyservice.SubmissionInput{Description: "done", DeliverableURL: &url}).
					Return(&domain.WorkSubmission{ID: "s1", BountyID: "b1", Status: domain.SubmissionPending}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "Invalid request body",
			body:         `[`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Submission already pending",
			body: `{"description":"again"}`,
			prepareMock: func() {
				service.EXPECT().
					SubmitWork(gomock.Any(), hunter, "b1", bountyservice.SubmissionInput{Description: "again"}).
					Return(nil, domain.Precondition("bounty b1 already has a pending submission"))
			},
			expectedCode: http.StatusPreconditionFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			w := httptest.NewRecorder()
			handler.Submit(w, newRequest(http.MethodPost, "/api/bounties/b1/submit", tt.body, hunter, "b1"))
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestReviewHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().
		ReviewWorkSubmission(gomock.Any(), admin, "s1", domain.SubmissionApproved, "ok").
		Return(&bountyservice.ReviewResult{
			Submission: domain.WorkSubmission{ID: "s1", Status: domain.SubmissionApproved},
			Bounty:     domain.Bounty{ID: "b1", Status: domain.StatusDone},
		}, nil)

	w := httptest.NewRecorder()
	handler.Review(w, newRequest(http.MethodPut, "/api/bounties/submissions/s1/review", `{"status":"approved","reviewNotes":"ok"}`, admin, "s1"))
	assert.Equal(t, http.StatusOK, w.Code)

	var body dto.ReviewResponseDTO
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, domain.SubmissionApproved, body.Submission.Status)
	assert.Equal(t, domain.StatusDone, body.Bounty.Status)

	service.EXPECT().
		ReviewWorkSubmission(gomock.Any(), admin, "s1", domain.SubmissionStatus("maybe"), "").
		Return(nil, domain.Invalid("unknown review outcome %q", "maybe"))
	w = httptest.NewRecorder()
	handler.Review(w, newRequest(http.MethodPut, "/api/bounties/submissions/s1/review", `{"status":"maybe"}`, admin, "s1"))
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestListByBountyHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().ListSubmissions(gomock.Any(), "b1").Return([]domain.WorkSubmission{{ID: "s1"}, {ID: "s2"}}, nil)
	w := httptest.NewRecorder()
	handler.ListByBounty(w, newRequest(http.MethodGet, "/api/bounties/b1/submissions", "", hunter, "b1"))
	assert.Equal(t, http.StatusOK, w.Code)

	var body []domain.WorkSubmission
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Len(t, body, 2)
}
