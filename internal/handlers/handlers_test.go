package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/bountyhub/internal/broadcast"
	"github.com/GlebRadaev/bountyhub/internal/domain"
	sessionhandlers "github.com/GlebRadaev/bountyhub/internal/handlers/sessions"
	"github.com/GlebRadaev/bountyhub/internal/payout"
	"github.com/GlebRadaev/bountyhub/internal/repo"
	memstore "github.com/GlebRadaev/bountyhub/internal/repo/mem-store"
	"github.com/GlebRadaev/bountyhub/internal/service"
	"github.com/GlebRadaev/bountyhub/internal/session"
	"github.com/GlebRadaev/bountyhub/pkg/auth"
	"github.com/GlebRadaev/bountyhub/pkg/ratelimit"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hub := broadcast.NewHub()
	services := service.New(repo.NewMemory(memstore.New()), hub, payout.NewMockGateway(ctrl), payout.Config{Workers: 1})
	t.Cleanup(services.PayoutService.Close)

	rt := Realtime{
		Registry: session.NewRegistry(session.Config{QueueSize: 8, Overflow: session.DropOldest}),
		Broker:   hub,
		Config:   sessionhandlers.DefaultConfig(),
	}
	jwtService := auth.NewMockJWTServiceInterface(ctrl)
	h := New(services, rt, auth.Middleware(jwtService), ratelimit.New(100, 100).Handler)

	assert.NotNil(t, h, "Handlers should not be nil")
	assert.NotNil(t, h.BountyHandler)
	assert.NotNil(t, h.PaymentHandler)
	assert.NotNil(t, h.SessionHandler)
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBountyHandler := NewMockBountyHandler(ctrl)
	mockApplicationHandler := NewMockApplicationHandler(ctrl)
	mockSubmissionHandler := NewMockSubmissionHandler(ctrl)
	mockPaymentHandler := NewMockPaymentHandler(ctrl)
	mockCategoryHandler := NewMockCategoryHandler(ctrl)
	mockUserHandler := NewMockUserHandler(ctrl)
	mockSessionHandler := NewMockSessionHandler(ctrl)

	calls := map[string]int{}
	record := func(name string) func(http.ResponseWriter, *http.Request) {
		return func(http.ResponseWriter, *http.Request) { calls[name]++ }
	}

	mockBountyHandler.EXPECT().ListBounties(gomock.Any(), gomock.Any()).Do(record("ListBounties")).AnyTimes()
	mockBountyHandler.EXPECT().CreateBounty(gomock.Any(), gomock.Any()).Do(record("CreateBounty")).AnyTimes()
	mockBountyHandler.EXPECT().GetBounty(gomock.Any(), gomock.Any()).Do(record("GetBounty")).AnyTimes()
	mockBountyHandler.EXPECT().UpdateBounty(gomock.Any(), gomock.Any()).Do(record("UpdateBounty")).AnyTimes()
	mockBountyHandler.EXPECT().DeleteBounty(gomock.Any(), gomock.Any()).Do(record("DeleteBounty")).AnyTimes()
	mockBountyHandler.EXPECT().ChangeStatus(gomock.Any(), gomock.Any()).Do(record("ChangeStatus")).AnyTimes()
	mockBountyHandler.EXPECT().ApproveBounty(gomock.Any(), gomock.Any()).Do(record("ApproveBounty")).AnyTimes()
	mockBountyHandler.EXPECT().Leaderboard(gomock.Any(), gomock.Any()).Do(record("Leaderboard")).AnyTimes()
	mockApplicationHandler.EXPECT().Apply(gomock.Any(), gomock.Any()).Do(record("Apply")).AnyTimes()
	mockApplicationHandler.EXPECT().Decide(gomock.Any(), gomock.Any()).Do(record("Decide")).AnyTimes()
	mockApplicationHandler.EXPECT().Withdraw(gomock.Any(), gomock.Any()).Do(record("Withdraw")).AnyTimes()
	mockApplicationHandler.EXPECT().ListByBounty(gomock.Any(), gomock.Any()).Do(record("ApplicationsByBounty")).AnyTimes()
	mockApplicationHandler.EXPECT().Mine(gomock.Any(), gomock.Any()).Do(record("Mine")).AnyTimes()
	mockApplicationHandler.EXPECT().All(gomock.Any(), gomock.Any()).Do(record("All")).AnyTimes()
	mockSubmissionHandler.EXPECT().Submit(gomock.Any(), gomock.Any()).Do(record("Submit")).AnyTimes()
	mockSubmissionHandler.EXPECT().Review(gomock.Any(), gomock.Any()).Do(record("Review")).AnyTimes()
	mockSubmissionHandler.EXPECT().ListByBounty(gomock.Any(), gomock.Any()).Do(record("SubmissionsByBounty")).AnyTimes()
	mockPaymentHandler.EXPECT().Authorize(gomock.Any(), gomock.Any()).Do(record("Authorize")).AnyTimes()
	mockPaymentHandler.EXPECT().ExecuteInstant(gomock.Any(), gomock.Any()).Do(record("ExecuteInstant")).AnyTimes()
	mockPaymentHandler.EXPECT().ProcessBatch(gomock.Any(), gomock.Any()).Do(record("ProcessBatch")).AnyTimes()
	mockPaymentHandler.EXPECT().Pending(gomock.Any(), gomock.Any()).Do(record("Pending")).AnyTimes()
	mockPaymentHandler.EXPECT().MarkPaid(gomock.Any(), gomock.Any()).Do(record("MarkPaid")).AnyTimes()
	mockPaymentHandler.EXPECT().Records(gomock.Any(), gomock.Any()).Do(record("Records")).AnyTimes()
	mockPaymentHandler.EXPECT().Balance(gomock.Any(), gomock.Any()).Do(record("Balance")).AnyTimes()
	mockCategoryHandler.EXPECT().List(gomock.Any(), gomock.Any()).Do(record("ListCategories")).AnyTimes()
	mockCategoryHandler.EXPECT().Create(gomock.Any(), gomock.Any()).Do(record("CreateCategory")).AnyTimes()
	mockCategoryHandler.EXPECT().Update(gomock.Any(), gomock.Any()).Do(record("UpdateCategory")).AnyTimes()
	mockCategoryHandler.EXPECT().Delete(gomock.Any(), gomock.Any()).Do(record("DeleteCategory")).AnyTimes()
	mockUserHandler.EXPECT().Me(gomock.Any(), gomock.Any()).Do(record("Me")).AnyTimes()
	mockUserHandler.EXPECT().UpdateMe(gomock.Any(), gomock.Any()).Do(record("UpdateMe")).AnyTimes()
	mockUserHandler.EXPECT().List(gomock.Any(), gomock.Any()).Do(record("ListUsers")).AnyTimes()
	mockUserHandler.EXPECT().VerifyAddress(gomock.Any(), gomock.Any()).Do(record("VerifyAddress")).AnyTimes()
	mockSessionHandler.EXPECT().Connect(gomock.Any(), gomock.Any()).Do(record("Connect")).AnyTimes()
	mockSessionHandler.EXPECT().List(gomock.Any(), gomock.Any()).Do(record("ListSessions")).AnyTimes()

	jwtService := auth.NewMockJWTServiceInterface(ctrl)
	jwtService.EXPECT().ValidateToken("good").Return(&auth.Claims{UserID: "u1", Role: string(domain.RoleHunter)}, nil).AnyTimes()

	h := &Handlers{
		BountyHandler:      mockBountyHandler,
		ApplicationHandler: mockApplicationHandler,
		SubmissionHandler:  mockSubmissionHandler,
		PaymentHandler:     mockPaymentHandler,
		CategoryHandler:    mockCategoryHandler,
		UserHandler:        mockUserHandler,
		SessionHandler:     mockSessionHandler,
		Authenticate:       auth.Middleware(jwtService),
		RateLimit:          ratelimit.New(1000, 1000).Handler,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method  string
		url     string
		handler string
	}{
		{"GET", "/api/bounties", "ListBounties"},
		{"POST", "/api/bounties", "CreateBounty"},
		{"GET", "/api/bounties/leaderboard", "Leaderboard"},
		{"GET", "/api/bounties/b1", "GetBounty"},
		{"PUT", "/api/bounties/b1", "UpdateBounty"},
		{"DELETE", "/api/bounties/b1", "DeleteBounty"},
		{"PATCH", "/api/bounties/b1/status", "ChangeStatus"},
		{"PATCH", "/api/bounties/b1/approve", "ApproveBounty"},
		{"POST", "/api/bounties/apply", "Apply"},
		{"GET", "/api/bounties/my-applications", "Mine"},
		{"GET", "/api/bounties/all-applications", "All"},
		{"PUT", "/api/bounties/applications/a1", "Decide"},
		{"DELETE", "/api/bounties/applications/a1", "Withdraw"},
		{"GET", "/api/bounties/b1/applications", "ApplicationsByBounty"},
		{"POST", "/api/bounties/b1/submit", "Submit"},
		{"GET", "/api/bounties/b1/submissions", "SubmissionsByBounty"},
		{"PATCH", "/api/bounties/submissions/s1/review", "Review"},
		{"PUT", "/api/bounties/b1/authorize-payment", "Authorize"},
		{"PUT", "/api/bounties/b1/mark-paid", "MarkPaid"},
		{"POST", "/api/bounties/process-instant-payment", "ExecuteInstant"},
		{"POST", "/api/bounties/process-batch-payments", "ProcessBatch"},
		{"GET", "/api/bounties/pending-batch-payments", "Pending"},
		{"GET", "/api/bounties/categories", "ListCategories"},
		{"POST", "/api/bounties/categories", "CreateCategory"},
		{"PUT", "/api/bounties/categories/3", "UpdateCategory"},
		{"DELETE", "/api/bounties/categories/3", "DeleteCategory"},
		{"GET", "/api/transactions", "Records"},
		{"GET", "/api/transactions/balance", "Balance"},
		{"GET", "/api/users", "ListUsers"},
		{"GET", "/api/users/me", "Me"},
		{"PUT", "/api/users/me", "UpdateMe"},
		{"POST", "/api/users/verify-address", "VerifyAddress"},
		{"GET", "/api/sessions", "ListSessions"},
		{"GET", "/ws?token=good", "Connect"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			assert.Equal(t, http.StatusUnauthorized, rec.Code, "route must require a token")

			req = httptest.NewRequest(tt.method, tt.url, nil)
			req.Header.Set("Authorization", "Bearer good")
			rec = httptest.NewRecorder()
			before := calls[tt.handler]
			router.ServeHTTP(rec, req)
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, before+1, calls[tt.handler], "request must reach %s", tt.handler)
		})
	}

	t.Run("metrics are public", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
