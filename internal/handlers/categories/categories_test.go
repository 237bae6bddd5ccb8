package categories

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/bountyhub/internal/domain"
	"github.com/GlebRadaev/bountyhub/pkg/auth"
)

var admin = domain.Identity{UserID: "admin-1", Role: domain.RoleAdmin}

func NewMock(t *testing.T) (*CategoryHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func newRequest(method, target, body, id string) *http.Request {
	r := httptest.NewRequest(method, target, strings.NewReader(body))
	rctx := chi.NewRouteContext()
	if id != "" {
		rctx.URLParams.Add("id", id)
	}
	ctx := context.WithValue(auth.WithIdentity(r.Context(), admin), chi.RouteCtxKey, rctx)
	return r.WithContext(ctx)
}

func TestListHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().List(gomock.Any()).Return([]domain.Category{{ID: 1, Name: "Docs"}}, nil)
	w := httptest.NewRecorder()
	handler.List(w, newRequest(http.MethodGet, "/api/bounties/categories", "", ""))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"id":1,"name":"Docs"}]`, w.Body.String())

	service.EXPECT().List(gomock.Any()).Return(nil, errors.New("db down"))
	w = httptest.NewRecorder()
	handler.List(w, newRequest(http.MethodGet, "/api/bounties/categories", "", ""))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestCreateHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Created",
			body: `{"name":"Docs"}`,
			prepareMock: func() {
				service.EXPECT().Create(gomock.Any(), admin, "Docs").Return(&domain.Category{ID: 1, Name: "Docs"}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "Duplicate name",
			body: `{"name":"Docs"}`,
			prepareMock: func() {
				service.EXPECT().Create(gomock.Any(), admin, "Docs").Return(nil, domain.Conflict("category Docs already exists"))
			},
			expectedCode: http.StatusConflict,
		},
		{
			name:         "Invalid request body",
			body:         `name`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			w := httptest.NewRecorder()
			handler.Create(w, newRequest(http.MethodPost, "/api/bounties/categories", tt.body, ""))
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestUpdateHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().Update(gomock.Any(), admin, 2, "Design").Return(&domain.Category{ID: 2, Name: "Design"}, nil)
	w := httptest.NewRecorder()
	handler.Update(w, newRequest(http.MethodPut, "/api/bounties/categories/2", `{"name":"Design"}`, "2"))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	handler.Update(w, newRequest(http.MethodPut, "/api/bounties/categories/x", `{"name":"Design"}`, "x"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().Delete(gomock.Any(), admin, 2).Return(nil)
	w := httptest.NewRecorder()
	handler.Delete(w, newRequest(http.MethodDelete, "/api/bounties/categories/2", "", "2"))
	assert.Equal(t, http.StatusNoContent, w.Code)

	service.EXPECT().Delete(gomock.Any(), admin, 9).Return(domain.NotFound("category", "9"))
	w = httptest.NewRecorder()
	handler.Delete(w, newRequest(http.MethodDelete, "/api/bounties/categories/9", "", "9"))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
