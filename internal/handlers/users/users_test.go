package users

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/bountyhub/internal/domain"
	"github.com/GlebRadaev/bountyhub/internal/dto"
	"github.com/GlebRadaev/bountyhub/internal/service/userservice"
	"github.com/GlebRadaev/bountyhub/pkg/auth"
)

var hunter = domain.Identity{UserID: "hunter-1", Role: domain.RoleHunter}

func NewMock(t *testing.T) (*UserHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func newRequest(method, target, body string) *http.Request {
	r := httptest.NewRequest(method, target, strings.NewReader(body))
	return r.WithContext(auth.WithIdentity(r.Context(), hunter))
}

func TestMeHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().Profile(gomock.Any(), hunter).Return(&domain.User{ID: "hunter-1", Role: domain.RoleHunter}, nil)
	w := httptest.NewRecorder()
	handler.Me(w, newRequest(http.MethodGet, "/api/users/me", ""))
	assert.Equal(t, http.StatusOK, w.Code)

	var user domain.User
	require.NoError(t, json.NewDecoder(w.Body).Decode(&user))
	assert.Equal(t, "hunter-1", user.ID)
}

func TestUpdateMeHandler(t *testing.T) {
	handler, service := NewMock(t)
	address := "t1Hsc1LR8yKnbbe3twRp88p6vFfC5t7DLbs"

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Profile saved",
			body: `{"name":"Hunter","email":"h@example.org","z_address":"t1Hsc1LR8yKnbbe3twRp88p6vFfC5t7DLbs"}`,
			prepareMock: func() {
				service.EXPECT().
					UpdateProfile(gomock.Any(), hunter, userservice.ProfileInput{Name: "Hunter", Email: "h@example.org", PayoutAddress: &address}).
					Return(&domain.User{ID: "hunter-1", Name: "Hunter", PayoutAddress: &address}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Invalid address",
			body: `{"name":"Hunter","z_address":"nope"}`,
			prepareMock: func() {
				service.EXPECT().UpdateProfile(gomock.Any(), hunter, gomock.Any()).
					Return(nil, domain.Invalid("invalid payout address"))
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name:         "Invalid request body",
			body:         `{`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			w := httptest.NewRecorder()
			handler.UpdateMe(w, newRequest(http.MethodPut, "/api/users/me", tt.body))
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestListHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().List(gomock.Any(), hunter).Return(nil, domain.ErrForbidden)
	w := httptest.NewRecorder()
	handler.List(w, newRequest(http.MethodGet, "/api/users", ""))
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestVerifyAddressHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().VerifyAddress("t1Hsc1LR8yKnbbe3twRp88p6vFfC5t7DLbs").Return(true)
	w := httptest.NewRecorder()
	handler.VerifyAddress(w, newRequest(http.MethodPost, "/api/users/verify-address", `{"address":"t1Hsc1LR8yKnbbe3twRp88p6vFfC5t7DLbs"}`))
	require.Equal(t, http.StatusOK, w.Code)

	var body dto.VerifyAddressResponseDTO
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.True(t, body.Valid)
}
