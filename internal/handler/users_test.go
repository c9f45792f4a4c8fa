package handler_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/furniture-resale/internal/entities"
	"github.com/SergeyBogomolovv/furniture-resale/internal/handler"
	mocks "github.com/SergeyBogomolovv/furniture-resale/internal/handler/mocks"
	"github.com/SergeyBogomolovv/furniture-resale/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestUserHandler_Login(t *testing.T) {
	testCases := []struct {
		name         string
		body         string
		mockBehavior func(svc *mocks.MockUserService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "success",
			body: `{"email":"admin@example.com","password":"secret"}`,
			mockBehavior: func(svc *mocks.MockUserService) {
				svc.EXPECT().Login(mock.Anything, "admin@example.com", "secret").Return(service.LoginResult{
					Token:     "token",
					ExpiresAt: time.Date(2026, 5, 2, 0, 0, 0, 0, time.UTC),
					User:      entities.User{ID: "admin-1", Email: "admin@example.com", Role: entities.RoleAdmin},
				}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"token":"token"`,
		},
		{
			name: "wrong password",
			body: `{"email":"admin@example.com","password":"nope"}`,
			mockBehavior: func(svc *mocks.MockUserService) {
				svc.EXPECT().Login(mock.Anything, "admin@example.com", "nope").
					Return(service.LoginResult{}, entities.ErrInvalidCredentials).Once()
			},
			wantStatus: http.StatusUnauthorized,
			wantBody:   `"invalid email or password"`,
		},
		{
			name:         "invalid email",
			body:         `{"email":"admin","password":"secret"}`,
			mockBehavior: func(svc *mocks.MockUserService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"email":"email"`,
		},
		{
			name: "storage failure is hidden",
			body: `{"email":"admin@example.com","password":"secret"}`,
			mockBehavior: func(svc *mocks.MockUserService) {
				svc.EXPECT().Login(mock.Anything, mock.Anything, mock.Anything).
					Return(service.LoginResult{}, errors.New("connection refused")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockUserService(t)
			tc.mockBehavior(svc)

			r := newRouter(handler.NewUserHandler(discardLogger(), svc), nil)
			status, body := serve(t, r, http.MethodPost, "/api/auth/login", tc.body)

			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}

func TestUserHandler_Me(t *testing.T) {
	svc := mocks.NewMockUserService(t)
	svc.EXPECT().GetUserByID(mock.Anything, dealer.UserID).
		Return(entities.User{ID: dealer.UserID, Role: entities.RoleDealer, PasswordHash: "hash"}, nil).Once()

	status, body := serve(t, newRouter(handler.NewUserHandler(discardLogger(), svc), dealer), http.MethodGet, "/api/me", "")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `"role":"dealer"`)
	assert.NotContains(t, body, "hash")

	status, _ = serve(t, newRouter(handler.NewUserHandler(discardLogger(), svc), nil), http.MethodGet, "/api/me", "")
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestUserHandler_UpdateRole(t *testing.T) {
	svc := mocks.NewMockUserService(t)
	svc.EXPECT().UpdateRole(mock.Anything, "u-1", entities.RoleDealer, admin.UserID).
		Return(entities.User{ID: "u-1", Role: entities.RoleDealer}, nil).Once()
	svc.EXPECT().UpdateRole(mock.Anything, "u-2", entities.RoleDealer, admin.UserID).
		Return(entities.User{}, entities.ErrUserNotFound).Once()

	r := newRouter(handler.NewUserHandler(discardLogger(), svc), admin)

	status, _ := serve(t, r, http.MethodPatch, "/api/admin/users/u-1/role", `{"role":"dealer"}`)
	assert.Equal(t, http.StatusOK, status)

	status, _ = serve(t, r, http.MethodPatch, "/api/admin/users/u-2/role", `{"role":"dealer"}`)
	assert.Equal(t, http.StatusNotFound, status)

	status, body := serve(t, r, http.MethodPatch, "/api/admin/users/u-1/role", `{"role":"owner"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, body, `"role":"oneof"`)
}

func TestUserHandler_ListUsers(t *testing.T) {
	svc := mocks.NewMockUserService(t)
	svc.EXPECT().ListUsers(mock.Anything, entities.UserFilter{Role: "dealer", Limit: 5}).
		Return([]entities.User{{ID: "dealer-1", Role: entities.RoleDealer}}, 1, nil).Once()

	r := newRouter(handler.NewUserHandler(discardLogger(), svc), admin)
	status, body := serve(t, r, http.MethodGet, "/api/admin/users?role=dealer&limit=5", "")

	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `"total":1`)
}
