package handler_test

import (
	"net/http"
	"testing"

	"github.com/SergeyBogomolovv/furniture-resale/internal/auth"
	"github.com/SergeyBogomolovv/furniture-resale/internal/entities"
	"github.com/SergeyBogomolovv/furniture-resale/internal/handler"
	mocks "github.com/SergeyBogomolovv/furniture-resale/internal/handler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestChatHandler_OpenSession(t *testing.T) {
	svc := mocks.NewMockChatService(t)
	svc.EXPECT().OpenSession(mock.Anything, customer.UserID, "sofa").
		Return(entities.ChatSession{ID: "s-1", CustomerID: customer.UserID, Status: entities.ChatWaiting}, nil).Once()
	svc.EXPECT().OpenSession(mock.Anything, customer.UserID, "").
		Return(entities.ChatSession{ID: "s-2", CustomerID: customer.UserID, Status: entities.ChatWaiting}, nil).Once()

	r := newRouter(handler.NewChatHandler(discardLogger(), svc), customer)

	status, body := serve(t, r, http.MethodPost, "/api/chats", `{"product_id":"sofa"}`)
	assert.Equal(t, http.StatusCreated, status)
	assert.Contains(t, body, `"label":"Waiting"`)

	status, _ = serve(t, r, http.MethodPost, "/api/chats", "")
	assert.Equal(t, http.StatusCreated, status)
}

func TestChatHandler_GetSession(t *testing.T) {
	session := entities.ChatSession{ID: "s-1", CustomerID: customer.UserID, DealerID: dealer.UserID, Status: entities.ChatActive}

	testCases := []struct {
		name       string
		principal  *auth.Principal
		wantStatus int
	}{
		{name: "customer", principal: customer, wantStatus: http.StatusOK},
		{name: "dealer", principal: dealer, wantStatus: http.StatusOK},
		{name: "admin", principal: admin, wantStatus: http.StatusOK},
		{name: "outsider", principal: &auth.Principal{UserID: "cust-2", Role: entities.RoleCustomer}, wantStatus: http.StatusNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockChatService(t)
			svc.EXPECT().GetSession(mock.Anything, "s-1").Return(session, nil).Once()

			r := newRouter(handler.NewChatHandler(discardLogger(), svc), tc.principal)
			status, _ := serve(t, r, http.MethodGet, "/api/chats/s-1", "")

			assert.Equal(t, tc.wantStatus, status)
		})
	}
}

func TestChatHandler_PostMessage(t *testing.T) {
	testCases := []struct {
		name         string
		body         string
		mockBehavior func(svc *mocks.MockChatService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "posted",
			body: `{"body":"Is it still available?"}`,
			mockBehavior: func(svc *mocks.MockChatService) {
				svc.EXPECT().PostMessage(mock.Anything, "s-1", customer.UserID, "Is it still available?").
					Return(entities.ChatMessage{ID: "m-1", SenderID: customer.UserID, Body: "Is it still available?"}, nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"sender_id":"cust-1"`,
		},
		{
			name: "closed session",
			body: `{"body":"hello"}`,
			mockBehavior: func(svc *mocks.MockChatService) {
				svc.EXPECT().PostMessage(mock.Anything, "s-1", customer.UserID, "hello").
					Return(entities.ChatMessage{}, entities.ErrChatClosed).Once()
			},
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   `"chat session is closed"`,
		},
		{
			name: "not a participant",
			body: `{"body":"hello"}`,
			mockBehavior: func(svc *mocks.MockChatService) {
				svc.EXPECT().PostMessage(mock.Anything, "s-1", customer.UserID, "hello").
					Return(entities.ChatMessage{}, entities.ErrNotParticipant).Once()
			},
			wantStatus: http.StatusForbidden,
		},
		{
			name: "blank body",
			body: `{"body":"   "}`,
			mockBehavior: func(svc *mocks.MockChatService) {
				svc.EXPECT().PostMessage(mock.Anything, "s-1", customer.UserID, "   ").
					Return(entities.ChatMessage{}, entities.ErrEmptyMessage).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"message body is empty"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockChatService(t)
			tc.mockBehavior(svc)

			r := newRouter(handler.NewChatHandler(discardLogger(), svc), customer)
			status, body := serve(t, r, http.MethodPost, "/api/chats/s-1/messages", tc.body)

			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}

func TestChatHandler_CloseSession(t *testing.T) {
	session := entities.ChatSession{ID: "s-1", CustomerID: customer.UserID, Status: entities.ChatActive}

	t.Run("participant closes", func(t *testing.T) {
		svc := mocks.NewMockChatService(t)
		svc.EXPECT().GetSession(mock.Anything, "s-1").Return(session, nil).Once()
		svc.EXPECT().CloseSession(mock.Anything, "s-1", entities.ChatCompleted, customer.UserID).
			Return(entities.ChatSession{ID: "s-1", Status: entities.ChatCompleted}, nil).Once()

		r := newRouter(handler.NewChatHandler(discardLogger(), svc), customer)
		status, body := serve(t, r, http.MethodPost, "/api/chats/s-1/close", `{"status":"completed"}`)

		assert.Equal(t, http.StatusOK, status)
		assert.Contains(t, body, `"status":"completed"`)
	})

	t.Run("outsider is forbidden", func(t *testing.T) {
		svc := mocks.NewMockChatService(t)
		svc.EXPECT().GetSession(mock.Anything, "s-1").Return(session, nil).Once()

		r := newRouter(handler.NewChatHandler(discardLogger(), svc), dealer)
		status, _ := serve(t, r, http.MethodPost, "/api/chats/s-1/close", `{"status":"cancelled"}`)

		assert.Equal(t, http.StatusForbidden, status)
	})

	t.Run("only final statuses", func(t *testing.T) {
		r := newRouter(handler.NewChatHandler(discardLogger(), mocks.NewMockChatService(t)), customer)
		status, body := serve(t, r, http.MethodPost, "/api/chats/s-1/close", `{"status":"active"}`)

		assert.Equal(t, http.StatusBadRequest, status)
		assert.Contains(t, body, `"status":"oneof"`)
	})
}

func TestChatHandler_AssignDealer(t *testing.T) {
	testCases := []struct {
		name         string
		principal    *auth.Principal
		mockBehavior func(svc *mocks.MockChatService)
		wantStatus   int
		wantBody     string
	}{
		{
			name:      "assigned",
			principal: admin,
			mockBehavior: func(svc *mocks.MockChatService) {
				svc.EXPECT().AssignDealer(mock.Anything, "s-1", dealer.UserID, admin.UserID).
					Return(entities.ChatSession{ID: "s-1", DealerID: dealer.UserID, Status: entities.ChatActive}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"label":"In conversation"`,
		},
		{
			name:      "not a dealer",
			principal: admin,
			mockBehavior: func(svc *mocks.MockChatService) {
				svc.EXPECT().AssignDealer(mock.Anything, "s-1", dealer.UserID, admin.UserID).
					Return(entities.ChatSession{}, entities.ErrNotDealer).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"user is not a dealer"`,
		},
		{
			name:         "dealers cannot assign",
			principal:    dealer,
			mockBehavior: func(svc *mocks.MockChatService) {},
			wantStatus:   http.StatusForbidden,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockChatService(t)
			tc.mockBehavior(svc)

			r := newRouter(handler.NewChatHandler(discardLogger(), svc), tc.principal)
			status, body := serve(t, r, http.MethodPost, "/api/admin/chat/assign", `{"session_id":"s-1","dealer_id":"dealer-1"}`)

			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}

func TestChatHandler_ListSessions(t *testing.T) {
	svc := mocks.NewMockChatService(t)
	svc.EXPECT().ListSessions(mock.Anything, mock.MatchedBy(func(f entities.ListFilter) bool {
		return f.Status == "waiting"
	})).Return(entities.ChatList{
		Sessions: []entities.ChatSession{{ID: "s-1", Status: entities.ChatWaiting}},
		Total:    1,
		Counts:   entities.StatusCounts{"all": 2, "waiting": 1, "active": 1},
	}, nil).Once()

	r := newRouter(handler.NewChatHandler(discardLogger(), svc), admin)
	status, body := serve(t, r, http.MethodGet, "/api/admin/chats?status=waiting", "")

	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `"total":1`)
	assert.Contains(t, body, `"active":1`)
}
