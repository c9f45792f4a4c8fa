package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/furniture-resale/internal/entities"
	"github.com/SergeyBogomolovv/furniture-resale/internal/service"
	mocks "github.com/SergeyBogomolovv/furniture-resale/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type chatDeps struct {
	repo     *mocks.MockChatRepo
	users    *mocks.MockUserReader
	events   *mocks.MockEventRepo
	notifier *mocks.MockNotifier
}

func newChatDeps(t *testing.T) chatDeps {
	return chatDeps{
		repo:     mocks.NewMockChatRepo(t),
		users:    mocks.NewMockUserReader(t),
		events:   mocks.NewMockEventRepo(t),
		notifier: mocks.NewMockNotifier(t),
	}
}

func TestChatService_OpenSession(t *testing.T) {
	d := newChatDeps(t)
	d.repo.EXPECT().CreateChatSession(mock.Anything, mock.MatchedBy(func(s entities.ChatSession) bool {
		return s.Status == entities.ChatWaiting && s.CustomerID == "c-1" && s.ProductID == "p-1" && s.DealerID == ""
	})).Return(nil)

	svc := service.NewChatService(discardLogger(), passThroughTx(t), d.repo, d.users, d.events, d.notifier)
	got, err := svc.OpenSession(context.Background(), "c-1", "p-1")
	require.NoError(t, err)
	assert.NotEmpty(t, got.ID)
	assert.Equal(t, entities.ChatWaiting, got.Status)
}

func TestChatService_AssignDealer(t *testing.T) {
	type MockBehavior func(d chatDeps)

	dealer := entities.User{ID: "d-1", Role: entities.RoleDealer}
	session := func(status entities.ChatStatus, dealerID string) entities.ChatSession {
		return entities.ChatSession{ID: "s-1", CustomerID: "c-1", DealerID: dealerID, Status: status}
	}

	testCases := []struct {
		name         string
		mockBehavior MockBehavior
		wantErr      error
	}{
		{
			name: "assign waiting session",
			mockBehavior: func(d chatDeps) {
				d.users.EXPECT().GetUserByID(mock.Anything, "d-1").Return(dealer, nil)
				d.repo.EXPECT().GetChatSession(mock.Anything, "s-1").Return(session(entities.ChatWaiting, ""), nil)
				d.repo.EXPECT().UpdateChatSession(mock.Anything, entities.ChatWaiting, mock.MatchedBy(func(s entities.ChatSession) bool {
					return s.Status == entities.ChatActive && s.DealerID == "d-1"
				})).Return(nil)
				d.events.EXPECT().SaveStatusEvent(mock.Anything, mock.MatchedBy(func(e entities.StatusEvent) bool {
					return e.EntityType == entities.KindChat && e.FromStatus == "waiting" && e.ToStatus == "active"
				})).Return(nil)
				d.notifier.EXPECT().ChatAssigned(mock.Anything, mock.Anything).Return(nil)
			},
		},
		{
			name: "reassign active session",
			mockBehavior: func(d chatDeps) {
				d.users.EXPECT().GetUserByID(mock.Anything, "d-1").Return(dealer, nil)
				d.repo.EXPECT().GetChatSession(mock.Anything, "s-1").Return(session(entities.ChatActive, "d-9"), nil)
				d.repo.EXPECT().UpdateChatSession(mock.Anything, entities.ChatActive, mock.Anything).Return(nil)
				d.events.EXPECT().SaveStatusEvent(mock.Anything, mock.Anything).Return(nil)
				d.notifier.EXPECT().ChatAssigned(mock.Anything, mock.Anything).Return(nil)
			},
		},
		{
			name: "user is a customer",
			mockBehavior: func(d chatDeps) {
				d.users.EXPECT().GetUserByID(mock.Anything, "d-1").Return(entities.User{ID: "d-1", Role: entities.RoleCustomer}, nil)
			},
			wantErr: entities.ErrNotDealer,
		},
		{
			name: "unknown user",
			mockBehavior: func(d chatDeps) {
				d.users.EXPECT().GetUserByID(mock.Anything, "d-1").Return(entities.User{}, entities.ErrUserNotFound)
			},
			wantErr: entities.ErrNotDealer,
		},
		{
			name: "completed session",
			mockBehavior: func(d chatDeps) {
				d.users.EXPECT().GetUserByID(mock.Anything, "d-1").Return(dealer, nil)
				d.repo.EXPECT().GetChatSession(mock.Anything, "s-1").Return(session(entities.ChatCompleted, "d-9"), nil)
			},
			wantErr: entities.ErrInvalidTransition,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := newChatDeps(t)
			tc.mockBehavior(d)

			svc := service.NewChatService(discardLogger(), passThroughTx(t), d.repo, d.users, d.events, d.notifier)

			got, err := svc.AssignDealer(context.Background(), "s-1", "d-1", "admin-1")
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, entities.ChatActive, got.Status)
			assert.Equal(t, "d-1", got.DealerID)
		})
	}
}

func TestChatService_CloseSession(t *testing.T) {
	t.Run("completed", func(t *testing.T) {
		d := newChatDeps(t)
		d.repo.EXPECT().GetChatSession(mock.Anything, "s-1").
			Return(entities.ChatSession{ID: "s-1", Status: entities.ChatActive, DealerID: "d-1"}, nil)
		d.repo.EXPECT().UpdateChatSession(mock.Anything, entities.ChatActive, mock.MatchedBy(func(s entities.ChatSession) bool {
			return s.Status == entities.ChatCompleted && !s.ClosedAt.IsZero()
		})).Return(nil)
		d.events.EXPECT().SaveStatusEvent(mock.Anything, mock.Anything).Return(nil)

		svc := service.NewChatService(discardLogger(), passThroughTx(t), d.repo, d.users, d.events, d.notifier)
		got, err := svc.CloseSession(context.Background(), "s-1", entities.ChatCompleted, "d-1")
		require.NoError(t, err)
		assert.Equal(t, entities.ChatCompleted, got.Status)
	})

	t.Run("not a closing status", func(t *testing.T) {
		d := newChatDeps(t)
		svc := service.NewChatService(discardLogger(), passThroughTx(t), d.repo, d.users, d.events, d.notifier)
		_, err := svc.CloseSession(context.Background(), "s-1", entities.ChatWaiting, "d-1")
		assert.ErrorIs(t, err, entities.ErrInvalidTransition)
	})
}

func TestChatService_PostMessage(t *testing.T) {
	type MockBehavior func(d chatDeps)

	active := entities.ChatSession{ID: "s-1", CustomerID: "c-1", DealerID: "d-1", Status: entities.ChatActive}
	closed := entities.ChatSession{ID: "s-1", CustomerID: "c-1", DealerID: "d-1", Status: entities.ChatCancelled}

	testCases := []struct {
		name         string
		sender       string
		body         string
		mockBehavior MockBehavior
		wantErr      error
	}{
		{
			name:   "dealer replies",
			sender: "d-1",
			body:   " Still available ",
			mockBehavior: func(d chatDeps) {
				d.repo.EXPECT().GetChatSession(mock.Anything, "s-1").Return(active, nil)
				d.repo.EXPECT().SaveChatMessage(mock.Anything, mock.MatchedBy(func(m entities.ChatMessage) bool {
					return m.Body == "Still available" && m.SenderID == "d-1" && m.SessionID == "s-1"
				})).Return(nil)
			},
		},
		{
			name:         "empty body",
			sender:       "c-1",
			body:         "   ",
			mockBehavior: func(d chatDeps) {},
			wantErr:      entities.ErrEmptyMessage,
		},
		{
			name:   "closed session",
			sender: "c-1",
			body:   "hello",
			mockBehavior: func(d chatDeps) {
				d.repo.EXPECT().GetChatSession(mock.Anything, "s-1").Return(closed, nil)
			},
			wantErr: entities.ErrChatClosed,
		},
		{
			name:   "stranger",
			sender: "c-9",
			body:   "hello",
			mockBehavior: func(d chatDeps) {
				d.repo.EXPECT().GetChatSession(mock.Anything, "s-1").Return(active, nil)
			},
			wantErr: entities.ErrNotParticipant,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := newChatDeps(t)
			tc.mockBehavior(d)

			svc := service.NewChatService(discardLogger(), passThroughTx(t), d.repo, d.users, d.events, d.notifier)

			got, err := svc.PostMessage(context.Background(), "s-1", tc.sender, tc.body)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, got.ID)
		})
	}
}

func TestChatService_ListSessions(t *testing.T) {
	day := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	sessions := []entities.ChatSession{
		{ID: "s-1", CustomerID: "KIM-1", Status: entities.ChatWaiting, CreatedAt: day},
		{ID: "s-2", CustomerID: "kim-2", DealerID: "d-1", Status: entities.ChatActive, CreatedAt: day},
		{ID: "s-3", CustomerID: "kim-3", DealerID: "d-1", Status: entities.ChatActive, CreatedAt: day},
		{ID: "s-4", CustomerID: "lee-1", Status: entities.ChatWaiting, CreatedAt: day},
	}

	testCases := []struct {
		name       string
		filter     entities.ListFilter
		wantIDs    []string
		wantTotal  int
		wantCounts entities.StatusCounts
	}{
		{
			name:      "empty search keeps everything",
			filter:    entities.ListFilter{},
			wantIDs:   []string{"s-1", "s-2", "s-3", "s-4"},
			wantTotal: 4,
			wantCounts: entities.StatusCounts{
				"all": 4, "waiting": 2, "active": 2, "completed": 0, "cancelled": 0,
			},
		},
		{
			name:      "search ignores case and status tab narrows the page only",
			filter:    entities.ListFilter{Search: "Kim", Status: "active", Limit: 1},
			wantIDs:   []string{"s-2"},
			wantTotal: 2,
			wantCounts: entities.StatusCounts{
				"all": 3, "waiting": 1, "active": 2, "completed": 0, "cancelled": 0,
			},
		},
		{
			name:      "offset past the end",
			filter:    entities.ListFilter{Offset: 10},
			wantIDs:   []string{},
			wantTotal: 4,
			wantCounts: entities.StatusCounts{
				"all": 4, "waiting": 2, "active": 2, "completed": 0, "cancelled": 0,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := newChatDeps(t)
			d.repo.EXPECT().ListChatSessions(mock.Anything, tc.filter.From, tc.filter.To).Return(sessions, nil)

			svc := service.NewChatService(discardLogger(), passThroughTx(t), d.repo, d.users, d.events, d.notifier)
			got, err := svc.ListSessions(context.Background(), tc.filter)
			require.NoError(t, err)

			ids := make([]string, 0, len(got.Sessions))
			for _, s := range got.Sessions {
				ids = append(ids, s.ID)
			}
			assert.Equal(t, tc.wantIDs, ids)
			assert.Equal(t, tc.wantTotal, got.Total)
			assert.Equal(t, tc.wantCounts, got.Counts)
		})
	}
}
