package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/furniture-resale/internal/entities"
	"github.com/SergeyBogomolovv/furniture-resale/internal/listing"
	"github.com/SergeyBogomolovv/furniture-resale/pkg/trm"

	"github.com/google/uuid"
)

type ChatRepo interface {
	CreateChatSession(ctx context.Context, s entities.ChatSession) error
	GetChatSession(ctx context.Context, sessionID string) (entities.ChatSession, error)
	ListChatSessions(ctx context.Context, from, to time.Time) ([]entities.ChatSession, error)
	UpdateChatSession(ctx context.Context, from entities.ChatStatus, s entities.ChatSession) error
	SaveChatMessage(ctx context.Context, m entities.ChatMessage) error
}

type UserReader interface {
	GetUserByID(ctx context.Context, userID string) (entities.User, error)
}

var chatAccessors = listing.Accessors[entities.ChatSession]{
	SearchFields: func(s entities.ChatSession) []string {
		return []string{s.ID, s.CustomerID, s.DealerID, s.ProductID}
	},
	CreatedAt: func(s entities.ChatSession) time.Time { return s.CreatedAt },
	Status:    func(s entities.ChatSession) string { return string(s.Status) },
}

type chatService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      ChatRepo
	users     UserReader
	events    EventRepo
	notifier  Notifier
}

func NewChatService(logger *slog.Logger, txManager trm.Manager, repo ChatRepo, users UserReader, events EventRepo, notifier Notifier) *chatService {
	return &chatService{
		logger:    logger.With(slog.String("service", "chat")),
		txManager: txManager,
		repo:      repo,
		users:     users,
		events:    events,
		notifier:  notifier,
	}
}

// OpenSession starts a waiting session for a customer, optionally about a product.
func (s *chatService) OpenSession(ctx context.Context, customerID, productID string) (entities.ChatSession, error) {
	now := time.Now().UTC()
	session := entities.ChatSession{
		ID:         uuid.NewString(),
		CustomerID: customerID,
		ProductID:  productID,
		Status:     entities.ChatWaiting,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.repo.CreateChatSession(ctx, session); err != nil {
		return entities.ChatSession{}, fmt.Errorf("failed to create chat session: %w", err)
	}
	s.logger.Debug("chat session opened", slog.String("session_id", session.ID))
	return session, nil
}

func (s *chatService) GetSession(ctx context.Context, sessionID string) (entities.ChatSession, error) {
	return s.repo.GetChatSession(ctx, sessionID)
}

// AssignDealer hands a waiting session to a dealer or reassigns an active one.
func (s *chatService) AssignDealer(ctx context.Context, sessionID, dealerID, actorID string) (entities.ChatSession, error) {
	dealer, err := s.users.GetUserByID(ctx, dealerID)
	if errors.Is(err, entities.ErrUserNotFound) {
		return entities.ChatSession{}, entities.ErrNotDealer
	}
	if err != nil {
		return entities.ChatSession{}, err
	}
	if dealer.Role != entities.RoleDealer {
		return entities.ChatSession{}, entities.ErrNotDealer
	}

	updated, err := s.transition(ctx, sessionID, entities.ChatActive, actorID, func(session *entities.ChatSession) {
		session.DealerID = dealer.ID
	})
	if err != nil {
		return entities.ChatSession{}, err
	}

	if err := s.notifier.ChatAssigned(ctx, updated); err != nil {
		notificationsFailed.WithLabelValues("chat.assigned").Inc()
		s.logger.Warn("failed to notify chat assignment", slog.String("session_id", updated.ID), slog.Any("error", err))
	}
	return updated, nil
}

// CloseSession ends a session as completed or cancelled.
func (s *chatService) CloseSession(ctx context.Context, sessionID string, status entities.ChatStatus, actorID string) (entities.ChatSession, error) {
	if status != entities.ChatCompleted && status != entities.ChatCancelled {
		return entities.ChatSession{}, fmt.Errorf("%w: cannot close a session as %s", entities.ErrInvalidTransition, status)
	}
	return s.transition(ctx, sessionID, status, actorID, func(session *entities.ChatSession) {
		session.ClosedAt = session.UpdatedAt
	})
}

func (s *chatService) transition(ctx context.Context, sessionID string, to entities.ChatStatus, actorID string, apply func(*entities.ChatSession)) (entities.ChatSession, error) {
	var (
		updated entities.ChatSession
		from    entities.ChatStatus
	)
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		session, err := s.repo.GetChatSession(ctx, sessionID)
		if err != nil {
			return err
		}

		from = session.Status
		if !from.CanTransitionTo(to) {
			return fmt.Errorf("%w: %s -> %s", entities.ErrInvalidTransition, from, to)
		}

		now := time.Now().UTC()
		session.Status = to
		session.UpdatedAt = now
		apply(&session)

		if err := s.repo.UpdateChatSession(ctx, from, session); err != nil {
			return fmt.Errorf("failed to update chat session: %w", err)
		}

		event := newStatusEvent(entities.KindChat, session.ID, actorID, string(from), string(to), session.DealerID, now)
		if err := s.events.SaveStatusEvent(ctx, event); err != nil {
			return fmt.Errorf("failed to save status event: %w", err)
		}

		updated = session
		return nil
	})
	if err != nil {
		return entities.ChatSession{}, err
	}

	statusTransitions.WithLabelValues(entities.KindChat, string(from), string(to)).Inc()
	return updated, nil
}

// PostMessage appends a message from the customer or the assigned dealer.
func (s *chatService) PostMessage(ctx context.Context, sessionID, senderID, body string) (entities.ChatMessage, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return entities.ChatMessage{}, entities.ErrEmptyMessage
	}

	session, err := s.repo.GetChatSession(ctx, sessionID)
	if err != nil {
		return entities.ChatMessage{}, err
	}
	if session.Status.IsTerminal() {
		return entities.ChatMessage{}, entities.ErrChatClosed
	}
	if !session.IsParticipant(senderID) {
		return entities.ChatMessage{}, entities.ErrNotParticipant
	}

	msg := entities.ChatMessage{
		ID:        uuid.NewString(),
		SessionID: session.ID,
		SenderID:  senderID,
		Body:      body,
		SentAt:    time.Now().UTC(),
	}
	if err := s.repo.SaveChatMessage(ctx, msg); err != nil {
		return entities.ChatMessage{}, fmt.Errorf("failed to save chat message: %w", err)
	}
	return msg, nil
}

// ListSessions filters sessions in memory. Counts ignore the status tab and
// the page.
func (s *chatService) ListSessions(ctx context.Context, f entities.ListFilter) (entities.ChatList, error) {
	sessions, err := s.repo.ListChatSessions(ctx, f.From, f.To)
	if err != nil {
		return entities.ChatList{}, err
	}

	matched := listing.Filter(sessions, listing.Query{Search: f.Search, From: f.From, To: f.To}, chatAccessors)
	counts := listing.Count(matched, entities.Strings(entities.ChatStatuses), chatAccessors.Status)

	tab := listing.Filter(matched, listing.Query{Status: f.Status}, chatAccessors)
	limit, offset := f.Page()

	return entities.ChatList{
		Sessions: paginate(tab, limit, offset),
		Total:    len(tab),
		Counts:   counts,
	}, nil
}

func paginate[T any](items []T, limit, offset uint64) []T {
	n := uint64(len(items))
	if offset >= n {
		return []T{}
	}
	end := min(offset+limit, n)
	return items[offset:end]
}
