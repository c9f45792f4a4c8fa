package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/furniture-resale/internal/entities"

	sq "github.com/Masterminds/squirrel"
)

func (r *postgresRepo) CreateChatSession(ctx context.Context, s entities.ChatSession) error {
	query, args := r.qb.Insert("chat_sessions").
		Columns(chatColumns...).
		Values(s.ID, s.CustomerID, nullString(s.DealerID), nullString(s.ProductID), string(s.Status),
			s.CreatedAt, s.UpdatedAt, nullTime(s.ClosedAt)).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to create chat session: %w", err)
	}
	return nil
}

// GetChatSession returns the session with its messages in send order.
func (r *postgresRepo) GetChatSession(ctx context.Context, sessionID string) (entities.ChatSession, error) {
	query, args := r.qb.Select(chatColumns...).
		From("chat_sessions").
		Where(sq.Eq{"id": sessionID}).
		MustSql()

	var session ChatSession
	err := r.getContext(ctx, &session, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.ChatSession{}, entities.ErrChatNotFound
	}
	if err != nil {
		return entities.ChatSession{}, fmt.Errorf("failed to get chat session: %w", err)
	}

	query, args = r.qb.Select("id", "session_id", "sender_id", "body", "sent_at").
		From("chat_messages").
		Where(sq.Eq{"session_id": sessionID}).
		OrderBy("sent_at").
		MustSql()

	var messages []ChatMessage
	if err := r.selectContext(ctx, &messages, query, args...); err != nil {
		return entities.ChatSession{}, fmt.Errorf("failed to select chat messages: %w", err)
	}

	return ChatToEntity(session, messages), nil
}

// ListChatSessions returns sessions created in [from, to) without messages.
func (r *postgresRepo) ListChatSessions(ctx context.Context, from, to time.Time) ([]entities.ChatSession, error) {
	q := applyListFilter(r.qb.Select(chatColumns...).From("chat_sessions"),
		entities.ListFilter{From: from, To: to}, "created_at")
	query, args := q.OrderBy("updated_at DESC").MustSql()

	var rows []ChatSession
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select chat sessions: %w", err)
	}

	sessions := make([]entities.ChatSession, 0, len(rows))
	for _, row := range rows {
		sessions = append(sessions, ChatToEntity(row, nil))
	}
	return sessions, nil
}

// UpdateChatSession stores dealer, status and close time, guarded by the
// expected current status.
func (r *postgresRepo) UpdateChatSession(ctx context.Context, from entities.ChatStatus, s entities.ChatSession) error {
	q := r.qb.Update("chat_sessions").
		Set("dealer_id", nullString(s.DealerID)).
		Set("status", string(s.Status)).
		Set("updated_at", s.UpdatedAt).
		Set("closed_at", nullTime(s.ClosedAt)).
		Where(sq.Eq{"id": s.ID, "status": string(from)})

	if err := r.guardedUpdate(ctx, q); err != nil {
		if errors.Is(err, entities.ErrStatusConflict) {
			return err
		}
		return fmt.Errorf("failed to update chat session: %w", err)
	}
	return nil
}

func (r *postgresRepo) SaveChatMessage(ctx context.Context, m entities.ChatMessage) error {
	query, args := r.qb.Insert("chat_messages").
		Columns("id", "session_id", "sender_id", "body", "sent_at").
		Values(m.ID, m.SessionID, m.SenderID, m.Body, m.SentAt).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save chat message: %w", err)
	}

	query, args = r.qb.Update("chat_sessions").
		Set("updated_at", m.SentAt).
		Where(sq.Eq{"id": m.SessionID}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to touch chat session: %w", err)
	}
	return nil
}
