package repo

import (
	"context"
	"fmt"

	"github.com/SergeyBogomolovv/furniture-resale/internal/entities"

	sq "github.com/Masterminds/squirrel"
)

func (r *postgresRepo) SaveStatusEvent(ctx context.Context, e entities.StatusEvent) error {
	query, args := r.qb.Insert("status_events").
		Columns("id", "entity_type", "entity_id", "actor_id", "from_status", "to_status", "note", "created_at").
		Values(e.ID, e.EntityType, e.EntityID, nullString(e.ActorID), e.FromStatus, e.ToStatus, nullString(e.Note), e.CreatedAt).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save status event: %w", err)
	}
	return nil
}

func (r *postgresRepo) ListStatusEvents(ctx context.Context, entityType, entityID string) ([]entities.StatusEvent, error) {
	query, args := r.qb.Select("id", "entity_type", "entity_id", "actor_id", "from_status", "to_status", "note", "created_at").
		From("status_events").
		Where(sq.Eq{"entity_type": entityType, "entity_id": entityID}).
		OrderBy("created_at").
		MustSql()

	var rows []StatusEvent
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select status events: %w", err)
	}

	events := make([]entities.StatusEvent, 0, len(rows))
	for _, row := range rows {
		events = append(events, StatusEventToEntity(row))
	}
	return events, nil
}
