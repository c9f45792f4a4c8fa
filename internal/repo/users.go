package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SergeyBogomolovv/furniture-resale/internal/entities"

	sq "github.com/Masterminds/squirrel"
)

func (r *postgresRepo) GetUserByID(ctx context.Context, userID string) (entities.User, error) {
	return r.getUser(ctx, sq.Eq{"id": userID})
}

func (r *postgresRepo) GetUserByEmail(ctx context.Context, email string) (entities.User, error) {
	return r.getUser(ctx, sq.Expr("lower(email) = lower(?)", email))
}

func (r *postgresRepo) getUser(ctx context.Context, where sq.Sqlizer) (entities.User, error) {
	query, args := r.qb.Select(userColumns...).From("users").Where(where).MustSql()

	var user User
	err := r.getContext(ctx, &user, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.User{}, entities.ErrUserNotFound
	}
	if err != nil {
		return entities.User{}, fmt.Errorf("failed to get user: %w", err)
	}
	return UserToEntity(user), nil
}

func (r *postgresRepo) ListUsers(ctx context.Context, f entities.UserFilter) ([]entities.User, int, error) {
	limit, offset := entities.ListFilter{Limit: f.Limit, Offset: f.Offset}.Page()

	where := sq.And{}
	if cond := searchCondition(f.Search, "email", "name", "phone"); cond != nil {
		where = append(where, cond)
	}
	if f.Role != "" {
		where = append(where, sq.Eq{"role": f.Role})
	}

	query, args := r.qb.Select("COUNT(*)").From("users").Where(where).MustSql()

	var total int
	if err := r.getContext(ctx, &total, query, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}

	query, args = r.qb.Select(userColumns...).
		From("users").
		Where(where).
		OrderBy("created_at DESC").
		Limit(limit).
		Offset(offset).
		MustSql()

	var rows []User
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to select users: %w", err)
	}

	users := make([]entities.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, UserToEntity(row))
	}
	return users, total, nil
}

func (r *postgresRepo) UpdateUserRole(ctx context.Context, userID string, role entities.UserRole) error {
	query, args := r.qb.Update("users").
		Set("role", string(role)).
		Where(sq.Eq{"id": userID}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update user role: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return entities.ErrUserNotFound
	}
	return nil
}
