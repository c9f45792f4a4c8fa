package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SergeyBogomolovv/furniture-resale/internal/entities"

	sq "github.com/Masterminds/squirrel"
)

var returnSearchColumns = []string{"id", "order_id", "customer_id", "description"}

const openReturnConstraint = "return_requests_open_order_key"

func (r *postgresRepo) GetReturnByID(ctx context.Context, returnID string) (entities.ReturnRequest, error) {
	query, args := r.qb.Select(returnColumns...).
		From("return_requests").
		Where(sq.Eq{"id": returnID}).
		MustSql()

	var ret ReturnRequest
	err := r.getContext(ctx, &ret, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.ReturnRequest{}, entities.ErrReturnNotFound
	}
	if err != nil {
		return entities.ReturnRequest{}, fmt.Errorf("failed to get return request: %w", err)
	}

	return ReturnToEntity(ret)
}

func (r *postgresRepo) ListReturns(ctx context.Context, f entities.ListFilter) ([]entities.ReturnRequest, int, error) {
	limit, offset := f.Page()

	countQ := applyListFilter(r.qb.Select("COUNT(*)").From("return_requests"), f, "requested_at", returnSearchColumns...)
	if f.Status != "" {
		countQ = countQ.Where(sq.Eq{"status": f.Status})
	}
	query, args := countQ.MustSql()

	var total int
	if err := r.getContext(ctx, &total, query, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to count return requests: %w", err)
	}

	q := applyListFilter(r.qb.Select(returnColumns...).From("return_requests"), f, "requested_at", returnSearchColumns...)
	if f.Status != "" {
		q = q.Where(sq.Eq{"status": f.Status})
	}
	q = q.OrderBy("requested_at DESC").Limit(limit).Offset(offset)

	returns, err := r.selectReturns(ctx, q)
	if err != nil {
		return nil, 0, err
	}
	return returns, total, nil
}

func (r *postgresRepo) CountReturnsByStatus(ctx context.Context, f entities.ListFilter) (map[string]int, error) {
	q := applyListFilter(r.qb.Select("status", "COUNT(*) AS count").From("return_requests"), f, "requested_at", returnSearchColumns...)
	query, args := q.GroupBy("status").MustSql()

	var rows []statusCount
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to count return requests by status: %w", err)
	}
	return countsToMap(rows), nil
}

func (r *postgresRepo) ListCustomerReturns(ctx context.Context, customerID string) ([]entities.ReturnRequest, error) {
	q := r.qb.Select(returnColumns...).
		From("return_requests").
		Where(sq.Eq{"customer_id": customerID}).
		OrderBy("requested_at DESC")

	return r.selectReturns(ctx, q)
}

// HasOpenReturn reports whether the order has a return that is not yet rejected or refunded.
func (r *postgresRepo) HasOpenReturn(ctx context.Context, orderID string) (bool, error) {
	query, args := r.qb.Select("COUNT(*)").
		From("return_requests").
		Where(sq.Eq{"order_id": orderID}).
		Where(sq.NotEq{"status": []string{string(entities.ReturnRejected), string(entities.ReturnRefunded)}}).
		MustSql()

	var n int
	if err := r.getContext(ctx, &n, query, args...); err != nil {
		return false, fmt.Errorf("failed to check open returns: %w", err)
	}
	return n > 0, nil
}

func (r *postgresRepo) SaveReturn(ctx context.Context, ret entities.ReturnRequest) error {
	items, err := marshalReturnItems(ret.Items)
	if err != nil {
		return fmt.Errorf("failed to encode return items: %w", err)
	}

	query, args := r.qb.Insert("return_requests").
		Columns(returnColumns...).
		Values(
			ret.ID, ret.OrderID, ret.CustomerID, items, string(ret.Reason), nullString(ret.Description),
			string(ret.ReturnMethod), string(ret.Status), ret.RefundAmount, nullString(ret.RejectionReason),
			nullString(ret.Notes), ret.RequestedAt, ret.UpdatedAt,
		).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err, openReturnConstraint) {
			return entities.ErrReturnAlreadyRequested
		}
		return fmt.Errorf("failed to save return request: %w", err)
	}
	return nil
}

// UpdateReturnStatus stores the processing fields of ret, guarded by the
// expected current status.
func (r *postgresRepo) UpdateReturnStatus(ctx context.Context, from entities.ReturnStatus, ret entities.ReturnRequest) error {
	q := r.qb.Update("return_requests").
		Set("status", string(ret.Status)).
		Set("refund_amount", ret.RefundAmount).
		Set("rejection_reason", nullString(ret.RejectionReason)).
		Set("notes", nullString(ret.Notes)).
		Set("updated_at", ret.UpdatedAt).
		Where(sq.Eq{"id": ret.ID, "status": string(from)})

	if err := r.guardedUpdate(ctx, q); err != nil {
		if errors.Is(err, entities.ErrStatusConflict) {
			return err
		}
		return fmt.Errorf("failed to update return status: %w", err)
	}
	return nil
}

func (r *postgresRepo) selectReturns(ctx context.Context, q sq.SelectBuilder) ([]entities.ReturnRequest, error) {
	query, args := q.MustSql()

	var rows []ReturnRequest
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select return requests: %w", err)
	}

	result := make([]entities.ReturnRequest, 0, len(rows))
	for _, row := range rows {
		ret, err := ReturnToEntity(row)
		if err != nil {
			return nil, err
		}
		result = append(result, ret)
	}
	return result, nil
}
