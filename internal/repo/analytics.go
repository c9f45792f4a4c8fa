package repo

import (
	"context"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/furniture-resale/internal/entities"

	sq "github.com/Masterminds/squirrel"
)

func dateRange(createdCol string, from, to time.Time) sq.And {
	where := sq.And{}
	if !from.IsZero() {
		where = append(where, sq.GtOrEq{createdCol: from})
	}
	if !to.IsZero() {
		where = append(where, sq.Lt{createdCol: to})
	}
	return where
}

func (r *postgresRepo) SalesSummary(ctx context.Context, from, to time.Time) (entities.SalesSummary, error) {
	query, args := r.qb.Select(
		"COUNT(*) FILTER (WHERE status <> 'cancelled') AS orders",
		"COALESCE(SUM(final_amount) FILTER (WHERE status NOT IN ('cancelled', 'returned')), 0) AS revenue",
		"COUNT(*) FILTER (WHERE status = 'cancelled') AS cancelled",
	).
		From("orders").
		Where(dateRange("created_at", from, to)).
		MustSql()

	var row struct {
		Orders    int   `db:"orders"`
		Revenue   int64 `db:"revenue"`
		Cancelled int   `db:"cancelled"`
	}
	if err := r.getContext(ctx, &row, query, args...); err != nil {
		return entities.SalesSummary{}, fmt.Errorf("failed to get sales summary: %w", err)
	}

	query, args = r.qb.Select("COALESCE(SUM(refund_amount), 0)").
		From("return_requests").
		Where(sq.Eq{"status": string(entities.ReturnRefunded)}).
		Where(dateRange("updated_at", from, to)).
		MustSql()

	var refunded int64
	if err := r.getContext(ctx, &refunded, query, args...); err != nil {
		return entities.SalesSummary{}, fmt.Errorf("failed to get refunded amount: %w", err)
	}

	summary := entities.SalesSummary{
		Orders:         row.Orders,
		Revenue:        row.Revenue,
		CancelledCount: row.Cancelled,
		RefundedAmount: refunded,
	}
	if row.Orders > 0 {
		summary.AverageOrder = row.Revenue / int64(row.Orders)
	}
	return summary, nil
}

func (r *postgresRepo) TopProducts(ctx context.Context, from, to time.Time, limit int) ([]entities.ProductSales, error) {
	query, args := r.qb.Select(
		"i.product_id AS product_id",
		"MAX(i.name) AS name",
		"SUM(i.quantity) AS quantity",
		"SUM(i.quantity * i.price) AS revenue",
	).
		From("order_items i").
		Join("orders o ON o.id = i.order_id").
		Where(sq.NotEq{"o.status": []string{string(entities.OrderCancelled), string(entities.OrderReturned)}}).
		Where(dateRange("o.created_at", from, to)).
		GroupBy("i.product_id").
		OrderBy("quantity DESC", "revenue DESC").
		Limit(uint64(limit)).
		MustSql()

	var rows []struct {
		ProductID string `db:"product_id"`
		Name      string `db:"name"`
		Quantity  int    `db:"quantity"`
		Revenue   int64  `db:"revenue"`
	}
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select top products: %w", err)
	}

	out := make([]entities.ProductSales, 0, len(rows))
	for _, row := range rows {
		out = append(out, entities.ProductSales(row))
	}
	return out, nil
}

func (r *postgresRepo) DailySales(ctx context.Context, from, to time.Time) ([]entities.DailySales, error) {
	query, args := r.qb.Select(
		"date_trunc('day', created_at) AS day",
		"COUNT(*) AS orders",
		"COALESCE(SUM(final_amount), 0) AS revenue",
	).
		From("orders").
		Where(sq.NotEq{"status": string(entities.OrderCancelled)}).
		Where(dateRange("created_at", from, to)).
		GroupBy("day").
		OrderBy("day").
		MustSql()

	var rows []struct {
		Day     time.Time `db:"day"`
		Orders  int       `db:"orders"`
		Revenue int64     `db:"revenue"`
	}
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select daily sales: %w", err)
	}

	out := make([]entities.DailySales, 0, len(rows))
	for _, row := range rows {
		out = append(out, entities.DailySales(row))
	}
	return out, nil
}
