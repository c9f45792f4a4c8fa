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

var orderSearchColumns = []string{"order_number", "customer_id", "recipient", "phone"}

func (r *postgresRepo) GetOrderByID(ctx context.Context, orderID string) (entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"id": orderID}).
		MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	items, err := r.orderItems(ctx, []string{orderID})
	if err != nil {
		return entities.Order{}, err
	}

	return OrderToEntity(order, items[orderID]), nil
}

func (r *postgresRepo) LatestOrders(ctx context.Context, count int) ([]entities.Order, error) {
	q := r.qb.Select(orderColumns...).
		From("orders").
		OrderBy("created_at DESC").
		Limit(uint64(count))

	return r.selectOrders(ctx, q)
}

func (r *postgresRepo) ListCustomerOrders(ctx context.Context, customerID string) ([]entities.Order, error) {
	q := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"customer_id": customerID}).
		OrderBy("created_at DESC")

	return r.selectOrders(ctx, q)
}

// ListOrders returns one page of orders and the number of orders matching the filter.
func (r *postgresRepo) ListOrders(ctx context.Context, f entities.ListFilter) ([]entities.Order, int, error) {
	limit, offset := f.Page()

	countQ := applyListFilter(r.qb.Select("COUNT(*)").From("orders"), f, "created_at", orderSearchColumns...)
	if f.Status != "" {
		countQ = countQ.Where(sq.Eq{"status": f.Status})
	}
	query, args := countQ.MustSql()

	var total int
	if err := r.getContext(ctx, &total, query, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	q := applyListFilter(r.qb.Select(orderColumns...).From("orders"), f, "created_at", orderSearchColumns...)
	if f.Status != "" {
		q = q.Where(sq.Eq{"status": f.Status})
	}
	q = q.OrderBy("created_at DESC").Limit(limit).Offset(offset)

	orders, err := r.selectOrders(ctx, q)
	if err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

// CountOrdersByStatus groups every order matching the search and date range
// by status. The status tab and pagination of f are ignored.
func (r *postgresRepo) CountOrdersByStatus(ctx context.Context, f entities.ListFilter) (map[string]int, error) {
	query, args := r.orderCountsQuery(f).MustSql()

	var rows []statusCount
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to count orders by status: %w", err)
	}
	return countsToMap(rows), nil
}

func (r *postgresRepo) orderCountsQuery(f entities.ListFilter) sq.SelectBuilder {
	q := applyListFilter(r.qb.Select("status", "COUNT(*) AS count").From("orders"), f, "created_at", orderSearchColumns...)
	return q.GroupBy("status")
}

func (r *postgresRepo) SaveOrder(ctx context.Context, o entities.Order) error {
	query, args := r.qb.Insert("orders").
		Columns(orderColumns...).
		Values(
			o.ID, o.OrderNumber, o.CustomerID,
			o.ShippingAddress.Recipient, o.ShippingAddress.Phone, nullString(o.ShippingAddress.PostalCode),
			o.ShippingAddress.Address1, nullString(o.ShippingAddress.Address2), nullString(o.ShippingAddress.Memo),
			o.TotalAmount, o.ShippingFee, o.FinalAmount, string(o.Status),
			nullString(o.ShippingInfo.Carrier), nullString(o.ShippingInfo.TrackingNumber), nullString(o.ShippingInfo.Notes),
			nullTime(o.ShippingInfo.ShippedAt), nullTime(o.ShippingInfo.DeliveredAt),
			nullString(o.Notes), o.CreatedAt, o.UpdatedAt,
		).
		Suffix("ON CONFLICT (id) DO NOTHING").
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save order: %w", err)
	}
	return nil
}

func (r *postgresRepo) SaveOrderItems(ctx context.Context, orderID string, items []entities.OrderItem) error {
	if len(items) == 0 {
		return nil
	}

	q := r.qb.Insert("order_items").
		Columns("order_id", "line", "product_id", "name", "quantity", "price").
		Suffix("ON CONFLICT (order_id, line) DO NOTHING")

	for i, it := range items {
		q = q.Values(orderID, i+1, it.ProductID, it.Name, it.Quantity, it.Price)
	}

	query, args := q.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save order items: %w", err)
	}
	return nil
}

// UpdateOrderStatus moves the order from one status to another and stores the
// shipping info. It fails with entities.ErrStatusConflict if the order is no
// longer in status from.
func (r *postgresRepo) UpdateOrderStatus(ctx context.Context, orderID string, from, to entities.OrderStatus, shipping entities.ShippingInfo, updatedAt time.Time) error {
	q := r.qb.Update("orders").
		Set("status", string(to)).
		Set("carrier", nullString(shipping.Carrier)).
		Set("tracking_number", nullString(shipping.TrackingNumber)).
		Set("shipping_notes", nullString(shipping.Notes)).
		Set("shipped_at", nullTime(shipping.ShippedAt)).
		Set("delivered_at", nullTime(shipping.DeliveredAt)).
		Set("updated_at", updatedAt).
		Where(sq.Eq{"id": orderID, "status": string(from)})

	if err := r.guardedUpdate(ctx, q); err != nil {
		if errors.Is(err, entities.ErrStatusConflict) {
			return err
		}
		return fmt.Errorf("failed to update order status: %w", err)
	}
	return nil
}

func (r *postgresRepo) selectOrders(ctx context.Context, q sq.SelectBuilder) ([]entities.Order, error) {
	query, args := q.MustSql()

	var orders []Order
	if err := r.selectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select orders: %w", err)
	}

	if len(orders) == 0 {
		return []entities.Order{}, nil
	}

	ids := make([]string, len(orders))
	for i, o := range orders {
		ids[i] = o.ID
	}

	items, err := r.orderItems(ctx, ids)
	if err != nil {
		return nil, err
	}

	result := make([]entities.Order, 0, len(orders))
	for _, o := range orders {
		result = append(result, OrderToEntity(o, items[o.ID]))
	}
	return result, nil
}

func (r *postgresRepo) orderItems(ctx context.Context, orderIDs []string) (map[string][]OrderItem, error) {
	query, args := r.qb.Select("order_id", "line", "product_id", "name", "quantity", "price").
		From("order_items").
		Where(sq.Eq{"order_id": orderIDs}).
		OrderBy("order_id", "line").
		MustSql()

	var items []OrderItem
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select order items: %w", err)
	}

	out := make(map[string][]OrderItem, len(orderIDs))
	for _, it := range items {
		out[it.OrderID] = append(out[it.OrderID], it)
	}
	return out, nil
}
