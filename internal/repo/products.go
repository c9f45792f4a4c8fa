package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SergeyBogomolovv/furniture-resale/internal/entities"

	sq "github.com/Masterminds/squirrel"
)

func (r *postgresRepo) GetProductByID(ctx context.Context, productID string) (entities.Product, error) {
	query, args := r.qb.Select(productColumns...).
		From("products").
		Where(sq.Eq{"id": productID}).
		MustSql()

	var product Product
	err := r.getContext(ctx, &product, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Product{}, entities.ErrProductNotFound
	}
	if err != nil {
		return entities.Product{}, fmt.Errorf("failed to get product: %w", err)
	}

	return ProductToEntity(product)
}

func (r *postgresRepo) ListProducts(ctx context.Context, f entities.ProductFilter) ([]entities.Product, int, error) {
	limit, offset := entities.ListFilter{Limit: f.Limit, Offset: f.Offset}.Page()

	where := sq.And{}
	if cond := searchCondition(f.Search, "name", "brand"); cond != nil {
		where = append(where, cond)
	}
	if f.Category != "" {
		where = append(where, sq.Eq{"category": f.Category})
	}
	if f.Status != "" {
		where = append(where, sq.Eq{"status": f.Status})
	}
	if f.VisibleOnly {
		where = append(where, sq.NotEq{"status": string(entities.ProductHidden)})
	}

	query, args := r.qb.Select("COUNT(*)").From("products").Where(where).MustSql()

	var total int
	if err := r.getContext(ctx, &total, query, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	query, args = r.qb.Select(productColumns...).
		From("products").
		Where(where).
		OrderBy("updated_at DESC").
		Limit(limit).
		Offset(offset).
		MustSql()

	var rows []Product
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to select products: %w", err)
	}

	products := make([]entities.Product, 0, len(rows))
	for _, row := range rows {
		p, err := ProductToEntity(row)
		if err != nil {
			return nil, 0, err
		}
		products = append(products, p)
	}
	return products, total, nil
}

// SaveProduct inserts the product or overwrites the whole stored document.
func (r *postgresRepo) SaveProduct(ctx context.Context, p entities.Product) error {
	doc, err := marshalProductDocument(p)
	if err != nil {
		return fmt.Errorf("failed to encode product document: %w", err)
	}

	query, args := r.qb.Insert("products").
		Columns(productColumns...).
		Values(
			p.ID, nullString(p.DealerID), p.Name, nullString(p.Brand), p.Category, string(p.Status),
			p.Pricing.SalePrice, p.Stock, doc, p.CreatedAt, p.UpdatedAt,
		).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			dealer_id = EXCLUDED.dealer_id,
			name = EXCLUDED.name,
			brand = EXCLUDED.brand,
			category = EXCLUDED.category,
			status = EXCLUDED.status,
			sale_price = EXCLUDED.sale_price,
			stock = EXCLUDED.stock,
			document = EXCLUDED.document,
			updated_at = EXCLUDED.updated_at`).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save product: %w", err)
	}
	return nil
}

func (r *postgresRepo) DeleteProduct(ctx context.Context, productID string) error {
	query, args := r.qb.Delete("products").Where(sq.Eq{"id": productID}).MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return entities.ErrProductNotFound
	}
	return nil
}
