package repo

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/furniture-resale/internal/entities"
	"github.com/SergeyBogomolovv/furniture-resale/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const uniqueViolation = "23505"

type postgresRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewPostgresRepo(db *sqlx.DB) *postgresRepo {
	return &postgresRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// statusCount is one row of a GROUP BY status query.
type statusCount struct {
	Status string `db:"status"`
	Count  int    `db:"count"`
}

func countsToMap(rows []statusCount) map[string]int {
	out := make(map[string]int, len(rows))
	for _, r := range rows {
		out[r.Status] = r.Count
	}
	return out
}

// searchCondition builds a case-insensitive substring match over columns.
func searchCondition(term string, columns ...string) sq.Sqlizer {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil
	}
	like := "%" + escapeLike(term) + "%"
	or := make(sq.Or, 0, len(columns))
	for _, c := range columns {
		or = append(or, sq.ILike{c: like})
	}
	return or
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

// applyListFilter adds search and date range conditions. The status tab and
// pagination are left to the caller so counts can ignore them.
func applyListFilter(q sq.SelectBuilder, f entities.ListFilter, createdCol string, searchCols ...string) sq.SelectBuilder {
	if cond := searchCondition(f.Search, searchCols...); cond != nil {
		q = q.Where(cond)
	}
	if !f.From.IsZero() {
		q = q.Where(sq.GtOrEq{createdCol: f.From})
	}
	if !f.To.IsZero() {
		q = q.Where(sq.Lt{createdCol: f.To})
	}
	return q
}

// isUniqueViolation reports whether err breaks the named unique constraint.
func isUniqueViolation(err error, constraint string) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation && pqErr.Constraint == constraint
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func nullTime(t time.Time) sql.NullTime {
	if t.IsZero() {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: t, Valid: true}
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func nullTimeToTime(nt sql.NullTime) time.Time {
	if nt.Valid {
		return nt.Time
	}
	return time.Time{}
}

func (r *postgresRepo) execContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.ExecContext(ctx, query, args...)
	}
	return r.db.ExecContext(ctx, query, args...)
}

func (r *postgresRepo) getContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.GetContext(ctx, dest, query, args...)
	}
	return r.db.GetContext(ctx, dest, query, args...)
}

func (r *postgresRepo) selectContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.SelectContext(ctx, dest, query, args...)
	}
	return r.db.SelectContext(ctx, dest, query, args...)
}

// guardedUpdate runs an UPDATE guarded by the expected current status and
// reports entities.ErrStatusConflict when no row matched.
func (r *postgresRepo) guardedUpdate(ctx context.Context, q sq.UpdateBuilder) error {
	query, args := q.MustSql()
	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return entities.ErrStatusConflict
	}
	return nil
}
