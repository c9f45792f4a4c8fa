package repo

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/furniture-resale/internal/entities"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEscapeLike(t *testing.T) {
	testCases := []struct {
		in   string
		want string
	}{
		{in: "kim", want: "kim"},
		{in: "100%", want: `100\%`},
		{in: "oak_table", want: `oak\_table`},
		{in: `a\b`, want: `a\\b`},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, escapeLike(tc.in))
		})
	}
}

func TestApplyListFilter(t *testing.T) {
	qb := NewPostgresRepo(nil).qb
	from := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 5, 8, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		name     string
		filter   entities.ListFilter
		wantSQL  string
		wantArgs []any
	}{
		{
			name:    "no filter",
			filter:  entities.ListFilter{},
			wantSQL: "SELECT id FROM orders",
		},
		{
			name:     "search is trimmed and escaped",
			filter:   entities.ListFilter{Search: "  50%  "},
			wantSQL:  "SELECT id FROM orders WHERE (order_number ILIKE $1 OR phone ILIKE $2)",
			wantArgs: []any{`%50\%%`, `%50\%%`},
		},
		{
			name:     "date range is half open",
			filter:   entities.ListFilter{From: from, To: to},
			wantSQL:  "SELECT id FROM orders WHERE created_at >= $1 AND created_at < $2",
			wantArgs: []any{from, to},
		},
		{
			name:    "status and page are left to the caller",
			filter:  entities.ListFilter{Status: "shipped", Limit: 10, Offset: 20},
			wantSQL: "SELECT id FROM orders",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			q := applyListFilter(qb.Select("id").From("orders"), tc.filter, "created_at", "order_number", "phone")

			query, args, err := q.ToSql()
			require.NoError(t, err)
			assert.Equal(t, tc.wantSQL, query)
			if tc.wantArgs == nil {
				assert.Empty(t, args)
				return
			}
			assert.Equal(t, tc.wantArgs, args)
		})
	}
}

func TestOrderCountsQuery_IgnoresStatusTab(t *testing.T) {
	r := NewPostgresRepo(nil)

	query, args, err := r.orderCountsQuery(entities.ListFilter{
		Search: "010-1234",
		Status: "shipped",
		Limit:  10,
		Offset: 20,
	}).ToSql()
	require.NoError(t, err)

	assert.Equal(t,
		"SELECT status, COUNT(*) AS count FROM orders "+
			"WHERE (order_number ILIKE $1 OR customer_id ILIKE $2 OR recipient ILIKE $3 OR phone ILIKE $4) "+
			"GROUP BY status",
		query)
	assert.Len(t, args, 4)
	assert.NotContains(t, args, "shipped")
}

func TestIsUniqueViolation(t *testing.T) {
	violation := &pq.Error{Code: "23505", Constraint: openReturnConstraint}

	testCases := []struct {
		name string
		err  error
		want bool
	}{
		{name: "open return index", err: violation, want: true},
		{name: "wrapped", err: fmt.Errorf("exec: %w", violation), want: true},
		{name: "other constraint", err: &pq.Error{Code: "23505", Constraint: "orders_order_number_key"}},
		{name: "other code", err: &pq.Error{Code: "23503", Constraint: openReturnConstraint}},
		{name: "not a pq error", err: errors.New("connection reset")},
		{name: "nil", err: nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, isUniqueViolation(tc.err, openReturnConstraint))
		})
	}
}
