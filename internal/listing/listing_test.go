package listing_test

import (
	"testing"
	"time"

	"github.com/SergeyBogomolovv/furniture-resale/internal/entities"
	"github.com/SergeyBogomolovv/furniture-resale/internal/listing"
	"github.com/stretchr/testify/assert"
)

var orderStatuses = entities.Strings(entities.OrderStatuses)

func orderAccessors() listing.Accessors[entities.Order] {
	return listing.Accessors[entities.Order]{
		SearchFields: func(o entities.Order) []string {
			return []string{o.OrderNumber, o.CustomerID, o.ShippingAddress.Recipient}
		},
		CreatedAt: func(o entities.Order) time.Time { return o.CreatedAt },
		Status:    func(o entities.Order) string { return string(o.Status) },
	}
}

func statusOf(o entities.Order) string { return string(o.Status) }

func TestCount(t *testing.T) {
	orders := []entities.Order{
		{Status: entities.OrderPending},
		{Status: entities.OrderShipped},
		{Status: entities.OrderShipped},
	}

	got := listing.Count(orders, orderStatuses, statusOf)

	want := entities.StatusCounts{
		"all":       3,
		"pending":   1,
		"preparing": 0,
		"shipped":   2,
		"delivered": 0,
		"cancelled": 0,
		"returned":  0,
	}
	assert.Equal(t, want, got)
}

func TestCount_AllEqualsSum(t *testing.T) {
	testCases := []struct {
		name    string
		orders  []entities.Order
		wantAll int
	}{
		{name: "empty"},
		{name: "known", orders: []entities.Order{{Status: entities.OrderDelivered}, {Status: entities.OrderCancelled}}, wantAll: 2},
		{name: "unknown status kept under raw key", orders: []entities.Order{{Status: "on_hold"}, {Status: entities.OrderPending}}, wantAll: 2},
		{name: "status named all is skipped", orders: []entities.Order{{Status: "all"}, {Status: "all"}, {Status: entities.OrderPending}}, wantAll: 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			counts := listing.Count(tc.orders, orderStatuses, statusOf)

			sum := 0
			for k, v := range counts {
				if k != entities.CountAll {
					sum += v
				}
			}
			assert.Equal(t, counts[entities.CountAll], sum)
			assert.Equal(t, tc.wantAll, counts[entities.CountAll])
		})
	}
}

func TestNormalize(t *testing.T) {
	got := listing.Normalize(map[string]int{"pending": 4, "weird": 1, "all": 100}, orderStatuses)

	assert.Equal(t, 5, got["all"])
	assert.Equal(t, 4, got["pending"])
	assert.Equal(t, 1, got["weird"])
	assert.Equal(t, 0, got["returned"])
}

func TestFilter(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2026, 3, d, 12, 0, 0, 0, time.UTC) }

	orders := []entities.Order{
		{OrderNumber: "ORD-1", CustomerID: "c-kim", Status: entities.OrderPending, CreatedAt: day(1),
			ShippingAddress: entities.ShippingAddress{Recipient: "Kim Minji"}},
		{OrderNumber: "ORD-2", CustomerID: "c-lee", Status: entities.OrderShipped, CreatedAt: day(5),
			ShippingAddress: entities.ShippingAddress{Recipient: "Lee Jun"}},
		{OrderNumber: "ORD-3", CustomerID: "c-park", Status: entities.OrderShipped, CreatedAt: day(10),
			ShippingAddress: entities.ShippingAddress{Recipient: "Park Seo"}},
	}

	testCases := []struct {
		name string
		q    listing.Query
		want []string
	}{
		{name: "empty query returns everything", q: listing.Query{}, want: []string{"ORD-1", "ORD-2", "ORD-3"}},
		{name: "blank search returns everything", q: listing.Query{Search: "   "}, want: []string{"ORD-1", "ORD-2", "ORD-3"}},
		{name: "case insensitive", q: listing.Query{Search: "kIM"}, want: []string{"ORD-1"}},
		{name: "substring of order number", q: listing.Query{Search: "ord-"}, want: []string{"ORD-1", "ORD-2", "ORD-3"}},
		{name: "no match", q: listing.Query{Search: "choi"}, want: []string{}},
		{name: "date range is half open", q: listing.Query{From: day(5), To: day(10)}, want: []string{"ORD-2"}},
		{name: "status tab", q: listing.Query{Status: "shipped"}, want: []string{"ORD-2", "ORD-3"}},
		{name: "combined", q: listing.Query{Search: "park", Status: "shipped", From: day(2)}, want: []string{"ORD-3"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := listing.Filter(orders, tc.q, orderAccessors())

			numbers := make([]string, 0, len(got))
			for _, o := range got {
				numbers = append(numbers, o.OrderNumber)
			}
			assert.Equal(t, tc.want, numbers)
		})
	}
}

func TestMatchesSearch(t *testing.T) {
	assert.True(t, listing.MatchesSearch("", "anything"))
	assert.True(t, listing.MatchesSearch("SOFA", "Leather sofa"))
	assert.False(t, listing.MatchesSearch("sofa"))
}
