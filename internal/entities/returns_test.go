package entities_test

import (
	"testing"

	"github.com/SergeyBogomolovv/furniture-resale/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckReturnable(t *testing.T) {
	for _, s := range entities.OrderStatuses {
		err := entities.CheckReturnable(entities.Order{Status: s})
		if s == entities.OrderDelivered {
			assert.NoError(t, err, s)
			continue
		}
		assert.ErrorIs(t, err, entities.ErrOrderNotReturnable, s)
	}
}

func TestCheckReturnable_Message(t *testing.T) {
	err := entities.CheckReturnable(entities.Order{Status: entities.OrderPreparing})
	require.Error(t, err)
	assert.Equal(t, "only delivered orders are eligible for return", err.Error())
}

func TestCheckReturnItems(t *testing.T) {
	order := entities.Order{
		Items: []entities.OrderItem{
			{ProductID: "sofa", Name: "Leather sofa", Quantity: 1, Price: 450000},
			{ProductID: "chair", Name: "Oak chair", Quantity: 4, Price: 80000},
		},
	}

	testCases := []struct {
		name    string
		items   []entities.ReturnItem
		want    []entities.ReturnItem
		wantErr error
	}{
		{
			name:  "partial quantity uses order price",
			items: []entities.ReturnItem{{ProductID: "chair", Quantity: 2, Price: 1}},
			want:  []entities.ReturnItem{{ProductID: "chair", Name: "Oak chair", Quantity: 2, Price: 80000}},
		},
		{
			name:    "empty",
			wantErr: entities.ErrInvalidReturnItems,
		},
		{
			name:    "unknown product",
			items:   []entities.ReturnItem{{ProductID: "table", Quantity: 1}},
			wantErr: entities.ErrInvalidReturnItems,
		},
		{
			name:    "more than ordered across lines",
			items:   []entities.ReturnItem{{ProductID: "chair", Quantity: 3}, {ProductID: "chair", Quantity: 2}},
			wantErr: entities.ErrInvalidReturnItems,
		},
		{
			name:    "zero quantity",
			items:   []entities.ReturnItem{{ProductID: "sofa", Quantity: 0}},
			wantErr: entities.ErrInvalidReturnItems,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := entities.CheckReturnItems(order, tc.items)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestOrderMarshal(t *testing.T) {
	order := entities.Order{ID: "123", Status: entities.OrderShipped, Items: []entities.OrderItem{{ProductID: "p", Quantity: 1}}}
	data, err := order.Marshal()
	require.NoError(t, err)

	var got entities.Order
	require.NoError(t, got.Unmarshal(data))
	assert.Equal(t, order, got)

	assert.ErrorIs(t, got.Unmarshal([]byte("broken")), entities.ErrInvalidOrder)
}

func TestPricing_WithDiscount(t *testing.T) {
	assert.Equal(t, 25, entities.Pricing{OriginalPrice: 400000, SalePrice: 300000}.WithDiscount().DiscountRate)
	assert.Equal(t, 0, entities.Pricing{OriginalPrice: 0, SalePrice: 300000}.WithDiscount().DiscountRate)
	assert.Equal(t, 0, entities.Pricing{OriginalPrice: 100, SalePrice: 200, DiscountRate: 40}.WithDiscount().DiscountRate)
}
