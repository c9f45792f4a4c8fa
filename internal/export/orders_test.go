package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/furniture-resale/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriteOrders(t *testing.T) {
	orders := []entities.Order{
		{
			OrderNumber: "ORD-20260301-AAAAAA",
			Status:      entities.OrderShipped,
			CustomerID:  "c-1",
			ShippingAddress: entities.ShippingAddress{
				Recipient: "Kim Minji", Phone: "010-1234-5678", Address1: "Seoul", Address2: "101-1202",
			},
			Items:        []entities.OrderItem{{Name: "Oak table", Quantity: 1}, {Name: "Oak chair", Quantity: 4}},
			TotalAmount:  500000,
			ShippingFee:  30000,
			FinalAmount:  530000,
			ShippingInfo: entities.ShippingInfo{Carrier: "CJ", TrackingNumber: "6543"},
			CreatedAt:    time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC),
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteOrders(&buf, orders))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(ordersSheet)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "Order number", rows[0][0])
	assert.Equal(t, "ORD-20260301-AAAAAA", rows[1][0])
	assert.Equal(t, "Shipped", rows[1][1])
	assert.Equal(t, "Seoul 101-1202", rows[1][5])
	assert.Equal(t, "Oak table x1 and 1 more", rows[1][6])
	assert.Equal(t, "530000", rows[1][9])
	assert.Equal(t, "2026-03-01 09:30", rows[1][12])
}

func TestWriteOrders_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteOrders(&buf, nil))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(ordersSheet)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
