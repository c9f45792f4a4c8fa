package notify

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/SergeyBogomolovv/furniture-resale/internal/entities"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingWriter struct {
	messages []kafka.Message
	err      error
}

func (w *recordingWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *recordingWriter) Close() error { return nil }

func decode(t *testing.T, m kafka.Message) Message {
	t.Helper()
	var msg Message
	require.NoError(t, json.Unmarshal(m.Value, &msg))
	return msg
}

func TestKafkaNotifier(t *testing.T) {
	w := &recordingWriter{}
	n := &kafkaNotifier{writer: w}
	ctx := context.Background()

	require.NoError(t, n.OrderShipped(ctx, entities.Order{
		ID:           "o-1",
		OrderNumber:  "ORD-20260501-ABCDEF",
		CustomerID:   "cust-1",
		ShippingInfo: entities.ShippingInfo{Carrier: "CJ", TrackingNumber: "123"},
	}))
	require.NoError(t, n.ReturnUpdated(ctx, entities.ReturnRequest{
		ID:              "r-1",
		CustomerID:      "cust-1",
		Status:          entities.ReturnRejected,
		RejectionReason: "used beyond grade",
	}))
	require.NoError(t, n.ReturnUpdated(ctx, entities.ReturnRequest{
		ID:           "r-2",
		CustomerID:   "cust-2",
		Status:       entities.ReturnRefunded,
		RefundAmount: 120000,
	}))
	require.NoError(t, n.ChatAssigned(ctx, entities.ChatSession{ID: "s-1", CustomerID: "cust-3", DealerID: "dealer-1"}))

	require.Len(t, w.messages, 4)

	shipped := decode(t, w.messages[0])
	assert.Equal(t, EventOrderShipped, shipped.Type)
	assert.Equal(t, "cust-1", string(w.messages[0].Key))
	assert.Equal(t, "123", shipped.Data["tracking_number"])
	assert.False(t, shipped.CreatedAt.IsZero())

	rejected := decode(t, w.messages[1])
	assert.Equal(t, "used beyond grade", rejected.Data["rejection_reason"])
	assert.NotContains(t, rejected.Data, "refund_amount")

	refunded := decode(t, w.messages[2])
	assert.Equal(t, "120000", refunded.Data["refund_amount"])

	assigned := decode(t, w.messages[3])
	assert.Equal(t, EventChatAssigned, assigned.Type)
	assert.Equal(t, "dealer-1", assigned.Data["dealer_id"])
}

func TestKafkaNotifier_WriteError(t *testing.T) {
	n := &kafkaNotifier{writer: &recordingWriter{err: errors.New("broker down")}}

	err := n.ChatAssigned(context.Background(), entities.ChatSession{ID: "s-1"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to publish chat.assigned")
}
