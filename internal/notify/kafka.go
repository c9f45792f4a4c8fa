// Package notify publishes customer notifications (shipment, return and chat
// updates) for the mailer service to deliver.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/furniture-resale/internal/config"
	"github.com/SergeyBogomolovv/furniture-resale/internal/entities"

	"github.com/segmentio/kafka-go"
)

const (
	EventOrderShipped  = "order.shipped"
	EventReturnUpdated = "return.updated"
	EventChatAssigned  = "chat.assigned"
)

// Message is the JSON payload written to the notification topic.
type Message struct {
	Type       string            `json:"type"`
	CustomerID string            `json:"customer_id"`
	EntityID   string            `json:"entity_id"`
	Data       map[string]string `json:"data,omitempty"`
	CreatedAt  time.Time         `json:"created_at"`
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type kafkaNotifier struct {
	writer messageWriter
}

func NewKafkaNotifier(cfg config.Kafka) *kafkaNotifier {
	return &kafkaNotifier{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(cfg.Brokers...),
			Topic:                  cfg.NotificationTopic,
			Balancer:               &kafka.Hash{},
			BatchTimeout:           cfg.BatchTimeout,
			AllowAutoTopicCreation: true,
		},
	}
}

func (n *kafkaNotifier) OrderShipped(ctx context.Context, o entities.Order) error {
	return n.publish(ctx, Message{
		Type:       EventOrderShipped,
		CustomerID: o.CustomerID,
		EntityID:   o.ID,
		Data: map[string]string{
			"order_number":    o.OrderNumber,
			"carrier":         o.ShippingInfo.Carrier,
			"tracking_number": o.ShippingInfo.TrackingNumber,
		},
	})
}

func (n *kafkaNotifier) ReturnUpdated(ctx context.Context, r entities.ReturnRequest) error {
	data := map[string]string{
		"order_id": r.OrderID,
		"status":   string(r.Status),
	}
	if r.Status == entities.ReturnRejected {
		data["rejection_reason"] = r.RejectionReason
	}
	if r.Status == entities.ReturnRefunded {
		data["refund_amount"] = fmt.Sprint(r.RefundAmount)
	}

	return n.publish(ctx, Message{
		Type:       EventReturnUpdated,
		CustomerID: r.CustomerID,
		EntityID:   r.ID,
		Data:       data,
	})
}

func (n *kafkaNotifier) ChatAssigned(ctx context.Context, s entities.ChatSession) error {
	return n.publish(ctx, Message{
		Type:       EventChatAssigned,
		CustomerID: s.CustomerID,
		EntityID:   s.ID,
		Data:       map[string]string{"dealer_id": s.DealerID, "product_id": s.ProductID},
	})
}

func (n *kafkaNotifier) publish(ctx context.Context, m Message) error {
	m.CreatedAt = time.Now().UTC()

	value, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	// keyed by customer so one customer's notifications stay ordered
	err = n.writer.WriteMessages(ctx, kafka.Message{Key: []byte(m.CustomerID), Value: value})
	if err != nil {
		return fmt.Errorf("failed to publish %s: %w", m.Type, err)
	}
	return nil
}

func (n *kafkaNotifier) Close() error {
	return n.writer.Close()
}
