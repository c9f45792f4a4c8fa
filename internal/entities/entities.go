package entities

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"time"
)

type OrderItem struct {
	ProductID string
	Name      string
	Quantity  int
	Price     int64
}

type ShippingAddress struct {
	Recipient  string
	Phone      string
	PostalCode string
	Address1   string
	Address2   string
	Memo       string
}

type ShippingInfo struct {
	Carrier        string
	TrackingNumber string
	Notes          string
	ShippedAt      time.Time
	DeliveredAt    time.Time
}

type Order struct {
	ID          string
	OrderNumber string
	CustomerID  string

	Items           []OrderItem
	ShippingAddress ShippingAddress

	// amounts are in KRW
	TotalAmount int64
	ShippingFee int64
	FinalAmount int64

	Status       OrderStatus
	ShippingInfo ShippingInfo
	Notes        string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ItemsTotal sums price*quantity over the order items.
func (o Order) ItemsTotal() int64 {
	var total int64
	for _, it := range o.Items {
		total += it.Price * int64(it.Quantity)
	}
	return total
}

// OrderStatusUpdate is an admin request to move an order to another status.
type OrderStatusUpdate struct {
	OrderID  string
	ActorID  string
	Status   OrderStatus
	Shipping *ShippingInfo
	Note     string
}

// StatusEvent is an audit record of a single status transition.
type StatusEvent struct {
	ID         string
	EntityType string
	EntityID   string
	ActorID    string
	FromStatus string
	ToStatus   string
	Note       string
	CreatedAt  time.Time
}

func (o *Order) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	if err := enc.Encode(o); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (o *Order) Unmarshal(data []byte) error {
	buf := bytes.NewBuffer(data)
	dec := gob.NewDecoder(buf)
	if err := dec.Decode(o); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidOrder, err)
	}
	return nil
}

func init() {
	gob.Register(Order{})
	gob.Register(OrderItem{})
	gob.Register(Product{})
}
