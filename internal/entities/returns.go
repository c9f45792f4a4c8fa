package entities

import (
	"slices"
	"time"
)

type ReturnReason string

const (
	ReasonDefective      ReturnReason = "defective"
	ReasonDamaged        ReturnReason = "damaged"
	ReasonNotAsDescribed ReturnReason = "not_as_described"
	ReasonWrongItem      ReturnReason = "wrong_item"
	ReasonChangedMind    ReturnReason = "changed_mind"
	ReasonOther          ReturnReason = "other"
)

var ReturnReasons = []ReturnReason{
	ReasonDefective, ReasonDamaged, ReasonNotAsDescribed, ReasonWrongItem, ReasonChangedMind, ReasonOther,
}

func (r ReturnReason) Valid() bool { return slices.Contains(ReturnReasons, r) }

type ReturnMethod string

const (
	MethodPickup  ReturnMethod = "pickup"
	MethodCourier ReturnMethod = "courier"
	MethodDropOff ReturnMethod = "drop_off"
)

var ReturnMethods = []ReturnMethod{MethodPickup, MethodCourier, MethodDropOff}

func (m ReturnMethod) Valid() bool { return slices.Contains(ReturnMethods, m) }

type ReturnItem struct {
	ProductID string
	Name      string
	Quantity  int
	Price     int64
}

type ReturnRequest struct {
	ID         string
	OrderID    string
	CustomerID string

	Items        []ReturnItem
	Reason       ReturnReason
	Description  string
	ReturnMethod ReturnMethod

	Status          ReturnStatus
	RefundAmount    int64
	RejectionReason string
	Notes           string

	RequestedAt time.Time
	UpdatedAt   time.Time
}

// ItemsTotal is the refund proposed for the returned items.
func (r ReturnRequest) ItemsTotal() int64 {
	var total int64
	for _, it := range r.Items {
		total += it.Price * int64(it.Quantity)
	}
	return total
}

type ReturnStatusUpdate struct {
	ReturnID        string
	ActorID         string
	Status          ReturnStatus
	RejectionReason string
	// nil keeps the amount proposed at request time
	RefundAmount *int64
	Notes        string
}

// CheckReturnable reports whether a return may be opened for the order.
func CheckReturnable(o Order) error {
	if o.Status != OrderDelivered {
		return ErrOrderNotReturnable
	}
	return nil
}

// CheckReturnItems verifies that every returned item is part of the order and
// does not exceed the ordered quantity. Prices are taken from the order.
func CheckReturnItems(o Order, items []ReturnItem) ([]ReturnItem, error) {
	if len(items) == 0 {
		return nil, ErrInvalidReturnItems
	}

	ordered := make(map[string]OrderItem, len(o.Items))
	for _, it := range o.Items {
		ordered[it.ProductID] = it
	}

	requested := make(map[string]int, len(items))
	out := make([]ReturnItem, 0, len(items))
	for _, it := range items {
		src, ok := ordered[it.ProductID]
		if !ok || it.Quantity <= 0 {
			return nil, ErrInvalidReturnItems
		}
		requested[it.ProductID] += it.Quantity
		if requested[it.ProductID] > src.Quantity {
			return nil, ErrInvalidReturnItems
		}
		out = append(out, ReturnItem{
			ProductID: src.ProductID,
			Name:      src.Name,
			Quantity:  it.Quantity,
			Price:     src.Price,
		})
	}
	return out, nil
}
