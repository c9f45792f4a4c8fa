package entities

import "slices"

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderPreparing OrderStatus = "preparing"
	OrderShipped   OrderStatus = "shipped"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
	OrderReturned  OrderStatus = "returned"
)

// OrderStatuses lists the order vocabulary in lifecycle order.
var OrderStatuses = []OrderStatus{
	OrderPending, OrderPreparing, OrderShipped, OrderDelivered, OrderCancelled, OrderReturned,
}

var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderPending:   {OrderPreparing, OrderCancelled},
	OrderPreparing: {OrderShipped, OrderCancelled},
	OrderShipped:   {OrderDelivered},
	OrderDelivered: {OrderReturned},
}

func ParseOrderStatus(s string) (OrderStatus, error) {
	status := OrderStatus(s)
	if !status.Valid() {
		return "", ErrUnknownStatus
	}
	return status, nil
}

func (s OrderStatus) Valid() bool {
	return slices.Contains(OrderStatuses, s)
}

func (s OrderStatus) NextStates() []OrderStatus {
	return slices.Clone(orderTransitions[s])
}

func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	return slices.Contains(orderTransitions[s], next)
}

func (s OrderStatus) IsTerminal() bool {
	return s.Valid() && len(orderTransitions[s]) == 0
}

// ManualNextStates is NextStates without returned, which only a refunded
// return may set.
func (s OrderStatus) ManualNextStates() []OrderStatus {
	return slices.DeleteFunc(s.NextStates(), func(next OrderStatus) bool { return next == OrderReturned })
}

func (s OrderStatus) CanTransitionManuallyTo(next OrderStatus) bool {
	return next != OrderReturned && s.CanTransitionTo(next)
}

type ReturnStatus string

const (
	ReturnRequested  ReturnStatus = "requested"
	ReturnApproved   ReturnStatus = "approved"
	ReturnRejected   ReturnStatus = "rejected"
	ReturnInProgress ReturnStatus = "in_progress"
	ReturnCompleted  ReturnStatus = "completed"
	ReturnRefunded   ReturnStatus = "refunded"
)

var ReturnStatuses = []ReturnStatus{
	ReturnRequested, ReturnApproved, ReturnRejected, ReturnInProgress, ReturnCompleted, ReturnRefunded,
}

var returnTransitions = map[ReturnStatus][]ReturnStatus{
	ReturnRequested:  {ReturnApproved, ReturnRejected},
	ReturnApproved:   {ReturnInProgress},
	ReturnInProgress: {ReturnCompleted},
	ReturnCompleted:  {ReturnRefunded},
}

func ParseReturnStatus(s string) (ReturnStatus, error) {
	status := ReturnStatus(s)
	if !status.Valid() {
		return "", ErrUnknownStatus
	}
	return status, nil
}

func (s ReturnStatus) Valid() bool {
	return slices.Contains(ReturnStatuses, s)
}

func (s ReturnStatus) NextStates() []ReturnStatus {
	return slices.Clone(returnTransitions[s])
}

func (s ReturnStatus) CanTransitionTo(next ReturnStatus) bool {
	return slices.Contains(returnTransitions[s], next)
}

func (s ReturnStatus) IsTerminal() bool {
	return s.Valid() && len(returnTransitions[s]) == 0
}

type ChatStatus string

const (
	ChatWaiting   ChatStatus = "waiting"
	ChatActive    ChatStatus = "active"
	ChatCompleted ChatStatus = "completed"
	ChatCancelled ChatStatus = "cancelled"
)

var ChatStatuses = []ChatStatus{ChatWaiting, ChatActive, ChatCompleted, ChatCancelled}

// active -> active is a dealer reassignment.
var chatTransitions = map[ChatStatus][]ChatStatus{
	ChatWaiting: {ChatActive, ChatCancelled},
	ChatActive:  {ChatActive, ChatCompleted, ChatCancelled},
}

func ParseChatStatus(s string) (ChatStatus, error) {
	status := ChatStatus(s)
	if !status.Valid() {
		return "", ErrUnknownStatus
	}
	return status, nil
}

func (s ChatStatus) Valid() bool {
	return slices.Contains(ChatStatuses, s)
}

func (s ChatStatus) NextStates() []ChatStatus {
	return slices.Clone(chatTransitions[s])
}

func (s ChatStatus) CanTransitionTo(next ChatStatus) bool {
	return slices.Contains(chatTransitions[s], next)
}

func (s ChatStatus) IsTerminal() bool {
	return s.Valid() && len(chatTransitions[s]) == 0
}

// Strings converts a typed vocabulary to plain strings.
func Strings[S ~string](values []S) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}
