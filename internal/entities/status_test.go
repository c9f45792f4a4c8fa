package entities_test

import (
	"testing"

	"github.com/SergeyBogomolovv/furniture-resale/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	testCases := []struct {
		name string
		from entities.OrderStatus
		to   entities.OrderStatus
		want bool
	}{
		{name: "pending to preparing", from: entities.OrderPending, to: entities.OrderPreparing, want: true},
		{name: "pending to cancelled", from: entities.OrderPending, to: entities.OrderCancelled, want: true},
		{name: "preparing to shipped", from: entities.OrderPreparing, to: entities.OrderShipped, want: true},
		{name: "shipped to delivered", from: entities.OrderShipped, to: entities.OrderDelivered, want: true},
		{name: "delivered to returned", from: entities.OrderDelivered, to: entities.OrderReturned, want: true},
		{name: "delivered back to preparing", from: entities.OrderDelivered, to: entities.OrderPreparing, want: false},
		{name: "pending skips to shipped", from: entities.OrderPending, to: entities.OrderShipped, want: false},
		{name: "shipped cannot be cancelled", from: entities.OrderShipped, to: entities.OrderCancelled, want: false},
		{name: "cancelled is terminal", from: entities.OrderCancelled, to: entities.OrderPending, want: false},
		{name: "same status", from: entities.OrderPreparing, to: entities.OrderPreparing, want: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.from.CanTransitionTo(tc.to))
		})
	}
}

func TestReturnStatus_CanTransitionTo(t *testing.T) {
	assert.True(t, entities.ReturnRequested.CanTransitionTo(entities.ReturnApproved))
	assert.True(t, entities.ReturnRequested.CanTransitionTo(entities.ReturnRejected))
	assert.True(t, entities.ReturnApproved.CanTransitionTo(entities.ReturnInProgress))
	assert.True(t, entities.ReturnInProgress.CanTransitionTo(entities.ReturnCompleted))
	assert.True(t, entities.ReturnCompleted.CanTransitionTo(entities.ReturnRefunded))

	assert.False(t, entities.ReturnRequested.CanTransitionTo(entities.ReturnRefunded))
	assert.False(t, entities.ReturnRejected.CanTransitionTo(entities.ReturnApproved))
	assert.True(t, entities.ReturnRejected.IsTerminal())
	assert.True(t, entities.ReturnRefunded.IsTerminal())
	assert.False(t, entities.ReturnStatus("bogus").IsTerminal())
}

func TestChatStatus_CanTransitionTo(t *testing.T) {
	assert.True(t, entities.ChatWaiting.CanTransitionTo(entities.ChatActive))
	assert.True(t, entities.ChatActive.CanTransitionTo(entities.ChatActive))
	assert.True(t, entities.ChatActive.CanTransitionTo(entities.ChatCompleted))
	assert.False(t, entities.ChatWaiting.CanTransitionTo(entities.ChatCompleted))
	assert.False(t, entities.ChatCompleted.CanTransitionTo(entities.ChatActive))
}

func TestParseStatus(t *testing.T) {
	s, err := entities.ParseOrderStatus("shipped")
	require.NoError(t, err)
	assert.Equal(t, entities.OrderShipped, s)

	_, err = entities.ParseOrderStatus("lost")
	assert.ErrorIs(t, err, entities.ErrUnknownStatus)

	_, err = entities.ParseReturnStatus("in_progress")
	assert.NoError(t, err)

	_, err = entities.ParseChatStatus("")
	assert.ErrorIs(t, err, entities.ErrUnknownStatus)
}

func TestNextStates_ReturnsCopy(t *testing.T) {
	next := entities.OrderPending.NextStates()
	next[0] = entities.OrderReturned

	assert.Equal(t, []entities.OrderStatus{entities.OrderPreparing, entities.OrderCancelled}, entities.OrderPending.NextStates())
}

func TestDisplay_TotalOverVocabulary(t *testing.T) {
	// a mapped value never falls back to its raw string
	for _, s := range entities.OrderStatuses {
		assert.NotEqual(t, string(s), s.Display().Label, s)
	}
	for _, s := range entities.ReturnStatuses {
		assert.NotEqual(t, string(s), s.Display().Label, s)
	}
	for _, s := range entities.ChatStatuses {
		assert.NotEqual(t, string(s), s.Display().Label, s)
	}
}

func TestDisplay_UnknownFallsBackToRaw(t *testing.T) {
	d := entities.OrderStatus("on_hold").Display()
	assert.Equal(t, "on_hold", d.Label)
	assert.Equal(t, "bg-gray-100 text-gray-800", d.Color)

	d = entities.DisplayOf("invoice", "paid")
	assert.Equal(t, "paid", d.Label)
}

func TestDisplay_Known(t *testing.T) {
	assert.Equal(t, entities.Display{Label: "Shipped", Color: "bg-indigo-100 text-indigo-800"}, entities.OrderShipped.Display())
	assert.Equal(t, "In progress", entities.ReturnInProgress.Display().Label)
}

func TestOrderStatus_ManualTransitions(t *testing.T) {
	assert.False(t, entities.OrderDelivered.CanTransitionManuallyTo(entities.OrderReturned))
	assert.True(t, entities.OrderShipped.CanTransitionManuallyTo(entities.OrderDelivered))
	assert.Empty(t, entities.OrderDelivered.ManualNextStates())
	assert.Equal(t, []entities.OrderStatus{entities.OrderDelivered}, entities.OrderShipped.ManualNextStates())
	assert.Equal(t, []entities.OrderStatus{entities.OrderReturned}, entities.OrderDelivered.NextStates())
}
