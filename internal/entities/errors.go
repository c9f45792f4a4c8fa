package entities

import "errors"

var (
	ErrOrderNotFound   = errors.New("order not found")
	ErrReturnNotFound  = errors.New("return request not found")
	ErrChatNotFound    = errors.New("chat session not found")
	ErrProductNotFound = errors.New("product not found")
	ErrUserNotFound    = errors.New("user not found")

	ErrInvalidOrder   = errors.New("invalid order")
	ErrInvalidProduct = errors.New("invalid product")
	// ErrProductUnavailable is returned when an ordered product is missing or not on sale.
	ErrProductUnavailable = errors.New("product is not available for sale")

	ErrUnknownStatus     = errors.New("unknown status")
	ErrInvalidTransition = errors.New("invalid status transition")
	// ErrStatusConflict is returned when the entity changed status between read and update.
	ErrStatusConflict = errors.New("status was changed concurrently")

	ErrShippingInfoRequired    = errors.New("carrier and tracking number are required to ship an order")
	ErrRejectionReasonRequired = errors.New("rejection reason is required")
	ErrInvalidRefundAmount     = errors.New("refund amount must be positive and not exceed the order amount")

	ErrOrderNotReturnable     = errors.New("only delivered orders are eligible for return")
	ErrInvalidReturnItems     = errors.New("returned items must belong to the order")
	ErrReturnAlreadyRequested = errors.New("order already has an open return request")
	ErrInvalidReturn          = errors.New("invalid return request")

	ErrNotDealer      = errors.New("user is not a dealer")
	ErrChatClosed     = errors.New("chat session is closed")
	ErrNotParticipant = errors.New("sender is not a participant of the chat session")
	ErrEmptyMessage   = errors.New("message body is empty")

	ErrInvalidRole = errors.New("invalid user role")

	ErrInvalidCredentials = errors.New("invalid email or password")
)
