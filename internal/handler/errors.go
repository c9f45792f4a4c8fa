package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/furniture-resale/internal/entities"
	"github.com/SergeyBogomolovv/furniture-resale/pkg/utils"
	"github.com/go-playground/validator/v10"
)

var errorStatuses = []struct {
	err    error
	status int
}{
	{entities.ErrOrderNotFound, http.StatusNotFound},
	{entities.ErrReturnNotFound, http.StatusNotFound},
	{entities.ErrChatNotFound, http.StatusNotFound},
	{entities.ErrProductNotFound, http.StatusNotFound},
	{entities.ErrUserNotFound, http.StatusNotFound},

	{entities.ErrStatusConflict, http.StatusConflict},
	{entities.ErrReturnAlreadyRequested, http.StatusConflict},

	{entities.ErrInvalidOrder, http.StatusBadRequest},
	{entities.ErrInvalidProduct, http.StatusBadRequest},
	{entities.ErrInvalidReturn, http.StatusBadRequest},
	{entities.ErrInvalidReturnItems, http.StatusBadRequest},
	{entities.ErrUnknownStatus, http.StatusBadRequest},
	{entities.ErrShippingInfoRequired, http.StatusBadRequest},
	{entities.ErrRejectionReasonRequired, http.StatusBadRequest},
	{entities.ErrInvalidRefundAmount, http.StatusBadRequest},
	{entities.ErrNotDealer, http.StatusBadRequest},
	{entities.ErrEmptyMessage, http.StatusBadRequest},
	{entities.ErrInvalidRole, http.StatusBadRequest},

	{entities.ErrInvalidTransition, http.StatusUnprocessableEntity},
	{entities.ErrOrderNotReturnable, http.StatusUnprocessableEntity},
	{entities.ErrProductUnavailable, http.StatusUnprocessableEntity},
	{entities.ErrChatClosed, http.StatusUnprocessableEntity},

	{entities.ErrNotParticipant, http.StatusForbidden},
	{entities.ErrInvalidCredentials, http.StatusUnauthorized},
}

// errorStatus maps a service error to its HTTP status. Unknown errors are 500.
func errorStatus(err error) (int, error) {
	for _, e := range errorStatuses {
		if errors.Is(err, e.err) {
			return e.status, e.err
		}
	}
	return http.StatusInternalServerError, nil
}

// writeServiceError answers with the sentinel's message. Internal errors are
// logged and hidden from the client.
func writeServiceError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error, msg string, attrs ...any) {
	status, sentinel := errorStatus(err)
	if sentinel == nil {
		logger.ErrorContext(r.Context(), msg, append(attrs, slog.Any("error", err))...)
		utils.WriteError(w, "internal server error", status)
		return
	}

	// transition errors carry the attempted move
	if errors.Is(err, entities.ErrInvalidTransition) {
		utils.WriteError(w, err.Error(), status)
		return
	}
	utils.WriteError(w, sentinel.Error(), status)
}

// decodeBody reads a JSON body and validates it. It writes the 400 itself and
// reports false when the request is unusable.
func decodeBody(w http.ResponseWriter, r *http.Request, validate *validator.Validate, v any) bool {
	if err := utils.DecodeBody(w, r, v); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return false
	}
	if err := validate.Struct(v); err != nil {
		utils.WriteValidationError(w, err)
		return false
	}
	return true
}
