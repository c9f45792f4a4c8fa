package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/furniture-resale/internal/entities"
	"github.com/SergeyBogomolovv/furniture-resale/internal/listing"
	"github.com/SergeyBogomolovv/furniture-resale/pkg/trm"

	"github.com/google/uuid"
)

type ReturnRepo interface {
	GetReturnByID(ctx context.Context, returnID string) (entities.ReturnRequest, error)
	ListReturns(ctx context.Context, f entities.ListFilter) ([]entities.ReturnRequest, int, error)
	CountReturnsByStatus(ctx context.Context, f entities.ListFilter) (map[string]int, error)
	ListCustomerReturns(ctx context.Context, customerID string) ([]entities.ReturnRequest, error)
	HasOpenReturn(ctx context.Context, orderID string) (bool, error)
	SaveReturn(ctx context.Context, request entities.ReturnRequest) error
	UpdateReturnStatus(ctx context.Context, from entities.ReturnStatus, request entities.ReturnRequest) error
}

// OrderStatusRepo is the part of the order storage a return touches.
type OrderStatusRepo interface {
	GetOrderByID(ctx context.Context, orderID string) (entities.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID string, from, to entities.OrderStatus, shipping entities.ShippingInfo, updatedAt time.Time) error
}

type returnService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      ReturnRepo
	orders    OrderStatusRepo
	events    EventRepo
	cache     Cache
	notifier  Notifier
}

func NewReturnService(logger *slog.Logger, txManager trm.Manager, repo ReturnRepo, orders OrderStatusRepo, events EventRepo, cache Cache, notifier Notifier) *returnService {
	return &returnService{
		logger:    logger.With(slog.String("service", "return")),
		txManager: txManager,
		repo:      repo,
		orders:    orders,
		events:    events,
		cache:     cache,
		notifier:  notifier,
	}
}

// CreateReturn opens a return request for a delivered order of the customer.
// Eligibility is checked before anything is written.
func (s *returnService) CreateReturn(ctx context.Context, req entities.ReturnRequest) (entities.ReturnRequest, error) {
	if !req.Reason.Valid() || !req.ReturnMethod.Valid() {
		return entities.ReturnRequest{}, fmt.Errorf("%w: unknown reason or return method", entities.ErrInvalidReturn)
	}

	order, err := s.orders.GetOrderByID(ctx, req.OrderID)
	if err != nil {
		return entities.ReturnRequest{}, err
	}
	if order.CustomerID != req.CustomerID {
		return entities.ReturnRequest{}, entities.ErrOrderNotFound
	}
	if err := entities.CheckReturnable(order); err != nil {
		return entities.ReturnRequest{}, err
	}

	items, err := entities.CheckReturnItems(order, req.Items)
	if err != nil {
		return entities.ReturnRequest{}, err
	}

	now := time.Now().UTC()
	ret := entities.ReturnRequest{
		ID:           uuid.NewString(),
		OrderID:      order.ID,
		CustomerID:   order.CustomerID,
		Items:        items,
		Reason:       req.Reason,
		Description:  req.Description,
		ReturnMethod: req.ReturnMethod,
		Status:       entities.ReturnRequested,
		RequestedAt:  now,
		UpdatedAt:    now,
	}
	ret.RefundAmount = ret.ItemsTotal()

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		open, err := s.repo.HasOpenReturn(ctx, order.ID)
		if err != nil {
			return fmt.Errorf("failed to check open returns: %w", err)
		}
		if open {
			return entities.ErrReturnAlreadyRequested
		}

		if err := s.repo.SaveReturn(ctx, ret); err != nil {
			return fmt.Errorf("failed to save return: %w", err)
		}

		event := newStatusEvent(entities.KindReturn, ret.ID, ret.CustomerID, "", string(ret.Status), ret.Description, now)
		if err := s.events.SaveStatusEvent(ctx, event); err != nil {
			return fmt.Errorf("failed to save status event: %w", err)
		}
		return nil
	})
	if err != nil {
		return entities.ReturnRequest{}, err
	}

	s.logger.Info("return requested", slog.String("return_id", ret.ID), slog.String("order_id", ret.OrderID))
	s.notify(ctx, ret)
	return ret, nil
}

func (s *returnService) GetReturnByID(ctx context.Context, returnID string) (entities.ReturnRequest, error) {
	return s.repo.GetReturnByID(ctx, returnID)
}

// UpdateReturnStatus moves a return along the transition table. A refunded
// return moves its order to returned in the same transaction.
func (s *returnService) UpdateReturnStatus(ctx context.Context, upd entities.ReturnStatusUpdate) (entities.ReturnRequest, error) {
	if !upd.Status.Valid() {
		return entities.ReturnRequest{}, entities.ErrUnknownStatus
	}
	if upd.Status == entities.ReturnRejected && upd.RejectionReason == "" {
		return entities.ReturnRequest{}, entities.ErrRejectionReasonRequired
	}

	var (
		updated      entities.ReturnRequest
		from         entities.ReturnStatus
		orderUpdated bool
	)
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		ret, err := s.repo.GetReturnByID(ctx, upd.ReturnID)
		if err != nil {
			return err
		}

		from = ret.Status
		if !from.CanTransitionTo(upd.Status) {
			return fmt.Errorf("%w: %s -> %s", entities.ErrInvalidTransition, from, upd.Status)
		}

		now := time.Now().UTC()
		ret.Status = upd.Status
		ret.UpdatedAt = now
		if upd.Notes != "" {
			ret.Notes = upd.Notes
		}

		var order entities.Order
		switch upd.Status {
		case entities.ReturnRejected:
			ret.RejectionReason = upd.RejectionReason
		case entities.ReturnRefunded:
			order, err = s.orders.GetOrderByID(ctx, ret.OrderID)
			if err != nil {
				return fmt.Errorf("failed to load returned order: %w", err)
			}
			if upd.RefundAmount != nil {
				ret.RefundAmount = *upd.RefundAmount
			}
			if ret.RefundAmount <= 0 || ret.RefundAmount > order.FinalAmount {
				return entities.ErrInvalidRefundAmount
			}
		}

		if err := s.repo.UpdateReturnStatus(ctx, from, ret); err != nil {
			return fmt.Errorf("failed to update return status: %w", err)
		}

		event := newStatusEvent(entities.KindReturn, ret.ID, upd.ActorID, string(from), string(ret.Status), upd.Notes, now)
		if err := s.events.SaveStatusEvent(ctx, event); err != nil {
			return fmt.Errorf("failed to save status event: %w", err)
		}

		if ret.Status == entities.ReturnRefunded {
			if err := s.markOrderReturned(ctx, order, upd.ActorID, now); err != nil {
				return err
			}
			orderUpdated = true
		}

		updated = ret
		return nil
	})
	if err != nil {
		return entities.ReturnRequest{}, err
	}

	if orderUpdated {
		s.cache.Delete(orderKey(updated.OrderID))
		statusTransitions.WithLabelValues(entities.KindOrder, string(entities.OrderDelivered), string(entities.OrderReturned)).Inc()
	}
	statusTransitions.WithLabelValues(entities.KindReturn, string(from), string(updated.Status)).Inc()
	s.logger.Info("return status changed",
		slog.String("return_id", updated.ID),
		slog.String("from", string(from)),
		slog.String("to", string(updated.Status)),
		slog.String("actor_id", upd.ActorID),
	)

	s.notify(ctx, updated)
	return updated, nil
}

func (s *returnService) markOrderReturned(ctx context.Context, order entities.Order, actorID string, at time.Time) error {
	if !order.Status.CanTransitionTo(entities.OrderReturned) {
		return fmt.Errorf("%w: order %s is %s", entities.ErrInvalidTransition, order.ID, order.Status)
	}

	err := s.orders.UpdateOrderStatus(ctx, order.ID, order.Status, entities.OrderReturned, order.ShippingInfo, at)
	if err != nil {
		return fmt.Errorf("failed to mark order returned: %w", err)
	}

	event := newStatusEvent(entities.KindOrder, order.ID, actorID, string(order.Status), string(entities.OrderReturned), "refunded", at)
	if err := s.events.SaveStatusEvent(ctx, event); err != nil {
		return fmt.Errorf("failed to save status event: %w", err)
	}
	return nil
}

func (s *returnService) notify(ctx context.Context, ret entities.ReturnRequest) {
	if err := s.notifier.ReturnUpdated(ctx, ret); err != nil {
		notificationsFailed.WithLabelValues("return.updated").Inc()
		s.logger.Warn("failed to notify return update", slog.String("return_id", ret.ID), slog.Any("error", err))
	}
}

func (s *returnService) ListReturns(ctx context.Context, f entities.ListFilter) (entities.ReturnList, error) {
	returns, total, err := s.repo.ListReturns(ctx, f)
	if err != nil {
		return entities.ReturnList{}, err
	}

	grouped, err := s.repo.CountReturnsByStatus(ctx, f)
	if err != nil {
		return entities.ReturnList{}, err
	}

	return entities.ReturnList{
		Returns: returns,
		Total:   total,
		Counts:  listing.Normalize(grouped, entities.Strings(entities.ReturnStatuses)),
	}, nil
}

func (s *returnService) ListCustomerReturns(ctx context.Context, customerID string) ([]entities.ReturnRequest, error) {
	return s.repo.ListCustomerReturns(ctx, customerID)
}
