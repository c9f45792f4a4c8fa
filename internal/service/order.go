package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/furniture-resale/internal/entities"
	"github.com/SergeyBogomolovv/furniture-resale/internal/listing"
	"github.com/SergeyBogomolovv/furniture-resale/pkg/trm"
	"github.com/SergeyBogomolovv/furniture-resale/pkg/utils"

	"github.com/google/uuid"
)

// exports stop after this many rows
const maxExportRows = 10000

type OrderRepo interface {
	GetOrderByID(ctx context.Context, orderID string) (entities.Order, error)
	LatestOrders(ctx context.Context, count int) ([]entities.Order, error)
	ListCustomerOrders(ctx context.Context, customerID string) ([]entities.Order, error)
	ListOrders(ctx context.Context, f entities.ListFilter) ([]entities.Order, int, error)
	CountOrdersByStatus(ctx context.Context, f entities.ListFilter) (map[string]int, error)

	// Операции идемпотентны, т.к. используется ON CONFLICT DO NOTHING
	SaveOrder(ctx context.Context, o entities.Order) error
	SaveOrderItems(ctx context.Context, orderID string, items []entities.OrderItem) error

	// UpdateOrderStatus fails with ErrStatusConflict when the order is no longer in status from.
	UpdateOrderStatus(ctx context.Context, orderID string, from, to entities.OrderStatus, shipping entities.ShippingInfo, updatedAt time.Time) error
}

// ProductReader resolves the catalogue entry of an ordered product.
type ProductReader interface {
	GetProductByID(ctx context.Context, productID string) (entities.Product, error)
}

type EventRepo interface {
	SaveStatusEvent(ctx context.Context, e entities.StatusEvent) error
	ListStatusEvents(ctx context.Context, entityType, entityID string) ([]entities.StatusEvent, error)
}

type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	Delete(key string)
}

// Notifier delivers customer notifications. Failures never roll back the
// change that triggered them.
type Notifier interface {
	OrderShipped(ctx context.Context, o entities.Order) error
	ReturnUpdated(ctx context.Context, r entities.ReturnRequest) error
	ChatAssigned(ctx context.Context, s entities.ChatSession) error
}

var retryConfig = utils.RetryConfig{
	InitialDelay: 100 * time.Millisecond,
	MaxAttempts:  5,
	Multiplier:   2,
}

type orderService struct {
	logger      *slog.Logger
	txManager   trm.Manager
	repo        OrderRepo
	events      EventRepo
	products    ProductReader
	cache       Cache
	notifier    Notifier
	shippingFee int64
}

func NewOrderService(logger *slog.Logger, txManager trm.Manager, repo OrderRepo, events EventRepo, products ProductReader, cache Cache, notifier Notifier, shippingFee int64) *orderService {
	return &orderService{
		logger:      logger.With(slog.String("service", "order")),
		txManager:   txManager,
		repo:        repo,
		events:      events,
		products:    products,
		cache:       cache,
		notifier:    notifier,
		shippingFee: shippingFee,
	}
}

func orderKey(orderID string) string { return "order:" + orderID }

// PlaceOrder validates a paid checkout, fills in the derived fields and stores
// it as a pending order. Placing the same order id twice is a no-op.
func (s *orderService) PlaceOrder(ctx context.Context, order entities.Order) (entities.Order, error) {
	if err := validateCheckout(order); err != nil {
		return entities.Order{}, err
	}

	now := time.Now().UTC()
	if order.ID == "" {
		order.ID = uuid.NewString()
	}
	if order.CreatedAt.IsZero() {
		order.CreatedAt = now
	}
	if order.OrderNumber == "" {
		order.OrderNumber = newOrderNumber(order.CreatedAt)
	}
	order.UpdatedAt = order.CreatedAt
	order.Status = entities.OrderPending
	order.TotalAmount = order.ItemsTotal()
	order.FinalAmount = order.TotalAmount + order.ShippingFee
	order.ShippingInfo = entities.ShippingInfo{}

	fn := func() error {
		return s.txManager.Do(ctx, func(ctx context.Context) error {
			if err := s.repo.SaveOrder(ctx, order); err != nil {
				return fmt.Errorf("failed to save order: %w", err)
			}
			if err := s.repo.SaveOrderItems(ctx, order.ID, order.Items); err != nil {
				return fmt.Errorf("failed to save items: %w", err)
			}

			s.logger.Debug("order saved", "order_id", order.ID, "order_number", order.OrderNumber)
			return nil
		})
	}

	if err := utils.Retry(retryConfig, fn); err != nil {
		return entities.Order{}, err
	}
	ordersPlaced.Inc()
	return order, nil
}

// PlaceCustomerOrder places a storefront order. Only product ids and
// quantities come from the customer; names, prices and the shipping fee are
// taken from the catalogue and the shop settings.
func (s *orderService) PlaceCustomerOrder(ctx context.Context, order entities.Order) (entities.Order, error) {
	if err := validateCheckout(order); err != nil {
		return entities.Order{}, err
	}

	items := slices.Clone(order.Items)
	for i, it := range items {
		p, err := s.products.GetProductByID(ctx, it.ProductID)
		if errors.Is(err, entities.ErrProductNotFound) {
			return entities.Order{}, fmt.Errorf("%w: %s", entities.ErrProductUnavailable, it.ProductID)
		}
		if err != nil {
			return entities.Order{}, fmt.Errorf("failed to load product %s: %w", it.ProductID, err)
		}
		if p.Status != entities.ProductOnSale {
			return entities.Order{}, fmt.Errorf("%w: %s is %s", entities.ErrProductUnavailable, it.ProductID, p.Status)
		}

		items[i].Name = p.Name
		items[i].Price = p.Pricing.SalePrice
	}

	order.Items = items
	order.ShippingFee = s.shippingFee
	return s.PlaceOrder(ctx, order)
}

func validateCheckout(o entities.Order) error {
	if o.CustomerID == "" {
		return fmt.Errorf("%w: customer is required", entities.ErrInvalidOrder)
	}
	if len(o.Items) == 0 {
		return fmt.Errorf("%w: order has no items", entities.ErrInvalidOrder)
	}
	for _, it := range o.Items {
		if it.ProductID == "" || it.Quantity < 1 || it.Price < 0 {
			return fmt.Errorf("%w: bad item %q", entities.ErrInvalidOrder, it.ProductID)
		}
	}
	if o.ShippingFee < 0 {
		return fmt.Errorf("%w: negative shipping fee", entities.ErrInvalidOrder)
	}
	return nil
}

// newOrderNumber formats ORD-YYYYMMDD-XXXXXX.
func newOrderNumber(at time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:6])
	return "ORD-" + at.Format("20060102") + "-" + suffix
}

func (s *orderService) GetOrderByID(ctx context.Context, orderID string) (entities.Order, error) {
	if data, ok := s.cache.Get(orderKey(orderID)); ok {
		var order entities.Order
		if err := order.Unmarshal(data); err != nil {
			s.logger.Error("failed to unmarshal order", slog.String("order_id", orderID), slog.Any("error", err))
			return entities.Order{}, err
		}
		return order, nil
	}

	var order entities.Order
	fn := func() error {
		var err error
		order, err = s.repo.GetOrderByID(ctx, orderID)
		return err
	}
	if err := utils.Retry(retryConfig, fn, entities.ErrOrderNotFound); err != nil {
		return entities.Order{}, err
	}

	s.cacheOrder(order)
	return order, nil
}

func (s *orderService) cacheOrder(order entities.Order) {
	data, err := order.Marshal()
	if err != nil {
		s.logger.Error("failed to marshal order", slog.String("order_id", order.ID), slog.Any("error", err))
		return
	}
	s.cache.Set(orderKey(order.ID), data)
}

// ListOrders returns one page of the filtered orders. Counts cover the whole
// filtered set regardless of the status tab and the page.
func (s *orderService) ListOrders(ctx context.Context, f entities.ListFilter) (entities.OrderList, error) {
	orders, total, err := s.repo.ListOrders(ctx, f)
	if err != nil {
		return entities.OrderList{}, err
	}

	grouped, err := s.repo.CountOrdersByStatus(ctx, f)
	if err != nil {
		return entities.OrderList{}, err
	}

	return entities.OrderList{
		Orders: orders,
		Total:  total,
		Counts: listing.Normalize(grouped, entities.Strings(entities.OrderStatuses)),
	}, nil
}

func (s *orderService) ListCustomerOrders(ctx context.Context, customerID string) ([]entities.Order, error) {
	return s.repo.ListCustomerOrders(ctx, customerID)
}

// ExportOrders collects every order matching the filter, page by page.
func (s *orderService) ExportOrders(ctx context.Context, f entities.ListFilter) ([]entities.Order, error) {
	f.Limit = entities.MaxPageSize
	f.Offset = 0

	var out []entities.Order
	for len(out) < maxExportRows {
		page, _, err := s.repo.ListOrders(ctx, f)
		if err != nil {
			return nil, err
		}
		out = append(out, page...)
		if len(page) < entities.MaxPageSize {
			break
		}
		f.Offset += entities.MaxPageSize
	}
	return out, nil
}

// UpdateOrderStatus moves an order along the transition table and records an
// audit event. The updated order is returned.
func (s *orderService) UpdateOrderStatus(ctx context.Context, upd entities.OrderStatusUpdate) (entities.Order, error) {
	if !upd.Status.Valid() {
		return entities.Order{}, entities.ErrUnknownStatus
	}
	if upd.Status == entities.OrderShipped {
		if upd.Shipping == nil || upd.Shipping.Carrier == "" || upd.Shipping.TrackingNumber == "" {
			return entities.Order{}, entities.ErrShippingInfoRequired
		}
	}

	var (
		updated entities.Order
		from    entities.OrderStatus
	)
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := s.repo.GetOrderByID(ctx, upd.OrderID)
		if err != nil {
			return err
		}

		from = order.Status
		if !from.CanTransitionManuallyTo(upd.Status) {
			return fmt.Errorf("%w: %s -> %s", entities.ErrInvalidTransition, from, upd.Status)
		}

		now := time.Now().UTC()
		shipping := order.ShippingInfo
		switch upd.Status {
		case entities.OrderShipped:
			shipping.Carrier = upd.Shipping.Carrier
			shipping.TrackingNumber = upd.Shipping.TrackingNumber
			shipping.Notes = upd.Shipping.Notes
			shipping.ShippedAt = now
		case entities.OrderDelivered:
			shipping.DeliveredAt = now
		}

		if err := s.repo.UpdateOrderStatus(ctx, order.ID, from, upd.Status, shipping, now); err != nil {
			return fmt.Errorf("failed to update order status: %w", err)
		}

		event := newStatusEvent(entities.KindOrder, order.ID, upd.ActorID, string(from), string(upd.Status), upd.Note, now)
		if err := s.events.SaveStatusEvent(ctx, event); err != nil {
			return fmt.Errorf("failed to save status event: %w", err)
		}

		order.Status = upd.Status
		order.ShippingInfo = shipping
		order.UpdatedAt = now
		updated = order
		return nil
	})
	if err != nil {
		return entities.Order{}, err
	}

	s.cache.Delete(orderKey(updated.ID))
	statusTransitions.WithLabelValues(entities.KindOrder, string(from), string(updated.Status)).Inc()
	s.logger.Info("order status changed",
		slog.String("order_id", updated.ID),
		slog.String("from", string(from)),
		slog.String("to", string(updated.Status)),
		slog.String("actor_id", upd.ActorID),
	)

	if updated.Status == entities.OrderShipped {
		if err := s.notifier.OrderShipped(ctx, updated); err != nil {
			notificationsFailed.WithLabelValues("order.shipped").Inc()
			s.logger.Warn("failed to notify shipment", slog.String("order_id", updated.ID), slog.Any("error", err))
		}
	}
	return updated, nil
}

// OrderHistory lists the status events of an existing order, oldest first.
func (s *orderService) OrderHistory(ctx context.Context, orderID string) ([]entities.StatusEvent, error) {
	if _, err := s.GetOrderByID(ctx, orderID); err != nil {
		return nil, err
	}
	return s.events.ListStatusEvents(ctx, entities.KindOrder, orderID)
}

func (s *orderService) WarmUpCache(ctx context.Context, count int) error {
	orders, err := s.repo.LatestOrders(ctx, count)
	if err != nil {
		return fmt.Errorf("failed to load latest orders: %w", err)
	}
	for _, order := range orders {
		s.cacheOrder(order)
	}
	s.logger.Info("cache warmed up", slog.Int("orders", len(orders)))
	return nil
}

func newStatusEvent(kind, entityID, actorID, from, to, note string, at time.Time) entities.StatusEvent {
	return entities.StatusEvent{
		ID:         uuid.NewString(),
		EntityType: kind,
		EntityID:   entityID,
		ActorID:    actorID,
		FromStatus: from,
		ToStatus:   to,
		Note:       note,
		CreatedAt:  at,
	}
}
