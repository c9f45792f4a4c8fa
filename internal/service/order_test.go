package service_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/SergeyBogomolovv/furniture-resale/internal/entities"
	"github.com/SergeyBogomolovv/furniture-resale/internal/service"
	mocks "github.com/SergeyBogomolovv/furniture-resale/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderDeps struct {
	repo     *mocks.MockOrderRepo
	events   *mocks.MockEventRepo
	products *mocks.MockProductReader
	cache    *mocks.MockCache
	notifier *mocks.MockNotifier
}

const testShippingFee = 30000

// newOrderService builds the service under test. The order service type is
// unexported, so the constructor call is spelled out here once.
var newOrderService = func(t *testing.T, d orderDeps) interface {
	PlaceOrder(ctx context.Context, order entities.Order) (entities.Order, error)
	PlaceCustomerOrder(ctx context.Context, order entities.Order) (entities.Order, error)
	GetOrderByID(ctx context.Context, orderID string) (entities.Order, error)
	ListOrders(ctx context.Context, f entities.ListFilter) (entities.OrderList, error)
	ExportOrders(ctx context.Context, f entities.ListFilter) ([]entities.Order, error)
	UpdateOrderStatus(ctx context.Context, upd entities.OrderStatusUpdate) (entities.Order, error)
	OrderHistory(ctx context.Context, orderID string) ([]entities.StatusEvent, error)
	WarmUpCache(ctx context.Context, count int) error
} {
	return service.NewOrderService(discardLogger(), passThroughTx(t), d.repo, d.events, d.products, d.cache, d.notifier, testShippingFee)
}

func newOrderDeps(t *testing.T) orderDeps {
	return orderDeps{
		repo:     mocks.NewMockOrderRepo(t),
		events:   mocks.NewMockEventRepo(t),
		products: mocks.NewMockProductReader(t),
		cache:    mocks.NewMockCache(t),
		notifier: mocks.NewMockNotifier(t),
	}
}

func TestOrderService_PlaceOrder(t *testing.T) {
	type MockBehavior func(orderRepo *mocks.MockOrderRepo)

	dbError := errors.New("db error")
	checkout := entities.Order{
		CustomerID:  "c-1",
		Items:       []entities.OrderItem{{ProductID: "p-1", Name: "Oak table", Quantity: 2, Price: 150000}},
		ShippingFee: 30000,
	}

	testCases := []struct {
		name         string
		order        entities.Order
		mockBehavior MockBehavior
		wantErr      error
	}{
		{
			name:  "OK",
			order: checkout,
			mockBehavior: func(orderRepo *mocks.MockOrderRepo) {
				orderRepo.EXPECT().SaveOrder(mock.Anything, mock.MatchedBy(func(o entities.Order) bool {
					return o.TotalAmount == 300000 && o.FinalAmount == 330000 && o.Status == entities.OrderPending
				})).Return(nil)
				orderRepo.EXPECT().SaveOrderItems(mock.Anything, mock.Anything, checkout.Items).Return(nil)
			},
		},
		{
			name:         "no items",
			order:        entities.Order{CustomerID: "c-1"},
			mockBehavior: func(orderRepo *mocks.MockOrderRepo) {},
			wantErr:      entities.ErrInvalidOrder,
		},
		{
			name: "zero quantity",
			order: entities.Order{
				CustomerID: "c-1",
				Items:      []entities.OrderItem{{ProductID: "p-1", Quantity: 0, Price: 1000}},
			},
			mockBehavior: func(orderRepo *mocks.MockOrderRepo) {},
			wantErr:      entities.ErrInvalidOrder,
		},
		{
			name:  "SaveOrderItems fails",
			order: checkout,
			mockBehavior: func(orderRepo *mocks.MockOrderRepo) {
				orderRepo.EXPECT().SaveOrder(mock.Anything, mock.Anything).Return(nil)
				orderRepo.EXPECT().SaveOrderItems(mock.Anything, mock.Anything, mock.Anything).
					Return(dbError)
			},
			wantErr: dbError,
		},
		{
			name:  "Retry works (first attempt fails, second succeeds)",
			order: checkout,
			mockBehavior: func(orderRepo *mocks.MockOrderRepo) {
				orderRepo.EXPECT().SaveOrder(mock.Anything, mock.Anything).
					Once().Return(errors.New("temporary error"))
				orderRepo.EXPECT().SaveOrder(mock.Anything, mock.Anything).
					Once().Return(nil)
				orderRepo.EXPECT().SaveOrderItems(mock.Anything, mock.Anything, mock.Anything).Return(nil)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := newOrderDeps(t)
			tc.mockBehavior(d.repo)

			svc := newOrderService(t, d)

			got, err := svc.PlaceOrder(context.Background(), tc.order)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, got.ID)
			assert.Regexp(t, regexp.MustCompile(`^ORD-\d{8}-[0-9A-F]{6}$`), got.OrderNumber)
			assert.Equal(t, entities.OrderPending, got.Status)
			assert.Equal(t, int64(330000), got.FinalAmount)
		})
	}
}

func TestOrderService_PlaceOrder_KeepsGivenIdentity(t *testing.T) {
	d := newOrderDeps(t)
	d.repo.EXPECT().SaveOrder(mock.Anything, mock.Anything).Return(nil)
	d.repo.EXPECT().SaveOrderItems(mock.Anything, "o-1", mock.Anything).Return(nil)

	got, err := newOrderService(t, d).PlaceOrder(context.Background(), entities.Order{
		ID:          "o-1",
		OrderNumber: "ORD-20260101-ABCDEF",
		CustomerID:  "c-1",
		Items:       []entities.OrderItem{{ProductID: "p-1", Quantity: 1, Price: 1000}},
	})
	require.NoError(t, err)
	assert.Equal(t, "o-1", got.ID)
	assert.Equal(t, "ORD-20260101-ABCDEF", got.OrderNumber)
}

func TestOrderService_PlaceCustomerOrder(t *testing.T) {
	type MockBehavior func(d orderDeps)

	sofa := entities.Product{
		ID:      "sofa",
		Name:    "Leather sofa",
		Status:  entities.ProductOnSale,
		Pricing: entities.Pricing{OriginalPrice: 900000, SalePrice: 450000},
	}
	cart := entities.Order{
		CustomerID: "c-1",
		// name and price sent by the client are ignored
		Items:       []entities.OrderItem{{ProductID: "sofa", Name: "Free sofa", Quantity: 2, Price: 0}},
		ShippingFee: 0,
	}
	productWith := func(status entities.ProductStatus) entities.Product {
		p := sofa
		p.Status = status
		return p
	}

	testCases := []struct {
		name         string
		order        entities.Order
		mockBehavior MockBehavior
		wantErr      error
	}{
		{
			name:  "priced from the catalogue",
			order: cart,
			mockBehavior: func(d orderDeps) {
				d.products.EXPECT().GetProductByID(mock.Anything, "sofa").Return(sofa, nil)
				d.repo.EXPECT().SaveOrder(mock.Anything, mock.MatchedBy(func(o entities.Order) bool {
					return o.TotalAmount == 900000 && o.ShippingFee == testShippingFee && o.FinalAmount == 930000
				})).Return(nil)
				d.repo.EXPECT().SaveOrderItems(mock.Anything, mock.Anything, []entities.OrderItem{
					{ProductID: "sofa", Name: "Leather sofa", Quantity: 2, Price: 450000},
				}).Return(nil)
			},
		},
		{
			name:  "hidden product",
			order: cart,
			mockBehavior: func(d orderDeps) {
				d.products.EXPECT().GetProductByID(mock.Anything, "sofa").Return(productWith(entities.ProductHidden), nil)
			},
			wantErr: entities.ErrProductUnavailable,
		},
		{
			name:  "sold out product",
			order: cart,
			mockBehavior: func(d orderDeps) {
				d.products.EXPECT().GetProductByID(mock.Anything, "sofa").Return(productWith(entities.ProductSoldOut), nil)
			},
			wantErr: entities.ErrProductUnavailable,
		},
		{
			name:  "unknown product",
			order: cart,
			mockBehavior: func(d orderDeps) {
				d.products.EXPECT().GetProductByID(mock.Anything, "sofa").Return(entities.Product{}, entities.ErrProductNotFound)
			},
			wantErr: entities.ErrProductUnavailable,
		},
		{
			name:         "zero quantity is rejected before lookups",
			order:        entities.Order{CustomerID: "c-1", Items: []entities.OrderItem{{ProductID: "sofa"}}},
			mockBehavior: func(d orderDeps) {},
			wantErr:      entities.ErrInvalidOrder,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := newOrderDeps(t)
			tc.mockBehavior(d)

			got, err := newOrderService(t, d).PlaceCustomerOrder(context.Background(), tc.order)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, int64(930000), got.FinalAmount)
			assert.Equal(t, "Free sofa", cart.Items[0].Name, "caller's items are not modified")
		})
	}
}

func TestOrderService_GetOrderByID(t *testing.T) {
	type MockBehavior func(orderRepo *mocks.MockOrderRepo, cache *mocks.MockCache)

	validOrder := entities.Order{ID: "123", Status: entities.OrderPending}
	validData, err := validOrder.Marshal()
	require.NoError(t, err)

	testCases := []struct {
		name         string
		orderID      string
		mockBehavior MockBehavior
		wantErr      error
		want         entities.Order
	}{
		{
			name:    "success from cache",
			orderID: "123",
			mockBehavior: func(_ *mocks.MockOrderRepo, cache *mocks.MockCache) {
				cache.EXPECT().
					Get("order:123").
					Return(validData, true).Once()
			},
			want: validOrder,
		},
		{
			name:    "cache hit but unmarshal fails",
			orderID: "123",
			mockBehavior: func(_ *mocks.MockOrderRepo, cache *mocks.MockCache) {
				cache.EXPECT().
					Get("order:123").
					Return([]byte("broken"), true).Once()
			},
			wantErr: entities.ErrInvalidOrder,
		},
		{
			name:    "success from repo and set to cache",
			orderID: "123",
			mockBehavior: func(orderRepo *mocks.MockOrderRepo, cache *mocks.MockCache) {
				cache.EXPECT().
					Get("order:123").
					Return(nil, false).Once()
				orderRepo.EXPECT().
					GetOrderByID(mock.Anything, "123").
					Return(validOrder, nil).Once()
				cache.EXPECT().
					Set("order:123", validData).
					Return().Once()
			},
			want: validOrder,
		},
		{
			name:    "not found in repo",
			orderID: "not-exist",
			mockBehavior: func(orderRepo *mocks.MockOrderRepo, cache *mocks.MockCache) {
				cache.EXPECT().
					Get("order:not-exist").
					Return(nil, false).Once()
				orderRepo.EXPECT().
					GetOrderByID(mock.Anything, "not-exist").
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantErr: entities.ErrOrderNotFound,
		},
		{
			name:    "second attempt from repo",
			orderID: "123",
			mockBehavior: func(orderRepo *mocks.MockOrderRepo, cache *mocks.MockCache) {
				cache.EXPECT().
					Get("order:123").
					Return(nil, false).Once()
				orderRepo.EXPECT().
					GetOrderByID(mock.Anything, "123").
					Return(entities.Order{}, errors.New("some error")).Once()
				orderRepo.EXPECT().
					GetOrderByID(mock.Anything, "123").
					Return(validOrder, nil).Once()
				cache.EXPECT().
					Set("order:123", validData).
					Return().Once()
			},
			want: validOrder,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := newOrderDeps(t)
			tc.mockBehavior(d.repo, d.cache)

			svc := newOrderService(t, d)

			got, err := svc.GetOrderByID(context.Background(), tc.orderID)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestOrderService_UpdateOrderStatus(t *testing.T) {
	type MockBehavior func(d orderDeps)

	preparing := entities.Order{ID: "o-1", CustomerID: "c-1", Status: entities.OrderPreparing}
	shipped := entities.Order{ID: "o-1", CustomerID: "c-1", Status: entities.OrderShipped}
	delivered := entities.Order{ID: "o-1", CustomerID: "c-1", Status: entities.OrderDelivered}
	shipping := &entities.ShippingInfo{Carrier: "CJ", TrackingNumber: "6543-2100"}

	eventFor := func(from, to entities.OrderStatus) any {
		return mock.MatchedBy(func(e entities.StatusEvent) bool {
			return e.EntityType == entities.KindOrder && e.EntityID == "o-1" && e.ActorID == "admin-1" &&
				e.FromStatus == string(from) && e.ToStatus == string(to) && e.ID != ""
		})
	}

	testCases := []struct {
		name         string
		update       entities.OrderStatusUpdate
		mockBehavior MockBehavior
		wantErr      error
		wantStatus   entities.OrderStatus
	}{
		{
			name:   "ship with tracking",
			update: entities.OrderStatusUpdate{OrderID: "o-1", ActorID: "admin-1", Status: entities.OrderShipped, Shipping: shipping},
			mockBehavior: func(d orderDeps) {
				d.repo.EXPECT().GetOrderByID(mock.Anything, "o-1").Return(preparing, nil)
				d.repo.EXPECT().UpdateOrderStatus(mock.Anything, "o-1", entities.OrderPreparing, entities.OrderShipped,
					mock.MatchedBy(func(s entities.ShippingInfo) bool {
						return s.Carrier == "CJ" && s.TrackingNumber == "6543-2100" && !s.ShippedAt.IsZero()
					}), mock.Anything).Return(nil)
				d.events.EXPECT().SaveStatusEvent(mock.Anything, eventFor(entities.OrderPreparing, entities.OrderShipped)).Return(nil)
				d.cache.EXPECT().Delete("order:o-1").Return()
				d.notifier.EXPECT().OrderShipped(mock.Anything, mock.MatchedBy(func(o entities.Order) bool {
					return o.Status == entities.OrderShipped && o.ShippingInfo.TrackingNumber == "6543-2100"
				})).Return(nil)
			},
			wantStatus: entities.OrderShipped,
		},
		{
			name:   "notification failure does not fail the update",
			update: entities.OrderStatusUpdate{OrderID: "o-1", ActorID: "admin-1", Status: entities.OrderShipped, Shipping: shipping},
			mockBehavior: func(d orderDeps) {
				d.repo.EXPECT().GetOrderByID(mock.Anything, "o-1").Return(preparing, nil)
				d.repo.EXPECT().UpdateOrderStatus(mock.Anything, "o-1", entities.OrderPreparing, entities.OrderShipped, mock.Anything, mock.Anything).Return(nil)
				d.events.EXPECT().SaveStatusEvent(mock.Anything, mock.Anything).Return(nil)
				d.cache.EXPECT().Delete("order:o-1").Return()
				d.notifier.EXPECT().OrderShipped(mock.Anything, mock.Anything).Return(errors.New("broker down"))
			},
			wantStatus: entities.OrderShipped,
		},
		{
			name:   "deliver sets delivered time",
			update: entities.OrderStatusUpdate{OrderID: "o-1", ActorID: "admin-1", Status: entities.OrderDelivered},
			mockBehavior: func(d orderDeps) {
				d.repo.EXPECT().GetOrderByID(mock.Anything, "o-1").Return(shipped, nil)
				d.repo.EXPECT().UpdateOrderStatus(mock.Anything, "o-1", entities.OrderShipped, entities.OrderDelivered,
					mock.MatchedBy(func(s entities.ShippingInfo) bool { return !s.DeliveredAt.IsZero() }), mock.Anything).Return(nil)
				d.events.EXPECT().SaveStatusEvent(mock.Anything, eventFor(entities.OrderShipped, entities.OrderDelivered)).Return(nil)
				d.cache.EXPECT().Delete("order:o-1").Return()
			},
			wantStatus: entities.OrderDelivered,
		},
		{
			name:         "ship without tracking number",
			update:       entities.OrderStatusUpdate{OrderID: "o-1", Status: entities.OrderShipped, Shipping: &entities.ShippingInfo{Carrier: "CJ"}},
			mockBehavior: func(d orderDeps) {},
			wantErr:      entities.ErrShippingInfoRequired,
		},
		{
			name:         "unknown status",
			update:       entities.OrderStatusUpdate{OrderID: "o-1", Status: "lost"},
			mockBehavior: func(d orderDeps) {},
			wantErr:      entities.ErrUnknownStatus,
		},
		{
			name:   "delivered back to preparing is rejected",
			update: entities.OrderStatusUpdate{OrderID: "o-1", Status: entities.OrderPreparing},
			mockBehavior: func(d orderDeps) {
				d.repo.EXPECT().GetOrderByID(mock.Anything, "o-1").Return(delivered, nil)
			},
			wantErr: entities.ErrInvalidTransition,
		},
		{
			name:   "returned is only set by a refund",
			update: entities.OrderStatusUpdate{OrderID: "o-1", ActorID: "admin-1", Status: entities.OrderReturned},
			mockBehavior: func(d orderDeps) {
				d.repo.EXPECT().GetOrderByID(mock.Anything, "o-1").Return(delivered, nil)
			},
			wantErr: entities.ErrInvalidTransition,
		},
		{
			name:   "changed concurrently",
			update: entities.OrderStatusUpdate{OrderID: "o-1", Status: entities.OrderCancelled},
			mockBehavior: func(d orderDeps) {
				d.repo.EXPECT().GetOrderByID(mock.Anything, "o-1").Return(preparing, nil)
				d.repo.EXPECT().UpdateOrderStatus(mock.Anything, "o-1", entities.OrderPreparing, entities.OrderCancelled, mock.Anything, mock.Anything).
					Return(entities.ErrStatusConflict)
			},
			wantErr: entities.ErrStatusConflict,
		},
		{
			name:   "order not found",
			update: entities.OrderStatusUpdate{OrderID: "o-1", Status: entities.OrderCancelled},
			mockBehavior: func(d orderDeps) {
				d.repo.EXPECT().GetOrderByID(mock.Anything, "o-1").Return(entities.Order{}, entities.ErrOrderNotFound)
			},
			wantErr: entities.ErrOrderNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := newOrderDeps(t)
			tc.mockBehavior(d)

			got, err := newOrderService(t, d).UpdateOrderStatus(context.Background(), tc.update)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.wantStatus, got.Status)
			assert.False(t, got.UpdatedAt.IsZero())
		})
	}
}

func TestOrderService_ListOrders(t *testing.T) {
	d := newOrderDeps(t)
	f := entities.ListFilter{Search: "kim", Status: string(entities.OrderShipped)}

	d.repo.EXPECT().ListOrders(mock.Anything, f).Return([]entities.Order{{ID: "o-2", Status: entities.OrderShipped}}, 2, nil)
	d.repo.EXPECT().CountOrdersByStatus(mock.Anything, f).Return(map[string]int{"pending": 1, "shipped": 2}, nil)

	got, err := newOrderService(t, d).ListOrders(context.Background(), f)
	require.NoError(t, err)

	assert.Len(t, got.Orders, 1)
	assert.Equal(t, 2, got.Total)
	assert.Equal(t, entities.StatusCounts{
		"all": 3, "pending": 1, "preparing": 0, "shipped": 2, "delivered": 0, "cancelled": 0, "returned": 0,
	}, got.Counts)
}

func TestOrderService_ListOrders_CountFails(t *testing.T) {
	d := newOrderDeps(t)
	dbError := errors.New("db error")

	d.repo.EXPECT().ListOrders(mock.Anything, mock.Anything).Return(nil, 0, nil)
	d.repo.EXPECT().CountOrdersByStatus(mock.Anything, mock.Anything).Return(nil, dbError)

	_, err := newOrderService(t, d).ListOrders(context.Background(), entities.ListFilter{})
	assert.ErrorIs(t, err, dbError)
}

func TestOrderService_ExportOrders(t *testing.T) {
	d := newOrderDeps(t)

	fullPage := make([]entities.Order, entities.MaxPageSize)
	d.repo.EXPECT().ListOrders(mock.Anything, mock.MatchedBy(func(f entities.ListFilter) bool {
		return f.Offset == 0 && f.Limit == entities.MaxPageSize
	})).Return(fullPage, 105, nil).Once()
	d.repo.EXPECT().ListOrders(mock.Anything, mock.MatchedBy(func(f entities.ListFilter) bool {
		return f.Offset == entities.MaxPageSize
	})).Return(make([]entities.Order, 5), 105, nil).Once()

	got, err := newOrderService(t, d).ExportOrders(context.Background(), entities.ListFilter{Offset: 40, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, got, 105)
}

func TestOrderService_OrderHistory(t *testing.T) {
	d := newOrderDeps(t)
	order := entities.Order{ID: "o-1"}
	events := []entities.StatusEvent{{ID: "e-1", EntityID: "o-1", FromStatus: "pending", ToStatus: "preparing"}}

	d.cache.EXPECT().Get("order:o-1").Return(nil, false)
	d.repo.EXPECT().GetOrderByID(mock.Anything, "o-1").Return(order, nil)
	d.cache.EXPECT().Set("order:o-1", mock.Anything).Return()
	d.events.EXPECT().ListStatusEvents(mock.Anything, entities.KindOrder, "o-1").Return(events, nil)

	got, err := newOrderService(t, d).OrderHistory(context.Background(), "o-1")
	require.NoError(t, err)
	assert.Equal(t, events, got)
}

func TestOrderService_WarmUpCache(t *testing.T) {
	d := newOrderDeps(t)

	d.repo.EXPECT().LatestOrders(mock.Anything, 2).Return([]entities.Order{{ID: "a"}, {ID: "b"}}, nil)
	d.cache.EXPECT().Set("order:a", mock.Anything).Return().Once()
	d.cache.EXPECT().Set("order:b", mock.Anything).Return().Once()

	require.NoError(t, newOrderService(t, d).WarmUpCache(context.Background(), 2))
}
