package handler_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/furniture-resale/internal/auth"
	"github.com/SergeyBogomolovv/furniture-resale/internal/entities"
	"github.com/SergeyBogomolovv/furniture-resale/internal/handler"
	mocks "github.com/SergeyBogomolovv/furniture-resale/internal/handler/mocks"
	"github.com/SergeyBogomolovv/furniture-resale/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOrderHandler_GetOrder(t *testing.T) {
	own := entities.Order{ID: "123", CustomerID: customer.UserID, Status: entities.OrderShipped}
	foreign := entities.Order{ID: "456", CustomerID: "someone-else", Status: entities.OrderPending}

	testCases := []struct {
		name         string
		principal    *auth.Principal
		orderID      string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name:      "own order",
			principal: customer,
			orderID:   "123",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().GetOrderByID(mock.Anything, "123").Return(own, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"status_display":{"label":"Shipped"`,
		},
		{
			name:      "foreign order is hidden",
			principal: customer,
			orderID:   "456",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().GetOrderByID(mock.Anything, "456").Return(foreign, nil).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"order not found"`,
		},
		{
			name:      "admin sees any order",
			principal: admin,
			orderID:   "456",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().GetOrderByID(mock.Anything, "456").Return(foreign, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"next_statuses":["preparing","cancelled"]`,
		},
		{
			name:      "not found",
			principal: customer,
			orderID:   "not-exist",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().GetOrderByID(mock.Anything, "not-exist").Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"order not found"`,
		},
		{
			name:      "internal error",
			principal: customer,
			orderID:   "123",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().GetOrderByID(mock.Anything, "123").Return(entities.Order{}, errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"internal server error"`,
		},
		{
			name:         "anonymous",
			orderID:      "123",
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusUnauthorized,
			wantBody:     `"unauthorized"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockOrderService(t)
			tc.mockBehavior(svc)

			r := newRouter(handler.NewOrderHandler(discardLogger(), svc), tc.principal)
			status, body := serve(t, r, http.MethodGet, "/api/orders/"+tc.orderID, "")

			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}

func TestOrderHandler_PlaceOrder(t *testing.T) {
	validBody := `{
		"items": [{"product_id": "sofa", "quantity": 1}],
		"shipping_address": {"recipient": "Kim", "phone": "010-1234-5678", "address1": "Seoul"}
	}`

	testCases := []struct {
		name         string
		body         string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "created for the caller",
			body: validBody,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					PlaceCustomerOrder(mock.Anything, mock.MatchedBy(func(o entities.Order) bool {
						return o.CustomerID == customer.UserID && len(o.Items) == 1 &&
							o.Items[0] == entities.OrderItem{ProductID: "sofa", Quantity: 1} && o.ShippingFee == 0
					})).
					Return(entities.Order{ID: "o-1", OrderNumber: "ORD-20260501-ABCDEF", Status: entities.OrderPending, FinalAmount: 480000}, nil).
					Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"final_amount":480000`,
		},
		{
			name: "client price and shipping fee are ignored",
			body: `{
				"items": [{"product_id": "sofa", "name": "Free sofa", "quantity": 1, "price": 1}],
				"shipping_address": {"recipient": "Kim", "phone": "1", "address1": "Seoul"},
				"shipping_fee": 0
			}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					PlaceCustomerOrder(mock.Anything, mock.MatchedBy(func(o entities.Order) bool {
						return o.Items[0].Price == 0 && o.Items[0].Name == ""
					})).
					Return(entities.Order{ID: "o-1", Status: entities.OrderPending, FinalAmount: 480000}, nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"final_amount":480000`,
		},
		{
			name:         "no items",
			body:         `{"items": [], "shipping_address": {"recipient": "Kim", "phone": "1", "address1": "Seoul"}}`,
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"items":"min"`,
		},
		{
			name:         "malformed body",
			body:         `{"items":`,
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"invalid request body"`,
		},
		{
			name: "service rejects order",
			body: validBody,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().PlaceCustomerOrder(mock.Anything, mock.Anything).
					Return(entities.Order{}, fmt.Errorf("%w: negative price", entities.ErrInvalidOrder)).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"invalid order"`,
		},
		{
			name: "product not on sale",
			body: validBody,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().PlaceCustomerOrder(mock.Anything, mock.Anything).
					Return(entities.Order{}, fmt.Errorf("%w: sofa is hidden", entities.ErrProductUnavailable)).Once()
			},
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   `"product is not available for sale"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockOrderService(t)
			tc.mockBehavior(svc)

			r := newRouter(handler.NewOrderHandler(discardLogger(), svc), customer)
			status, body := serve(t, r, http.MethodPost, "/api/orders", tc.body)

			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}

func TestOrderHandler_ListOrders(t *testing.T) {
	t.Run("parses filter and returns counts", func(t *testing.T) {
		svc := mocks.NewMockOrderService(t)
		wantFilter := entities.ListFilter{
			Search: "kim",
			From:   time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
			To:     time.Date(2026, 5, 8, 0, 0, 0, 0, time.UTC),
			Limit:  10,
			Offset: 20,
		}
		svc.EXPECT().ListOrders(mock.Anything, wantFilter).Return(entities.OrderList{
			Orders: []entities.Order{{ID: "o-1", Status: entities.OrderPending}},
			Total:  21,
			Counts: entities.StatusCounts{"all": 21, "pending": 21},
		}, nil).Once()

		r := newRouter(handler.NewOrderHandler(discardLogger(), svc), admin)
		status, body := serve(t, r, http.MethodGet,
			"/api/admin/orders?search=+kim+&from=2026-05-01&to=2026-05-07&status=all&limit=10&offset=20", "")

		require.Equal(t, http.StatusOK, status)

		var resp handler.OrderListResponse
		require.NoError(t, json.Unmarshal([]byte(body), &resp))
		assert.Equal(t, 21, resp.Total)
		assert.Equal(t, 21, resp.Counts["all"])
		assert.Len(t, resp.Orders, 1)
		assert.Equal(t, handler.PageDescription{Limit: 10, Offset: 20}, resp.Page)
	})

	t.Run("rfc3339 bounds are kept", func(t *testing.T) {
		svc := mocks.NewMockOrderService(t)
		svc.EXPECT().ListOrders(mock.Anything, mock.MatchedBy(func(f entities.ListFilter) bool {
			return f.To.Equal(time.Date(2026, 5, 7, 12, 0, 0, 0, time.UTC)) && f.Status == "shipped"
		})).Return(entities.OrderList{}, nil).Once()

		r := newRouter(handler.NewOrderHandler(discardLogger(), svc), admin)
		status, _ := serve(t, r, http.MethodGet, "/api/admin/orders?to=2026-05-07T12:00:00Z&status=shipped", "")

		assert.Equal(t, http.StatusOK, status)
	})

	t.Run("invalid date", func(t *testing.T) {
		r := newRouter(handler.NewOrderHandler(discardLogger(), mocks.NewMockOrderService(t)), admin)
		status, body := serve(t, r, http.MethodGet, "/api/admin/orders?from=yesterday", "")

		assert.Equal(t, http.StatusBadRequest, status)
		assert.Contains(t, body, "invalid query parameter")
	})

	t.Run("customers are forbidden", func(t *testing.T) {
		r := newRouter(handler.NewOrderHandler(discardLogger(), mocks.NewMockOrderService(t)), customer)
		status, _ := serve(t, r, http.MethodGet, "/api/admin/orders", "")

		assert.Equal(t, http.StatusForbidden, status)
	})
}

func TestOrderHandler_UpdateOrderStatus(t *testing.T) {
	testCases := []struct {
		name         string
		body         string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
		wantMessage  string
	}{
		{
			name: "ship with tracking",
			body: `{"status":"shipped","carrier":"CJ","tracking_number":"123456"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					UpdateOrderStatus(mock.Anything, mock.MatchedBy(func(u entities.OrderStatusUpdate) bool {
						return u.OrderID == "o-1" && u.ActorID == admin.UserID && u.Status == entities.OrderShipped &&
							u.Shipping != nil && u.Shipping.Carrier == "CJ" && u.Shipping.TrackingNumber == "123456"
					})).
					Return(entities.Order{ID: "o-1", Status: entities.OrderShipped}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"next_statuses":["delivered"]`,
		},
		{
			name: "no shipping info passes nil",
			body: `{"status":"preparing"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					UpdateOrderStatus(mock.Anything, mock.MatchedBy(func(u entities.OrderStatusUpdate) bool {
						return u.Shipping == nil
					})).
					Return(entities.Order{ID: "o-1", Status: entities.OrderPreparing}, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "invalid transition",
			body: `{"status":"preparing"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().UpdateOrderStatus(mock.Anything, mock.Anything).
					Return(entities.Order{}, fmt.Errorf("%w: delivered -> preparing", entities.ErrInvalidTransition)).Once()
			},
			wantStatus:  http.StatusUnprocessableEntity,
			wantMessage: "invalid status transition: delivered -> preparing",
		},
		{
			name: "missing tracking",
			body: `{"status":"shipped"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().UpdateOrderStatus(mock.Anything, mock.Anything).
					Return(entities.Order{}, entities.ErrShippingInfoRequired).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `carrier and tracking number are required`,
		},
		{
			name: "concurrent change",
			body: `{"status":"cancelled"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().UpdateOrderStatus(mock.Anything, mock.Anything).
					Return(entities.Order{}, entities.ErrStatusConflict).Once()
			},
			wantStatus: http.StatusConflict,
		},
		{
			name:         "status is required",
			body:         `{}`,
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"status":"required"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockOrderService(t)
			tc.mockBehavior(svc)

			r := newRouter(handler.NewOrderHandler(discardLogger(), svc), admin)
			status, body := serve(t, r, http.MethodPatch, "/api/admin/orders/o-1/status", tc.body)

			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)
			if tc.wantMessage != "" {
				var resp utils.ErrorResponse
				require.NoError(t, json.Unmarshal([]byte(body), &resp))
				assert.Equal(t, tc.wantMessage, resp.Message)
			}
		})
	}
}

func TestOrderHandler_ExportOrders(t *testing.T) {
	svc := mocks.NewMockOrderService(t)
	svc.EXPECT().ExportOrders(mock.Anything, mock.MatchedBy(func(f entities.ListFilter) bool {
		return f.Status == "delivered"
	})).Return([]entities.Order{{ID: "o-1", OrderNumber: "ORD-1", Status: entities.OrderDelivered}}, nil).Once()

	r := newRouter(handler.NewOrderHandler(discardLogger(), svc), admin)
	status, body := serve(t, r, http.MethodGet, "/api/admin/orders/export?status=delivered", "")

	require.Equal(t, http.StatusOK, status)
	// xlsx is a zip archive
	assert.True(t, strings.HasPrefix(body, "PK"))
}

func TestOrderHandler_OrderHistory(t *testing.T) {
	svc := mocks.NewMockOrderService(t)
	svc.EXPECT().OrderHistory(mock.Anything, "o-1").Return([]entities.StatusEvent{
		{ID: "e-1", ToStatus: "pending"},
		{ID: "e-2", FromStatus: "pending", ToStatus: "preparing", ActorID: admin.UserID},
	}, nil).Once()
	svc.EXPECT().OrderHistory(mock.Anything, "missing").Return(nil, entities.ErrOrderNotFound).Once()

	r := newRouter(handler.NewOrderHandler(discardLogger(), svc), admin)

	status, body := serve(t, r, http.MethodGet, "/api/admin/orders/o-1/history", "")
	require.Equal(t, http.StatusOK, status)

	var events []handler.StatusEvent
	require.NoError(t, json.Unmarshal([]byte(body), &events))
	assert.Len(t, events, 2)
	assert.Equal(t, "preparing", events[1].ToStatus)

	status, _ = serve(t, r, http.MethodGet, "/api/admin/orders/missing/history", "")
	assert.Equal(t, http.StatusNotFound, status)
}
