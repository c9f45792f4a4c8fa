package handler_test

import (
	"net/http"
	"testing"

	"github.com/SergeyBogomolovv/furniture-resale/internal/auth"
	"github.com/SergeyBogomolovv/furniture-resale/internal/entities"
	"github.com/SergeyBogomolovv/furniture-resale/internal/handler"
	mocks "github.com/SergeyBogomolovv/furniture-resale/internal/handler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestReturnHandler_CreateReturn(t *testing.T) {
	validBody := `{"order_id":"o-1","items":[{"product_id":"sofa","quantity":1}],"reason":"defective","return_method":"pickup"}`

	testCases := []struct {
		name         string
		body         string
		mockBehavior func(svc *mocks.MockReturnService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "created",
			body: validBody,
			mockBehavior: func(svc *mocks.MockReturnService) {
				svc.EXPECT().
					CreateReturn(mock.Anything, mock.MatchedBy(func(r entities.ReturnRequest) bool {
						return r.CustomerID == customer.UserID && r.OrderID == "o-1" &&
							r.Reason == entities.ReasonDefective && r.ReturnMethod == entities.MethodPickup
					})).
					Return(entities.ReturnRequest{ID: "r-1", Status: entities.ReturnRequested, RefundAmount: 450000}, nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"status_display":{"label":"Return requested"`,
		},
		{
			name: "order not delivered",
			body: validBody,
			mockBehavior: func(svc *mocks.MockReturnService) {
				svc.EXPECT().CreateReturn(mock.Anything, mock.Anything).
					Return(entities.ReturnRequest{}, entities.ErrOrderNotReturnable).Once()
			},
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   `"only delivered orders are eligible for return"`,
		},
		{
			name: "already open",
			body: validBody,
			mockBehavior: func(svc *mocks.MockReturnService) {
				svc.EXPECT().CreateReturn(mock.Anything, mock.Anything).
					Return(entities.ReturnRequest{}, entities.ErrReturnAlreadyRequested).Once()
			},
			wantStatus: http.StatusConflict,
		},
		{
			name:         "unknown reason",
			body:         `{"order_id":"o-1","items":[{"product_id":"sofa","quantity":1}],"reason":"bored","return_method":"pickup"}`,
			mockBehavior: func(svc *mocks.MockReturnService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"reason":"oneof"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockReturnService(t)
			tc.mockBehavior(svc)

			r := newRouter(handler.NewReturnHandler(discardLogger(), svc), customer)
			status, body := serve(t, r, http.MethodPost, "/api/returns", tc.body)

			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}

func TestReturnHandler_GetReturn(t *testing.T) {
	ret := entities.ReturnRequest{ID: "r-1", CustomerID: customer.UserID, Status: entities.ReturnApproved}

	testCases := []struct {
		name       string
		principal  *auth.Principal
		wantStatus int
	}{
		{name: "owner", principal: customer, wantStatus: http.StatusOK},
		{name: "admin", principal: admin, wantStatus: http.StatusOK},
		{name: "someone else", principal: dealer, wantStatus: http.StatusNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockReturnService(t)
			svc.EXPECT().GetReturnByID(mock.Anything, "r-1").Return(ret, nil).Once()

			r := newRouter(handler.NewReturnHandler(discardLogger(), svc), tc.principal)
			status, _ := serve(t, r, http.MethodGet, "/api/returns/r-1", "")

			assert.Equal(t, tc.wantStatus, status)
		})
	}
}

func TestReturnHandler_UpdateReturnStatus(t *testing.T) {
	testCases := []struct {
		name         string
		body         string
		mockBehavior func(svc *mocks.MockReturnService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "refund with amount override",
			body: `{"status":"refunded","refund_amount":100000}`,
			mockBehavior: func(svc *mocks.MockReturnService) {
				svc.EXPECT().
					UpdateReturnStatus(mock.Anything, mock.MatchedBy(func(u entities.ReturnStatusUpdate) bool {
						return u.ReturnID == "r-1" && u.Status == entities.ReturnRefunded &&
							u.RefundAmount != nil && *u.RefundAmount == 100000 && u.ActorID == admin.UserID
					})).
					Return(entities.ReturnRequest{ID: "r-1", Status: entities.ReturnRefunded, RefundAmount: 100000}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"next_statuses":[]`,
		},
		{
			name: "rejection without reason",
			body: `{"status":"rejected"}`,
			mockBehavior: func(svc *mocks.MockReturnService) {
				svc.EXPECT().UpdateReturnStatus(mock.Anything, mock.Anything).
					Return(entities.ReturnRequest{}, entities.ErrRejectionReasonRequired).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"rejection reason is required"`,
		},
		{
			name: "refund above order amount",
			body: `{"status":"refunded","refund_amount":99999999}`,
			mockBehavior: func(svc *mocks.MockReturnService) {
				svc.EXPECT().UpdateReturnStatus(mock.Anything, mock.Anything).
					Return(entities.ReturnRequest{}, entities.ErrInvalidRefundAmount).Once()
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:         "zero refund amount",
			body:         `{"status":"refunded","refund_amount":0}`,
			mockBehavior: func(svc *mocks.MockReturnService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"refund_amount":"gt"`,
		},
		{
			name: "not found",
			body: `{"status":"approved"}`,
			mockBehavior: func(svc *mocks.MockReturnService) {
				svc.EXPECT().UpdateReturnStatus(mock.Anything, mock.Anything).
					Return(entities.ReturnRequest{}, entities.ErrReturnNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockReturnService(t)
			tc.mockBehavior(svc)

			r := newRouter(handler.NewReturnHandler(discardLogger(), svc), admin)
			status, body := serve(t, r, http.MethodPatch, "/api/admin/returns/r-1/status", tc.body)

			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}

func TestReturnHandler_ListReturns(t *testing.T) {
	svc := mocks.NewMockReturnService(t)
	svc.EXPECT().ListReturns(mock.Anything, mock.MatchedBy(func(f entities.ListFilter) bool {
		return f.Status == "requested" && f.Search == "o-1"
	})).Return(entities.ReturnList{
		Returns: []entities.ReturnRequest{{ID: "r-1", Status: entities.ReturnRequested}},
		Total:   1,
		Counts:  entities.StatusCounts{"all": 3, "requested": 1, "approved": 2},
	}, nil).Once()

	r := newRouter(handler.NewReturnHandler(discardLogger(), svc), admin)
	status, body := serve(t, r, http.MethodGet, "/api/admin/returns?status=requested&search=o-1", "")

	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `"all":3`)
}
