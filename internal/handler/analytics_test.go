package handler_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/furniture-resale/internal/entities"
	"github.com/SergeyBogomolovv/furniture-resale/internal/handler"
	mocks "github.com/SergeyBogomolovv/furniture-resale/internal/handler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAnalyticsHandler_Dashboard(t *testing.T) {
	svc := mocks.NewMockAnalyticsService(t)
	from := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	svc.EXPECT().Dashboard(mock.Anything, from, to).Return(entities.Dashboard{
		Summary:        entities.SalesSummary{Orders: 2, Revenue: 900000},
		OrderCounts:    entities.StatusCounts{"all": 2, "delivered": 2},
		ReturnCounts:   entities.StatusCounts{"all": 0},
		TopProducts:    []entities.ProductSales{},
		DailySales:     []entities.DailySales{{Day: from, Orders: 2, Revenue: 900000}},
		FailedSegments: []string{"top_products"},
	}).Once()

	r := newRouter(handler.NewAnalyticsHandler(discardLogger(), svc), admin)
	status, body := serve(t, r, http.MethodGet, "/api/admin/analytics/dashboard?from=2026-04-01&to=2026-04-30", "")

	require.Equal(t, http.StatusOK, status)

	var resp handler.Dashboard
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	assert.Equal(t, []string{"top_products"}, resp.FailedSegments)
	assert.Equal(t, "2026-04-01", resp.DailySales[0].Day)
	assert.Equal(t, int64(900000), resp.Summary.Revenue)
}

func TestAnalyticsHandler_DashboardRequiresAdmin(t *testing.T) {
	r := newRouter(handler.NewAnalyticsHandler(discardLogger(), mocks.NewMockAnalyticsService(t)), dealer)
	status, _ := serve(t, r, http.MethodGet, "/api/admin/analytics/dashboard", "")

	assert.Equal(t, http.StatusForbidden, status)
}

func TestAnalyticsHandler_Statuses(t *testing.T) {
	r := newRouter(handler.NewAnalyticsHandler(discardLogger(), mocks.NewMockAnalyticsService(t)), nil)
	status, body := serve(t, r, http.MethodGet, "/api/statuses", "")

	require.Equal(t, http.StatusOK, status)

	var resp handler.StatusVocabulary
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	require.Len(t, resp.Order, len(entities.OrderStatuses))
	require.Len(t, resp.Return, len(entities.ReturnStatuses))
	require.Len(t, resp.Chat, len(entities.ChatStatuses))

	pending := resp.Order[0]
	assert.Equal(t, "pending", pending.Value)
	assert.Equal(t, "Payment complete", pending.Label)
	assert.Equal(t, []string{"preparing", "cancelled"}, pending.Next)

	refunded := resp.Return[len(resp.Return)-1]
	assert.Equal(t, "refunded", refunded.Value)
	assert.Empty(t, refunded.Next)
}
