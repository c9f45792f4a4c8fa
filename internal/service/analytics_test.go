package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/furniture-resale/internal/config"
	"github.com/SergeyBogomolovv/furniture-resale/internal/entities"
	"github.com/SergeyBogomolovv/furniture-resale/internal/service"
	mocks "github.com/SergeyBogomolovv/furniture-resale/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var analyticsConfig = config.Analytics{Timeout: time.Second, TopLimit: 5, DailyDays: 30}

func TestAnalyticsService_Dashboard(t *testing.T) {
	from := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	summary := entities.SalesSummary{Orders: 4, Revenue: 400000, AverageOrder: 100000}

	t.Run("all segments load", func(t *testing.T) {
		repo := mocks.NewMockAnalyticsRepo(t)
		repo.EXPECT().SalesSummary(mock.Anything, from, to).Return(summary, nil)
		repo.EXPECT().CountOrdersByStatus(mock.Anything, entities.ListFilter{From: from, To: to}).
			Return(map[string]int{"pending": 1, "delivered": 3}, nil)
		repo.EXPECT().CountReturnsByStatus(mock.Anything, mock.Anything).Return(map[string]int{"requested": 1}, nil)
		repo.EXPECT().TopProducts(mock.Anything, from, to, 5).Return([]entities.ProductSales{{ProductID: "p-1", Quantity: 3}}, nil)
		repo.EXPECT().DailySales(mock.Anything, from, to).Return([]entities.DailySales{{Day: from, Orders: 4}}, nil)

		got := service.NewAnalyticsService(discardLogger(), repo, analyticsConfig).Dashboard(context.Background(), from, to)

		assert.Equal(t, summary, got.Summary)
		assert.Equal(t, 4, got.OrderCounts["all"])
		assert.Equal(t, 0, got.OrderCounts["shipped"])
		assert.Equal(t, 1, got.ReturnCounts["all"])
		assert.Len(t, got.TopProducts, 1)
		assert.Len(t, got.DailySales, 1)
		assert.Empty(t, got.FailedSegments)
	})

	t.Run("failed segments fall back to defaults", func(t *testing.T) {
		repo := mocks.NewMockAnalyticsRepo(t)
		dbError := errors.New("db error")
		repo.EXPECT().SalesSummary(mock.Anything, from, to).Return(summary, nil)
		repo.EXPECT().CountOrdersByStatus(mock.Anything, mock.Anything).Return(nil, dbError)
		repo.EXPECT().CountReturnsByStatus(mock.Anything, mock.Anything).Return(map[string]int{}, nil)
		repo.EXPECT().TopProducts(mock.Anything, from, to, 5).Return(nil, dbError)
		repo.EXPECT().DailySales(mock.Anything, from, to).Return(nil, nil)

		got := service.NewAnalyticsService(discardLogger(), repo, analyticsConfig).Dashboard(context.Background(), from, to)

		assert.Equal(t, []string{service.SegmentOrderCounts, service.SegmentTopProducts}, got.FailedSegments)
		assert.Equal(t, summary, got.Summary)
		assert.Equal(t, 0, got.OrderCounts["all"])
		assert.Contains(t, got.OrderCounts, "pending")
		assert.NotNil(t, got.TopProducts)
		assert.Empty(t, got.TopProducts)
		assert.NotNil(t, got.DailySales)
	})

	t.Run("default range", func(t *testing.T) {
		repo := mocks.NewMockAnalyticsRepo(t)
		inRange := mock.MatchedBy(func(from time.Time) bool {
			return time.Since(from) > 29*24*time.Hour && time.Since(from) < 31*24*time.Hour
		})
		repo.EXPECT().SalesSummary(mock.Anything, inRange, mock.Anything).Return(entities.SalesSummary{}, nil)
		repo.EXPECT().CountOrdersByStatus(mock.Anything, mock.Anything).Return(nil, nil)
		repo.EXPECT().CountReturnsByStatus(mock.Anything, mock.Anything).Return(nil, nil)
		repo.EXPECT().TopProducts(mock.Anything, inRange, mock.Anything, 5).Return(nil, nil)
		repo.EXPECT().DailySales(mock.Anything, inRange, mock.Anything).Return(nil, nil)

		got := service.NewAnalyticsService(discardLogger(), repo, analyticsConfig).Dashboard(context.Background(), time.Time{}, time.Time{})
		assert.Empty(t, got.FailedSegments)
	})
}
