package service

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/SergeyBogomolovv/furniture-resale/internal/config"
	"github.com/SergeyBogomolovv/furniture-resale/internal/entities"
	"github.com/SergeyBogomolovv/furniture-resale/internal/listing"

	"golang.org/x/sync/errgroup"
)

const (
	SegmentSummary      = "summary"
	SegmentOrderCounts  = "order_counts"
	SegmentReturnCounts = "return_counts"
	SegmentTopProducts  = "top_products"
	SegmentDailySales   = "daily_sales"
)

type AnalyticsRepo interface {
	SalesSummary(ctx context.Context, from, to time.Time) (entities.SalesSummary, error)
	TopProducts(ctx context.Context, from, to time.Time, limit int) ([]entities.ProductSales, error)
	DailySales(ctx context.Context, from, to time.Time) ([]entities.DailySales, error)
	CountOrdersByStatus(ctx context.Context, f entities.ListFilter) (map[string]int, error)
	CountReturnsByStatus(ctx context.Context, f entities.ListFilter) (map[string]int, error)
}

type analyticsService struct {
	logger *slog.Logger
	repo   AnalyticsRepo
	cfg    config.Analytics
}

func NewAnalyticsService(logger *slog.Logger, repo AnalyticsRepo, cfg config.Analytics) *analyticsService {
	return &analyticsService{
		logger: logger.With(slog.String("service", "analytics")),
		repo:   repo,
		cfg:    cfg,
	}
}

// Dashboard loads every segment concurrently. A failed segment keeps its
// empty default and is reported in FailedSegments; it never fails the whole
// dashboard.
func (s *analyticsService) Dashboard(ctx context.Context, from, to time.Time) entities.Dashboard {
	if to.IsZero() {
		to = time.Now().UTC()
	}
	if from.IsZero() {
		from = to.AddDate(0, 0, -s.cfg.DailyDays)
	}

	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}

	dash := entities.Dashboard{
		OrderCounts:  listing.Normalize(nil, entities.Strings(entities.OrderStatuses)),
		ReturnCounts: listing.Normalize(nil, entities.Strings(entities.ReturnStatuses)),
		TopProducts:  []entities.ProductSales{},
		DailySales:   []entities.DailySales{},
	}
	filter := entities.ListFilter{From: from, To: to}

	var (
		g      errgroup.Group
		mu     sync.Mutex
		failed []string
	)
	segment := func(name string, load func() error) {
		g.Go(func() error {
			if err := load(); err != nil {
				s.logger.Error("failed to load dashboard segment", slog.String("segment", name), slog.Any("error", err))
				dashboardSegmentsFailed.WithLabelValues(name).Inc()
				mu.Lock()
				failed = append(failed, name)
				mu.Unlock()
			}
			return nil
		})
	}

	// every segment writes only its own field
	segment(SegmentSummary, func() error {
		summary, err := s.repo.SalesSummary(ctx, from, to)
		if err == nil {
			dash.Summary = summary
		}
		return err
	})
	segment(SegmentOrderCounts, func() error {
		grouped, err := s.repo.CountOrdersByStatus(ctx, filter)
		if err == nil {
			dash.OrderCounts = listing.Normalize(grouped, entities.Strings(entities.OrderStatuses))
		}
		return err
	})
	segment(SegmentReturnCounts, func() error {
		grouped, err := s.repo.CountReturnsByStatus(ctx, filter)
		if err == nil {
			dash.ReturnCounts = listing.Normalize(grouped, entities.Strings(entities.ReturnStatuses))
		}
		return err
	})
	segment(SegmentTopProducts, func() error {
		top, err := s.repo.TopProducts(ctx, from, to, s.cfg.TopLimit)
		if err == nil && top != nil {
			dash.TopProducts = top
		}
		return err
	})
	segment(SegmentDailySales, func() error {
		daily, err := s.repo.DailySales(ctx, from, to)
		if err == nil && daily != nil {
			dash.DailySales = daily
		}
		return err
	})

	_ = g.Wait()

	slices.Sort(failed)
	dash.FailedSegments = failed
	if dash.FailedSegments == nil {
		dash.FailedSegments = []string{}
	}
	return dash
}
