package entities

import "time"

type SalesSummary struct {
	Orders         int
	Revenue        int64
	AverageOrder   int64
	CancelledCount int
	RefundedAmount int64
}

type ProductSales struct {
	ProductID string
	Name      string
	Quantity  int
	Revenue   int64
}

type DailySales struct {
	Day     time.Time
	Orders  int
	Revenue int64
}

// Dashboard aggregates independent analytics segments. A segment that failed
// to load keeps its zero value and is listed in FailedSegments.
type Dashboard struct {
	Summary        SalesSummary
	OrderCounts    StatusCounts
	ReturnCounts   StatusCounts
	TopProducts    []ProductSales
	DailySales     []DailySales
	FailedSegments []string
}
