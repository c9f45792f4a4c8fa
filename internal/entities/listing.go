package entities

import "time"

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// ListFilter narrows an admin list by free text, creation date and status tab.
// Zero From/To mean an open range; To is exclusive.
type ListFilter struct {
	Search string
	From   time.Time
	To     time.Time
	Status string
	Limit  uint64
	Offset uint64
}

// Page clamps the limit to the allowed page size.
func (f ListFilter) Page() (limit, offset uint64) {
	limit = f.Limit
	if limit == 0 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	return limit, f.Offset
}

// StatusCounts holds the number of entities per status plus the "all" total.
type StatusCounts map[string]int

const CountAll = "all"

type OrderList struct {
	Orders []Order
	Total  int
	Counts StatusCounts
}

type ReturnList struct {
	Returns []ReturnRequest
	Total   int
	Counts  StatusCounts
}

type ChatList struct {
	Sessions []ChatSession
	Total    int
	Counts   StatusCounts
}
