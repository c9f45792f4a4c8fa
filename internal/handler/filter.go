package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/furniture-resale/internal/entities"
)

var errInvalidQuery = errors.New("invalid query parameter")

// parseListFilter reads the admin list query: search, from, to, status, limit
// and offset. Dates are either YYYY-MM-DD or RFC 3339; a date-only "to"
// includes the whole day. The "all" tab means no status filter.
func parseListFilter(r *http.Request) (entities.ListFilter, error) {
	q := r.URL.Query()

	f := entities.ListFilter{
		Search: strings.TrimSpace(q.Get("search")),
		Status: strings.TrimSpace(q.Get("status")),
	}
	if f.Status == entities.CountAll {
		f.Status = ""
	}

	var err error
	if f.From, _, err = parseDate(q.Get("from")); err != nil {
		return entities.ListFilter{}, err
	}
	to, dateOnly, err := parseDate(q.Get("to"))
	if err != nil {
		return entities.ListFilter{}, err
	}
	if dateOnly {
		to = to.AddDate(0, 0, 1)
	}
	f.To = to

	if f.Limit, f.Offset, err = parsePage(r); err != nil {
		return entities.ListFilter{}, err
	}
	return f, nil
}

func parseDate(s string) (t time.Time, dateOnly bool, err error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false, nil
	}
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, true, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), false, nil
	}
	return time.Time{}, false, errInvalidQuery
}

func parsePage(r *http.Request) (limit, offset uint64, err error) {
	q := r.URL.Query()
	if v := q.Get("limit"); v != "" {
		if limit, err = strconv.ParseUint(v, 10, 64); err != nil {
			return 0, 0, errInvalidQuery
		}
	}
	if v := q.Get("offset"); v != "" {
		if offset, err = strconv.ParseUint(v, 10, 64); err != nil {
			return 0, 0, errInvalidQuery
		}
	}
	return limit, offset, nil
}

func pageOf(f entities.ListFilter) PageDescription {
	limit, offset := f.Page()
	return PageDescription{Limit: limit, Offset: offset}
}
