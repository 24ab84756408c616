package http

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/logiflow/logiflow"
	"github.com/logiflow/logiflow/kit/platform/errors"
)

// decodeFindOptions returns a FindOptions decoded from http request query
// parameters. Absent parameters fall back to the defaults; out-of-range
// values are rejected rather than clamped.
func decodeFindOptions(ctx context.Context, r *http.Request) (*logiflow.FindOptions, error) {
	opts := &logiflow.FindOptions{
		Page:  1,
		Limit: logiflow.DefaultPageSize,
	}
	qp := r.URL.Query()

	if page := qp.Get("page"); page != "" {
		p, err := strconv.Atoi(page)
		if err != nil || p < 1 {
			return nil, &errors.Error{
				Code: errors.EInvalid,
				Msg:  "page must be a positive integer",
			}
		}
		opts.Page = p
	}

	if limit := qp.Get("limit"); limit != "" {
		l, err := strconv.Atoi(limit)
		if err != nil || l < 1 || l > logiflow.MaxPageSize {
			return nil, &errors.Error{
				Code: errors.EInvalid,
				Msg:  "limit must be between 1 and " + strconv.Itoa(logiflow.MaxPageSize),
			}
		}
		opts.Limit = l
	}

	return opts, nil
}

// findFilter is the filter set shared by the list endpoints. Status is an
// exact match, search a case-insensitive substring over entity-specific
// fields, and the date range binds inclusively on createdAt.
type findFilter struct {
	Status   string
	Search   string
	DateFrom *time.Time
	DateTo   *time.Time
}

// decodeFindFilter returns a findFilter decoded from http request query
// parameters.
func decodeFindFilter(ctx context.Context, r *http.Request) (*findFilter, error) {
	f := &findFilter{}
	qp := r.URL.Query()

	f.Status = qp.Get("status")
	f.Search = qp.Get("search")

	if v := qp.Get("dateFrom"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return nil, &errors.Error{
				Code: errors.EInvalid,
				Msg:  "dateFrom must be an RFC 3339 timestamp",
				Err:  err,
			}
		}
		f.DateFrom = &t
	}

	if v := qp.Get("dateTo"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return nil, &errors.Error{
				Code: errors.EInvalid,
				Msg:  "dateTo must be an RFC 3339 timestamp",
				Err:  err,
			}
		}
		f.DateTo = &t
	}

	return f, nil
}

// inDateRange reports whether t satisfies the filter's inclusive bounds.
func (f *findFilter) inDateRange(t time.Time) bool {
	if f.DateFrom != nil && t.Before(*f.DateFrom) {
		return false
	}
	if f.DateTo != nil && t.After(*f.DateTo) {
		return false
	}
	return true
}

// paginate slices rows to the requested page. Pages past the end yield an
// empty slice with the post-filter total untouched.
func paginate[T any](rows []T, opts logiflow.FindOptions) ([]T, logiflow.Pagination) {
	total := len(rows)
	start := opts.Skip()
	if start > total {
		start = total
	}
	end := start + opts.Limit
	if end > total {
		end = total
	}
	return rows[start:end], logiflow.NewPagination(opts, total)
}
