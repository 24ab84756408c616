package http

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/logiflow/logiflow"
	"github.com/logiflow/logiflow/kit/platform/errors"
)

func TestDecodeFindOptions(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		want    logiflow.FindOptions
		wantErr string
	}{
		{
			name:  "defaults",
			query: "",
			want:  logiflow.FindOptions{Page: 1, Limit: logiflow.DefaultPageSize},
		},
		{
			name:  "explicit page and limit",
			query: "page=3&limit=25",
			want:  logiflow.FindOptions{Page: 3, Limit: 25},
		},
		{
			name:  "limit at the maximum",
			query: "limit=100",
			want:  logiflow.FindOptions{Page: 1, Limit: 100},
		},
		{
			name:    "page zero",
			query:   "page=0",
			wantErr: "page must be a positive integer",
		},
		{
			name:    "page not a number",
			query:   "page=abc",
			wantErr: "page must be a positive integer",
		},
		{
			name:    "limit zero",
			query:   "limit=0",
			wantErr: "limit must be between 1 and 100",
		},
		{
			name:    "limit past the maximum",
			query:   "limit=101",
			wantErr: "limit must be between 1 and 100",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/api/orders?"+tt.query, nil)
			opts, err := decodeFindOptions(context.Background(), r)
			if tt.wantErr != "" {
				require.Error(t, err)
				require.Equal(t, errors.EInvalid, errors.ErrorCode(err))
				require.Equal(t, tt.wantErr, errors.ErrorMessage(err))
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, *opts)
		})
	}
}

func TestDecodeFindFilter(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/orders?status=pending&search=acme&dateFrom=2024-03-01T00:00:00Z&dateTo=2024-03-31T23:59:59Z", nil)
	f, err := decodeFindFilter(context.Background(), r)
	require.NoError(t, err)
	require.Equal(t, "pending", f.Status)
	require.Equal(t, "acme", f.Search)
	require.Equal(t, "2024-03-01T00:00:00Z", f.DateFrom.Format("2006-01-02T15:04:05Z07:00"))
	require.Equal(t, "2024-03-31T23:59:59Z", f.DateTo.Format("2006-01-02T15:04:05Z07:00"))

	r = httptest.NewRequest("GET", "/api/orders?dateFrom=yesterday", nil)
	_, err = decodeFindFilter(context.Background(), r)
	require.Error(t, err)
	require.Equal(t, errors.EInvalid, errors.ErrorCode(err))
}

func TestPaginate(t *testing.T) {
	rows := []int{1, 2, 3, 4, 5}

	page, pagination := paginate(rows, logiflow.FindOptions{Page: 2, Limit: 2})
	require.Equal(t, []int{3, 4}, page)
	require.Equal(t, logiflow.Pagination{Page: 2, Limit: 2, Total: 5, TotalPages: 3}, pagination)

	page, pagination = paginate(rows, logiflow.FindOptions{Page: 4, Limit: 2})
	require.Empty(t, page)
	require.Equal(t, 5, pagination.Total)

	page, pagination = paginate([]int{}, logiflow.FindOptions{Page: 1, Limit: 10})
	require.Empty(t, page)
	require.Equal(t, logiflow.Pagination{Page: 1, Limit: 10, Total: 0, TotalPages: 0}, pagination)
}
