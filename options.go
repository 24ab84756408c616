package logiflow

const (
	// DefaultPageSize is used when no limit query parameter is supplied.
	DefaultPageSize = 10

	// MaxPageSize is the largest number of rows a list endpoint returns.
	MaxPageSize = 100
)

// FindOptions represents options passed to all find methods with multiple results.
type FindOptions struct {
	Page  int
	Limit int
}

// Skip is the number of rows before the requested page.
func (o FindOptions) Skip() int {
	return (o.Page - 1) * o.Limit
}

// Pagination is the metadata attached to every list response.
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// NewPagination describes the page of a result set with total rows after filtering.
func NewPagination(opts FindOptions, total int) Pagination {
	totalPages := 0
	if opts.Limit > 0 {
		totalPages = (total + opts.Limit - 1) / opts.Limit
	}
	return Pagination{
		Page:       opts.Page,
		Limit:      opts.Limit,
		Total:      total,
		TotalPages: totalPages,
	}
}
