package shared

import "context"

// Transactor runs fn with every repository call made through the returned
// context inside one database transaction. If fn returns an error the
// transaction rolls back and the error is returned unchanged.
type Transactor interface {
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// Filter represents query filter options shared by list operations
type Filter struct {
	Page     int
	PageSize int
	OrderBy  string
	OrderDir string
	Search   string
}

// DefaultFilter returns a filter with default values
func DefaultFilter() Filter {
	return Filter{
		Page:     1,
		PageSize: 20,
		OrderBy:  "created_at",
		OrderDir: "desc",
	}
}

// Normalize fills in zero values with defaults and clamps the page size
func (f *Filter) Normalize() {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.PageSize <= 0 {
		f.PageSize = 20
	}
	if f.PageSize > 100 {
		f.PageSize = 100
	}
	if f.OrderBy == "" {
		f.OrderBy = "created_at"
	}
	if f.OrderDir != "asc" && f.OrderDir != "desc" {
		f.OrderDir = "desc"
	}
}

// Offset returns the SQL offset for the filter
func (f Filter) Offset() int {
	return (f.Page - 1) * f.PageSize
}
