package domain

const (
	// DefaultPageSize matches the 3x3 grid on the projects page.
	DefaultPageSize = 9
	// MaxPageSize keeps a single request from paging the whole table.
	MaxPageSize = 100
)

// FilterField identifies a filterable attribute. The repository maps
// each field to its SQL expression; the domain only knows the set.
type FilterField int

const (
	FieldCategory FilterField = iota
	FieldRegion
	FieldCompletionYear
)

// Condition is one equality predicate. Conditions from a filter are
// always combined with AND: a project must satisfy every one.
type Condition struct {
	Field FilterField
	Value any
}

// ListFilter is the request-scoped parameter object for the catalog
// listing: zero or more equality filters plus 1-based pagination.
// A zero ListFilter matches the whole collection.
type ListFilter struct {
	Category string
	Region   string
	Year     int
	Page     int
	PageSize int
}

// Normalize applies pagination defaults. Page values below 1 become 1
// and the page size is clamped to (0, MaxPageSize].
func (f ListFilter) Normalize() ListFilter {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize <= 0 {
		f.PageSize = DefaultPageSize
	}
	if f.PageSize > MaxPageSize {
		f.PageSize = MaxPageSize
	}
	return f
}

// Conditions returns the active predicates. The "all" sentinel and
// empty strings mean no constraint; a zero year means no constraint.
func (f ListFilter) Conditions() []Condition {
	var conds []Condition
	if f.Category != "" && f.Category != CategoryAll {
		conds = append(conds, Condition{Field: FieldCategory, Value: f.Category})
	}
	if f.Region != "" && f.Region != CategoryAll {
		conds = append(conds, Condition{Field: FieldRegion, Value: f.Region})
	}
	if f.Year != 0 {
		conds = append(conds, Condition{Field: FieldCompletionYear, Value: f.Year})
	}
	return conds
}

// Offset converts the 1-based page to a row offset.
func (f ListFilter) Offset() int {
	return (f.Page - 1) * f.PageSize
}

// PageCount is ceil(total/pageSize); 0 when nothing matches.
func PageCount(total, pageSize int) int {
	if total <= 0 || pageSize <= 0 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}
