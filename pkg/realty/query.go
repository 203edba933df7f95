package realty

import (
	"net/url"
	"strconv"
	"strings"
)

// QueryParams expresses common list options. The zero value sends no query
// parameters.
type QueryParams struct {
	// Limit caps the number of records returned.
	Limit int
	// Offset skips the given number of records.
	Offset int
	// OrderBy names the field to sort by. Prefix with "-" for descending.
	OrderBy string
	// Search is a free-text search term.
	Search string
	// Filters holds field filters, e.g. {"status": ["listed", "sold"]}.
	Filters map[string][]string
}

// NewQueryParams creates an empty QueryParams.
func NewQueryParams() *QueryParams {
	return &QueryParams{
		Filters: make(map[string][]string),
	}
}

// WithLimit sets the record limit.
func (q *QueryParams) WithLimit(limit int) *QueryParams {
	q.Limit = limit

	return q
}

// WithOffset sets the record offset.
func (q *QueryParams) WithOffset(offset int) *QueryParams {
	q.Offset = offset

	return q
}

// WithOrderBy sets the sort field.
func (q *QueryParams) WithOrderBy(field string) *QueryParams {
	q.OrderBy = field

	return q
}

// WithSearch sets the free-text search term.
func (q *QueryParams) WithSearch(term string) *QueryParams {
	q.Search = term

	return q
}

// WithFilter adds a filter value for the given field.
func (q *QueryParams) WithFilter(field, value string) *QueryParams {
	if q.Filters == nil {
		q.Filters = make(map[string][]string)
	}

	q.Filters[field] = append(q.Filters[field], value)

	return q
}

// ToValues converts the params to url.Values. Multi-valued filters are
// joined with commas, matching the upstream convention.
func (q *QueryParams) ToValues() url.Values {
	values := url.Values{}

	if q.Limit > 0 {
		values.Set("limit", strconv.Itoa(q.Limit))
	}

	if q.Offset > 0 {
		values.Set("offset", strconv.Itoa(q.Offset))
	}

	if q.OrderBy != "" {
		values.Set("order_by", q.OrderBy)
	}

	if q.Search != "" {
		values.Set("search", q.Search)
	}

	for field, filterValues := range q.Filters {
		if len(filterValues) > 0 {
			values.Set(field, strings.Join(filterValues, ","))
		}
	}

	return values
}
