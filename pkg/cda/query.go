package cda

import (
	"net/url"
	"strconv"
	"strings"
)

// QueryParams represents query parameters for entry and asset collection
// requests: content-type filtering, ordering, paging, link resolution depth,
// and raw field filters.
type QueryParams struct {
	ContentType string
	Query       string
	Order       string
	Select      []string
	Limit       int
	Skip        int
	Include     int

	// Filters maps a raw parameter name to its value, e.g.
	// "fields.name" -> "Nyan Cat" or "fields.likes[in]" -> "rainbows".
	Filters map[string]string
}

// NewQueryParams creates a new empty QueryParams.
func NewQueryParams() *QueryParams {
	return &QueryParams{}
}

// WithContentType restricts results to entries of the given content type.
func (q *QueryParams) WithContentType(id string) *QueryParams {
	q.ContentType = id

	return q
}

// WithQuery sets a full-text search query.
func (q *QueryParams) WithQuery(query string) *QueryParams {
	q.Query = query

	return q
}

// WithOrder sets the result ordering, e.g. "-sys.createdAt".
func (q *QueryParams) WithOrder(order string) *QueryParams {
	q.Order = order

	return q
}

// WithSelect limits the returned fields.
func (q *QueryParams) WithSelect(fields ...string) *QueryParams {
	q.Select = append(q.Select, fields...)

	return q
}

// WithLimit caps the number of returned items.
func (q *QueryParams) WithLimit(limit int) *QueryParams {
	q.Limit = limit

	return q
}

// WithSkip skips items for offset paging.
func (q *QueryParams) WithSkip(skip int) *QueryParams {
	q.Skip = skip

	return q
}

// WithInclude sets the link resolution depth.
func (q *QueryParams) WithInclude(levels int) *QueryParams {
	q.Include = levels

	return q
}

// WithFilter adds a raw field filter, e.g. ("fields.name", "Nyan Cat").
func (q *QueryParams) WithFilter(name, value string) *QueryParams {
	if q.Filters == nil {
		q.Filters = make(map[string]string)
	}

	q.Filters[name] = value

	return q
}

// ToValues converts the parameters to url.Values.
func (q *QueryParams) ToValues() url.Values {
	values := url.Values{}

	if q.ContentType != "" {
		values.Set("content_type", q.ContentType)
	}

	if q.Query != "" {
		values.Set("query", q.Query)
	}

	if q.Order != "" {
		values.Set("order", q.Order)
	}

	if len(q.Select) > 0 {
		values.Set("select", strings.Join(q.Select, ","))
	}

	if q.Limit > 0 {
		values.Set("limit", strconv.Itoa(q.Limit))
	}

	if q.Skip > 0 {
		values.Set("skip", strconv.Itoa(q.Skip))
	}

	if q.Include > 0 {
		values.Set("include", strconv.Itoa(q.Include))
	}

	for name, value := range q.Filters {
		values.Set(name, value)
	}

	return values
}
