package adapter

import (
	"net/url"
	"strconv"
)

// Filter is one column predicate. Op is a PostgREST operator such as "eq".
type Filter struct {
	Column string
	Op     string
	Value  string
}

// Query describes a row selection on one table.
//
//	adapter.NewQuery("trips").Eq("user_id", id).OrderBy("created_at", true).WithLimit(3)
type Query struct {
	Table   string
	Columns string
	Filters []Filter
	Order   string
	Desc    bool
	Limit   int
}

// NewQuery starts a query selecting all columns of table.
func NewQuery(table string) *Query {
	return &Query{Table: table, Columns: "*"}
}

// Select sets the column list, including embedded resources such as
// "*,trips!inner(id,title,destination)".
func (q *Query) Select(columns string) *Query {
	q.Columns = columns
	return q
}

// Eq adds column = value.
func (q *Query) Eq(column, value string) *Query {
	q.Filters = append(q.Filters, Filter{Column: column, Op: "eq", Value: value})
	return q
}

// OrderBy sets the sort column.
func (q *Query) OrderBy(column string, desc bool) *Query {
	q.Order = column
	q.Desc = desc
	return q
}

// WithLimit caps the number of rows. Zero means no limit.
func (q *Query) WithLimit(n int) *Query {
	q.Limit = n
	return q
}

// values renders q as PostgREST query parameters.
func (q *Query) values(withSelect bool) url.Values {
	v := url.Values{}
	if withSelect {
		columns := q.Columns
		if columns == "" {
			columns = "*"
		}
		v.Set("select", columns)
	}
	for _, f := range q.Filters {
		v.Add(f.Column, f.Op+"."+f.Value)
	}
	if q.Order != "" {
		dir := "asc"
		if q.Desc {
			dir = "desc"
		}
		v.Set("order", q.Order+"."+dir)
	}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	return v
}
