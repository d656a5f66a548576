// Package pagination turns raw page/size/sortBy/sortOrder request values into
// a deterministic query descriptor shared by every list and search operation.
package pagination

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidSort is returned when sortBy does not name a sortable field of
// the target entity.
var ErrInvalidSort = errors.New("invalid sort field")

// Params are the raw paging values as they arrive from the request layer.
// Page 0 is the first page.
type Params struct {
	Page      int
	Size      int
	SortBy    string
	SortOrder string
}

// Default mirrors the API defaults: first page, ten rows, ascending by id.
func Default() Params {
	return Params{Page: 0, Size: 10, SortBy: "id", SortOrder: "asc"}
}

// Query is a resolved, validated descriptor ready for the store.
type Query struct {
	Column string
	Desc   bool
	Offset int
	Limit  int
	idCol  string
}

// Resolve validates p against the entity's sortable-field map (exposed field
// name -> qualified column). Anything other than a case-insensitive "asc"
// sorts descending. Negative pages and non-positive sizes fall back to the
// defaults rather than erroring.
func Resolve(p Params, sortable map[string]string) (Query, error) {
	if p.Page < 0 {
		p.Page = 0
	}
	if p.Size < 1 {
		p.Size = 10
	}
	if p.SortBy == "" {
		p.SortBy = "id"
	}
	column, ok := sortable[p.SortBy]
	if !ok {
		return Query{}, fmt.Errorf("%w: %s", ErrInvalidSort, p.SortBy)
	}
	return Query{
		Column: column,
		Desc:   !strings.EqualFold(p.SortOrder, "asc"),
		Offset: p.Page * p.Size,
		Limit:  p.Size,
		idCol:  sortable["id"],
	}, nil
}

// OrderClause renders the ORDER BY expression with a stable tiebreak on the
// primary key.
func (q Query) OrderClause() string {
	dir := "ASC"
	if q.Desc {
		dir = "DESC"
	}
	if q.Column == q.idCol {
		return fmt.Sprintf("%s %s", q.Column, dir)
	}
	return fmt.Sprintf("%s %s, %s ASC", q.Column, dir, q.idCol)
}

// Page is one bounded slice of a larger ordered result set.
type Page[T any] struct {
	Content       []T   `json:"content"`
	Page          int   `json:"page"`
	Size          int   `json:"size"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
}

// NewPage wraps content with its paging metadata.
func NewPage[T any](content []T, p Params, total int64) *Page[T] {
	if p.Page < 0 {
		p.Page = 0
	}
	if p.Size < 1 {
		p.Size = 10
	}
	pages := int(total) / p.Size
	if int(total)%p.Size != 0 {
		pages++
	}
	return &Page[T]{
		Content:       content,
		Page:          p.Page,
		Size:          p.Size,
		TotalElements: total,
		TotalPages:    pages,
	}
}
