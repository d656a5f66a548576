package pagination

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

var bookFields = map[string]string{
	"id":    "books.id",
	"title": "books.title",
}

func TestResolveDefaults(t *testing.T) {
	q, err := Resolve(Default(), bookFields)

	assert.NoError(t, err)
	assert.Equal(t, "books.id", q.Column)
	assert.False(t, q.Desc)
	assert.Equal(t, 0, q.Offset)
	assert.Equal(t, 10, q.Limit)
}

func TestResolveOffset(t *testing.T) {
	q, err := Resolve(Params{Page: 3, Size: 25, SortBy: "title", SortOrder: "asc"}, bookFields)

	assert.NoError(t, err)
	assert.Equal(t, 75, q.Offset)
	assert.Equal(t, 25, q.Limit)
}

func TestResolveClampsNegativePageAndSize(t *testing.T) {
	q, err := Resolve(Params{Page: -4, Size: 0, SortBy: "id", SortOrder: "asc"}, bookFields)

	assert.NoError(t, err)
	assert.Equal(t, 0, q.Offset)
	assert.Equal(t, 10, q.Limit)
}

func TestResolveUnknownSortField(t *testing.T) {
	_, err := Resolve(Params{SortBy: "password", SortOrder: "asc"}, bookFields)

	assert.True(t, errors.Is(err, ErrInvalidSort))
}

func TestResolveSortOrderCaseInsensitive(t *testing.T) {
	q, err := Resolve(Params{SortBy: "title", SortOrder: "ASC"}, bookFields)
	assert.NoError(t, err)
	assert.False(t, q.Desc)

	// Anything that isn't "asc" sorts descending, it is not an error.
	for _, order := range []string{"desc", "DESC", "banana", ""} {
		q, err = Resolve(Params{SortBy: "title", SortOrder: order}, bookFields)
		assert.NoError(t, err)
		assert.True(t, q.Desc, "order %q should resolve to descending", order)
	}
}

func TestOrderClauseStableTiebreak(t *testing.T) {
	q, err := Resolve(Params{SortBy: "title", SortOrder: "desc"}, bookFields)
	assert.NoError(t, err)
	assert.Equal(t, "books.title DESC, books.id ASC", q.OrderClause())

	q, err = Resolve(Params{SortBy: "id", SortOrder: "asc"}, bookFields)
	assert.NoError(t, err)
	assert.Equal(t, "books.id ASC", q.OrderClause())
}

func TestNewPageMetadata(t *testing.T) {
	pg := NewPage([]string{"a", "b"}, Params{Page: 1, Size: 2}, 5)

	assert.Equal(t, 1, pg.Page)
	assert.Equal(t, 2, pg.Size)
	assert.Equal(t, int64(5), pg.TotalElements)
	assert.Equal(t, 3, pg.TotalPages)
	assert.Len(t, pg.Content, 2)
}
