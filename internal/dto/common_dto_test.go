package dto

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
)

func TestPageQuery_Defaults(t *testing.T) {
	var q PageQuery
	assert.Equal(t, 0, q.GetPage())
	assert.Equal(t, 10, q.GetSize())
	assert.Equal(t, "createdAt", q.GetSortBy())
	assert.False(t, q.Ascending())
}

func TestPageQuery_Values(t *testing.T) {
	q := PageQuery{Page: lo.ToPtr(2), Size: lo.ToPtr(500), SortBy: " title "}
	assert.Equal(t, 2, q.GetPage())
	assert.Equal(t, MaxSize, q.GetSize())
	assert.Equal(t, "title", q.GetSortBy())
}

func TestIsAscending(t *testing.T) {
	for _, v := range []string{"ASC", "asc", "Asc", " aSc "} {
		assert.True(t, IsAscending(v), v)
	}
	for _, v := range []string{"", "DESC", "desc", "ascending", "up"} {
		assert.False(t, IsAscending(v), v)
	}
}

func TestNewPage(t *testing.T) {
	p := NewPage([]int{1, 2, 3}, 23, 2, 10)
	assert.Equal(t, 3, p.TotalPages)
	assert.Equal(t, int64(23), p.TotalElements)
	assert.False(t, p.First)
	assert.True(t, p.Last)
	assert.False(t, p.Empty)

	empty := EmptyPage[string](0, 10)
	assert.NotNil(t, empty.Content)
	assert.True(t, empty.Empty)
	assert.True(t, empty.First)
	assert.True(t, empty.Last)
	assert.Equal(t, 0, empty.TotalPages)
}
