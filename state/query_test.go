package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewQuery(t *testing.T) {
	q := NewQuery("ordem")
	assert.Equal(t, 1, q.Page)
	assert.Equal(t, "ordem", q.SortBy)
	assert.Equal(t, SortAsc, q.SortOrder)
}

func TestQuerySetPage(t *testing.T) {
	q := NewQuery("ordem")

	q.SetPage(4)
	assert.Equal(t, 4, q.Page)

	q.SetPage(0)
	assert.Equal(t, 1, q.Page, "pages below 1 clamp to 1")

	q.SetPage(-3)
	assert.Equal(t, 1, q.Page)
}

func TestQuerySetSort(t *testing.T) {
	q := NewQuery("ordem")
	q.SetPage(5)

	q.SetSort("nome")
	assert.Equal(t, "nome", q.SortBy)
	assert.Equal(t, SortAsc, q.SortOrder, "new field starts ascending")
	assert.Equal(t, 5, q.Page, "sort-only change keeps the page")

	q.SetSort("nome")
	assert.Equal(t, SortDesc, q.SortOrder, "re-selecting toggles direction")

	q.SetSort("nome")
	assert.Equal(t, SortAsc, q.SortOrder)

	q.SetSort("nome")
	q.SetSort("createdAt")
	assert.Equal(t, SortAsc, q.SortOrder, "descending does not carry to a new field")
	assert.Equal(t, 5, q.Page)
}
