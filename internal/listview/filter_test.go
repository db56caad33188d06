package listview

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type row struct {
	Name     string
	Location string
	Status   string
	Category string
}

func rowSearchFields(r row) []string {
	return []string{r.Name, r.Location}
}

func rowDimensions() []Dimension[row] {
	return []Dimension[row]{
		{Name: "status", Value: func(r row) string { return r.Status }},
		{Name: "category", Value: func(r row) string { return r.Category }},
	}
}

func TestFilterTextSearch(t *testing.T) {
	items := []row{
		{Name: "Tech Conference", Status: "Active"},
		{Name: "Music Festival", Status: "Active"},
	}
	out := Filter(items, Query{Search: "tech"}, rowSearchFields, rowDimensions())
	assert.Len(t, out, 1)
	assert.Equal(t, "Tech Conference", out[0].Name)
}

func TestFilterTextSearchSecondaryField(t *testing.T) {
	items := []row{
		{Name: "Opening Gala", Location: "Main Hall"},
		{Name: "Workshop", Location: "Annex"},
	}
	out := Filter(items, Query{Search: "HALL"}, rowSearchFields, rowDimensions())
	assert.Len(t, out, 1)
	assert.Equal(t, "Opening Gala", out[0].Name)
}

func TestFilterEmptyQueryMatchesEverything(t *testing.T) {
	items := []row{{Name: "a"}, {Name: "b"}, {Name: "c"}}
	out := Filter(items, Query{}, rowSearchFields, rowDimensions())
	assert.Equal(t, items, out)
}

func TestFilterStatusDimensionPreservesOrder(t *testing.T) {
	items := []row{
		{Name: "first", Status: "Active"},
		{Name: "second", Status: "Draft"},
		{Name: "third", Status: "Active"},
	}
	out := Filter(items, Query{Filters: map[string]string{"status": "Active"}}, rowSearchFields, rowDimensions())
	assert.Len(t, out, 2)
	assert.Equal(t, "first", out[0].Name)
	assert.Equal(t, "third", out[1].Name)
}

func TestFilterStatusEqualityIsCaseSensitive(t *testing.T) {
	items := []row{{Name: "x", Status: "Active"}}
	out := Filter(items, Query{Filters: map[string]string{"status": "active"}}, rowSearchFields, rowDimensions())
	assert.Empty(t, out)
}

func TestFilterSentinelBypassesDimension(t *testing.T) {
	items := []row{
		{Name: "a", Status: "Active"},
		{Name: "b", Status: "Draft"},
	}
	withSentinel := Filter(items, Query{Filters: map[string]string{"status": MatchAll}}, rowSearchFields, rowDimensions())
	withoutFilter := Filter(items, Query{}, rowSearchFields, rowDimensions())
	assert.Equal(t, withoutFilter, withSentinel)
}

func TestFilterDimensionsAreANDed(t *testing.T) {
	items := []row{
		{Name: "a", Status: "Active", Category: "Concert"},
		{Name: "b", Status: "Active", Category: "Workshop"},
		{Name: "c", Status: "Draft", Category: "Concert"},
	}
	out := Filter(items, Query{Filters: map[string]string{
		"status":   "Active",
		"category": "Concert",
	}}, rowSearchFields, rowDimensions())
	assert.Len(t, out, 1)
	assert.Equal(t, "a", out[0].Name)
}

func TestFilterIndependentDimensionsCommute(t *testing.T) {
	items := []row{
		{Name: "a", Status: "Active", Category: "Concert"},
		{Name: "b", Status: "Draft", Category: "Concert"},
		{Name: "c", Status: "Active", Category: "Workshop"},
		{Name: "d", Status: "Active", Category: "Concert"},
	}
	statusFirst := Filter(
		Filter(items, Query{Filters: map[string]string{"status": "Active"}}, rowSearchFields, rowDimensions()),
		Query{Filters: map[string]string{"category": "Concert"}}, rowSearchFields, rowDimensions(),
	)
	categoryFirst := Filter(
		Filter(items, Query{Filters: map[string]string{"category": "Concert"}}, rowSearchFields, rowDimensions()),
		Query{Filters: map[string]string{"status": "Active"}}, rowSearchFields, rowDimensions(),
	)
	assert.Equal(t, statusFirst, categoryFirst)
}

func TestFilterIsIdempotentAndPure(t *testing.T) {
	items := []row{
		{Name: "Tech Conference", Status: "Active"},
		{Name: "Music Festival", Status: "Draft"},
	}
	q := Query{Search: "e", Filters: map[string]string{"status": "Active"}}
	first := Filter(items, q, rowSearchFields, rowDimensions())
	second := Filter(items, q, rowSearchFields, rowDimensions())
	assert.Equal(t, first, second)
	// input untouched
	assert.Equal(t, "Tech Conference", items[0].Name)
	assert.Len(t, items, 2)
}
