package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListingDefaults(t *testing.T) {
	l := NewListing(numbered(20))
	view := l.View()

	assert.Equal(t, SortFeatured, l.Query().Sort)
	assert.Equal(t, 1, view.Page)
	assert.Len(t, view.Items, PageSize)
}

func TestListingChangesResetPage(t *testing.T) {
	tests := []struct {
		name   string
		change func(*Listing)
	}{
		{"filters", func(l *Listing) { l.SetFilters(Filters{Categories: []string{"Misc"}}) }},
		{"search", func(l *Listing) { l.SetSearch("item") }},
		{"sort", func(l *Listing) { l.SetSort(SortNewest) }},
		{"clear", func(l *Listing) { l.ClearFilters() }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewListing(numbered(20))
			l.SetPage(2)
			assert.Equal(t, 2, l.Query().Page)

			tt.change(l)
			assert.Equal(t, 1, l.Query().Page)
		})
	}
}

func TestListingSetPageClamps(t *testing.T) {
	l := NewListing(numbered(20))

	l.SetPage(7)
	assert.Equal(t, 2, l.Query().Page)

	l.SetPage(0)
	assert.Equal(t, 1, l.Query().Page)
}

func TestListingClearFiltersKeepsSearch(t *testing.T) {
	l := NewListing(fixture())
	l.SetSearch("jeans")
	l.SetFilters(Filters{Categories: []string{"Electronics"}, MinRating: dec("4")})
	l.SetSort(SortPriceDesc)
	assert.Empty(t, l.View().Items)

	l.ClearFilters()
	q := l.Query()
	assert.Equal(t, "jeans", q.Search)
	assert.Empty(t, q.Categories)
	assert.Nil(t, q.MinRating)
	assert.Equal(t, SortFeatured, q.Sort)
	assert.Equal(t, []string{"7"}, ids(l.View().Items))
}

func TestListingSetProductsKeepsQuery(t *testing.T) {
	l := NewListing(numbered(20))
	l.SetPage(2)

	l.SetProducts(numbered(5))
	assert.Equal(t, 2, l.Query().Page)

	view := l.View()
	assert.Equal(t, 1, view.Page)
	assert.Len(t, view.Items, 5)
}

func TestListingSetFiltersKeepsSearch(t *testing.T) {
	l := NewListing(fixture())
	l.SetSearch("jeans")

	l.SetFilters(Filters{Search: "ignored", Categories: []string{"Clothing"}})

	assert.Equal(t, "jeans", l.Query().Search)
	assert.Equal(t, []string{"Clothing"}, l.Query().Categories)
	assert.Equal(t, []string{"7"}, ids(l.View().Items))
}
