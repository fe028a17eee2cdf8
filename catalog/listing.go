package catalog

import "storefront/models"

// Listing is the browsing state of a product list page. Changing any filter,
// the search text or the sort order moves back to page 1.
type Listing struct {
	products []models.Product
	query    Query
}

func NewListing(products []models.Product) *Listing {
	return &Listing{
		products: products,
		query:    Query{Sort: SortFeatured, Page: 1},
	}
}

func (l *Listing) Query() Query {
	return l.query
}

// SetProducts replaces the product set, keeping filters and page. The page
// is clamped on the next View.
func (l *Listing) SetProducts(products []models.Product) {
	l.products = products
}

// SetFilters replaces the category, price and rating filters. The search text
// is kept; change it with SetSearch.
func (l *Listing) SetFilters(f Filters) {
	f.Search = l.query.Search
	l.query.Filters = f
	l.query.Page = 1
}

func (l *Listing) SetSearch(search string) {
	l.query.Search = search
	l.query.Page = 1
}

func (l *Listing) SetSort(key SortKey) {
	l.query.Sort = key
	l.query.Page = 1
}

// ClearFilters drops every filter but keeps the search text, and resets the
// sort order to featured.
func (l *Listing) ClearFilters() {
	l.query = Query{
		Filters: Filters{Search: l.query.Search},
		Sort:    SortFeatured,
		Page:    1,
	}
}

// SetPage moves to page, clamped into the valid range for the current
// filters.
func (l *Listing) SetPage(page int) {
	l.query.Page = page
	l.query.Page = l.View().Page
}

func (l *Listing) View() Page {
	return Apply(l.products, l.query)
}
