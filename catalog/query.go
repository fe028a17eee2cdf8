// Package catalog filters, sorts and paginates a product list in memory.
//
// The server always returns the whole catalog; callers fetch it once and run
// Apply for every view they render.
package catalog

import (
	"net/url"
	"slices"
	"strconv"
	"strings"

	"storefront/models"

	"github.com/shopspring/decimal"
)

const PageSize = 12

type SortKey string

const (
	SortFeatured  SortKey = "featured"
	SortPriceAsc  SortKey = "price-asc"
	SortPriceDesc SortKey = "price-desc"
	SortRating    SortKey = "rating"
	SortNewest    SortKey = "newest"
)

var SortKeys = []SortKey{SortFeatured, SortPriceAsc, SortPriceDesc, SortRating, SortNewest}

// ParseSortKey maps unknown values to SortFeatured.
func ParseSortKey(s string) SortKey {
	key := SortKey(strings.TrimSpace(s))
	if slices.Contains(SortKeys, key) {
		return key
	}
	return SortFeatured
}

// Filters narrows the product list. Nil bounds mean no constraint.
type Filters struct {
	Search     string
	Categories []string
	PriceMin   *decimal.Decimal
	PriceMax   *decimal.Decimal
	MinRating  *decimal.Decimal
}

type Query struct {
	Filters
	Sort SortKey
	Page int
}

// Page is one page of a filtered, sorted product list. Start and End are the
// 1-based positions shown as "showing Start-End of TotalItems"; both are 0
// when nothing matched.
type Page struct {
	Items      []models.Product `json:"items"`
	Page       int              `json:"page"`
	PageSize   int              `json:"pageSize"`
	TotalPages int              `json:"totalPages"`
	TotalItems int              `json:"totalItems"`
	Start      int              `json:"start"`
	End        int              `json:"end"`
}

// Apply runs search, category, price, rating, sort and pagination in that
// order. products is not modified.
func Apply(products []models.Product, q Query) Page {
	return Paginate(Sort(Filter(products, q.Filters), q.Sort), q.Page, PageSize)
}

func Filter(products []models.Product, f Filters) []models.Product {
	search := strings.ToLower(strings.TrimSpace(f.Search))

	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		if search != "" && !matchesSearch(p, search) {
			continue
		}
		if len(f.Categories) > 0 && !slices.Contains(f.Categories, p.Category) {
			continue
		}
		if f.PriceMin != nil && p.Price.LessThan(*f.PriceMin) {
			continue
		}
		if f.PriceMax != nil && p.Price.GreaterThan(*f.PriceMax) {
			continue
		}
		if f.MinRating != nil && p.Rating.LessThan(*f.MinRating) {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered
}

func matchesSearch(p models.Product, needle string) bool {
	return strings.Contains(strings.ToLower(p.Title), needle) ||
		strings.Contains(strings.ToLower(p.Description), needle) ||
		strings.Contains(strings.ToLower(p.Category), needle)
}

// Sort returns a stably sorted copy of products. SortFeatured keeps the
// input order.
func Sort(products []models.Product, key SortKey) []models.Product {
	sorted := slices.Clone(products)

	var compare func(a, b models.Product) int
	switch key {
	case SortPriceAsc:
		compare = func(a, b models.Product) int { return a.Price.Cmp(b.Price) }
	case SortPriceDesc:
		compare = func(a, b models.Product) int { return b.Price.Cmp(a.Price) }
	case SortRating:
		compare = func(a, b models.Product) int { return b.Rating.Cmp(a.Rating) }
	case SortNewest:
		compare = func(a, b models.Product) int { return b.CreatedAt.Compare(a.CreatedAt) }
	default:
		return sorted
	}

	slices.SortStableFunc(sorted, compare)
	return sorted
}

// Paginate slices out the requested page, clamping page into
// [1, TotalPages].
func Paginate(products []models.Product, page, pageSize int) Page {
	if pageSize < 1 {
		pageSize = PageSize
	}

	total := len(products)
	totalPages := (total + pageSize - 1) / pageSize

	page = max(page, 1)
	if totalPages > 0 {
		page = min(page, totalPages)
	}

	result := Page{
		Items:      []models.Product{},
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
		TotalItems: total,
	}
	if total == 0 {
		return result
	}

	start := (page - 1) * pageSize
	end := min(start+pageSize, total)
	result.Items = products[start:end]
	result.Start = start + 1
	result.End = end
	return result
}

// Categories lists the distinct categories of products in first-seen order
// with the number of products in each.
func Categories(products []models.Product) []models.Category {
	index := map[string]int{}
	categories := []models.Category{}
	for _, p := range products {
		i, ok := index[p.Category]
		if !ok {
			i = len(categories)
			index[p.Category] = i
			categories = append(categories, models.Category{Name: p.Category})
		}
		categories[i].ProductCount++
	}
	return categories
}

// ParseQuery reads a Query from URL-style parameters: search, category
// (repeatable or comma separated), min_price, max_price, min_rating, sort and
// page. Malformed numbers are treated as absent.
func ParseQuery(values url.Values) Query {
	q := Query{
		Filters: Filters{
			Search:    values.Get("search"),
			PriceMin:  ParseDecimal(values.Get("min_price")),
			PriceMax:  ParseDecimal(values.Get("max_price")),
			MinRating: ParseDecimal(values.Get("min_rating")),
		},
		Sort: ParseSortKey(values.Get("sort")),
		Page: 1,
	}

	for _, raw := range values["category"] {
		for _, c := range strings.Split(raw, ",") {
			if c = strings.TrimSpace(c); c != "" && !slices.Contains(q.Categories, c) {
				q.Categories = append(q.Categories, c)
			}
		}
	}

	if page, err := strconv.Atoi(values.Get("page")); err == nil {
		q.Page = page
	}
	return q
}

// ParseDecimal returns nil for empty or malformed input.
func ParseDecimal(s string) *decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil
	}
	return &d
}
