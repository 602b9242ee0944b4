package catalog

import (
	"context"
	"sort"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"bookstore-api/internal/domain"
)

// DefaultPageSize is used when the admin query carries no usable limit.
const DefaultPageSize = 50

// lowStockThreshold: a product with 0 < stock < threshold counts as low.
const lowStockThreshold = 10

type productRepo interface {
	All(ctx context.Context) ([]domain.Product, error)
}

// Service answers the public catalog listing and the admin catalog page.
// Both run the same filter/sort pipeline over the whole collection; the
// admin side adds status filtering, pagination and statistics.
type Service struct {
	products productRepo
}

func New(products productRepo) *Service {
	return &Service{products: products}
}

// PublicQuery are the filters accepted on the storefront listing.
type PublicQuery struct {
	Category string
	Search   string
	Sort     string
}

// PublicResult echoes the applied filters next to the full matching set.
type PublicResult struct {
	Products []domain.Product `json:"products"`
	Total    int              `json:"total"`
	Category string           `json:"category,omitempty"`
	Search   string           `json:"search,omitempty"`
	Sort     string           `json:"sort,omitempty"`
}

// QueryPublic lists active products only. Category is a case-insensitive
// exact match, search a case-insensitive substring over title and author.
// Unrecognized sort keys leave the stored order untouched.
func (s *Service) QueryPublic(ctx context.Context, q PublicQuery) (*PublicResult, error) {
	all, err := s.products.All(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]domain.Product, 0, len(all))
	for _, p := range all {
		if !p.IsActive {
			continue
		}
		if q.Category != "" && !strings.EqualFold(p.Category, q.Category) {
			continue
		}
		if q.Search != "" && !matchesSearch(p, q.Search, false) {
			continue
		}
		filtered = append(filtered, p)
	}

	sortPublic(filtered, q.Sort)

	return &PublicResult{
		Products: filtered,
		Total:    len(filtered),
		Category: q.Category,
		Search:   q.Search,
		Sort:     q.Sort,
	}, nil
}

// AdminQuery are the filters accepted on the admin catalog page.
type AdminQuery struct {
	Status    string // "active", "inactive", anything else means all
	Category  string // case-insensitive substring
	Search    string // title, author or isbn substring
	SortBy    string // defaults to createdAt
	SortOrder string // "asc" or "desc", default desc
	Page      int    // 1-indexed, defaults to 1
	Limit     int    // defaults to DefaultPageSize
}

// Pagination describes the returned window.
type Pagination struct {
	CurrentPage     int  `json:"currentPage"`
	TotalPages      int  `json:"totalPages"`
	TotalProducts   int  `json:"totalProducts"`
	ProductsPerPage int  `json:"productsPerPage"`
	HasNextPage     bool `json:"hasNextPage"`
	HasPrevPage     bool `json:"hasPrevPage"`
}

// Statistics are computed over the whole filtered set, not the page.
type Statistics struct {
	Total      int `json:"total"`
	Active     int `json:"active"`
	Inactive   int `json:"inactive"`
	LowStock   int `json:"lowStock"`
	OutOfStock int `json:"outOfStock"`
}

// AdminResult is one page plus its metadata.
type AdminResult struct {
	Products   []domain.Product `json:"products"`
	Pagination Pagination       `json:"pagination"`
	Statistics Statistics       `json:"statistics"`
}

// QueryAdmin filters, sorts and paginates the full collection, inactive
// records included.
func (s *Service) QueryAdmin(ctx context.Context, q AdminQuery) (*AdminResult, error) {
	all, err := s.products.All(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]domain.Product, 0, len(all))
	for _, p := range all {
		switch q.Status {
		case "active":
			if !p.IsActive {
				continue
			}
		case "inactive":
			if p.IsActive {
				continue
			}
		}
		if q.Category != "" && !strings.Contains(strings.ToLower(p.Category), strings.ToLower(q.Category)) {
			continue
		}
		if q.Search != "" && !matchesSearch(p, q.Search, true) {
			continue
		}
		filtered = append(filtered, p)
	}

	sortAdmin(filtered, q.SortBy, q.SortOrder)
	stats := computeStatistics(filtered)

	page := q.Page
	if page < 1 {
		page = 1
	}
	limit := q.Limit
	if limit < 1 {
		limit = DefaultPageSize
	}

	total := len(filtered)
	totalPages := (total + limit - 1) / limit

	start := (page - 1) * limit
	end := start + limit
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return &AdminResult{
		Products: filtered[start:end],
		Pagination: Pagination{
			CurrentPage:     page,
			TotalPages:      totalPages,
			TotalProducts:   total,
			ProductsPerPage: limit,
			HasNextPage:     page < totalPages,
			HasPrevPage:     page > 1,
		},
		Statistics: stats,
	}, nil
}

func matchesSearch(p domain.Product, term string, includeISBN bool) bool {
	term = strings.ToLower(term)
	if strings.Contains(strings.ToLower(p.Title), term) || strings.Contains(strings.ToLower(p.Author), term) {
		return true
	}
	return includeISBN && p.ISBN != "" && strings.Contains(strings.ToLower(p.ISBN), term)
}

func sortPublic(products []domain.Product, key string) {
	switch key {
	case "price_asc":
		sort.SliceStable(products, func(i, j int) bool { return products[i].Price < products[j].Price })
	case "price_desc":
		sort.SliceStable(products, func(i, j int) bool { return products[i].Price > products[j].Price })
	case "title_asc":
		cl := newCollator()
		sort.SliceStable(products, func(i, j int) bool { return cl.CompareString(products[i].Title, products[j].Title) < 0 })
	case "title_desc":
		cl := newCollator()
		sort.SliceStable(products, func(i, j int) bool { return cl.CompareString(products[i].Title, products[j].Title) > 0 })
	}
}

func sortAdmin(products []domain.Product, field, order string) {
	var less func(a, b domain.Product) bool

	switch field {
	case "title", "author", "category":
		cl := newCollator()
		key := stringField(field)
		less = func(a, b domain.Product) bool { return cl.CompareString(key(a), key(b)) < 0 }
	case "price", "stock", "rating":
		key := numericField(field)
		less = func(a, b domain.Product) bool { return key(a) < key(b) }
	default:
		// Everything else, createdAt included, sorts as a date. Unknown
		// fields yield zero times, which keeps the stored order under the
		// stable sort.
		key := dateField(field)
		less = func(a, b domain.Product) bool { return key(a).Before(key(b)) }
	}

	asc := strings.EqualFold(order, "asc")
	sort.SliceStable(products, func(i, j int) bool {
		if asc {
			return less(products[i], products[j])
		}
		return less(products[j], products[i])
	})
}

// Catalog titles are Romanian by default; sort them that way.
func newCollator() *collate.Collator {
	return collate.New(language.Romanian)
}

func stringField(field string) func(domain.Product) string {
	switch field {
	case "author":
		return func(p domain.Product) string { return p.Author }
	case "category":
		return func(p domain.Product) string { return p.Category }
	default:
		return func(p domain.Product) string { return p.Title }
	}
}

func numericField(field string) func(domain.Product) float64 {
	switch field {
	case "stock":
		return func(p domain.Product) float64 { return float64(p.Stock) }
	case "rating":
		return func(p domain.Product) float64 {
			if p.Rating == nil {
				return 0
			}
			return *p.Rating
		}
	default:
		return func(p domain.Product) float64 { return p.Price }
	}
}

func dateField(field string) func(domain.Product) time.Time {
	switch field {
	case "updatedAt":
		return func(p domain.Product) time.Time { return p.UpdatedAt }
	case "", "createdAt":
		return func(p domain.Product) time.Time { return p.CreatedAt }
	default:
		return func(domain.Product) time.Time { return time.Time{} }
	}
}

func computeStatistics(products []domain.Product) Statistics {
	stats := Statistics{Total: len(products)}
	for _, p := range products {
		if p.IsActive {
			stats.Active++
		} else {
			stats.Inactive++
		}
		switch {
		case p.Stock == 0:
			stats.OutOfStock++
		case p.Stock < lowStockThreshold:
			stats.LowStock++
		}
	}
	return stats
}
