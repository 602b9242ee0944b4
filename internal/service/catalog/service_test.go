package catalog

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"
	"time"

	"bookstore-api/internal/domain"
)

type stubProductRepo struct {
	products []domain.Product
	err      error
}

func (s *stubProductRepo) All(_ context.Context) ([]domain.Product, error) {
	return s.products, s.err
}

func day(n int) time.Time {
	return time.Date(2025, time.March, n, 0, 0, 0, 0, time.UTC)
}

func fixtureProducts() []domain.Product {
	return []domain.Product{
		{ID: 1, Title: "Enigma Otiliei", Author: "George Calinescu", Category: "Fiction", Price: 45, Stock: 12, IsActive: true, CreatedAt: day(1)},
		{ID: 2, Title: "Morometii", Author: "Marin Preda", ISBN: "9789734600001", Category: "Fiction", Price: 30, Stock: 5, IsActive: true, CreatedAt: day(2)},
		{ID: 3, Title: "Istoria Romanilor", Author: "Nicolae Iorga", Category: "History", Price: 80, Stock: 0, IsActive: true, CreatedAt: day(3)},
		{ID: 4, Title: "Poezii", Author: "Mihai Eminescu", Category: "Poetry", Price: 25, Stock: 40, IsActive: false, CreatedAt: day(4)},
	}
}

func newService(products ...domain.Product) *Service {
	return New(&stubProductRepo{products: products})
}

func TestQueryPublicHidesInactive(t *testing.T) {
	svc := newService(fixtureProducts()...)
	res, err := svc.QueryPublic(context.Background(), PublicQuery{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if res.Total != 3 || len(res.Products) != 3 {
		t.Fatalf("expected the 3 active products, got total=%d len=%d", res.Total, len(res.Products))
	}
	for _, p := range res.Products {
		if !p.IsActive {
			t.Fatalf("inactive product %d leaked into the public catalog", p.ID)
		}
	}
}

func TestQueryPublicCategoryExactCaseInsensitive(t *testing.T) {
	svc := newService(fixtureProducts()...)
	res, err := svc.QueryPublic(context.Background(), PublicQuery{Category: "fiction"})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if res.Total != 2 {
		t.Fatalf("expected 2 fiction products, got %d", res.Total)
	}
	// Exact match only: a substring must not qualify publicly.
	res, err = svc.QueryPublic(context.Background(), PublicQuery{Category: "fict"})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if res.Total != 0 {
		t.Fatalf("substring category must not match publicly, got %d", res.Total)
	}
}

func TestQueryPublicSearchTitleOrAuthor(t *testing.T) {
	svc := newService(fixtureProducts()...)
	res, err := svc.QueryPublic(context.Background(), PublicQuery{Search: "preda"})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if res.Total != 1 || res.Products[0].ID != 2 {
		t.Fatalf("expected author search to find product 2, got %+v", res.Products)
	}
	// Public search never looks at ISBNs.
	res, err = svc.QueryPublic(context.Background(), PublicQuery{Search: "9789734600001"})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if res.Total != 0 {
		t.Fatalf("public search must ignore isbn, got %d", res.Total)
	}
}

func TestQueryPublicPriceSortReverses(t *testing.T) {
	svc := newService(fixtureProducts()...)

	asc, err := svc.QueryPublic(context.Background(), PublicQuery{Sort: "price_asc"})
	if err != nil {
		t.Fatalf("query asc: %v", err)
	}
	desc, err := svc.QueryPublic(context.Background(), PublicQuery{Sort: "price_desc"})
	if err != nil {
		t.Fatalf("query desc: %v", err)
	}
	if len(asc.Products) != len(desc.Products) {
		t.Fatalf("result sizes differ")
	}
	n := len(asc.Products)
	for i := range asc.Products {
		if asc.Products[i].ID != desc.Products[n-1-i].ID {
			t.Fatalf("price_desc is not the reverse of price_asc: %v vs %v", ids(asc.Products), ids(desc.Products))
		}
	}
	for i := 1; i < n; i++ {
		if asc.Products[i-1].Price > asc.Products[i].Price {
			t.Fatalf("price_asc out of order: %v", ids(asc.Products))
		}
	}
}

func TestQueryPublicTitleSortUsesCollation(t *testing.T) {
	svc := newService(
		domain.Product{ID: 1, Title: "Zbor", IsActive: true},
		domain.Product{ID: 2, Title: "arta", IsActive: true},
		domain.Product{ID: 3, Title: "Balta", IsActive: true},
	)
	res, err := svc.QueryPublic(context.Background(), PublicQuery{Sort: "title_asc"})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	// Collation orders case-insensitively, unlike byte comparison.
	if got := ids(res.Products); got != "2,3,1" {
		t.Fatalf("expected collated order arta,Balta,Zbor, got %s", got)
	}
}

func TestQueryPublicUnknownSortKeepsOrder(t *testing.T) {
	svc := newService(fixtureProducts()...)
	res, err := svc.QueryPublic(context.Background(), PublicQuery{Sort: "rating_desc"})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if got := ids(res.Products); got != "1,2,3" {
		t.Fatalf("unrecognized sort must keep stored order, got %s", got)
	}
}

func TestQueryAdminStatusFilter(t *testing.T) {
	svc := newService(fixtureProducts()...)
	ctx := context.Background()

	active, err := svc.QueryAdmin(ctx, AdminQuery{Status: "active"})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	inactive, err := svc.QueryAdmin(ctx, AdminQuery{Status: "inactive"})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	all, err := svc.QueryAdmin(ctx, AdminQuery{Status: "whatever"})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if active.Statistics.Total != 3 || inactive.Statistics.Total != 1 || all.Statistics.Total != 4 {
		t.Fatalf("unexpected totals: active=%d inactive=%d all=%d",
			active.Statistics.Total, inactive.Statistics.Total, all.Statistics.Total)
	}
}

func TestQueryAdminStatisticsInvariants(t *testing.T) {
	svc := newService(fixtureProducts()...)
	res, err := svc.QueryAdmin(context.Background(), AdminQuery{Page: 1, Limit: 2})
	if err != nil {
		t.Fatalf("query: %v", err)
	}

	s := res.Statistics
	if s.Active+s.Inactive != s.Total {
		t.Fatalf("active+inactive != total: %+v", s)
	}
	if s.LowStock != 1 || s.OutOfStock != 1 {
		t.Fatalf("expected lowStock=1 outOfStock=1, got %+v", s)
	}
	// Statistics cover the filtered set, not the 2-item page.
	if len(res.Products) != 2 || s.Total != 4 {
		t.Fatalf("statistics must ignore the pagination window: page=%d total=%d", len(res.Products), s.Total)
	}
}

func TestQueryAdminCategorySubstring(t *testing.T) {
	svc := newService(fixtureProducts()...)
	res, err := svc.QueryAdmin(context.Background(), AdminQuery{Category: "fict"})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if res.Statistics.Total != 2 {
		t.Fatalf("admin category filter is a substring match, got %d", res.Statistics.Total)
	}
}

func TestQueryAdminSearchIncludesISBN(t *testing.T) {
	svc := newService(fixtureProducts()...)
	res, err := svc.QueryAdmin(context.Background(), AdminQuery{Search: "9789734600001"})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if res.Statistics.Total != 1 || res.Products[0].ID != 2 {
		t.Fatalf("expected isbn search to find product 2, got %+v", res.Products)
	}
}

func TestQueryAdminDefaultSortCreatedAtDesc(t *testing.T) {
	svc := newService(fixtureProducts()...)
	res, err := svc.QueryAdmin(context.Background(), AdminQuery{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if got := ids(res.Products); got != "4,3,2,1" {
		t.Fatalf("expected createdAt desc by default, got %s", got)
	}
}

func TestQueryAdminNumericSortAsc(t *testing.T) {
	svc := newService(fixtureProducts()...)
	res, err := svc.QueryAdmin(context.Background(), AdminQuery{SortBy: "stock", SortOrder: "asc"})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if got := ids(res.Products); got != "3,2,1,4" {
		t.Fatalf("expected stock asc 3,2,1,4, got %s", got)
	}
}

func TestQueryAdminUnknownFieldFallsThroughToDates(t *testing.T) {
	svc := newService(fixtureProducts()...)
	res, err := svc.QueryAdmin(context.Background(), AdminQuery{SortBy: "publisher", SortOrder: "asc"})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	// Unknown fields compare as zero dates; the stable sort keeps the
	// stored order.
	if got := ids(res.Products); got != "1,2,3,4" {
		t.Fatalf("expected stored order under unknown sort field, got %s", got)
	}
}

func TestQueryAdminPagination(t *testing.T) {
	svc := newService(fixtureProducts()...)
	res, err := svc.QueryAdmin(context.Background(), AdminQuery{Page: 2, Limit: 3, SortBy: "title", SortOrder: "asc"})
	if err != nil {
		t.Fatalf("query: %v", err)
	}

	p := res.Pagination
	if p.CurrentPage != 2 || p.TotalPages != 2 || p.TotalProducts != 4 || p.ProductsPerPage != 3 {
		t.Fatalf("unexpected pagination: %+v", p)
	}
	if p.HasNextPage || !p.HasPrevPage {
		t.Fatalf("unexpected page flags: %+v", p)
	}
	if len(res.Products) != 1 {
		t.Fatalf("expected 1 product on the last page, got %d", len(res.Products))
	}
}

func TestQueryAdminPageDefaults(t *testing.T) {
	svc := newService(fixtureProducts()...)
	res, err := svc.QueryAdmin(context.Background(), AdminQuery{Page: 0, Limit: -1})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if res.Pagination.CurrentPage != 1 || res.Pagination.ProductsPerPage != DefaultPageSize {
		t.Fatalf("expected page=1 limit=%d, got %+v", DefaultPageSize, res.Pagination)
	}
}

func TestQueryAdminPageBeyondEnd(t *testing.T) {
	svc := newService(fixtureProducts()...)
	res, err := svc.QueryAdmin(context.Background(), AdminQuery{Page: 9, Limit: 3})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(res.Products) != 0 {
		t.Fatalf("expected an empty window past the end, got %d", len(res.Products))
	}
	if res.Pagination.HasNextPage {
		t.Fatalf("no next page past the end: %+v", res.Pagination)
	}
}

func TestQueryRepoErrorPropagates(t *testing.T) {
	svc := New(&stubProductRepo{err: errors.New("boom")})
	if _, err := svc.QueryPublic(context.Background(), PublicQuery{}); err == nil {
		t.Fatalf("expected public query to propagate repo error")
	}
	if _, err := svc.QueryAdmin(context.Background(), AdminQuery{}); err == nil {
		t.Fatalf("expected admin query to propagate repo error")
	}
}

func ids(products []domain.Product) string {
	parts := make([]string, len(products))
	for i, p := range products {
		parts[i] = strconv.Itoa(p.ID)
	}
	return strings.Join(parts, ",")
}
