package product

import (
	"context"
	"strings"
	"time"

	"bookstore-api/internal/domain"
	productrepo "bookstore-api/internal/repository/product"
)

// Defaults applied to created products when the field is absent.
const (
	DefaultCategory = "General"
	DefaultImageURL = "/images/book-placeholder.jpg"
	DefaultLanguage = "Romanian"
	DefaultFormat   = "Paperback"
)

// Service applies admin mutations to the product collection. Every mutation
// loads the whole collection, changes it in memory and writes it back.
type Service struct {
	repo productrepo.Repository
	now  func() time.Time
}

func New(repo productrepo.Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// SpecificationsInput mirrors the nested specifications payload.
type SpecificationsInput struct {
	Pages     int    `json:"pages"`
	Language  string `json:"language"`
	Publisher string `json:"publisher"`
	Year      int    `json:"year"`
	Format    string `json:"format"`
}

// CreateInput carries the create payload. Price and Stock are pointers so a
// missing field is distinguishable from an explicit zero; non-numeric values
// never reach this layer (JSON binding rejects them).
type CreateInput struct {
	Title          string              `json:"title"`
	Author         string              `json:"author"`
	ISBN           string              `json:"isbn"`
	Category       string              `json:"category"`
	Price          *float64            `json:"price"`
	DiscountPrice  *float64            `json:"discountPrice"`
	Description    string              `json:"description"`
	ImageURL       string              `json:"imageUrl"`
	Stock          *int                `json:"stock"`
	Featured       bool                `json:"featured"`
	Rating         *float64            `json:"rating"`
	ReviewCount    *int                `json:"reviewCount"`
	Tags           []string            `json:"tags"`
	Specifications SpecificationsInput `json:"specifications"`
}

// Create validates the input, assigns the next identifier and appends the
// product. The identifier is last element's id + 1 (1 for an empty
// collection), not max-of-all; a collection that is not append-ordered can
// hand out a colliding id.
func (s *Service) Create(ctx context.Context, in CreateInput, createdBy string) (*domain.Product, error) {
	var missing []string
	if strings.TrimSpace(in.Title) == "" {
		missing = append(missing, "title")
	}
	if strings.TrimSpace(in.Author) == "" {
		missing = append(missing, "author")
	}
	if in.Price == nil {
		missing = append(missing, "price")
	}
	if in.Stock == nil {
		missing = append(missing, "stock")
	}
	if len(missing) > 0 {
		return nil, domain.NewValidationError("missing required fields", missing...)
	}
	if *in.Price < 0 || *in.Stock < 0 {
		return nil, domain.NewValidationError("price and stock must be non-negative")
	}
	if in.DiscountPrice != nil && *in.DiscountPrice > *in.Price {
		return nil, domain.NewValidationError("discount price cannot exceed price")
	}

	products, err := s.repo.All(ctx)
	if err != nil {
		return nil, err
	}

	id := 1
	if len(products) > 0 {
		id = products[len(products)-1].ID + 1
	}

	now := s.now()
	p := domain.Product{
		ID:            id,
		Title:         strings.TrimSpace(in.Title),
		Author:        strings.TrimSpace(in.Author),
		ISBN:          strings.TrimSpace(in.ISBN),
		Category:      orDefault(in.Category, DefaultCategory),
		Price:         *in.Price,
		DiscountPrice: in.DiscountPrice,
		Description:   strings.TrimSpace(in.Description),
		ImageURL:      orDefault(in.ImageURL, DefaultImageURL),
		Stock:         *in.Stock,
		IsActive:      true,
		Featured:      in.Featured,
		Rating:        in.Rating,
		Tags:          in.Tags,
		Specifications: domain.Specifications{
			Pages:     in.Specifications.Pages,
			Language:  orDefault(in.Specifications.Language, DefaultLanguage),
			Publisher: strings.TrimSpace(in.Specifications.Publisher),
			Year:      in.Specifications.Year,
			Format:    orDefault(in.Specifications.Format, DefaultFormat),
		},
		CreatedAt: now,
		UpdatedAt: now,
		CreatedBy: createdBy,
	}
	if in.ReviewCount != nil {
		p.ReviewCount = *in.ReviewCount
	}

	products = append(products, p)
	if err := s.repo.ReplaceAll(ctx, products); err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdateInput is a shallow patch: nil fields stay untouched. Deliberately no
// field-level validation here; update accepts what create would reject.
type UpdateInput struct {
	Title          *string              `json:"title"`
	Author         *string              `json:"author"`
	ISBN           *string              `json:"isbn"`
	Category       *string              `json:"category"`
	Price          *float64             `json:"price"`
	DiscountPrice  *float64             `json:"discountPrice"`
	Description    *string              `json:"description"`
	ImageURL       *string              `json:"imageUrl"`
	Stock          *int                 `json:"stock"`
	IsActive       *bool                `json:"isActive"`
	Featured       *bool                `json:"featured"`
	Rating         *float64             `json:"rating"`
	ReviewCount    *int                 `json:"reviewCount"`
	Tags           []string             `json:"tags"`
	Specifications *SpecificationsInput `json:"specifications"`
}

// Update merges the supplied fields onto the stored record and always
// refreshes updatedAt.
func (s *Service) Update(ctx context.Context, id int, in UpdateInput) (*domain.Product, error) {
	products, err := s.repo.All(ctx)
	if err != nil {
		return nil, err
	}

	idx := indexOf(products, id)
	if idx < 0 {
		return nil, domain.ErrNotFound
	}
	p := &products[idx]

	if in.Title != nil {
		p.Title = *in.Title
	}
	if in.Author != nil {
		p.Author = *in.Author
	}
	if in.ISBN != nil {
		p.ISBN = *in.ISBN
	}
	if in.Category != nil {
		p.Category = *in.Category
	}
	if in.Price != nil {
		p.Price = *in.Price
	}
	if in.DiscountPrice != nil {
		p.DiscountPrice = in.DiscountPrice
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.ImageURL != nil {
		p.ImageURL = *in.ImageURL
	}
	if in.Stock != nil {
		p.Stock = *in.Stock
	}
	if in.IsActive != nil {
		p.IsActive = *in.IsActive
	}
	if in.Featured != nil {
		p.Featured = *in.Featured
	}
	if in.Rating != nil {
		p.Rating = in.Rating
	}
	if in.ReviewCount != nil {
		p.ReviewCount = *in.ReviewCount
	}
	if in.Tags != nil {
		p.Tags = in.Tags
	}
	if in.Specifications != nil {
		p.Specifications = domain.Specifications{
			Pages:     in.Specifications.Pages,
			Language:  in.Specifications.Language,
			Publisher: in.Specifications.Publisher,
			Year:      in.Specifications.Year,
			Format:    in.Specifications.Format,
		}
	}
	p.UpdatedAt = s.now()

	if err := s.repo.ReplaceAll(ctx, products); err != nil {
		return nil, err
	}
	out := *p
	return &out, nil
}

// Delete removes the record when permanent, otherwise soft-deletes it by
// clearing isActive.
func (s *Service) Delete(ctx context.Context, id int, permanent bool) error {
	products, err := s.repo.All(ctx)
	if err != nil {
		return err
	}

	idx := indexOf(products, id)
	if idx < 0 {
		return domain.ErrNotFound
	}

	if permanent {
		products = append(products[:idx], products[idx+1:]...)
	} else {
		products[idx].IsActive = false
		products[idx].UpdatedAt = s.now()
	}

	return s.repo.ReplaceAll(ctx, products)
}

// GetByID returns the record regardless of its active flag; admins see
// soft-deleted products.
func (s *Service) GetByID(ctx context.Context, id int) (*domain.Product, error) {
	products, err := s.repo.All(ctx)
	if err != nil {
		return nil, err
	}
	idx := indexOf(products, id)
	if idx < 0 {
		return nil, domain.ErrNotFound
	}
	out := products[idx]
	return &out, nil
}

func indexOf(products []domain.Product, id int) int {
	for i := range products {
		if products[i].ID == id {
			return i
		}
	}
	return -1
}

func orDefault(v, def string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return def
	}
	return v
}
