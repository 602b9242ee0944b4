package domain

import "time"

// Specifications holds the printed-edition details nested under a product.
type Specifications struct {
	Pages     int    `json:"pages,omitempty"`
	Language  string `json:"language,omitempty"`
	Publisher string `json:"publisher,omitempty"`
	Year      int    `json:"year,omitempty"`
	Format    string `json:"format,omitempty"`
}

// Product is a catalog entry. IDs are assigned once and never change.
type Product struct {
	ID             int            `json:"id"`
	Title          string         `json:"title"`
	Author         string         `json:"author"`
	ISBN           string         `json:"isbn,omitempty"`
	Category       string         `json:"category"`
	Price          float64        `json:"price"`
	DiscountPrice  *float64       `json:"discountPrice,omitempty"`
	Description    string         `json:"description,omitempty"`
	ImageURL       string         `json:"imageUrl"`
	Stock          int            `json:"stock"`
	IsActive       bool           `json:"isActive"`
	Featured       bool           `json:"featured"`
	Rating         *float64       `json:"rating,omitempty"`
	ReviewCount    int            `json:"reviewCount"`
	Tags           []string       `json:"tags,omitempty"`
	Specifications Specifications `json:"specifications"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
	CreatedBy      string         `json:"createdBy,omitempty"`
}

// EffectivePrice is the price a buyer pays: the discount price when one is
// set, the list price otherwise.
func (p Product) EffectivePrice() float64 {
	if p.DiscountPrice != nil {
		return *p.DiscountPrice
	}
	return p.Price
}
