package domain

import "time"

// CartItem is one line of the cart. Title, author, price and image are
// snapshotted at add time; price is the effective (discounted) price.
type CartItem struct {
	ProductID int       `json:"productId"`
	Quantity  int       `json:"quantity"`
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	Price     float64   `json:"price"`
	ImageURL  string    `json:"imageUrl"`
	AddedAt   time.Time `json:"addedAt"`
}

// Cart is the single shared cart document. Total and TotalItems are derived
// from Items and must be recomputed before every persist.
type Cart struct {
	Items       []CartItem `json:"items"`
	Total       float64    `json:"total"`
	TotalItems  int        `json:"totalItems"`
	LastUpdated time.Time  `json:"lastUpdated"`
}

// EmptyCart returns the default cart served when nothing was ever persisted.
func EmptyCart() Cart {
	return Cart{Items: []CartItem{}}
}

// Recalculate rederives Total and TotalItems from the line items.
func (c *Cart) Recalculate() {
	var total float64
	items := 0
	for _, it := range c.Items {
		total += it.Price * float64(it.Quantity)
		items += it.Quantity
	}
	c.Total = total
	c.TotalItems = items
}

// Find returns the index of the line item for productID, or -1.
func (c *Cart) Find(productID int) int {
	for i, it := range c.Items {
		if it.ProductID == productID {
			return i
		}
	}
	return -1
}
