package models

// Product categories shown in the storefront filters.
const (
	CategoryMen   = "men"
	CategoryWomen = "women"
)

// Product is a catalog entry. Published products are visible to shoppers;
// drafts are only returned to administrators.
type Product struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Category   string  `json:"category"`
	Type       string  `json:"type"`
	Image      string  `json:"image"`
	Quantity   int     `json:"quantity"`
	Published  bool    `json:"published"`
	OrderIndex *int    `json:"orderIndex,omitempty"`
	CreatedAt  int64   `json:"createdAt"`
}
