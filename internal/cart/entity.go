// AngelaMos | 2026
// entity.go

package cart

import (
	"time"
)

// Item is a snapshot of a product at the moment it was added; price changes
// in the catalog do not retroactively reprice a cart line until the item is
// updated.
type Item struct {
	ProductID string    `json:"product_id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Image     string    `json:"image,omitempty"`
	Quantity  int       `json:"quantity"`
	AddedAt   time.Time `json:"added_at"`
}

func (i *Item) LineTotal() float64 {
	return i.Price * float64(i.Quantity)
}

type Cart struct {
	UserID   string  `json:"user_id"`
	Items    []Item  `json:"items"`
	Subtotal float64 `json:"subtotal"`
}

type AddItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity"   validate:"required,gt=0"`
}

type UpdateItemRequest struct {
	Quantity int `json:"quantity" validate:"gte=0"`
}
