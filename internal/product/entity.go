// AngelaMos | 2026
// entity.go

package product

import (
	"time"
)

type Product struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	Price     float64   `db:"price"`
	Category  string    `db:"category"`
	Stock     int       `db:"stock"`
	Image     string    `db:"image"`
	VendorID  string    `db:"vendor_id"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (p *Product) OwnedBy(userID string) bool {
	return p.VendorID == userID
}
