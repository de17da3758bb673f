// AngelaMos | 2026
// dto.go

package product

import (
	"time"
)

type CreateProductRequest struct {
	Name     string  `json:"name"     validate:"required,min=1,max=200"`
	Price    float64 `json:"price"    validate:"required,gt=0"`
	Category string  `json:"category" validate:"omitempty,max=100"`
	Stock    int     `json:"stock"    validate:"gte=0"`
	Image    string  `json:"image"    validate:"omitempty,max=2048"`
}

type UpdateProductRequest struct {
	Name     *string  `json:"name,omitempty"     validate:"omitempty,min=1,max=200"`
	Price    *float64 `json:"price,omitempty"    validate:"omitempty,gt=0"`
	Category *string  `json:"category,omitempty" validate:"omitempty,max=100"`
	Stock    *int     `json:"stock,omitempty"    validate:"omitempty,gte=0"`
	Image    *string  `json:"image,omitempty"    validate:"omitempty,max=2048"`
}

type ProductResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Category  string    `json:"category,omitempty"`
	Stock     int       `json:"stock"`
	Image     string    `json:"image,omitempty"`
	VendorID  string    `json:"vendor_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ListProductsParams struct {
	Page     int    `json:"page"`
	PageSize int    `json:"page_size"`
	Category string `json:"category"`
	VendorID string `json:"vendor_id"`
}

func (p *ListProductsParams) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = 20
	}
	if p.PageSize > 100 {
		p.PageSize = 100
	}
}

func (p *ListProductsParams) Offset() int {
	return (p.Page - 1) * p.PageSize
}

func ToProductResponse(p *Product) ProductResponse {
	return ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Category:  p.Category,
		Stock:     p.Stock,
		Image:     p.Image,
		VendorID:  p.VendorID,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func ToProductResponseList(products []Product) []ProductResponse {
	responses := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		responses = append(responses, ToProductResponse(&p))
	}
	return responses
}
