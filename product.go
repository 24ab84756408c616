package logiflow

import (
	"context"
	"time"
)

// ProductUnit is the unit a product is sold and stocked in.
type ProductUnit string

const (
	ProductUnitPiece       ProductUnit = "unit"
	ProductUnitKilogram    ProductUnit = "kg"
	ProductUnitMeter       ProductUnit = "m"
	ProductUnitSquareMeter ProductUnit = "m2"
	ProductUnitCubicMeter  ProductUnit = "m3"
	ProductUnitLiter       ProductUnit = "l"
)

// Valid reports whether u is one of the enumerated units.
func (u ProductUnit) Valid() bool {
	switch u {
	case ProductUnitPiece, ProductUnitKilogram, ProductUnitMeter,
		ProductUnitSquareMeter, ProductUnitCubicMeter, ProductUnitLiter:
		return true
	}
	return false
}

// Dimensions of a product in centimeters.
type Dimensions struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Product is an item that can be ordered and stocked.
type Product struct {
	ID          string      `json:"id"`
	TenantID    string      `json:"tenantId"`
	SKU         string      `json:"sku"`
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	Category    string      `json:"category,omitempty"`
	Unit        ProductUnit `json:"unit"`
	Weight      float64     `json:"weight,omitempty"` // kg
	Dimensions  *Dimensions `json:"dimensions,omitempty"`
	Price       float64     `json:"price"`
	IsActive    bool        `json:"isActive"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// ProductUpdate represents updates to a product.
type ProductUpdate struct {
	SKU         *string      `json:"sku,omitempty"`
	Name        *string      `json:"name,omitempty"`
	Description *string      `json:"description,omitempty"`
	Category    *string      `json:"category,omitempty"`
	Unit        *ProductUnit `json:"unit,omitempty"`
	Weight      *float64     `json:"weight,omitempty"`
	Dimensions  *Dimensions  `json:"dimensions,omitempty"`
	Price       *float64     `json:"price,omitempty"`
	IsActive    *bool        `json:"isActive,omitempty"`
}

// ProductService manages products within a tenant.
type ProductService interface {
	// FindProductByID returns the product matching both id and tenantID.
	FindProductByID(ctx context.Context, id, tenantID string) (*Product, error)

	// FindProducts returns the tenant's products in insertion order.
	FindProducts(ctx context.Context, tenantID string) ([]*Product, error)

	// CreateProduct appends p to the tenant's collection.
	CreateProduct(ctx context.Context, p *Product) error

	// UpdateProduct merges the set fields of upd over the stored product.
	UpdateProduct(ctx context.Context, id, tenantID string, upd ProductUpdate) (*Product, error)

	// DeleteProduct removes the product matching both id and tenantID.
	DeleteProduct(ctx context.Context, id, tenantID string) error
}
