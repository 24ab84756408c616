package inmem

import (
	"context"

	"github.com/logiflow/logiflow"
)

var _ logiflow.ProductService = (*Service)(nil)

// FindProductByID returns the product matching both id and tenantID.
func (s *Service) FindProductByID(ctx context.Context, id, tenantID string) (*logiflow.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.products {
		if s.products[i].ID == id && s.products[i].TenantID == tenantID {
			p := s.products[i]
			return &p, nil
		}
	}
	return nil, notFoundError("product", "FindProductByID")
}

// FindProducts returns the tenant's products in insertion order.
func (s *Service) FindProducts(ctx context.Context, tenantID string) ([]*logiflow.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ps := []*logiflow.Product{}
	for i := range s.products {
		if s.products[i].TenantID == tenantID {
			p := s.products[i]
			ps = append(ps, &p)
		}
	}
	return ps, nil
}

// CreateProduct appends p to the tenant's collection.
func (s *Service) CreateProduct(ctx context.Context, p *logiflow.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p.ID == "" {
		p.ID = s.IDGenerator.ID()
	}
	now := s.now()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = now
	}

	s.products = append(s.products, *p)
	return nil
}

// UpdateProduct merges the set fields of upd over the stored product.
func (s *Service) UpdateProduct(ctx context.Context, id, tenantID string, upd logiflow.ProductUpdate) (*logiflow.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID != id || s.products[i].TenantID != tenantID {
			continue
		}

		p := &s.products[i]
		if upd.SKU != nil {
			p.SKU = *upd.SKU
		}
		if upd.Name != nil {
			p.Name = *upd.Name
		}
		if upd.Description != nil {
			p.Description = *upd.Description
		}
		if upd.Category != nil {
			p.Category = *upd.Category
		}
		if upd.Unit != nil {
			p.Unit = *upd.Unit
		}
		if upd.Weight != nil {
			p.Weight = *upd.Weight
		}
		if upd.Dimensions != nil {
			p.Dimensions = upd.Dimensions
		}
		if upd.Price != nil {
			p.Price = *upd.Price
		}
		if upd.IsActive != nil {
			p.IsActive = *upd.IsActive
		}
		p.UpdatedAt = s.now()

		out := *p
		return &out, nil
	}
	return nil, notFoundError("product", "UpdateProduct")
}

// DeleteProduct removes the product matching both id and tenantID.
func (s *Service) DeleteProduct(ctx context.Context, id, tenantID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == id && s.products[i].TenantID == tenantID {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return nil
		}
	}
	return notFoundError("product", "DeleteProduct")
}
