package inmem

import (
	"context"

	"github.com/logiflow/logiflow"
)

// Seed loads the fixed demo rows. It is idempotent: once any tenant exists
// the call is a no-op, so launchers may call it unconditionally.
func (s *Service) Seed(ctx context.Context) error {
	s.mu.RLock()
	seeded := len(s.tenants) > 0
	s.mu.RUnlock()
	if seeded {
		return nil
	}

	now := s.now()

	tenants := []*logiflow.Tenant{
		{
			ID:    "tenant-1",
			Name:  "Acme Logistics",
			Slug:  "acme-logistics",
			Email: "contact@acmelogistics.example",
			Phone: "+1 555 0101",
			Settings: logiflow.TenantSettings{
				Timezone: "America/New_York",
				Currency: "USD",
				Language: "en-US",
			},
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:    "tenant-2",
			Name:  "Northwind Transport",
			Slug:  "northwind-transport",
			Email: "contact@northwindtransport.example",
			Phone: "+1 555 0202",
			Settings: logiflow.TenantSettings{
				Timezone: "America/Chicago",
				Currency: "USD",
				Language: "en-US",
			},
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	users := []*logiflow.User{
		{
			ID:        "user-1",
			TenantID:  "tenant-1",
			Email:     "admin@acmelogistics.example",
			Name:      "Acme Admin",
			Role:      logiflow.UserRoleAdmin,
			IsActive:  true,
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:        "user-2",
			TenantID:  "tenant-2",
			Email:     "admin@northwindtransport.example",
			Name:      "Northwind Admin",
			Role:      logiflow.UserRoleAdmin,
			IsActive:  true,
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	customers := []*logiflow.Customer{
		{
			ID:       "customer-1",
			TenantID: "tenant-1",
			Name:     "John Rivers",
			Email:    "john.rivers@example.com",
			Phone:    "+1 555 0303",
			Document: "123.456.789-00",
			Address: &logiflow.Address{
				Street:       "Maple Street",
				Number:       "123",
				Neighborhood: "Downtown",
				City:         "Springfield",
				State:        "IL",
				ZipCode:      "62701",
				Country:      "USA",
			},
			IsActive:  true,
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	products := []*logiflow.Product{
		{
			ID:          "product-1",
			TenantID:    "tenant-1",
			SKU:         "PROD-001",
			Name:        "15\" Laptop",
			Description: "15 inch business laptop",
			Category:    "Electronics",
			Unit:        logiflow.ProductUnitPiece,
			Weight:      2.5,
			Dimensions:  &logiflow.Dimensions{Length: 35, Width: 25, Height: 2},
			Price:       3500.0,
			IsActive:    true,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          "product-2",
			TenantID:    "tenant-1",
			SKU:         "PROD-002",
			Name:        "Wireless Mouse",
			Description: "Wireless ergonomic mouse",
			Category:    "Peripherals",
			Unit:        logiflow.ProductUnitPiece,
			Weight:      0.15,
			Price:       450.0,
			IsActive:    true,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
	}

	warehouses := []*logiflow.Warehouse{
		{
			ID:       "warehouse-1",
			TenantID: "tenant-1",
			Name:     "Central Warehouse",
			Code:     "WH-001",
			Address: logiflow.Address{
				Street:       "Industrial Avenue",
				Number:       "1000",
				Neighborhood: "Industrial Park",
				City:         "Springfield",
				State:        "IL",
				ZipCode:      "62703",
				Country:      "USA",
			},
			Capacity:  10000,
			IsActive:  true,
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	carriers := []*logiflow.Carrier{
		{
			ID:       "carrier-1",
			TenantID: "tenant-1",
			Name:     "Express Carriers",
			Document: "12.345.678/0001-90",
			Email:    "dispatch@expresscarriers.example",
			Phone:    "+1 555 0404",
			Address: &logiflow.Address{
				Street:       "Freight Road",
				Number:       "500",
				Neighborhood: "Industrial Park",
				City:         "Springfield",
				State:        "IL",
				ZipCode:      "62703",
				Country:      "USA",
			},
			ServiceTypes: []logiflow.CarrierServiceType{
				logiflow.CarrierServiceStandard,
				logiflow.CarrierServiceExpress,
			},
			Rating:    4.5,
			IsActive:  true,
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	inventories := []*logiflow.Inventory{
		{
			ID:               "inventory-1",
			TenantID:         "tenant-1",
			ProductID:        "product-1",
			WarehouseID:      "warehouse-1",
			Quantity:         50,
			ReservedQuantity: 0,
			MinStock:         10,
			MaxStock:         100,
			LastUpdated:      now,
		},
		{
			ID:               "inventory-2",
			TenantID:         "tenant-1",
			ProductID:        "product-2",
			WarehouseID:      "warehouse-1",
			Quantity:         200,
			ReservedQuantity: 0,
			MinStock:         50,
			MaxStock:         500,
			LastUpdated:      now,
		},
	}

	for _, t := range tenants {
		if err := s.CreateTenant(ctx, t); err != nil {
			return err
		}
	}
	for _, u := range users {
		if err := s.CreateUser(ctx, u); err != nil {
			return err
		}
	}
	for _, c := range customers {
		if err := s.CreateCustomer(ctx, c); err != nil {
			return err
		}
	}
	for _, p := range products {
		if err := s.CreateProduct(ctx, p); err != nil {
			return err
		}
	}
	for _, w := range warehouses {
		if err := s.CreateWarehouse(ctx, w); err != nil {
			return err
		}
	}
	for _, c := range carriers {
		if err := s.CreateCarrier(ctx, c); err != nil {
			return err
		}
	}
	for _, inv := range inventories {
		if err := s.CreateInventory(ctx, inv); err != nil {
			return err
		}
	}
	return nil
}
