package logiflow

import (
	"context"
	"time"
)

// CarrierServiceType is a shipping service a carrier offers.
type CarrierServiceType string

const (
	CarrierServiceStandard CarrierServiceType = "standard"
	CarrierServiceExpress  CarrierServiceType = "express"
	CarrierServiceSameDay  CarrierServiceType = "same_day"
	CarrierServiceFreight  CarrierServiceType = "freight"
)

// Valid reports whether t is one of the enumerated service types.
func (t CarrierServiceType) Valid() bool {
	switch t {
	case CarrierServiceStandard, CarrierServiceExpress, CarrierServiceSameDay, CarrierServiceFreight:
		return true
	}
	return false
}

// Carrier is a transport company that fulfills deliveries.
type Carrier struct {
	ID           string               `json:"id"`
	TenantID     string               `json:"tenantId"`
	Name         string               `json:"name"`
	Document     string               `json:"document"`
	Email        string               `json:"email"`
	Phone        string               `json:"phone"`
	Address      *Address             `json:"address,omitempty"`
	ServiceTypes []CarrierServiceType `json:"serviceTypes"`
	Rating       float64              `json:"rating,omitempty"`
	IsActive     bool                 `json:"isActive"`
	CreatedAt    time.Time            `json:"createdAt"`
	UpdatedAt    time.Time            `json:"updatedAt"`
}

// CarrierUpdate represents updates to a carrier.
type CarrierUpdate struct {
	Name         *string               `json:"name,omitempty"`
	Document     *string               `json:"document,omitempty"`
	Email        *string               `json:"email,omitempty"`
	Phone        *string               `json:"phone,omitempty"`
	Address      *Address              `json:"address,omitempty"`
	ServiceTypes *[]CarrierServiceType `json:"serviceTypes,omitempty"`
	Rating       *float64              `json:"rating,omitempty"`
	IsActive     *bool                 `json:"isActive,omitempty"`
}

// CarrierService manages carriers within a tenant.
type CarrierService interface {
	FindCarrierByID(ctx context.Context, id, tenantID string) (*Carrier, error)
	FindCarriers(ctx context.Context, tenantID string) ([]*Carrier, error)
	CreateCarrier(ctx context.Context, c *Carrier) error
	UpdateCarrier(ctx context.Context, id, tenantID string, upd CarrierUpdate) (*Carrier, error)
	DeleteCarrier(ctx context.Context, id, tenantID string) error
}
