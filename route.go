package logiflow

import (
	"context"
	"time"
)

// RouteStatus is the lifecycle state of a route.
type RouteStatus string

const (
	RouteStatusPlanned    RouteStatus = "planned"
	RouteStatusInProgress RouteStatus = "in_progress"
	RouteStatusCompleted  RouteStatus = "completed"
	RouteStatusCancelled  RouteStatus = "cancelled"
)

// Valid reports whether s is one of the enumerated statuses.
func (s RouteStatus) Valid() bool {
	switch s {
	case RouteStatusPlanned, RouteStatusInProgress, RouteStatusCompleted, RouteStatusCancelled:
		return true
	}
	return false
}

// Route is a planned trip covering a set of deliveries. The delivery ids
// are not checked for existence.
type Route struct {
	ID                string      `json:"id"`
	TenantID          string      `json:"tenantId"`
	Name              string      `json:"name"`
	CarrierID         string      `json:"carrierId"`
	VehicleID         string      `json:"vehicleId,omitempty"`
	DriverID          string      `json:"driverId,omitempty"`
	Deliveries        []string    `json:"deliveries"`
	StartLocation     Address     `json:"startLocation"`
	EndLocation       Address     `json:"endLocation"`
	EstimatedDuration int         `json:"estimatedDuration,omitempty"` // minutes
	ActualDuration    int         `json:"actualDuration,omitempty"`
	Distance          float64     `json:"distance,omitempty"` // km
	Status            RouteStatus `json:"status"`
	StartedAt         *time.Time  `json:"startedAt,omitempty"`
	CompletedAt       *time.Time  `json:"completedAt,omitempty"`
	CreatedAt         time.Time   `json:"createdAt"`
	UpdatedAt         time.Time   `json:"updatedAt"`
}

// RouteUpdate represents updates to a route.
type RouteUpdate struct {
	Name              *string      `json:"name,omitempty"`
	VehicleID         *string      `json:"vehicleId,omitempty"`
	DriverID          *string      `json:"driverId,omitempty"`
	Deliveries        *[]string    `json:"deliveries,omitempty"`
	Status            *RouteStatus `json:"status,omitempty"`
	EstimatedDuration *int         `json:"estimatedDuration,omitempty"`
	ActualDuration    *int         `json:"actualDuration,omitempty"`
	Distance          *float64     `json:"distance,omitempty"`
	StartedAt         *time.Time   `json:"startedAt,omitempty"`
	CompletedAt       *time.Time   `json:"completedAt,omitempty"`
}

// RouteService manages routes within a tenant.
type RouteService interface {
	FindRouteByID(ctx context.Context, id, tenantID string) (*Route, error)
	FindRoutes(ctx context.Context, tenantID string) ([]*Route, error)
	CreateRoute(ctx context.Context, r *Route) error
	UpdateRoute(ctx context.Context, id, tenantID string, upd RouteUpdate) (*Route, error)
	DeleteRoute(ctx context.Context, id, tenantID string) error
}
