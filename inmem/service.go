// Package inmem implements every domain service over process-wide
// in-memory collections. One ordered slice per entity kind is shared by all
// requests for the lifetime of the process; nothing is persisted.
package inmem

import (
	"sync"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/logiflow/logiflow"
	"github.com/logiflow/logiflow/rand"
)

// OpPrefix is the op prefix stamped on errors from this package.
const OpPrefix = "inmem/"

// Service implements the domain services over shared slices. A single
// RWMutex guards all collections: operations are short and synchronous, and
// there are no cross-row transactions, so the practical hazard is a lost
// update under concurrent updates of the same row, never corruption.
type Service struct {
	mu sync.RWMutex

	tenants     []logiflow.Tenant
	users       []logiflow.User
	customers   []logiflow.Customer
	suppliers   []logiflow.Supplier
	products    []logiflow.Product
	warehouses  []logiflow.Warehouse
	carriers    []logiflow.Carrier
	inventories []logiflow.Inventory
	orders      []logiflow.Order
	deliveries  []logiflow.Delivery
	routes      []logiflow.Route

	IDGenerator    logiflow.IDGenerator
	TokenGenerator logiflow.TokenGenerator

	clock clock.Clock
}

// NewService creates an instance of a Service.
func NewService() *Service {
	return &Service{
		IDGenerator:    rand.NewIDGenerator(),
		TokenGenerator: rand.NewTokenGenerator(9),
		clock:          clock.New(),
	}
}

// WithClock sets the clock used for createdAt/updatedAt stamps. Should only
// be used in tests for mocking.
func (s *Service) WithClock(c clock.Clock) {
	s.clock = c
}

func (s *Service) now() time.Time {
	return s.clock.Now().UTC()
}
