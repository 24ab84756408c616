package inmem_test

import (
	"context"
	"testing"

	"github.com/benbjohnson/clock"

	"github.com/logiflow/logiflow"
	"github.com/logiflow/logiflow/inmem"
	logiflowtesting "github.com/logiflow/logiflow/testing"
)

func initDeliveryService(f logiflowtesting.DeliveryFields, t *testing.T) (logiflow.DeliveryService, func()) {
	s := inmem.NewService()
	if f.IDGenerator != nil {
		s.IDGenerator = f.IDGenerator
	}
	if !f.Now.IsZero() {
		mock := clock.NewMock()
		mock.Set(f.Now)
		s.WithClock(mock)
	}

	ctx := context.Background()
	for _, d := range f.Deliveries {
		if err := s.CreateDelivery(ctx, d); err != nil {
			t.Fatalf("failed to populate deliveries: %v", err)
		}
	}
	return s, func() {}
}

func TestDeliveryService(t *testing.T) {
	logiflowtesting.DeliveryService(initDeliveryService, t)
}
