package inmem_test

import (
	"context"
	"testing"

	"github.com/benbjohnson/clock"

	"github.com/logiflow/logiflow"
	"github.com/logiflow/logiflow/inmem"
	logiflowtesting "github.com/logiflow/logiflow/testing"
)

func initOrderService(f logiflowtesting.OrderFields, t *testing.T) (logiflow.OrderService, func()) {
	s := inmem.NewService()
	if f.IDGenerator != nil {
		s.IDGenerator = f.IDGenerator
	}
	if f.TokenGenerator != nil {
		s.TokenGenerator = f.TokenGenerator
	}
	if !f.Now.IsZero() {
		mock := clock.NewMock()
		mock.Set(f.Now)
		s.WithClock(mock)
	}

	ctx := context.Background()
	for _, o := range f.Orders {
		if err := s.CreateOrder(ctx, o); err != nil {
			t.Fatalf("failed to populate orders: %v", err)
		}
	}
	return s, func() {}
}

func TestOrderService(t *testing.T) {
	logiflowtesting.OrderService(initOrderService, t)
}
