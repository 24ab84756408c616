// Package order provides service middlewares for the order service.
package order

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/logiflow/logiflow"
)

var _ logiflow.OrderService = (*OrderLogger)(nil)

// OrderLogger is a logging service middleware for the Order Service.
type OrderLogger struct {
	logger       *zap.Logger
	orderService logiflow.OrderService
}

// NewOrderLogger returns a logging service middleware for the Order Service.
func NewOrderLogger(log *zap.Logger, s logiflow.OrderService) *OrderLogger {
	return &OrderLogger{
		logger:       log,
		orderService: s,
	}
}

func (l *OrderLogger) FindOrderByID(ctx context.Context, id, tenantID string) (o *logiflow.Order, err error) {
	defer func(start time.Time) {
		dur := zap.Duration("took", time.Since(start))
		if err != nil {
			msg := fmt.Sprintf("failed to find order with ID %v", id)
			l.logger.Debug(msg, zap.Error(err), dur)
			return
		}
		l.logger.Debug("order find by ID", dur)
	}(time.Now())
	return l.orderService.FindOrderByID(ctx, id, tenantID)
}

func (l *OrderLogger) FindOrders(ctx context.Context, tenantID string) (os []*logiflow.Order, err error) {
	defer func(start time.Time) {
		dur := zap.Duration("took", time.Since(start))
		if err != nil {
			l.logger.Debug("failed to find orders", zap.Error(err), dur)
			return
		}
		l.logger.Debug("orders find", dur)
	}(time.Now())
	return l.orderService.FindOrders(ctx, tenantID)
}

func (l *OrderLogger) CreateOrder(ctx context.Context, o *logiflow.Order) (err error) {
	defer func(start time.Time) {
		dur := zap.Duration("took", time.Since(start))
		if err != nil {
			l.logger.Debug("failed to create order", zap.Error(err), dur)
			return
		}
		l.logger.Debug("order create", dur)
	}(time.Now())
	return l.orderService.CreateOrder(ctx, o)
}

func (l *OrderLogger) UpdateOrder(ctx context.Context, id, tenantID string, upd logiflow.OrderUpdate) (o *logiflow.Order, err error) {
	defer func(start time.Time) {
		dur := zap.Duration("took", time.Since(start))
		if err != nil {
			msg := fmt.Sprintf("failed to update order with ID %v", id)
			l.logger.Debug(msg, zap.Error(err), dur)
			return
		}
		l.logger.Debug("order update", dur)
	}(time.Now())
	return l.orderService.UpdateOrder(ctx, id, tenantID, upd)
}

func (l *OrderLogger) DeleteOrder(ctx context.Context, id, tenantID string) (err error) {
	defer func(start time.Time) {
		dur := zap.Duration("took", time.Since(start))
		if err != nil {
			msg := fmt.Sprintf("failed to delete order with ID %v", id)
			l.logger.Debug(msg, zap.Error(err), dur)
			return
		}
		l.logger.Debug("order delete", dur)
	}(time.Now())
	return l.orderService.DeleteOrder(ctx, id, tenantID)
}
