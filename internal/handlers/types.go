package handlers

import (
	"context"

	"cursos_app_echo/internal/models"
)

// CourseFinder reads the course catalog
type CourseFinder interface {
	List(ctx context.Context) ([]models.Course, error)
	FindBySlug(ctx context.Context, slug string) (models.Course, error)
}

// OrderLister lists the signed-in buyer's orders
type OrderLister interface {
	MyOrders(ctx context.Context, token string) ([]models.Order, error)
}

// EventLister reads the reconciliation audit trail
type EventLister interface {
	ListForOrder(ctx context.Context, orderID string) ([]models.OrderEvent, error)
	ListForOrders(ctx context.Context, orderIDs []string) (map[string][]models.OrderEvent, error)
}
