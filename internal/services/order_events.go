package services

import (
	"context"

	"gorm.io/gorm"

	"cursos_app_echo/internal/models"
)

// OrderEventStore persists admin reconciliation events with gorm
type OrderEventStore struct {
	db *gorm.DB
}

// NewOrderEventStore creates a store on db
func NewOrderEventStore(db *gorm.DB) *OrderEventStore {
	return &OrderEventStore{db: db}
}

// Record inserts an event
func (s *OrderEventStore) Record(ctx context.Context, event *models.OrderEvent) error {
	return s.db.WithContext(ctx).Create(event).Error
}

// ListForOrder returns the events of an order, newest first
func (s *OrderEventStore) ListForOrder(ctx context.Context, orderID string) ([]models.OrderEvent, error) {
	var events []models.OrderEvent
	err := s.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("created_at desc").
		Find(&events).Error
	return events, err
}

// ListForOrders returns the events of several orders grouped by order id
func (s *OrderEventStore) ListForOrders(ctx context.Context, orderIDs []string) (map[string][]models.OrderEvent, error) {
	grouped := make(map[string][]models.OrderEvent)
	if len(orderIDs) == 0 {
		return grouped, nil
	}

	var events []models.OrderEvent
	err := s.db.WithContext(ctx).
		Where("order_id IN ?", orderIDs).
		Order("created_at desc").
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	for _, e := range events {
		grouped[e.OrderID] = append(grouped[e.OrderID], e)
	}
	return grouped, nil
}
