package reconcile

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"cursos_app_echo/internal/models"
)

var (
	ErrInvalidTarget = errors.New("target status must be PAID or REJECTED")
	ErrNotConfirmed  = errors.New("transition was not confirmed")
	ErrNotPending    = errors.New("order is no longer pending")
	ErrOrderNotFound = errors.New("order not found")
)

// OrderAPI is the admin side of the course-sales API
type OrderAPI interface {
	AdminOrders(ctx context.Context, token string) ([]models.Order, error)
	UpdateOrderStatus(ctx context.Context, token, orderID string, status models.OrderStatus) (models.Order, error)
}

// AuditRecorder stores reconciliation events
type AuditRecorder interface {
	Record(ctx context.Context, event *models.OrderEvent) error
}

// Actor is the admin performing a transition
type Actor struct {
	Token string
	Email string
}

// Service transitions pending orders on behalf of admins
type Service struct {
	api   OrderAPI
	audit AuditRecorder
}

// NewService creates a reconciliation service. audit may be nil, in which
// case no events are recorded.
func NewService(api OrderAPI, audit AuditRecorder) *Service {
	return &Service{api: api, audit: audit}
}

// ParseTarget accepts PAID or REJECTED, case-insensitively
func ParseTarget(s string) (models.OrderStatus, error) {
	target := models.OrderStatus(strings.ToUpper(strings.TrimSpace(s)))
	switch target {
	case models.OrderStatusPaid, models.OrderStatusRejected:
		return target, nil
	}
	return "", ErrInvalidTarget
}

// TargetLabel is the verb shown on the confirmation step
func TargetLabel(target models.OrderStatus) string {
	if target == models.OrderStatusPaid {
		return "Aprobar"
	}
	return "Rechazar"
}

// List returns the admin order list, fresh from the API
func (s *Service) List(ctx context.Context, actor Actor) ([]models.Order, error) {
	return s.api.AdminOrders(ctx, actor.Token)
}

// Pending returns the order if it can still be transitioned
func (s *Service) Pending(ctx context.Context, actor Actor, orderID string) (models.Order, error) {
	orders, err := s.api.AdminOrders(ctx, actor.Token)
	if err != nil {
		return models.Order{}, fmt.Errorf("list admin orders: %w", err)
	}
	for _, o := range orders {
		if o.ID != orderID {
			continue
		}
		if o.Status != models.OrderStatusPending {
			return o, fmt.Errorf("%w: order %s is %s", ErrNotPending, orderID, o.Status)
		}
		return o, nil
	}
	return models.Order{}, fmt.Errorf("%w: %s", ErrOrderNotFound, orderID)
}

// Transition moves a pending order to PAID or REJECTED. The order is re-read
// right before the update so a decision taken on a stale list is refused.
// The API still applies last-writer-wins between admins racing past this check.
func (s *Service) Transition(ctx context.Context, actor Actor, orderID string, target models.OrderStatus, confirmed bool) (models.Order, error) {
	target, err := ParseTarget(string(target))
	if err != nil {
		return models.Order{}, err
	}
	if !confirmed {
		return models.Order{}, ErrNotConfirmed
	}

	current, err := s.Pending(ctx, actor, orderID)
	if err != nil {
		if errors.Is(err, ErrNotPending) {
			s.record(ctx, &models.OrderEvent{
				OrderID:    orderID,
				Action:     models.OrderEventStaleRefused,
				FromStatus: current.Status,
				ToStatus:   target,
				ActorEmail: actor.Email,
				Note:       "order was already " + string(current.Status),
			})
		}
		return models.Order{}, err
	}

	updated, err := s.api.UpdateOrderStatus(ctx, actor.Token, orderID, target)
	if err != nil {
		return models.Order{}, fmt.Errorf("update order %s: %w", orderID, err)
	}

	s.record(ctx, &models.OrderEvent{
		OrderID:    orderID,
		Action:     models.OrderEventStatusChanged,
		FromStatus: current.Status,
		ToStatus:   target,
		ActorEmail: actor.Email,
	})
	return updated, nil
}

func (s *Service) record(ctx context.Context, event *models.OrderEvent) {
	if s.audit == nil {
		return
	}
	if err := s.audit.Record(ctx, event); err != nil {
		log.Printf("Warning: failed to record order event for %s: %v", event.OrderID, err)
	}
}
