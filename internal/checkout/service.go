package checkout

import (
	"context"
	"fmt"

	"cursos_app_echo/internal/models"
	"cursos_app_echo/internal/payments"
	"cursos_app_echo/internal/services"
)

// OrderCreator creates orders on the API
type OrderCreator interface {
	CreateOrder(ctx context.Context, token string, req services.CreateOrderRequest) (models.Order, error)
}

// Result is a created order and where to send the buyer next
type Result struct {
	Order       models.Order
	RedirectURL string
}

// Service runs the checkout submission
type Service struct {
	catalog *payments.Catalog
	orders  OrderCreator
}

// NewService creates a checkout service
func NewService(catalog *payments.Catalog, orders OrderCreator) *Service {
	return &Service{catalog: catalog, orders: orders}
}

// Catalog returns the payment methods offered at checkout
func (s *Service) Catalog() *payments.Catalog {
	return s.catalog
}

// Submit validates the form, creates the order and returns the confirmation
// URL for the chosen method. Invalid forms return *ValidationError without
// contacting the API.
func (s *Service) Submit(ctx context.Context, token string, form Form) (Result, error) {
	form.Normalize()
	if errs := form.Validate(s.catalog); len(errs) > 0 {
		return Result{}, &ValidationError{Fields: errs}
	}

	order, err := s.orders.CreateOrder(ctx, token, services.CreateOrderRequest{
		BuyerName:     form.BuyerName,
		BuyerEmail:    form.BuyerEmail,
		Method:        form.Method,
		CourseSlug:    form.CourseSlug,
		TermsAccepted: form.AcceptedTerms(),
	})
	if err != nil {
		return Result{}, fmt.Errorf("create order: %w", err)
	}

	return Result{
		Order:       order,
		RedirectURL: ConfirmationURL(s.catalog, order.ID, payments.MethodKey(form.Method)),
	}, nil
}
