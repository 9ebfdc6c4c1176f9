package reconcile

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"

	"cursos_app_echo/internal/models"
	"cursos_app_echo/internal/payments"
	"cursos_app_echo/internal/projection"
)

type fakeAPI struct {
	orders      map[string]models.Order
	order       []string
	updateCalls int
	updateErr   error
}

func (f *fakeAPI) AdminOrders(ctx context.Context, token string) ([]models.Order, error) {
	list := make([]models.Order, 0, len(f.order))
	for _, id := range f.order {
		list = append(list, f.orders[id])
	}
	return list, nil
}

func (f *fakeAPI) UpdateOrderStatus(ctx context.Context, token, orderID string, status models.OrderStatus) (models.Order, error) {
	f.updateCalls++
	if f.updateErr != nil {
		return models.Order{}, f.updateErr
	}
	o := f.orders[orderID]
	o.Status = status
	f.orders[orderID] = o
	return o, nil
}

type fakeAudit struct {
	events []models.OrderEvent
	err    error
}

func (f *fakeAudit) Record(ctx context.Context, event *models.OrderEvent) error {
	if f.err != nil {
		return f.err
	}
	f.events = append(f.events, *event)
	return nil
}

type ReconcileTestSuite struct {
	suite.Suite
	api     *fakeAPI
	audit   *fakeAudit
	svc     *Service
	catalog *payments.Catalog
	admin   Actor
	ctx     context.Context
}

func (s *ReconcileTestSuite) SetupTest() {
	receipt := "https://files.test/receipt.png"
	s.api = &fakeAPI{
		orders: map[string]models.Order{
			"ord_pending": {
				ID:     "ord_pending",
				Status: models.OrderStatusPending,
				Payments: []models.Payment{
					{Method: "TRANSFER", Status: models.PaymentStatusPendingReview, ReceiptURL: &receipt},
				},
			},
			"ord_paid": {ID: "ord_paid", Status: models.OrderStatusPaid},
		},
		order: []string{"ord_pending", "ord_paid"},
	}
	s.audit = &fakeAudit{}
	s.svc = NewService(s.api, s.audit)
	s.catalog = payments.DefaultCatalog()
	s.admin = Actor{Token: "admin-token", Email: "admin@cursos.test"}
	s.ctx = context.Background()
}

func (s *ReconcileTestSuite) rowFor(id string) projection.AdminRow {
	orders, err := s.svc.List(s.ctx, s.admin)
	s.Require().NoError(err)
	for _, row := range projection.AdminRows(orders, s.catalog) {
		if row.Order.ID == id {
			return row
		}
	}
	s.FailNow("order not listed", id)
	return projection.AdminRow{}
}

func (s *ReconcileTestSuite) TestApproveRemovesActions() {
	s.True(s.rowFor("ord_pending").Actionable())

	updated, err := s.svc.Transition(s.ctx, s.admin, "ord_pending", models.OrderStatusPaid, true)
	s.NoError(err)
	s.Equal(models.OrderStatusPaid, updated.Status)
	s.Equal(1, s.api.updateCalls)

	row := s.rowFor("ord_pending")
	s.False(row.Actionable())
	s.Equal("Aprobado", row.Label)

	s.Require().Len(s.audit.events, 1)
	s.Equal(models.OrderEventStatusChanged, s.audit.events[0].Action)
	s.Equal(models.OrderStatusPending, s.audit.events[0].FromStatus)
	s.Equal(models.OrderStatusPaid, s.audit.events[0].ToStatus)
	s.Equal("admin@cursos.test", s.audit.events[0].ActorEmail)
}

func (s *ReconcileTestSuite) TestRejectShowsRejectedToBuyer() {
	_, err := s.svc.Transition(s.ctx, s.admin, "ord_pending", models.OrderStatusRejected, true)
	s.NoError(err)

	view := projection.Project(s.api.orders["ord_pending"], s.catalog, projection.Links{Support: "https://wa.me/549111"})
	s.Equal("Rechazado", view.Label)
	s.Equal(projection.ActionContactSupport, view.Action.Kind)
	s.False(s.rowFor("ord_pending").Actionable())
}

func (s *ReconcileTestSuite) TestLowercaseTargetIsNormalized() {
	updated, err := s.svc.Transition(s.ctx, s.admin, "ord_pending", models.OrderStatus(" paid "), true)
	s.NoError(err)
	s.Equal(models.OrderStatusPaid, updated.Status)
	s.Equal(models.OrderStatusPaid, s.api.orders["ord_pending"].Status)

	s.Require().Len(s.audit.events, 1)
	s.Equal(models.OrderStatusPaid, s.audit.events[0].ToStatus)
}

func (s *ReconcileTestSuite) TestUnconfirmedMakesNoCall() {
	_, err := s.svc.Transition(s.ctx, s.admin, "ord_pending", models.OrderStatusPaid, false)
	s.ErrorIs(err, ErrNotConfirmed)
	s.Equal(0, s.api.updateCalls)
}

func (s *ReconcileTestSuite) TestInvalidTarget() {
	for _, target := range []models.OrderStatus{models.OrderStatusPending, models.OrderStatusCancelled, "BOGUS"} {
		_, err := s.svc.Transition(s.ctx, s.admin, "ord_pending", target, true)
		s.ErrorIs(err, ErrInvalidTarget)
	}
	s.Equal(0, s.api.updateCalls)
}

func (s *ReconcileTestSuite) TestStaleDecisionRefused() {
	_, err := s.svc.Transition(s.ctx, s.admin, "ord_paid", models.OrderStatusRejected, true)
	s.ErrorIs(err, ErrNotPending)
	s.Equal(0, s.api.updateCalls)

	s.Require().Len(s.audit.events, 1)
	s.Equal(models.OrderEventStaleRefused, s.audit.events[0].Action)
	s.Equal(models.OrderStatusPaid, s.audit.events[0].FromStatus)
}

func (s *ReconcileTestSuite) TestUnknownOrder() {
	_, err := s.svc.Transition(s.ctx, s.admin, "ord_missing", models.OrderStatusPaid, true)
	s.ErrorIs(err, ErrOrderNotFound)
	s.Equal(0, s.api.updateCalls)
}

func (s *ReconcileTestSuite) TestUpdateFailureRecordsNothing() {
	s.api.updateErr = errors.New("boom")
	_, err := s.svc.Transition(s.ctx, s.admin, "ord_pending", models.OrderStatusPaid, true)
	s.Error(err)
	s.Empty(s.audit.events)
	s.True(s.rowFor("ord_pending").Actionable())
}

func (s *ReconcileTestSuite) TestAuditFailureIsBestEffort() {
	s.audit.err = errors.New("db down")
	_, err := s.svc.Transition(s.ctx, s.admin, "ord_pending", models.OrderStatusPaid, true)
	s.NoError(err)
}

func (s *ReconcileTestSuite) TestWithoutAudit() {
	svc := NewService(s.api, nil)
	_, err := svc.Transition(s.ctx, s.admin, "ord_pending", models.OrderStatusPaid, true)
	s.NoError(err)
}

func (s *ReconcileTestSuite) TestParseTarget() {
	target, err := ParseTarget(" paid ")
	s.NoError(err)
	s.Equal(models.OrderStatusPaid, target)
	s.Equal("Aprobar", TargetLabel(target))
	s.Equal("Rechazar", TargetLabel(models.OrderStatusRejected))

	_, err = ParseTarget("CANCELLED")
	s.ErrorIs(err, ErrInvalidTarget)
}

func TestReconcileTestSuite(t *testing.T) {
	suite.Run(t, new(ReconcileTestSuite))
}
