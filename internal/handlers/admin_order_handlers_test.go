package handlers

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cursos_app_echo/internal/models"
)

func seedAdminOrders(app *testApp) {
	course := app.api.courses[0]
	app.api.adminOrders = []models.Order{
		{ID: "ord_pending01", Status: models.OrderStatusPending, BuyerName: "Ana Pérez", BuyerEmail: "ana@demo.test", Course: course,
			Payments: []models.Payment{{Method: "TRANSFER", Status: models.PaymentStatusPendingReview, Amount: 85000, Currency: "ARS", ReceiptURL: receipt("https://files.example/r.png")}}},
		{ID: "ord_settled2", Status: models.OrderStatusPaid, BuyerName: "Luis", BuyerEmail: "luis@demo.test", Course: course},
	}
}

func TestAdminListOrders(t *testing.T) {
	app := newTestApp(t)
	seedAdminOrders(app)
	cookies := app.login(t, "admin@demo.test")

	rec := app.get("/admin/orders", cookies)
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Ana Pérez")
	assert.Contains(t, body, `href="/admin/orders/ord_pending01/confirm?status=PAID"`)
	assert.Contains(t, body, `href="/admin/orders/ord_pending01/confirm?status=REJECTED"`)
	assert.Contains(t, body, "Ver comprobante")
	assert.Contains(t, body, "ARS $85.000")
	assert.Contains(t, body, "Completado")
	assert.NotContains(t, body, "/admin/orders/ord_settled2/confirm")
}

func TestAdminConfirmPage(t *testing.T) {
	app := newTestApp(t)
	seedAdminOrders(app)
	cookies := app.login(t, "admin@demo.test")

	rec := app.get("/admin/orders/ord_pending01/confirm?status=PAID", cookies)
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "¿Aprobar el pedido #ding01?")
	assert.Contains(t, body, `action="/admin/orders/ord_pending01/status"`)
	assert.Contains(t, body, `name="confirmed" value="true"`)
	assert.Equal(t, 0, app.api.updateCalls)
}

func TestAdminConfirmPageErrors(t *testing.T) {
	app := newTestApp(t)
	seedAdminOrders(app)
	cookies := app.login(t, "admin@demo.test")

	rec := app.get("/admin/orders/ord_pending01/confirm?status=CANCELLED", cookies)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = app.get("/admin/orders/ord_missing/confirm?status=PAID", cookies)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = app.get("/admin/orders/ord_settled2/confirm?status=REJECTED", cookies)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/admin/orders", rec.Header().Get(echo.HeaderLocation))

	next := app.get("/admin/orders", refresh(cookies, rec))
	assert.Contains(t, next.Body.String(), "El pedido ya no está pendiente.")
}

func TestAdminUpdateStatusRequiresConfirmation(t *testing.T) {
	app := newTestApp(t)
	seedAdminOrders(app)
	cookies := app.login(t, "admin@demo.test")

	rec := app.postForm("/admin/orders/ord_pending01/status", url.Values{"status": {"PAID"}}, cookies)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/admin/orders/ord_pending01/confirm?status=PAID", rec.Header().Get(echo.HeaderLocation))
	assert.Equal(t, 0, app.api.updateCalls)
	assert.Empty(t, app.events.events)
}

func TestAdminUpdateStatusApproves(t *testing.T) {
	app := newTestApp(t)
	seedAdminOrders(app)
	cookies := app.login(t, "admin@demo.test")

	rec := app.postForm("/admin/orders/ord_pending01/status", url.Values{"status": {"PAID"}, "confirmed": {"true"}}, cookies)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/admin/orders", rec.Header().Get(echo.HeaderLocation))
	assert.Equal(t, 1, app.api.updateCalls)

	require.Len(t, app.events.events, 1)
	event := app.events.events[0]
	assert.Equal(t, models.OrderEventStatusChanged, event.Action)
	assert.Equal(t, models.OrderStatusPending, event.FromStatus)
	assert.Equal(t, models.OrderStatusPaid, event.ToStatus)
	assert.Equal(t, "admin@demo.test", event.ActorEmail)

	next := app.get("/admin/orders", refresh(cookies, rec))
	require.Equal(t, http.StatusOK, next.Code)
	body := next.Body.String()
	assert.Contains(t, body, "Pedido #ding01 aprobado.")
	assert.NotContains(t, body, "/admin/orders/ord_pending01/confirm")
	assert.Contains(t, body, "admin@demo.test")
}

func TestAdminUpdateStatusRejects(t *testing.T) {
	app := newTestApp(t)
	seedAdminOrders(app)
	cookies := app.login(t, "admin@demo.test")

	rec := app.postForm("/admin/orders/ord_pending01/status", url.Values{"status": {"REJECTED"}, "confirmed": {"true"}}, cookies)
	require.Equal(t, http.StatusSeeOther, rec.Code)

	next := app.get("/admin/orders", refresh(cookies, rec))
	assert.Contains(t, next.Body.String(), "Pedido #ding01 rechazado.")
	assert.Contains(t, next.Body.String(), "Rechazado")
}

func TestAdminUpdateStatusNormalizesTarget(t *testing.T) {
	app := newTestApp(t)
	seedAdminOrders(app)
	cookies := app.login(t, "admin@demo.test")

	rec := app.postForm("/admin/orders/ord_pending01/status", url.Values{"status": {"rejected"}, "confirmed": {"true"}}, cookies)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, models.OrderStatusRejected, app.api.adminOrders[0].Status)

	next := app.get("/admin/orders", refresh(cookies, rec))
	assert.Contains(t, next.Body.String(), "Pedido #ding01 rechazado.")
	assert.NotContains(t, next.Body.String(), "aprobado.")
}

func TestAdminUpdateStatusInvalidTarget(t *testing.T) {
	app := newTestApp(t)
	seedAdminOrders(app)
	cookies := app.login(t, "admin@demo.test")

	rec := app.postForm("/admin/orders/ord_pending01/status", url.Values{"status": {"CANCELLED"}, "confirmed": {"true"}}, cookies)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 0, app.api.updateCalls)
}

func TestAdminUpdateStatusRefusesStaleDecision(t *testing.T) {
	app := newTestApp(t)
	seedAdminOrders(app)
	cookies := app.login(t, "admin@demo.test")

	// another admin settled the order after this list was loaded
	app.api.adminOrders[0].Status = models.OrderStatusRejected

	rec := app.postForm("/admin/orders/ord_pending01/status", url.Values{"status": {"PAID"}, "confirmed": {"true"}}, cookies)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/admin/orders", rec.Header().Get(echo.HeaderLocation))
	assert.Equal(t, 0, app.api.updateCalls)

	require.Len(t, app.events.events, 1)
	assert.Equal(t, models.OrderEventStaleRefused, app.events.events[0].Action)

	next := app.get("/admin/orders", refresh(cookies, rec))
	assert.Contains(t, next.Body.String(), "El pedido ya no está pendiente.")
}
