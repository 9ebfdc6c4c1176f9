package handlers

import (
	"errors"
	"html"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cursos_app_echo/internal/models"
)

func receipt(link string) *string {
	return &link
}

func TestAccountProjectsOrders(t *testing.T) {
	app := newTestApp(t)
	cookies := app.login(t, "ana@demo.test")

	course := app.api.courses[0]
	paidCourse := course
	paidCourse.AccessLink = "https://t.me/+fanslymaster"

	app.api.myOrders = []models.Order{
		{ID: "ord_paid000001", Status: models.OrderStatusPaid, Course: paidCourse},
		{ID: "ord_pend000002", Status: models.OrderStatusPending, Course: course, Payments: []models.Payment{
			{Method: "TRANSFER", Status: models.PaymentStatusPending},
		}},
		{ID: "ord_revi000003", Status: models.OrderStatusPending, Course: course, Payments: []models.Payment{
			{Method: "TRANSFER", Status: models.PaymentStatusPendingReview, ReceiptURL: receipt("https://files.example/r.png")},
		}},
		{ID: "ord_reje000004", Status: models.OrderStatusRejected, Course: course},
	}

	rec := app.get("/account", cookies)
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()

	assert.Contains(t, body, "Aprobado")
	assert.Contains(t, body, "Acceder al curso")
	assert.Contains(t, html.UnescapeString(body), `href="https://t.me/+fanslymaster"`)

	assert.Contains(t, body, "Pago Pendiente")
	assert.Contains(t, body, "Continuar Pago / Subir")
	assert.Contains(t, body, "/success?orderId=ord_pend000002")

	assert.Contains(t, body, "En Revisión")
	assert.Contains(t, body, "Verificando pago")

	assert.Contains(t, body, "Rechazado")
	assert.Contains(t, body, "Contactar soporte")
	assert.Contains(t, body, supportURL)

	assert.NotContains(t, body, "Aún no tienes pedidos")
}

func TestAccountEmptyState(t *testing.T) {
	app := newTestApp(t)
	cookies := app.login(t, "ana@demo.test")

	rec := app.get("/account", cookies)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Aún no tienes pedidos")
}

func TestAccountAPIError(t *testing.T) {
	app := newTestApp(t)
	cookies := app.login(t, "ana@demo.test")
	app.api.myOrdersErr = errors.New("timeout")

	rec := app.get("/account", cookies)
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "Error al cargar historial.")
	assert.NotContains(t, rec.Body.String(), "Aún no tienes pedidos")
}

func TestAccountExpiredToken(t *testing.T) {
	app := newTestApp(t)
	cookies := app.login(t, "ana@demo.test")
	app.api.myOrdersErr = unauthorized()

	rec := app.get("/account", cookies)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login?next=%2Faccount&expired=1", rec.Header().Get(echo.HeaderLocation))
}
