package projection

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cursos_app_echo/internal/models"
	"cursos_app_echo/internal/payments"
)

var links = Links{Support: "https://wa.me/5491122334455"}

func order(status models.OrderStatus, ps ...models.Payment) models.Order {
	return models.Order{
		ID:       "65f1c0ffee1234abc123",
		Status:   status,
		Course:   models.Course{Slug: "fansly-master", Title: "Fansly Master"},
		Payments: ps,
	}
}

func payment(method string, status models.PaymentStatus) models.Payment {
	return models.Payment{Method: method, Status: status, Amount: 60, Currency: "USD"}
}

var allStatuses = []models.OrderStatus{
	models.OrderStatusPending,
	models.OrderStatusPaid,
	models.OrderStatusRejected,
	models.OrderStatusCancelled,
	"REFUNDED",
	"",
}

var allPaymentStatuses = []models.PaymentStatus{
	models.PaymentStatusPending,
	models.PaymentStatusPendingReview,
	models.PaymentStatusApproved,
	models.PaymentStatusRejected,
}

func TestUnderReviewImpliesPending(t *testing.T) {
	for _, s := range allStatuses {
		for _, ps := range allPaymentStatuses {
			o := order(s, payment("TRANSFER", models.PaymentStatusPending), payment("TRANSFER", ps))
			if IsUnderReview(o) {
				assert.Equal(t, models.OrderStatusPending, o.Status)
			}
		}
	}

	assert.True(t, IsUnderReview(order(models.OrderStatusPending, payment("TRANSFER", models.PaymentStatusPending), payment("TRANSFER", models.PaymentStatusPendingReview))))
	assert.False(t, IsUnderReview(order(models.OrderStatusPending)))
	assert.False(t, IsUnderReview(order(models.OrderStatusPaid, payment("TRANSFER", models.PaymentStatusPendingReview))))
}

func TestPaidNeverResumes(t *testing.T) {
	catalog := payments.DefaultCatalog()
	for _, ps := range allPaymentStatuses {
		view := Project(order(models.OrderStatusPaid, payment("TIPFUNDER", ps)), catalog, links)
		assert.NotEqual(t, ActionResumePayment, view.Action.Kind)
		assert.Equal(t, "Aprobado", view.Label)
	}
}

func TestProject(t *testing.T) {
	catalog := payments.DefaultCatalog()

	tests := []struct {
		name   string
		order  models.Order
		label  string
		style  Style
		action ActionKind
	}{
		{"under review", order(models.OrderStatusPending, payment("TRANSFER", models.PaymentStatusPendingReview)), "En Revisión", StyleReview, ActionVerifying},
		{"paid", order(models.OrderStatusPaid), "Aprobado", StyleApproved, ActionOpenCourse},
		{"pending", order(models.OrderStatusPending, payment("TRANSFER", models.PaymentStatusPending)), "Pago Pendiente", StylePending, ActionResumePayment},
		{"rejected", order(models.OrderStatusRejected), "Rechazado", StyleRejected, ActionContactSupport},
		{"cancelled", order(models.OrderStatusCancelled), "Cancelado", StyleCancelled, ActionNone},
		{"unknown status", order("REFUNDED"), "Cancelado", StyleCancelled, ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := Project(tt.order, catalog, links)
			assert.Equal(t, tt.label, view.Label)
			assert.Equal(t, tt.style, view.Style)
			assert.Equal(t, tt.action, view.Action.Kind)
		})
	}

	rejected := Project(order(models.OrderStatusRejected), catalog, links)
	assert.Equal(t, links.Support, rejected.Action.URL)
}

func TestResumeURL(t *testing.T) {
	catalog := payments.DefaultCatalog()
	tipfunder, _ := catalog.Lookup(payments.MethodTipfunder)

	transfer := order(models.OrderStatusPending, payment("TRANSFER", models.PaymentStatusPending))
	assert.Equal(t, "/success?orderId=65f1c0ffee1234abc123&method=TRANSFER", ResumeURL(transfer, catalog))

	noPayment := order(models.OrderStatusPending)
	u, err := url.Parse(ResumeURL(noPayment, catalog))
	require.NoError(t, err)
	assert.Equal(t, "TIPFUNDER", u.Query().Get("method"))
	assert.Equal(t, tipfunder.Link, u.Query().Get("payLink"))

	// the latest attempt is the first one
	switched := order(models.OrderStatusPending, payment("USDT", models.PaymentStatusPending), payment("TIPFUNDER", models.PaymentStatusRejected))
	assert.Equal(t, "/success?orderId=65f1c0ffee1234abc123&method=USDT", ResumeURL(switched, catalog))

	assert.Equal(t, ResumeURL(transfer, catalog), ResumeURL(transfer, catalog))
}

func TestOpenCourse(t *testing.T) {
	catalog := payments.DefaultCatalog()

	multiple := order(models.OrderStatusPaid)
	multiple.Course.AccessLinks = []models.AccessLink{
		{Title: "Grupo de Telegram", URL: "https://t.me/grupo"},
		{Title: "Carpeta Drive", URL: "https://drive.google.com/x"},
	}
	multiple.Course.AccessLink = "https://ignored.test"
	view := Project(multiple, catalog, links)
	require.Len(t, view.Action.Choices, 2)
	assert.Equal(t, "✈️", view.Action.Choices[0].Icon)
	assert.Equal(t, "📂", view.Action.Choices[1].Icon)
	assert.Empty(t, view.Action.URL)

	single := order(models.OrderStatusPaid)
	single.Course.AccessLink = "https://t.me/curso"
	view = Project(single, catalog, links)
	assert.Equal(t, "https://t.me/curso", view.Action.URL)
	assert.True(t, view.Action.External)
	assert.Empty(t, view.Action.Choices)

	internal := Project(order(models.OrderStatusPaid), catalog, links)
	assert.Equal(t, "/courses/fansly-master", internal.Action.URL)
	assert.False(t, internal.Action.External)
}

func TestIconFor(t *testing.T) {
	tests := []struct {
		title    string
		expected string
	}{
		{"Canal de TELEGRAM", "✈️"},
		{"Google Drive", "📂"},
		{"Clase por Zoom", "📹"},
		{"Clase en vivo", "📹"},
		{"Grabación del taller", "📼"},
		{"Web", "🔗"},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.expected, IconFor(tt.title))
		})
	}
}

func TestAdminView(t *testing.T) {
	catalog := payments.DefaultCatalog()
	receipt := "https://files.test/r.png"
	p := payment("TIPFUNDER", models.PaymentStatusPendingReview)
	p.ReceiptURL = &receipt

	row := AdminView(order(models.OrderStatusPending, p), catalog)
	require.True(t, row.Actionable())
	assert.Equal(t, "Aprobar", row.Actions[0].Label)
	assert.Equal(t, models.OrderStatusPaid, row.Actions[0].Target)
	assert.Equal(t, "/admin/orders/65f1c0ffee1234abc123/confirm?status=PAID", row.Actions[0].ConfirmURL)
	assert.Equal(t, "Rechazar", row.Actions[1].Label)
	assert.Equal(t, "En Revisión", row.Label)
	assert.Equal(t, receipt, row.ReceiptURL)
	assert.Equal(t, "USD 60", row.Amount)
	assert.Equal(t, "abc123", row.ShortID)
	assert.Empty(t, row.Completed)

	for _, s := range []models.OrderStatus{models.OrderStatusPaid, models.OrderStatusRejected, models.OrderStatusCancelled} {
		row := AdminView(order(s, p), catalog)
		assert.False(t, row.Actionable(), s)
		assert.Equal(t, "Completado", row.Completed)
	}

	unknownMethod := AdminView(order(models.OrderStatusPending, payment("LEGACY", models.PaymentStatusPending)), catalog)
	assert.NotEmpty(t, unknownMethod.Method)
}

func TestRows(t *testing.T) {
	catalog := payments.DefaultCatalog()
	orders := []models.Order{order(models.OrderStatusPaid), order(models.OrderStatusCancelled)}

	rows := Rows(orders, catalog, links)
	require.Len(t, rows, 2)
	assert.Equal(t, "abc123", rows[0].ShortID)
	assert.Equal(t, "Cancelado", rows[1].View.Label)
	assert.Len(t, AdminRows(orders, catalog), 2)
}
