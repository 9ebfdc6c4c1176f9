package projection

import (
	"fmt"
	"net/url"

	"cursos_app_echo/internal/checkout"
	"cursos_app_echo/internal/models"
	"cursos_app_echo/internal/payments"
)

// AdminAction is a reconciliation button for a pending order
type AdminAction struct {
	Target     models.OrderStatus
	Label      string
	ConfirmURL string
}

// AdminRow is one order on the admin list
type AdminRow struct {
	Order      models.Order
	ShortID    string
	Label      string
	Style      Style
	Method     string
	Amount     string
	ReceiptURL string
	Actions    []AdminAction
	Completed  string
}

// Actionable reports whether the row exposes Aprobar/Rechazar
func (r AdminRow) Actionable() bool {
	return len(r.Actions) > 0
}

// AdminView projects an order for the admin list. Only PENDING orders can be
// transitioned; terminal ones get a static completion label.
func AdminView(o models.Order, catalog *payments.Catalog) AdminRow {
	view := Project(o, catalog, Links{})
	row := AdminRow{
		Order:   o,
		ShortID: o.ShortID(),
		Label:   view.Label,
		Style:   view.Style,
	}

	if p, ok := o.LatestPayment(); ok {
		row.Method = catalog.Describe(payments.MethodKey(p.Method)).Label
		row.Amount = checkout.Price{Amount: p.Amount, Currency: p.Currency}.String()
		if p.ReceiptURL != nil {
			row.ReceiptURL = *p.ReceiptURL
		}
	}

	if o.Status == models.OrderStatusPending {
		row.Actions = []AdminAction{
			{Target: models.OrderStatusPaid, Label: "Aprobar", ConfirmURL: ConfirmURL(o.ID, models.OrderStatusPaid)},
			{Target: models.OrderStatusRejected, Label: "Rechazar", ConfirmURL: ConfirmURL(o.ID, models.OrderStatusRejected)},
		}
		return row
	}
	row.Completed = "Completado"
	return row
}

// AdminRows projects every order for the admin list
func AdminRows(orders []models.Order, catalog *payments.Catalog) []AdminRow {
	rows := make([]AdminRow, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, AdminView(o, catalog))
	}
	return rows
}

// ConfirmURL is the confirmation step shown before a transition is posted
func ConfirmURL(orderID string, target models.OrderStatus) string {
	return fmt.Sprintf("/admin/orders/%s/confirm?status=%s", url.PathEscape(orderID), url.QueryEscape(string(target)))
}
