package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"cursos_app_echo/internal/payments"
	"cursos_app_echo/internal/projection"
	"cursos_app_echo/internal/services"
	"cursos_app_echo/internal/session"
	"cursos_app_echo/web/templates/pages"
	"cursos_app_echo/web/templates/shared"
)

// AccountHandler renders the buyer's order history
type AccountHandler struct {
	orders  OrderLister
	catalog *payments.Catalog
	layouts *Layouts
}

// NewAccountHandler creates a new AccountHandler
func NewAccountHandler(orders OrderLister, catalog *payments.Catalog, layouts *Layouts) *AccountHandler {
	return &AccountHandler{orders: orders, catalog: catalog, layouts: layouts}
}

// Account lists the user's orders with their projected status and action.
// Orders are fetched on every request.
func (h *AccountHandler) Account(c echo.Context) error {
	props := pages.AccountProps{
		Layout: h.layouts.Build(c, "Mi cuenta", "account",
			shared.Breadcrumb{Title: "Cursos", URL: "/courses"},
			shared.Breadcrumb{Title: "Mi cuenta", URL: ""},
		),
	}

	orders, err := h.orders.MyOrders(c.Request().Context(), session.FromContext(c).Token())
	if err != nil {
		if services.IsUnauthorized(err) {
			return h.layouts.expireSession(c)
		}
		c.Logger().Errorf("failed to load orders: %v", err)
		props.LoadError = services.ErrorMessage(err, "Error al cargar historial.")
		return render(c, http.StatusBadGateway, pages.Account(props))
	}

	props.Rows = projection.Rows(orders, h.catalog, projection.Links{Support: h.layouts.SupportURL()})
	return render(c, http.StatusOK, pages.Account(props))
}
