package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"cursos_app_echo/internal/models"
	"cursos_app_echo/internal/payments"
	"cursos_app_echo/internal/projection"
	"cursos_app_echo/internal/reconcile"
	"cursos_app_echo/internal/services"
	"cursos_app_echo/internal/session"
	"cursos_app_echo/web/templates/pages"
	"cursos_app_echo/web/templates/shared"
)

// AdminOrderHandler lets admins review and reconcile orders
type AdminOrderHandler struct {
	reconcile *reconcile.Service
	events    EventLister
	catalog   *payments.Catalog
	layouts   *Layouts
}

// NewAdminOrderHandler creates a new AdminOrderHandler. events may be nil when
// the audit trail is disabled.
func NewAdminOrderHandler(svc *reconcile.Service, events EventLister, catalog *payments.Catalog, layouts *Layouts) *AdminOrderHandler {
	return &AdminOrderHandler{reconcile: svc, events: events, catalog: catalog, layouts: layouts}
}

func actorFrom(c echo.Context) reconcile.Actor {
	s := session.FromContext(c)
	actor := reconcile.Actor{Token: s.Token()}
	if user, ok := s.User(); ok {
		actor.Email = user.Email
	}
	return actor
}

// ListOrders renders every order, fetched fresh from the API
func (h *AdminOrderHandler) ListOrders(c echo.Context) error {
	props := pages.AdminOrdersProps{
		Layout: h.layouts.Build(c, "Órdenes", "admin",
			shared.Breadcrumb{Title: "CRM", URL: ""},
		),
	}

	orders, err := h.reconcile.List(c.Request().Context(), actorFrom(c))
	if err != nil {
		if services.IsUnauthorized(err) {
			return h.layouts.expireSession(c)
		}
		c.Logger().Errorf("failed to load admin orders: %v", err)
		props.LoadError = services.ErrorMessage(err, "Error al cargar las órdenes.")
		return render(c, http.StatusBadGateway, pages.AdminOrders(props))
	}

	props.Rows = projection.AdminRows(orders, h.catalog)
	if h.events != nil {
		ids := make([]string, 0, len(orders))
		for _, o := range orders {
			ids = append(ids, o.ID)
		}
		history, err := h.events.ListForOrders(c.Request().Context(), ids)
		if err != nil {
			c.Logger().Warnf("failed to load order events: %v", err)
		}
		props.History = history
	}
	return render(c, http.StatusOK, pages.AdminOrders(props))
}

// ConfirmPage is the explicit confirmation step before a transition
func (h *AdminOrderHandler) ConfirmPage(c echo.Context) error {
	id := c.Param("id")
	target, err := reconcile.ParseTarget(c.QueryParam("status"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Estado inválido")
	}

	order, err := h.reconcile.Pending(c.Request().Context(), actorFrom(c), id)
	if err != nil {
		return h.transitionFailed(c, id, target, err)
	}

	props := pages.AdminConfirmProps{
		Layout: h.layouts.Build(c, "Confirmar", "admin",
			shared.Breadcrumb{Title: "CRM", URL: "/admin/orders"},
			shared.Breadcrumb{Title: "#" + order.ShortID(), URL: ""},
		),
		Order:       order,
		ShortID:     order.ShortID(),
		Target:      target,
		TargetLabel: reconcile.TargetLabel(target),
		ActionURL:   "/admin/orders/" + url.PathEscape(order.ID) + "/status",
	}
	if h.events != nil {
		events, err := h.events.ListForOrder(c.Request().Context(), order.ID)
		if err != nil {
			c.Logger().Warnf("failed to load events for order %s: %v", order.ID, err)
		}
		props.Events = events
	}
	return render(c, http.StatusOK, pages.AdminConfirm(props))
}

// UpdateStatus applies a confirmed transition and returns to the refreshed list
func (h *AdminOrderHandler) UpdateStatus(c echo.Context) error {
	id := c.Param("id")
	target, err := reconcile.ParseTarget(c.FormValue("status"))
	if err != nil {
		return h.transitionFailed(c, id, "", err)
	}
	confirmed := c.FormValue("confirmed") == "true"

	updated, err := h.reconcile.Transition(c.Request().Context(), actorFrom(c), id, target, confirmed)
	if err != nil {
		return h.transitionFailed(c, id, target, err)
	}

	msg := fmt.Sprintf("Pedido #%s aprobado.", updated.ShortID())
	if target == models.OrderStatusRejected {
		msg = fmt.Sprintf("Pedido #%s rechazado.", updated.ShortID())
	}
	h.layouts.Flash(c, session.FlashSuccess, msg)
	return c.Redirect(http.StatusSeeOther, "/admin/orders")
}

func (h *AdminOrderHandler) transitionFailed(c echo.Context, id string, target models.OrderStatus, err error) error {
	switch {
	case errors.Is(err, reconcile.ErrInvalidTarget):
		return echo.NewHTTPError(http.StatusBadRequest, "Estado inválido")
	case errors.Is(err, reconcile.ErrNotConfirmed):
		return c.Redirect(http.StatusSeeOther, projection.ConfirmURL(id, target))
	case errors.Is(err, reconcile.ErrOrderNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "Pedido no encontrado")
	case errors.Is(err, reconcile.ErrNotPending):
		h.layouts.Flash(c, session.FlashError, "El pedido ya no está pendiente. La lista fue actualizada.")
	case services.IsUnauthorized(err):
		return h.layouts.expireSession(c)
	default:
		c.Logger().Errorf("order %s transition failed: %v", id, err)
		h.layouts.Flash(c, session.FlashError, services.ErrorMessage(err, "No se pudo actualizar el pedido."))
	}
	return c.Redirect(http.StatusSeeOther, "/admin/orders")
}
