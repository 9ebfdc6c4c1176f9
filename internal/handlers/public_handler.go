package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"cursos_app_echo/web/templates/pages"
	"cursos_app_echo/web/templates/shared"
)

// PublicHandler serves pages that need no session
type PublicHandler struct {
	layouts *Layouts
}

// NewPublicHandler creates a new PublicHandler
func NewPublicHandler(layouts *Layouts) *PublicHandler {
	return &PublicHandler{layouts: layouts}
}

// Terms renders the terms and conditions
func (h *PublicHandler) Terms(c echo.Context) error {
	props := pages.TermsProps{
		Layout: h.layouts.Build(c, "Términos y Condiciones", "",
			shared.Breadcrumb{Title: "Cursos", URL: "/courses"},
			shared.Breadcrumb{Title: "Términos", URL: ""},
		),
	}
	return render(c, http.StatusOK, pages.Terms(props))
}

// Healthz reports liveness
func (h *PublicHandler) Healthz(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
