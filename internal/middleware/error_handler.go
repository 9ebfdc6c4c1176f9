package middleware

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"cursos_app_echo/internal/session"
	"cursos_app_echo/web/templates/pages"
	"cursos_app_echo/web/templates/shared"
)

// CustomErrorHandler renders HTTP errors as a page within the site layout
func CustomErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		c.Logger().Error(err)
		return
	}

	code := http.StatusInternalServerError
	errorTitle := "Error del servidor"
	errorMessage := ""

	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		if msg, ok := he.Message.(string); ok && msg != "" {
			errorMessage = msg
		}

		switch code {
		case http.StatusNotFound:
			errorTitle = "Página no encontrada"
			if errorMessage == "" || errorMessage == http.StatusText(code) {
				errorMessage = "La página que buscás no existe."
			}
		case http.StatusForbidden:
			errorTitle = "Acceso denegado"
			if errorMessage == "" {
				errorMessage = "No tenés permiso para ver esta página."
			}
		case http.StatusUnauthorized:
			errorTitle = "Sesión requerida"
			if errorMessage == "" {
				errorMessage = "Iniciá sesión para continuar."
			}
		case http.StatusBadRequest:
			errorTitle = "Solicitud inválida"
			if errorMessage == "" {
				errorMessage = "No pudimos procesar la solicitud."
			}
		default:
			if errorMessage == "" || code >= http.StatusInternalServerError {
				errorMessage = "Algo salió mal. Intentá de nuevo más tarde."
			}
		}
	} else {
		errorMessage = "Algo salió mal. Intentá de nuevo más tarde."
	}

	if code >= http.StatusInternalServerError {
		c.Logger().Error(err)
	}

	layout := shared.Layout{
		Title: errorTitle,
		Breadcrumbs: []shared.Breadcrumb{
			{Title: "Cursos", URL: "/courses"},
			{Title: "Error", URL: ""},
		},
	}
	if user, ok := session.FromContext(c).User(); ok {
		layout.UserEmail = user.Email
		layout.UserName = user.DisplayName()
		layout.IsAdmin = user.IsAdmin()
	}

	props := pages.ErrorPageProps{
		Layout:       layout,
		ErrorTitle:   errorTitle,
		ErrorMessage: errorMessage,
	}

	if c.Request().Method == http.MethodHead {
		c.NoContent(code)
		return
	}

	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(code)
	if renderErr := pages.ErrorPage(props).Render(c.Request().Context(), c.Response()); renderErr != nil {
		c.Logger().Error(fmt.Errorf("failed to render error page: %w", renderErr))
		c.String(code, errorMessage)
	}
}
