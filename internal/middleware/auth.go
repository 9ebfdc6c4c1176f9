package middleware

import (
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"cursos_app_echo/internal/models"
	"cursos_app_echo/internal/session"
)

// LoadSession resolves the signed-in user for every request. API failures
// leave the request anonymous instead of failing it.
func LoadSession(m *session.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, err := m.Init(c); err != nil {
				c.Logger().Warnf("session init failed: %v", err)
			}
			return next(c)
		}
	}
}

// RequireAuth redirects anonymous visitors to the login page, remembering
// where they were going
func RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !session.FromContext(c).Authenticated() {
				return c.Redirect(http.StatusSeeOther, LoginURL(c.Request().URL.RequestURI()))
			}
			return next(c)
		}
	}
}

// RequireRole only lets users with role through. Signed-in users without it
// are sent back to the course list.
func RequireRole(role models.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := session.FromContext(c).User()
			if !ok {
				return c.Redirect(http.StatusSeeOther, LoginURL(c.Request().URL.RequestURI()))
			}
			if user.Role != role {
				return c.Redirect(http.StatusSeeOther, "/courses")
			}
			return next(c)
		}
	}
}

// LoginURL is the login page returning to next after signing in
func LoginURL(next string) string {
	if next == "" || next == "/" {
		return "/login"
	}
	return "/login?next=" + url.QueryEscape(next)
}
