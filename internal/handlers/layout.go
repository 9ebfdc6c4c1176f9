package handlers

import (
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"

	"cursos_app_echo/internal/middleware"
	"cursos_app_echo/internal/session"
	"cursos_app_echo/web/templates/shared"
)

// Layouts builds the chrome shared by every page: navbar user, flashes and
// the support link
type Layouts struct {
	sessions   *session.Manager
	supportURL string
}

// NewLayouts creates a Layouts
func NewLayouts(sessions *session.Manager, supportURL string) *Layouts {
	return &Layouts{sessions: sessions, supportURL: supportURL}
}

// Build returns the layout for the current request, consuming pending flashes
func (l *Layouts) Build(c echo.Context, title, activeNav string, breadcrumbs ...shared.Breadcrumb) shared.Layout {
	layout := shared.Layout{
		Title:       title,
		ActiveNav:   activeNav,
		Breadcrumbs: breadcrumbs,
		UserEmail:   getStringFromContext(c, "userEmail"),
		SupportURL:  l.supportURL,
	}
	if user, ok := session.FromContext(c).User(); ok {
		layout.UserName = user.DisplayName()
		layout.IsAdmin = user.IsAdmin()
	}

	if l.sessions != nil {
		for _, kind := range []string{session.FlashSuccess, session.FlashError} {
			for _, msg := range l.sessions.Flashes(c, kind) {
				layout.Flashes = append(layout.Flashes, shared.Flash{Kind: kind, Message: msg})
			}
		}
	}
	return layout
}

// Flash queues a notification for the next page
func (l *Layouts) Flash(c echo.Context, kind, message string) {
	if l.sessions != nil {
		l.sessions.AddFlash(c, kind, message)
	}
}

// SupportURL is the configured contact link
func (l *Layouts) SupportURL() string {
	return l.supportURL
}

// expireSession handles a token the API no longer accepts: drop it and send
// the user to log in again
func (l *Layouts) expireSession(c echo.Context) error {
	if l.sessions != nil {
		if err := l.sessions.Teardown(c); err != nil {
			c.Logger().Errorf("failed to tear down session: %v", err)
		}
	}
	target := middleware.LoginURL(c.Request().URL.RequestURI())
	if strings.Contains(target, "?") {
		target += "&expired=1"
	} else {
		target += "?expired=1"
	}
	return c.Redirect(http.StatusSeeOther, target)
}

func render(c echo.Context, status int, component templ.Component) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(status)
	return component.Render(c.Request().Context(), c.Response())
}

// Helper to safely get string from context
func getStringFromContext(c echo.Context, key string) string {
	val := c.Get(key)
	if val == nil {
		return ""
	}
	strVal, ok := val.(string)
	if !ok {
		return ""
	}
	return strVal
}
