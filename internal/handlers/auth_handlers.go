package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"cursos_app_echo/internal/services"
	"cursos_app_echo/internal/session"
	"cursos_app_echo/web/templates/pages"
	"cursos_app_echo/web/templates/shared"
)

// AuthHandler handles login, registration and logout
type AuthHandler struct {
	sessions *session.Manager
	courses  CourseFinder
	layouts  *Layouts
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(sessions *session.Manager, courses CourseFinder, layouts *Layouts) *AuthHandler {
	return &AuthHandler{sessions: sessions, courses: courses, layouts: layouts}
}

// LoginPage renders the login page
func (h *AuthHandler) LoginPage(c echo.Context) error {
	if session.FromContext(c).Authenticated() {
		return c.Redirect(http.StatusSeeOther, "/courses")
	}
	notice := ""
	if c.QueryParam("expired") == "1" {
		notice = "Tu sesión expiró. Ingresá de nuevo."
	}
	return h.renderLogin(c, http.StatusOK, LoginForm{Next: c.QueryParam("next")}, nil, notice)
}

// HandleLogin authenticates against the API and starts the session
func (h *AuthHandler) HandleLogin(c echo.Context) error {
	var form LoginForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Formulario inválido")
	}
	if errs := form.Validate(); len(errs) > 0 {
		return h.renderLogin(c, http.StatusUnprocessableEntity, form, errs, "")
	}

	if _, err := h.sessions.Login(c, form.Email, form.Password); err != nil {
		c.Logger().Warnf("login failed for %s: %v", form.Email, err)
		return h.renderLogin(c, http.StatusUnauthorized, form, nil, services.ErrorMessage(err, "Credenciales inválidas"))
	}

	return c.Redirect(http.StatusSeeOther, safeNext(form.Next))
}

func (h *AuthHandler) renderLogin(c echo.Context, status int, form LoginForm, errs map[string]string, notice string) error {
	props := pages.LoginProps{
		Layout: h.layouts.Build(c, "Ingresar", "login"),
		Email:  form.Email,
		Next:   form.Next,
		Errors: errs,
		Notice: notice,
	}
	return render(c, status, pages.Login(props))
}

// RegisterPage renders the sign-up form
func (h *AuthHandler) RegisterPage(c echo.Context) error {
	if session.FromContext(c).Authenticated() {
		return c.Redirect(http.StatusSeeOther, "/courses")
	}
	return h.renderRegister(c, http.StatusOK, RegisterForm{}, nil, "")
}

// HandleRegister creates the account and signs the user in
func (h *AuthHandler) HandleRegister(c echo.Context) error {
	var form RegisterForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Formulario inválido")
	}
	if errs := form.Validate(); len(errs) > 0 {
		return h.renderRegister(c, http.StatusUnprocessableEntity, form, errs, "")
	}

	if _, err := h.sessions.Register(c, form.Request()); err != nil {
		c.Logger().Warnf("registration failed for %s: %v", form.Email, err)
		return h.renderRegister(c, http.StatusBadGateway, form, nil,
			services.ErrorMessage(err, "Error al registrar el usuario. Intenta de nuevo."))
	}

	h.layouts.Flash(c, session.FlashSuccess, "Registro exitoso. ¡Bienvenid@!")
	return c.Redirect(http.StatusSeeOther, "/courses")
}

func (h *AuthHandler) renderRegister(c echo.Context, status int, form RegisterForm, errs map[string]string, notice string) error {
	courses, err := h.courses.List(c.Request().Context())
	if err != nil {
		c.Logger().Errorf("failed to load courses for registration: %v", err)
	}

	props := pages.RegisterProps{
		Layout: h.layouts.Build(c, "Crear cuenta", "register",
			shared.Breadcrumb{Title: "Ingresar", URL: "/login"},
			shared.Breadcrumb{Title: "Registro", URL: ""},
		),
		Name:     form.Name,
		Lastname: form.Lastname,
		Email:    form.Email,
		Telegram: form.Telegram,
		Age:      form.Age,
		Master:   form.masterSet(),
		Courses:  courses,
		Errors:   errs,
		Notice:   notice,
	}
	return render(c, status, pages.Register(props))
}

// HandleLogout clears the session
func (h *AuthHandler) HandleLogout(c echo.Context) error {
	if err := h.sessions.Teardown(c); err != nil {
		c.Logger().Errorf("failed to clear session: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "No se pudo cerrar la sesión")
	}
	return c.Redirect(http.StatusSeeOther, "/login")
}
