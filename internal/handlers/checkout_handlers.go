package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"cursos_app_echo/internal/checkout"
	"cursos_app_echo/internal/models"
	"cursos_app_echo/internal/services"
	"cursos_app_echo/internal/session"
	"cursos_app_echo/web/templates/pages"
	"cursos_app_echo/web/templates/shared"
)

// CheckoutHandler runs the order creation form
type CheckoutHandler struct {
	checkout *checkout.Service
	courses  CourseFinder
	layouts  *Layouts
}

// NewCheckoutHandler creates a new CheckoutHandler
func NewCheckoutHandler(svc *checkout.Service, courses CourseFinder, layouts *Layouts) *CheckoutHandler {
	return &CheckoutHandler{checkout: svc, courses: courses, layouts: layouts}
}

// CheckoutPage renders the form for ?course=<slug>, pre-filled from the session user
func (h *CheckoutHandler) CheckoutPage(c echo.Context) error {
	course, err := h.purchasableCourse(c, c.QueryParam("course"))
	if err != nil {
		return err
	}

	form := checkout.Form{CourseSlug: course.Slug}
	if user, ok := session.FromContext(c).User(); ok {
		form.BuyerName = user.FullName()
		form.BuyerEmail = user.Email
	}
	if keys := h.checkout.Catalog().Keys(); len(keys) > 0 {
		form.Method = string(keys[0])
	}
	return h.renderForm(c, http.StatusOK, course, form, nil, "")
}

// SubmitCheckout creates the order and sends the buyer to the confirmation page
func (h *CheckoutHandler) SubmitCheckout(c echo.Context) error {
	var form checkout.Form
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Formulario inválido")
	}

	course, err := h.purchasableCourse(c, form.CourseSlug)
	if err != nil {
		return err
	}

	s := session.FromContext(c)
	res, err := h.checkout.Submit(c.Request().Context(), s.Token(), form)

	var vErr *checkout.ValidationError
	switch {
	case err == nil:
		return c.Redirect(http.StatusSeeOther, res.RedirectURL)
	case errors.As(err, &vErr):
		return h.renderForm(c, http.StatusUnprocessableEntity, course, form, vErr.Fields, "")
	case services.IsUnauthorized(err):
		return h.layouts.expireSession(c)
	default:
		c.Logger().Errorf("checkout failed for course %s: %v", course.Slug, err)
		return h.renderForm(c, http.StatusBadGateway, course, form, nil,
			services.ErrorMessage(err, "Error creando la orden"))
	}
}

func (h *CheckoutHandler) purchasableCourse(c echo.Context, slug string) (models.Course, error) {
	course, err := findCourse(c, h.courses, slug)
	if err != nil {
		return models.Course{}, err
	}
	if !course.Purchasable() {
		return models.Course{}, echo.NewHTTPError(http.StatusBadRequest, "Este curso no está disponible para la compra.")
	}
	return course, nil
}

func (h *CheckoutHandler) renderForm(c echo.Context, status int, course models.Course, form checkout.Form, errs checkout.FieldErrors, notice string) error {
	catalog := h.checkout.Catalog()

	methods := make([]pages.MethodOption, 0, len(catalog.Keys()))
	for _, m := range catalog.Methods() {
		methods = append(methods, pages.MethodOption{
			Method:   m,
			Price:    checkout.ResolvePrice(course, m.Key).String(),
			Selected: string(m.Key) == form.Method,
		})
	}

	props := pages.CheckoutProps{
		Layout: h.layouts.Build(c, "Checkout", "courses",
			shared.Breadcrumb{Title: "Cursos", URL: "/courses"},
			shared.Breadcrumb{Title: course.Title, URL: "/courses/" + course.Slug},
			shared.Breadcrumb{Title: "Checkout", URL: ""},
		),
		Course:        course,
		BuyerName:     form.BuyerName,
		BuyerEmail:    form.BuyerEmail,
		TermsAccepted: form.AcceptedTerms(),
		Methods:       methods,
		Errors:        errs,
		Notice:        notice,
	}
	return render(c, status, pages.Checkout(props))
}
