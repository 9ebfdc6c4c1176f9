package handlers

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"cursos_app_echo/internal/checkout"
	"cursos_app_echo/internal/models"
	"cursos_app_echo/internal/payments"
	"cursos_app_echo/internal/services"
	"cursos_app_echo/web/templates/pages"
	"cursos_app_echo/web/templates/shared"
)

// CourseHandler renders the course catalog
type CourseHandler struct {
	courses CourseFinder
	layouts *Layouts
}

// NewCourseHandler creates a new CourseHandler
func NewCourseHandler(courses CourseFinder, layouts *Layouts) *CourseHandler {
	return &CourseHandler{courses: courses, layouts: layouts}
}

// ListCourses renders every course, in API order
func (h *CourseHandler) ListCourses(c echo.Context) error {
	props := pages.CoursesListProps{
		Layout: h.layouts.Build(c, "Cursos", "courses"),
	}

	courses, err := h.courses.List(c.Request().Context())
	if err != nil {
		c.Logger().Errorf("failed to list courses: %v", err)
		props.LoadError = services.ErrorMessage(err, "No pudimos cargar los cursos. Intentá de nuevo.")
		return render(c, http.StatusBadGateway, pages.CoursesList(props))
	}

	for _, course := range courses {
		props.Courses = append(props.Courses, pages.CourseCard{
			Course: course,
			Price:  checkout.ResolvePrice(course, payments.MethodTransfer).String(),
		})
	}
	return render(c, http.StatusOK, pages.CoursesList(props))
}

// ShowCourse renders the detail page of a course
func (h *CourseHandler) ShowCourse(c echo.Context) error {
	course, err := findCourse(c, h.courses, c.Param("slug"))
	if err != nil {
		return err
	}

	props := pages.CourseDetailProps{
		Layout: h.layouts.Build(c, course.Title, "courses",
			shared.Breadcrumb{Title: "Cursos", URL: "/courses"},
			shared.Breadcrumb{Title: course.Title, URL: ""},
		),
		Course: course,
		Price:  checkout.ResolvePrice(course, payments.MethodTransfer).String(),
	}
	if course.PriceUSD > 0 {
		props.PriceUSD = checkout.ResolvePrice(course, payments.MethodTipfunder).String()
	}
	if course.Purchasable() {
		props.CheckoutURL = "/checkout?course=" + url.QueryEscape(course.Slug)
	}
	return render(c, http.StatusOK, pages.CourseDetail(props))
}

// findCourse maps lookup failures to HTTP errors rendered by the error handler
func findCourse(c echo.Context, courses CourseFinder, slug string) (models.Course, error) {
	if slug == "" {
		return models.Course{}, echo.NewHTTPError(http.StatusNotFound, "No se seleccionó ningún curso.")
	}
	course, err := courses.FindBySlug(c.Request().Context(), slug)
	if errors.Is(err, services.ErrCourseNotFound) {
		return models.Course{}, echo.NewHTTPError(http.StatusNotFound, "No pudimos encontrar el curso que buscas.")
	}
	if err != nil {
		c.Logger().Errorf("failed to load course %s: %v", slug, err)
		return models.Course{}, echo.NewHTTPError(http.StatusBadGateway, services.ErrorMessage(err, "No pudimos cargar el curso."))
	}
	return course, nil
}
