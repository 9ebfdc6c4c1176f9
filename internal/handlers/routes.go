package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	authMiddleware "cursos_app_echo/internal/middleware"
	"cursos_app_echo/internal/models"
	"cursos_app_echo/internal/session"
)

// Handlers groups every page handler of the site
type Handlers struct {
	Auth     *AuthHandler
	Courses  *CourseHandler
	Checkout *CheckoutHandler
	Success  *SuccessHandler
	Account  *AccountHandler
	Admin    *AdminOrderHandler
	Public   *PublicHandler
}

// RegisterRoutes mounts the pages on e. Every route loads the session;
// purchase and account pages need a user, admin pages need the ADMIN role.
func RegisterRoutes(e *echo.Echo, sessions *session.Manager, h Handlers) {
	e.GET("/healthz", h.Public.Healthz)

	site := e.Group("", authMiddleware.LoadSession(sessions))

	// Public routes
	site.GET("/login", h.Auth.LoginPage)
	site.POST("/login", h.Auth.HandleLogin)
	site.GET("/register", h.Auth.RegisterPage)
	site.POST("/register", h.Auth.HandleRegister)
	site.POST("/logout", h.Auth.HandleLogout)
	site.GET("/courses", h.Courses.ListCourses)
	site.GET("/courses/:slug", h.Courses.ShowCourse)
	site.GET("/terms", h.Public.Terms)

	// Protected routes
	requireAuth := authMiddleware.RequireAuth()
	site.GET("/checkout", h.Checkout.CheckoutPage, requireAuth)
	site.POST("/checkout", h.Checkout.SubmitCheckout, requireAuth)
	site.GET("/success", h.Success.SuccessPage, requireAuth)
	site.POST("/success/receipt", h.Success.UploadReceipt, requireAuth)
	site.GET("/account", h.Account.Account, requireAuth)

	// Admin routes
	admin := site.Group("/admin", authMiddleware.RequireRole(models.RoleAdmin))
	admin.GET("/orders", h.Admin.ListOrders)
	admin.GET("/orders/:id/confirm", h.Admin.ConfirmPage)
	admin.POST("/orders/:id/status", h.Admin.UpdateStatus)

	// Redirect root to the course list
	e.GET("/", func(c echo.Context) error {
		return c.Redirect(http.StatusTemporaryRedirect, "/courses")
	})
}
