package main

import (
	"log"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"cursos_app_echo/internal/checkout"
	"cursos_app_echo/internal/config"
	"cursos_app_echo/internal/evidence"
	"cursos_app_echo/internal/handlers"
	authMiddleware "cursos_app_echo/internal/middleware"
	"cursos_app_echo/internal/payments"
	"cursos_app_echo/internal/reconcile"
	"cursos_app_echo/internal/services"
	"cursos_app_echo/internal/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Payment methods
	catalog := payments.DefaultCatalog()
	if cfg.PaymentMethodsFile != "" {
		catalog, err = payments.LoadCatalog(cfg.PaymentMethodsFile)
		if err != nil {
			log.Fatalf("Failed to load payment methods: %v", err)
		}
	}

	api := services.NewAPIClient(cfg.APIBaseURL, cfg.APITimeout)

	// Initialize Redis
	var cache *services.RedisCache
	if cfg.RedisURL != "" {
		cache, err = services.NewRedisCache(cfg.RedisURL, "cursos")
		if err != nil {
			log.Printf("Warning: Redis connection failed: %v", err)
			log.Println("Course caching disabled")
			cache = nil
		} else {
			defer cache.Close()
		}
	} else {
		log.Println("Warning: REDIS_URL not set, course caching disabled")
	}
	courses := services.NewCourseCatalog(api, cache, cfg.CourseCacheTTL)

	// Initialize Database
	var (
		audit  reconcile.AuditRecorder
		events handlers.EventLister
	)
	if cfg.DatabaseURL != "" {
		db, err := services.InitDB(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		if err := services.AutoMigrate(db); err != nil {
			log.Fatalf("Failed to run database migrations: %v", err)
		}
		store := services.NewOrderEventStore(db)
		audit, events = store, store
	} else {
		log.Println("Warning: DATABASE_URL not set, order audit trail disabled")
	}

	sessions := session.NewManager(session.NewCookieStore([]byte(cfg.SessionSecret), cfg.IsProduction()), api)
	layouts := handlers.NewLayouts(sessions, services.SupportURL(cfg.SupportWhatsapp, cfg.SupportURL))

	// Create Echo instance
	e := echo.New()
	e.HTTPErrorHandler = authMiddleware.CustomErrorHandler

	// Middleware
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Static file serving
	e.Static("/static", "web/static")

	handlers.RegisterRoutes(e, sessions, handlers.Handlers{
		Auth:     handlers.NewAuthHandler(sessions, courses, layouts),
		Courses:  handlers.NewCourseHandler(courses, layouts),
		Checkout: handlers.NewCheckoutHandler(checkout.NewService(catalog, api), courses, layouts),
		Success:  handlers.NewSuccessHandler(catalog, evidence.NewService(api, cfg.MaxReceiptBytes), layouts),
		Account:  handlers.NewAccountHandler(api, catalog, layouts),
		Admin:    handlers.NewAdminOrderHandler(reconcile.NewService(api, audit), events, catalog, layouts),
		Public:   handlers.NewPublicHandler(layouts),
	})

	log.Printf("Server starting on port %s", cfg.Port)
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
