package api

import (
	"translate-api/internal/api/controllers"
	"translate-api/internal/api/handlers"
	"translate-api/internal/middleware"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type RouterConfig struct {
	DB               *gorm.DB
	Metrics          *middleware.Metrics
	AuthMiddleware   mux.MiddlewareFunc
	TranslateHandler *handlers.TranslateHandler
	UsageHandler     *handlers.UsageHandler
	PackagesHandler  *handlers.PackagesHandler
}

func SetupRoutes(cfg RouterConfig) *mux.Router {
	router := mux.NewRouter()

	router.Use(middleware.LoggingMiddleware)
	router.Use(cfg.Metrics.Instrument)

	// Public routes
	router.HandleFunc("/healthz", controllers.HealthCheckHandler(cfg.DB)).Methods("GET")
	router.HandleFunc("/api/packages", cfg.PackagesHandler.ListPackages).Methods("GET")
	router.Handle("/metrics", cfg.Metrics.Handler()).Methods("GET")

	// Authenticated routes
	protected := router.PathPrefix("/").Subrouter()
	protected.Use(cfg.AuthMiddleware)
	protected.HandleFunc("/translate", cfg.TranslateHandler.Translate).Methods("POST")
	protected.HandleFunc("/me/usage", cfg.UsageHandler.GetUsage).Methods("GET")

	return router
}
