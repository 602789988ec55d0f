package main

import (
	"log"
	"net/http"
	"time"

	"translate-api/internal/api"
	"translate-api/internal/api/handlers"
	"translate-api/internal/config"
	"translate-api/internal/database"
	"translate-api/internal/middleware"
	"translate-api/internal/repository"
	"translate-api/internal/services"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	cfg, err := config.NewAppConfig()
	if err != nil {
		log.Fatal("Invalid configuration: ", err)
	}

	// Initialize database connection
	db, err := database.InitDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	// Get underlying *sql.DB instance for connection pool settings
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal("Failed to get underlying *sql.DB instance: ", err)
	}

	// Configure connection pool
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	// Redis caches identity verifications; the API runs without it if
	// the connection fails.
	cacheConfig := config.NewCacheConfig()
	var cacheService services.CacheService
	if redisCache, err := services.NewRedisCacheService(cacheConfig); err != nil {
		log.Printf("Warning: Redis unavailable, identity caching disabled: %v", err)
	} else {
		cacheService = redisCache
	}

	// Initialize repositories
	accountRepo := repository.NewAccountRepository(db)
	usageLogRepo := repository.NewUsageLogRepository(db)
	monthlyUsageRepo := repository.NewMonthlyUsageRepository(db)

	// Initialize services
	identityService := services.NewIdentityService(cfg, cacheService, cacheConfig.IdentityTTL)
	accountService := services.NewAccountService(accountRepo)
	quotaService := services.NewQuotaService(usageLogRepo, monthlyUsageRepo, accountRepo)
	translationService := services.NewTranslationService(cfg)
	packageService := services.NewPackageService()

	// Initialize handlers and router
	router := api.SetupRoutes(api.RouterConfig{
		DB:               db,
		Metrics:          middleware.NewMetrics(),
		AuthMiddleware:   middleware.AuthMiddleware(identityService, accountService),
		TranslateHandler: handlers.NewTranslateHandler(accountService, quotaService, translationService),
		UsageHandler:     handlers.NewUsageHandler(accountService),
		PackagesHandler:  handlers.NewPackagesHandler(packageService),
	})

	corsMiddleware := cors.New(cors.Options{
		AllowedOrigins: []string{cfg.CORSAllowedOrigin},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Authorization",
			"Content-Type",
		},
		AllowCredentials: true,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	})

	// Create server with timeouts
	srv := &http.Server{
		Handler:      corsMiddleware.Handler(router),
		Addr:         ":" + cfg.Port,
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	// Start server
	log.Printf("Server starting on port %s...", cfg.Port)
	log.Fatal(srv.ListenAndServe())
}
