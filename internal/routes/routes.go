// Package routes wires repositories, services and handlers onto the fiber app.
package routes

import (
	"context"

	"boostify/internal/config"
	"boostify/internal/handlers"
	"boostify/internal/middleware"
	"boostify/internal/models"
	"boostify/internal/repositories"
	"boostify/internal/services/auth"
	"boostify/internal/services/currency"
	"boostify/internal/services/order"
	"boostify/internal/services/payment"
	"boostify/internal/services/pricing"
	"boostify/internal/services/reseller"
	"boostify/internal/services/settings"
	"boostify/internal/services/user"
	"boostify/internal/services/wallet"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

// SetupRoutes configures all application routes and starts the background
// workers (fee refresher and order status poller).
func SetupRoutes(app *fiber.App, db *gorm.DB, ctx context.Context) {
	// Repositories
	userRepo := repositories.NewUserRepository(db, repositories.CacheService)
	walletRepo := repositories.NewWalletRepository(db)
	serviceRepo := repositories.NewServiceRepository(db, repositories.CacheService)
	orderRepo := repositories.NewOrderRepository(db)
	rateRepo := repositories.NewRateRepository(db)
	settingRepo := repositories.NewSettingRepository(db)

	// Services
	rateProvider := currency.NewProvider(rateRepo)
	calculator := pricing.NewCalculator(rateProvider)

	feeSettings := settings.NewService(settingRepo)
	feeSettings.Start(ctx)

	walletService := wallet.NewService(walletRepo, &wallet.PrometheusCollector{})
	userService := user.NewService(userRepo, walletService)
	authService := auth.NewService(userRepo)
	paymentService := payment.NewService(walletService, rateProvider)

	panel := reseller.NewClient(
		config.GetEnv("RESELLER_API_URL", ""),
		config.GetEnv("RESELLER_API_KEY", ""),
		config.GetDurationEnv("RESELLER_TIMEOUT_SECONDS", 30),
	)

	orderService := order.NewService(orderRepo, serviceRepo, walletService, calculator, feeSettings, panel)

	pollInterval := config.GetDurationEnv("ORDER_POLL_SECONDS", 60)
	go order.NewPoller(orderRepo, walletService, panel, pollInterval).Run(ctx)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	catalogHandler := handlers.NewCatalogHandler(serviceRepo, orderService)
	orderHandler := handlers.NewOrderHandler(orderService)
	walletHandler := handlers.NewWalletHandler(walletService, paymentService)
	adminHandler := handlers.NewAdminHandler(userRepo, orderRepo, serviceRepo, rateRepo, settingRepo, rateProvider, feeSettings)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Welcome to Boostify API",
			"version": "1.0.0",
			"docs":    "/api",
		})
	})
	app.Get("/health", handlers.HealthCheck)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := app.Group("/api")

	// Public endpoints
	api.Post("/register", userHandler.RegisterUser)
	api.Post("/login", authHandler.LoginUser)
	api.Post("/refresh", authHandler.RefreshToken)
	api.Get("/services", catalogHandler.ListServices)
	api.Post("/quote", catalogHandler.QuotePrice)

	// Protected endpoints
	authMiddleware := middleware.NewAuthMiddleware(authService)
	protected := api.Use(authMiddleware.Handler)

	protected.Post("/logout", authHandler.Logout)
	protected.Post("/change-password", authHandler.ChangePassword)
	protected.Get("/me", userHandler.GetProfile)

	protected.Get("/wallet", walletHandler.GetWallet)
	protected.Post("/wallet/topup", walletHandler.TopUpWallet)
	protected.Get("/wallet/transactions", walletHandler.TransactionHistory)

	protected.Post("/orders", orderHandler.PlaceOrder)
	protected.Get("/orders", orderHandler.ListMyOrders)
	protected.Get("/orders/:reference", orderHandler.GetOrder)

	// Admin endpoints
	admin := protected.Group("/admin", middleware.RequirePermission(models.PermissionReadAdmin))

	admin.Get("/users", adminHandler.ListUsers)
	admin.Get("/orders", adminHandler.ListOrders)
	admin.Get("/services", adminHandler.ListServices)
	admin.Get("/rates", adminHandler.ListRates)
	admin.Get("/settings", adminHandler.ListSettings)

	adminWrite := admin.Use(middleware.RequirePermission(models.PermissionWriteAdmin))
	adminWrite.Patch("/users/:id/status", adminHandler.UpdateUserStatus)
	adminWrite.Post("/services", adminHandler.CreateService)
	adminWrite.Put("/services/:id", adminHandler.UpdateService)
	adminWrite.Delete("/services/:id", adminHandler.DeleteService)
	adminWrite.Put("/services/:id/tiers", adminHandler.ReplaceTiers)
	adminWrite.Post("/rates", adminHandler.UpsertRate)
	adminWrite.Post("/rates/clear-cache", adminHandler.ClearRateCache)
	adminWrite.Post("/settings", adminHandler.SetSetting)
}
