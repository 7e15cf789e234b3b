// Package routes wires services to HTTP endpoints.
package routes

import (
	"remat/internal/config"
	"remat/internal/handlers"
	"remat/internal/middleware"
	"remat/internal/repositories"
	"remat/internal/repositories/cache"
	"remat/internal/services/account"
	"remat/internal/services/auth"
	"remat/internal/services/charge"
	"remat/internal/services/ledger"
	"remat/internal/services/notification"
	"remat/internal/services/qr"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupRoutes builds the service graph and registers all endpoints.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	accountRepo := repositories.NewAccountRepository(db)
	userRepo := repositories.NewUserRepository(db)

	accountService := account.NewService(accountRepo, accountCache(repositories.CacheService))
	authService := auth.NewService(userRepo, accountService)
	ledgerService := ledger.NewService(accountRepo, ledgerCache(repositories.CacheService), &ledger.NoopMetricsCollector{})
	chargeService := charge.NewService(
		accountRepo,
		charge.NewStripeProvider(config.StripeSecretKey(), config.StripeCurrency()),
		chargeCache(repositories.CacheService),
	)
	notificationService := notification.NewService(accountRepo)
	qrService := qr.NewService()

	authHandler := handlers.NewAuthHandler(authService)
	transferHandler := handlers.NewTransferHandler(ledgerService)
	chargeHandler := handlers.NewChargeHandler(chargeService)
	accountHandler := handlers.NewAccountHandler(accountService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	qrHandler := handlers.NewQRHandler(qrService)

	api := app.Group("/api")

	// Public endpoints
	api.Post("/register", authHandler.Register)
	api.Post("/login", authHandler.Login)
	api.Post("/refresh", authHandler.Refresh)

	// Authenticated endpoints
	authed := api.Use(middleware.Auth())
	authed.Post("/transfer", transferHandler.Transfer)
	authed.Post("/charge", chargeHandler.Charge)
	authed.Put("/profile", authHandler.UpdateProfile)
	authed.Get("/account", accountHandler.GetAccount)
	authed.Get("/transactions", accountHandler.ListTransactions)
	authed.Get("/notifications", notificationHandler.List)
	authed.Put("/notifications/read-all", notificationHandler.MarkAllRead)
	authed.Put("/notifications/:id/read", notificationHandler.MarkRead)
	authed.Get("/qr", qrHandler.Generate)
	authed.Get("/qr/image", qrHandler.GenerateImage)
	authed.Post("/qr/decode", qrHandler.Decode)
}

// The nil checks below keep a disabled cache nil through the interface
// conversion, so services see an absent cache rather than a typed nil.

func accountCache(c *cache.CacheService) account.Cache {
	if c == nil {
		return nil
	}
	return c
}

func ledgerCache(c *cache.CacheService) ledger.AccountCache {
	if c == nil {
		return nil
	}
	return c
}

func chargeCache(c *cache.CacheService) charge.AccountCache {
	if c == nil {
		return nil
	}
	return c
}
