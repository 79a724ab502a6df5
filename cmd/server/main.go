// Package main is the entry point for the wallet service. It loads
// configuration, opens the database and cache connections, assembles the
// dependency graph once and starts the HTTP server.
package main

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/sirupsen/logrus"

	"flux/internal/config"
	"flux/internal/gateway/authorizer"
	"flux/internal/gateway/notifier"
	"flux/internal/handlers"
	"flux/internal/middleware"
	"flux/internal/repositories"
	"flux/internal/repositories/cache"
	"flux/internal/routes"
	"flux/internal/services/auth"
	"flux/internal/services/transaction"
	"flux/internal/services/user"
	"flux/internal/services/wallet"
)

func main() {
	config.LoadEnv()
	cfg := config.Load()

	if config.IsProduction() {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	if cfg.AuthorizerURL == "" {
		if config.IsProduction() {
			logrus.Fatal("AUTHORIZER_URL must be configured in production")
		}
		logrus.Warn("AUTHORIZER_URL not set: transfers will be auto-approved")
	}

	db, err := repositories.NewDB(cfg)
	if err != nil {
		logrus.Fatalf("failed to initialize database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		logrus.Fatalf("failed to get database instance: %v", err)
	}
	defer sqlDB.Close()

	redisClient, err := cache.NewRedisClient(&cache.RedisConfig{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err != nil {
		logrus.Fatalf("failed to initialize redis: %v", err)
	}
	cacheService := cache.NewService(redisClient, 24*time.Hour)
	defer cacheService.Close()

	userRepo := repositories.NewUserRepository(db)
	walletRepo := repositories.NewWalletRepository(db)
	txRepo := repositories.NewTransactionRepository(db)
	uow := repositories.NewUnitOfWork(db)

	authorizerClient := authorizer.NewClient(cfg.AuthorizerURL)
	notifierClient := notifier.NewClient(cfg.NotifierURL)

	userService := user.NewService(userRepo, uow, cfg.StartingBalance)
	authService := auth.NewService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	walletService := wallet.NewService(walletRepo, cacheService)
	txService := transaction.NewService(
		userRepo, walletRepo, txRepo, uow,
		authorizerClient, notifierClient, cacheService,
		cfg.TransferCeiling,
	)

	app := fiber.New()
	app.Use(cors.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	routes.Setup(app, routes.Handlers{
		User:        handlers.NewUserHandler(userService),
		Auth:        handlers.NewAuthHandler(authService),
		Wallet:      handlers.NewWalletHandler(walletService),
		Transaction: handlers.NewTransactionHandler(txService, cfg.TransferCeiling),
		AuthGuard:   middleware.NewAuthMiddleware(cfg.JWTSecret),
	})

	logrus.Fatal(app.Listen(":" + cfg.Port))
}
