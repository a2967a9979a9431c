package main

import (
	"log"

	"github.com/labstack/echo/v4"

	"github.com/agrimart/agrimart/internal/pkg/config"
	"github.com/agrimart/agrimart/internal/pkg/health"
	"github.com/agrimart/agrimart/internal/pkg/logger"
	"github.com/agrimart/agrimart/internal/pkg/middleware"
	"github.com/agrimart/agrimart/internal/pkg/server"
	"github.com/agrimart/agrimart/internal/pkg/session"
	"github.com/agrimart/agrimart/services/portal/gateway"
	"github.com/agrimart/agrimart/services/portal/handler"
	portalhttp "github.com/agrimart/agrimart/services/portal/handler/http"
	"github.com/agrimart/agrimart/services/portal/repository"
	"github.com/agrimart/agrimart/services/portal/usecase"
	"github.com/agrimart/agrimart/web"
)

func main() {
	appName := "agrimart"
	configs := config.InitConfig(".env")

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	if err := config.Validate(configs); err != nil {
		zapLogger.Fatal("Invalid configuration", logger.Err(err))
	}

	// Initialize repositories
	userRepo := repository.NewUserRepo()
	otpRepo := repository.NewOTPRepo(configs)

	// Initialize gateways
	mailGW := gateway.NewMailGW(configs)
	smsGW := gateway.NewSMSGW(configs)

	// Initialize usecase
	portalUC := usecase.NewPortalUC(userRepo, otpRepo, mailGW, smsGW, configs)

	// Handlers for HTTP
	pageHandler := portalhttp.NewPageHandler(portalUC)
	authHandler := portalhttp.NewAuthHandler(portalUC)
	farmerHandler := portalhttp.NewFarmerHandler(portalUC)
	diagHandler := portalhttp.NewDiagHandler(mailGW, smsGW)

	portalHandler := handler.NewHandler(pageHandler, authHandler, farmerHandler, diagHandler)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	renderer, err := web.NewRenderer()
	if err != nil {
		zapLogger.Fatal("Failed to parse templates", logger.Err(err))
	}
	e.Renderer = renderer

	// Add middlewares
	e.Use(middleware.RequestContextMiddleware(appName))
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))
	e.Use(session.Middleware(configs.Session.Secret))

	// Register health endpoints
	health.RegisterHealthEndpoints(e, appName, configs.App.Version)

	// Register service routes
	portalHandler.RegisterRoutes(e)

	// Start server with graceful shutdown
	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Host, configs.Server.Port, configs.Server.ShutdownTimeout)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server error", logger.Err(err))
	}
}
