package main

// @title City Info API
// @version 1.0.0
// @description API for cities and their points of interest. Every endpoint except
// @description authentication requires a bearer token; points of interest are only
// @description available to users whose token carries the configured city claim.

// @contact.name API Support
// @contact.email support@mycompany.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the token.

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/cityinfo-api/docs/swagger"
	"github.com/cityinfo-api/internal/config"
	httpDelivery "github.com/cityinfo-api/internal/delivery/http"
	"github.com/cityinfo-api/internal/delivery/http/handler"
	"github.com/cityinfo-api/internal/pkg/logger"
	"github.com/cityinfo-api/internal/pkg/token"
	"github.com/cityinfo-api/internal/repository/filestore"
	"github.com/cityinfo-api/internal/repository/postgres"
	redisRepo "github.com/cityinfo-api/internal/repository/redis"
	"github.com/cityinfo-api/internal/usecase"
	"github.com/cityinfo-api/internal/worker/mail"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting City Info API",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("mail_driver", cfg.Mail.Driver))

	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()

	checks := map[string]httpDelivery.HealthCheck{
		"postgres": db.Health,
	}

	// Notifications go straight to the log or through the Redis stream to cmd/worker.
	var notifier usecase.Notifier
	switch cfg.Mail.Driver {
	case "stream":
		redisClient, err := redisRepo.NewClient(&cfg.Redis, log)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Error("Failed to close Redis connection", zap.Error(err))
			}
		}()
		checks["redis"] = func(ctx context.Context) error { return redisClient.Ping(ctx).Err() }

		streams := redisRepo.NewStreamRepository(redisClient, log)
		notifier = redisRepo.NewStreamNotifier(streams, cfg.Mail.FromAddress, cfg.Mail.ToAddress)
	default:
		notifier = mail.NewLocalSender(cfg.Mail.FromAddress, cfg.Mail.ToAddress, log)
	}

	fileRepo, err := filestore.NewOsFileRepository(cfg.Files.Dir, log)
	if err != nil {
		log.Fatal("Failed to prepare file storage", zap.Error(err), zap.String("dir", cfg.Files.Dir))
	}

	tokens, err := token.NewService(cfg.Auth.SecretForKey, cfg.Auth.Issuer, cfg.Auth.Audience, cfg.Auth.TokenLifetime)
	if err != nil {
		log.Fatal("Failed to initialize token service", zap.Error(err))
	}

	cityRepo := postgres.NewCityRepository(db)
	poiRepo := postgres.NewPointOfInterestRepository(db)
	userRepo := postgres.NewUserRepository(db)

	cityUC := usecase.NewCityUseCase(cityRepo, log)
	poiUC := usecase.NewPointOfInterestUseCase(cityRepo, poiRepo, notifier, log)
	authUC := usecase.NewAuthUseCase(userRepo, usecase.BcryptVerifier{}, tokens, log)
	fileUC := usecase.NewFileUseCase(fileRepo, cfg.Files.MaxUploadBytes, log)

	server := httpDelivery.NewServer(cfg, log, tokens, httpDelivery.Handlers{
		City:            handler.NewCityHandler(cityUC, log),
		PointOfInterest: handler.NewPointOfInterestHandler(poiUC, log),
		Auth:            handler.NewAuthHandler(authUC, log),
		File:            handler.NewFileHandler(fileUC, log),
	}, checks)

	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started", zap.String("address", cfg.GetServerAddr()))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped")
}
