package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/cityinfo-api/internal/config"
	"github.com/cityinfo-api/internal/pkg/logger"
	redisRepo "github.com/cityinfo-api/internal/repository/redis"
	"github.com/cityinfo-api/internal/worker"
	"github.com/cityinfo-api/internal/worker/mail"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	if !cfg.Worker.Enabled {
		fmt.Println("Worker is disabled in configuration. Set WORKER_ENABLED=true to enable.")
		os.Exit(0)
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting mail worker", zap.String("consumer_group", cfg.Worker.ConsumerGroup))

	redisClient, err := redisRepo.NewClient(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	streams := redisRepo.NewStreamRepository(redisClient, log)
	sender := mail.NewLocalSender(cfg.Mail.FromAddress, cfg.Mail.ToAddress, log)

	manager := worker.NewManager(log, worker.DefaultShutdownTimeout)
	manager.Register(mail.NewWorker(streams, sender, cfg.Worker.ConsumerGroup, log))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := manager.Start(ctx); err != nil {
		log.Fatal("Failed to start workers", zap.Error(err))
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan
	log.Info("Received shutdown signal")

	if err := manager.Stop(); err != nil {
		log.Error("Error stopping workers", zap.Error(err))
	}
	cancel()

	log.Info("Worker shutdown complete")
}
