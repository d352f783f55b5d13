package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/ayoubmdl/membership-backoffice/internal/config"
	"github.com/ayoubmdl/membership-backoffice/internal/lib/sl"
	"github.com/ayoubmdl/membership-backoffice/internal/rabbitmq"
	services "github.com/ayoubmdl/membership-backoffice/internal/services/scheduler"
	"github.com/ayoubmdl/membership-backoffice/internal/storage/repository"
)

func waitForDB(db *repository.Storage) error {
	for range 10 {
		err := repository.CheckDatabaseReady(db)
		if err == nil {
			return nil
		}
		time.Sleep(3 * time.Second)
	}
	return fmt.Errorf("database not ready after retries")
}

func main() {
	cfg := config.MustLoad()
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	logger.Info("starting notification-scheduler", slog.String("env", cfg.Env))

	conn, err := rabbitmq.Connect(cfg.RabbitMQURL, cfg.RabbitMQMaxRetries, cfg.RabbitMQRetryDelay)
	if err != nil {
		logger.Error("failed to connect to RabbitMQ", sl.Err(err))
		os.Exit(1)
	}
	logger.Info("success to connect to RabbitMQ", slog.String("URL", cfg.RabbitMQURL))
	defer func() {
		_ = conn.Close()
	}()

	queues := rabbitmq.GetNotificationQueues()
	ch, err := rabbitmq.SetupChannel(conn, queues)
	if err != nil {
		logger.Error("failed to setup RabbitMQ channel", sl.Err(err))
		os.Exit(1)
	}
	logger.Info("success to setup RabbitMQ channel")
	defer func() {
		_ = ch.Close()
	}()

	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		logger.Error("failed to connect to storage", sl.Err(err))
		os.Exit(1)
	}
	defer func() {
		_ = db.DB.Close()
	}()
	if err = waitForDB(db); err != nil {
		logger.Error("database is not ready", sl.Err(err))
	}

	schedulerService := services.NewSchedulerService(db, logger)

	go schedulerService.FindExpiringMembershipsDueTomorrow(ctx, ch)
	select {}
}
