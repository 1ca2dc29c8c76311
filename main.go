// File: fitstudio/main.go
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fitstudio/config"
	"fitstudio/cron"
	"fitstudio/database"
	sessionRepoPkg "fitstudio/database/repository/session"
	subscriptionRepoPkg "fitstudio/database/repository/subscription"
	"fitstudio/services/subscription"
	"fitstudio/utils"

	"go.uber.org/zap"
)

// The worker daemon: session reminders, the completion sweep, and the
// subscription expiry sweep. Booking and CRUD operations are exposed as
// service APIs consumed by the transport layer, which lives outside this
// repository.
func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	sessionRepo := sessionRepoPkg.NewMongoSessionRepo()
	if err := sessionRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure session indexes: %v", err)
	}

	subscriptionService := &subscription.DefaultSubscriptionService{
		Repo: subscriptionRepoPkg.NewMongoSubscriptionRepo(),
	}

	cron.InitWorker(sessionRepo, subscriptionService)

	logger.Info("fitstudio worker started", zap.String("env", config.GetEnv()))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := database.MongoClient.Disconnect(ctx); err != nil {
		logger.Warn("failed to disconnect MongoDB", zap.Error(err))
	}
}
