package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/adityar2309/ttsai-progress/internal/config"
	"github.com/adityar2309/ttsai-progress/internal/handler"
	"github.com/adityar2309/ttsai-progress/internal/models"
	"github.com/adityar2309/ttsai-progress/internal/repository"
	"github.com/adityar2309/ttsai-progress/internal/service"
	"github.com/adityar2309/ttsai-progress/internal/storage/cache"
	"github.com/adityar2309/ttsai-progress/internal/storage/db"
)

func setupLogger(env string) *zap.Logger {
	var logger *zap.Logger
	if env == "development" {
		logger, _ = zap.NewDevelopment()
	} else {
		logger, _ = zap.NewProduction()
	}
	return logger
}

func main() {
	cfg, err := config.Init()
	if err != nil {
		log.Fatal("failed load config " + err.Error())
		return
	}

	logger := setupLogger(cfg.Env)
	defer logger.Sync()

	database, err := db.InitDB(cfg.DB)
	if err != nil {
		logger.Fatal("failed init db", zap.Error(err))
	}
	defer database.Close()

	repos := repository.NewRepository(database)

	summaryCache := cache.New(cfg.Cache.TTL)
	defer summaryCache.Stop()

	services := service.InitServices(repos, summaryCache, logger)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.TimeoutWithConfig(middleware.TimeoutConfig{Timeout: cfg.App.Timeout}))
	handler.New(services, cfg.App.DueLimit, logger).Register(e)

	warmup := startWarmupJob(cfg, repos, services, logger)
	defer warmup.Stop()

	go func() {
		if err := e.Start(":" + cfg.App.Port); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server stopped", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("failed graceful shutdown", zap.Error(err))
	}
}

// startWarmupJob periodically refreshes the all-time summary for users
// active over the last day, so dashboard loads hit a warm cache.
func startWarmupJob(cfg *config.Config, repos repository.Repository, services *service.Service, logger *zap.Logger) *gocron.Scheduler {
	scheduler := gocron.NewScheduler(time.UTC)

	every := cfg.App.WarmupEvery
	if every <= 0 {
		every = time.Hour
	}

	_, err := scheduler.Every(every).Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.App.Timeout)
		defer cancel()

		users, err := repos.ActiveUsers(ctx, time.Now().UTC().AddDate(0, 0, -1))
		if err != nil {
			logger.Warn("summary warmup: failed to list active users", zap.Error(err))
			return
		}
		for _, userID := range users {
			if _, err := services.Summary(ctx, userID, models.RangeAll, ""); err != nil {
				logger.Warn("summary warmup failed",
					zap.String("user_id", userID), zap.Error(err))
			}
		}
	})
	if err != nil {
		logger.Warn("failed to schedule summary warmup", zap.Error(err))
	}

	scheduler.StartAsync()
	return scheduler
}
