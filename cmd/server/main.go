package main

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/luckysnap/backend/config"
	"github.com/luckysnap/backend/internal/cache"
	"github.com/luckysnap/backend/internal/database"
	"github.com/luckysnap/backend/internal/handler"
	"github.com/luckysnap/backend/internal/middleware"
	"github.com/luckysnap/backend/internal/notify"
	"github.com/luckysnap/backend/internal/queue"
	"github.com/luckysnap/backend/internal/repository"
	"github.com/luckysnap/backend/internal/service"
	"github.com/luckysnap/backend/internal/worker"
	"github.com/luckysnap/backend/pkg/logger"
	"go.uber.org/zap"
)

func main() {
	log := logger.WithComponent("main")

	cfg := config.Load()

	pool, err := database.InitDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("failed to init database", zap.Error(err))
	}
	defer pool.Close()

	if err := database.RunMigrations(&cfg.Database); err != nil {
		log.Fatal("failed to run migrations", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		log.Fatal("failed to init redis", zap.Error(err))
	}
	defer rdb.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Repositories
	raffleRepo := repository.NewRaffleRepository(pool)
	orderRepo := repository.NewOrderRepository(pool)
	reservationRepo := repository.NewReservationRepository(pool)
	userRepo := repository.NewUserRepository(pool)
	winnerRepo := repository.NewWinnerRepository(pool)
	settingsRepo := repository.NewSettingsRepository(pool)
	adminUserRepo := repository.NewAdminUserRepository(pool)

	holdManager := cache.NewTicketHoldManager(rdb)

	notifications, err := queue.NewRedisStreamNotificationQueue(rdb, "", nil)
	if err != nil {
		log.Fatal("failed to init notification queue", zap.Error(err))
	}

	// Services
	raffleService := service.NewRaffleService(raffleRepo, reservationRepo, holdManager)
	orderService := service.NewOrderService(
		pool,
		orderRepo,
		raffleRepo,
		reservationRepo,
		userRepo,
		holdManager,
		notifications,
		time.Duration(cfg.OrderTTLHours)*time.Hour,
	)
	winnerService := service.NewWinnerService(winnerRepo, raffleRepo, orderRepo, reservationRepo)
	userService := service.NewUserService(userRepo)
	settingsService := service.NewSettingsService(settingsRepo)
	authService := service.NewAuthService(adminUserRepo, cfg.JWTSecret, time.Duration(cfg.TokenTTLHours)*time.Hour)

	// Workers
	var notifier notify.Notifier
	if cfg.NotifyWebhookURL != "" {
		notifier = notify.NewWebhookNotifier(cfg.NotifyWebhookURL)
	} else {
		notifier = notify.NewLogNotifier()
	}
	if err := worker.NewNotificationWorker(notifier, notifications).Start(ctx); err != nil {
		log.Fatal("failed to start notification worker", zap.Error(err))
	}
	expirer := worker.NewOrderExpirer(orderService, time.Duration(cfg.ExpirySweepMinutes)*time.Minute)
	if err := expirer.Start(ctx); err != nil {
		log.Fatal("failed to start order expirer", zap.Error(err))
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.Use(middleware.CORSMiddleware(cfg))

	public := r.Group("/api/public")
	admin := r.Group("/api/admin")
	admin.Use(middleware.AdminAuth(cfg.JWTSecret))

	handler.NewHealthHandler(pool, rdb).RegisterRoutes(r)
	handler.NewAuthHandler(authService).RegisterRoutes(r)
	handler.NewRaffleHandler(raffleService).RegisterRoutes(public, admin)
	handler.NewOrderHandler(orderService).RegisterRoutes(public, admin)
	handler.NewWinnerHandler(winnerService).RegisterRoutes(admin)
	handler.NewUserHandler(userService).RegisterRoutes(admin)
	handler.NewSettingsHandler(settingsService).RegisterRoutes(public, admin)

	log.Info("server starting", zap.String("port", cfg.Port), zap.String("env", cfg.Environment))
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("server exited", zap.Error(err))
	}
}
