package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/avdeevra/equiprent/config"
	"github.com/avdeevra/equiprent/internal/app"
	"github.com/avdeevra/equiprent/internal/bootstrap"
	"github.com/avdeevra/equiprent/internal/cache"
	"github.com/avdeevra/equiprent/internal/kafka"
	"github.com/avdeevra/equiprent/internal/repository"
	"github.com/avdeevra/equiprent/internal/service/auth"
	"github.com/avdeevra/equiprent/internal/service/booking"
	"github.com/avdeevra/equiprent/internal/service/equipment"
	"github.com/avdeevra/equiprent/internal/service/users"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		panic("load config: " + err.Error())
	}

	logger := app.NewLogger(cfg.Env)
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		logger.Fatal("connect postgres", zap.Error(err))
	}
	defer pool.Close()

	migrator, err := app.NewMigrator(pool, cfg.Database.MigrationsDir)
	if err != nil {
		logger.Fatal("create migrator", zap.Error(err))
	}
	if err := migrator.Run(ctx); err != nil {
		logger.Fatal("apply migrations", zap.Error(err))
	}
	migrator.Close()

	redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Booking.EquipmentCacheTTLSeconds)*time.Second)
	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	equipmentRepo := repository.NewEquipmentRepository(pool)
	bookingRepo := repository.NewBookingRepository(pool)
	userRepo := repository.NewUserRepository(pool)

	bookingService := booking.NewBookingService(
		bookingRepo,
		equipmentRepo,
		redisCache,
		producer,
		logger,
		cfg.Kafka.BookingTopic,
		time.Duration(cfg.Booking.AdmissionLockTTLSeconds)*time.Second,
		booking.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
	)

	svcs := bootstrap.Services{
		Auth:      auth.NewAuthService(userRepo, cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTLDays)*24*time.Hour),
		Equipment: equipment.NewEquipmentService(equipmentRepo, redisCache),
		Booking:   bookingService,
		Users:     users.NewUserService(userRepo),
	}

	if err := bootstrap.Run(ctx, cfg, logger, svcs); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}
