package main

import (
	"context"
	"encoding/json"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/avdeevra/equiprent/config"
	"github.com/avdeevra/equiprent/internal/app"
	"github.com/avdeevra/equiprent/internal/kafka"
	"github.com/avdeevra/equiprent/internal/notify"
	"github.com/avdeevra/equiprent/internal/repository"
	"github.com/avdeevra/equiprent/internal/service/booking"
	"github.com/jackc/pgx/v5/pgxpool"
	kafkaGo "github.com/segmentio/kafka-go"
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

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		logger.Fatal("connect postgres", zap.Error(err))
	}
	defer pool.Close()

	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	equipmentRepo := repository.NewEquipmentRepository(pool)
	bookingRepo := repository.NewBookingRepository(pool)
	bookingService := booking.NewBookingService(
		bookingRepo,
		equipmentRepo,
		nil,
		producer,
		logger,
		cfg.Kafka.BookingTopic,
		time.Duration(cfg.Booking.AdmissionLockTTLSeconds)*time.Second,
		booking.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
	)

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.NotificationsTopic)
	defer consumer.Close()

	sender := notify.NewSender(logger)

	go func() {
		if err := consumer.Consume(ctx, func(ctx context.Context, msg kafkaGo.Message) error {
			var event kafka.BookingEvent
			if err := json.Unmarshal(msg.Value, &event); err != nil {
				logger.Error("decode event", zap.Error(err))
				return nil
			}
			return sender.Send(ctx, event)
		}); err != nil {
			logger.Error("consumer stopped", zap.Error(err))
		}
	}()

	reminderTicker := time.NewTicker(time.Duration(cfg.Worker.ReminderSweepMinutes) * time.Minute)
	defer reminderTicker.Stop()

	reminderWindow := time.Duration(cfg.Worker.ReminderWindowHours) * time.Hour

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case <-reminderTicker.C:
			upcoming, err := bookingService.RemindUpcoming(ctx, reminderWindow)
			if err != nil {
				logger.Error("reminder sweep failed", zap.Error(err))
				continue
			}
			if len(upcoming) > 0 {
				logger.Info("sent booking reminders", zap.Int("count", len(upcoming)))
			}
		case s := <-sig:
			logger.Info("shutting down", zap.String("signal", s.String()))
			return
		}
	}
}
