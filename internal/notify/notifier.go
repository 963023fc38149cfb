package notify

import (
	"context"

	"github.com/avdeevra/equiprent/internal/kafka"
	"go.uber.org/zap"
)

// Sender delivers booking notifications. SMS delivery is stubbed out to a
// log line; the platform identifies users by phone number.
type Sender struct {
	logger *zap.Logger
}

func NewSender(logger *zap.Logger) *Sender {
	return &Sender{logger: logger}
}

func (s *Sender) Send(ctx context.Context, event kafka.BookingEvent) error {
	s.logger.Info("send booking notification",
		zap.String("type", event.Type),
		zap.String("phone", event.UserPhone),
		zap.String("reference", event.Reference),
		zap.String("equipment", event.EquipmentName),
		zap.Time("from", event.FromTime),
		zap.Time("to", event.ToTime),
		zap.Float64("total_price", event.TotalPrice),
	)
	return nil
}
