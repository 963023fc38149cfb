package booking

import (
	"context"
	"time"

	"github.com/avdeevra/equiprent/internal/domain"
	"github.com/avdeevra/equiprent/internal/kafka"
	"github.com/avdeevra/equiprent/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingUseCase interface {
	CreateBooking(ctx context.Context, input CreateBookingInput) (*domain.Booking, error)
	MyBookings(ctx context.Context, userID int64) ([]domain.BookingWithEquipment, error)
	AllBookings(ctx context.Context) ([]domain.BookingWithRelations, error)
	RemindUpcoming(ctx context.Context, window time.Duration) ([]domain.BookingWithRelations, error)
}

type Cache interface {
	AcquireAdmissionLock(ctx context.Context, equipmentID int64, ttl time.Duration) (bool, error)
	ReleaseAdmissionLock(ctx context.Context, equipmentID int64) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

// BookingService decides whether a requested time range may be booked and
// computes the booking's derived fields. The price per hour is snapshotted
// at creation time and never recomputed.
type BookingService struct {
	bookings           repository.BookingRepository
	equipment          repository.EquipmentRepository
	cache              Cache
	producer           Producer
	logger             *zap.Logger
	bookingTopic       string
	notificationsTopic string
	lockTTL            time.Duration
}

type CreateBookingInput struct {
	UserID      int64
	EquipmentID int64
	FromTime    time.Time
	ToTime      time.Time
}

type BookingServiceOption func(*BookingService)

func WithNotificationsTopic(topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.notificationsTopic = topic
	}
}

func NewBookingService(
	bookings repository.BookingRepository,
	equipment repository.EquipmentRepository,
	cache Cache,
	producer *kafka.Producer,
	logger *zap.Logger,
	bookingTopic string,
	lockTTL time.Duration,
	opts ...BookingServiceOption,
) *BookingService {
	service := &BookingService{
		bookings:     bookings,
		equipment:    equipment,
		cache:        cache,
		producer:     producer,
		logger:       logger,
		bookingTopic: bookingTopic,
		lockTTL:      lockTTL,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *BookingService) CreateBooking(ctx context.Context, input CreateBookingInput) (*domain.Booking, error) {
	if input.FromTime.IsZero() || input.ToTime.IsZero() || !input.FromTime.Before(input.ToTime) {
		return nil, domain.ErrInvalidRange
	}

	equipment, err := s.equipment.GetByID(ctx, input.EquipmentID)
	if err != nil {
		return nil, err
	}

	// Per-equipment admission lock: concurrent requests for the same
	// equipment are checked one at a time. The repository re-checks the
	// overlap under a transaction-scoped lock, so a lost or expired Redis
	// lock still cannot produce a double booking.
	if s.cache != nil {
		ok, err := s.cache.AcquireAdmissionLock(ctx, input.EquipmentID, s.lockTTL)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, domain.ErrBookingConflict
		}
		defer func() {
			_ = s.cache.ReleaseAdmissionLock(ctx, input.EquipmentID)
		}()
	}

	conflicts, err := s.bookings.FindConflicts(ctx, input.EquipmentID, input.FromTime, input.ToTime)
	if err != nil {
		return nil, err
	}
	if len(conflicts) > 0 {
		return nil, domain.ErrBookingConflict
	}

	hours := input.ToTime.Sub(input.FromTime).Hours()

	booking := &domain.Booking{
		Reference:   uuid.NewString(),
		UserID:      input.UserID,
		EquipmentID: input.EquipmentID,
		FromTime:    input.FromTime,
		ToTime:      input.ToTime,
		TotalHours:  hours,
		TotalPrice:  hours * equipment.PricePerHour,
	}

	if err := s.bookings.Create(ctx, booking); err != nil {
		return nil, err
	}

	if err := s.publish(ctx, "booking_created", booking, equipment.Name, ""); err != nil {
		s.logger.Warn("failed to publish booking_created event",
			zap.String("reference", booking.Reference), zap.Error(err))
	}
	return booking, nil
}

func (s *BookingService) MyBookings(ctx context.Context, userID int64) ([]domain.BookingWithEquipment, error) {
	return s.bookings.ListByUser(ctx, userID)
}

func (s *BookingService) AllBookings(ctx context.Context) ([]domain.BookingWithRelations, error) {
	return s.bookings.ListAll(ctx)
}

// RemindUpcoming publishes a reminder event for every booking starting
// within the window. Called by the worker on a ticker.
func (s *BookingService) RemindUpcoming(ctx context.Context, window time.Duration) ([]domain.BookingWithRelations, error) {
	now := time.Now()
	upcoming, err := s.bookings.ListStartingBetween(ctx, now, now.Add(window))
	if err != nil {
		return nil, err
	}
	for _, b := range upcoming {
		if err := s.publish(ctx, "booking_reminder", &b.Booking, b.Equipment.Name, b.User.Phone); err != nil {
			s.logger.Warn("failed to publish booking_reminder event",
				zap.String("reference", b.Reference), zap.Error(err))
		}
	}
	return upcoming, nil
}

func (s *BookingService) publish(ctx context.Context, eventType string, booking *domain.Booking, equipmentName, userPhone string) error {
	if s.producer == nil || s.bookingTopic == "" {
		return nil
	}
	event := kafka.BookingEvent{
		Type:          eventType,
		Reference:     booking.Reference,
		BookingID:     booking.ID,
		UserID:        booking.UserID,
		EquipmentID:   booking.EquipmentID,
		EquipmentName: equipmentName,
		UserPhone:     userPhone,
		FromTime:      booking.FromTime,
		ToTime:        booking.ToTime,
		TotalHours:    booking.TotalHours,
		TotalPrice:    booking.TotalPrice,
	}
	if err := s.producer.Publish(ctx, s.bookingTopic, booking.Reference, event); err != nil {
		return err
	}
	if s.notificationsTopic != "" {
		return s.producer.Publish(ctx, s.notificationsTopic, booking.Reference, event)
	}
	return nil
}

var _ BookingUseCase = (*BookingService)(nil)
