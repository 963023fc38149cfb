package repository

import (
	"context"
	"time"

	"github.com/avdeevra/equiprent/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingRepository interface {
	// Create persists the booking unless an existing booking for the same
	// equipment overlaps its interval, in which case it returns
	// domain.ErrBookingConflict. The check and the insert run atomically.
	Create(ctx context.Context, booking *domain.Booking) error
	FindConflicts(ctx context.Context, equipmentID int64, from, to time.Time) ([]domain.Booking, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.BookingWithEquipment, error)
	ListAll(ctx context.Context) ([]domain.BookingWithRelations, error)
	ListStartingBetween(ctx context.Context, from, to time.Time) ([]domain.BookingWithRelations, error)
}

type PGBookingRepository struct {
	db *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) BookingRepository {
	return &PGBookingRepository{db: db}
}

// Two bookings overlap when existing.from_time <= new.to_time AND
// existing.to_time >= new.from_time. Endpoints are inclusive: intervals that
// touch conflict.
const overlapPredicate = `equipment_id = $1 AND from_time <= $3 AND to_time >= $2`

func (r *PGBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	// Serialize concurrent admissions per equipment. The lock is released
	// on commit or rollback, so the overlap re-check below and the insert
	// form an atomic unit.
	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, booking.EquipmentID); err != nil {
		return err
	}

	var conflicts int
	if err := tx.QueryRow(ctx, `SELECT count(*) FROM bookings WHERE `+overlapPredicate,
		booking.EquipmentID, booking.FromTime, booking.ToTime).Scan(&conflicts); err != nil {
		return err
	}
	if conflicts > 0 {
		return domain.ErrBookingConflict
	}

	if err := tx.QueryRow(ctx, `INSERT INTO bookings (reference, user_id, equipment_id, from_time, to_time, total_hours, total_price)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at`,
		booking.Reference, booking.UserID, booking.EquipmentID, booking.FromTime, booking.ToTime, booking.TotalHours, booking.TotalPrice).
		Scan(&booking.ID, &booking.CreatedAt); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *PGBookingRepository) FindConflicts(ctx context.Context, equipmentID int64, from, to time.Time) ([]domain.Booking, error) {
	rows, err := r.db.Query(ctx, `SELECT id, reference, user_id, equipment_id, from_time, to_time, total_hours, total_price, created_at
		FROM bookings WHERE `+overlapPredicate+` ORDER BY from_time`, equipmentID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var conflicts []domain.Booking
	for rows.Next() {
		var b domain.Booking
		if err := rows.Scan(&b.ID, &b.Reference, &b.UserID, &b.EquipmentID, &b.FromTime, &b.ToTime, &b.TotalHours, &b.TotalPrice, &b.CreatedAt); err != nil {
			return nil, err
		}
		conflicts = append(conflicts, b)
	}
	return conflicts, rows.Err()
}

func (r *PGBookingRepository) ListByUser(ctx context.Context, userID int64) ([]domain.BookingWithEquipment, error) {
	rows, err := r.db.Query(ctx, `SELECT b.id, b.reference, b.user_id, b.equipment_id, b.from_time, b.to_time, b.total_hours, b.total_price, b.created_at,
		e.id, e.name, e.category, e.description, e.image_url, e.price_per_hour, e.available, e.created_at, e.updated_at
		FROM bookings b
		JOIN equipment e ON e.id = b.equipment_id
		WHERE b.user_id = $1
		ORDER BY b.from_time`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := make([]domain.BookingWithEquipment, 0)
	for rows.Next() {
		var b domain.BookingWithEquipment
		if err := rows.Scan(&b.ID, &b.Reference, &b.UserID, &b.EquipmentID, &b.FromTime, &b.ToTime, &b.TotalHours, &b.TotalPrice, &b.CreatedAt,
			&b.Equipment.ID, &b.Equipment.Name, &b.Equipment.Category, &b.Equipment.Description, &b.Equipment.ImageURL, &b.Equipment.PricePerHour, &b.Equipment.Available, &b.Equipment.CreatedAt, &b.Equipment.UpdatedAt); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

func (r *PGBookingRepository) ListAll(ctx context.Context) ([]domain.BookingWithRelations, error) {
	return r.queryWithRelations(ctx, `ORDER BY b.from_time`)
}

func (r *PGBookingRepository) ListStartingBetween(ctx context.Context, from, to time.Time) ([]domain.BookingWithRelations, error) {
	return r.queryWithRelations(ctx, `WHERE b.from_time >= $1 AND b.from_time < $2 ORDER BY b.from_time`, from, to)
}

func (r *PGBookingRepository) queryWithRelations(ctx context.Context, tail string, args ...any) ([]domain.BookingWithRelations, error) {
	rows, err := r.db.Query(ctx, `SELECT b.id, b.reference, b.user_id, b.equipment_id, b.from_time, b.to_time, b.total_hours, b.total_price, b.created_at,
		e.id, e.name, e.category, e.description, e.image_url, e.price_per_hour, e.available, e.created_at, e.updated_at,
		u.id, u.name, u.phone, u.role, u.created_at
		FROM bookings b
		JOIN equipment e ON e.id = b.equipment_id
		JOIN users u ON u.id = b.user_id
		`+tail, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := make([]domain.BookingWithRelations, 0)
	for rows.Next() {
		var b domain.BookingWithRelations
		if err := rows.Scan(&b.ID, &b.Reference, &b.UserID, &b.EquipmentID, &b.FromTime, &b.ToTime, &b.TotalHours, &b.TotalPrice, &b.CreatedAt,
			&b.Equipment.ID, &b.Equipment.Name, &b.Equipment.Category, &b.Equipment.Description, &b.Equipment.ImageURL, &b.Equipment.PricePerHour, &b.Equipment.Available, &b.Equipment.CreatedAt, &b.Equipment.UpdatedAt,
			&b.User.ID, &b.User.Name, &b.User.Phone, &b.User.Role, &b.User.CreatedAt); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

var _ BookingRepository = (*PGBookingRepository)(nil)
