package domain

import "time"

type Booking struct {
	ID          int64     `json:"id"`
	Reference   string    `json:"reference"`
	UserID      int64     `json:"user_id"`
	EquipmentID int64     `json:"equipment_id"`
	FromTime    time.Time `json:"from_time"`
	ToTime      time.Time `json:"to_time"`
	TotalHours  float64   `json:"total_hours"`
	TotalPrice  float64   `json:"total_price"`
	CreatedAt   time.Time `json:"created_at"`
}

// Overlaps reports whether the booking interval shares at least one instant
// with [from, to]. Boundaries are inclusive, so intervals that merely touch
// at an endpoint conflict.
func (b Booking) Overlaps(from, to time.Time) bool {
	return !b.FromTime.After(to) && !b.ToTime.Before(from)
}

// BookingWithEquipment is a booking resolved with its equipment, used for
// the per-user listing.
type BookingWithEquipment struct {
	Booking
	Equipment Equipment `json:"equipment"`
}

// BookingWithRelations additionally resolves the owning user, used for the
// administrative listing and for reminder events.
type BookingWithRelations struct {
	Booking
	Equipment Equipment `json:"equipment"`
	User      User      `json:"user"`
}
