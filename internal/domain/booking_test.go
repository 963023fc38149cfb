package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBookingOverlaps(t *testing.T) {
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	at := func(h int) time.Time { return day.Add(time.Duration(h) * time.Hour) }

	booked := Booking{FromTime: at(10), ToTime: at(12)}

	testCases := []struct {
		name string
		from time.Time
		to   time.Time
		want bool
	}{
		{name: "identical", from: at(10), to: at(12), want: true},
		{name: "contained", from: at(10), to: at(11), want: true},
		{name: "containing", from: at(9), to: at(13), want: true},
		{name: "overlapping start", from: at(9), to: at(11), want: true},
		{name: "overlapping end", from: at(11), to: at(13), want: true},
		{name: "touching at end", from: at(12), to: at(14), want: true},
		{name: "touching at start", from: at(8), to: at(10), want: true},
		{name: "after with gap", from: at(13), to: at(14), want: false},
		{name: "before with gap", from: at(7), to: at(9), want: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, booked.Overlaps(tc.from, tc.to))
		})
	}
}

func TestEquipmentPatchEmpty(t *testing.T) {
	assert.True(t, EquipmentPatch{}.Empty())

	name := "Tractor"
	assert.False(t, EquipmentPatch{Name: &name}.Empty())

	available := false
	assert.False(t, EquipmentPatch{Available: &available}.Empty())
}
