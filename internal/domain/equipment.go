package domain

import "time"

type Equipment struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Category     string    `json:"category"`
	Description  string    `json:"description,omitempty"`
	ImageURL     string    `json:"image_url,omitempty"`
	PricePerHour float64   `json:"price_per_hour"`
	Available    bool      `json:"available"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// EquipmentPatch is a partial update. A nil field is left untouched, a
// non-nil field overwrites the stored value even when it is zero.
type EquipmentPatch struct {
	Name         *string  `json:"name"`
	Category     *string  `json:"category"`
	Description  *string  `json:"description"`
	ImageURL     *string  `json:"image_url"`
	PricePerHour *float64 `json:"price_per_hour"`
	Available    *bool    `json:"available"`
}

func (p EquipmentPatch) Empty() bool {
	return p.Name == nil && p.Category == nil && p.Description == nil &&
		p.ImageURL == nil && p.PricePerHour == nil && p.Available == nil
}
