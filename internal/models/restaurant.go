package models

import "time"

type Restaurant struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:100;not null" json:"name"`

	// Daily service window, zero-padded 24h wall-clock strings ("09:00").
	// No timezone and no date; compared lexicographically.
	OpeningTime string `gorm:"size:5;not null" json:"opening_time"`
	ClosingTime string `gorm:"size:5;not null" json:"closing_time"`

	PhotoURL string `gorm:"size:255" json:"photo_url,omitempty"`

	Tables []Table `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"tables,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
