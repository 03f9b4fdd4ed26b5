package models

import "time"

type Reservation struct {
	ID uint `gorm:"primaryKey" json:"id"`

	RestaurantID uint       `gorm:"not null" json:"restaurant_id"`
	Restaurant   Restaurant `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	TableID uint  `gorm:"not null" json:"table_id"`
	Table   Table `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	CustomerName string `gorm:"size:100;not null" json:"customer_name"`
	Phone        string `gorm:"size:20;not null" json:"phone"`
	PartySize    int    `gorm:"not null" json:"party_size"`

	StartTime       time.Time `gorm:"not null" json:"start_time"`
	DurationMinutes int       `gorm:"not null" json:"duration_minutes"`
	// EndTime is derived from StartTime + DurationMinutes at insert so the
	// overlap query stays a plain column comparison.
	EndTime time.Time `gorm:"not null" json:"end_time"`

	Status string `gorm:"size:20;default:'confirmed'" json:"status"`

	ConfirmationCode string     `gorm:"size:36" json:"confirmation_code"`
	CancelledAt      *time.Time `json:"cancelled_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
