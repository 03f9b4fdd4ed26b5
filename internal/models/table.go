package models

import "time"

type Table struct {
	ID           uint `gorm:"primaryKey" json:"id"`
	RestaurantID uint `gorm:"not null;uniqueIndex:idx_restaurant_table_number" json:"restaurant_id"`

	TableNumber int `gorm:"not null;uniqueIndex:idx_restaurant_table_number" json:"table_number"`
	Capacity    int `gorm:"not null" json:"capacity"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
