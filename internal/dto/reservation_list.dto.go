package dto

import "time"

type ReservationListDTO struct {
	ID              uint      `json:"id"`
	TableID         uint      `json:"table_id"`
	TableNumber     int       `json:"table_number"`
	TableCapacity   int       `json:"table_capacity"`
	CustomerName    string    `json:"customer_name"`
	Phone           string    `json:"phone"`
	PartySize       int       `json:"party_size"`
	StartTime       time.Time `json:"start_time"`
	EndTime         time.Time `json:"end_time"`
	DurationMinutes int       `json:"duration_minutes"`
	Status          string    `json:"status"`
}
