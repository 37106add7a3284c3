package models

import (
	"time"
)

type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "pending"
	ReservationConfirmed ReservationStatus = "confirmed"
	ReservationCancelled ReservationStatus = "cancelled"
)

func (s ReservationStatus) Valid() bool {
	switch s {
	case ReservationPending, ReservationConfirmed, ReservationCancelled:
		return true
	}
	return false
}

type Reservation struct {
	ID           string            `json:"id"`
	StoreID      string            `json:"store_id"`
	CustomerID   string            `json:"customer_id"`
	CustomerName string            `json:"customer_name"`
	Date         string            `json:"date"` // YYYY-MM-DD
	Time         string            `json:"time"` // HH:MM (24h)
	People       int               `json:"people"`
	Menu         []string          `json:"menu"`
	Status       ReservationStatus `json:"status"`
	CreatedAt    time.Time         `json:"created_at"`
}

func (r Reservation) Clone() Reservation {
	out := r
	out.Menu = append([]string(nil), r.Menu...)
	return out
}

type NewReservationInput struct {
	StoreID      string            `json:"store_id" validate:"required"`
	CustomerID   string            `json:"customer_id" validate:"required"`
	CustomerName string            `json:"customer_name"`
	Date         string            `json:"date" validate:"required,datetime=2006-01-02"`
	Time         string            `json:"time" validate:"required,datetime=15:04"`
	People       int               `json:"people" validate:"required,min=1,max=50"`
	Menu         []string          `json:"menu" validate:"required,min=1,dive,required"`
	Status       ReservationStatus `json:"status,omitempty" validate:"omitempty,oneof=pending confirmed cancelled"`
}
