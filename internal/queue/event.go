// Package queue defines message payloads exchanged over the message broker
// and the background consumer that drains them.
package queue

import (
	"time"

	"github.com/rafaelqm/barber-agenda/internal/model"
)

// AppointmentCreatedEvent is published when an appointment is booked.
// It carries enough information for downstream consumers to log or
// trigger analytics without querying the primary database.
type AppointmentCreatedEvent struct {
	AppointmentID uint64 `json:"appointment_id"`
	UserID        uint64 `json:"user_id"`
	Date          string `json:"date"` // YYYY-MM-DD
	Time          string `json:"time"` // HH:MM
	Type          string `json:"type"`
	Attendant     string `json:"attendant"`
	PriceCents    int64  `json:"price_cents"`
	Payment       string `json:"payment"`
	Status        string `json:"status"`
	CreatedAt     string `json:"created_at"` // RFC3339
}

// NewAppointmentCreatedEvent projects a stored appointment into its
// wire event.
func NewAppointmentCreatedEvent(a model.Appointment) AppointmentCreatedEvent {
	return AppointmentCreatedEvent{
		AppointmentID: a.ID,
		UserID:        a.UserID,
		Date:          a.Date.UTC().Format("2006-01-02"),
		Time:          a.Time,
		Type:          a.Type,
		Attendant:     a.Attendant,
		PriceCents:    a.PriceCents,
		Payment:       a.Payment,
		Status:        a.Status,
		CreatedAt:     a.CreatedAt.UTC().Format(time.RFC3339),
	}
}
