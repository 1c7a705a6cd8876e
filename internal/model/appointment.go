package model

import "time"

// Payment methods accepted on an appointment.  Values are the
// labels the shop actually uses, so they are stored verbatim.
const (
	PaymentCash = "Dinheiro"
	PaymentPix  = "Pix"
	PaymentCard = "Cartão"
)

// Appointment lifecycle states.  "Agendado" is the canonical
// initial state; records move to "Concluído" or "Cancelado".
const (
	StatusScheduled = "Agendado"
	StatusDone      = "Concluído"
	StatusCancelled = "Cancelado"
)

// ValidPayment reports whether p is an accepted payment method.
func ValidPayment(p string) bool {
	return p == PaymentCash || p == PaymentPix || p == PaymentCard
}

// ValidStatus reports whether s is a known appointment status.
func ValidStatus(s string) bool {
	return s == StatusScheduled || s == StatusDone || s == StatusCancelled
}

// Appointment is a single scheduled or completed service record
// tied to one owning user.  Monetary amounts are kept in cents to
// avoid floating-point rounding.  Date carries the calendar day of
// the service at midnight UTC; the time of day is kept separately
// as an "HH:MM" string, mirroring how the shop books slots.
//
// Fields:
//  ID         – primary key identifier, immutable after creation.
//  Date       – calendar date of the service (UTC midnight).
//  Time       – time of day, "HH:MM".
//  Type       – service label (e.g. "degrade", "social", "barba").
//  Attendant  – staff member who performed the service.
//  PriceCents – price in cents, never negative.
//  Payment    – payment method, one of the Payment* constants.
//  Status     – lifecycle state, one of the Status* constants.
//  Image      – optional photo as a data URI.
//  Notes      – optional free text.
//  UserID     – owning user, injected from the session at creation.
type Appointment struct {
	ID         uint64    `json:"id"`          // appointments.id
	Date       time.Time `json:"date"`        // appointments.date
	Time       string    `json:"time"`        // appointments.time
	Type       string    `json:"type"`        // appointments.type
	Attendant  string    `json:"attendant"`   // appointments.attendant
	PriceCents int64     `json:"price"`       // appointments.price_cents
	Payment    string    `json:"payment"`     // appointments.payment
	Status     string    `json:"status"`      // appointments.status
	Image      *string   `json:"image"`       // appointments.image (nullable)
	Notes      *string   `json:"notes"`       // appointments.notes (nullable)
	UserID     uint64    `json:"user_id"`     // appointments.user_id
	CreatedAt  time.Time `json:"created_at"`  // appointments.created_at
	UpdatedAt  time.Time `json:"updated_at"`  // appointments.updated_at
}
