package handler

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/rafaelqm/barber-agenda/internal/model"
	"github.com/rafaelqm/barber-agenda/internal/queue"
	"github.com/rafaelqm/barber-agenda/internal/repository"
	"github.com/rafaelqm/barber-agenda/internal/service"
)

// AppointmentHandler implements the owner-scoped CRUD surface over
// appointment records.  Every operation resolves the caller from the
// JWT context and lets the repository enforce ownership; a record
// owned by someone else is indistinguishable from a missing one.
type AppointmentHandler struct {
	Appointments *repository.AppointmentRepo
}

func NewAppointmentHandler(repo *repository.AppointmentRepo) *AppointmentHandler {
	if repo == nil {
		panic("nil repository passed to NewAppointmentHandler")
	}
	return &AppointmentHandler{Appointments: repo}
}

// appointmentReq is the payload for create and full-replace update.
// Price is a pointer so that a missing field can be told apart from
// an explicit zero.
type appointmentReq struct {
	Date      string  `json:"date"`
	Time      string  `json:"time"`
	Type      string  `json:"type"`
	Attendant string  `json:"attendant"`
	Price     *int64  `json:"price"`
	Payment   string  `json:"payment"`
	Status    string  `json:"status"`
	Image     *string `json:"image"`
	Notes     *string `json:"notes"`
}

// parseDate accepts a plain calendar date or a full RFC3339 timestamp
// (older clients sent the latter) and normalizes to UTC midnight.
func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if t, err := time.ParseInLocation("2006-01-02", s, time.UTC); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		t = t.UTC()
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
	}
	return time.Time{}, false
}

// validate checks the payload and returns a human-readable message on
// the first failure.  Runs before any mutation so invalid requests
// never touch the database.
func (req *appointmentReq) validate() (model.Appointment, string) {
	var a model.Appointment

	date, ok := parseDate(req.Date)
	if !ok {
		return a, "date is required (YYYY-MM-DD)"
	}
	if _, err := time.Parse("15:04", strings.TrimSpace(req.Time)); err != nil {
		return a, "time is required (HH:MM)"
	}
	if strings.TrimSpace(req.Type) == "" {
		return a, "type is required"
	}
	if strings.TrimSpace(req.Attendant) == "" {
		return a, "attendant is required"
	}
	if req.Price == nil {
		return a, "price is required"
	}
	if *req.Price < 0 {
		return a, "price must not be negative"
	}
	if !model.ValidPayment(req.Payment) {
		return a, "payment must be one of Dinheiro, Pix, Cartão"
	}
	if !model.ValidStatus(req.Status) {
		return a, "status must be one of Agendado, Concluído, Cancelado"
	}

	a.Date = date
	a.Time = strings.TrimSpace(req.Time)
	a.Type = strings.TrimSpace(req.Type)
	a.Attendant = strings.TrimSpace(req.Attendant)
	a.PriceCents = *req.Price
	a.Payment = req.Payment
	a.Status = req.Status
	a.Image = req.Image
	a.Notes = req.Notes
	return a, ""
}

// List handles GET /v1/appointments and returns all of the caller's records.
func (h *AppointmentHandler) List(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	list, err := h.Appointments.ListByUser(ctx, userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not list appointments", "details": err.Error()})
	}
	return c.JSON(http.StatusOK, list)
}

// Get handles GET /v1/appointments/:id.  Missing and not-owned both map to 404.
func (h *AppointmentHandler) Get(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	a, err := h.Appointments.GetByID(ctx, id, userID)
	if err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "appointment not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not load appointment", "details": err.Error()})
	}
	return c.JSON(http.StatusOK, a)
}

// Create handles POST /v1/appointments.  The owning user comes from the
// session, never from the payload.
func (h *AppointmentHandler) Create(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req appointmentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	a, msg := req.validate()
	if msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}
	a.UserID = userID

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Appointments.Create(ctx, &a); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create appointment", "details": err.Error()})
	}

	// Best-effort event; a broker outage must not fail the booking.
	go func(ev queue.AppointmentCreatedEvent) {
		pubCtx, pubCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer pubCancel()
		_ = service.PublishAppointmentCreated(pubCtx, ev)
	}(queue.NewAppointmentCreatedEvent(a))

	return c.JSON(http.StatusCreated, a)
}

// Update handles PUT /v1/appointments/:id as a full replace of the
// mutable fields.  The same validation as create applies.
func (h *AppointmentHandler) Update(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req appointmentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	a, msg := req.validate()
	if msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}
	a.ID = id
	a.UserID = userID

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Appointments.Update(ctx, &a); err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "appointment not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not update appointment", "details": err.Error()})
	}
	return c.JSON(http.StatusOK, a)
}

// Delete handles DELETE /v1/appointments/:id.
func (h *AppointmentHandler) Delete(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Appointments.Delete(ctx, id, userID); err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "appointment not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not delete appointment", "details": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "appointment deleted"})
}
