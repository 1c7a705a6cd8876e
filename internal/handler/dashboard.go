package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/rafaelqm/barber-agenda/internal/model"
	"github.com/rafaelqm/barber-agenda/internal/repository"
	"github.com/rafaelqm/barber-agenda/internal/stats"
	"github.com/rafaelqm/barber-agenda/internal/utils"
)

// DashboardHandler serves the aggregate statistics endpoint.  It loads
// the caller's full appointment set and hands it to the pure stats
// package; all period arithmetic is relative to the request's wall
// clock, evaluated in UTC.
type DashboardHandler struct {
	Appointments *repository.AppointmentRepo
}

func NewDashboardHandler(repo *repository.AppointmentRepo) *DashboardHandler {
	if repo == nil {
		panic("nil repository passed to NewDashboardHandler")
	}
	return &DashboardHandler{Appointments: repo}
}

// statsResp is the wire shape of GET /v1/stats.  Revenue figures are
// pre-formatted BRL strings; variations are raw percentages.
type statsResp struct {
	RevenueToday          string                `json:"revenue_today"`
	RevenueTodayVariation float64               `json:"revenue_today_variation"`
	ClientsToday          int                   `json:"clients_today"`
	ClientsVariation      float64               `json:"clients_variation"`
	RevenueMonth          string                `json:"revenue_month"`
	RevenueMonthVariation float64               `json:"revenue_month_variation"`
	CountToday            int                   `json:"count_today"`
	CountMonth            int                   `json:"count_month"`
	PopularService        *stats.PopularService `json:"popular_service"`
}

// toRecords projects appointments into the aggregator's input.  The
// attendant label doubles as the person key for unique counting; it is
// the only per-record person identifier the schema carries.
func toRecords(list []model.Appointment) []stats.Record {
	out := make([]stats.Record, 0, len(list))
	for _, a := range list {
		out = append(out, stats.Record{
			Date:   a.Date,
			Price:  a.PriceCents,
			Client: a.Attendant,
			Type:   a.Type,
		})
	}
	return out
}

// Stats handles GET /v1/stats.
func (h *DashboardHandler) Stats(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	list, err := h.Appointments.ListByUser(ctx, userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not load appointments", "details": err.Error()})
	}

	records := toRecords(list)
	s := stats.Summarize(records, time.Now().UTC())

	return c.JSON(http.StatusOK, statsResp{
		RevenueToday:          utils.FormatBRL(s.RevenueTodayCents),
		RevenueTodayVariation: s.RevenueTodayVariation,
		ClientsToday:          s.ClientsToday,
		ClientsVariation:      s.ClientsVariation,
		RevenueMonth:          utils.FormatBRL(s.RevenueMonthCents),
		RevenueMonthVariation: s.RevenueMonthVariation,
		CountToday:            s.CountToday,
		CountMonth:            s.CountMonth,
		PopularService:        stats.MostPopular(records),
	})
}
