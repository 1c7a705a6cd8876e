// Package stats computes dashboard figures from a user's appointment
// records.  Everything here is pure and synchronous: callers pass the
// full record set plus a reference instant and get derived numbers
// back.  Empty or sparse input yields zero values, never an error.
//
// All calendar comparisons are done in UTC.  Records are expected to
// carry their service date at UTC midnight, which is how the storage
// layer returns them.
package stats

import (
	"math"
	"time"
)

// Record is the minimal projection of an appointment the aggregator
// needs.  Client is the per-record person label used for unique
// counts (the attendant, in this application); records with an empty
// Client are ignored by the unique count.
type Record struct {
	Date   time.Time // calendar date of the service
	Price  int64     // price in cents
	Client string    // person label for unique counting
	Type   string    // service label for popularity
}

// Summary holds the raw dashboard figures for the reference instant
// passed to Summarize.  Revenue values are in cents; formatting is
// the caller's concern.
type Summary struct {
	RevenueTodayCents     int64   // sum of today's prices
	RevenueTodayVariation float64 // % change vs yesterday
	ClientsToday          int     // unique clients seen today
	ClientsVariation      float64 // % change of monthly unique clients vs previous month
	RevenueMonthCents     int64   // sum of this month's prices
	RevenueMonthVariation float64 // % change vs previous month
	CountToday            int     // number of appointments today
	CountMonth            int     // number of appointments this month
}

// PopularService names the most frequent service type and its share
// of all records, rounded to one decimal place.
type PopularService struct {
	Name       string  `json:"name"`
	Percentage float64 `json:"percentage"`
}

func sameDay(a, b time.Time) bool {
	a, b = a.UTC(), b.UTC()
	return a.Day() == b.Day() && a.Month() == b.Month() && a.Year() == b.Year()
}

func sameMonth(t time.Time, year int, month time.Month) bool {
	t = t.UTC()
	return t.Month() == month && t.Year() == year
}

func filterDay(records []Record, day time.Time) []Record {
	out := []Record{}
	for _, r := range records {
		if sameDay(r.Date, day) {
			out = append(out, r)
		}
	}
	return out
}

func filterMonth(records []Record, year int, month time.Month) []Record {
	out := []Record{}
	for _, r := range records {
		if sameMonth(r.Date, year, month) {
			out = append(out, r)
		}
	}
	return out
}

func sumPrice(records []Record) int64 {
	var total int64
	for _, r := range records {
		total += r.Price
	}
	return total
}

func uniqueClients(records []Record) int {
	seen := map[string]struct{}{}
	for _, r := range records {
		if r.Client == "" {
			continue
		}
		seen[r.Client] = struct{}{}
	}
	return len(seen)
}

// Variation returns the percentage change from prev to cur.  When
// prev is zero the result is defined as exactly 0 rather than a
// division error; callers must not read 0% as "no data".
func Variation(cur, prev float64) float64 {
	if prev == 0 {
		return 0
	}
	return (cur - prev) / prev * 100
}

// Summarize computes the day and month figures relative to now.
// Yesterday and the previous month are derived with calendar
// arithmetic, so month and year rollovers are handled.
func Summarize(records []Record, now time.Time) Summary {
	now = now.UTC()
	yesterday := now.AddDate(0, 0, -1)

	curYear, curMonth := now.Year(), now.Month()
	prevYear, prevMonth := curYear, curMonth-1
	if curMonth == time.January {
		prevYear, prevMonth = curYear-1, time.December
	}

	today := filterDay(records, now)
	prior := filterDay(records, yesterday)
	thisMonth := filterMonth(records, curYear, curMonth)
	lastMonth := filterMonth(records, prevYear, prevMonth)

	totalToday := sumPrice(today)
	totalYesterday := sumPrice(prior)
	totalMonth := sumPrice(thisMonth)
	totalLastMonth := sumPrice(lastMonth)

	return Summary{
		RevenueTodayCents:     totalToday,
		RevenueTodayVariation: Variation(float64(totalToday), float64(totalYesterday)),
		ClientsToday:          uniqueClients(today),
		ClientsVariation:      Variation(float64(uniqueClients(thisMonth)), float64(uniqueClients(lastMonth))),
		RevenueMonthCents:     totalMonth,
		RevenueMonthVariation: Variation(float64(totalMonth), float64(totalLastMonth)),
		CountToday:            len(today),
		CountMonth:            len(thisMonth),
	}
}

// MostPopular returns the service type with the highest count across
// all records, with its share of the total as a percentage rounded to
// one decimal.  Records with an empty Type are skipped.  Ties go to
// the type that appeared first in the input.  Returns nil when there
// is nothing to rank.
func MostPopular(records []Record) *PopularService {
	if len(records) == 0 {
		return nil
	}

	counts := map[string]int{}
	order := []string{}
	for _, r := range records {
		if r.Type == "" {
			continue
		}
		if _, ok := counts[r.Type]; !ok {
			order = append(order, r.Type)
		}
		counts[r.Type]++
	}
	if len(order) == 0 {
		return nil
	}

	best := order[0]
	for _, t := range order[1:] {
		if counts[t] > counts[best] {
			best = t
		}
	}

	pct := float64(counts[best]) / float64(len(records)) * 100
	return &PopularService{
		Name:       best,
		Percentage: math.Round(pct*10) / 10,
	}
}
