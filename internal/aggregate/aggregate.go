// Package aggregate contains the pure in-memory reducers behind budget
// statistics and spend summaries. All functions operate on transaction
// slices already fetched from the store and never touch the database.
package aggregate

import (
	"time"

	"moneywise/internal/models"
)

// DayKeyFormat normalizes transaction dates to calendar-day keys. For this
// format, lexicographic key order is chronological order.
const DayKeyFormat = "2006-01-02"

// Totals is a running sum and count for one grouping key.
type Totals struct {
	SumAmount float64 `json:"sum_amount"`
	Count     int     `json:"count"`
}

// ByCategory groups transactions by category, accumulating amount sums and
// counts per category.
func ByCategory(txns []models.Transaction) map[string]Totals {
	out := make(map[string]Totals, len(txns))
	for _, t := range txns {
		agg := out[t.Category]
		agg.SumAmount += t.Amount
		agg.Count++
		out[t.Category] = agg
	}
	return out
}

// ByLabel groups transactions by label. Unlabeled transactions are excluded
// from the grouping entirely rather than collected under an empty key.
func ByLabel(txns []models.Transaction) map[string]Totals {
	out := make(map[string]Totals)
	for _, t := range txns {
		if t.Label == "" {
			continue
		}
		agg := out[t.Label]
		agg.SumAmount += t.Amount
		agg.Count++
		out[t.Label] = agg
	}
	return out
}

// ByDay sums transaction amounts per calendar day, keyed by DayKeyFormat.
// encoding/json marshals map keys in sorted order, so the serialized result
// is chronological without further work.
func ByDay(txns []models.Transaction) map[string]float64 {
	out := make(map[string]float64)
	for _, t := range txns {
		out[t.Date.Format(DayKeyFormat)] += t.Amount
	}
	return out
}

// Sum returns the total of all transaction amounts.
func Sum(txns []models.Transaction) float64 {
	var total float64
	for _, t := range txns {
		total += t.Amount
	}
	return total
}

// MaxAmount returns the largest single transaction amount, or 0 for an
// empty slice.
func MaxAmount(txns []models.Transaction) float64 {
	var max float64
	for i, t := range txns {
		if i == 0 || t.Amount > max {
			max = t.Amount
		}
	}
	return max
}

// SumBetween sums amounts of transactions whose date falls inside the
// inclusive [from, to] window. Transactions outside the window are silently
// excluded.
func SumBetween(txns []models.Transaction, from, to time.Time) float64 {
	var total float64
	for _, t := range txns {
		if t.Date.Before(from) || t.Date.After(to) {
			continue
		}
		total += t.Amount
	}
	return total
}

// DayWindow returns the bounds of the calendar day containing now, from
// local midnight to the last instant before the next midnight.
func DayWindow(now time.Time) (time.Time, time.Time) {
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	end := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 999999999, now.Location())
	return start, end
}

// WeekWindow returns the bounds of the ISO week containing now: Monday
// 00:00:00 through the last instant of Sunday. Sunday counts as the last
// day of the week, not the first.
func WeekWindow(now time.Time) (time.Time, time.Time) {
	weekday := int(now.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	monday := now.AddDate(0, 0, -(weekday - 1))
	start := time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, now.Location())
	sunday := start.AddDate(0, 0, 6)
	end := time.Date(sunday.Year(), sunday.Month(), sunday.Day(), 23, 59, 59, 999999999, now.Location())
	return start, end
}
