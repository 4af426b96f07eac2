package aggregate

import (
	"testing"
	"time"

	"moneywise/internal/models"
)

func txn(category, label string, amount float64, date time.Time) models.Transaction {
	return models.Transaction{
		Title:    "t",
		Amount:   amount,
		Category: category,
		Label:    label,
		Date:     date,
	}
}

func TestByCategory(t *testing.T) {
	day := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	txns := []models.Transaction{
		txn("food", "", 5, day),
		txn("food", "", 7, day),
		txn("travel", "", 30, day),
	}

	got := ByCategory(txns)

	if len(got) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(got))
	}
	if got["food"].SumAmount != 12 || got["food"].Count != 2 {
		t.Errorf("food: expected {12 2}, got {%v %d}", got["food"].SumAmount, got["food"].Count)
	}
	if got["travel"].SumAmount != 30 || got["travel"].Count != 1 {
		t.Errorf("travel: expected {30 1}, got {%v %d}", got["travel"].SumAmount, got["travel"].Count)
	}
}

func TestByLabel(t *testing.T) {
	day := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	txns := []models.Transaction{
		txn("food", "groceries", 5, day),
		txn("food", "groceries", 7, day),
		txn("food", "", 100, day), // unlabeled, excluded
	}

	got := ByLabel(txns)

	if len(got) != 1 {
		t.Fatalf("expected 1 label, got %d", len(got))
	}
	if got["groceries"].SumAmount != 12 || got["groceries"].Count != 2 {
		t.Errorf("groceries: expected {12 2}, got {%v %d}", got["groceries"].SumAmount, got["groceries"].Count)
	}
}

func TestByDay(t *testing.T) {
	txns := []models.Transaction{
		txn("food", "", 5, time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)),
		txn("food", "", 7, time.Date(2024, 1, 1, 21, 30, 0, 0, time.UTC)),
		txn("food", "", 3, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)),
	}

	got := ByDay(txns)

	if len(got) != 2 {
		t.Fatalf("expected 2 days, got %d", len(got))
	}
	if got["2024-01-01"] != 12 {
		t.Errorf("2024-01-01: expected 12, got %v", got["2024-01-01"])
	}
	if got["2024-01-02"] != 3 {
		t.Errorf("2024-01-02: expected 3, got %v", got["2024-01-02"])
	}
}

func TestSumAndMax(t *testing.T) {
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	txns := []models.Transaction{
		txn("a", "", 10, day),
		txn("b", "", 20, day),
		txn("c", "", 30, day),
	}

	if got := Sum(txns); got != 60 {
		t.Errorf("Sum: expected 60, got %v", got)
	}
	if got := MaxAmount(txns); got != 30 {
		t.Errorf("MaxAmount: expected 30, got %v", got)
	}
	if got := MaxAmount(nil); got != 0 {
		t.Errorf("MaxAmount(empty): expected 0, got %v", got)
	}

	negative := []models.Transaction{txn("a", "", -5, day), txn("b", "", -2, day)}
	if got := MaxAmount(negative); got != -2 {
		t.Errorf("MaxAmount(negative): expected -2, got %v", got)
	}
}

func TestDayWindow(t *testing.T) {
	now := time.Date(2024, 3, 15, 14, 30, 0, 0, time.UTC)
	start, end := DayWindow(now)

	if !start.Equal(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected start %v", start)
	}
	if !end.Equal(time.Date(2024, 3, 15, 23, 59, 59, 999999999, time.UTC)) {
		t.Errorf("unexpected end %v", end)
	}
}

func TestWeekWindow(t *testing.T) {
	t.Run("midweek", func(t *testing.T) {
		// 2024-03-15 is a Friday, so the week is Mon 11th .. Sun 17th.
		now := time.Date(2024, 3, 15, 14, 30, 0, 0, time.UTC)
		start, end := WeekWindow(now)

		if !start.Equal(time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("unexpected start %v", start)
		}
		if !end.Equal(time.Date(2024, 3, 17, 23, 59, 59, 999999999, time.UTC)) {
			t.Errorf("unexpected end %v", end)
		}
	})

	t.Run("sunday_is_last_day", func(t *testing.T) {
		// 2024-03-17 is a Sunday; the window must still start the Monday before.
		now := time.Date(2024, 3, 17, 8, 0, 0, 0, time.UTC)
		start, end := WeekWindow(now)

		if !start.Equal(time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("unexpected start %v", start)
		}
		if end.Day() != 17 {
			t.Errorf("expected week to end on the 17th, got %v", end)
		}
	})

	t.Run("monday_starts_fresh_week", func(t *testing.T) {
		now := time.Date(2024, 3, 18, 0, 30, 0, 0, time.UTC)
		start, _ := WeekWindow(now)

		if !start.Equal(time.Date(2024, 3, 18, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("unexpected start %v", start)
		}
	})
}

func TestSumBetween(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	dayStart, dayEnd := DayWindow(now)
	weekStart, weekEnd := WeekWindow(now)

	today := txn("food", "", 10, now)
	thisWeek := txn("food", "", 20, now.AddDate(0, 0, -2))  // Wednesday, same week
	eightDaysAgo := txn("food", "", 40, now.AddDate(0, 0, -8))

	txns := []models.Transaction{today, thisWeek, eightDaysAgo}

	if got := SumBetween(txns, dayStart, dayEnd); got != 10 {
		t.Errorf("today: expected 10, got %v", got)
	}
	// A today transaction also falls inside the week window.
	if got := SumBetween(txns, weekStart, weekEnd); got != 30 {
		t.Errorf("this week: expected 30, got %v", got)
	}
	// The 8-days-ago transaction contributes to neither window.
	if got := SumBetween([]models.Transaction{eightDaysAgo}, weekStart, weekEnd); got != 0 {
		t.Errorf("8 days ago in week window: expected 0, got %v", got)
	}
}
