package integration

import (
	"net/http"
	"testing"
)

func TestBudgetSharingFlow(t *testing.T) {
	app := setupApp(t)
	owner := "alice@example.com"
	guest := "bob@example.com"
	budgetID := app.createBudget(t, "Shared flat", owner)

	// Guest sees nothing before the share.
	rec := app.request("GET", "/budget/all/"+guest, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("list failed: %d %s", rec.Code, rec.Body.String())
	}
	if budgets := parseJSON(t, rec)["budgets"].([]interface{}); len(budgets) != 0 {
		t.Fatalf("expected no budgets before share, got %d", len(budgets))
	}

	rec = app.request("PUT", "/budget/share/"+budgetID+"/"+guest, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("share failed: %d %s", rec.Code, rec.Body.String())
	}
	users := parseJSON(t, rec)["budget"].(map[string]interface{})["users"].([]interface{})
	if len(users) != 2 || users[0] != owner || users[1] != guest {
		t.Errorf("unexpected members after share: %v", users)
	}

	// Sharing twice does not duplicate the member.
	rec = app.request("PUT", "/budget/share/"+budgetID+"/"+guest, "")
	users = parseJSON(t, rec)["budget"].(map[string]interface{})["users"].([]interface{})
	if len(users) != 2 {
		t.Errorf("expected 2 members after repeat share, got %v", users)
	}

	// Both members now see the budget with its spent amount.
	app.createTransaction(t, budgetID, owner, "Rent", "housing", "2024-03-01", 300)
	for _, email := range []string{owner, guest} {
		rec = app.request("GET", "/budget/all/"+email, "")
		budgets := parseJSON(t, rec)["budgets"].([]interface{})
		if len(budgets) != 1 {
			t.Fatalf("%s: expected 1 budget, got %d", email, len(budgets))
		}
		b := budgets[0].(map[string]interface{})
		if b["spent_amount"] != float64(300) {
			t.Errorf("%s: expected spent_amount 300, got %v", email, b["spent_amount"])
		}
	}
}

func TestBudgetStatusLifecycle(t *testing.T) {
	app := setupApp(t)
	email := "erin@example.com"
	budgetID := app.createBudget(t, "Quarter", email)

	// Close the budget, then the status filter separates it from active ones.
	rec := app.request("PUT", "/budget/update/"+budgetID, `{"status":"closed"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("update failed: %d %s", rec.Code, rec.Body.String())
	}

	rec = app.request("GET", "/budget/all/"+email+"/active", "")
	if budgets := parseJSON(t, rec)["budgets"].([]interface{}); len(budgets) != 0 {
		t.Errorf("expected no active budgets, got %d", len(budgets))
	}

	rec = app.request("GET", "/budget/all/"+email+"/closed", "")
	budgets := parseJSON(t, rec)["budgets"].([]interface{})
	if len(budgets) != 1 {
		t.Fatalf("expected 1 closed budget, got %d", len(budgets))
	}
	if budgets[0].(map[string]interface{})["status"] != "closed" {
		t.Errorf("unexpected status: %v", budgets[0])
	}

	// The creator recorded at creation time survives update attempts.
	rec = app.request("PUT", "/budget/update/"+budgetID, `{"created_by":"intruder@example.com"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("update failed: %d %s", rec.Code, rec.Body.String())
	}
	if got := parseJSON(t, rec)["budget"].(map[string]interface{})["created_by"]; got != email {
		t.Errorf("expected creator %s, got %v", email, got)
	}
}

func TestBudgetStatsFlow(t *testing.T) {
	app := setupApp(t)
	email := "frank@example.com"
	budgetID := app.createBudget(t, "Stats", email)

	// Stats are null while the budget has no transactions.
	rec := app.request("GET", "/budget/stats/"+budgetID, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("stats failed: %d %s", rec.Code, rec.Body.String())
	}
	if stats := parseJSON(t, rec)["stats"]; stats != nil {
		t.Errorf("expected null stats, got %v", stats)
	}

	app.createTransaction(t, budgetID, email, "Lunch", "food", "2024-03-15", 5)
	app.createTransaction(t, budgetID, email, "Dinner", "food", "2024-03-15", 7)
	app.createTransaction(t, budgetID, email, "Bus", "transport", "2024-03-16", 3)

	rec = app.request("GET", "/budget/stats/"+budgetID, "")
	stats := parseJSON(t, rec)["stats"].(map[string]interface{})

	categories := stats["category_txn_count"].(map[string]interface{})
	food := categories["food"].(map[string]interface{})
	if food["sum_amount"] != float64(12) || food["count"] != float64(2) {
		t.Errorf("unexpected food totals: %v", food)
	}

	dates := stats["dates_data"].(map[string]interface{})
	if dates["2024-03-15"] != float64(12) || dates["2024-03-16"] != float64(3) {
		t.Errorf("unexpected per-day sums: %v", dates)
	}

	rec = app.request("GET", "/budget/stats/missing", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown budget, got %d", rec.Code)
	}
}
