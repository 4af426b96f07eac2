package integration

import (
	"fmt"
	"net/http"
	"testing"
	"time"
)

func TestTransactionLifecycle(t *testing.T) {
	app := setupApp(t)
	email := "alice@example.com"
	budgetID := app.createBudget(t, "Household", email)

	txnID := app.createTransaction(t, budgetID, email, "Lunch", "food", "2024-03-15", 12.5)

	// Read it back.
	rec := app.request("GET", "/txn/"+txnID, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("get failed: %d %s", rec.Code, rec.Body.String())
	}
	txn := parseJSON(t, rec)["transaction"].(map[string]interface{})
	if txn["title"] != "Lunch" || txn["amount"] != 12.5 || txn["budget_id"] != budgetID {
		t.Errorf("unexpected transaction: %v", txn)
	}

	// Partial update leaves the rest untouched.
	rec = app.request("PUT", "/txn/update/"+txnID, `{"title":"Team lunch","amount":18}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("update failed: %d %s", rec.Code, rec.Body.String())
	}
	txn = parseJSON(t, rec)["transaction"].(map[string]interface{})
	if txn["title"] != "Team lunch" || txn["amount"] != float64(18) {
		t.Errorf("update not applied: %v", txn)
	}
	if txn["category"] != "food" {
		t.Errorf("category should be untouched, got %v", txn["category"])
	}

	// Delete, then reads report 404.
	rec = app.request("DELETE", "/txn/"+txnID, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("delete failed: %d %s", rec.Code, rec.Body.String())
	}
	rec = app.request("GET", "/txn/"+txnID, "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 after delete, got %d", rec.Code)
	}
	rec = app.request("DELETE", "/txn/"+txnID, "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 on second delete, got %d", rec.Code)
	}
}

func TestTransactionPaginationAcrossPages(t *testing.T) {
	app := setupApp(t)
	email := "bob@example.com"
	budgetID := app.createBudget(t, "Travel", email)

	// Five transactions on consecutive dates, listing orders newest first.
	for i := 1; i <= 5; i++ {
		date := fmt.Sprintf("2024-03-%02d", 10+i)
		app.createTransaction(t, budgetID, email, fmt.Sprintf("txn-%d", i), "transport", date, float64(i*10))
	}

	seen := map[string]bool{}
	var pages []int
	for page := 1; page <= 3; page++ {
		rec := app.request("GET", fmt.Sprintf("/txn/all/%s/%d/2", email, page), "")
		if rec.Code != http.StatusOK {
			t.Fatalf("list page %d failed: %d %s", page, rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		data := result["data"].([]interface{})
		pages = append(pages, len(data))
		for _, item := range data {
			id := item.(map[string]interface{})["id"].(string)
			if seen[id] {
				t.Errorf("transaction %s returned on more than one page", id)
			}
			seen[id] = true
		}
		// Aggregates cover the full set regardless of the page.
		if result["total_items"] != float64(5) {
			t.Errorf("page %d: expected total_items 5, got %v", page, result["total_items"])
		}
		if result["max_amount"] != float64(50) {
			t.Errorf("page %d: expected max_amount 50, got %v", page, result["max_amount"])
		}
	}

	if pages[0] != 2 || pages[1] != 2 || pages[2] != 1 {
		t.Errorf("expected page sizes [2 2 1], got %v", pages)
	}
	if len(seen) != 5 {
		t.Errorf("expected 5 distinct transactions across pages, got %d", len(seen))
	}
}

func TestTransactionFilterFlow(t *testing.T) {
	app := setupApp(t)
	email := "carol@example.com"
	budgetID := app.createBudget(t, "Groceries", email)

	app.createTransaction(t, budgetID, email, "Apples", "food", "2024-03-10", 5)
	app.createTransaction(t, budgetID, email, "Dinner", "food", "2024-03-11", 40)
	app.createTransaction(t, budgetID, email, "Bus", "transport", "2024-03-12", 15)

	body := fmt.Sprintf(`{"email":%q,"categories":["food"],"min_amount":10}`, email)
	rec := app.request("POST", "/txn/filter", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("filter failed: %d %s", rec.Code, rec.Body.String())
	}
	txns := parseJSON(t, rec)["transactions"].([]interface{})
	if len(txns) != 1 {
		t.Fatalf("expected 1 match, got %d", len(txns))
	}
	if txns[0].(map[string]interface{})["title"] != "Dinner" {
		t.Errorf("unexpected match: %v", txns[0])
	}
}

func TestSpendTotalsFlow(t *testing.T) {
	app := setupApp(t)
	email := "dave@example.com"
	budgetID := app.createBudget(t, "Daily", email)

	today := time.Now().Format("2006-01-02")
	app.createTransaction(t, budgetID, email, "Coffee", "food", today, 4)
	app.createTransaction(t, budgetID, email, "Old", "food", "2020-01-01", 100)

	rec := app.request("GET", "/txn/spent/"+email, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("spent failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	if result["total_amount_today"] != float64(4) {
		t.Errorf("expected today 4, got %v", result["total_amount_today"])
	}
	if result["total_amount_this_week"] != float64(4) {
		t.Errorf("expected week 4, got %v", result["total_amount_this_week"])
	}
}
