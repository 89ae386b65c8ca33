package integration

import (
	"net/http"
	"testing"
)

func TestBudgetFlow_SetSpendAlert(t *testing.T) {
	app := setupApp(t)
	token, _ := app.registerUser(t, "budgeter", "password123")

	// Step 1: Set a Monthly budget for Food
	rec := app.request("POST", "/api/v1/budgets",
		`{"category":"Food","amount":50000,"period":"Monthly"}`, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("set budget failed: %d %s", rec.Code, rec.Body.String())
	}

	// Step 2: Spend past the budget this month
	rec = app.request("POST", "/api/v1/transactions",
		`{"kind":"Expense","amount":80000,"category":"Food","description":"restaurant week"}`, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create transaction failed: %d %s", rec.Code, rec.Body.String())
	}

	// Step 3: Alerts report the overspend as critical
	rec = app.request("GET", "/api/v1/budgets/alerts", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("get alerts failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	alerts := result["alerts"].([]interface{})
	if len(alerts) != 1 {
		t.Fatalf("expected 1 alert, got %d", len(alerts))
	}
	alert := alerts[0].(map[string]interface{})
	if alert["category"] != "Food" {
		t.Errorf("expected Food alert, got %v", alert["category"])
	}
	if alert["tier"] != "critical" {
		t.Errorf("expected critical tier, got %v", alert["tier"])
	}
	if alert["percentage"].(float64) != 160.0 {
		t.Errorf("expected 160%% spent, got %v", alert["percentage"])
	}
}

func TestBudgetFlow_SameWindowReplaces(t *testing.T) {
	app := setupApp(t)
	token, _ := app.registerUser(t, "replacer", "password123")

	rec := app.request("POST", "/api/v1/budgets",
		`{"category":"Transport","amount":20000,"period":"Monthly"}`, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("first set failed: %d %s", rec.Code, rec.Body.String())
	}

	rec = app.request("POST", "/api/v1/budgets",
		`{"category":"Transport","amount":35000,"period":"Monthly"}`, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("second set failed: %d %s", rec.Code, rec.Body.String())
	}

	rec = app.request("GET", "/api/v1/budgets", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("get budgets failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	budgets := result["budgets"].([]interface{})
	if len(budgets) != 1 {
		t.Fatalf("expected 1 budget after replacement, got %d", len(budgets))
	}
	budget := budgets[0].(map[string]interface{})
	if budget["amount"].(float64) != 35000 {
		t.Errorf("expected replaced amount 35000, got %v", budget["amount"])
	}
}

func TestBudgetFlow_ScopedToUser(t *testing.T) {
	app := setupApp(t)
	token1, _ := app.registerUser(t, "owner", "password123")
	token2, _ := app.registerUser(t, "neighbor", "password123")

	rec := app.request("POST", "/api/v1/budgets",
		`{"category":"Food","amount":50000,"period":"Monthly"}`, token1)
	if rec.Code != http.StatusOK {
		t.Fatalf("set budget failed: %d %s", rec.Code, rec.Body.String())
	}

	rec = app.request("GET", "/api/v1/budgets", "", token2)
	if rec.Code != http.StatusOK {
		t.Fatalf("get budgets failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	budgets := result["budgets"].([]interface{})
	if len(budgets) != 0 {
		t.Errorf("expected no budgets for other user, got %d", len(budgets))
	}
}
