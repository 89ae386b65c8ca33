package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"lucrum/internal/models"
	"lucrum/internal/services"
)

// --- mock budget service ---

type mockBudgetService struct {
	setBudgetFn       func(userID uint, category string, amount int64, p models.BudgetPeriod) (*models.Budget, error)
	getUserBudgetsFn  func(userID uint, p *models.BudgetPeriod) ([]models.Budget, error)
	getBudgetAlertsFn func(userID uint) ([]services.BudgetAlert, error)
}

func (m *mockBudgetService) SetBudget(userID uint, category string, amount int64, p models.BudgetPeriod) (*models.Budget, error) {
	if m.setBudgetFn != nil {
		return m.setBudgetFn(userID, category, amount, p)
	}
	return &models.Budget{}, nil
}

func (m *mockBudgetService) GetUserBudgets(userID uint, p *models.BudgetPeriod) ([]models.Budget, error) {
	if m.getUserBudgetsFn != nil {
		return m.getUserBudgetsFn(userID, p)
	}
	return []models.Budget{}, nil
}

func (m *mockBudgetService) GetBudgetAlerts(userID uint) ([]services.BudgetAlert, error) {
	if m.getBudgetAlertsFn != nil {
		return m.getBudgetAlertsFn(userID)
	}
	return []services.BudgetAlert{}, nil
}

var _ services.BudgetServicer = (*mockBudgetService)(nil)

func setupBudgetRouter(handler *BudgetHandler) *gin.Engine {
	r := gin.New()
	auth := r.Group("", injectUserID(1))
	auth.POST("/budgets", handler.SetBudget)
	auth.GET("/budgets", handler.GetBudgets)
	auth.GET("/budgets/alerts", handler.GetBudgetAlerts)
	return r
}

func TestBudgetHandler_SetBudget(t *testing.T) {
	t.Run("returns 200 on success", func(t *testing.T) {
		svc := &mockBudgetService{
			setBudgetFn: func(_ uint, category string, amount int64, p models.BudgetPeriod) (*models.Budget, error) {
				return &models.Budget{
					Base:     models.Base{ID: 1},
					UserID:   1,
					Category: category,
					Amount:   amount,
					Period:   p,
				}, nil
			},
		}
		handler := NewBudgetHandler(svc)
		r := setupBudgetRouter(handler)

		rec := doRequest(r, "POST", "/budgets",
			`{"category":"Food","amount":50000,"period":"Monthly"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		budget := result["budget"].(map[string]interface{})
		if budget["category"] != "Food" {
			t.Errorf("expected Food, got %v", budget["category"])
		}
		if budget["amount"].(float64) != 50000 {
			t.Errorf("expected amount 50000, got %v", budget["amount"])
		}
	})

	t.Run("returns 400 on unknown period", func(t *testing.T) {
		handler := NewBudgetHandler(&mockBudgetService{})
		r := setupBudgetRouter(handler)

		rec := doRequest(r, "POST", "/budgets",
			`{"category":"Food","amount":50000,"period":"Fortnightly"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 400 on non-positive amount", func(t *testing.T) {
		handler := NewBudgetHandler(&mockBudgetService{})
		r := setupBudgetRouter(handler)

		rec := doRequest(r, "POST", "/budgets",
			`{"category":"Food","amount":0,"period":"Monthly"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestBudgetHandler_GetBudgets(t *testing.T) {
	t.Run("passes period filter through", func(t *testing.T) {
		var gotPeriod *models.BudgetPeriod
		svc := &mockBudgetService{
			getUserBudgetsFn: func(_ uint, p *models.BudgetPeriod) ([]models.Budget, error) {
				gotPeriod = p
				return []models.Budget{}, nil
			},
		}
		handler := NewBudgetHandler(svc)
		r := setupBudgetRouter(handler)

		rec := doRequest(r, "GET", "/budgets?period=Weekly", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if gotPeriod == nil || *gotPeriod != models.BudgetPeriodWeekly {
			t.Errorf("expected Weekly filter, got %v", gotPeriod)
		}
	})

	t.Run("returns 400 on invalid period filter", func(t *testing.T) {
		handler := NewBudgetHandler(&mockBudgetService{})
		r := setupBudgetRouter(handler)

		rec := doRequest(r, "GET", "/budgets?period=daily", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestBudgetHandler_GetBudgetAlerts(t *testing.T) {
	t.Run("returns alerts", func(t *testing.T) {
		svc := &mockBudgetService{
			getBudgetAlertsFn: func(uint) ([]services.BudgetAlert, error) {
				return []services.BudgetAlert{
					{Category: "Food", Budgeted: 50000, Spent: 80000, Percentage: 160, Tier: services.AlertTierCritical},
				}, nil
			},
		}
		handler := NewBudgetHandler(svc)
		r := setupBudgetRouter(handler)

		rec := doRequest(r, "GET", "/budgets/alerts", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		alerts := result["alerts"].([]interface{})
		if len(alerts) != 1 {
			t.Fatalf("expected 1 alert, got %d", len(alerts))
		}
		alert := alerts[0].(map[string]interface{})
		if alert["tier"] != services.AlertTierCritical {
			t.Errorf("expected critical tier, got %v", alert["tier"])
		}
	})
}
