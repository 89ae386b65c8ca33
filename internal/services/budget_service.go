package services

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "lucrum/internal/errors"
	"lucrum/internal/models"
	"lucrum/internal/period"
)

// budgetService handles budget-related business logic.
type budgetService struct {
	db *gorm.DB
}

// NewBudgetService creates a new BudgetServicer.
func NewBudgetService(db *gorm.DB) BudgetServicer {
	return &budgetService{db: db}
}

// SetBudget upserts a per-category limit for the current period window.
// The window is derived from "now", so setting the same category and
// period again within the window replaces the row, while the next
// week/month/year accumulates a fresh one.
func (s *budgetService) SetBudget(userID uint, category string, amount int64, p models.BudgetPeriod) (*models.Budget, error) {
	if amount < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must not be negative")
	}

	start, end, err := period.Window(p, time.Now())
	if err != nil {
		return nil, err
	}

	budget := &models.Budget{
		UserID:    userID,
		Category:  category,
		Amount:    amount,
		Period:    p,
		StartDate: start,
		EndDate:   end,
	}

	err = s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "user_id"}, {Name: "category"}, {Name: "period"}, {Name: "start_date"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"amount", "end_date", "updated_at"}),
	}).Create(budget).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return budget, nil
}

// GetUserBudgets returns the user's budgets, optionally filtered to one
// period tag.
func (s *budgetService) GetUserBudgets(userID uint, p *models.BudgetPeriod) ([]models.Budget, error) {
	q := s.db.Where("user_id = ?", userID)
	if p != nil {
		q = q.Where("period = ?", *p)
	}

	var budgets []models.Budget
	if err := q.Order("category ASC, start_date DESC").Find(&budgets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return budgets, nil
}

// Progress returns spent over budgeted as a percentage. A zero budget
// reports zero progress rather than an undefined ratio.
func Progress(spent, budgeted int64) float64 {
	if budgeted <= 0 {
		return 0
	}
	return float64(spent) / float64(budgeted) * 100
}

// GetBudgetAlerts evaluates every budget against the user's
// calendar-month-to-date expense sums per category. The measurement
// window is always the current month, whatever period the budget itself
// carries.
func (s *budgetService) GetBudgetAlerts(userID uint) ([]BudgetAlert, error) {
	budgets, err := s.GetUserBudgets(userID, nil)
	if err != nil {
		return nil, err
	}

	start, end := period.MonthToDate(time.Now())

	type categorySum struct {
		Category string
		Total    int64
	}
	var sums []categorySum
	err = s.db.Model(&models.Transaction{}).
		Select("category, COALESCE(SUM(amount), 0) AS total").
		Where("user_id = ? AND kind = ? AND date BETWEEN ? AND ?",
			userID, models.TransactionKindExpense, start, end).
		Group("category").
		Scan(&sums).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	spentByCategory := make(map[string]int64, len(sums))
	for _, s := range sums {
		spentByCategory[s.Category] = s.Total
	}

	alerts := make([]BudgetAlert, 0, len(budgets))
	for _, b := range budgets {
		spent := spentByCategory[b.Category]
		pct := Progress(spent, b.Amount)
		alerts = append(alerts, BudgetAlert{
			Category:   b.Category,
			Budgeted:   b.Amount,
			Spent:      spent,
			Percentage: pct,
			Tier:       alertTier(pct),
		})
	}
	return alerts, nil
}

// alertTier maps a progress percentage to its alert tier. Lower bounds
// are inclusive.
func alertTier(pct float64) string {
	switch {
	case pct >= 90:
		return AlertTierCritical
	case pct >= 75:
		return AlertTierWarning
	default:
		return AlertTierOK
	}
}
