package services

import (
	"math"
	"sort"
	"time"

	"gorm.io/gorm"

	apperrors "lucrum/internal/errors"
	"lucrum/internal/models"
)

// unusualExpenseFactor flags recent expenses that exceed this multiple of
// the 30-day mean expense amount.
const (
	unusualExpenseFactor = 1.5
	unusualWindowDays    = 30
)

// insightService computes stateless derived metrics over a user's ledger.
// It owns no state of its own; every call reads the ledger fresh.
type insightService struct {
	db *gorm.DB
}

// NewInsightService creates a new InsightServicer.
func NewInsightService(db *gorm.DB) InsightServicer {
	return &insightService{db: db}
}

// loadTransactions fetches the user's full transaction set, oldest first.
func (s *insightService) loadTransactions(userID uint) ([]models.Transaction, error) {
	var transactions []models.Transaction
	err := s.db.Where("user_id = ?", userID).
		Order("date ASC").
		Find(&transactions).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return transactions, nil
}

// Overview returns whole-ledger income and expense totals and the balance.
func (s *insightService) Overview(userID uint) (*Overview, error) {
	transactions, err := s.loadTransactions(userID)
	if err != nil {
		return nil, err
	}

	var income, expense int64
	for _, t := range transactions {
		switch t.Kind {
		case models.TransactionKindIncome:
			income += t.Amount
		case models.TransactionKindExpense:
			expense += t.Amount
		}
	}

	return &Overview{
		TotalIncome:  income,
		TotalExpense: expense,
		Balance:      income - expense,
	}, nil
}

// MonthlyTotals returns income and expense sums grouped by calendar
// month, in chronological order.
func (s *insightService) MonthlyTotals(userID uint) ([]MonthlyTotal, error) {
	transactions, err := s.loadTransactions(userID)
	if err != nil {
		return nil, err
	}

	byMonth := make(map[string]*MonthlyTotal)
	for _, t := range transactions {
		month := t.Date.Format("2006-01")
		entry, ok := byMonth[month]
		if !ok {
			entry = &MonthlyTotal{Month: month}
			byMonth[month] = entry
		}
		switch t.Kind {
		case models.TransactionKindIncome:
			entry.Income += t.Amount
		case models.TransactionKindExpense:
			entry.Expense += t.Amount
		}
	}

	totals := make([]MonthlyTotal, 0, len(byMonth))
	for _, entry := range byMonth {
		totals = append(totals, *entry)
	}
	sort.Slice(totals, func(i, j int) bool { return totals[i].Month < totals[j].Month })
	return totals, nil
}

// AverageMonthlyExpense returns the mean of the monthly expense sums,
// in cents, over the months that have any expense.
func (s *insightService) AverageMonthlyExpense(userID uint) (int64, error) {
	totals, err := s.MonthlyTotals(userID)
	if err != nil {
		return 0, err
	}

	var sum int64
	var months int
	for _, t := range totals {
		if t.Expense > 0 {
			sum += t.Expense
			months++
		}
	}
	if months == 0 {
		return 0, nil
	}
	return int64(math.Round(float64(sum) / float64(months))), nil
}

// TopCategories returns the n largest expense categories by total spend,
// descending. Equal totals are ordered by category name so the result is
// deterministic.
func (s *insightService) TopCategories(userID uint, n int) ([]CategoryTotal, error) {
	transactions, err := s.loadTransactions(userID)
	if err != nil {
		return nil, err
	}

	byCategory := make(map[string]int64)
	for _, t := range transactions {
		if t.Kind == models.TransactionKindExpense {
			byCategory[t.Category] += t.Amount
		}
	}

	totals := make([]CategoryTotal, 0, len(byCategory))
	for category, amount := range byCategory {
		totals = append(totals, CategoryTotal{Category: category, Amount: amount})
	}
	sort.Slice(totals, func(i, j int) bool {
		if totals[i].Amount != totals[j].Amount {
			return totals[i].Amount > totals[j].Amount
		}
		return totals[i].Category < totals[j].Category
	})

	if n > 0 && len(totals) > n {
		totals = totals[:n]
	}
	return totals, nil
}

// IncomeExpenseRatio returns total income over total expense. A ledger
// with no expenses has no defined ratio and reports DIVISION_UNDEFINED
// instead of infinity.
func (s *insightService) IncomeExpenseRatio(userID uint) (float64, error) {
	overview, err := s.Overview(userID)
	if err != nil {
		return 0, err
	}

	if overview.TotalExpense == 0 {
		return 0, apperrors.WithMessage(apperrors.ErrDivisionUndefined, "No expenses recorded; income/expense ratio is undefined")
	}
	return float64(overview.TotalIncome) / float64(overview.TotalExpense), nil
}

// UnusualExpenses flags expenses from the last 30 days whose amount
// exceeds 1.5 times the mean expense amount of that same window.
func (s *insightService) UnusualExpenses(userID uint) ([]models.Transaction, error) {
	cutoff := time.Now().AddDate(0, 0, -unusualWindowDays)

	var recent []models.Transaction
	err := s.db.Where("user_id = ? AND kind = ? AND date >= ?",
		userID, models.TransactionKindExpense, cutoff).
		Order("date DESC").
		Find(&recent).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if len(recent) == 0 {
		return []models.Transaction{}, nil
	}

	var sum int64
	for _, t := range recent {
		sum += t.Amount
	}
	mean := float64(sum) / float64(len(recent))

	unusual := make([]models.Transaction, 0)
	for _, t := range recent {
		if float64(t.Amount) > mean*unusualExpenseFactor {
			unusual = append(unusual, t)
		}
	}
	return unusual, nil
}
