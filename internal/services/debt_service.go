package services

import (
	"errors"
	"fmt"
	"math"
	"time"

	"gorm.io/gorm"

	apperrors "lucrum/internal/errors"
	"lucrum/internal/models"
	"lucrum/internal/period"
)

// Ledger category and description for debt payoff transactions.
const (
	debtPayoffCategory = "Debt Payment"
	debtUrgentDays     = 7
)

// debtService handles debt-tracking business logic.
type debtService struct {
	db *gorm.DB
}

// NewDebtService creates a new DebtServicer.
func NewDebtService(db *gorm.DB) DebtServicer {
	return &debtService{db: db}
}

// AddDebt records a new outstanding debt instrument with Active status.
func (s *debtService) AddDebt(
	userID uint,
	name, debtType string,
	amount int64,
	interestRate float64,
	minimumPayment int64,
	dueDate time.Time,
) (*models.Debt, error) {
	if amount < 0 || minimumPayment < 0 || interestRate < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount, rate, and minimum payment must not be negative")
	}

	debt := &models.Debt{
		UserID:         userID,
		Name:           name,
		Type:           debtType,
		Amount:         amount,
		InterestRate:   interestRate,
		MinimumPayment: minimumPayment,
		DueDate:        dueDate,
		Status:         models.DebtStatusActive,
	}

	if err := s.db.Create(debt).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return debt, nil
}

// GetActiveDebts returns the user's active debts ordered by due date.
// Paid debts are retained for history but excluded here.
func (s *debtService) GetActiveDebts(userID uint) ([]models.Debt, error) {
	var debts []models.Debt
	err := s.db.Where("user_id = ? AND status = ?", userID, models.DebtStatusActive).
		Order("due_date ASC").
		Find(&debts).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return debts, nil
}

// GetDebtStandings returns active debts with their display urgency:
// a debt due within 7 days carries the urgent flag.
func (s *debtService) GetDebtStandings(userID uint) ([]DebtStanding, error) {
	debts, err := s.GetActiveDebts(userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	standings := make([]DebtStanding, 0, len(debts))
	for _, d := range debts {
		days := period.DaysUntil(d.DueDate, now)
		standings = append(standings, DebtStanding{
			Debt:         d,
			DaysUntilDue: days,
			Urgent:       days <= debtUrgentDays,
		})
	}
	return standings, nil
}

// getDebtByID returns a debt owned by the user or ErrDebtNotFound.
func (s *debtService) getDebtByID(userID, debtID uint) (*models.Debt, error) {
	var debt models.Debt
	if err := s.db.Where("id = ? AND user_id = ?", debtID, userID).First(&debt).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDebtNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &debt, nil
}

// UpdateDebtAmount overwrites the outstanding balance with the supplied
// value. Callers pass the full new balance, not a delta.
func (s *debtService) UpdateDebtAmount(userID, debtID uint, newAmount int64) (*models.Debt, error) {
	if newAmount < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must not be negative")
	}

	debt, err := s.getDebtByID(userID, debtID)
	if err != nil {
		return nil, err
	}

	if err := s.db.Model(debt).Update("amount", newAmount).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return debt, nil
}

// MarkDebtPaid terminally transitions a debt to Paid and records the
// payoff as an Expense transaction of the debt's current amount. Both
// writes happen in one database transaction: either the status flip and
// the ledger entry are both visible, or neither is.
func (s *debtService) MarkDebtPaid(userID, debtID uint) error {
	debt, err := s.getDebtByID(userID, debtID)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(debt).Update("status", models.DebtStatusPaid).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		payoff := &models.Transaction{
			UserID:      userID,
			Date:        time.Now(),
			Kind:        models.TransactionKindExpense,
			Amount:      debt.Amount,
			Category:    debtPayoffCategory,
			Description: fmt.Sprintf("Paid off: %s", debt.Name),
		}
		if err := tx.Create(payoff).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
}

// GetDebtSummary computes aggregate payoff projections over all active
// debts. The interest estimate assumes the weighted average rate applies
// to the full balance for the whole payoff span; it is an approximation,
// not an amortization schedule.
func (s *debtService) GetDebtSummary(userID uint) (*DebtSummary, error) {
	debts, err := s.GetActiveDebts(userID)
	if err != nil {
		return nil, err
	}

	var totalDebt, totalMin int64
	var weightedRateSum float64
	for _, d := range debts {
		totalDebt += d.Amount
		totalMin += d.MinimumPayment
		weightedRateSum += float64(d.Amount) * d.InterestRate
	}

	if totalDebt == 0 {
		return nil, apperrors.WithMessage(apperrors.ErrDivisionUndefined, "No active debt to summarize")
	}
	if totalMin == 0 {
		return nil, apperrors.WithMessage(apperrors.ErrDivisionUndefined, "Total minimum payments are zero; payoff time is undefined")
	}

	avgRate := weightedRateSum / float64(totalDebt)
	months := float64(totalDebt) / float64(totalMin)
	interest := float64(totalDebt) * avgRate / 100 * months / 12

	return &DebtSummary{
		TotalDebt:        totalDebt,
		TotalMinPayments: totalMin,
		WeightedAvgRate:  avgRate,
		MonthsToPayoff:   months,
		InterestEstimate: int64(math.Round(interest)),
	}, nil
}
