package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	apperrors "lucrum/internal/errors"
	"lucrum/internal/models"
	"lucrum/internal/period"
)

// Ledger category for bill payoff transactions and due-status cutoffs.
const (
	billPayoffCategory = "Bills"
	billCriticalDays   = 3
	billWarningDays    = 7
)

// billService handles bill-reminder business logic.
type billService struct {
	db *gorm.DB
}

// NewBillService creates a new BillServicer.
func NewBillService(db *gorm.DB) BillServicer {
	return &billService{db: db}
}

// AddBillReminder records a new payable with Pending status. Frequency
// is display metadata: a recurring bill is not regenerated after payoff
// and must be re-added manually.
func (s *billService) AddBillReminder(
	userID uint,
	name string,
	amount int64,
	dueDate time.Time,
	frequency models.BillFrequency,
) (*models.BillReminder, error) {
	if amount < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must not be negative")
	}

	bill := &models.BillReminder{
		UserID:    userID,
		Name:      name,
		Amount:    amount,
		DueDate:   dueDate,
		Frequency: frequency,
		Status:    models.BillStatusPending,
	}

	if err := s.db.Create(bill).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return bill, nil
}

// GetPendingBills returns the user's pending bills ordered by due date.
// Paid bills are retained for history but excluded here.
func (s *billService) GetPendingBills(userID uint) ([]models.BillReminder, error) {
	var bills []models.BillReminder
	err := s.db.Where("user_id = ? AND status = ?", userID, models.BillStatusPending).
		Order("due_date ASC").
		Find(&bills).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return bills, nil
}

// GetBillStandings returns pending bills with their due-status tier:
// due within 3 days is critical, within 7 days is a warning.
func (s *billService) GetBillStandings(userID uint) ([]BillStanding, error) {
	bills, err := s.GetPendingBills(userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	standings := make([]BillStanding, 0, len(bills))
	for _, b := range bills {
		days := period.DaysUntil(b.DueDate, now)
		standings = append(standings, BillStanding{
			Bill:         b,
			DaysUntilDue: days,
			DueStatus:    billDueStatus(days),
		})
	}
	return standings, nil
}

func billDueStatus(days int) string {
	switch {
	case days <= billCriticalDays:
		return BillDueCritical
	case days <= billWarningDays:
		return BillDueWarning
	default:
		return BillDueNormal
	}
}

// getBillByID returns a bill reminder owned by the user or ErrBillNotFound.
func (s *billService) getBillByID(userID, billID uint) (*models.BillReminder, error) {
	var bill models.BillReminder
	if err := s.db.Where("id = ? AND user_id = ?", billID, userID).First(&bill).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBillNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &bill, nil
}

// UpdateBillReminder overwrites all editable fields of a pending bill.
func (s *billService) UpdateBillReminder(
	userID, billID uint,
	name string,
	amount int64,
	dueDate time.Time,
	frequency models.BillFrequency,
) (*models.BillReminder, error) {
	if amount < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must not be negative")
	}

	bill, err := s.getBillByID(userID, billID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"name":      name,
		"amount":    amount,
		"due_date":  dueDate,
		"frequency": frequency,
	}
	if err := s.db.Model(bill).Updates(updates).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return bill, nil
}

// MarkBillPaid terminally transitions a bill to Paid and records the
// payment as an Expense transaction of the bill's amount. Both writes
// happen in one database transaction.
func (s *billService) MarkBillPaid(userID, billID uint) error {
	bill, err := s.getBillByID(userID, billID)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(bill).Update("status", models.BillStatusPaid).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		payment := &models.Transaction{
			UserID:      userID,
			Date:        time.Now(),
			Kind:        models.TransactionKindExpense,
			Amount:      bill.Amount,
			Category:    billPayoffCategory,
			Description: fmt.Sprintf("Paid: %s", bill.Name),
		}
		if err := tx.Create(payment).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
}
