package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"lucrum/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique username.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	return CreateTestUserWithName(t, db, fmt.Sprintf("user%d", nextID()))
}

// CreateTestUserWithName creates a user with the given username.
func CreateTestUserWithName(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Username: username,
		Password: string(hash),
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestTransaction creates a transaction of the given kind, category,
// and amount (in cents), dated now.
func CreateTestTransaction(t *testing.T, db *gorm.DB, userID uint, kind models.TransactionKind, category string, amount int64) *models.Transaction {
	t.Helper()
	return CreateTestTransactionOn(t, db, userID, kind, category, amount, time.Now())
}

// CreateTestTransactionOn creates a transaction with an explicit date.
func CreateTestTransactionOn(t *testing.T, db *gorm.DB, userID uint, kind models.TransactionKind, category string, amount int64, date time.Time) *models.Transaction {
	t.Helper()

	tx := &models.Transaction{
		UserID:   userID,
		Date:     date,
		Kind:     kind,
		Amount:   amount,
		Category: category,
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return tx
}

// CreateTestDebt creates an active debt with the given balance (in cents).
func CreateTestDebt(t *testing.T, db *gorm.DB, userID uint, amount int64, rate float64, minPayment int64) *models.Debt {
	t.Helper()

	debt := &models.Debt{
		UserID:         userID,
		Name:           fmt.Sprintf("Test Debt %d", nextID()),
		Type:           "Personal Loan",
		Amount:         amount,
		InterestRate:   rate,
		MinimumPayment: minPayment,
		DueDate:        time.Now().AddDate(0, 1, 0),
		Status:         models.DebtStatusActive,
	}
	if err := db.Create(debt).Error; err != nil {
		t.Fatalf("failed to create test debt: %v", err)
	}
	return debt
}

// CreateTestBill creates a pending bill reminder due on the given date.
func CreateTestBill(t *testing.T, db *gorm.DB, userID uint, amount int64, dueDate time.Time) *models.BillReminder {
	t.Helper()

	bill := &models.BillReminder{
		UserID:    userID,
		Name:      fmt.Sprintf("Test Bill %d", nextID()),
		Amount:    amount,
		DueDate:   dueDate,
		Frequency: models.BillFrequencyMonthly,
		Status:    models.BillStatusPending,
	}
	if err := db.Create(bill).Error; err != nil {
		t.Fatalf("failed to create test bill: %v", err)
	}
	return bill
}
