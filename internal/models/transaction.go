package models

import "time"

// TransactionKind represents the accounting direction of a transaction.
// The kind alone determines direction; amounts are always non-negative.
type TransactionKind string

const (
	TransactionKindIncome  TransactionKind = "Income"
	TransactionKindExpense TransactionKind = "Expense"
)

// Transaction represents a single dated, categorized ledger entry.
// Amounts are stored in cents.
type Transaction struct {
	Base
	UserID      uint            `gorm:"not null;index" json:"user_id"`
	Date        time.Time       `gorm:"not null" json:"date"`
	Kind        TransactionKind `gorm:"not null" json:"kind"`
	Amount      int64           `gorm:"type:bigint;not null" json:"amount"`
	Category    string          `gorm:"not null" json:"category"`
	Description string          `json:"description"`
}
