package models

import "time"

// DebtStatus represents the lifecycle state of a debt.
// Paid is terminal and is only reached through the payoff operation.
type DebtStatus string

const (
	DebtStatusActive DebtStatus = "Active"
	DebtStatusPaid   DebtStatus = "Paid"
)

// DebtTypes is the vocabulary of debt instruments offered to users.
var DebtTypes = []string{
	"Credit Card", "Student Loan", "Personal Loan",
	"Mortgage", "Auto Loan", "Medical Debt", "Other",
}

// Debt represents an outstanding debt instrument. Amount is the current
// outstanding principal in cents; InterestRate is an annual percentage.
type Debt struct {
	Base
	UserID         uint       `gorm:"not null;index" json:"user_id"`
	Name           string     `gorm:"not null" json:"name"`
	Type           string     `gorm:"not null" json:"type"`
	Amount         int64      `gorm:"type:bigint;not null" json:"amount"`
	InterestRate   float64    `gorm:"not null" json:"interest_rate"`
	MinimumPayment int64      `gorm:"type:bigint;not null" json:"minimum_payment"`
	DueDate        time.Time  `gorm:"not null" json:"due_date"`
	Status         DebtStatus `gorm:"not null;default:Active" json:"status"`
}
