package models

import "time"

// BudgetPeriod represents the recurrence window a budget applies to.
type BudgetPeriod string

const (
	BudgetPeriodWeekly  BudgetPeriod = "Weekly"
	BudgetPeriodMonthly BudgetPeriod = "Monthly"
	BudgetPeriodYearly  BudgetPeriod = "Yearly"
)

// Budget represents a per-category spending limit for one period window.
// StartDate and EndDate are derived from the period tag at write time,
// so re-setting the same category/period within the same window replaces
// the row while a new window accumulates a new one.
type Budget struct {
	Base
	UserID    uint         `gorm:"not null;uniqueIndex:idx_budget_window" json:"user_id"`
	Category  string       `gorm:"not null;uniqueIndex:idx_budget_window" json:"category"`
	Amount    int64        `gorm:"type:bigint;not null" json:"amount"`
	Period    BudgetPeriod `gorm:"not null;uniqueIndex:idx_budget_window" json:"period"`
	StartDate time.Time    `gorm:"not null;uniqueIndex:idx_budget_window" json:"start_date"`
	EndDate   time.Time    `gorm:"not null" json:"end_date"`
}
