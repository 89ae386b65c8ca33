package models

import "time"

// BillStatus represents the lifecycle state of a bill reminder.
type BillStatus string

const (
	BillStatusPending BillStatus = "Pending"
	BillStatusPaid    BillStatus = "Paid"
)

// BillFrequency describes how often a bill recurs. It is display metadata:
// paying off a recurring bill does not regenerate a new pending reminder.
type BillFrequency string

const (
	BillFrequencyMonthly   BillFrequency = "Monthly"
	BillFrequencyWeekly    BillFrequency = "Weekly"
	BillFrequencyQuarterly BillFrequency = "Quarterly"
	BillFrequencyAnnually  BillFrequency = "Annually"
	BillFrequencyOneTime   BillFrequency = "One-time"
)

// BillReminder represents a payable with a due date. Amount is in cents.
type BillReminder struct {
	Base
	UserID    uint          `gorm:"not null;index" json:"user_id"`
	Name      string        `gorm:"not null" json:"name"`
	Amount    int64         `gorm:"type:bigint;not null" json:"amount"`
	DueDate   time.Time     `gorm:"not null" json:"due_date"`
	Frequency BillFrequency `gorm:"not null" json:"frequency"`
	Status    BillStatus    `gorm:"not null;default:Pending" json:"status"`
}
