package models

// User represents an account holder. Every other entity is owned by a user
// through its UserID foreign key. Users are never deleted.
type User struct {
	Base
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Password string `gorm:"not null" json:"-"`

	Transactions  []Transaction  `gorm:"foreignKey:UserID" json:"transactions,omitempty"`
	Budgets       []Budget       `gorm:"foreignKey:UserID" json:"budgets,omitempty"`
	Debts         []Debt         `gorm:"foreignKey:UserID" json:"debts,omitempty"`
	BillReminders []BillReminder `gorm:"foreignKey:UserID" json:"bill_reminders,omitempty"`
}
