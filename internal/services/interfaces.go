package services

import (
	"time"

	"lucrum/internal/models"
	"lucrum/internal/pagination"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(username, password string) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
}

// TransactionServicer defines the contract for ledger operations.
type TransactionServicer interface {
	AddTransaction(userID uint, date time.Time, kind models.TransactionKind, amount int64, category, description string) (*models.Transaction, error)
	GetUserTransactions(userID uint, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error)
	GetTransactionByID(userID, transactionID uint) (*models.Transaction, error)
	UpdateTransaction(userID, transactionID uint, date time.Time, kind models.TransactionKind, amount int64, category string) (*models.Transaction, error)
	DeleteTransaction(userID, transactionID uint) error
}

// BudgetAlert describes one budget's month-to-date standing.
type BudgetAlert struct {
	Category   string  `json:"category"`
	Budgeted   int64   `json:"budgeted"`
	Spent      int64   `json:"spent"`
	Percentage float64 `json:"percentage"`
	Tier       string  `json:"tier"`
}

// Alert tiers, from most to least severe. Tier lower bounds are inclusive.
const (
	AlertTierCritical = "critical"
	AlertTierWarning  = "warning"
	AlertTierOK       = "ok"
)

// BudgetServicer defines the contract for budget-related business logic.
type BudgetServicer interface {
	SetBudget(userID uint, category string, amount int64, p models.BudgetPeriod) (*models.Budget, error)
	GetUserBudgets(userID uint, p *models.BudgetPeriod) ([]models.Budget, error)
	GetBudgetAlerts(userID uint) ([]BudgetAlert, error)
}

// DebtSummary contains aggregate payoff projections over all active debts.
// InterestEstimate is a simplified non-amortizing figure, not a true
// amortization schedule.
type DebtSummary struct {
	TotalDebt        int64   `json:"total_debt"`
	TotalMinPayments int64   `json:"total_min_payments"`
	WeightedAvgRate  float64 `json:"weighted_avg_rate"`
	MonthsToPayoff   float64 `json:"months_to_payoff"`
	InterestEstimate int64   `json:"interest_estimate"`
}

// DebtStanding pairs a debt with its display urgency.
type DebtStanding struct {
	Debt         models.Debt `json:"debt"`
	DaysUntilDue int         `json:"days_until_due"`
	Urgent       bool        `json:"urgent"`
}

// DebtServicer defines the contract for debt-tracking business logic.
type DebtServicer interface {
	AddDebt(userID uint, name, debtType string, amount int64, interestRate float64, minimumPayment int64, dueDate time.Time) (*models.Debt, error)
	GetActiveDebts(userID uint) ([]models.Debt, error)
	GetDebtStandings(userID uint) ([]DebtStanding, error)
	UpdateDebtAmount(userID, debtID uint, newAmount int64) (*models.Debt, error)
	MarkDebtPaid(userID, debtID uint) error
	GetDebtSummary(userID uint) (*DebtSummary, error)
}

// Bill due-status tiers for display urgency.
const (
	BillDueCritical = "critical"
	BillDueWarning  = "warning"
	BillDueNormal   = "normal"
)

// BillStanding pairs a pending bill with its due-status tier.
type BillStanding struct {
	Bill         models.BillReminder `json:"bill"`
	DaysUntilDue int                 `json:"days_until_due"`
	DueStatus    string              `json:"due_status"`
}

// BillServicer defines the contract for bill-reminder business logic.
type BillServicer interface {
	AddBillReminder(userID uint, name string, amount int64, dueDate time.Time, frequency models.BillFrequency) (*models.BillReminder, error)
	GetPendingBills(userID uint) ([]models.BillReminder, error)
	GetBillStandings(userID uint) ([]BillStanding, error)
	UpdateBillReminder(userID, billID uint, name string, amount int64, dueDate time.Time, frequency models.BillFrequency) (*models.BillReminder, error)
	MarkBillPaid(userID, billID uint) error
}

// Overview contains whole-ledger totals for the dashboard header.
type Overview struct {
	TotalIncome  int64 `json:"total_income"`
	TotalExpense int64 `json:"total_expense"`
	Balance      int64 `json:"balance"`
}

// MonthlyTotal holds one calendar month's income and expense sums.
type MonthlyTotal struct {
	Month   string `json:"month"`
	Income  int64  `json:"income"`
	Expense int64  `json:"expense"`
}

// CategoryTotal holds one category's total spend.
type CategoryTotal struct {
	Category string `json:"category"`
	Amount   int64  `json:"amount"`
}

// InsightServicer defines stateless derived metrics over a user's ledger.
type InsightServicer interface {
	Overview(userID uint) (*Overview, error)
	MonthlyTotals(userID uint) ([]MonthlyTotal, error)
	AverageMonthlyExpense(userID uint) (int64, error)
	TopCategories(userID uint, n int) ([]CategoryTotal, error)
	IncomeExpenseRatio(userID uint) (float64, error)
	UnusualExpenses(userID uint) ([]models.Transaction, error)
}
