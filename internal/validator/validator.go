// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"lucrum/internal/models"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("transaction_kind", validateTransactionKind)
		_ = v.RegisterValidation("budget_period", validateBudgetPeriod)
		_ = v.RegisterValidation("bill_frequency", validateBillFrequency)
		_ = v.RegisterValidation("debt_type", validateDebtType)
	}
}

func validateTransactionKind(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "Income", "Expense":
		return true
	}
	return false
}

func validateBudgetPeriod(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "Weekly", "Monthly", "Yearly":
		return true
	}
	return false
}

func validateBillFrequency(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "Monthly", "Weekly", "Quarterly", "Annually", "One-time":
		return true
	}
	return false
}

func validateDebtType(fl validator.FieldLevel) bool {
	for _, t := range models.DebtTypes {
		if fl.Field().String() == t {
			return true
		}
	}
	return false
}
