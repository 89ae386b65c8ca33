package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "lucrum/internal/errors"
	"lucrum/internal/services"
)

// defaultTopCategories bounds the top-categories listing when the client
// does not ask for a specific count.
const defaultTopCategories = 5

// InsightHandler handles derived-metric requests over the user's ledger.
type InsightHandler struct {
	insightService services.InsightServicer
}

// NewInsightHandler creates a new InsightHandler.
func NewInsightHandler(insightService services.InsightServicer) *InsightHandler {
	return &InsightHandler{insightService: insightService}
}

// GetOverview handles retrieving whole-ledger totals.
// @Summary     Get financial overview
// @Description Get total income, total expense, and balance over the whole ledger
// @Tags        insights
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} services.Overview "Overview"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /insights/overview [get]
func (h *InsightHandler) GetOverview(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	overview, err := h.insightService.Overview(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"overview": overview})
}

// GetMonthlyTotals handles retrieving per-month income and expense sums.
// @Summary     Get monthly totals
// @Description Get income and expense sums grouped by calendar month, chronological
// @Tags        insights
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} services.MonthlyTotal "Monthly totals"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /insights/monthly [get]
func (h *InsightHandler) GetMonthlyTotals(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	totals, err := h.insightService.MonthlyTotals(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"monthly_totals": totals})
}

// GetAverageMonthlyExpense handles retrieving the mean monthly expense.
// @Summary     Get average monthly expense
// @Description Get the mean monthly expense in cents over months with any spending
// @Tags        insights
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string]int64 "Average monthly expense"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /insights/average-expense [get]
func (h *InsightHandler) GetAverageMonthlyExpense(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	avg, err := h.insightService.AverageMonthlyExpense(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"average_monthly_expense": avg})
}

// GetTopCategories handles retrieving the largest expense categories.
// @Summary     Get top expense categories
// @Description Get the largest expense categories by total spend, descending
// @Tags        insights
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       limit query int false "Number of categories to return (default 5)"
// @Success     200 {array} services.CategoryTotal "Top categories"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /insights/top-categories [get]
func (h *InsightHandler) GetTopCategories(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	limit := defaultTopCategories
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "limit must be a positive integer"))
			return
		}
		limit = n
	}

	totals, err := h.insightService.TopCategories(userID, limit)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"top_categories": totals})
}

// GetIncomeExpenseRatio handles retrieving the income/expense ratio.
// @Summary     Get income/expense ratio
// @Description Get total income divided by total expense
// @Tags        insights
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string]float64 "Income/expense ratio"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     422 {object} ErrorResponse "Ratio undefined with no expenses"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /insights/ratio [get]
func (h *InsightHandler) GetIncomeExpenseRatio(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	ratio, err := h.insightService.IncomeExpenseRatio(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"income_expense_ratio": ratio})
}

// GetUnusualExpenses handles retrieving recent outlier expenses.
// @Summary     Get unusual expenses
// @Description Get expenses from the last 30 days well above the recent mean
// @Tags        insights
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} models.Transaction "Unusual expenses"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /insights/unusual [get]
func (h *InsightHandler) GetUnusualExpenses(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	unusual, err := h.insightService.UnusualExpenses(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"unusual_expenses": unusual})
}
