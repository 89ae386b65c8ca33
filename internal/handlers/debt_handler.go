package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "lucrum/internal/errors"
	"lucrum/internal/services"
)

// DebtHandler handles debt-tracking requests.
type DebtHandler struct {
	debtService services.DebtServicer
}

// NewDebtHandler creates a new DebtHandler.
func NewDebtHandler(debtService services.DebtServicer) *DebtHandler {
	return &DebtHandler{debtService: debtService}
}

// CreateDebtRequest represents the request payload for adding a debt.
type CreateDebtRequest struct {
	Name           string    `json:"name" binding:"required,min=1,max=100"`
	Type           string    `json:"type" binding:"required,debt_type"`
	Amount         int64     `json:"amount" binding:"required,gt=0"`
	InterestRate   float64   `json:"interest_rate" binding:"gte=0"`
	MinimumPayment int64     `json:"minimum_payment" binding:"gte=0"`
	DueDate        time.Time `json:"due_date" binding:"required"`
}

// UpdateDebtAmountRequest represents the request payload for updating a debt balance.
type UpdateDebtAmountRequest struct {
	Amount int64 `json:"amount" binding:"gte=0"`
}

// CreateDebt handles adding a new debt.
// @Summary     Add a debt
// @Description Record a new active debt, amounts in cents
// @Tags        debts
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateDebtRequest true "Debt details"
// @Success     201 {object} models.Debt "Debt recorded"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /debts [post]
func (h *DebtHandler) CreateDebt(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateDebtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	debt, err := h.debtService.AddDebt(
		userID, req.Name, req.Type, req.Amount, req.InterestRate, req.MinimumPayment, req.DueDate,
	)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"debt": debt})
}

// GetDebts handles listing the user's active debts with urgency standing.
// @Summary     Get active debts
// @Description Get active debts ordered by due date, each with days until due and an urgency flag
// @Tags        debts
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} services.DebtStanding "Active debts"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /debts [get]
func (h *DebtHandler) GetDebts(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	standings, err := h.debtService.GetDebtStandings(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"debts": standings})
}

// UpdateDebtAmount handles overwriting a debt's remaining balance.
// @Summary     Update debt balance
// @Description Overwrite the remaining balance of an active debt
// @Tags        debts
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path int                     true "Debt ID"
// @Param       request body UpdateDebtAmountRequest true "New balance"
// @Success     200 {object} models.Debt "Updated debt"
// @Failure     400 {object} ErrorResponse "Invalid input or debt ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Debt not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /debts/{id} [put]
func (h *DebtHandler) UpdateDebtAmount(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	debtID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateDebtAmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	debt, err := h.debtService.UpdateDebtAmount(userID, debtID, req.Amount)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"debt": debt})
}

// PayOffDebt handles marking a debt as fully paid.
// @Summary     Pay off debt
// @Description Mark a debt as Paid and record the payoff as an expense transaction
// @Tags        debts
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Debt ID"
// @Success     200 {object} MessageResponse "Debt paid off"
// @Failure     400 {object} ErrorResponse "Invalid debt ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Debt not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /debts/{id}/payoff [post]
func (h *DebtHandler) PayOffDebt(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	debtID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.debtService.MarkDebtPaid(userID, debtID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Debt paid off successfully"})
}

// GetDebtSummary handles retrieving aggregate payoff projections.
// @Summary     Get debt summary
// @Description Get aggregate payoff projections over all active debts
// @Tags        debts
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} services.DebtSummary "Debt summary"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     422 {object} ErrorResponse "Summary undefined for this debt set"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /debts/summary [get]
func (h *DebtHandler) GetDebtSummary(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	summary, err := h.debtService.GetDebtSummary(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": summary})
}
