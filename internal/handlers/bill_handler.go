package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "lucrum/internal/errors"
	"lucrum/internal/models"
	"lucrum/internal/services"
)

// BillHandler handles bill-reminder requests.
type BillHandler struct {
	billService services.BillServicer
}

// NewBillHandler creates a new BillHandler.
func NewBillHandler(billService services.BillServicer) *BillHandler {
	return &BillHandler{billService: billService}
}

// CreateBillRequest represents the request payload for adding a bill reminder.
type CreateBillRequest struct {
	Name      string               `json:"name" binding:"required,min=1,max=100"`
	Amount    int64                `json:"amount" binding:"required,gt=0"`
	DueDate   time.Time            `json:"due_date" binding:"required"`
	Frequency models.BillFrequency `json:"frequency" binding:"required,bill_frequency"`
}

// UpdateBillRequest represents the request payload for updating a bill reminder.
type UpdateBillRequest struct {
	Name      string               `json:"name" binding:"required,min=1,max=100"`
	Amount    int64                `json:"amount" binding:"required,gt=0"`
	DueDate   time.Time            `json:"due_date" binding:"required"`
	Frequency models.BillFrequency `json:"frequency" binding:"required,bill_frequency"`
}

// CreateBill handles adding a new bill reminder.
// @Summary     Add a bill reminder
// @Description Record a new pending bill, amount in cents
// @Tags        bills
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateBillRequest true "Bill details"
// @Success     201 {object} models.BillReminder "Bill recorded"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /bills [post]
func (h *BillHandler) CreateBill(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	bill, err := h.billService.AddBillReminder(userID, req.Name, req.Amount, req.DueDate, req.Frequency)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"bill": bill})
}

// GetBills handles listing pending bills with due-status tiers.
// @Summary     Get pending bills
// @Description Get pending bills ordered by due date, each with days until due and a due-status tier
// @Tags        bills
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} services.BillStanding "Pending bills"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /bills [get]
func (h *BillHandler) GetBills(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	standings, err := h.billService.GetBillStandings(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"bills": standings})
}

// UpdateBill handles updating an existing bill reminder.
// @Summary     Update bill reminder
// @Description Overwrite a pending bill's name, amount, due date, and frequency
// @Tags        bills
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path int               true "Bill ID"
// @Param       request body UpdateBillRequest true "Updated bill details"
// @Success     200 {object} models.BillReminder "Updated bill"
// @Failure     400 {object} ErrorResponse "Invalid input or bill ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Bill not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /bills/{id} [put]
func (h *BillHandler) UpdateBill(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	billID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	bill, err := h.billService.UpdateBillReminder(userID, billID, req.Name, req.Amount, req.DueDate, req.Frequency)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"bill": bill})
}

// PayBill handles marking a bill as paid.
// @Summary     Pay bill
// @Description Mark a bill as Paid and record the payment as an expense transaction
// @Tags        bills
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Bill ID"
// @Success     200 {object} MessageResponse "Bill paid"
// @Failure     400 {object} ErrorResponse "Invalid bill ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Bill not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /bills/{id}/pay [post]
func (h *BillHandler) PayBill(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	billID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.billService.MarkBillPaid(userID, billID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Bill paid successfully"})
}
