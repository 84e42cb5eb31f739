package api

import (
	"github.com/gin-gonic/gin"

	"sacco-backend/internal/models"
)

type paymentRequest struct {
	LoanID      string  `json:"loanId"`
	Amount      float64 `json:"amount"`
	PaymentDate string  `json:"paymentDate"`
	Method      string  `json:"method"`
	Notes       string  `json:"notes"`
}

// GetPayments returns all payments
func GetPayments(c *gin.Context) {
	respondOK(c, getStore(c).Payments())
}

// RecordPayment records a repayment against a loan
func RecordPayment(c *gin.Context) {
	var req paymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}

	input := models.PaymentInput{
		LoanID: req.LoanID,
		Amount: req.Amount,
		Method: models.PaymentMethod(req.Method),
		Notes:  req.Notes,
	}
	if req.PaymentDate != "" {
		paymentDate, err := parseDate(req.PaymentDate)
		if err != nil {
			respondBadRequest(c, "Invalid paymentDate, expected YYYY-MM-DD")
			return
		}
		input.PaymentDate = paymentDate
	}

	payment, err := getStore(c).RecordPayment(input)
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, payment)
}
