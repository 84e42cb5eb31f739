package api

import (
	"github.com/gin-gonic/gin"

	"sacco-backend/internal/models"
)

type loanRequest struct {
	MemberID        string  `json:"memberId"`
	Amount          float64 `json:"amount"`
	InterestRate    float64 `json:"interestRate"`
	IssueDate       string  `json:"issueDate"`
	RepaymentPeriod int     `json:"repaymentPeriod"`
	DueDate         string  `json:"dueDate"`
	Purpose         string  `json:"purpose"`
	Notes           string  `json:"notes"`
}

type loanUpdateRequest struct {
	Amount          *float64 `json:"amount"`
	InterestRate    *float64 `json:"interestRate"`
	IssueDate       *string  `json:"issueDate"`
	RepaymentPeriod *int     `json:"repaymentPeriod"`
	DueDate         *string  `json:"dueDate"`
	Purpose         *string  `json:"purpose"`
	Notes           *string  `json:"notes"`
}

// GetLoans returns all loans
func GetLoans(c *gin.Context) {
	respondOK(c, getStore(c).Loans())
}

// GetLoan returns one loan by ID
func GetLoan(c *gin.Context) {
	loan, err := getStore(c).LoanByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, loan)
}

// CreateLoan issues a new loan to an existing member
func CreateLoan(c *gin.Context) {
	var req loanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}

	input := models.LoanInput{
		MemberID:        req.MemberID,
		Amount:          req.Amount,
		InterestRate:    req.InterestRate,
		RepaymentPeriod: req.RepaymentPeriod,
		Purpose:         req.Purpose,
		Notes:           req.Notes,
	}
	if req.IssueDate != "" {
		issueDate, err := parseDate(req.IssueDate)
		if err != nil {
			respondBadRequest(c, "Invalid issueDate, expected YYYY-MM-DD")
			return
		}
		input.IssueDate = issueDate
	}
	if req.DueDate != "" {
		dueDate, err := parseDate(req.DueDate)
		if err != nil {
			respondBadRequest(c, "Invalid dueDate, expected YYYY-MM-DD")
			return
		}
		input.DueDate = dueDate
	}

	loan, err := getStore(c).AddLoan(input)
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, loan)
}

// UpdateLoan applies a partial update to a loan
func UpdateLoan(c *gin.Context) {
	var req loanUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}

	issueDate, err := parseDatePtr(req.IssueDate)
	if err != nil {
		respondBadRequest(c, "Invalid issueDate, expected YYYY-MM-DD")
		return
	}
	dueDate, err := parseDatePtr(req.DueDate)
	if err != nil {
		respondBadRequest(c, "Invalid dueDate, expected YYYY-MM-DD")
		return
	}

	update := models.LoanUpdate{
		Amount:          req.Amount,
		InterestRate:    req.InterestRate,
		IssueDate:       issueDate,
		RepaymentPeriod: req.RepaymentPeriod,
		DueDate:         dueDate,
		Purpose:         req.Purpose,
		Notes:           req.Notes,
	}

	loan, err := getStore(c).UpdateLoan(c.Param("id"), update)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, loan)
}

// DeleteLoan removes a loan and all of its payments
func DeleteLoan(c *gin.Context) {
	if err := getStore(c).DeleteLoan(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"deleted": true})
}

// GetLoanSummary returns aggregate figures for the loans overview
func GetLoanSummary(c *gin.Context) {
	respondOK(c, getStore(c).LoanSummary())
}

// GetOverdueLoans returns active loans past their due date
func GetOverdueLoans(c *gin.Context) {
	respondOK(c, getStore(c).OverdueLoans())
}

// GetLoanPayments returns all payments recorded against one loan
func GetLoanPayments(c *gin.Context) {
	store := getStore(c)
	if _, err := store.LoanByID(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, store.PaymentsForLoan(c.Param("id")))
}
