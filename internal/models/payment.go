package models

import (
	"time"
)

// PaymentMethod represents how a payment was made
type PaymentMethod string

const (
	PaymentMethodCash         PaymentMethod = "Cash"
	PaymentMethodMpesa        PaymentMethod = "M-Pesa"
	PaymentMethodBankTransfer PaymentMethod = "Bank Transfer"
	PaymentMethodCheque       PaymentMethod = "Cheque"
)

// Payment represents a loan repayment. Payments are immutable once recorded
// and are removed only when their loan is deleted.
type Payment struct {
	ID          string        `json:"id"`
	LoanID      string        `json:"loanId"`
	MemberID    string        `json:"memberId"`
	MemberName  string        `json:"memberName"`
	Amount      float64       `json:"amount"`
	PaymentDate time.Time     `json:"paymentDate"`
	Method      PaymentMethod `json:"method"`
	Notes       string        `json:"notes"`
	CreatedAt   time.Time     `json:"createdAt"`
}

// PaymentInput represents data for recording a payment
type PaymentInput struct {
	LoanID      string        `json:"loanId"`
	Amount      float64       `json:"amount"`
	PaymentDate time.Time     `json:"paymentDate"`
	Method      PaymentMethod `json:"method"`
	Notes       string        `json:"notes"`
}
