package models

import (
	"time"
)

// LoanStatus represents loan status
type LoanStatus string

const (
	LoanStatusActive    LoanStatus = "Active"
	LoanStatusCompleted LoanStatus = "Completed"
)

// Loan represents a loan in the system. MemberName is a snapshot of the
// member's name at creation time and does not follow later renames.
type Loan struct {
	ID              string     `json:"id"`
	MemberID        string     `json:"memberId"`
	MemberName      string     `json:"memberName"`
	Amount          float64    `json:"amount"`
	InterestRate    float64    `json:"interestRate"`
	IssueDate       time.Time  `json:"issueDate"`
	RepaymentPeriod int        `json:"repaymentPeriod"` // in months
	DueDate         time.Time  `json:"dueDate"`
	TotalRepayable  float64    `json:"totalRepayable"`
	PendingBalance  float64    `json:"pendingBalance"`
	Status          LoanStatus `json:"status"`
	Purpose         string     `json:"purpose"`
	Notes           string     `json:"notes"`
	CreatedAt       time.Time  `json:"createdAt"`
	CompletedDate   *time.Time `json:"completedDate,omitempty"`
}

// LoanInput represents data for creating a loan
type LoanInput struct {
	MemberID        string    `json:"memberId"`
	Amount          float64   `json:"amount"`
	InterestRate    float64   `json:"interestRate"`
	IssueDate       time.Time `json:"issueDate"`
	RepaymentPeriod int       `json:"repaymentPeriod"`
	DueDate         time.Time `json:"dueDate"` // computed from issue date when zero
	Purpose         string    `json:"purpose"`
	Notes           string    `json:"notes"`
}

// LoanUpdate represents a partial loan update; nil fields are left unchanged
type LoanUpdate struct {
	Amount          *float64   `json:"amount,omitempty"`
	InterestRate    *float64   `json:"interestRate,omitempty"`
	IssueDate       *time.Time `json:"issueDate,omitempty"`
	RepaymentPeriod *int       `json:"repaymentPeriod,omitempty"`
	DueDate         *time.Time `json:"dueDate,omitempty"`
	Purpose         *string    `json:"purpose,omitempty"`
	Notes           *string    `json:"notes,omitempty"`
}

// IsActive checks if the loan is active
func (l *Loan) IsActive() bool {
	return l.Status == LoanStatusActive
}

// IsCompleted checks if the loan is completed
func (l *Loan) IsCompleted() bool {
	return l.Status == LoanStatusCompleted
}

// IsOverdue checks if the loan is overdue at the given moment
func (l *Loan) IsOverdue(now time.Time) bool {
	return l.IsActive() && l.DueDate.Before(now)
}

// DaysOverdue returns whole days elapsed since the due date, 0 if not overdue
func (l *Loan) DaysOverdue(now time.Time) int {
	if !l.IsOverdue(now) {
		return 0
	}
	return int(now.Sub(l.DueDate).Hours() / 24)
}

// Progress returns the repayment progress as a percentage
func (l *Loan) Progress() float64 {
	if l.TotalRepayable == 0 {
		return 0
	}
	return (l.TotalRepayable - l.PendingBalance) / l.TotalRepayable * 100
}

// OverdueLoan is a loan view augmented with the days elapsed past its due date
type OverdueLoan struct {
	Loan
	DaysOverdue int `json:"daysOverdue"`
}

// LoanSummary represents aggregate loan figures
type LoanSummary struct {
	ActiveLoans    int     `json:"activeLoans"`
	TotalDisbursed float64 `json:"totalDisbursed"`
	TotalRepaid    float64 `json:"totalRepaid"`
	TotalOverdue   float64 `json:"totalOverdue"`
}
