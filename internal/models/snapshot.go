package models

import (
	"time"
)

// Snapshot carries the full ledger state, used for persistence, export and import.
// On import, nil sections are left untouched.
type Snapshot struct {
	Members      []*Member           `json:"members"`
	Loans        []*Loan             `json:"loans"`
	Payments     []*Payment          `json:"payments"`
	Settings     *Settings           `json:"settings"`
	ActivityLogs []*ActivityLogEntry `json:"activityLogs"`
	ExportDate   *time.Time          `json:"exportDate,omitempty"`
}

// DashboardAnalytics represents the aggregate figures shown on the dashboard
type DashboardAnalytics struct {
	TotalDisbursed      float64 `json:"totalDisbursed"`
	TotalInterestEarned float64 `json:"totalInterestEarned"`
	TotalOverdue        float64 `json:"totalOverdue"`
	ActiveMembers       int     `json:"activeMembers"`
	ActiveLoans         int     `json:"activeLoans"`
	CompletedLoans      int     `json:"completedLoans"`
	TotalMembers        int     `json:"totalMembers"`
}
