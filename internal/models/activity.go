package models

import (
	"time"
)

// ActionType classifies which part of the system an activity entry concerns
type ActionType string

const (
	ActionTypeSystem  ActionType = "System"
	ActionTypeMember  ActionType = "Member"
	ActionTypeLoan    ActionType = "Loan"
	ActionTypePayment ActionType = "Payment"
)

// LogStatus represents the outcome recorded on an activity entry
type LogStatus string

const (
	LogStatusSuccess LogStatus = "Success"
	LogStatusError   LogStatus = "Error"
	LogStatusWarning LogStatus = "Warning"
)

// ActivityLogEntry represents one entry in the audit trail
type ActivityLogEntry struct {
	ID         string     `json:"id"`
	Timestamp  time.Time  `json:"timestamp"`
	ActionType ActionType `json:"actionType"`
	Action     string     `json:"action"`
	Details    string     `json:"details"`
	User       string     `json:"user"`
	Status     LogStatus  `json:"status"`
}
