package models

import (
	"time"
)

// Settings represents the singleton configuration record for the cooperative
type Settings struct {
	SaccoName           string     `json:"saccoName"`
	DefaultInterestRate float64    `json:"defaultInterestRate"`
	Currency            string     `json:"currency"`
	MaxLoanAmount       float64    `json:"maxLoanAmount"`
	MaxRepaymentPeriod  int        `json:"maxRepaymentPeriod"` // in months
	LastBackup          *time.Time `json:"lastBackup"`
	SystemVersion       string     `json:"systemVersion"`
}

// SettingsUpdate represents a partial settings update; nil fields are left unchanged
type SettingsUpdate struct {
	SaccoName           *string  `json:"saccoName,omitempty"`
	DefaultInterestRate *float64 `json:"defaultInterestRate,omitempty"`
	Currency            *string  `json:"currency,omitempty"`
	MaxLoanAmount       *float64 `json:"maxLoanAmount,omitempty"`
	MaxRepaymentPeriod  *int     `json:"maxRepaymentPeriod,omitempty"`
}

// DefaultSettings returns the settings used before any have been saved
func DefaultSettings() *Settings {
	return &Settings{
		SaccoName:           "My SACCO",
		DefaultInterestRate: 10,
		Currency:            "KES",
		MaxLoanAmount:       1000000,
		MaxRepaymentPeriod:  60,
		SystemVersion:       "1.0.0",
	}
}
