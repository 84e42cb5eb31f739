package models

import (
	"time"
)

// MemberStatus represents member status
type MemberStatus string

const (
	MemberStatusActive   MemberStatus = "Active"
	MemberStatusInactive MemberStatus = "Inactive"
)

// Member represents a cooperative member
type Member struct {
	ID         string       `json:"id"`
	FullName   string       `json:"fullName"`
	Phone      string       `json:"phone"`
	Email      string       `json:"email"`
	DateJoined time.Time    `json:"dateJoined"`
	Status     MemberStatus `json:"status"`
	Notes      string       `json:"notes"`
	CreatedAt  time.Time    `json:"createdAt"`
}

// MemberInput represents data for creating a member
type MemberInput struct {
	FullName   string       `json:"fullName"`
	Phone      string       `json:"phone"`
	Email      string       `json:"email"`
	DateJoined time.Time    `json:"dateJoined"`
	Status     MemberStatus `json:"status"`
	Notes      string       `json:"notes"`
}

// MemberUpdate represents a partial member update; nil fields are left unchanged
type MemberUpdate struct {
	FullName   *string       `json:"fullName,omitempty"`
	Phone      *string       `json:"phone,omitempty"`
	Email      *string       `json:"email,omitempty"`
	DateJoined *time.Time    `json:"dateJoined,omitempty"`
	Status     *MemberStatus `json:"status,omitempty"`
	Notes      *string       `json:"notes,omitempty"`
}

// IsActive checks if the member is active
func (m *Member) IsActive() bool {
	return m.Status == MemberStatusActive
}

// MemberStats represents per-member lending statistics
type MemberStats struct {
	TotalLoans    int     `json:"totalLoans"`
	ActiveLoans   int     `json:"activeLoans"`
	TotalBorrowed float64 `json:"totalBorrowed"`
	TotalRepaid   float64 `json:"totalRepaid"`
	Outstanding   float64 `json:"outstanding"`
}
