package ledger

import (
	"fmt"
	"strings"

	"sacco-backend/internal/models"
)

// Members returns all members
func (s *Store) Members() []*models.Member {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]*models.Member{}, s.members...)
}

// MemberByID retrieves a member by ID
func (s *Store) MemberByID(id string) (*models.Member, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	member := s.findMember(id)
	if member == nil {
		return nil, &NotFoundError{Entity: "member", ID: id}
	}
	return member, nil
}

// findMember returns the member with the given ID, or nil. Caller must hold
// at least the read lock.
func (s *Store) findMember(id string) *models.Member {
	for _, member := range s.members {
		if member.ID == id {
			return member
		}
	}
	return nil
}

// AddMember creates a new member with a generated ID and default Active status
func (s *Store) AddMember(input models.MemberInput) (*models.Member, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if input.FullName == "" {
		return nil, &ValidationError{Field: "fullName", Message: "full name is required"}
	}
	if input.DateJoined.IsZero() {
		return nil, &ValidationError{Field: "dateJoined", Message: "date joined is required"}
	}

	status := input.Status
	if status == "" {
		status = models.MemberStatusActive
	}

	member := &models.Member{
		ID:         s.nextMemberID(),
		FullName:   input.FullName,
		Phone:      input.Phone,
		Email:      input.Email,
		DateJoined: input.DateJoined,
		Status:     status,
		Notes:      input.Notes,
		CreatedAt:  s.now(),
	}

	s.members = append(s.members, member)
	s.logActivity(models.ActionTypeMember, "Member Added", fmt.Sprintf("Added new member: %s", member.FullName), models.LogStatusSuccess)
	s.persist()

	return member, nil
}

// UpdateMember applies a partial update to an existing member. Loans and
// payments keep the member name they captured at creation time.
func (s *Store) UpdateMember(id string, update models.MemberUpdate) (*models.Member, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	member := s.findMember(id)
	if member == nil {
		return nil, &NotFoundError{Entity: "member", ID: id}
	}

	if update.FullName != nil {
		if *update.FullName == "" {
			return nil, &ValidationError{Field: "fullName", Message: "full name is required"}
		}
		member.FullName = *update.FullName
	}
	if update.Phone != nil {
		member.Phone = *update.Phone
	}
	if update.Email != nil {
		member.Email = *update.Email
	}
	if update.DateJoined != nil {
		member.DateJoined = *update.DateJoined
	}
	if update.Status != nil {
		member.Status = *update.Status
	}
	if update.Notes != nil {
		member.Notes = *update.Notes
	}

	s.logActivity(models.ActionTypeMember, "Member Updated", fmt.Sprintf("Updated member: %s", member.FullName), models.LogStatusSuccess)
	s.persist()

	return member, nil
}

// DeleteMember removes a member. Members with active loans cannot be deleted.
func (s *Store) DeleteMember(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	index := -1
	for i, member := range s.members {
		if member.ID == id {
			index = i
			break
		}
	}
	if index == -1 {
		return &NotFoundError{Entity: "member", ID: id}
	}

	for _, loan := range s.loans {
		if loan.MemberID == id && loan.IsActive() {
			return &ConflictError{Message: "cannot delete member with active loans"}
		}
	}

	deleted := s.members[index]
	s.members = append(s.members[:index], s.members[index+1:]...)
	s.logActivity(models.ActionTypeMember, "Member Deleted", fmt.Sprintf("Deleted member: %s", deleted.FullName), models.LogStatusSuccess)
	s.persist()

	return nil
}

// SearchMembers returns members whose full name or ID contains the query,
// case-insensitively
func (s *Store) SearchMembers(query string) []*models.Member {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query = strings.ToLower(query)
	var results []*models.Member
	for _, member := range s.members {
		if strings.Contains(strings.ToLower(member.FullName), query) ||
			strings.Contains(strings.ToLower(member.ID), query) {
			results = append(results, member)
		}
	}
	return results
}

// MemberStats computes lending statistics for one member
func (s *Store) MemberStats(id string) (*models.MemberStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.findMember(id) == nil {
		return nil, &NotFoundError{Entity: "member", ID: id}
	}

	stats := &models.MemberStats{}
	for _, loan := range s.loans {
		if loan.MemberID != id {
			continue
		}
		stats.TotalLoans++
		stats.TotalBorrowed += loan.Amount
		stats.TotalRepaid += loan.TotalRepayable - loan.PendingBalance
		if loan.IsActive() {
			stats.ActiveLoans++
			stats.Outstanding += loan.PendingBalance
		}
	}
	return stats, nil
}
