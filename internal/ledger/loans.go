package ledger

import (
	"fmt"
	"sort"

	"sacco-backend/internal/models"
)

// Loans returns all loans
func (s *Store) Loans() []*models.Loan {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]*models.Loan{}, s.loans...)
}

// LoanByID retrieves a loan by ID
func (s *Store) LoanByID(id string) (*models.Loan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	loan := s.findLoan(id)
	if loan == nil {
		return nil, &NotFoundError{Entity: "loan", ID: id}
	}
	return loan, nil
}

// LoansByMember returns all loans for one member
func (s *Store) LoansByMember(memberID string) []*models.Loan {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var loans []*models.Loan
	for _, loan := range s.loans {
		if loan.MemberID == memberID {
			loans = append(loans, loan)
		}
	}
	return loans
}

// findLoan returns the loan with the given ID, or nil. Caller must hold at
// least the read lock.
func (s *Store) findLoan(id string) *models.Loan {
	for _, loan := range s.loans {
		if loan.ID == id {
			return loan
		}
	}
	return nil
}

// AddLoan creates a loan against an existing member. The total repayable and
// pending balance are computed at creation; the member name is captured as a
// historical snapshot.
func (s *Store) AddLoan(input models.LoanInput) (*models.Loan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	member := s.findMember(input.MemberID)
	if member == nil {
		return nil, &NotFoundError{Entity: "member", ID: input.MemberID}
	}
	if input.Amount <= 0 {
		return nil, &ValidationError{Field: "amount", Message: "amount must be a positive number"}
	}
	if input.InterestRate < 0 {
		return nil, &ValidationError{Field: "interestRate", Message: "interest rate cannot be negative"}
	}
	if input.RepaymentPeriod <= 0 {
		return nil, &ValidationError{Field: "repaymentPeriod", Message: "repayment period must be a positive number of months"}
	}
	if input.IssueDate.IsZero() {
		return nil, &ValidationError{Field: "issueDate", Message: "issue date is required"}
	}

	dueDate := input.DueDate
	if dueDate.IsZero() {
		dueDate = DueDate(input.IssueDate, input.RepaymentPeriod)
	}

	purpose := input.Purpose
	if purpose == "" {
		purpose = "Personal"
	}

	totalRepayable := TotalRepayable(input.Amount, input.InterestRate)
	loan := &models.Loan{
		ID:              s.nextLoanID(),
		MemberID:        member.ID,
		MemberName:      member.FullName,
		Amount:          input.Amount,
		InterestRate:    input.InterestRate,
		IssueDate:       input.IssueDate,
		RepaymentPeriod: input.RepaymentPeriod,
		DueDate:         dueDate,
		TotalRepayable:  totalRepayable,
		PendingBalance:  totalRepayable,
		Status:          models.LoanStatusActive,
		Purpose:         purpose,
		Notes:           input.Notes,
		CreatedAt:       s.now(),
	}

	s.loans = append(s.loans, loan)
	s.logActivity(models.ActionTypeLoan, "Loan Created",
		fmt.Sprintf("Created loan %s for %s - Amount: %s", loan.ID, member.FullName, FormatCurrency(loan.Amount, s.settings.Currency)),
		models.LogStatusSuccess)
	s.persist()

	return loan, nil
}

// UpdateLoan applies a partial update to an existing loan. When the amount or
// interest rate changes, the total repayable is recomputed from the merged
// record and the pending balance is rederived from the full payment history.
func (s *Store) UpdateLoan(id string, update models.LoanUpdate) (*models.Loan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	loan := s.findLoan(id)
	if loan == nil {
		return nil, &NotFoundError{Entity: "loan", ID: id}
	}

	// Validate the whole update before touching the loan so a rejected
	// update leaves no partial state behind.
	if update.Amount != nil && *update.Amount <= 0 {
		return nil, &ValidationError{Field: "amount", Message: "amount must be a positive number"}
	}
	if update.InterestRate != nil && *update.InterestRate < 0 {
		return nil, &ValidationError{Field: "interestRate", Message: "interest rate cannot be negative"}
	}
	if update.RepaymentPeriod != nil && *update.RepaymentPeriod <= 0 {
		return nil, &ValidationError{Field: "repaymentPeriod", Message: "repayment period must be a positive number of months"}
	}

	if update.Amount != nil {
		loan.Amount = *update.Amount
	}
	if update.InterestRate != nil {
		loan.InterestRate = *update.InterestRate
	}
	if update.IssueDate != nil {
		loan.IssueDate = *update.IssueDate
	}
	if update.RepaymentPeriod != nil {
		loan.RepaymentPeriod = *update.RepaymentPeriod
	}
	if update.DueDate != nil {
		loan.DueDate = *update.DueDate
	}
	if update.Purpose != nil {
		loan.Purpose = *update.Purpose
	}
	if update.Notes != nil {
		loan.Notes = *update.Notes
	}

	if update.Amount != nil || update.InterestRate != nil {
		loan.TotalRepayable = TotalRepayable(loan.Amount, loan.InterestRate)
		loan.PendingBalance = loan.TotalRepayable - s.totalPaidForLoan(loan.ID)
	}

	s.logActivity(models.ActionTypeLoan, "Loan Updated", fmt.Sprintf("Updated loan %s", loan.ID), models.LogStatusSuccess)
	s.persist()

	return loan, nil
}

// DeleteLoan removes a loan and cascades deletion of its payments
func (s *Store) DeleteLoan(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	index := -1
	for i, loan := range s.loans {
		if loan.ID == id {
			index = i
			break
		}
	}
	if index == -1 {
		return &NotFoundError{Entity: "loan", ID: id}
	}

	remaining := s.payments[:0]
	for _, payment := range s.payments {
		if payment.LoanID != id {
			remaining = append(remaining, payment)
		}
	}
	s.payments = remaining

	deleted := s.loans[index]
	s.loans = append(s.loans[:index], s.loans[index+1:]...)
	s.logActivity(models.ActionTypeLoan, "Loan Deleted", fmt.Sprintf("Deleted loan %s", deleted.ID), models.LogStatusSuccess)
	s.persist()

	return nil
}

// LoanSummary computes the aggregate figures for the loans overview
func (s *Store) LoanSummary() *models.LoanSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := s.now()
	summary := &models.LoanSummary{}
	for _, loan := range s.loans {
		summary.TotalDisbursed += loan.Amount
		summary.TotalRepaid += loan.TotalRepayable - loan.PendingBalance
		if loan.IsActive() {
			summary.ActiveLoans++
			if loan.IsOverdue(now) {
				summary.TotalOverdue += loan.PendingBalance
			}
		}
	}
	return summary
}

// RecentLoans returns the most recently created loans, newest first
func (s *Store) RecentLoans(limit int) []*models.Loan {
	s.mu.RLock()
	defer s.mu.RUnlock()

	loans := append([]*models.Loan{}, s.loans...)
	sort.Slice(loans, func(i, j int) bool {
		return loans[i].CreatedAt.After(loans[j].CreatedAt)
	})
	if limit > 0 && limit < len(loans) {
		loans = loans[:limit]
	}
	return loans
}
