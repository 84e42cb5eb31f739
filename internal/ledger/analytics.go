package ledger

import (
	"sacco-backend/internal/models"
)

// DashboardAnalytics computes the aggregate figures for the dashboard.
// Interest earned is payments received minus the principal of completed
// loans, an interest-earned-to-date approximation rather than an accrual
// figure.
func (s *Store) DashboardAnalytics() *models.DashboardAnalytics {
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := s.now()
	analytics := &models.DashboardAnalytics{
		TotalMembers: len(s.members),
	}

	var totalPaid, completedPrincipal float64
	for _, payment := range s.payments {
		totalPaid += payment.Amount
	}
	for _, loan := range s.loans {
		analytics.TotalDisbursed += loan.Amount
		switch {
		case loan.IsCompleted():
			analytics.CompletedLoans++
			completedPrincipal += loan.Amount
		case loan.IsActive():
			analytics.ActiveLoans++
			if loan.IsOverdue(now) {
				analytics.TotalOverdue += loan.PendingBalance
			}
		}
	}
	analytics.TotalInterestEarned = totalPaid - completedPrincipal

	for _, member := range s.members {
		if member.IsActive() {
			analytics.ActiveMembers++
		}
	}

	return analytics
}

// OverdueLoans returns all active loans past their due date, each augmented
// with the whole days elapsed since the due date
func (s *Store) OverdueLoans() []*models.OverdueLoan {
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := s.now()
	var overdue []*models.OverdueLoan
	for _, loan := range s.loans {
		if !loan.IsOverdue(now) {
			continue
		}
		overdue = append(overdue, &models.OverdueLoan{
			Loan:        *loan,
			DaysOverdue: loan.DaysOverdue(now),
		})
	}
	return overdue
}
