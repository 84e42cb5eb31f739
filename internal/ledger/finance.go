package ledger

import (
	"fmt"
	"strings"
	"time"
)

// TotalRepayable calculates principal plus flat interest for the full term.
// The rate is applied once, regardless of the repayment period length.
func TotalRepayable(principal, ratePercent float64) float64 {
	return principal * (1 + ratePercent/100)
}

// DueDate advances the issue date by the repayment period in calendar months
func DueDate(issueDate time.Time, periodMonths int) time.Time {
	return issueDate.AddDate(0, periodMonths, 0)
}

// totalPaidForLoan sums all payments recorded against a loan. Always computed
// from the full payment history so the figure cannot drift.
func (s *Store) totalPaidForLoan(loanID string) float64 {
	var total float64
	for _, payment := range s.payments {
		if payment.LoanID == loanID {
			total += payment.Amount
		}
	}
	return total
}

// TotalPaidForLoan returns the sum of all payments recorded against a loan
func (s *Store) TotalPaidForLoan(loanID string) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.totalPaidForLoan(loanID)
}

// FormatCurrency renders an amount with the currency code and thousands
// separators, e.g. "KES 11,000.00"
func FormatCurrency(amount float64, currency string) string {
	if currency == "" {
		currency = "KES"
	}

	formatted := fmt.Sprintf("%.2f", amount)
	negative := strings.HasPrefix(formatted, "-")
	if negative {
		formatted = formatted[1:]
	}

	parts := strings.SplitN(formatted, ".", 2)
	whole := parts[0]

	var groups []string
	for len(whole) > 3 {
		groups = append([]string{whole[len(whole)-3:]}, groups...)
		whole = whole[:len(whole)-3]
	}
	groups = append([]string{whole}, groups...)

	result := strings.Join(groups, ",") + "." + parts[1]
	if negative {
		result = "-" + result
	}
	return fmt.Sprintf("%s %s", currency, result)
}
