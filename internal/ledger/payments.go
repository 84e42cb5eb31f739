package ledger

import (
	"fmt"

	"sacco-backend/internal/models"
)

// Payments returns all payments
func (s *Store) Payments() []*models.Payment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]*models.Payment{}, s.payments...)
}

// PaymentsForLoan returns all payments recorded against one loan
func (s *Store) PaymentsForLoan(loanID string) []*models.Payment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var payments []*models.Payment
	for _, payment := range s.payments {
		if payment.LoanID == loanID {
			payments = append(payments, payment)
		}
	}
	return payments
}

// RecordPayment appends a payment against an existing loan and rederives the
// loan's pending balance from the full payment history. When the balance
// reaches zero the loan completes, with the payment's date as the completion
// date. Payments exceeding the pending balance are rejected.
func (s *Store) RecordPayment(input models.PaymentInput) (*models.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	loan := s.findLoan(input.LoanID)
	if loan == nil {
		return nil, &NotFoundError{Entity: "loan", ID: input.LoanID}
	}
	if input.Amount <= 0 {
		return nil, &ValidationError{Field: "amount", Message: "amount must be a positive number"}
	}
	if input.Amount > loan.PendingBalance {
		return nil, &ValidationError{Field: "amount", Message: "payment exceeds the pending balance"}
	}

	paymentDate := input.PaymentDate
	if paymentDate.IsZero() {
		paymentDate = s.now()
	}
	method := input.Method
	if method == "" {
		method = models.PaymentMethodCash
	}

	payment := &models.Payment{
		ID:          s.nextPaymentID(),
		LoanID:      loan.ID,
		MemberID:    loan.MemberID,
		MemberName:  loan.MemberName,
		Amount:      input.Amount,
		PaymentDate: paymentDate,
		Method:      method,
		Notes:       input.Notes,
		CreatedAt:   s.now(),
	}
	s.payments = append(s.payments, payment)

	loan.PendingBalance = loan.TotalRepayable - s.totalPaidForLoan(loan.ID)
	if loan.PendingBalance <= 0 {
		loan.Status = models.LoanStatusCompleted
		completed := payment.PaymentDate
		loan.CompletedDate = &completed
	}

	s.logActivity(models.ActionTypePayment, "Payment Recorded",
		fmt.Sprintf("Payment of %s recorded for loan %s", FormatCurrency(payment.Amount, s.settings.Currency), loan.ID),
		models.LogStatusSuccess)
	s.persist()

	return payment, nil
}
