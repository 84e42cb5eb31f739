package ledger

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	memberIDPrefix  = "MEM"
	loanIDPrefix    = "LN"
	paymentIDPrefix = "PAY"

	memberIDWidth  = 3
	loanIDWidth    = 4
	paymentIDWidth = 4
)

// nextSequentialID scans the existing IDs for the highest numeric suffix under
// the given prefix, increments it and zero-pads to the given width. IDs that
// do not parse are ignored. Safe only under the store's single-writer lock.
func nextSequentialID(prefix string, width int, existing []string) string {
	max := 0
	for _, id := range existing {
		if !strings.HasPrefix(id, prefix) {
			continue
		}
		num, err := strconv.Atoi(strings.TrimPrefix(id, prefix))
		if err != nil {
			continue
		}
		if num > max {
			max = num
		}
	}
	return fmt.Sprintf("%s%0*d", prefix, width, max+1)
}

func (s *Store) nextMemberID() string {
	ids := make([]string, 0, len(s.members))
	for _, m := range s.members {
		ids = append(ids, m.ID)
	}
	return nextSequentialID(memberIDPrefix, memberIDWidth, ids)
}

func (s *Store) nextLoanID() string {
	ids := make([]string, 0, len(s.loans))
	for _, l := range s.loans {
		ids = append(ids, l.ID)
	}
	return nextSequentialID(loanIDPrefix, loanIDWidth, ids)
}

func (s *Store) nextPaymentID() string {
	ids := make([]string, 0, len(s.payments))
	for _, p := range s.payments {
		ids = append(ids, p.ID)
	}
	return nextSequentialID(paymentIDPrefix, paymentIDWidth, ids)
}
