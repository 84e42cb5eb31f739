package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTotalRepayable(t *testing.T) {
	assert.Equal(t, 11000.0, TotalRepayable(10000, 10))
	assert.Equal(t, 10000.0, TotalRepayable(10000, 0))
	assert.Equal(t, 5750.0, TotalRepayable(5000, 15))
}

func TestDueDate(t *testing.T) {
	issue := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC), DueDate(issue, 12))
	assert.Equal(t, time.Date(2024, time.September, 1, 0, 0, 0, 0, time.UTC), DueDate(issue, 6))

	// Month-end issue dates normalize forward, matching time.AddDate
	endOfJan := time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, time.March, 2, 0, 0, 0, 0, time.UTC), DueDate(endOfJan, 1))
}

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "KES 11,000.00", FormatCurrency(11000, "KES"))
	assert.Equal(t, "KES 1,234,567.89", FormatCurrency(1234567.89, "KES"))
	assert.Equal(t, "USD 500.00", FormatCurrency(500, "USD"))
	assert.Equal(t, "KES 0.00", FormatCurrency(0, "KES"))
	assert.Equal(t, "KES -2,500.50", FormatCurrency(-2500.5, "KES"))
}
