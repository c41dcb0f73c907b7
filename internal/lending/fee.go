package lending

import "time"

const (
	// DefaultLoanPeriodDays is how long a book may be out before a fee
	// accrues.
	DefaultLoanPeriodDays = 14

	// DefaultDailyFee is the charge per elapsed day once the loan period
	// is exceeded. The fee counts every day since borrowing, not only
	// the overdue ones.
	DefaultDailyFee = 0.50
)

// Fee is the result of a late-fee check on one loan.
type Fee struct {
	Amount float64
	Days   int // days elapsed since borrowing
}

// Due reports whether the borrower owes anything.
func (f Fee) Due() bool {
	return f.Amount > 0
}

// CheckFee computes the late fee for a loan taken out on borrowDate as of
// now. The day count is the signed, truncated difference borrowDate-now,
// so a loan from the past yields a negative count; only counts below
// -periodDays trigger a fee, at dailyFee per elapsed day.
func CheckFee(borrowDate, now time.Time, periodDays int, dailyFee float64) Fee {
	days := int(borrowDate.Sub(now).Hours() / 24)
	if days < -periodDays {
		return Fee{Amount: float64(-days) * dailyFee, Days: -days}
	}
	return Fee{Days: -days}
}
