package library

import (
	"strings"
	"time"
)

// Loan is one active-loan record. BorrowDate is kept as the raw text from
// the ledger file: loan dates are only validated when a return actually
// needs them for the fee check, so a ledger with a bad date still loads.
type Loan struct {
	Borrower   string
	BookName   string
	BorrowDate string
}

func NewLoan(borrower, bookName string, borrowDate time.Time) Loan {
	return Loan{
		Borrower:   strings.TrimSpace(borrower),
		BookName:   strings.TrimSpace(bookName),
		BorrowDate: borrowDate.Format(DateLayout),
	}
}

// Matches reports whether this loan belongs to borrower and bookName.
// Borrower comparison is case-insensitive, book name is exact.
func (l Loan) Matches(borrower, bookName string) bool {
	return strings.EqualFold(l.Borrower, borrower) && l.BookName == bookName
}

// Date parses the stored borrow date.
func (l Loan) Date() (time.Time, error) {
	return parseDateField(l.BorrowDate)
}
