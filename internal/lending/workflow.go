package lending

import (
	"errors"
	"fmt"
	"shelf/internal/library"
	"strings"
	"time"
)

var (
	ErrEmptyQuery    = errors.New("search query cannot be empty")
	ErrNotAvailable  = errors.New("no available book matches")
	ErrNoneBorrowed  = errors.New("no borrowed book matches")
	ErrLoanNotFound  = errors.New("no matching loan found")
	ErrReturnAborted = errors.New("return aborted")
)

// AcknowledgeToken is what the operator must type, verbatim, to accept a
// late fee before a return proceeds.
const AcknowledgeToken = "done"

// ConfirmFunc presents a due fee to the operator and returns the
// acknowledgment token they entered.
type ConfirmFunc func(fee Fee) (string, error)

// Workflow drives a book through available -> borrowed -> available,
// keeping the catalog's borrowed flag and the loan ledger in step. The
// two writes behind borrow and return are deliberately not atomic: this
// is a single-user tool, and an interruption between them leaves the two
// files disagreeing rather than malformed.
type Workflow struct {
	Catalog library.Catalog
	Ledger  library.Ledger

	Now            func() time.Time
	LoanPeriodDays int
	DailyFee       float64
}

func New(cat library.Catalog, led library.Ledger) *Workflow {
	return &Workflow{
		Catalog:        cat,
		Ledger:         led,
		Now:            time.Now,
		LoanPeriodDays: DefaultLoanPeriodDays,
		DailyFee:       DefaultDailyFee,
	}
}

// BorrowCandidates returns the books matching query that are not
// currently out, in storage order. The caller presents these and has the
// operator pick one by its position in this filtered list.
func (w *Workflow) BorrowCandidates(query string) ([]library.Book, error) {
	candidates, err := w.candidates(query, false)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNotAvailable, query)
	}
	return candidates, nil
}

// Borrow records a loan for book and marks it borrowed. The book must be
// one returned by BorrowCandidates; resolution against the catalog is by
// first exact name match, since the candidate position does not
// correspond to a storage position.
func (w *Workflow) Borrow(book library.Book, borrower string, date time.Time) error {
	if strings.TrimSpace(borrower) == "" {
		return fmt.Errorf("borrower name cannot be empty")
	}
	if err := w.Ledger.Append(library.NewLoan(borrower, book.Name, date)); err != nil {
		return err
	}
	return w.Catalog.SetBorrowed(book.Name, true)
}

// ReturnCandidates returns the books matching query that are currently
// out, in storage order.
func (w *Workflow) ReturnCandidates(query string) ([]library.Book, error) {
	candidates, err := w.candidates(query, true)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoneBorrowed, query)
	}
	return candidates, nil
}

// Return takes book back from borrower. When the loan is past the loan
// period, confirm is called with the due fee and must yield the literal
// acknowledgment token; anything else aborts before either file is
// touched. On success the matching loan lines are removed from the
// ledger and the first catalog record with the book's name is marked
// available again.
func (w *Workflow) Return(book library.Book, borrower string, confirm ConfirmFunc) (Fee, error) {
	loans, err := w.Ledger.List()
	if err != nil {
		return Fee{}, err
	}

	var loan library.Loan
	found := false
	for _, l := range loans {
		if l.Matches(borrower, book.Name) {
			loan = l
			found = true
			break
		}
	}
	if !found {
		return Fee{}, fmt.Errorf("%w: %s by %s", ErrLoanNotFound, book.Name, borrower)
	}

	borrowed, err := loan.Date()
	if err != nil {
		return Fee{}, err
	}

	fee := CheckFee(borrowed, w.Now(), w.LoanPeriodDays, w.DailyFee)
	if fee.Due() {
		token, err := confirm(fee)
		if err != nil {
			return fee, err
		}
		if token != AcknowledgeToken {
			return fee, fmt.Errorf("%w: fee of %.2f not acknowledged", ErrReturnAborted, fee.Amount)
		}
	}

	removed, err := w.Ledger.RemoveMatching(borrower, book.Name)
	if err != nil {
		return fee, err
	}
	if !removed {
		return fee, fmt.Errorf("%w: %s by %s", ErrLoanNotFound, book.Name, borrower)
	}
	return fee, w.Catalog.SetBorrowed(book.Name, false)
}

func (w *Workflow) candidates(query string, borrowed bool) ([]library.Book, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}
	books, err := w.Catalog.Search(query)
	if err != nil {
		return nil, err
	}
	var out []library.Book
	for _, b := range books {
		if b.Borrowed == borrowed {
			out = append(out, b)
		}
	}
	return out, nil
}
