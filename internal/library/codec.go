package library

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the calendar date format used by both backing files.
const DateLayout = "2006-01-02"

const loanFieldCount = 3 // borrower, book, date

// EncodeBook renders one catalog line, newline-terminated:
// name,author,year,borrowed,issue_date.
func EncodeBook(b Book) string {
	return fmt.Sprintf("%s,%s,%d,%t,%s\n",
		strings.TrimSpace(b.Name),
		strings.TrimSpace(b.Author),
		b.YearPublished,
		b.Borrowed,
		b.IssueDate.Format(DateLayout),
	)
}

// DecodeBooks parses the full catalog file contents. Blank lines are
// skipped. Each record needs five comma-separated fields. The year and
// borrowed fields fall back to 0 and false when unparseable; a bad issue
// date fails the whole decode. That asymmetry is the store's contract:
// a catalog load either yields records with valid dates or nothing.
func DecodeBooks(data string) ([]Book, error) {
	var books []Book
	for n, line := range strings.Split(data, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Split(line, ",")
		if len(fields) < 5 {
			return nil, fmt.Errorf("line %d: %w: got %d fields, want 5", n+1, ErrBadRecord, len(fields))
		}
		issued, err := parseDateField(fields[4])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n+1, err)
		}
		b := NewBook(fields[0], fields[1], defaultableInt(fields[2]), issued)
		b.Borrowed = defaultableBool(fields[3])
		books = append(books, b)
	}
	return books, nil
}

// The two field policies of the catalog format. Defaultable fields
// cannot fail: garbage collapses to the zero value. The date field is
// fatal; its parser is the only one that can return an error.

func defaultableInt(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

func defaultableBool(s string) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(s))
	if err != nil {
		return false
	}
	return b
}

func parseDateField(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrBadDate, s)
	}
	return t, nil
}

// EncodeLoan renders one ledger line: borrower,book,borrow_date.
func EncodeLoan(l Loan) string {
	return fmt.Sprintf("%s,%s,%s\n",
		strings.TrimSpace(l.Borrower),
		strings.TrimSpace(l.BookName),
		strings.TrimSpace(l.BorrowDate),
	)
}

// DecodeLoans parses the ledger file contents. Unlike DecodeBooks the
// borrow date is not validated here; it stays raw text until a return
// needs it.
func DecodeLoans(data string) ([]Loan, error) {
	var loans []Loan
	for n, line := range strings.Split(data, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Split(line, ",")
		if len(fields) < loanFieldCount {
			return nil, fmt.Errorf("line %d: %w: got %d fields, want 3", n+1, ErrBadRecord, len(fields))
		}
		loans = append(loans, Loan{
			Borrower:   strings.TrimSpace(fields[0]),
			BookName:   strings.TrimSpace(fields[1]),
			BorrowDate: strings.TrimSpace(fields[2]),
		})
	}
	return loans, nil
}
