package library

import "errors"

var (
	ErrNoCatalog       = errors.New("catalog file does not exist")
	ErrNoLedger        = errors.New("ledger file does not exist")
	ErrNotFound        = errors.New("book not found")
	ErrIndexOutOfRange = errors.New("selection index out of range")
	ErrBadDate         = errors.New("invalid date")
	ErrBadRecord       = errors.New("malformed record")
	ErrCatalogExists   = errors.New("catalog file already exists")
)

// Catalog is the book store. Implementations read the backing store on
// every call; there is no in-memory session state, so what a caller sees
// is always what the store holds on disk.
type Catalog interface {
	List() ([]Book, error)
	Search(query string) ([]Book, error)
	Create(b Book) error
	Delete(index int) error
	SetBorrowed(bookName string, borrowed bool) error
}

// Ledger holds the active loans.
type Ledger interface {
	List() ([]Loan, error)
	Append(l Loan) error
	RemoveMatching(borrower, bookName string) (bool, error)
}
