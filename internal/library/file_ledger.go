package library

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileLedger is the Ledger backed by a second plain-text file, one
// encoded loan per line. Unlike the catalog, the ledger file is created
// on first append: a library with no loans yet has nothing to provision.
type FileLedger struct {
	path string
}

func NewFileLedger(path string) *FileLedger {
	return &FileLedger{path: path}
}

func (l *FileLedger) Path() string {
	return l.path
}

// List returns every active loan. A missing ledger file is an error here:
// return processing needs the ledger to exist.
func (l *FileLedger) List() ([]Loan, error) {
	data, err := os.ReadFile(l.path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrNoLedger, l.path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read ledger file %q: %w", l.path, err)
	}
	loans, err := DecodeLoans(string(data))
	if err != nil {
		return nil, fmt.Errorf("ledger file %q: %w", l.path, err)
	}
	return loans, nil
}

// Append adds one loan line, creating the ledger file if absent.
func (l *FileLedger) Append(loan Loan) error {
	if err := ValidateField(loan.Borrower); err != nil {
		return err
	}
	if err := ValidateField(loan.BookName); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(l.path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open ledger file %q: %w", l.path, err)
	}
	if _, err := f.WriteString(EncodeLoan(loan)); err != nil {
		f.Close()
		return fmt.Errorf("failed to append to ledger file %q: %w", l.path, err)
	}
	return f.Close()
}

// RemoveMatching deletes every loan held by borrower (case-insensitive)
// for exactly bookName, and reports whether anything was removed. The
// file is rewritten either way.
func (l *FileLedger) RemoveMatching(borrower, bookName string) (bool, error) {
	loans, err := l.List()
	if err != nil {
		return false, err
	}
	kept := make([]Loan, 0, len(loans))
	for _, loan := range loans {
		if loan.Matches(borrower, bookName) {
			continue
		}
		kept = append(kept, loan)
	}
	if err := l.writeAll(kept); err != nil {
		return false, err
	}
	return len(kept) < len(loans), nil
}

func (l *FileLedger) writeAll(loans []Loan) error {
	var sb strings.Builder
	for _, loan := range loans {
		sb.WriteString(EncodeLoan(loan))
	}

	tmpPath := l.path + ".tmp"
	if err := os.WriteFile(tmpPath, []byte(sb.String()), 0o644); err != nil {
		return fmt.Errorf("failed to write ledger file %q: %w", l.path, err)
	}
	return os.Rename(tmpPath, l.path)
}
