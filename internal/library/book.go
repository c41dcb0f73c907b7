package library

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName    = errors.New("book name cannot be empty")
	ErrReservedChar = errors.New("field cannot contain commas or line breaks")
)

// Book is one catalog record. ID is assigned in memory and never written
// to the backing file: the store format has no identity column, and books
// with duplicate names are allowed, so the ID only distinguishes records
// within a single load.
type Book struct {
	ID            string
	Name          string
	Author        string
	YearPublished int
	Borrowed      bool
	IssueDate     time.Time
}

func NewBook(name, author string, year int, issueDate time.Time) Book {
	return Book{
		ID:            uuid.New().String(),
		Name:          strings.TrimSpace(name),
		Author:        strings.TrimSpace(author),
		YearPublished: year,
		IssueDate:     issueDate,
	}
}

// MatchesQuery reports whether the book name contains query,
// case-insensitively.
func (b Book) MatchesQuery(query string) bool {
	return strings.Contains(strings.ToLower(b.Name), strings.ToLower(query))
}

// ValidateField rejects text that cannot survive a round trip through
// the line format, which has no quoting: a comma or newline in a stored
// field would corrupt the file for every later load.
func ValidateField(s string) error {
	if strings.ContainsAny(s, ",\n\r") {
		return fmt.Errorf("%w: %q", ErrReservedChar, s)
	}
	return nil
}

func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	return ValidateField(name)
}
