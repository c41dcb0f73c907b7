package library

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileCatalog is the Catalog backed by one plain-text file, one encoded
// book per line in insertion order. The file must be provisioned before
// first use; a missing file is a configuration error, never silently
// created.
type FileCatalog struct {
	path string
}

func NewFileCatalog(path string) *FileCatalog {
	return &FileCatalog{path: path}
}

func (c *FileCatalog) Path() string {
	return c.path
}

// Provision creates an empty catalog file. It fails if one already
// exists so a populated store can never be clobbered.
func (c *FileCatalog) Provision() error {
	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(c.path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return fmt.Errorf("%w: %s", ErrCatalogExists, c.path)
		}
		return err
	}
	return f.Close()
}

func (c *FileCatalog) load() ([]Book, error) {
	data, err := os.ReadFile(c.path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrNoCatalog, c.path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %q: %w", c.path, err)
	}
	books, err := DecodeBooks(string(data))
	if err != nil {
		return nil, fmt.Errorf("catalog file %q: %w", c.path, err)
	}
	return books, nil
}

// List returns every book in storage order.
func (c *FileCatalog) List() ([]Book, error) {
	return c.load()
}

// Search returns the books whose name contains query, case-insensitively,
// in storage order.
func (c *FileCatalog) Search(query string) ([]Book, error) {
	books, err := c.load()
	if err != nil {
		return nil, err
	}
	var results []Book
	for _, b := range books {
		if b.MatchesQuery(query) {
			results = append(results, b)
		}
	}
	return results, nil
}

// Create appends one encoded book line. Existing lines are never touched.
// Duplicate names are allowed.
func (c *FileCatalog) Create(b Book) error {
	if err := ValidateName(b.Name); err != nil {
		return err
	}
	if err := ValidateField(b.Author); err != nil {
		return err
	}
	f, err := os.OpenFile(c.path, os.O_WRONLY|os.O_APPEND, 0o644)
	if os.IsNotExist(err) {
		return fmt.Errorf("%w: %s", ErrNoCatalog, c.path)
	}
	if err != nil {
		return fmt.Errorf("failed to open catalog file %q: %w", c.path, err)
	}
	if _, err := f.WriteString(EncodeBook(b)); err != nil {
		f.Close()
		return fmt.Errorf("failed to append to catalog file %q: %w", c.path, err)
	}
	return f.Close()
}

// Delete removes the book at index, counted in storage order, and keeps
// every other record in place. An out-of-range index is rejected and the
// file stays untouched.
func (c *FileCatalog) Delete(index int) error {
	books, err := c.load()
	if err != nil {
		return err
	}
	if index < 0 || index >= len(books) {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	kept := make([]Book, 0, len(books)-1)
	kept = append(kept, books[:index]...)
	kept = append(kept, books[index+1:]...)
	return c.writeAll(kept)
}

// SetBorrowed patches the borrowed flag on the first book whose name is
// exactly bookName. Later duplicates are left alone. The whole file is
// rewritten.
func (c *FileCatalog) SetBorrowed(bookName string, borrowed bool) error {
	books, err := c.load()
	if err != nil {
		return err
	}
	found := false
	for i := range books {
		if books[i].Name == bookName {
			books[i].Borrowed = borrowed
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("%w: %q", ErrNotFound, bookName)
	}
	return c.writeAll(books)
}

// writeAll replaces the file contents via a temp file and rename, so a
// failed write never leaves a truncated catalog behind.
func (c *FileCatalog) writeAll(books []Book) error {
	var sb strings.Builder
	for _, b := range books {
		sb.WriteString(EncodeBook(b))
	}

	tmpPath := c.path + ".tmp"
	if err := os.WriteFile(tmpPath, []byte(sb.String()), 0o644); err != nil {
		return fmt.Errorf("failed to write catalog file %q: %w", c.path, err)
	}
	return os.Rename(tmpPath, c.path)
}
