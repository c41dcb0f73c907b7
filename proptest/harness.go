package proptest

import (
	"os"
	"path/filepath"
	"shelf/internal/lending"
	"shelf/internal/library"
	"testing"
	"time"

	"pgregory.net/rapid"
)

var harnessNow = time.Date(2026, 1, 7, 12, 0, 0, 0, time.UTC)

type Harness struct {
	T       *rapid.T
	Catalog *library.FileCatalog
	Ledger  *library.FileLedger
	Flow    *lending.Workflow
}

func (h *Harness) GenBook(opts ...BookGenOpt) library.Book {
	return GenBook(h.T, opts...)
}

func (h *Harness) MustCreate(opts ...BookGenOpt) library.Book {
	b := h.GenBook(opts...)
	b.Borrowed = false
	if err := h.Catalog.Create(b); err != nil {
		h.T.Fatalf("failed to create book: %v", err)
	}
	return b
}

func (h *Harness) CreateBooks(minCount, maxCount int) []library.Book {
	var created []library.Book
	n := rapid.IntRange(minCount, maxCount).Draw(h.T, "numBooks")
	for range n {
		created = append(created, h.MustCreate())
	}
	return created
}

func (h *Harness) MustList() []library.Book {
	books, err := h.Catalog.List()
	if err != nil {
		h.T.Fatalf("failed to list catalog: %v", err)
	}
	return books
}

// RunWithStore gives fn a provisioned catalog and an empty ledger on a
// fresh per-iteration directory, with the workflow clock pinned.
func RunWithStore(t *testing.T, fn func(h *Harness)) {
	tempDir := t.TempDir()
	rapid.Check(t, func(rt *rapid.T) {
		iterDir := filepath.Join(tempDir, iterDirGen.Draw(rt, "iterDir"))
		if err := os.MkdirAll(iterDir, 0o755); err != nil {
			rt.Fatalf("failed to create iter dir: %v", err)
		}

		cat := library.NewFileCatalog(filepath.Join(iterDir, "librarystore"))
		if err := cat.Provision(); err != nil {
			rt.Fatalf("failed to provision catalog: %v", err)
		}
		led := library.NewFileLedger(filepath.Join(iterDir, "loans"))

		flow := lending.New(cat, led)
		flow.Now = func() time.Time { return harnessNow }

		fn(&Harness{T: rt, Catalog: cat, Ledger: led, Flow: flow})
	})
}
