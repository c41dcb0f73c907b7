package lending_test

import (
	"os"
	"path/filepath"
	"shelf/internal/lending"
	"shelf/internal/library"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 1, 31, 12, 0, 0, 0, time.UTC)

func newTestWorkflow(t *testing.T, catalogLines, ledgerLines string) (*lending.Workflow, *library.FileCatalog, *library.FileLedger) {
	t.Helper()
	dir := t.TempDir()

	catPath := filepath.Join(dir, "librarystore")
	require.NoError(t, os.WriteFile(catPath, []byte(catalogLines), 0o644))
	cat := library.NewFileCatalog(catPath)

	ledPath := filepath.Join(dir, "loans")
	require.NoError(t, os.WriteFile(ledPath, []byte(ledgerLines), 0o644))
	led := library.NewFileLedger(ledPath)

	flow := lending.New(cat, led)
	flow.Now = func() time.Time { return testNow }
	return flow, cat, led
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func noFeeExpected(t *testing.T) lending.ConfirmFunc {
	t.Helper()
	return func(fee lending.Fee) (string, error) {
		t.Fatalf("unexpected fee confirmation request for %.2f", fee.Amount)
		return "", nil
	}
}

const mixedCatalog = "Dune,Frank Herbert,1965,false,2024-01-10\n" +
	"Dune Messiah,Frank Herbert,1969,true,2024-01-11\n" +
	"Hyperion,Dan Simmons,1989,false,2024-01-12\n"

func TestWorkflow_BorrowCandidates(t *testing.T) {
	t.Run("returns only available matches", func(t *testing.T) {
		flow, _, _ := newTestWorkflow(t, mixedCatalog, "")

		books, err := flow.BorrowCandidates("dune")

		require.NoError(t, err)
		require.Len(t, books, 1)
		assert.Equal(t, "Dune", books[0].Name)
	})

	t.Run("borrowed books never appear", func(t *testing.T) {
		flow, _, _ := newTestWorkflow(t, mixedCatalog, "")

		_, err := flow.BorrowCandidates("messiah")

		assert.ErrorIs(t, err, lending.ErrNotAvailable)
	})

	t.Run("empty query is rejected", func(t *testing.T) {
		flow, _, _ := newTestWorkflow(t, mixedCatalog, "")

		_, err := flow.BorrowCandidates("   ")

		assert.ErrorIs(t, err, lending.ErrEmptyQuery)
	})
}

func TestWorkflow_Borrow(t *testing.T) {
	t.Run("appends the loan and flips the catalog flag", func(t *testing.T) {
		flow, cat, led := newTestWorkflow(t,
			"Dune,Frank Herbert,1965,false,2024-01-10\n", "")

		books, err := flow.BorrowCandidates("dune")
		require.NoError(t, err)

		require.NoError(t, flow.Borrow(books[0], "Bob", time.Date(2024, 1, 11, 0, 0, 0, 0, time.UTC)))

		assert.Equal(t, "Bob,Dune,2024-01-11\n", readFile(t, led.Path()))
		assert.Equal(t, "Dune,Frank Herbert,1965,true,2024-01-10\n", readFile(t, cat.Path()))
	})

	t.Run("creates the ledger file on first borrow", func(t *testing.T) {
		dir := t.TempDir()
		catPath := filepath.Join(dir, "librarystore")
		require.NoError(t, os.WriteFile(catPath, []byte("Dune,Frank Herbert,1965,false,2024-01-10\n"), 0o644))
		flow := lending.New(library.NewFileCatalog(catPath), library.NewFileLedger(filepath.Join(dir, "loans")))
		flow.Now = func() time.Time { return testNow }

		books, err := flow.BorrowCandidates("dune")
		require.NoError(t, err)
		require.NoError(t, flow.Borrow(books[0], "Bob", time.Date(2024, 1, 11, 0, 0, 0, 0, time.UTC)))

		assert.Equal(t, "Bob,Dune,2024-01-11\n", readFile(t, filepath.Join(dir, "loans")))
	})

	t.Run("flips only the first of duplicate names", func(t *testing.T) {
		dupes := "Dune,Frank Herbert,1965,false,2024-01-10\n" +
			"Dune,Frank Herbert,1965,false,2024-02-01\n"
		flow, cat, _ := newTestWorkflow(t, dupes, "")

		books, err := flow.BorrowCandidates("dune")
		require.NoError(t, err)
		require.Len(t, books, 2)

		// Whichever candidate is picked, resolution is first-match by name.
		require.NoError(t, flow.Borrow(books[1], "Bob", time.Date(2024, 1, 11, 0, 0, 0, 0, time.UTC)))

		assert.Equal(t,
			"Dune,Frank Herbert,1965,true,2024-01-10\n"+
				"Dune,Frank Herbert,1965,false,2024-02-01\n",
			readFile(t, cat.Path()))
	})

	t.Run("rejects an empty borrower", func(t *testing.T) {
		flow, _, _ := newTestWorkflow(t, mixedCatalog, "")

		books, err := flow.BorrowCandidates("hyperion")
		require.NoError(t, err)

		assert.Error(t, flow.Borrow(books[0], "  ", testNow))
	})
}

func TestWorkflow_ReturnCandidates(t *testing.T) {
	t.Run("returns only borrowed matches", func(t *testing.T) {
		flow, _, _ := newTestWorkflow(t, mixedCatalog, "")

		books, err := flow.ReturnCandidates("dune")

		require.NoError(t, err)
		require.Len(t, books, 1)
		assert.Equal(t, "Dune Messiah", books[0].Name)
	})

	t.Run("nothing borrowed matches", func(t *testing.T) {
		flow, _, _ := newTestWorkflow(t, mixedCatalog, "")

		_, err := flow.ReturnCandidates("hyperion")

		assert.ErrorIs(t, err, lending.ErrNoneBorrowed)
	})
}

func TestWorkflow_Return(t *testing.T) {
	t.Run("removes the loan and flips the flag back", func(t *testing.T) {
		flow, cat, led := newTestWorkflow(t,
			"Dune,Frank Herbert,1965,true,2024-01-10\n",
			"Bob,Dune,2024-01-25\n")

		books, err := flow.ReturnCandidates("dune")
		require.NoError(t, err)

		fee, err := flow.Return(books[0], "Bob", noFeeExpected(t))

		require.NoError(t, err)
		assert.False(t, fee.Due())
		assert.Equal(t, "", readFile(t, led.Path()))
		assert.Equal(t, "Dune,Frank Herbert,1965,false,2024-01-10\n", readFile(t, cat.Path()))
	})

	t.Run("borrow then immediate return restores the catalog", func(t *testing.T) {
		flow, cat, led := newTestWorkflow(t, mixedCatalog, "")

		books, err := flow.BorrowCandidates("hyperion")
		require.NoError(t, err)
		require.NoError(t, flow.Borrow(books[0], "Bob", time.Date(2024, 1, 30, 0, 0, 0, 0, time.UTC)))

		borrowed, err := flow.ReturnCandidates("hyperion")
		require.NoError(t, err)
		_, err = flow.Return(borrowed[0], "Bob", noFeeExpected(t))
		require.NoError(t, err)

		assert.Equal(t, mixedCatalog, readFile(t, cat.Path()))
		assert.Equal(t, "", readFile(t, led.Path()))
	})

	t.Run("borrower match is case-insensitive", func(t *testing.T) {
		flow, _, led := newTestWorkflow(t,
			"Dune,Frank Herbert,1965,true,2024-01-10\n",
			"Bob,Dune,2024-01-25\n")

		books, err := flow.ReturnCandidates("dune")
		require.NoError(t, err)

		_, err = flow.Return(books[0], "BOB", noFeeExpected(t))

		require.NoError(t, err)
		assert.Equal(t, "", readFile(t, led.Path()))
	})

	t.Run("no matching loan leaves everything unchanged", func(t *testing.T) {
		catalogLines := "Dune,Frank Herbert,1965,true,2024-01-10\n"
		ledgerLines := "Bob,Dune,2024-01-25\n"
		flow, cat, led := newTestWorkflow(t, catalogLines, ledgerLines)

		books, err := flow.ReturnCandidates("dune")
		require.NoError(t, err)

		_, err = flow.Return(books[0], "Carol", noFeeExpected(t))

		assert.ErrorIs(t, err, lending.ErrLoanNotFound)
		assert.Equal(t, catalogLines, readFile(t, cat.Path()))
		assert.Equal(t, ledgerLines, readFile(t, led.Path()))
	})

	t.Run("late return requires the literal acknowledgment", func(t *testing.T) {
		flow, _, led := newTestWorkflow(t,
			"Dune,Frank Herbert,1965,true,2024-01-10\n",
			"Bob,Dune,2024-01-11\n") // 20 days before testNow

		books, err := flow.ReturnCandidates("dune")
		require.NoError(t, err)

		fee, err := flow.Return(books[0], "Bob", func(fee lending.Fee) (string, error) {
			assert.InDelta(t, 10.00, fee.Amount, 0.001)
			assert.Equal(t, 20, fee.Days)
			return lending.AcknowledgeToken, nil
		})

		require.NoError(t, err)
		assert.True(t, fee.Due())
		assert.Equal(t, "", readFile(t, led.Path()))
	})

	t.Run("anything but the token aborts with no mutation", func(t *testing.T) {
		catalogLines := "Dune,Frank Herbert,1965,true,2024-01-10\n"
		ledgerLines := "Bob,Dune,2024-01-11\n"
		flow, cat, led := newTestWorkflow(t, catalogLines, ledgerLines)

		books, err := flow.ReturnCandidates("dune")
		require.NoError(t, err)

		_, err = flow.Return(books[0], "Bob", func(lending.Fee) (string, error) {
			return "Done", nil
		})

		assert.ErrorIs(t, err, lending.ErrReturnAborted)
		assert.Equal(t, catalogLines, readFile(t, cat.Path()))
		assert.Equal(t, ledgerLines, readFile(t, led.Path()))
	})

	t.Run("missing ledger file is fatal for return processing", func(t *testing.T) {
		dir := t.TempDir()
		catPath := filepath.Join(dir, "librarystore")
		require.NoError(t, os.WriteFile(catPath, []byte("Dune,Frank Herbert,1965,true,2024-01-10\n"), 0o644))
		flow := lending.New(library.NewFileCatalog(catPath), library.NewFileLedger(filepath.Join(dir, "loans")))
		flow.Now = func() time.Time { return testNow }

		books, err := flow.ReturnCandidates("dune")
		require.NoError(t, err)

		_, err = flow.Return(books[0], "Bob", noFeeExpected(t))

		assert.ErrorIs(t, err, library.ErrNoLedger)
	})

	t.Run("unparseable loan date surfaces on return", func(t *testing.T) {
		flow, _, _ := newTestWorkflow(t,
			"Dune,Frank Herbert,1965,true,2024-01-10\n",
			"Bob,Dune,whenever\n")

		books, err := flow.ReturnCandidates("dune")
		require.NoError(t, err)

		_, err = flow.Return(books[0], "Bob", noFeeExpected(t))

		assert.ErrorIs(t, err, library.ErrBadDate)
	})
}
