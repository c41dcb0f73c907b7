package proptest

import (
	"errors"
	"shelf/internal/library"
	"strings"
	"testing"

	"pgregory.net/rapid"
)

func TestProperty_Catalog_ListIsIdempotent(t *testing.T) {
	RunWithStore(t, func(h *Harness) {
		h.CreateBooks(0, typicalMaxBooks)

		first := h.MustList()
		second := h.MustList()

		assertBookListsEqual(h.T, first, second)
	})
}

func TestProperty_Catalog_CreatePreservesExistingRecords(t *testing.T) {
	RunWithStore(t, func(h *Harness) {
		h.CreateBooks(0, typicalMaxBooks)
		before := h.MustList()

		added := h.MustCreate()
		after := h.MustList()

		if len(after) != len(before)+1 {
			h.T.Fatalf("expected %d books, got %d", len(before)+1, len(after))
		}
		assertBookListsEqual(h.T, before, after[:len(before)])
		assertBooksEqual(h.T, added, after[len(after)-1])
	})
}

func TestProperty_Catalog_DeleteRemovesExactlyTheIndexedRecord(t *testing.T) {
	RunWithStore(t, func(h *Harness) {
		h.CreateBooks(typicalMinBooks, typicalMaxBooks)
		before := h.MustList()
		idx := rapid.IntRange(0, len(before)-1).Draw(h.T, "idx")

		if err := h.Catalog.Delete(idx); err != nil {
			h.T.Fatalf("delete failed: %v", err)
		}

		after := h.MustList()
		want := append(append([]library.Book{}, before[:idx]...), before[idx+1:]...)
		assertBookListsEqual(h.T, want, after)
	})
}

func TestProperty_Catalog_DeleteOutOfRangeChangesNothing(t *testing.T) {
	RunWithStore(t, func(h *Harness) {
		h.CreateBooks(0, typicalMaxBooks)
		before := h.MustList()
		idx := rapid.OneOf(
			rapid.IntRange(-5, -1),
			rapid.IntRange(len(before), len(before)+5),
		).Draw(h.T, "idx")

		err := h.Catalog.Delete(idx)

		if !errors.Is(err, library.ErrIndexOutOfRange) {
			h.T.Fatalf("expected ErrIndexOutOfRange, got %v", err)
		}
		assertBookListsEqual(h.T, before, h.MustList())
	})
}

func TestProperty_Catalog_SearchIsSubsetOfList(t *testing.T) {
	RunWithStore(t, func(h *Harness) {
		h.CreateBooks(0, typicalMaxBooks)
		query := queryGen.Draw(h.T, "query")

		results, err := h.Catalog.Search(query)
		if err != nil {
			h.T.Fatalf("search failed: %v", err)
		}

		assertSubsetByName(h.T, results, h.MustList())
		for _, b := range results {
			if !strings.Contains(strings.ToLower(b.Name), strings.ToLower(query)) {
				h.T.Fatalf("result %q does not contain query %q", b.Name, query)
			}
		}
	})
}

func TestProperty_Catalog_SearchIsCaseInsensitive(t *testing.T) {
	RunWithStore(t, func(h *Harness) {
		h.CreateBooks(typicalMinBooks, typicalMaxBooks)
		query := queryGen.Draw(h.T, "query")

		lower, err := h.Catalog.Search(strings.ToLower(query))
		if err != nil {
			h.T.Fatalf("search failed: %v", err)
		}
		upper, err := h.Catalog.Search(strings.ToUpper(query))
		if err != nil {
			h.T.Fatalf("search failed: %v", err)
		}

		assertBookListsEqual(h.T, lower, upper)
	})
}
