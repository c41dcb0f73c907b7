package proptest

import (
	"shelf/internal/library"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"pgregory.net/rapid"
)

// Book IDs are regenerated on every load, so equality never includes
// them.
func assertBooksEqual(t *rapid.T, expected, actual library.Book) {
	t.Helper()
	opts := cmp.Options{
		cmpopts.IgnoreFields(library.Book{}, "ID"),
		cmpopts.EquateApproxTime(0),
	}
	if diff := cmp.Diff(expected, actual, opts...); diff != "" {
		t.Fatalf("book mismatch (-want +got):\n%s", diff)
	}
}

func assertBookListsEqual(t *rapid.T, expected, actual []library.Book) {
	t.Helper()
	if len(expected) != len(actual) {
		t.Fatalf("length mismatch: expected %d, got %d", len(expected), len(actual))
	}
	for i := range expected {
		assertBooksEqual(t, expected[i], actual[i])
	}
}

func assertSubsetByName(t *rapid.T, subset, superset []library.Book) {
	t.Helper()
	names := make(map[string]int)
	for _, b := range superset {
		names[b.Name]++
	}
	for _, b := range subset {
		if names[b.Name] == 0 {
			t.Fatalf("subset contains %q not in superset", b.Name)
		}
		names[b.Name]--
	}
}
