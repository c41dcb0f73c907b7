package main

import (
	"errors"
	"fmt"
	"io"
	"shelf/cmd/shelf/render"
	"shelf/internal/lending"
	"shelf/internal/library"
	"shelf/internal/ui"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
)

// reportOperatorError writes a friendly message for conditions the
// operator recovers from by retrying (nothing matched, bad selection,
// aborted return). It reports whether the error was handled; anything
// else propagates as a real failure.
func reportOperatorError(w io.Writer, err error) bool {
	switch {
	case errors.Is(err, lending.ErrNotAvailable):
		fmt.Fprintln(w, "No available book matches that search.")
	case errors.Is(err, lending.ErrNoneBorrowed):
		fmt.Fprintln(w, "No borrowed book matches that search.")
	case errors.Is(err, lending.ErrLoanNotFound):
		fmt.Fprintln(w, "No loan matches that borrower and book.")
	case errors.Is(err, lending.ErrReturnAborted):
		fmt.Fprintln(w, "Return aborted. Nothing was changed.")
	case errors.Is(err, lending.ErrEmptyQuery):
		fmt.Fprintln(w, "Search text cannot be empty.")
	case errors.Is(err, library.ErrIndexOutOfRange):
		fmt.Fprintln(w, "That number is not in the list.")
	default:
		return false
	}
	return true
}

func bookListView(title string, books []library.Book) render.BookListView {
	view := render.BookListView{Title: title}
	for _, b := range books {
		view.Items = append(view.Items, render.BookListItem{
			Name:      b.Name,
			Author:    b.Author,
			Year:      b.YearPublished,
			Borrowed:  b.Borrowed,
			IssueDate: b.IssueDate,
		})
	}
	return view
}

// chooseBook resolves one book out of candidates: a non-negative index
// picks directly (scripted use), otherwise the operator selects
// interactively. The index counts positions in the candidate list just
// shown, never storage positions.
func chooseBook(g *Globals, title string, candidates []library.Book, index int) (library.Book, error) {
	if index < 0 {
		options := make([]string, len(candidates))
		for i, b := range candidates {
			options[i] = fmt.Sprintf("%s (%s)", b.Name, b.Author)
		}
		picked, err := g.Select(title, options)
		if err != nil {
			return library.Book{}, err
		}
		index = picked
	}
	if index < 0 || index >= len(candidates) {
		return library.Book{}, fmt.Errorf("%w: %d", library.ErrIndexOutOfRange, index)
	}
	return candidates[index], nil
}

func defaultSelect(title string, options []string) (int, error) {
	opts := make([]huh.Option[int], len(options))
	for i, o := range options {
		opts[i] = huh.NewOption(fmt.Sprintf("[%d] %s", i, o), i)
	}

	var idx int
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title(title).
				Options(opts...).
				Value(&idx),
		),
	).WithTheme(ui.WizardTheme())

	if err := form.Run(); err != nil {
		return 0, err
	}
	return idx, nil
}

func parseDate(s string) (time.Time, error) {
	d, err := time.Parse(library.DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q (want YYYY-MM-DD)", library.ErrBadDate, s)
	}
	return d, nil
}
