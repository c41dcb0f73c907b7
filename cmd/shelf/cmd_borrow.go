package main

import (
	"fmt"
	"shelf/internal/library"
	"strings"
)

type BorrowCmd struct {
	Query    string `arg:"" help:"Text to match against available book names"`
	Borrower string `short:"b" help:"Borrower name (prompted if omitted)"`
	On       string `help:"Borrow date (YYYY-MM-DD, defaults to today)"`
	Index    int    `short:"i" default:"-1" help:"Pick candidate by list position instead of prompting"`
}

func (cmd *BorrowCmd) Run(g *Globals) error {
	candidates, err := g.Flow.BorrowCandidates(cmd.Query)
	if err != nil {
		if reportOperatorError(g.Out, err) {
			return nil
		}
		return err
	}

	fmt.Fprint(g.Out, g.Render.RenderBookList(bookListView("Available books", candidates)))

	book, err := chooseBook(g, "Which book?", candidates, cmd.Index)
	if err != nil {
		if reportOperatorError(g.Out, err) {
			return nil
		}
		return err
	}

	borrower := strings.TrimSpace(cmd.Borrower)
	if borrower == "" {
		borrower, err = g.ReadLine("Borrower name: ")
		if err != nil {
			return err
		}
		if strings.TrimSpace(borrower) == "" {
			fmt.Fprintln(g.Out, "Borrower name cannot be empty.")
			return nil
		}
	}

	date := g.Flow.Now()
	if cmd.On != "" {
		date, err = parseDate(cmd.On)
		if err != nil {
			return err
		}
	}

	if err := g.Flow.Borrow(book, borrower, date); err != nil {
		return fmt.Errorf("failed to borrow %q: %w", book.Name, err)
	}

	fmt.Fprintf(g.Out, "Borrowed: %s by %s on %s\n",
		book.Name, borrower, date.Format(library.DateLayout))
	return nil
}
