package main

import (
	"fmt"
	"shelf/internal/lending"
	"shelf/internal/ui"
	"strings"
)

type ReturnCmd struct {
	Query    string `arg:"" help:"Text to match against borrowed book names"`
	Borrower string `short:"b" help:"Borrower name (prompted if omitted)"`
	Index    int    `short:"i" default:"-1" help:"Pick candidate by list position instead of prompting"`
}

func (cmd *ReturnCmd) Run(g *Globals) error {
	candidates, err := g.Flow.ReturnCandidates(cmd.Query)
	if err != nil {
		if reportOperatorError(g.Out, err) {
			return nil
		}
		return err
	}

	fmt.Fprint(g.Out, g.Render.RenderBookList(bookListView("Borrowed books", candidates)))

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

	confirm := func(fee lending.Fee) (string, error) {
		fmt.Fprint(g.Out, ui.RenderFeeNotice(borrower, fee.Amount, fee.Days))
		return g.ReadLine(fmt.Sprintf("Type %q once the fee is settled: ", lending.AcknowledgeToken))
	}

	fee, err := g.Flow.Return(book, borrower, confirm)
	if err != nil {
		if reportOperatorError(g.Out, err) {
			return nil
		}
		return fmt.Errorf("failed to return %q: %w", book.Name, err)
	}

	if fee.Due() {
		fmt.Fprintf(g.Out, "Returned: %s by %s (fee collected: %.2f)\n", book.Name, borrower, fee.Amount)
	} else {
		fmt.Fprintf(g.Out, "Returned: %s by %s\n", book.Name, borrower)
	}
	return nil
}
