package main

import "fmt"

type DeleteCmd struct {
	Index int `short:"i" default:"-1" help:"Catalog position to delete instead of prompting"`
}

func (cmd *DeleteCmd) Run(g *Globals) error {
	books, err := g.Cat.List()
	if err != nil {
		return err
	}
	if len(books) == 0 {
		fmt.Fprintln(g.Out, "The catalog is empty.")
		return nil
	}

	fmt.Fprint(g.Out, g.Render.RenderBookList(bookListView("Catalog", books)))

	// The delete listing is unfiltered, so the displayed position is the
	// storage position.
	book, err := chooseBook(g, "Delete which book?", books, cmd.Index)
	if err != nil {
		if reportOperatorError(g.Out, err) {
			return nil
		}
		return err
	}

	index := cmd.Index
	if index < 0 {
		for i := range books {
			if books[i].ID == book.ID {
				index = i
				break
			}
		}
	}

	if err := g.Cat.Delete(index); err != nil {
		if reportOperatorError(g.Out, err) {
			return nil
		}
		return fmt.Errorf("failed to delete %q: %w", book.Name, err)
	}

	fmt.Fprintf(g.Out, "Deleted: %s\n", book.Name)
	return nil
}
