package main

import (
	"fmt"
	"shelf/internal/lending"
	"strings"
)

type SearchCmd struct {
	Query string `arg:"" help:"Text to match against book names (case-insensitive)"`
}

func (cmd *SearchCmd) Run(g *Globals) error {
	query := strings.TrimSpace(cmd.Query)
	if query == "" {
		reportOperatorError(g.Out, lending.ErrEmptyQuery)
		return nil
	}

	books, err := g.Cat.Search(query)
	if err != nil {
		return err
	}

	title := fmt.Sprintf("Books matching %q", query)
	fmt.Fprint(g.Out, g.Render.RenderBookList(bookListView(title, books)))
	return nil
}
