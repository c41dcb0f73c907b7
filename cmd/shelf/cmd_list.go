package main

import "fmt"

type ListCmd struct {
	Names bool `short:"n" help:"Output only book names (one per line)"`
}

func (cmd *ListCmd) Run(g *Globals) error {
	books, err := g.Cat.List()
	if err != nil {
		return err
	}

	if cmd.Names {
		for _, b := range books {
			fmt.Fprintln(g.Out, b.Name)
		}
		return nil
	}

	fmt.Fprint(g.Out, g.Render.RenderBookList(bookListView("Catalog", books)))
	return nil
}
