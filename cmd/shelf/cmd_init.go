package main

import (
	"errors"
	"fmt"
	"shelf/internal/library"
)

type InitCmd struct{}

// The catalog is never created implicitly; every other command treats a
// missing catalog file as a configuration error. Init is the one way to
// provision it.
func (cmd *InitCmd) Run(g *Globals) error {
	cat, ok := g.Cat.(*library.FileCatalog)
	if !ok {
		return errors.New("init requires a file-backed catalog")
	}

	if err := cat.Provision(); err != nil {
		if errors.Is(err, library.ErrCatalogExists) {
			fmt.Fprintf(g.Out, "Catalog already exists at %s\n", cat.Path())
			return nil
		}
		return err
	}

	fmt.Fprintf(g.Out, "Initialized empty catalog at %s\n", cat.Path())
	return nil
}
