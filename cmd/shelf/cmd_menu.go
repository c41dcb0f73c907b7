package main

type MenuCmd struct{}

var menuOptions = []string{
	"List all books",
	"Search a book",
	"Create a book",
	"Borrow a book",
	"Return a book",
	"Delete a book",
	"Exit",
}

const menuExit = 6

// Run drives the classic menu loop: one selection, one core operation,
// back to the menu. Operator mistakes are reported and re-prompted;
// only configuration and I/O failures break the loop.
func (cmd *MenuCmd) Run(g *Globals) error {
	for {
		choice, err := g.Select("Welcome to the library", menuOptions)
		if err != nil {
			return err
		}

		switch choice {
		case 0:
			err = (&ListCmd{}).Run(g)
		case 1:
			err = cmd.withQuery(g, func(q string) error {
				return (&SearchCmd{Query: q}).Run(g)
			})
		case 2:
			err = (&CreateCmd{}).Run(g)
		case 3:
			err = cmd.withQuery(g, func(q string) error {
				return (&BorrowCmd{Query: q, Index: -1}).Run(g)
			})
		case 4:
			err = cmd.withQuery(g, func(q string) error {
				return (&ReturnCmd{Query: q, Index: -1}).Run(g)
			})
		case 5:
			err = (&DeleteCmd{Index: -1}).Run(g)
		case menuExit:
			return nil
		}

		if err != nil {
			return err
		}
	}
}

func (cmd *MenuCmd) withQuery(g *Globals, fn func(query string) error) error {
	query, err := g.ReadLine("Book name: ")
	if err != nil {
		return err
	}
	return fn(query)
}
