package main

import (
	"errors"
	"fmt"
	"shelf/internal/library"
	"shelf/internal/ui"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
)

type CreateCmd struct {
	Name     string `short:"n" help:"Book name (omit to run the wizard)"`
	Author   string `short:"a" help:"Book author"`
	Year     int    `short:"y" help:"Year published"`
	IssuedOn string `name:"issued" help:"Issue date (YYYY-MM-DD)"`
}

func validateBookName(name string) error {
	err := library.ValidateName(name)
	switch {
	case errors.Is(err, library.ErrEmptyName):
		return errors.New("Name cannot be empty")
	case errors.Is(err, library.ErrReservedChar):
		return errors.New("Name cannot contain commas")
	}
	return err
}

func validateAuthor(author string) error {
	if err := library.ValidateField(author); err != nil {
		return errors.New("Author cannot contain commas")
	}
	return nil
}

func validateYear(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if _, err := strconv.Atoi(strings.TrimSpace(s)); err != nil {
		return errors.New("Year must be a number")
	}
	return nil
}

func validateIssueDate(s string) error {
	if _, err := parseDate(s); err != nil {
		return errors.New("Date must be YYYY-MM-DD")
	}
	return nil
}

func (cmd *CreateCmd) Run(g *Globals) error {
	name := strings.TrimSpace(cmd.Name)
	author := strings.TrimSpace(cmd.Author)
	year := cmd.Year
	issued := strings.TrimSpace(cmd.IssuedOn)

	if name == "" {
		var yearText string
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Name").
					Value(&name).
					Validate(validateBookName),
				huh.NewInput().
					Title("Author").
					Value(&author).
					Validate(validateAuthor),
				huh.NewInput().
					Title("Year published").
					Value(&yearText).
					Validate(validateYear),
				huh.NewInput().
					Title("Issue date").
					Description("YYYY-MM-DD").
					Value(&issued).
					Validate(validateIssueDate),
			),
		).WithTheme(ui.WizardTheme())

		if err := form.Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return err
		}
		year, _ = strconv.Atoi(strings.TrimSpace(yearText))
	}

	issueDate, err := parseDate(issued)
	if err != nil {
		return err
	}

	book := library.NewBook(name, author, year, issueDate)
	if err := g.Cat.Create(book); err != nil {
		return fmt.Errorf("failed to create book %q: %w", book.Name, err)
	}

	fields := []ui.Field{
		{Label: "Name", Value: book.Name},
		{Label: "Author", Value: book.Author},
		{Label: "Year", Value: strconv.Itoa(book.YearPublished)},
		{Label: "Issued", Value: book.IssueDate.Format(library.DateLayout)},
	}
	fmt.Fprint(g.Out, ui.RenderSummary("Added to catalog", fields))
	return nil
}
