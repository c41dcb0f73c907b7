package main

import (
	"bufio"
	"fmt"
	"io"
	"shelf/cmd/shelf/render"
	"shelf/internal/lending"
	"shelf/internal/library"
	"strings"
)

// Globals carries everything a command needs. ReadLine and Select are
// injectable so tests can script the interactive flows.
type Globals struct {
	Cat    library.Catalog
	Led    library.Ledger
	Flow   *lending.Workflow
	Out    io.Writer
	Render render.Renderer

	ReadLine func(prompt string) (string, error)
	Select   func(title string, options []string) (int, error)
}

// readLineFrom returns a prompt-and-read function over one shared
// buffered reader. A fresh reader per call would drop any input already
// buffered past the current line, losing answers on piped input.
func readLineFrom(in io.Reader, out io.Writer) func(prompt string) (string, error) {
	r := bufio.NewReader(in)
	return func(prompt string) (string, error) {
		fmt.Fprint(out, prompt)
		line, err := r.ReadString('\n')
		if err != nil && line == "" {
			return "", err
		}
		return strings.TrimSpace(line), nil
	}
}
