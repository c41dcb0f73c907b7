package render

import (
	"fmt"
	"io"
	"os"
	"shelf/internal/library"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
)

type LipglossRenderer struct {
	width int
	r     *lipgloss.Renderer

	titleStyle    lipgloss.Style
	nameStyle     lipgloss.Style
	metaStyle     lipgloss.Style
	borrowedStyle lipgloss.Style
	availStyle    lipgloss.Style
}

func NewLipglossRenderer(w io.Writer, width int) *LipglossRenderer {
	r := lipgloss.NewRenderer(w)
	return &LipglossRenderer{
		width:         width,
		r:             r,
		titleStyle:    r.NewStyle().Bold(true),
		nameStyle:     r.NewStyle().Bold(true),
		metaStyle:     r.NewStyle().Faint(true),
		borrowedStyle: r.NewStyle().Foreground(lipgloss.Color("3")),
		availStyle:    r.NewStyle().Faint(true),
	}
}

func NewLipglossRendererAuto(w io.Writer) *LipglossRenderer {
	width := 80
	if f, ok := w.(*os.File); ok {
		if tw, _, err := term.GetSize(f.Fd()); err == nil && tw > 0 {
			width = tw
		}
	}
	return NewLipglossRenderer(w, width)
}

// RenderBookList draws a numbered book list. The numbers are the
// selection indexes the borrow, return and delete flows prompt for, so
// they always count positions within this exact listing.
func (r *LipglossRenderer) RenderBookList(view BookListView) string {
	if view.IsEmpty() {
		return "No books found.\n"
	}

	var sb strings.Builder
	if view.Title != "" {
		sb.WriteString(r.titleStyle.Render(view.Title))
		sb.WriteString("\n\n")
	}
	for i, item := range view.Items {
		last := i == len(view.Items)-1
		sb.WriteString(r.renderItem(i, item, last))
	}
	sb.WriteString("\n")
	return sb.String()
}

func (r *LipglossRenderer) renderItem(idx int, item BookListItem, last bool) string {
	status := "available"
	statusStyle := r.availStyle
	if item.Borrowed {
		status = "borrowed"
		statusStyle = r.borrowedStyle
	}

	name := r.nameStyle.Render(fmt.Sprintf("[%d] %s", idx, item.Name))
	statusEl := statusStyle.Render(status)

	padding := max(1, r.width-lipgloss.Width(name)-lipgloss.Width(statusEl))
	headerLine := name + strings.Repeat(" ", padding) + statusEl

	meta := r.metaStyle.Render(fmt.Sprintf("    %s · %d · issued %s",
		item.Author, item.Year, item.IssueDate.Format(library.DateLayout)))

	lines := []string{headerLine, meta}
	if !last {
		lines = append(lines, "", "")
	}

	return strings.Join(lines, "\n")
}
