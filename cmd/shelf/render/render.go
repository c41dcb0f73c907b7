package render

import "time"

type Renderer interface {
	RenderBookList(view BookListView) string
}

type BookListView struct {
	Title string
	Items []BookListItem
}

type BookListItem struct {
	Name      string
	Author    string
	Year      int
	Borrowed  bool
	IssueDate time.Time
}

func (v BookListView) IsEmpty() bool {
	return len(v.Items) == 0
}
