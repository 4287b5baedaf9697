package tui

import "github.com/jask/starterkit/internal/store"

type navLink struct {
	Page  string
	Label string
}

func (l navLink) Href() string { return "/" + l.Page }

var navLinks = []navLink{
	{Page: store.PageStaticContent, Label: "Static Page"},
	{Page: store.PageCounter, Label: "Counter"},
	{Page: store.PageCounterWithRedux, Label: "Counter with Redux"},
	{Page: store.PageShopping, Label: "Shopping"},
}

// ActivePage returns the position in store.Pages of the view that is active
// for page, or -1 when page names none of them.
func ActivePage(page string) int {
	for i, p := range store.Pages {
		if p == page {
			return i
		}
	}
	return -1
}

// ActiveViews reports, for each entry of store.Pages, whether that view is
// active for page. At most one entry is true.
func ActiveViews(page string) []bool {
	out := make([]bool, len(store.Pages))
	if i := ActivePage(page); i >= 0 {
		out[i] = true
	}
	return out
}

func linkIndex(page string) int {
	for i, l := range navLinks {
		if l.Page == page {
			return i
		}
	}
	return -1
}
