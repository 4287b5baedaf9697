package platform

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// MediaQuery is a single width feature measured in terminal columns.
type MediaQuery struct {
	Min   bool // min-width when true, max-width otherwise
	Width int
}

var mediaQueryRE = regexp.MustCompile(`^\(\s*(min|max)-width\s*:\s*(\d+)\s*(px|ch|cols)?\s*\)$`)

// ParseMediaQuery parses "(min-width: 60px)" style queries. Units px, ch and
// cols are accepted and all mean terminal columns.
func ParseMediaQuery(q string) (MediaQuery, error) {
	m := mediaQueryRE.FindStringSubmatch(strings.ToLower(strings.TrimSpace(q)))
	if m == nil {
		return MediaQuery{}, fmt.Errorf("media query %q: unsupported", q)
	}
	n, err := strconv.Atoi(m[2])
	if err != nil {
		return MediaQuery{}, fmt.Errorf("media query %q: %w", q, err)
	}
	return MediaQuery{Min: m[1] == "min", Width: n}, nil
}

// Matches reports whether a terminal of the given width satisfies the query.
func (q MediaQuery) Matches(width int) bool {
	if q.Min {
		return width >= q.Width
	}
	return width <= q.Width
}

func (q MediaQuery) String() string {
	feature := "max-width"
	if q.Min {
		feature = "min-width"
	}
	return fmt.Sprintf("(%s: %dpx)", feature, q.Width)
}

// MediaQueryWatcher reports when the terminal width crosses a query boundary.
// Widths arrive through Observe, normally from tea.WindowSizeMsg.
type MediaQueryWatcher struct {
	query    MediaQuery
	cb       func(matches bool)
	observed bool
	width    int
	matches  bool
	reported bool
}

// NewMediaQueryWatcher parses query.
func NewMediaQueryWatcher(query string) (*MediaQueryWatcher, error) {
	q, err := ParseMediaQuery(query)
	if err != nil {
		return nil, err
	}
	return &MediaQueryWatcher{query: q}, nil
}

// Query returns the parsed query.
func (w *MediaQueryWatcher) Query() MediaQuery { return w.query }

// Install registers cb. If a width was already observed it is reported.
func (w *MediaQueryWatcher) Install(cb func(matches bool)) tea.Cmd {
	w.cb = cb
	w.reported = false
	if !w.observed {
		return nil
	}
	return w.Observe(w.width)
}

// Observe records width and returns a command reporting the match state the
// first time and whenever it flips. Otherwise it returns nil.
func (w *MediaQueryWatcher) Observe(width int) tea.Cmd {
	w.observed = true
	w.width = width
	matches := w.query.Matches(width)
	if w.cb == nil {
		return nil
	}
	if w.reported && matches == w.matches {
		return nil
	}
	w.reported, w.matches = true, matches
	cb := w.cb
	return emit(SourceMediaQuery, func() { cb(matches) }, nil)
}
