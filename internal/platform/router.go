package platform

import (
	"net/url"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Location is the router's current position.
type Location struct {
	// Href is the location as pushed, e.g. "/shopping?x=1".
	Href string
	// Path is the decoded path component, e.g. "/shopping".
	Path string
}

// Router keeps an in-app history stack and reports every location change to
// the installed callback. It is driven from the update loop only.
type Router struct {
	history []Location
	cb      func(Location)
}

// NewRouter starts the history at initial ("/" when empty).
func NewRouter(initial string) *Router {
	return &Router{history: []Location{ParseLocation(initial)}}
}

// ParseLocation resolves href against the root and decodes its path.
func ParseLocation(href string) Location {
	href = strings.TrimSpace(href)
	if href == "" {
		href = "/"
	}
	if !strings.HasPrefix(href, "/") {
		href = "/" + href
	}
	loc := Location{Href: href, Path: href}
	u, err := url.Parse(href)
	if err != nil {
		return loc
	}
	loc.Path = u.EscapedPath()
	if decoded, err := url.PathUnescape(loc.Path); err == nil {
		loc.Path = decoded
	}
	if loc.Path == "" {
		loc.Path = "/"
	}
	return loc
}

// Install registers cb and reports the current location.
func (r *Router) Install(cb func(Location)) tea.Cmd {
	r.cb = cb
	return r.report()
}

// Navigate moves to href. The history only grows when the location differs
// from the current one, but the callback always fires.
func (r *Router) Navigate(href string) tea.Cmd {
	loc := ParseLocation(href)
	if loc != r.Location() {
		r.history = append(r.history, loc)
	}
	return r.report()
}

// Back pops one history entry. It returns nil at the start of history.
func (r *Router) Back() tea.Cmd {
	if len(r.history) <= 1 {
		return nil
	}
	r.history = r.history[:len(r.history)-1]
	return r.report()
}

// Location returns the current location.
func (r *Router) Location() Location {
	return r.history[len(r.history)-1]
}

// Depth is the number of history entries.
func (r *Router) Depth() int { return len(r.history) }

func (r *Router) report() tea.Cmd {
	cb := r.cb
	if cb == nil {
		return nil
	}
	loc := r.Location()
	return emit(SourceRouter, func() { cb(loc) }, nil)
}
