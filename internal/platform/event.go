// Package platform bridges terminal and host events to callbacks: a router
// over in-app locations, a connectivity watcher, a width media-query watcher
// and document metadata.
//
// Installers return Bubble Tea commands. Observations come back to the
// program as an Event; the program's update loop calls Event.Run, which
// invokes the installed callback on that loop and yields the command that
// keeps the watcher going.
package platform

import tea "github.com/charmbracelet/bubbletea"

// Event sources.
const (
	SourceRouter     = "router"
	SourceNetwork    = "network"
	SourceMediaQuery = "media-query"
)

// Event is a watcher observation waiting to be delivered to its callback.
type Event struct {
	Source string
	fire   func()
	next   tea.Cmd
}

// Run invokes the installed callback and returns the watcher's follow-up
// command, which may be nil.
func (e Event) Run() tea.Cmd {
	if e.fire != nil {
		e.fire()
	}
	return e.next
}

func emit(source string, fire func(), next tea.Cmd) tea.Cmd {
	return func() tea.Msg {
		return Event{Source: source, fire: fire, next: next}
	}
}
