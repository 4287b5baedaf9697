package platform

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// Metadata describes the current document.
type Metadata struct {
	Title       string
	Description string
	Image       string
}

// Document holds the metadata last applied.
type Document struct {
	mu   sync.Mutex
	meta Metadata
}

// Update applies the non-empty fields of m and returns a command setting the
// terminal window title when m carries one.
func (d *Document) Update(m Metadata) tea.Cmd {
	d.mu.Lock()
	defer d.mu.Unlock()
	if m.Title != "" {
		d.meta.Title = m.Title
	}
	if m.Description != "" {
		d.meta.Description = m.Description
	}
	if m.Image != "" {
		d.meta.Image = m.Image
	}
	if m.Title == "" {
		return nil
	}
	return tea.SetWindowTitle(m.Title)
}

// Metadata returns the current metadata.
func (d *Document) Metadata() Metadata {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.meta
}
