package tui

import (
	"strings"

	"github.com/agnivade/levenshtein"
	tea "github.com/charmbracelet/bubbletea"
)

// pathPrompt is the "go to path" input line.
type pathPrompt struct {
	input string
}

type promptResult int

const (
	promptEditing promptResult = iota
	promptCancelled
	promptSubmitted
)

func (p *pathPrompt) handleKey(m tea.KeyMsg) promptResult {
	switch m.Type {
	case tea.KeyEsc:
		return promptCancelled
	case tea.KeyEnter:
		return promptSubmitted
	case tea.KeyTab:
		p.input = closestRoute(p.input)
	case tea.KeyBackspace, tea.KeyCtrlH, tea.KeyDelete:
		if len(p.input) > 0 {
			r := []rune(p.input)
			p.input = string(r[:len(r)-1])
		}
	case tea.KeySpace:
		p.input += " "
	case tea.KeyRunes:
		p.input += string(m.Runes)
	}
	return promptEditing
}

func (p *pathPrompt) View() string {
	return promptStyle.Render("Go to: " + p.input + "█\n[tab] Complete  [enter] Go  [esc] Cancel")
}

// closestRoute completes input to a navigation link: the first link it is a
// prefix of, otherwise the one with the smallest edit distance.
func closestRoute(input string) string {
	needle := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(input), "/"))
	if needle != "" {
		for _, l := range navLinks {
			if strings.HasPrefix(l.Page, needle) {
				return l.Href()
			}
		}
	}
	best, bestDist := navLinks[0], -1
	for _, l := range navLinks {
		d := levenshtein.ComputeDistance(needle, l.Page)
		if bestDist < 0 || d < bestDist {
			best, bestDist = l, d
		}
	}
	return best.Href()
}
