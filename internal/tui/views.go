package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/starterkit/internal/store"
)

// view is a page of the main region. Exactly the view matching the current
// page receives keys and is rendered.
type view interface {
	Page() string
	Update(msg tea.Msg) tea.Cmd
	View(width int) string
	// Activate runs when the view becomes the active page.
	Activate() tea.Cmd
	Bindings() []key.Binding
	Close()
}

func wrap(text string, width int) string {
	return lipgloss.NewStyle().Width(width).Render(text)
}

func renderCounter(clicks, value int) string {
	return fmt.Sprintf("Clicked: %d times. Value is %d.  [+] [-]", clicks, value)
}

type counterKeys struct {
	Inc key.Binding
	Dec key.Binding
}

func newCounterKeys() counterKeys {
	return counterKeys{
		Inc: key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "increment")),
		Dec: key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "decrement")),
	}
}

// staticView is a text-only page.
type staticView struct{}

func (staticView) Page() string              { return store.PageStaticContent }
func (staticView) Update(tea.Msg) tea.Cmd    { return nil }
func (staticView) Activate() tea.Cmd         { return nil }
func (staticView) Bindings() []key.Binding   { return nil }
func (staticView) Close()                    {}
func (staticView) View(width int) string {
	return titleStyle.Render("Static page") + "\n" +
		wrap("This is a text-only page. It doesn't do anything other than display some static text.", width) + "\n\n" +
		wrap("Pages are selected by the location: every navigation goes through the router, "+
			"becomes an action on the store, and the shell shows whichever page the store says is current.", width)
}

// counterView keeps its counter locally, outside the store.
type counterView struct {
	clicks int
	value  int
	keys   counterKeys
}

func newCounterView() *counterView { return &counterView{keys: newCounterKeys()} }

func (v *counterView) Page() string            { return store.PageCounter }
func (v *counterView) Activate() tea.Cmd       { return nil }
func (v *counterView) Bindings() []key.Binding { return []key.Binding{v.keys.Inc, v.keys.Dec} }
func (v *counterView) Close()                  {}

func (v *counterView) Update(msg tea.Msg) tea.Cmd {
	m, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch {
	case key.Matches(m, v.keys.Inc):
		v.clicks++
		v.value++
	case key.Matches(m, v.keys.Dec):
		v.clicks++
		v.value--
	}
	return nil
}

func (v *counterView) View(width int) string {
	return titleStyle.Render("Counter") + "\n" +
		wrap("This page contains a counter that keeps its own state. Leaving and coming back keeps the count for this session only.", width) + "\n\n" +
		renderCounter(v.clicks, v.value)
}

// counterReduxView renders the store's counter and dispatches on input.
type counterReduxView struct {
	st          *store.Store
	clicks      int
	value       int
	keys        counterKeys
	unsubscribe func()
}

func newCounterReduxView(st *store.Store) *counterReduxView {
	v := &counterReduxView{st: st, keys: newCounterKeys()}
	v.stateChanged(st.State())
	v.unsubscribe = st.Subscribe(v.stateChanged)
	return v
}

func (v *counterReduxView) stateChanged(s store.State) {
	v.clicks = s.Counter.Clicks
	v.value = s.Counter.Value
}

func (v *counterReduxView) Page() string            { return store.PageCounterWithRedux }
func (v *counterReduxView) Activate() tea.Cmd       { return nil }
func (v *counterReduxView) Bindings() []key.Binding { return []key.Binding{v.keys.Inc, v.keys.Dec} }
func (v *counterReduxView) Close()                  { v.unsubscribe() }

func (v *counterReduxView) Update(msg tea.Msg) tea.Cmd {
	m, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch {
	case key.Matches(m, v.keys.Inc):
		v.st.Dispatch(store.Increment())
	case key.Matches(m, v.keys.Dec):
		v.st.Dispatch(store.Decrement())
	}
	return nil
}

func (v *counterReduxView) View(width int) string {
	return titleStyle.Render("Counter with Redux") + "\n" +
		wrap("This counter lives in the application store, so its value survives navigating away.", width) + "\n\n" +
		renderCounter(v.clicks, v.value)
}

// notFoundView is shown for the not-found page id.
type notFoundView struct {
	home func() tea.Cmd
	keys key.Binding
}

func newNotFoundView(home func() tea.Cmd) *notFoundView {
	return &notFoundView{home: home, keys: key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "home"))}
}

func (v *notFoundView) Page() string            { return store.PageNotFound }
func (v *notFoundView) Activate() tea.Cmd       { return nil }
func (v *notFoundView) Bindings() []key.Binding { return []key.Binding{v.keys} }
func (v *notFoundView) Close()                  {}

func (v *notFoundView) Update(msg tea.Msg) tea.Cmd {
	if m, ok := msg.(tea.KeyMsg); ok && key.Matches(m, v.keys) {
		return v.home()
	}
	return nil
}

func (v *notFoundView) View(width int) string {
	return titleStyle.Render("Oops! You hit a 404") + "\n" +
		wrap("The page you're looking for doesn't seem to exist. Head back home ([h]) and try again?", width)
}

// cartBar summarises the cart above the main region.
type cartBar struct {
	quantity    int
	totalCents  int64
	unsubscribe func()
}

func newCartBar(st *store.Store) *cartBar {
	b := &cartBar{}
	b.stateChanged(st.State())
	b.unsubscribe = st.Subscribe(b.stateChanged)
	return b
}

func (b *cartBar) stateChanged(s store.State) {
	b.quantity = store.CartQuantity(s)
	b.totalCents = store.CartTotalCents(s)
}

func (b *cartBar) View() string {
	noun := "items"
	if b.quantity == 1 {
		noun = "item"
	}
	return cartBarStyle.Render(fmt.Sprintf("Cart: %d %s  %s", b.quantity, noun, formatCents(b.totalCents)))
}

func formatCents(c int64) string {
	sign := ""
	if c < 0 {
		sign, c = "-", -c
	}
	return fmt.Sprintf("%s$%d.%02d", sign, c/100, c%100)
}

func snackbarText(offline bool) string {
	if offline {
		return "You are now offline."
	}
	return "You are now online."
}
