package tui

import (
	"context"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/starterkit/internal/platform"
	"github.com/jask/starterkit/internal/store"
)

// DefaultWideQuery selects the wide layout.
const DefaultWideQuery = "(min-width: 60px)"

const footerText = "Made with ♥ by the starter kit team."

// Options configures a Shell. Store is required.
type Options struct {
	Context  context.Context
	Store    *store.Store
	AppTitle string

	Router  *platform.Router
	Offline *platform.OfflineWatcher // nil disables connectivity reporting
	Layout  *platform.MediaQueryWatcher
	// Document receives page metadata. A fresh one is used when nil.
	Document *platform.Document

	Shop     Shop
	Navigate store.NavigateOptions

	SnackbarDuration time.Duration
	MaxWidth         int
	// RememberPath persists every visited location. Optional.
	RememberPath func(path string) error
	Logger       *slog.Logger
}

// Shell is the application frame: navigation, cart summary, the active page
// and the connectivity snack-bar. It mirrors a slice of the store and
// re-renders from it.
type Shell struct {
	ctx          context.Context
	st           *store.Store
	unsubscribe  func()
	appTitle     string
	router       *platform.Router
	offlineWatch *platform.OfflineWatcher
	layoutWatch  *platform.MediaQueryWatcher
	document     *platform.Document
	navigate     store.NavigateOptions
	snackbarDur  time.Duration
	maxWidth     int
	rememberPath func(string) error
	logger       *slog.Logger

	// mirrored from the store, overwritten on every change
	page           string
	offline        bool
	snackbarOpened bool
	snackbarSeq    int
	wide           bool

	views  []view // in store.Pages order
	cart   *cartBar
	keys   keyMap
	help   help.Model
	prompt *pathPrompt
	width  int
	// commands queued by watcher callbacks, flushed at the end of Update
	queued []tea.Cmd
}

// New builds a shell around opts.Store. It panics without a store: the
// shell cannot render or navigate unconnected.
func New(opts Options) *Shell {
	if opts.Store == nil {
		panic("tui: shell requires a store")
	}
	if opts.Context == nil {
		opts.Context = context.Background()
	}
	if opts.Router == nil {
		opts.Router = platform.NewRouter("/")
	}
	if opts.Layout == nil {
		w, err := platform.NewMediaQueryWatcher(DefaultWideQuery)
		if err != nil {
			panic(err)
		}
		opts.Layout = w
	}
	if opts.Document == nil {
		opts.Document = &platform.Document{}
	}
	if opts.SnackbarDuration <= 0 {
		opts.SnackbarDuration = 3 * time.Second
	}
	if opts.MaxWidth <= 0 {
		opts.MaxWidth = 80
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	s := &Shell{
		ctx:          opts.Context,
		st:           opts.Store,
		appTitle:     opts.AppTitle,
		router:       opts.Router,
		offlineWatch: opts.Offline,
		layoutWatch:  opts.Layout,
		document:     opts.Document,
		navigate:     opts.Navigate,
		snackbarDur:  opts.SnackbarDuration,
		maxWidth:     opts.MaxWidth,
		rememberPath: opts.RememberPath,
		logger:       opts.Logger,
		keys:         newKeyMap(),
		help:         help.New(),
	}
	s.views = []view{
		staticView{},
		newCounterView(),
		newCounterReduxView(opts.Store),
		newShopView(opts.Context, opts.Store, opts.Shop),
		newNotFoundView(func() tea.Cmd { return s.router.Navigate("/") }),
	}
	s.cart = newCartBar(opts.Store)
	s.stateChanged(opts.Store.State())
	s.unsubscribe = opts.Store.Subscribe(s.stateChanged)
	return s
}

// stateChanged copies the shell's slice of the store.
func (s *Shell) stateChanged(st store.State) {
	s.page = st.App.Page
	s.offline = st.App.Offline
	s.snackbarOpened = st.App.SnackbarOpened
	s.snackbarSeq = st.App.SnackbarSeq
	s.wide = st.App.WideLayout
}

// Close drops every store subscription held by the shell and its views.
func (s *Shell) Close() {
	s.unsubscribe()
	s.cart.unsubscribe()
	for _, v := range s.views {
		v.Close()
	}
}

// Init installs the router, connectivity and layout watchers. Each callback
// turns its observation into an action on the store.
func (s *Shell) Init() tea.Cmd {
	cmds := []tea.Cmd{
		s.router.Install(func(loc platform.Location) {
			s.st.Dispatch(store.Navigate(loc.Path, s.navigate))
			s.queue(s.rememberCmd(loc.Href))
		}),
		s.layoutWatch.Install(func(wide bool) {
			s.st.Dispatch(store.UpdateLayout(wide))
		}),
	}
	if s.offlineWatch != nil {
		cmds = append(cmds, s.offlineWatch.Install(s.ctx, func(offline bool) {
			s.st.Dispatch(store.UpdateOffline(offline))
		}))
	}
	return tea.Batch(cmds...)
}

func (s *Shell) queue(cmd tea.Cmd) {
	if cmd != nil {
		s.queued = append(s.queued, cmd)
	}
}

func (s *Shell) rememberCmd(href string) tea.Cmd {
	if s.rememberPath == nil {
		return nil
	}
	save := s.rememberPath
	return func() tea.Msg {
		if err := save(href); err != nil {
			return errMsg{err}
		}
		return nil
	}
}

// messages
type snackbarTimeoutMsg struct{ seq int }

type errMsg struct{ error }

// Update handles msg and then reacts to what changed in the mirrored fields:
// a new page updates document metadata and activates its view, a newly
// opened snack-bar schedules its close.
func (s *Shell) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	prevPage, prevSeq := s.page, s.snackbarSeq

	cmds := []tea.Cmd{s.update(msg)}
	cmds = append(cmds, s.queued...)
	s.queued = nil

	if s.page != prevPage {
		cmds = append(cmds, s.pageChanged())
	}
	if s.snackbarOpened && s.snackbarSeq != prevSeq {
		seq := s.snackbarSeq
		cmds = append(cmds, tea.Tick(s.snackbarDur, func(time.Time) tea.Msg {
			return snackbarTimeoutMsg{seq: seq}
		}))
	}
	return s, tea.Batch(cmds...)
}

func (s *Shell) update(msg tea.Msg) tea.Cmd {
	switch m := msg.(type) {
	case platform.Event:
		return m.Run()
	case tea.WindowSizeMsg:
		s.width = m.Width
		s.help.Width = m.Width
		return s.layoutWatch.Observe(m.Width)
	case snackbarTimeoutMsg:
		s.st.Dispatch(store.CloseSnackbar(m.seq))
		return nil
	case errMsg:
		s.logger.Warn("shell", "err", m.error)
		return nil
	case tea.KeyMsg:
		return s.handleKey(m)
	}
	var cmds []tea.Cmd
	for _, v := range s.views {
		cmds = append(cmds, v.Update(msg))
	}
	return tea.Batch(cmds...)
}

func (s *Shell) pageChanged() tea.Cmd {
	title := s.appTitle + " - " + s.page
	s.logger.Debug("page changed", "page", s.page)
	cmds := []tea.Cmd{s.document.Update(platform.Metadata{Title: title, Description: title})}
	if i := ActivePage(s.page); i >= 0 {
		cmds = append(cmds, s.views[i].Activate())
	}
	return tea.Batch(cmds...)
}

func (s *Shell) handleKey(m tea.KeyMsg) tea.Cmd {
	if s.prompt != nil {
		switch s.prompt.handleKey(m) {
		case promptCancelled:
			s.prompt = nil
		case promptSubmitted:
			href := strings.TrimSpace(s.prompt.input)
			s.prompt = nil
			if href != "" {
				return s.router.Navigate(href)
			}
		}
		return nil
	}

	switch {
	case key.Matches(m, s.keys.Quit):
		s.Close()
		return tea.Quit
	case key.Matches(m, s.keys.Link):
		n, err := strconv.Atoi(m.String())
		if err != nil || n < 1 || n > len(navLinks) {
			return nil
		}
		return s.router.Navigate(navLinks[n-1].Href())
	case key.Matches(m, s.keys.Next):
		i := (linkIndex(s.page) + 1) % len(navLinks)
		return s.router.Navigate(navLinks[i].Href())
	case key.Matches(m, s.keys.Prev):
		i := linkIndex(s.page) - 1
		if i < 0 {
			i = len(navLinks) - 1
		}
		return s.router.Navigate(navLinks[i].Href())
	case key.Matches(m, s.keys.Go):
		s.prompt = &pathPrompt{input: "/"}
		return nil
	case key.Matches(m, s.keys.Back):
		return s.router.Back()
	case key.Matches(m, s.keys.Help):
		s.help.ShowAll = !s.help.ShowAll
		return nil
	}
	if i := ActivePage(s.page); i >= 0 {
		return s.views[i].Update(m)
	}
	return nil
}

// View renders the frame. It is a pure function of the mirrored fields and
// the views' own state.
func (s *Shell) View() string {
	width := s.contentWidth()
	sections := []string{
		s.renderHeader(),
		ruleStyle.Render(strings.Repeat("─", width)),
		s.cart.View(),
		"",
		s.renderMain(width),
		"",
		footerStyle.Width(width).Render(ruleStyle.Render(strings.Repeat("─", width)) + "\n" + footerText),
	}
	if s.snackbarOpened {
		sections = append(sections, snackbarStyle.Render(snackbarText(s.offline)))
	}
	if s.prompt != nil {
		sections = append(sections, s.prompt.View())
	}
	sections = append(sections, s.help.View(s.helpKeys()))
	return shellStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (s *Shell) contentWidth() int {
	w := s.maxWidth
	if s.width > 0 && s.width-4 < w {
		w = s.width - 4
	}
	if w < 20 {
		w = 20
	}
	return w
}

type navItem struct {
	Label    string
	Selected bool
}

func (s *Shell) navItems() []navItem {
	items := make([]navItem, len(navLinks))
	for i, l := range navLinks {
		items[i] = navItem{Label: strconv.Itoa(i+1) + " " + l.Label, Selected: s.page == l.Page}
	}
	return items
}

func (s *Shell) renderHeader() string {
	title := appTitleStyle.Render(s.appTitle)
	var links []string
	for _, it := range s.navItems() {
		style := linkStyle
		if it.Selected {
			style = selectedLinkStyle
		}
		links = append(links, style.Render(it.Label))
	}
	if s.wide {
		return lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", strings.Join(links, "|"))
	}
	return lipgloss.JoinVertical(lipgloss.Left, title, lipgloss.JoinVertical(lipgloss.Left, links...))
}

func (s *Shell) renderMain(width int) string {
	i := ActivePage(s.page)
	if i < 0 {
		return ""
	}
	return s.views[i].View(width)
}

func (s *Shell) helpKeys() helpKeys {
	k := helpKeys{shell: s.keys}
	if i := ActivePage(s.page); i >= 0 {
		k.view = s.views[i].Bindings()
	}
	return k
}
