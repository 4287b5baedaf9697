package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/starterkit/internal/database/repository"
	"github.com/jask/starterkit/internal/service"
	"github.com/jask/starterkit/internal/store"
)

// Shop is the catalog and cart backend used by the shopping page.
type Shop interface {
	Snapshot(ctx context.Context) (service.Snapshot, error)
	AddToCart(ctx context.Context, id string) (service.Snapshot, error)
	RemoveFromCart(ctx context.Context, id string) (service.Snapshot, error)
	Checkout(ctx context.Context) (repository.Order, error)
}

type shopKeys struct {
	Up       key.Binding
	Down     key.Binding
	Add      key.Binding
	Remove   key.Binding
	Checkout key.Binding
}

func newShopKeys() shopKeys {
	return shopKeys{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Add:      key.NewBinding(key.WithKeys("enter", "a"), key.WithHelp("a", "add to cart")),
		Remove:   key.NewBinding(key.WithKeys("x", "d"), key.WithHelp("x", "remove")),
		Checkout: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "checkout")),
	}
}

// shopView lists products and the cart. Catalog and cart come from the store;
// changes go through the Shop backend and come back as store actions.
type shopView struct {
	ctx         context.Context
	st          *store.Store
	shop        Shop
	keys        shopKeys
	unsubscribe func()

	// mirrored from the store
	products []store.Product
	items    []store.CartItem
	total    int64
	errText  string

	cursor int
	loaded bool
	status string
}

func newShopView(ctx context.Context, st *store.Store, shop Shop) *shopView {
	v := &shopView{ctx: ctx, st: st, shop: shop, keys: newShopKeys()}
	v.stateChanged(st.State())
	v.unsubscribe = st.Subscribe(v.stateChanged)
	return v
}

func (v *shopView) stateChanged(s store.State) {
	v.products = v.products[:0]
	for _, id := range s.Shop.ProductOrder {
		if p, ok := s.Shop.Products[id]; ok {
			v.products = append(v.products, p)
		}
	}
	v.items = store.CartItems(s)
	v.total = store.CartTotalCents(s)
	v.errText = s.Shop.Error
	if v.cursor >= len(v.products) {
		v.cursor = 0
	}
}

func (v *shopView) Page() string { return store.PageShopping }
func (v *shopView) Close()       { v.unsubscribe() }

func (v *shopView) Bindings() []key.Binding {
	return []key.Binding{v.keys.Up, v.keys.Down, v.keys.Add, v.keys.Remove, v.keys.Checkout}
}

func (v *shopView) Activate() tea.Cmd {
	if v.loaded || v.shop == nil {
		return nil
	}
	return v.loadCmd()
}

// messages
type shopSnapshotMsg struct{ snap service.Snapshot }

type checkoutDoneMsg struct{ order repository.Order }

type shopErrMsg struct{ err error }

func (v *shopView) loadCmd() tea.Cmd {
	return func() tea.Msg {
		snap, err := v.shop.Snapshot(v.ctx)
		if err != nil {
			return shopErrMsg{err}
		}
		return shopSnapshotMsg{snap}
	}
}

func (v *shopView) addCmd(id string) tea.Cmd {
	return func() tea.Msg {
		snap, err := v.shop.AddToCart(v.ctx, id)
		if err != nil {
			return shopErrMsg{err}
		}
		return shopSnapshotMsg{snap}
	}
}

func (v *shopView) removeCmd(id string) tea.Cmd {
	return func() tea.Msg {
		snap, err := v.shop.RemoveFromCart(v.ctx, id)
		if err != nil {
			return shopErrMsg{err}
		}
		return shopSnapshotMsg{snap}
	}
}

func (v *shopView) checkoutCmd() tea.Cmd {
	return func() tea.Msg {
		order, err := v.shop.Checkout(v.ctx)
		if err != nil {
			return shopErrMsg{err}
		}
		return checkoutDoneMsg{order}
	}
}

func (v *shopView) Update(msg tea.Msg) tea.Cmd {
	switch m := msg.(type) {
	case shopSnapshotMsg:
		v.loaded = true
		v.st.Dispatch(store.ReceiveProducts(m.snap.Products))
		v.st.Dispatch(store.ReceiveCart(m.snap.Cart))
	case checkoutDoneMsg:
		v.st.Dispatch(store.CheckoutSuccess())
		v.status = fmt.Sprintf("Order %s placed: %d items, %s", shortID(m.order.ID), m.order.ItemCount, formatCents(m.order.TotalCents))
		return v.loadCmd()
	case shopErrMsg:
		switch {
		case errors.Is(m.err, service.ErrCheckoutDeclined):
			v.status = ""
			v.st.Dispatch(store.CheckoutFailure(store.CheckoutFailedMessage))
		case errors.Is(m.err, service.ErrEmptyCart):
			v.status = "Your cart is empty."
		case errors.Is(m.err, repository.ErrOutOfStock):
			v.status = "Sold out."
		default:
			v.status = "error: " + m.err.Error()
		}
	case tea.KeyMsg:
		return v.handleKey(m)
	}
	return nil
}

func (v *shopView) handleKey(m tea.KeyMsg) tea.Cmd {
	if v.shop == nil {
		return nil
	}
	switch {
	case key.Matches(m, v.keys.Up):
		if v.cursor > 0 {
			v.cursor--
		}
	case key.Matches(m, v.keys.Down):
		if v.cursor < len(v.products)-1 {
			v.cursor++
		}
	case key.Matches(m, v.keys.Add):
		if len(v.products) == 0 {
			return nil
		}
		v.status = ""
		return v.addCmd(v.products[v.cursor].ID)
	case key.Matches(m, v.keys.Remove):
		if len(v.products) == 0 {
			return nil
		}
		v.status = ""
		return v.removeCmd(v.products[v.cursor].ID)
	case key.Matches(m, v.keys.Checkout):
		v.status = "checking out..."
		return v.checkoutCmd()
	}
	return nil
}

func (v *shopView) View(width int) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Shopping"))
	b.WriteString("\n")
	if v.shop == nil {
		b.WriteString("The catalog is unavailable.")
		return b.String()
	}
	if !v.loaded && len(v.products) == 0 {
		b.WriteString("Loading products...")
		return b.String()
	}
	b.WriteString("Products\n")
	titleWidth := max(width-24, 10)
	for i, p := range v.products {
		marker := " "
		if i == v.cursor {
			marker = "▶"
		}
		stock := fmt.Sprintf("%d left", p.Inventory)
		if p.Inventory == 0 {
			stock = "sold out"
		}
		fmt.Fprintf(&b, "%s %-*s %8s  %s\n", marker, titleWidth, truncate(p.Title, titleWidth), formatCents(p.PriceCents), stock)
	}

	b.WriteString("\nYour cart\n")
	if len(v.items) == 0 {
		b.WriteString("  Please add some products to cart.\n")
	}
	for _, it := range v.items {
		fmt.Fprintf(&b, "  %s: %d * %s\n", it.Title, it.Amount, formatCents(it.PriceCents))
	}
	fmt.Fprintf(&b, "Total: %s", formatCents(v.total))
	if v.errText != "" {
		b.WriteString("\n" + errorStyle.Render(v.errText))
	}
	if v.status != "" {
		b.WriteString("\n" + statusStyle.Render(v.status))
	}
	return b.String()
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 1 {
		return string(r[:n])
	}
	return string(r[:n-1]) + "…"
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
