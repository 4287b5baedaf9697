// Package store holds the application state container: a single reducer-driven
// state tree with synchronous subscribers and thunk support.
package store

// Known page identifiers.
const (
	PageStaticContent    = "static-content"
	PageCounter          = "counter"
	PageCounterWithRedux = "counter-with-redux"
	PageShopping         = "shopping"
	PageNotFound         = "view404"
)

// Pages lists the known page identifiers in navigation order.
var Pages = []string{PageStaticContent, PageCounter, PageCounterWithRedux, PageShopping, PageNotFound}

// IsKnownPage reports whether page is one of Pages.
func IsKnownPage(page string) bool {
	for _, p := range Pages {
		if p == page {
			return true
		}
	}
	return false
}

// State is the full application state tree.
type State struct {
	App     AppState
	Counter CounterState
	Shop    ShopState
}

// AppState holds shell-level UI state.
type AppState struct {
	Page           string
	Offline        bool
	SnackbarOpened bool
	// SnackbarSeq increments every time the snack-bar opens so a pending close
	// can tell whether it still applies.
	SnackbarSeq int
	WideLayout  bool
}

// CounterState is the store-backed counter.
type CounterState struct {
	Clicks int
	Value  int
}

// Product is a catalog entry.
type Product struct {
	ID         string
	Title      string
	PriceCents int64
	Inventory  int
}

// Cart tracks product ids in the order they were first added.
type Cart struct {
	AddedIDs     []string
	QuantityByID map[string]int
}

// ShopState holds the catalog, the cart and the last checkout error.
type ShopState struct {
	Products map[string]Product
	// ProductOrder lists product ids in catalog order.
	ProductOrder []string
	Cart         Cart
	Error        string
}

// Initial returns the state a fresh store starts with.
func Initial() State {
	return State{
		Shop: ShopState{
			Products: map[string]Product{},
			Cart:     Cart{QuantityByID: map[string]int{}},
		},
	}
}
