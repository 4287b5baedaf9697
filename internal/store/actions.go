package store

import "strings"

// Action type names.
const (
	TypeUpdatePage      = "UPDATE_PAGE"
	TypeUpdateOffline   = "UPDATE_OFFLINE"
	TypeUpdateLayout    = "UPDATE_LAYOUT"
	TypeOpenSnackbar    = "OPEN_SNACKBAR"
	TypeCloseSnackbar   = "CLOSE_SNACKBAR"
	TypeIncrement       = "INCREMENT"
	TypeDecrement       = "DECREMENT"
	TypeReceiveProducts = "GET_PRODUCTS"
	TypeReceiveCart     = "UPDATE_CART"
	TypeCheckoutSuccess = "CHECKOUT_SUCCESS"
	TypeCheckoutFailure = "CHECKOUT_FAILURE"
)

// CheckoutFailedMessage is the error recorded when a checkout is declined.
const CheckoutFailedMessage = "Checkout failed. Please try again"

type UpdatePageAction struct{ Page string }

func (UpdatePageAction) Type() string { return TypeUpdatePage }

type UpdateOfflineAction struct{ Offline bool }

func (UpdateOfflineAction) Type() string { return TypeUpdateOffline }

type UpdateLayoutAction struct{ Wide bool }

func (UpdateLayoutAction) Type() string { return TypeUpdateLayout }

type OpenSnackbarAction struct{}

func (OpenSnackbarAction) Type() string { return TypeOpenSnackbar }

// CloseSnackbarAction closes the snack-bar opened with Seq. Closes for an
// older Seq are ignored.
type CloseSnackbarAction struct{ Seq int }

func (CloseSnackbarAction) Type() string { return TypeCloseSnackbar }

type IncrementAction struct{}

func (IncrementAction) Type() string { return TypeIncrement }

type DecrementAction struct{}

func (DecrementAction) Type() string { return TypeDecrement }

type ReceiveProductsAction struct{ Products []Product }

func (ReceiveProductsAction) Type() string { return TypeReceiveProducts }

type ReceiveCartAction struct{ Cart Cart }

func (ReceiveCartAction) Type() string { return TypeReceiveCart }

type CheckoutSuccessAction struct{}

func (CheckoutSuccessAction) Type() string { return TypeCheckoutSuccess }

type CheckoutFailureAction struct{ Message string }

func (CheckoutFailureAction) Type() string { return TypeCheckoutFailure }

// NavigateOptions controls how a path maps onto a page.
type NavigateOptions struct {
	// DefaultPage is used for the root path. Empty means PageStaticContent.
	DefaultPage string
	// NotFoundFallback maps unknown page ids to PageNotFound. When false the
	// id is stored as-is and no view becomes active.
	NotFoundFallback bool
}

// PageFromPath maps a decoded location path onto a page identifier.
func PageFromPath(path string, opts NavigateOptions) string {
	if path == "/" || path == "" {
		if opts.DefaultPage != "" {
			return opts.DefaultPage
		}
		return PageStaticContent
	}
	page := strings.TrimPrefix(path, "/")
	if opts.NotFoundFallback && !IsKnownPage(page) {
		return PageNotFound
	}
	return page
}

// Navigate updates the current page for a decoded location path.
func Navigate(path string, opts NavigateOptions) Action {
	return UpdatePage(PageFromPath(path, opts))
}

func UpdatePage(page string) Action { return UpdatePageAction{Page: page} }

// UpdateOffline records connectivity and opens the snack-bar when it changed.
func UpdateOffline(offline bool) Thunk {
	return func(d Dispatcher, getState func() State) {
		if offline != getState().App.Offline {
			d.Dispatch(ShowSnackbar())
		}
		d.Dispatch(UpdateOfflineAction{Offline: offline})
	}
}

// UpdateLayout records whether the wide layout applies.
func UpdateLayout(wide bool) Action { return UpdateLayoutAction{Wide: wide} }

func ShowSnackbar() Action { return OpenSnackbarAction{} }

func CloseSnackbar(seq int) Action { return CloseSnackbarAction{Seq: seq} }

func Increment() Action { return IncrementAction{} }

func Decrement() Action { return DecrementAction{} }

func ReceiveProducts(products []Product) Action { return ReceiveProductsAction{Products: products} }

func ReceiveCart(cart Cart) Action { return ReceiveCartAction{Cart: cart} }

func CheckoutSuccess() Action { return CheckoutSuccessAction{} }

func CheckoutFailure(message string) Action {
	if message == "" {
		message = CheckoutFailedMessage
	}
	return CheckoutFailureAction{Message: message}
}
