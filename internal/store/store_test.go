package store

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSubscribersSeeSnapshotsInOrder(t *testing.T) {
	t.Parallel()

	s := New(Reduce, Initial())
	var calls []string
	var first, second State
	s.Subscribe(func(st State) { calls = append(calls, "a"); first = st })
	s.Subscribe(func(st State) { calls = append(calls, "b"); second = st })

	s.Dispatch(UpdatePage(PageCounter))

	require.Equal(t, []string{"a", "b"}, calls)
	require.Equal(t, PageCounter, first.App.Page)
	require.Equal(t, first, second)
	require.Equal(t, PageCounter, s.State().App.Page)
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	t.Parallel()

	s := New(Reduce, Initial())
	n := 0
	unsubscribe := s.Subscribe(func(State) { n++ })
	s.Dispatch(Increment())
	unsubscribe()
	unsubscribe()
	s.Dispatch(Increment())

	require.Equal(t, 1, n)
	require.Equal(t, 2, s.State().Counter.Value)
}

func TestSubscriberMayDispatch(t *testing.T) {
	t.Parallel()

	s := New(Reduce, Initial())
	s.Subscribe(func(st State) {
		if st.App.Page == PageShopping && !st.App.WideLayout {
			s.Dispatch(UpdateLayout(true))
		}
	})
	s.Dispatch(UpdatePage(PageShopping))
	require.True(t, s.State().App.WideLayout)
}

func TestDispatchFromSubscriberKeepsLaterSubscribersCurrent(t *testing.T) {
	t.Parallel()

	s := New(Reduce, Initial())
	s.Subscribe(func(st State) {
		if st.App.Page == PageShopping && !st.App.WideLayout {
			s.Dispatch(UpdateLayout(true))
		}
	})
	var seen []bool
	var mirrored State
	s.Subscribe(func(st State) {
		seen = append(seen, st.App.WideLayout)
		mirrored = st
	})

	s.Dispatch(UpdatePage(PageShopping))

	require.Equal(t, []bool{false, true}, seen)
	require.Equal(t, s.State(), mirrored)
}

func TestQueuedDispatchesReduceInOrder(t *testing.T) {
	t.Parallel()

	s := New(Reduce, Initial())
	var pages []string
	s.Subscribe(func(st State) {
		if st.App.Page == PageCounter {
			s.Dispatch(UpdatePage(PageCounterWithRedux))
			s.Dispatch(UpdatePage(PageShopping))
		}
	})
	s.Subscribe(func(st State) { pages = append(pages, st.App.Page) })

	s.Dispatch(UpdatePage(PageCounter))

	require.Equal(t, []string{PageCounter, PageCounterWithRedux, PageShopping}, pages)
	require.Equal(t, PageShopping, s.State().App.Page)
}

func TestNilActionIgnored(t *testing.T) {
	t.Parallel()

	s := New(Reduce, Initial())
	n := 0
	s.Subscribe(func(State) { n++ })
	s.Dispatch(nil)
	require.Zero(t, n)
}

func TestPageFromPath(t *testing.T) {
	t.Parallel()

	cases := []struct {
		path string
		opts NavigateOptions
		want string
	}{
		{"/", NavigateOptions{}, PageStaticContent},
		{"", NavigateOptions{}, PageStaticContent},
		{"/", NavigateOptions{DefaultPage: PageShopping}, PageShopping},
		{"/counter", NavigateOptions{}, PageCounter},
		{"/counter-with-redux", NavigateOptions{}, PageCounterWithRedux},
		{"/does-not-exist", NavigateOptions{}, "does-not-exist"},
		{"/does-not-exist", NavigateOptions{NotFoundFallback: true}, PageNotFound},
		{"/shopping", NavigateOptions{NotFoundFallback: true}, PageShopping},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, PageFromPath(tc.path, tc.opts), "path %q", tc.path)
	}
}

func TestThunkSeesCurrentState(t *testing.T) {
	t.Parallel()

	s := New(Reduce, Initial())
	s.Dispatch(Navigate("/counter", NavigateOptions{}))

	var seen string
	s.Dispatch(Thunk(func(d Dispatcher, getState func() State) {
		seen = getState().App.Page
		d.Dispatch(Increment())
	}))
	require.Equal(t, PageCounter, seen)
	require.Equal(t, 1, s.State().Counter.Value)
}

func TestUpdateOfflineOpensSnackbarOnlyOnChange(t *testing.T) {
	t.Parallel()

	s := New(Reduce, Initial())
	s.Dispatch(UpdateOffline(false))
	require.False(t, s.State().App.SnackbarOpened)

	s.Dispatch(UpdateOffline(true))
	st := s.State()
	require.True(t, st.App.Offline)
	require.True(t, st.App.SnackbarOpened)
	require.Equal(t, 1, st.App.SnackbarSeq)

	s.Dispatch(UpdateOffline(true))
	require.Equal(t, 1, s.State().App.SnackbarSeq)
}

func TestStaleSnackbarCloseIgnored(t *testing.T) {
	t.Parallel()

	s := New(Reduce, Initial())
	s.Dispatch(ShowSnackbar())
	s.Dispatch(ShowSnackbar())

	s.Dispatch(CloseSnackbar(1))
	require.True(t, s.State().App.SnackbarOpened)

	s.Dispatch(CloseSnackbar(2))
	require.False(t, s.State().App.SnackbarOpened)
}

func TestUpdateLayout(t *testing.T) {
	t.Parallel()

	s := New(Reduce, Initial())
	s.Dispatch(UpdateLayout(true))
	require.True(t, s.State().App.WideLayout)
	s.Dispatch(UpdateLayout(false))
	require.False(t, s.State().App.WideLayout)
}

func TestCounterReducer(t *testing.T) {
	t.Parallel()

	s := New(Reduce, Initial())
	s.Dispatch(Increment())
	s.Dispatch(Increment())
	s.Dispatch(Decrement())
	require.Equal(t, CounterState{Clicks: 3, Value: 1}, s.State().Counter)
}

func TestShopReducerAndSelectors(t *testing.T) {
	t.Parallel()

	s := New(Reduce, Initial())
	s.Dispatch(ReceiveProducts([]Product{
		{ID: "a", Title: "Cheddar", PriceCents: 995, Inventory: 2},
		{ID: "b", Title: "Halloumi", PriceCents: 1199, Inventory: 3},
	}))
	s.Dispatch(ReceiveCart(Cart{
		AddedIDs:     []string{"b", "a", "gone"},
		QuantityByID: map[string]int{"a": 2, "b": 1, "gone": 0},
	}))

	st := s.State()
	require.Equal(t, []string{"a", "b"}, st.Shop.ProductOrder)
	require.Equal(t, []string{"b", "a"}, st.Shop.Cart.AddedIDs)
	require.Equal(t, 3, CartQuantity(st))
	require.Equal(t, int64(1199+2*995), CartTotalCents(st))
	items := CartItems(st)
	require.Len(t, items, 2)
	require.Equal(t, "Halloumi", items[0].Title)

	s.Dispatch(CheckoutFailure(""))
	require.Equal(t, CheckoutFailedMessage, s.State().Shop.Error)

	s.Dispatch(CheckoutSuccess())
	st = s.State()
	require.Empty(t, st.Shop.Error)
	require.Zero(t, CartQuantity(st))
}

func TestLoggingReducer(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	s := New(Logging(logger, Reduce), Initial())
	s.Dispatch(Increment())

	require.Contains(t, buf.String(), "type=INCREMENT")
	require.Equal(t, 1, s.State().Counter.Value)
}
