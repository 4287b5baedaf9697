package store

// Reduce is the root reducer combining the app, counter and shop slices.
func Reduce(s State, a Action) State {
	return State{
		App:     reduceApp(s.App, a),
		Counter: reduceCounter(s.Counter, a),
		Shop:    reduceShop(s.Shop, a),
	}
}

func reduceApp(s AppState, a Action) AppState {
	switch act := a.(type) {
	case UpdatePageAction:
		s.Page = act.Page
	case UpdateOfflineAction:
		s.Offline = act.Offline
	case UpdateLayoutAction:
		s.WideLayout = act.Wide
	case OpenSnackbarAction:
		s.SnackbarOpened = true
		s.SnackbarSeq++
	case CloseSnackbarAction:
		if act.Seq == s.SnackbarSeq {
			s.SnackbarOpened = false
		}
	}
	return s
}

func reduceCounter(s CounterState, a Action) CounterState {
	switch a.(type) {
	case IncrementAction:
		s.Clicks++
		s.Value++
	case DecrementAction:
		s.Clicks++
		s.Value--
	}
	return s
}

func reduceShop(s ShopState, a Action) ShopState {
	switch act := a.(type) {
	case ReceiveProductsAction:
		products := make(map[string]Product, len(act.Products))
		order := make([]string, 0, len(act.Products))
		for _, p := range act.Products {
			if _, dup := products[p.ID]; !dup {
				order = append(order, p.ID)
			}
			products[p.ID] = p
		}
		s.Products = products
		s.ProductOrder = order
		s.Error = ""
	case ReceiveCartAction:
		s.Cart = copyCart(act.Cart)
		s.Error = ""
	case CheckoutSuccessAction:
		s.Cart = Cart{QuantityByID: map[string]int{}}
		s.Error = ""
	case CheckoutFailureAction:
		s.Error = act.Message
	}
	return s
}

func copyCart(c Cart) Cart {
	out := Cart{
		AddedIDs:     make([]string, 0, len(c.AddedIDs)),
		QuantityByID: make(map[string]int, len(c.QuantityByID)),
	}
	for _, id := range c.AddedIDs {
		if c.QuantityByID[id] <= 0 {
			continue
		}
		out.AddedIDs = append(out.AddedIDs, id)
		out.QuantityByID[id] = c.QuantityByID[id]
	}
	return out
}
