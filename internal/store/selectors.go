package store

// CartItem is a cart line joined with its product.
type CartItem struct {
	ID         string
	Title      string
	Amount     int
	PriceCents int64
}

// CartItems returns the cart lines in the order products were added.
// Lines whose product is no longer in the catalog are skipped.
func CartItems(s State) []CartItem {
	items := make([]CartItem, 0, len(s.Shop.Cart.AddedIDs))
	for _, id := range s.Shop.Cart.AddedIDs {
		p, ok := s.Shop.Products[id]
		if !ok {
			continue
		}
		items = append(items, CartItem{
			ID:         id,
			Title:      p.Title,
			Amount:     s.Shop.Cart.QuantityByID[id],
			PriceCents: p.PriceCents,
		})
	}
	return items
}

// CartTotalCents sums price times quantity across the cart.
func CartTotalCents(s State) int64 {
	var total int64
	for _, item := range CartItems(s) {
		total += item.PriceCents * int64(item.Amount)
	}
	return total
}

// CartQuantity is the number of units in the cart.
func CartQuantity(s State) int {
	n := 0
	for _, id := range s.Shop.Cart.AddedIDs {
		n += s.Shop.Cart.QuantityByID[id]
	}
	return n
}
