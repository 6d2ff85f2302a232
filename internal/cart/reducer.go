package cart

import "manox/internal/domain"

// Action is a cart state transition command. The set is closed:
// Hydrate, Add, Remove, UpdateQty and Clear are the only commands the
// reducer understands.
type Action interface {
	isAction()
}

// Hydrate replaces the state wholesale with a previously persisted
// cart. Used once, at startup.
type Hydrate struct {
	State domain.Cart
}

// Add appends a snapshot item, or increments the quantity when an
// entry with the same product id already exists. On a duplicate add
// the existing entry's title, price and image win; the incoming
// snapshot's values are discarded.
type Add struct {
	Item domain.CartItem
}

// Remove drops the entry with the given product id. Unknown ids are a
// no-op, not an error.
type Remove struct {
	ProductID string
}

// UpdateQty sets the quantity of an existing entry. The caller is
// responsible for qty >= 1; the reducer does not clamp. Unknown ids
// are a no-op.
type UpdateQty struct {
	ProductID string
	Qty       int
}

// Clear empties the cart.
type Clear struct{}

func (Hydrate) isAction()   {}
func (Add) isAction()       {}
func (Remove) isAction()    {}
func (UpdateQty) isAction() {}
func (Clear) isAction()     {}

// Reduce applies an action to a cart and returns the next state. It
// is pure: no I/O, no randomness, and the input state is never
// mutated, so previous values stay valid as snapshots. Every action
// has a defined transition, which makes the function total.
func Reduce(state domain.Cart, action Action) domain.Cart {
	switch a := action.(type) {
	case Hydrate:
		return domain.Cart{Items: copyItems(a.State.Items)}
	case Add:
		for idx, it := range state.Items {
			if it.ProductID == a.Item.ProductID {
				items := copyItems(state.Items)
				items[idx].Qty += a.Item.Qty
				return domain.Cart{Items: items}
			}
		}
		items := make([]domain.CartItem, 0, len(state.Items)+1)
		items = append(items, state.Items...)
		items = append(items, a.Item)
		return domain.Cart{Items: items}
	case Remove:
		items := make([]domain.CartItem, 0, len(state.Items))
		for _, it := range state.Items {
			if it.ProductID != a.ProductID {
				items = append(items, it)
			}
		}
		return domain.Cart{Items: items}
	case UpdateQty:
		items := copyItems(state.Items)
		for idx := range items {
			if items[idx].ProductID == a.ProductID {
				items[idx].Qty = a.Qty
			}
		}
		return domain.Cart{Items: items}
	case Clear:
		return domain.Cart{Items: []domain.CartItem{}}
	default:
		return state
	}
}

func copyItems(items []domain.CartItem) []domain.CartItem {
	out := make([]domain.CartItem, len(items))
	copy(out, items)
	return out
}
