package cart

import (
	"context"
	"io"
	"log"
	"sync"

	"manox/internal/cartstore"
	"manox/internal/domain"

	"github.com/shopspring/decimal"
)

// Facade is the public cart API: it applies reducer actions in call
// order and mirrors every accepted mutation to the injected store.
// Persistence is best effort; a failed save is logged and the
// in-memory state stays authoritative for the session.
type Facade struct {
	mu     sync.Mutex
	state  domain.Cart
	store  cartstore.Store
	logger *log.Logger
}

// New builds a Facade and hydrates it from the store. A missing or
// unreadable persisted cart falls back to an empty one.
func New(ctx context.Context, store cartstore.Store, logger *log.Logger) *Facade {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	f := &Facade{store: store, logger: logger}
	prior, err := store.Load(ctx)
	if err != nil {
		logger.Printf("cart: load failed, starting empty: %v", err)
	}
	if prior != nil {
		f.state = Reduce(domain.Cart{}, Hydrate{State: *prior})
	}
	return f
}

// AddItem adds a snapshot item (or bumps the quantity of an existing
// entry) and returns the new state.
func (f *Facade) AddItem(ctx context.Context, item domain.CartItem) domain.Cart {
	return f.apply(ctx, Add{Item: item})
}

// RemoveItem drops the entry for productID, if present.
func (f *Facade) RemoveItem(ctx context.Context, productID string) domain.Cart {
	return f.apply(ctx, Remove{ProductID: productID})
}

// UpdateQty sets the quantity of the entry for productID, if present.
func (f *Facade) UpdateQty(ctx context.Context, productID string, qty int) domain.Cart {
	return f.apply(ctx, UpdateQty{ProductID: productID, Qty: qty})
}

// Clear empties the cart.
func (f *Facade) Clear(ctx context.Context) domain.Cart {
	return f.apply(ctx, Clear{})
}

func (f *Facade) apply(ctx context.Context, action Action) domain.Cart {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state = Reduce(f.state, action)
	if err := f.store.Save(ctx, f.state); err != nil {
		f.logger.Printf("cart: save failed, in-memory state is the only copy: %v", err)
	}
	return f.state
}

// State returns a snapshot of the current cart.
func (f *Facade) State() domain.Cart {
	f.mu.Lock()
	defer f.mu.Unlock()
	return domain.Cart{Items: copyItems(f.state.Items)}
}

// Items returns a copy of the current items.
func (f *Facade) Items() []domain.CartItem {
	return f.State().Items
}

// ItemCount is the sum of quantities across all entries.
func (f *Facade) ItemCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state.ItemCount()
}

// Subtotal is the sum of price*qty across all entries.
func (f *Facade) Subtotal() decimal.Decimal {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state.Subtotal()
}
