package cartstore

import (
	"context"
	"fmt"

	"manox/internal/domain"
)

// Store is a durable mirror of the in-memory cart. Save overwrites
// the whole persisted state on every call (write-through); Load reads
// it back whole. Load returns (nil, nil) when no prior cart exists.
type Store interface {
	Load(ctx context.Context) (*domain.Cart, error)
	Save(ctx context.Context, state domain.Cart) error
}

// PersistenceError wraps a failed load or save. Callers treat it as
// non-fatal: a failed load means "no prior cart", a failed save means
// the in-memory state is temporarily the only copy.
type PersistenceError struct {
	Op  string // "load" or "save"
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("cart store: %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
