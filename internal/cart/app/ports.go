package app

import (
	"context"

	"github.com/techmart/storefront/internal/cart/domain"
)

// CartRepo is the persistence port. Load never fails: an absent, corrupt,
// or unreadable store yields the seed cart. Save replaces the whole
// collection, never a partial update.
type CartRepo interface {
	Load(ctx context.Context) domain.Cart
	Save(ctx context.Context, cart domain.Cart) error
}

// Confirmer gates destructive operations. Implementations decide how the
// question reaches the user; declining is a no-op, not an error.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) bool
}

// ConfirmFunc adapts a plain function to the Confirmer port.
type ConfirmFunc func(ctx context.Context, prompt string) bool

func (f ConfirmFunc) Confirm(ctx context.Context, prompt string) bool {
	return f(ctx, prompt)
}

// Notifier publishes transient status messages after mutations.
type Notifier interface {
	Success(message string)
	Info(message string)
}
