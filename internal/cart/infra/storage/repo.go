package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/techmart/storefront/internal/cart/domain"
)

// cartKey is the single key the whole cart lives under.
const cartKey = "cart"

// KV is the durable key-value port the cart repo writes through.
type KV interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
}

// CartRepo persists the cart as one JSON array under a single key. Reads
// that fail for any reason fall back to the seed collection; the seed is
// never written back on its own.
type CartRepo struct {
	kv  KV
	log *slog.Logger
}

func NewCartRepo(kv KV, log *slog.Logger) *CartRepo {
	return &CartRepo{kv: kv, log: log}
}

// Load returns the persisted cart, or the seed collection when the value is
// absent, malformed, or the store is unavailable. It never fails.
func (r *CartRepo) Load(ctx context.Context) domain.Cart {
	raw, ok, err := r.kv.Get(ctx, cartKey)
	if err != nil {
		r.log.Warn("cart store unreadable, using seed", slog.Any("err", err))
		return Seed()
	}
	if !ok {
		return Seed()
	}

	var cart domain.Cart
	if err := json.Unmarshal([]byte(raw), &cart); err != nil {
		r.log.Warn("cart payload malformed, using seed", slog.Any("err", err))
		return Seed()
	}
	if cart == nil {
		// A literal "null" decodes cleanly to nothing.
		return Seed()
	}

	return cart
}

// Save serializes and writes the full cart, replacing any prior value.
func (r *CartRepo) Save(ctx context.Context, cart domain.Cart) error {
	raw, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	if err := r.kv.Set(ctx, cartKey, string(raw)); err != nil {
		return fmt.Errorf("write cart: %w", err)
	}
	return nil
}
