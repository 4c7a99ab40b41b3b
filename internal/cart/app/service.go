package app

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/techmart/storefront/internal/cart/domain"
)

var (
	ErrIndexOutOfRange = errors.New("cart index out of range")
	ErrInvalidAction   = errors.New("invalid cart action")
)

// Action identifies one of the discrete cart mutations dispatched from the
// rendered page. Indices are positional within the current render order and
// are re-derived from each fresh render, never cached across mutations.
type Action string

const (
	ActionIncrement   Action = "increment"
	ActionDecrement   Action = "decrement"
	ActionSetQuantity Action = "set"
	ActionRemove      Action = "remove"
)

// Service owns every cart mutation. Each operation follows the same cycle:
// load the persisted cart, mutate, write the whole collection back. The
// mutex serializes operations in-process; across processes sharing the same
// store the cycle is last-writer-wins with no merge.
type Service struct {
	mu      sync.Mutex
	repo    CartRepo
	confirm Confirmer
	notify  Notifier
	newID   func() string
}

type Option func(*Service)

// WithIDGenerator overrides how new line item ids are minted.
func WithIDGenerator(gen func() string) Option {
	return func(s *Service) { s.newID = gen }
}

func NewService(repo CartRepo, confirm Confirmer, notify Notifier, opts ...Option) *Service {
	s := &Service{
		repo:    repo,
		confirm: confirm,
		notify:  notify,
		newID: func() string {
			return strconv.FormatInt(time.Now().UnixMilli(), 10)
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Snapshot returns the current persisted cart.
func (s *Service) Snapshot(ctx context.Context) domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.repo.Load(ctx)
}

// ItemCount sums quantities across the cart for the count badge.
func (s *Service) ItemCount(ctx context.Context) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.repo.Load(ctx).TotalQuantity()
}

// AddItem merges the descriptor into the cart: a matching (name, price)
// item gets its quantity bumped, otherwise a new item with quantity one is
// appended. Returns the new total item count.
func (s *Service) AddItem(ctx context.Context, d domain.ProductDescriptor) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.repo.Load(ctx).Add(d, s.newID())
	if err := s.repo.Save(ctx, cart); err != nil {
		return 0, fmt.Errorf("add item: %w", err)
	}

	s.notify.Success("Product added to cart!")
	return cart.TotalQuantity(), nil
}

// IncrementQuantity bumps the quantity of the item at index by one.
func (s *Service) IncrementQuantity(ctx context.Context, index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.repo.Load(ctx)
	if index < 0 || index >= len(cart) {
		return ErrIndexOutOfRange
	}

	cart[index].Quantity++
	if err := s.repo.Save(ctx, cart); err != nil {
		return fmt.Errorf("increment quantity: %w", err)
	}
	return nil
}

// DecrementQuantity lowers the quantity of the item at index by one,
// stopping at the floor. At the floor nothing changes and no write happens;
// removal is never reached by decrementing.
func (s *Service) DecrementQuantity(ctx context.Context, index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.repo.Load(ctx)
	if index < 0 || index >= len(cart) {
		return ErrIndexOutOfRange
	}

	if cart[index].Quantity <= domain.MinQuantity {
		return nil
	}

	cart[index].Quantity--
	if err := s.repo.Save(ctx, cart); err != nil {
		return fmt.Errorf("decrement quantity: %w", err)
	}
	return nil
}

// SetQuantity parses raw as an integer and assigns it to the item at index.
// Unparseable or sub-minimum input clamps to the floor.
func (s *Service) SetQuantity(ctx context.Context, index int, raw string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.repo.Load(ctx)
	if index < 0 || index >= len(cart) {
		return ErrIndexOutOfRange
	}

	qty, err := strconv.Atoi(raw)
	if err != nil {
		qty = domain.MinQuantity
	}
	cart[index].Quantity = domain.ClampQuantity(qty)

	if err := s.repo.Save(ctx, cart); err != nil {
		return fmt.Errorf("set quantity: %w", err)
	}
	return nil
}

// RemoveItem deletes the item at index after the confirmer, prompted with
// the item's name, approves. A declined confirmation leaves the cart
// untouched and is not an error.
func (s *Service) RemoveItem(ctx context.Context, index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.repo.Load(ctx)
	if index < 0 || index >= len(cart) {
		return ErrIndexOutOfRange
	}

	prompt := fmt.Sprintf("Remove %s from cart?", cart[index].Name)
	if !s.confirm.Confirm(ctx, prompt) {
		return nil
	}

	cart = cart.Remove(index)
	if err := s.repo.Save(ctx, cart); err != nil {
		return fmt.Errorf("remove item: %w", err)
	}

	s.notify.Info("Item removed from cart")
	return nil
}

// ApplyAction is the single command dispatch the rendered page posts to.
// payload is only consulted for ActionSetQuantity.
func (s *Service) ApplyAction(ctx context.Context, action Action, index int, payload string) error {
	switch action {
	case ActionIncrement:
		return s.IncrementQuantity(ctx, index)
	case ActionDecrement:
		return s.DecrementQuantity(ctx, index)
	case ActionSetQuantity:
		return s.SetQuantity(ctx, index, payload)
	case ActionRemove:
		return s.RemoveItem(ctx, index)
	default:
		return fmt.Errorf("%w: %q", ErrInvalidAction, action)
	}
}
