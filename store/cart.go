package store

import (
	"context"
	"sync"

	"github.com/projxchange/marketplace-client/client"
	"github.com/projxchange/marketplace-client/errs"
	"github.com/projxchange/marketplace-client/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Cart mirrors the current user's cart. Mutations go to the backend first;
// on success the mirror is replaced wholesale by a fresh fetch, so the local
// collection only ever holds what the backend last reported.
type Cart struct {
	client   *client.Client
	notifier Notifier
	logger   zerolog.Logger

	mu    sync.Mutex
	items []models.CartItem
	state State
	// fetchSeq numbers every dispatched fetch; a response is applied only if
	// no newer fetch was dispatched while it was in flight. Without this,
	// rapid-fire mutations could let an older snapshot overwrite a newer one.
	fetchSeq uint64
}

func NewCart(c *client.Client, n Notifier) *Cart {
	return &Cart{
		client:   c,
		notifier: n,
		logger:   log.With().Str("component", "cartStore").Logger(),
		state:    StateEmpty,
	}
}

// Fetch replaces the mirror with the backend's snapshot. Without a session
// the mirror is simply empty and no request is issued. Fetch failures keep
// the previous mirror; they are logged, not notified, matching how the
// original client treated background refresh errors.
func (c *Cart) Fetch(ctx context.Context) {
	if !c.client.Authenticated() {
		c.Reset()
		return
	}

	c.mu.Lock()
	c.fetchSeq++
	seq := c.fetchSeq
	prev := c.state
	c.state = StateLoading
	c.mu.Unlock()

	items, err := c.client.FetchCart(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if seq != c.fetchSeq {
		// A newer fetch was dispatched while this one was in flight; its
		// result is stale and must not overwrite the mirror.
		return
	}
	if err != nil {
		c.logger.Error().Err(err).Msg("failed to fetch cart")
		c.state = prev
		return
	}
	c.items = items
	c.state = StateSynced
}

// Add puts a project in the cart and resynchronizes. There is no optimistic
// local insert: until the follow-up fetch lands, the mirror is unchanged.
func (c *Cart) Add(ctx context.Context, projectID string) {
	if !c.client.Authenticated() {
		c.notifier.Error(errs.NewUnauthenticated("add items to cart").Message())
		return
	}

	prev := c.beginMutation()
	if err := c.client.AddToCart(ctx, projectID); err != nil {
		c.endMutation(prev)
		c.notifier.Error(errs.UserMessage(err))
		return
	}
	c.endMutation(prev)
	c.Fetch(ctx)
	c.notifier.Success("Added to cart!")
}

// Remove deletes the cart entry for a project and resynchronizes.
func (c *Cart) Remove(ctx context.Context, projectID string) {
	if !c.client.Authenticated() {
		c.notifier.Error(errs.NewUnauthenticated("remove items from cart").Message())
		return
	}

	prev := c.beginMutation()
	if err := c.client.RemoveFromCart(ctx, projectID); err != nil {
		c.endMutation(prev)
		c.notifier.Error(errs.UserMessage(err))
		return
	}
	c.endMutation(prev)
	c.Fetch(ctx)
	c.notifier.Success("Removed from cart")
}

// Clear empties the cart. This is the one mutation that updates the mirror
// directly: the remote call is a full reset, so the resulting state is known
// without a fetch.
func (c *Cart) Clear(ctx context.Context) {
	if !c.client.Authenticated() {
		c.notifier.Error(errs.NewUnauthenticated("clear your cart").Message())
		return
	}

	prev := c.beginMutation()
	if err := c.client.ClearCart(ctx); err != nil {
		c.endMutation(prev)
		c.notifier.Error(errs.UserMessage(err))
		return
	}

	c.mu.Lock()
	// Invalidate any fetch still in flight: its pre-clear snapshot must not
	// resurrect the emptied mirror.
	c.fetchSeq++
	c.items = nil
	c.state = StateSynced
	c.mu.Unlock()
	c.notifier.Success("Cart cleared")
}

// IsInCart reports whether the mirror holds an entry for the project. Pure
// lookup, no network.
func (c *Cart) IsInCart(projectID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, item := range c.items {
		if item.ProjectID == projectID {
			return true
		}
	}
	return false
}

// TotalPrice sums the sale price snapshots across the mirror.
func (c *Cart) TotalPrice() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	var total float64
	for _, item := range c.items {
		total += item.Project.Pricing.SalePrice
	}
	return total
}

// ItemCount returns the number of mirrored entries.
func (c *Cart) ItemCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Items returns a copy of the mirror.
func (c *Cart) Items() []models.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.CartItem, len(c.items))
	copy(out, c.items)
	return out
}

// State reports the container's lifecycle state.
func (c *Cart) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Reset drops the mirror, returning the container to its no-session state.
// Called on logout; invalidates any fetch still in flight.
func (c *Cart) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fetchSeq++
	c.items = nil
	c.state = StateEmpty
}

// SessionStarted pulls the initial snapshot for a fresh session.
func (c *Cart) SessionStarted(ctx context.Context) {
	c.Fetch(ctx)
}

// beginMutation flips the container into Mutating and returns the state to
// restore once the request resolves.
func (c *Cart) beginMutation() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	prev := c.state
	c.state = StateMutating
	return prev
}

func (c *Cart) endMutation(prev State) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == StateMutating {
		c.state = prev
	}
}
