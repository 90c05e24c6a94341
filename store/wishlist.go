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

// Wishlist mirrors the current user's wishlist. Same reconciliation policy
// as Cart: mutate remotely, then replace the mirror with a fresh fetch.
type Wishlist struct {
	client   *client.Client
	notifier Notifier
	logger   zerolog.Logger

	mu       sync.Mutex
	items    []models.WishlistItem
	state    State
	fetchSeq uint64
}

func NewWishlist(c *client.Client, n Notifier) *Wishlist {
	return &Wishlist{
		client:   c,
		notifier: n,
		logger:   log.With().Str("component", "wishlistStore").Logger(),
		state:    StateEmpty,
	}
}

// Fetch replaces the mirror with the backend's snapshot. No session means an
// empty mirror and no request. Stale responses are discarded by sequence.
func (w *Wishlist) Fetch(ctx context.Context) {
	if !w.client.Authenticated() {
		w.Reset()
		return
	}

	w.mu.Lock()
	w.fetchSeq++
	seq := w.fetchSeq
	prev := w.state
	w.state = StateLoading
	w.mu.Unlock()

	items, err := w.client.FetchWishlist(ctx)

	w.mu.Lock()
	defer w.mu.Unlock()
	if seq != w.fetchSeq {
		return
	}
	if err != nil {
		w.logger.Error().Err(err).Msg("failed to fetch wishlist")
		w.state = prev
		return
	}
	w.items = items
	w.state = StateSynced
}

// Add puts a project on the wishlist and resynchronizes.
func (w *Wishlist) Add(ctx context.Context, projectID string) {
	if !w.client.Authenticated() {
		w.notifier.Error(errs.NewUnauthenticated("add items to wishlist").Message())
		return
	}

	prev := w.beginMutation()
	if err := w.client.AddToWishlist(ctx, projectID); err != nil {
		w.endMutation(prev)
		w.notifier.Error(errs.UserMessage(err))
		return
	}
	w.endMutation(prev)
	w.Fetch(ctx)
	w.notifier.Success("Added to wishlist!")
}

// Remove deletes the wishlist entry for a project and resynchronizes.
func (w *Wishlist) Remove(ctx context.Context, projectID string) {
	if !w.client.Authenticated() {
		w.notifier.Error(errs.NewUnauthenticated("remove items from wishlist").Message())
		return
	}

	prev := w.beginMutation()
	if err := w.client.RemoveFromWishlist(ctx, projectID); err != nil {
		w.endMutation(prev)
		w.notifier.Error(errs.UserMessage(err))
		return
	}
	w.endMutation(prev)
	w.Fetch(ctx)
	w.notifier.Success("Removed from wishlist")
}

// IsInWishlist reports whether the mirror holds an entry for the project.
func (w *Wishlist) IsInWishlist(projectID string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, item := range w.items {
		if item.ProjectID == projectID {
			return true
		}
	}
	return false
}

// Items returns a copy of the mirror.
func (w *Wishlist) Items() []models.WishlistItem {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]models.WishlistItem, len(w.items))
	copy(out, w.items)
	return out
}

// State reports the container's lifecycle state.
func (w *Wishlist) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

// Reset drops the mirror on logout and invalidates in-flight fetches.
func (w *Wishlist) Reset() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.fetchSeq++
	w.items = nil
	w.state = StateEmpty
}

// SessionStarted pulls the initial snapshot for a fresh session.
func (w *Wishlist) SessionStarted(ctx context.Context) {
	w.Fetch(ctx)
}

func (w *Wishlist) beginMutation() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	prev := w.state
	w.state = StateMutating
	return prev
}

func (w *Wishlist) endMutation(prev State) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.state == StateMutating {
		w.state = prev
	}
}
