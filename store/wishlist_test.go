package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWishlistAddResynchronizesFromBackend(t *testing.T) {
	fb := newFakeBackend(t)
	notifier := &recorderNotifier{}
	wishlist := NewWishlist(newTestClient(fb, true), notifier)

	wishlist.SessionStarted(context.Background())
	assert.Equal(t, StateSynced, wishlist.State())

	wishlist.Add(context.Background(), "3")

	assert.True(t, wishlist.IsInWishlist("3"))
	assert.Len(t, wishlist.Items(), 1)
	assert.Equal(t, []string{"Added to wishlist!"}, notifier.allSuccesses())
}

func TestWishlistRemove(t *testing.T) {
	fb := newFakeBackend(t)
	fb.seedWishlist("3", "5")
	notifier := &recorderNotifier{}
	wishlist := NewWishlist(newTestClient(fb, true), notifier)

	wishlist.SessionStarted(context.Background())
	assert.Len(t, wishlist.Items(), 2)

	wishlist.Remove(context.Background(), "3")

	assert.False(t, wishlist.IsInWishlist("3"))
	assert.True(t, wishlist.IsInWishlist("5"))
	assert.Equal(t, []string{"Removed from wishlist"}, notifier.allSuccesses())
}

func TestWishlistUnauthenticatedOperationsStayLocal(t *testing.T) {
	fb := newFakeBackend(t)
	notifier := &recorderNotifier{}
	wishlist := NewWishlist(newTestClient(fb, false), notifier)

	wishlist.Add(context.Background(), "3")
	wishlist.Remove(context.Background(), "3")

	assert.Equal(t, []string{
		"Please login to add items to wishlist",
		"Please login to remove items from wishlist",
	}, notifier.allFailures())
	assert.Equal(t, 0, fb.requestCount())
	assert.Equal(t, StateEmpty, wishlist.State())
}

func TestWishlistFailedMutationKeepsMirror(t *testing.T) {
	fb := newFakeBackend(t)
	fb.seedWishlist("3")
	notifier := &recorderNotifier{}
	wishlist := NewWishlist(newTestClient(fb, true), notifier)

	wishlist.SessionStarted(context.Background())
	fb.failMutations("Project already in wishlist")

	wishlist.Add(context.Background(), "5")

	assert.Equal(t, []string{"Project already in wishlist"}, notifier.allFailures())
	assert.Len(t, wishlist.Items(), 1)
	assert.Equal(t, StateSynced, wishlist.State())
}

func TestWishlistResetDropsMirror(t *testing.T) {
	fb := newFakeBackend(t)
	fb.seedWishlist("3")
	wishlist := NewWishlist(newTestClient(fb, true), &recorderNotifier{})

	wishlist.SessionStarted(context.Background())
	assert.Len(t, wishlist.Items(), 1)

	wishlist.Reset()

	assert.Empty(t, wishlist.Items())
	assert.Equal(t, StateEmpty, wishlist.State())
	assert.False(t, wishlist.IsInWishlist("3"))
}

func TestCartAndWishlistAreIndependent(t *testing.T) {
	fb := newFakeBackend(t)
	notifier := &recorderNotifier{}
	c := newTestClient(fb, true)
	cart := NewCart(c, notifier)
	wishlist := NewWishlist(c, notifier)

	cart.SessionStarted(context.Background())
	wishlist.SessionStarted(context.Background())

	cart.Add(context.Background(), "1")
	wishlist.Add(context.Background(), "3")

	assert.True(t, cart.IsInCart("1"))
	assert.False(t, cart.IsInCart("3"))
	assert.True(t, wishlist.IsInWishlist("3"))
	assert.False(t, wishlist.IsInWishlist("1"))
}
