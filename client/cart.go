package client

import (
	"context"
	"net/http"

	"github.com/projxchange/marketplace-client/models"
)

type cartResponse struct {
	Cart []models.CartItem `json:"cart"`
}

type wishlistResponse struct {
	Wishlist []models.WishlistItem `json:"wishlist"`
}

// addItemRequest is the body for cart and wishlist additions.
type addItemRequest struct {
	ProjectID string `json:"project_id"`
}

// FetchCart retrieves the authoritative cart snapshot for the current user.
func (c *Client) FetchCart(ctx context.Context) ([]models.CartItem, error) {
	var resp cartResponse
	err := c.do(ctx, request{
		method:   http.MethodGet,
		path:     "/cart",
		auth:     true,
		action:   "view your cart",
		fallback: "Failed to load cart",
		out:      &resp,
	})
	if err != nil {
		return nil, err
	}
	return resp.Cart, nil
}

// AddToCart places a project in the cart. The caller is expected to re-fetch
// afterwards; the response body is not a usable snapshot.
func (c *Client) AddToCart(ctx context.Context, projectID string) error {
	return c.do(ctx, request{
		method:   http.MethodPost,
		path:     "/cart",
		body:     addItemRequest{ProjectID: projectID},
		auth:     true,
		action:   "add items to cart",
		fallback: "Failed to add to cart",
	})
}

// RemoveFromCart deletes the cart entry keyed by project id.
func (c *Client) RemoveFromCart(ctx context.Context, projectID string) error {
	return c.do(ctx, request{
		method:   http.MethodDelete,
		path:     "/cart/" + projectID,
		auth:     true,
		action:   "remove items from cart",
		fallback: "Failed to remove from cart",
	})
}

// ClearCart empties the cart in one call.
func (c *Client) ClearCart(ctx context.Context) error {
	return c.do(ctx, request{
		method:   http.MethodDelete,
		path:     "/cart/clear",
		auth:     true,
		action:   "clear your cart",
		fallback: "Failed to clear cart",
	})
}

// FetchWishlist retrieves the authoritative wishlist snapshot.
func (c *Client) FetchWishlist(ctx context.Context) ([]models.WishlistItem, error) {
	var resp wishlistResponse
	err := c.do(ctx, request{
		method:   http.MethodGet,
		path:     "/wishlist",
		auth:     true,
		action:   "view your wishlist",
		fallback: "Failed to load wishlist",
		out:      &resp,
	})
	if err != nil {
		return nil, err
	}
	return resp.Wishlist, nil
}

// AddToWishlist places a project on the wishlist.
func (c *Client) AddToWishlist(ctx context.Context, projectID string) error {
	return c.do(ctx, request{
		method:   http.MethodPost,
		path:     "/wishlist",
		body:     addItemRequest{ProjectID: projectID},
		auth:     true,
		action:   "add items to wishlist",
		fallback: "Failed to add to wishlist",
	})
}

// RemoveFromWishlist deletes the wishlist entry keyed by project id.
func (c *Client) RemoveFromWishlist(ctx context.Context, projectID string) error {
	return c.do(ctx, request{
		method:   http.MethodDelete,
		path:     "/wishlist/" + projectID,
		auth:     true,
		action:   "remove items from wishlist",
		fallback: "Failed to remove from wishlist",
	})
}
