package models

import "time"

// Pricing is the price snapshot embedded in a line item at add-time.
type Pricing struct {
	SalePrice     float64 `json:"sale_price"`
	OriginalPrice float64 `json:"original_price"`
	Currency      string  `json:"currency"`
}

// ProjectSummary is the project snapshot carried by cart and wishlist entries.
// It reflects the listing as it was when the item was added; the live listing
// is the catalog's business, not the line item's.
type ProjectSummary struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Pricing     Pricing `json:"pricing"`
	Thumbnail   *string `json:"thumbnail,omitempty"`
}

// CartItem is one cart entry owned by a single user. The backend is the
// authoritative store; local copies are caches refreshed after every mutation.
type CartItem struct {
	ID        string         `json:"id"`
	ProjectID string         `json:"project_id"`
	UserID    string         `json:"user_id"`
	CreatedAt time.Time      `json:"created_at"`
	Project   ProjectSummary `json:"project"`
}

// WishlistItem is one wishlist entry, shaped identically to CartItem.
type WishlistItem struct {
	ID        string         `json:"id"`
	ProjectID string         `json:"project_id"`
	UserID    string         `json:"user_id"`
	CreatedAt time.Time      `json:"created_at"`
	Project   ProjectSummary `json:"project"`
}
