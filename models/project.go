package models

import (
	"math"
	"time"
)

// Difficulty levels a listing can carry.
const (
	DifficultyBeginner     = "Beginner"
	DifficultyIntermediate = "Intermediate"
	DifficultyAdvanced     = "Advanced"
)

// Project represents a catalog listing as returned by the marketplace API.
// Optional counters and flags are pointers so that "absent" is distinguishable
// from zero; filter/sort logic substitutes defined defaults for nil values.
type Project struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description,omitempty"`
	Category      string     `json:"category"`
	TechStack     []string   `json:"tech_stack,omitempty"`
	Price         float64    `json:"price"`
	OriginalPrice *float64   `json:"original_price,omitempty"`
	Rating        *float64   `json:"rating,omitempty"`
	Reviews       *int       `json:"reviews,omitempty"`
	Likes         *int       `json:"likes,omitempty"`
	Views         *int       `json:"views,omitempty"`
	Downloads     *int       `json:"downloads,omitempty"`
	Sales         *int       `json:"sales,omitempty"`
	GithubStars   *int       `json:"github_stars,omitempty"`
	Featured      bool       `json:"featured,omitempty"`
	Trending      bool       `json:"trending,omitempty"`
	Difficulty    *string    `json:"difficulty,omitempty"`
	DateAdded     *time.Time `json:"date_added,omitempty"`
	Thumbnail     *string    `json:"thumbnail,omitempty"`

	// Admin-facing fields; zero-valued on public catalog responses.
	Status     string `json:"status,omitempty"`
	IsFeatured bool   `json:"is_featured,omitempty"`
	AuthorID   string `json:"author_id,omitempty"`
}

// DiscountPercent returns the percentage knocked off the original price,
// rounded to the nearest whole percent. ok is false when no original price is
// recorded or when it does not exceed the sale price, in which case no
// discount badge is shown.
func (p Project) DiscountPercent() (pct int, ok bool) {
	if p.OriginalPrice == nil || *p.OriginalPrice <= p.Price || *p.OriginalPrice <= 0 {
		return 0, false
	}
	return int(math.Round((*p.OriginalPrice - p.Price) / *p.OriginalPrice * 100)), true
}

// RatingValue returns the rating, or 0 when none is recorded.
func (p Project) RatingValue() float64 {
	if p.Rating == nil {
		return 0
	}
	return *p.Rating
}

// LikeCount returns the like counter, or 0 when none is recorded.
func (p Project) LikeCount() int {
	if p.Likes == nil {
		return 0
	}
	return *p.Likes
}

// AddedAt returns the date the listing was added. Listings without a recorded
// date sort as the earliest possible time.
func (p Project) AddedAt() time.Time {
	if p.DateAdded == nil {
		return time.Time{}
	}
	return *p.DateAdded
}

// HasTag reports whether value appears in the project's tech stack.
func (p Project) HasTag(value string) bool {
	for _, tag := range p.TechStack {
		if tag == value {
			return true
		}
	}
	return false
}
