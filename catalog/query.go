package catalog

// SortKey selects the ordering applied after filtering.
type SortKey string

const (
	SortNewest    SortKey = "newest"
	SortOldest    SortKey = "oldest"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortRating    SortKey = "rating"
	SortPopular   SortKey = "popular"
	SortTrending  SortKey = "trending"
)

// CategoryAll disables category filtering.
const CategoryAll = "all"

// PriceRange is an inclusive price window. Min > Max matches nothing.
type PriceRange struct {
	Min float64
	Max float64
}

// Query is the ephemeral filter state of a browse session. It is never
// persisted; every field has a neutral default from DefaultQuery.
type Query struct {
	SearchTerm   string
	Category     string
	PriceRange   PriceRange
	SortBy       SortKey
	SelectedTags []string
}

// DefaultQuery mirrors the initial state of the listing page: everything
// visible, newest first.
func DefaultQuery() Query {
	return Query{
		Category:   CategoryAll,
		PriceRange: PriceRange{Min: 0, Max: 100},
		SortBy:     SortNewest,
	}
}
