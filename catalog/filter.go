package catalog

import (
	"sort"
	"strings"

	"github.com/projxchange/marketplace-client/models"
)

// FilterAndSort returns the subset of projects matching every filter in q,
// ordered by q.SortBy. The input slice is never mutated and the result is
// always a fresh slice; ties under any sort key keep their catalog order.
func FilterAndSort(projects []models.Project, q Query) []models.Project {
	filtered := make([]models.Project, 0, len(projects))
	for _, p := range projects {
		if matches(p, q) {
			filtered = append(filtered, p)
		}
	}

	sort.SliceStable(filtered, less(filtered, q.SortBy))
	return filtered
}

// matches applies the four filter predicates: all must pass, while the tag
// predicate is an OR across the selected tags.
func matches(p models.Project, q Query) bool {
	return matchesSearch(p, q.SearchTerm) &&
		matchesCategory(p, q.Category) &&
		matchesPrice(p, q.PriceRange) &&
		matchesTags(p, q.SelectedTags)
}

func matchesSearch(p models.Project, term string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	if strings.Contains(strings.ToLower(p.Title), term) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Description), term) {
		return true
	}
	for _, tag := range p.TechStack {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}

// Category comparison is exact; the stored category strings are a fixed set.
func matchesCategory(p models.Project, category string) bool {
	return category == CategoryAll || category == "" || p.Category == category
}

func matchesPrice(p models.Project, r PriceRange) bool {
	return p.Price >= r.Min && p.Price <= r.Max
}

func matchesTags(p models.Project, selected []string) bool {
	if len(selected) == 0 {
		return true
	}
	for _, tag := range selected {
		if p.HasTag(tag) {
			return true
		}
	}
	return false
}

// less builds the comparison for sort.SliceStable. Missing dates sort as
// earliest, missing ratings and like counters as zero.
func less(projects []models.Project, key SortKey) func(i, j int) bool {
	switch key {
	case SortOldest:
		return func(i, j int) bool { return projects[i].AddedAt().Before(projects[j].AddedAt()) }
	case SortPriceLow:
		return func(i, j int) bool { return projects[i].Price < projects[j].Price }
	case SortPriceHigh:
		return func(i, j int) bool { return projects[i].Price > projects[j].Price }
	case SortRating:
		return func(i, j int) bool { return projects[i].RatingValue() > projects[j].RatingValue() }
	case SortPopular:
		return func(i, j int) bool { return projects[i].LikeCount() > projects[j].LikeCount() }
	case SortTrending:
		return func(i, j int) bool { return projects[i].Trending && !projects[j].Trending }
	case SortNewest:
		fallthrough
	default:
		return func(i, j int) bool { return projects[i].AddedAt().After(projects[j].AddedAt()) }
	}
}
