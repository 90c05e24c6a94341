package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/projxchange/marketplace-client/catalog"
	"github.com/projxchange/marketplace-client/client"
	"github.com/projxchange/marketplace-client/config"
	"github.com/projxchange/marketplace-client/models"
	"github.com/projxchange/marketplace-client/store"
)

func init() {
	// Keep CLI output readable; structured logs go to stderr.
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
}

// main is a small browse/cart demo over the library. With API_BASE_URL unset
// it filters the built-in sample catalog; with a base URL and API_TOKEN it
// talks to the real backend.
func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Warning: Error loading .env file: %v\n", err)
	}

	cfg := config.New()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if config.GetString(cfg, "LOG_LEVEL", "") == "debug" {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	var (
		search    = flag.String("search", "", "free-text search term")
		category  = flag.String("category", catalog.CategoryAll, "category filter")
		sortBy    = flag.String("sort", string(catalog.SortNewest), "sort key: newest|oldest|price-low|price-high|rating|popular|trending")
		tags      = flag.String("tags", "", "comma-separated technology tags (OR match)")
		minPrice  = flag.Float64("min-price", 0, "minimum price, inclusive")
		maxPrice  = flag.Float64("max-price", 100, "maximum price, inclusive")
		addToCart = flag.String("add-to-cart", "", "project id to add to the cart")
		showCart  = flag.Bool("cart", false, "print the cart contents")
	)
	flag.Parse()

	baseURL := config.GetString(cfg, "API_BASE_URL", "")
	timeout := config.GetDuration(cfg, "REQUEST_TIMEOUT", client.DefaultTimeout)
	maxResults := config.GetInt(cfg, "MAX_RESULTS", 0)

	c := client.New(baseURL, client.WithTimeout(timeout))
	if token := config.GetString(cfg, "API_TOKEN", ""); token != "" {
		c.SetToken(token)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*timeout)
	defer cancel()

	projects := loadCatalog(ctx, c, baseURL)

	query := catalog.Query{
		SearchTerm:   *search,
		Category:     *category,
		PriceRange:   catalog.PriceRange{Min: *minPrice, Max: *maxPrice},
		SortBy:       catalog.SortKey(*sortBy),
		SelectedTags: splitTags(*tags),
	}

	results := catalog.FilterAndSort(projects, query)
	if maxResults > 0 && len(results) > maxResults {
		results = results[:maxResults]
	}
	fmt.Printf("Showing %d of %d projects\n\n", len(results), len(projects))
	for _, p := range results {
		printProject(p)
	}

	if *addToCart == "" && !*showCart {
		return
	}

	notifier := store.NewLogNotifier()
	cart := store.NewCart(c, notifier)
	cart.SessionStarted(ctx)

	if *addToCart != "" {
		cart.Add(ctx, *addToCart)
	}
	if *showCart {
		fmt.Printf("\nCart: %d items, total $%.2f\n", cart.ItemCount(), cart.TotalPrice())
		for _, item := range cart.Items() {
			fmt.Printf("  %s ($%.2f)\n", item.Project.Title, item.Project.Pricing.SalePrice)
		}
	}
}

// loadCatalog prefers the remote catalog and falls back to the built-in
// sample listings when no backend is reachable.
func loadCatalog(ctx context.Context, c *client.Client, baseURL string) []models.Project {
	if baseURL == "" {
		log.Debug().Msg("no API_BASE_URL configured, using sample catalog")
		return catalog.SampleCatalog()
	}

	projects, err := c.FetchProjects(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("could not load remote catalog, using sample catalog")
		return catalog.SampleCatalog()
	}
	return projects
}

func splitTags(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			tags = append(tags, trimmed)
		}
	}
	return tags
}

func printProject(p models.Project) {
	line := fmt.Sprintf("[%s] %s - $%.0f", p.Category, p.Title, p.Price)
	if pct, ok := p.DiscountPercent(); ok {
		line += fmt.Sprintf(" (%d%% off)", pct)
	}
	if p.Rating != nil {
		line += fmt.Sprintf("  ★%.1f", *p.Rating)
	}
	if p.DateAdded != nil {
		line += "  added " + p.DateAdded.Format(time.DateOnly)
	}
	fmt.Println(line)
	if len(p.TechStack) > 0 {
		fmt.Printf("    %s\n", strings.Join(p.TechStack, ", "))
	}
}
