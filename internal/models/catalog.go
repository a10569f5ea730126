// internal/models/catalog.go
package models

import (
	"sort"
	"strings"
)

// PriceRange summarizes valid prices within a group of products.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
	Avg float64 `json:"avg"`
}

// Catalog owns the full ordered product collection plus derived category and
// id indices. It is populated once via Load and read-only afterwards, so
// query methods are safe for concurrent readers.
type Catalog struct {
	products   []*Product
	byCategory map[string][]*Product
	byID       map[string]*Product
}

func NewCatalog() *Catalog {
	return &Catalog{
		byCategory: make(map[string][]*Product),
		byID:       make(map[string]*Product),
	}
}

// Load replaces the collection and rebuilds both indices from scratch.
// Products whose favorite count is zero get it backfilled from their social
// proof texts. Duplicate product ids keep collection order but the id index
// is last-write-wins.
func (c *Catalog) Load(products []*Product) {
	c.products = products
	c.byCategory = make(map[string][]*Product)
	c.byID = make(map[string]*Product)

	for _, p := range products {
		if p.Subcategory != "" {
			c.byCategory[p.Subcategory] = append(c.byCategory[p.Subcategory], p)
		}
		c.byID[p.ProductID] = p

		if p.FavoriteCount == 0 {
			p.FavoriteCount = p.ParseFavoriteCount()
		}
	}
}

func (c *Catalog) TotalProducts() int {
	return len(c.products)
}

func (c *Catalog) Products() []*Product {
	return c.products
}

// Categories returns all category names with at least one product, sorted.
func (c *Catalog) Categories() []string {
	categories := make([]string, 0, len(c.byCategory))
	for cat := range c.byCategory {
		categories = append(categories, cat)
	}
	sort.Strings(categories)
	return categories
}

func (c *Catalog) CategoryCounts() map[string]int {
	counts := make(map[string]int, len(c.byCategory))
	for cat, prods := range c.byCategory {
		counts[cat] = len(prods)
	}
	return counts
}

func (c *Catalog) GetByID(productID string) (*Product, bool) {
	p, ok := c.byID[productID]
	return p, ok
}

// GetByCategory returns the category's products in insertion order.
func (c *Catalog) GetByCategory(category string) []*Product {
	return c.byCategory[category]
}

// TopRated returns the highest-scored products among those with rating data.
func (c *Catalog) TopRated(limit int) []*Product {
	var rated []*Product
	for _, p := range c.products {
		if p.Rating.HasData() {
			rated = append(rated, p)
		}
	}
	return sortedByDesc(rated, func(p *Product) float64 { return p.Rating.Score }, limit)
}

func (c *Catalog) MostCommented(limit int) []*Product {
	return sortedByDesc(c.products, func(p *Product) float64 { return float64(p.CommentCount()) }, limit)
}

func (c *Catalog) MostFavorited(limit int) []*Product {
	return sortedByDesc(c.products, func(p *Product) float64 { return float64(p.FavoriteCount) }, limit)
}

func (c *Catalog) MostEngaging(limit int) []*Product {
	return sortedByDesc(c.products, func(p *Product) float64 { return p.EngagementScore() }, limit)
}

// Trending returns trending products in collection order.
func (c *Catalog) Trending() []*Product {
	var out []*Product
	for _, p := range c.products {
		if p.IsTrending() {
			out = append(out, p)
		}
	}
	return out
}

// Polarizing returns the first limit polarizing products in collection
// order. It is intentionally not ranked by any polarization magnitude.
func (c *Catalog) Polarizing(limit int) []*Product {
	var out []*Product
	for _, p := range c.products {
		if len(out) >= limit {
			break
		}
		if p.StarDistribution.IsPolarizing() {
			out = append(out, p)
		}
	}
	return out
}

func (c *Catalog) TopRatedByCategory(category string, limit int) []*Product {
	var rated []*Product
	for _, p := range c.GetByCategory(category) {
		if p.Rating.HasData() {
			rated = append(rated, p)
		}
	}
	return sortedByDesc(rated, func(p *Product) float64 { return p.Rating.Score }, limit)
}

// PriceRangeByCategory aggregates valid prices within a category; all-zero
// when the category has none.
func (c *Catalog) PriceRangeByCategory(category string) PriceRange {
	var prices []float64
	for _, p := range c.GetByCategory(category) {
		if p.Price.IsValid() {
			prices = append(prices, p.Price.Amount)
		}
	}
	if len(prices) == 0 {
		return PriceRange{}
	}

	rng := PriceRange{Min: prices[0], Max: prices[0]}
	var total float64
	for _, amount := range prices {
		total += amount
		if amount < rng.Min {
			rng.Min = amount
		}
		if amount > rng.Max {
			rng.Max = amount
		}
	}
	rng.Avg = total / float64(len(prices))
	return rng
}

// Search scans the collection in order for a case-insensitive substring
// match in name, description or category, stopping at limit results.
func (c *Catalog) Search(keyword string, limit int) []*Product {
	needle := strings.ToLower(keyword)
	var results []*Product
	for _, p := range c.products {
		if strings.Contains(strings.ToLower(p.Name), needle) ||
			strings.Contains(strings.ToLower(p.Description), needle) ||
			strings.Contains(strings.ToLower(p.Subcategory), needle) {
			results = append(results, p)
		}
		if len(results) >= limit {
			break
		}
	}
	return results
}

// sortedByDesc sorts a copy descending by key with a stable tie-break on
// collection order, then truncates to limit.
func sortedByDesc(products []*Product, key func(*Product) float64, limit int) []*Product {
	out := make([]*Product, len(products))
	copy(out, products)
	sort.SliceStable(out, func(i, j int) bool {
		return key(out[i]) > key(out[j])
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
