// Package catalog derives filtered and sorted views of the in-memory product
// list for the storefront collection and the admin product screen.
package catalog

import (
	"net/url"
	"slices"
	"sort"
	"strconv"
	"strings"

	"github.com/Kariqs/amana-storefront/models"
)

type SortKey string

const (
	SortRelevant SortKey = "relevant"
	SortLowHigh  SortKey = "low-high"
	SortHighLow  SortKey = "high-low"
	SortNameAsc  SortKey = "name-asc"
	SortNameDesc SortKey = "name-desc"
)

var Categories = []string{
	"Plants",
	"Gardening Tools",
	"Pots and Containers",
	"Soil and Fertilizers",
}

var SubCategories = []string{
	"Indoor Plants", "Outdoor Plants", "Flowering Plants", "Succulents", "Herbs",
	"Pruning Tools", "Watering Tools", "Planting Tools",
	"Plastic Pots", "Ceramic Pots", "Hanging Pots", "Planters",
	"Potting Soil", "Organic Fertilizers", "Compost",
}

type Query struct {
	Search        string   `json:"search,omitempty"`
	Categories    []string `json:"category,omitempty"`
	SubCategories []string `json:"subCategory,omitempty"`
	MinPrice      *float64 `json:"minPrice,omitempty"`
	MaxPrice      *float64 `json:"maxPrice,omitempty"`
	Sort          SortKey  `json:"sort"`
}

// ActiveFilters counts the filter chips shown above the collection. Search
// and sort are not counted.
func (q Query) ActiveFilters() int {
	n := len(q.Categories) + len(q.SubCategories)
	if q.MinPrice != nil {
		n++
	}
	if q.MaxPrice != nil {
		n++
	}
	return n
}

// ParseQuery reads a collection query from URL parameters. Malformed prices
// are ignored, as an empty price box would be.
func ParseQuery(v url.Values) Query {
	q := Query{
		Search:        strings.TrimSpace(v.Get("search")),
		Categories:    nonEmpty(v["category"]),
		SubCategories: nonEmpty(v["subCategory"]),
		MinPrice:      parsePrice(v.Get("minPrice")),
		MaxPrice:      parsePrice(v.Get("maxPrice")),
		Sort:          SortKey(v.Get("sort")),
	}
	switch q.Sort {
	case SortLowHigh, SortHighLow, SortNameAsc, SortNameDesc:
	default:
		q.Sort = SortRelevant
	}
	return q
}

func nonEmpty(in []string) []string {
	var out []string
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" && !slices.Contains(out, s) {
			out = append(out, s)
		}
	}
	return out
}

func parsePrice(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}

// Filter returns the products matching q in their original order. The input
// slice is never modified.
func Filter(products []models.Product, q Query) []models.Product {
	search := strings.ToLower(q.Search)
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if search != "" && !strings.Contains(strings.ToLower(p.Name), search) {
			continue
		}
		if len(q.Categories) > 0 && !slices.Contains(q.Categories, p.Category) {
			continue
		}
		if len(q.SubCategories) > 0 && !slices.Contains(q.SubCategories, p.SubCategory) {
			continue
		}
		if !inRange(p.Price, q.MinPrice, q.MaxPrice) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func inRange(price float64, min, max *float64) bool {
	if min != nil && price < *min {
		return false
	}
	if max != nil && price > *max {
		return false
	}
	return true
}

// SortInPlace orders products by key. SortRelevant leaves insertion order.
func SortInPlace(products []models.Product, key SortKey) {
	var less func(a, b models.Product) bool
	switch key {
	case SortLowHigh:
		less = func(a, b models.Product) bool { return a.Price < b.Price }
	case SortHighLow:
		less = func(a, b models.Product) bool { return a.Price > b.Price }
	case SortNameAsc:
		less = func(a, b models.Product) bool { return strings.ToLower(a.Name) < strings.ToLower(b.Name) }
	case SortNameDesc:
		less = func(a, b models.Product) bool { return strings.ToLower(a.Name) > strings.ToLower(b.Name) }
	default:
		return
	}
	sort.SliceStable(products, func(i, j int) bool { return less(products[i], products[j]) })
}

type Result struct {
	Products      []models.Product `json:"products"`
	Total         int              `json:"total"`
	Matched       int              `json:"matched"`
	ActiveFilters int              `json:"activeFilters"`
	Empty         bool             `json:"empty"`
	Query         Query            `json:"query"`
}

// Apply filters then sorts. It is recomputed from the full list each call.
func Apply(products []models.Product, q Query) Result {
	filtered := Filter(products, q)
	SortInPlace(filtered, q.Sort)
	return Result{
		Products:      filtered,
		Total:         len(products),
		Matched:       len(filtered),
		ActiveFilters: q.ActiveFilters(),
		Empty:         len(filtered) == 0,
		Query:         q,
	}
}
