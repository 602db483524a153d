package catalog

import (
	"net/url"
	"strings"

	"github.com/Kariqs/amana-storefront/models"
)

type StockFilter string

const (
	StockAll        StockFilter = "all"
	StockInStock    StockFilter = "inStock"
	StockOutOfStock StockFilter = "outOfStock"
)

// AdminProductFilter is the admin product table filter bar.
type AdminProductFilter struct {
	Search   string      `json:"search,omitempty"`
	Category string      `json:"category"`
	MinPrice *float64    `json:"minPrice,omitempty"`
	MaxPrice *float64    `json:"maxPrice,omitempty"`
	Stock    StockFilter `json:"stock"`
}

func ParseAdminProductFilter(v url.Values) AdminProductFilter {
	f := AdminProductFilter{
		Search:   strings.ToLower(strings.TrimSpace(v.Get("search"))),
		Category: v.Get("category"),
		MinPrice: parsePrice(v.Get("minPrice")),
		MaxPrice: parsePrice(v.Get("maxPrice")),
		Stock:    StockFilter(v.Get("stock")),
	}
	if f.Category == "" {
		f.Category = "all"
	}
	if f.Stock != StockInStock && f.Stock != StockOutOfStock {
		f.Stock = StockAll
	}
	return f
}

func (f AdminProductFilter) Apply(products []models.Product) []models.Product {
	search := strings.ToLower(f.Search)
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.Description), search) {
			continue
		}
		if f.Category != "" && f.Category != "all" && !strings.EqualFold(p.Category, f.Category) {
			continue
		}
		if !inRange(p.Price, f.MinPrice, f.MaxPrice) {
			continue
		}
		switch f.Stock {
		case StockInStock:
			if p.Stock <= 0 {
				continue
			}
		case StockOutOfStock:
			if p.Stock != 0 {
				continue
			}
		}
		out = append(out, p)
	}
	return out
}

// CategoriesOf lists the distinct non-empty categories in first-seen order.
func CategoriesOf(products []models.Product) []string {
	seen := map[string]bool{}
	var out []string
	for _, p := range products {
		if p.Category == "" || seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		out = append(out, p.Category)
	}
	return out
}
