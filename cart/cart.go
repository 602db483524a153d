// Package cart holds the cart as an immutable productId -> quantity mapping
// and the reducers that derive new snapshots from it.
package cart

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"

	"github.com/Kariqs/amana-storefront/models"
)

// Cart maps a product id to a positive quantity. A missing key and a zero
// quantity mean the same thing; reducers never store the latter.
type Cart map[string]int

type Line struct {
	ProductID string  `json:"_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Image     string  `json:"image"`
	Stock     int     `json:"stock"`
	Total     float64 `json:"total"`
}

func (c Cart) clone() Cart {
	next := make(Cart, len(c))
	for id, q := range c {
		if q > 0 {
			next[id] = q
		}
	}
	return next
}

// Add increments the line for id by n. n <= 0 yields an unchanged copy.
func Add(c Cart, id string, n int) Cart {
	next := c.clone()
	if n <= 0 || id == "" {
		return next
	}
	next[id] += n
	return next
}

// SetQuantity sets the line for id to q, removing it when q <= 0.
func SetQuantity(c Cart, id string, q int) Cart {
	next := c.clone()
	if id == "" {
		return next
	}
	if q <= 0 {
		delete(next, id)
		return next
	}
	next[id] = q
	return next
}

func Remove(c Cart, id string) Cart {
	return SetQuantity(c, id, 0)
}

func Count(c Cart) int {
	total := 0
	for _, q := range c {
		if q > 0 {
			total += q
		}
	}
	return total
}

// Amount sums price x quantity over the cart. Lines whose product is not in
// products contribute nothing.
func Amount(c Cart, products []models.Product) float64 {
	byID := index(products)
	total := 0.0
	for id, q := range c {
		p, ok := byID[id]
		if !ok || q <= 0 {
			continue
		}
		total += p.Price * float64(q)
	}
	return total
}

// Lines joins the cart with product data, ordered by product id. Ids that
// have no product are returned separately instead of as placeholder lines.
func Lines(c Cart, products []models.Product) ([]Line, []string) {
	byID := index(products)
	ids := make([]string, 0, len(c))
	for id, q := range c {
		if q > 0 {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)

	lines := make([]Line, 0, len(ids))
	var missing []string
	for _, id := range ids {
		p, ok := byID[id]
		if !ok {
			missing = append(missing, id)
			continue
		}
		q := c[id]
		lines = append(lines, Line{
			ProductID: id,
			Name:      p.Name,
			Price:     p.Price,
			Quantity:  q,
			Image:     p.FirstImage(),
			Stock:     p.Stock,
			Total:     p.Price * float64(q),
		})
	}
	return lines, missing
}

func index(products []models.Product) map[string]models.Product {
	byID := make(map[string]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return byID
}

// Parse decodes the JSON mapping form. Entries that are not positive whole
// numbers are dropped.
func Parse(raw []byte) (Cart, error) {
	if len(raw) == 0 {
		return Cart{}, nil
	}
	var loose map[string]any
	if err := json.Unmarshal(raw, &loose); err != nil {
		return nil, fmt.Errorf("decode cart: %w", err)
	}
	c := make(Cart, len(loose))
	for id, v := range loose {
		f, ok := v.(float64)
		if !ok || f <= 0 || f != math.Trunc(f) {
			continue
		}
		c[id] = int(f)
	}
	return c, nil
}

func (c Cart) Encode() []byte {
	raw, _ := json.Marshal(c.clone())
	return raw
}
