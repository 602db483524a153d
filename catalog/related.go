package catalog

import "github.com/Kariqs/amana-storefront/models"

const (
	RelatedLimit    = 4
	LatestLimit     = 8
	BestsellerLimit = 5
)

// Related picks up to n products for a detail page: the same category
// first, then others to pad the row.
func Related(products []models.Product, category, excludeID string, n int) []models.Product {
	if category == "" || n <= 0 {
		return nil
	}
	var same, other []models.Product
	for _, p := range products {
		if p.ID == excludeID {
			continue
		}
		if p.Category == category {
			same = append(same, p)
		} else {
			other = append(other, p)
		}
	}
	if len(same) < n {
		same = append(same, other...)
	}
	if len(same) > n {
		same = same[:n]
	}
	return same
}

func Latest(products []models.Product, n int) []models.Product {
	if len(products) < n {
		n = len(products)
	}
	return append([]models.Product(nil), products[:n]...)
}

func Bestsellers(products []models.Product, n int) []models.Product {
	var out []models.Product
	for _, p := range products {
		if len(out) == n {
			break
		}
		if p.Bestseller {
			out = append(out, p)
		}
	}
	return out
}
