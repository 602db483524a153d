package cart

import "fmt"

// MergePolicy decides what happens to a guest cart when the visitor logs in.
type MergePolicy string

const (
	// MergeReplace keeps the server cart and discards the guest cart.
	MergeReplace MergePolicy = "replace"
	// MergeMax keeps the larger quantity of each product.
	MergeMax MergePolicy = "max"
	// MergeSum adds the quantities of both carts.
	MergeSum MergePolicy = "sum"
)

func ParseMergePolicy(s string) (MergePolicy, error) {
	switch p := MergePolicy(s); p {
	case "":
		return MergeReplace, nil
	case MergeReplace, MergeMax, MergeSum:
		return p, nil
	default:
		return "", fmt.Errorf("unknown cart merge policy %q", s)
	}
}

func Merge(guest, server Cart, policy MergePolicy) Cart {
	merged := server.clone()
	if policy == MergeReplace || policy == "" {
		return merged
	}
	for id, q := range guest {
		if q <= 0 {
			continue
		}
		switch policy {
		case MergeMax:
			if q > merged[id] {
				merged[id] = q
			}
		case MergeSum:
			merged[id] += q
		}
	}
	return merged
}

// Diff returns the lines of next whose quantity differs from prev. Lines
// removed in next are reported with quantity 0.
func Diff(prev, next Cart) map[string]int {
	changed := map[string]int{}
	for id, q := range next {
		if prev[id] != q {
			changed[id] = q
		}
	}
	for id := range prev {
		if _, ok := next[id]; !ok {
			changed[id] = 0
		}
	}
	return changed
}
