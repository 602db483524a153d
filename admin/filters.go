package admin

import (
	"net/url"
	"strings"

	"github.com/Kariqs/amana-storefront/models"
)

const filterAll = "all"

// OrderStatusFilters are the status tabs of the orders table.
var OrderStatusFilters = []string{
	filterAll,
	string(models.OrderStatusPending),
	string(models.OrderStatusProcessing),
	string(models.OrderStatusShipped),
	string(models.OrderStatusDelivered),
	string(models.OrderStatusCancelled),
}

func lowerQuery(v url.Values, key string) string {
	return strings.ToLower(strings.TrimSpace(v.Get(key)))
}

func orAll(s string) string {
	if s == "" {
		return filterAll
	}
	return s
}

func containsAny(search string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), search) {
			return true
		}
	}
	return false
}

type OrderFilter struct {
	Search string `json:"search,omitempty"`
	Status string `json:"status"`
}

func ParseOrderFilter(v url.Values) OrderFilter {
	return OrderFilter{Search: lowerQuery(v, "search"), Status: orAll(lowerQuery(v, "status"))}
}

// Apply matches the search against order id, customer name and email.
func (f OrderFilter) Apply(orders []models.Order) []models.Order {
	search := strings.ToLower(f.Search)
	out := make([]models.Order, 0, len(orders))
	for _, o := range orders {
		if search != "" && !containsAny(search, o.ID, o.Address.Name, o.Address.Email) {
			continue
		}
		if f.Status != "" && f.Status != filterAll && o.Status.Normalize() != models.OrderStatus(f.Status) {
			continue
		}
		out = append(out, o)
	}
	return out
}

type UserFilter struct {
	Search string `json:"search,omitempty"`
	Role   string `json:"role"`
}

func ParseUserFilter(v url.Values) UserFilter {
	return UserFilter{Search: lowerQuery(v, "search"), Role: orAll(lowerQuery(v, "role"))}
}

func (f UserFilter) Apply(users []models.User) []models.User {
	search := strings.ToLower(f.Search)
	out := make([]models.User, 0, len(users))
	for _, u := range users {
		if search != "" && !containsAny(search, u.Name, u.Email, u.Phone) {
			continue
		}
		if f.Role != "" && f.Role != filterAll && !strings.EqualFold(string(u.Role), f.Role) {
			continue
		}
		out = append(out, u)
	}
	return out
}

type VendorFilter struct {
	Search string `json:"search,omitempty"`
	Status string `json:"status"`
}

func ParseVendorFilter(v url.Values) VendorFilter {
	return VendorFilter{Search: lowerQuery(v, "search"), Status: orAll(lowerQuery(v, "status"))}
}

func (f VendorFilter) Apply(vendors []models.Vendor) []models.Vendor {
	search := strings.ToLower(f.Search)
	out := make([]models.Vendor, 0, len(vendors))
	for _, v := range vendors {
		if search != "" && !containsAny(search, v.StoreName, v.OwnerName, v.Email) {
			continue
		}
		if f.Status != "" && f.Status != filterAll && !strings.EqualFold(string(v.Status), f.Status) {
			continue
		}
		out = append(out, v)
	}
	return out
}
