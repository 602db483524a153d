package admin

import (
	"context"

	"github.com/Kariqs/amana-storefront/models"
	"github.com/sirupsen/logrus"
)

type Stats struct {
	TotalProducts  int                        `json:"totalProducts"`
	TotalOrders    int                        `json:"totalOrders"`
	TotalUsers     int                        `json:"totalUsers"`
	TotalRevenue   float64                    `json:"totalRevenue"`
	OrdersByStatus map[models.OrderStatus]int `json:"ordersByStatus"`
}

// Dashboard totals the console's headline numbers. A failed user count is
// reported as zero.
func (s *Service) Dashboard(ctx context.Context, token string) (*Stats, error) {
	products, err := s.backend.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	orders, err := s.backend.ListOrders(ctx, token)
	if err != nil {
		return nil, err
	}
	stats := &Stats{
		TotalProducts:  len(products),
		TotalOrders:    len(orders),
		OrdersByStatus: map[models.OrderStatus]int{},
	}
	for _, o := range orders {
		stats.TotalRevenue += o.Amount
		stats.OrdersByStatus[o.Status.Normalize()]++
	}
	users, err := s.backend.ListUsers(ctx, token)
	if err != nil {
		logrus.Warnf("admin.Dashboard: failed to count users err = %v", err)
	} else {
		stats.TotalUsers = len(users)
	}
	return stats, nil
}
