package admin

import (
	"context"
	"fmt"
	"sort"

	"github.com/Kariqs/amana-storefront/models"
)

type OrderList struct {
	Orders []models.Order `json:"orders"`
	Total  int            `json:"total"`
}

// Orders lists orders newest first.
func (s *Service) Orders(ctx context.Context, token string, f OrderFilter) (*OrderList, error) {
	orders, err := s.backend.ListOrders(ctx, token)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(orders, func(i, j int) bool { return orders[i].Date > orders[j].Date })
	return &OrderList{Orders: f.Apply(orders), Total: len(orders)}, nil
}

func (s *Service) UpdateOrderStatus(ctx context.Context, token, orderID string, status models.OrderStatus, f OrderFilter) (*OrderList, error) {
	in := models.OrderStatusUpdate{OrderID: orderID, Status: status.Normalize()}
	if orderID == "" {
		return nil, fmt.Errorf("%w: order id is required", ErrInvalidInput)
	}
	if err := s.check(in); err != nil {
		return nil, err
	}
	if err := s.backend.UpdateOrderStatus(ctx, token, orderID, in.Status); err != nil {
		return nil, err
	}
	return s.Orders(ctx, token, f)
}

func (s *Service) UpdateTracking(ctx context.Context, token, orderID string, in models.TrackingUpdate, f OrderFilter) (*OrderList, error) {
	if orderID == "" {
		return nil, fmt.Errorf("%w: order id is required", ErrInvalidInput)
	}
	if err := s.check(in); err != nil {
		return nil, err
	}
	if err := s.backend.UpdateTracking(ctx, token, orderID, in); err != nil {
		return nil, err
	}
	return s.Orders(ctx, token, f)
}
