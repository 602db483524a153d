// Package tracking looks orders up for the public order-tracking page and
// lays their status out on the delivery timeline.
package tracking

import (
	"context"
	"errors"
	"strings"

	"github.com/Kariqs/amana-storefront/backend"
	"github.com/Kariqs/amana-storefront/models"
)

var (
	ErrMissingQuery  = errors.New("Please enter Order ID or Email")
	ErrOrderNotFound = errors.New("Order not found. Please check your Order ID or Email.")
)

type Stage struct {
	ID        models.OrderStatus `json:"id"`
	Label     string             `json:"label"`
	Completed bool               `json:"completed"`
	Current   bool               `json:"current"`
}

var stages = []Stage{
	{ID: models.OrderStatusPending, Label: "Order Placed"},
	{ID: models.OrderStatusConfirmed, Label: "Order Confirmed"},
	{ID: models.OrderStatusProcessing, Label: "Processing"},
	{ID: models.OrderStatusShipped, Label: "Shipped"},
	{ID: models.OrderStatusDelivered, Label: "Delivered"},
}

// Timeline marks every stage up to and including status as completed. A
// status outside the five stages, cancelled included, completes none.
func Timeline(status models.OrderStatus) []Stage {
	status = status.Normalize()
	current := -1
	for i, s := range stages {
		if s.ID == status {
			current = i
		}
	}
	out := make([]Stage, len(stages))
	for i, s := range stages {
		s.Completed = i <= current
		s.Current = i == current
		out[i] = s
	}
	return out
}

type Backend interface {
	TrackOrder(ctx context.Context, orderID, email string) (*models.Order, error)
}

type Result struct {
	Order    *models.Order `json:"order"`
	Timeline []Stage       `json:"timeline"`
}

type Service struct {
	backend Backend
}

func NewService(b Backend) *Service {
	return &Service{backend: b}
}

// Lookup finds an order by id, email or both.
func (s *Service) Lookup(ctx context.Context, orderID, email string) (*Result, error) {
	orderID, email = strings.TrimSpace(orderID), strings.TrimSpace(email)
	if orderID == "" && email == "" {
		return nil, ErrMissingQuery
	}
	order, err := s.backend.TrackOrder(ctx, orderID, email)
	var be *backend.Error
	if errors.Is(err, backend.ErrNotFound) || (errors.As(err, &be) && be.Declined) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	return &Result{Order: order, Timeline: Timeline(order.Status)}, nil
}
