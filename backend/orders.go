package backend

import (
	"context"
	"net/http"

	"github.com/Kariqs/amana-storefront/models"
)

// PlaceOrder submits a cash-on-delivery order and returns the new order id.
func (c *Client) PlaceOrder(ctx context.Context, token string, in models.PlaceOrderRequest) (string, error) {
	const op = "backend.PlaceOrder"
	var out struct {
		OrderID string `json:"orderId"`
		Order   *struct {
			ID string `json:"_id"`
		} `json:"order"`
	}
	if err := c.do(op, c.request(ctx, token).SetBody(in), http.MethodPost, "/api/order/place", &out); err != nil {
		return "", err
	}
	id := out.OrderID
	if id == "" && out.Order != nil {
		id = out.Order.ID
	}
	if id == "" {
		return "", &Error{Op: op, Err: ErrMalformedPayload, Message: "order id missing from response"}
	}
	return id, nil
}

func (c *Client) ListOrders(ctx context.Context, token string) ([]models.Order, error) {
	const op = "backend.ListOrders"
	var out struct {
		Orders []models.Order `json:"orders" validate:"dive"`
	}
	if err := c.do(op, c.request(ctx, token).SetBody(struct{}{}), http.MethodPost, "/api/order/list", &out); err != nil {
		return nil, err
	}
	if err := c.check(op, out); err != nil {
		return nil, err
	}
	return out.Orders, nil
}

func (c *Client) UpdateOrderStatus(ctx context.Context, token, orderID string, status models.OrderStatus) error {
	body := models.OrderStatusUpdate{OrderID: orderID, Status: status}
	return c.do("backend.UpdateOrderStatus", c.request(ctx, token).SetBody(body), http.MethodPost, "/api/order/status", nil)
}

// TrackOrder looks an order up by id and/or email.
func (c *Client) TrackOrder(ctx context.Context, orderID, email string) (*models.Order, error) {
	const op = "backend.TrackOrder"
	var out struct {
		Order *models.Order `json:"order"`
	}
	req := c.request(ctx, "").SetQueryParams(map[string]string{"orderId": orderID, "email": email})
	if err := c.do(op, req, http.MethodGet, "/api/order/track", &out); err != nil {
		return nil, err
	}
	if out.Order == nil {
		return nil, &Error{Op: op, Status: http.StatusNotFound, Message: "Order not found"}
	}
	if err := c.check(op, out.Order); err != nil {
		return nil, err
	}
	return out.Order, nil
}

func (c *Client) UpdateTracking(ctx context.Context, token, orderID string, in models.TrackingUpdate) error {
	req := c.request(ctx, token).SetPathParam("id", orderID).SetBody(in)
	return c.do("backend.UpdateTracking", req, http.MethodPut, "/api/order/tracking/{id}", nil)
}
