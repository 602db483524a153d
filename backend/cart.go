package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Kariqs/amana-storefront/cart"
)

func (c *Client) GetCart(ctx context.Context, token string) (cart.Cart, error) {
	const op = "backend.GetCart"
	var out struct {
		CartData json.RawMessage `json:"cartData"`
	}
	if err := c.do(op, c.request(ctx, token).SetBody(struct{}{}), http.MethodPost, "/api/cart/get", &out); err != nil {
		return nil, err
	}
	if len(out.CartData) == 0 || string(out.CartData) == "null" {
		return cart.Cart{}, nil
	}
	parsed, err := cart.Parse(out.CartData)
	if err != nil {
		return nil, &Error{Op: op, Err: fmt.Errorf("%w: %v", ErrMalformedPayload, err)}
	}
	return parsed, nil
}

// AddToCart increments the server line for itemID by one.
func (c *Client) AddToCart(ctx context.Context, token, itemID string) error {
	body := map[string]string{"itemId": itemID}
	return c.do("backend.AddToCart", c.mutation(ctx, token).SetBody(body), http.MethodPost, "/api/cart/add", nil)
}

// UpdateCart sets the server line for itemID; quantity 0 removes it.
func (c *Client) UpdateCart(ctx context.Context, token, itemID string, quantity int) error {
	body := map[string]any{"itemId": itemID, "quantity": quantity}
	return c.do("backend.UpdateCart", c.mutation(ctx, token).SetBody(body), http.MethodPost, "/api/cart/update", nil)
}

func (c *Client) ClearCart(ctx context.Context, token string) error {
	return c.do("backend.ClearCart", c.mutation(ctx, token).SetBody(struct{}{}), http.MethodPost, "/api/cart/clear", nil)
}
