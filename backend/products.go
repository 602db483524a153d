package backend

import (
	"context"
	"net/http"

	"github.com/Kariqs/amana-storefront/models"
)

func (c *Client) ListProducts(ctx context.Context) ([]models.Product, error) {
	const op = "backend.ListProducts"
	var out struct {
		Products []models.Product `json:"products" validate:"dive"`
	}
	if err := c.do(op, c.request(ctx, ""), http.MethodGet, "/api/product/list", &out); err != nil {
		return nil, err
	}
	if err := c.check(op, out); err != nil {
		return nil, err
	}
	return out.Products, nil
}

// GetProduct loads one product by slug or id.
func (c *Client) GetProduct(ctx context.Context, slug string) (*models.Product, error) {
	const op = "backend.GetProduct"
	var out struct {
		Status  bool            `json:"status"`
		Product *models.Product `json:"product"`
	}
	req := c.request(ctx, "").SetPathParam("slug", slug)
	if err := c.do(op, req, http.MethodGet, "/api/product/{slug}", &out); err != nil {
		return nil, err
	}
	if !out.Status || out.Product == nil {
		return nil, &Error{Op: op, Status: http.StatusNotFound, Message: "Product not found"}
	}
	if err := c.check(op, out.Product); err != nil {
		return nil, err
	}
	return out.Product, nil
}

func (c *Client) AddProduct(ctx context.Context, token string, in models.ProductInput) error {
	return c.do("backend.AddProduct", c.request(ctx, token).SetBody(in), http.MethodPost, "/api/product/add", nil)
}

func (c *Client) UpdateProduct(ctx context.Context, token string, in models.ProductInput) error {
	return c.do("backend.UpdateProduct", c.request(ctx, token).SetBody(in), http.MethodPost, "/api/product/update", nil)
}

func (c *Client) RemoveProduct(ctx context.Context, token, id string) error {
	body := map[string]string{"id": id}
	return c.do("backend.RemoveProduct", c.request(ctx, token).SetBody(body), http.MethodPost, "/api/product/remove", nil)
}
