package backend

import (
	"context"
	"net/http"

	"github.com/Kariqs/amana-storefront/models"
)

func (c *Client) ListVendors(ctx context.Context, token string) ([]models.Vendor, error) {
	const op = "backend.ListVendors"
	var out struct {
		Vendors []models.Vendor `json:"vendors" validate:"dive"`
	}
	if err := c.do(op, c.request(ctx, token), http.MethodGet, "/api/vendor/list", &out); err != nil {
		return nil, err
	}
	if err := c.check(op, out); err != nil {
		return nil, err
	}
	return out.Vendors, nil
}

func (c *Client) UpdateVendor(ctx context.Context, token, vendorID string, in models.VendorUpdate) error {
	body := struct {
		VendorID string `json:"vendorId"`
		models.VendorUpdate
	}{vendorID, in}
	return c.do("backend.UpdateVendor", c.request(ctx, token).SetBody(body), http.MethodPut, "/api/vendor/update", nil)
}

func (c *Client) DeleteVendor(ctx context.Context, token, vendorID string) error {
	body := map[string]string{"vendorId": vendorID}
	return c.do("backend.DeleteVendor", c.request(ctx, token).SetBody(body), http.MethodDelete, "/api/vendor/delete", nil)
}
