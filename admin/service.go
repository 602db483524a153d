// Package admin backs the admin console. Every screen fetches the full list
// from the backend and filters it here; every mutation is followed by a
// fresh fetch so the view never shows state the backend has not confirmed.
package admin

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/Kariqs/amana-storefront/models"
	"github.com/go-playground/validator/v10"
)

var (
	ErrNotConfirmed       = errors.New("Deletion must be confirmed")
	ErrInvalidInput       = errors.New("invalid input")
	ErrUploadsUnavailable = errors.New("Image upload is not configured")
)

type Backend interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	AddProduct(ctx context.Context, token string, in models.ProductInput) error
	UpdateProduct(ctx context.Context, token string, in models.ProductInput) error
	RemoveProduct(ctx context.Context, token, id string) error

	ListOrders(ctx context.Context, token string) ([]models.Order, error)
	UpdateOrderStatus(ctx context.Context, token, orderID string, status models.OrderStatus) error
	UpdateTracking(ctx context.Context, token, orderID string, in models.TrackingUpdate) error

	ListUsers(ctx context.Context, token string) ([]models.User, error)
	UpdateUser(ctx context.Context, token, userID string, in models.UserUpdate) error
	DeleteUser(ctx context.Context, token, userID string) error

	ListVendors(ctx context.Context, token string) ([]models.Vendor, error)
	UpdateVendor(ctx context.Context, token, vendorID string, in models.VendorUpdate) error
	DeleteVendor(ctx context.Context, token, vendorID string) error
}

// ImageUploader stores a product image and returns its public URL.
type ImageUploader interface {
	Upload(ctx context.Context, name, contentType string, body io.Reader) (string, error)
}

// CatalogReloader refreshes the storefront product list after a product
// mutation.
type CatalogReloader interface {
	LoadProducts(ctx context.Context) error
}

type Service struct {
	backend  Backend
	catalog  CatalogReloader
	uploader ImageUploader
	validate *validator.Validate
}

// NewService wires the admin console. uploader may be nil when image storage
// is not configured.
func NewService(b Backend, catalog CatalogReloader, uploader ImageUploader) *Service {
	return &Service{backend: b, catalog: catalog, uploader: uploader, validate: validator.New()}
}

func (s *Service) check(v any) error {
	if err := s.validate.Struct(v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return nil
}
