// Package shop is the storefront's application state: the product list, the
// visitor carts and the login session, shared by every controller.
package shop

import (
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/Kariqs/amana-storefront/cart"
	"github.com/Kariqs/amana-storefront/models"
	"github.com/Kariqs/amana-storefront/session"
	"github.com/sirupsen/logrus"
)

var (
	ErrUnknownProduct    = errors.New("Product not available")
	ErrOutOfStock        = errors.New("Product is out of stock")
	ErrInsufficientStock = errors.New("No more stock available.")
	ErrInvalidQuantity   = errors.New("Quantity must not be negative")
)

// Backend is the part of the remote API the shop state needs.
type Backend interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	GetProduct(ctx context.Context, slug string) (*models.Product, error)
	Login(ctx context.Context, in models.LoginData) (string, *models.User, error)
	GetCart(ctx context.Context, token string) (cart.Cart, error)
	AddToCart(ctx context.Context, token, itemID string) error
	UpdateCart(ctx context.Context, token, itemID string, quantity int) error
	ClearCart(ctx context.Context, token string) error
}

type Options struct {
	MergePolicy cart.MergePolicy
	Currency    string
	DeliveryFee float64
}

type Service struct {
	backend Backend
	store   session.Store
	opts    Options

	mu       sync.RWMutex
	products []models.Product

	lanes lanes
}

func NewService(b Backend, store session.Store, opts Options) *Service {
	if opts.MergePolicy == "" {
		opts.MergePolicy = cart.MergeReplace
	}
	return &Service{backend: b, store: store, opts: opts}
}

func (s *Service) Options() Options { return s.opts }

// LoadProducts replaces the product list with the backend's, newest first.
// On failure the current list is kept (empty before the first success).
func (s *Service) LoadProducts(ctx context.Context) error {
	products, err := s.backend.ListProducts(ctx)
	if err != nil {
		logrus.Warnf("LoadProducts: failed to fetch products err = %v", err)
		return err
	}
	slices.Reverse(products)

	s.mu.Lock()
	s.products = products
	s.mu.Unlock()
	logrus.WithField("count", len(products)).Info("product list loaded")
	return nil
}

// RefreshProducts reloads the product list every interval until ctx ends.
func (s *Service) RefreshProducts(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			_ = s.LoadProducts(ctx)
		}
	}
}

// Products returns a copy of the current product list.
func (s *Service) Products() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.products)
}

func (s *Service) product(idOrSlug string) (models.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.ID == idOrSlug || (p.Slug != "" && p.Slug == idOrSlug) {
			return p, true
		}
	}
	return models.Product{}, false
}

// Product resolves a product from the loaded list, falling back to the
// backend detail endpoint.
func (s *Service) Product(ctx context.Context, idOrSlug string) (*models.Product, error) {
	if p, ok := s.product(idOrSlug); ok {
		return &p, nil
	}
	return s.backend.GetProduct(ctx, idOrSlug)
}
