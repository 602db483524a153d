package admin

import (
	"context"
	"fmt"
	"io"

	"github.com/Kariqs/amana-storefront/catalog"
	"github.com/Kariqs/amana-storefront/models"
	"github.com/sirupsen/logrus"
)

// MaxImages is the number of image slots on the product form.
const MaxImages = 4

type Image struct {
	Name        string
	ContentType string
	Body        io.Reader
}

type ProductList struct {
	Products   []models.Product `json:"products"`
	Categories []string         `json:"categories"`
	Total      int              `json:"total"`
}

func (s *Service) Products(ctx context.Context, f catalog.AdminProductFilter) (*ProductList, error) {
	products, err := s.backend.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	return &ProductList{
		Products:   f.Apply(products),
		Categories: catalog.CategoriesOf(products),
		Total:      len(products),
	}, nil
}

func (s *Service) upload(ctx context.Context, images []Image) ([]string, error) {
	if len(images) == 0 {
		return nil, nil
	}
	if len(images) > MaxImages {
		return nil, fmt.Errorf("%w: at most %d images", ErrInvalidInput, MaxImages)
	}
	if s.uploader == nil {
		return nil, ErrUploadsUnavailable
	}
	urls := make([]string, 0, len(images))
	for _, img := range images {
		url, err := s.uploader.Upload(ctx, img.Name, img.ContentType, img.Body)
		if err != nil {
			logrus.Errorf("admin.upload: failed to upload %s err = %v", img.Name, err)
			return nil, err
		}
		urls = append(urls, url)
	}
	return urls, nil
}

func (s *Service) reloadCatalog(ctx context.Context) {
	if s.catalog == nil {
		return
	}
	if err := s.catalog.LoadProducts(ctx); err != nil {
		logrus.Warnf("admin.reloadCatalog: storefront catalog not refreshed err = %v", err)
	}
}

// AddProduct uploads the images, creates the product and reloads the
// storefront catalog.
func (s *Service) AddProduct(ctx context.Context, token string, in models.ProductInput, images []Image) (*ProductList, error) {
	in.ID = ""
	if err := s.check(in); err != nil {
		return nil, err
	}
	urls, err := s.upload(ctx, images)
	if err != nil {
		return nil, err
	}
	in.Image = urls
	if err := s.backend.AddProduct(ctx, token, in); err != nil {
		return nil, err
	}
	s.reloadCatalog(ctx)
	return s.Products(ctx, catalog.AdminProductFilter{Stock: catalog.StockAll})
}

// UpdateProduct edits a product. New images replace the stored ones; with
// none the backend keeps what it has.
func (s *Service) UpdateProduct(ctx context.Context, token string, in models.ProductInput, images []Image) (*ProductList, error) {
	if in.ID == "" {
		return nil, fmt.Errorf("%w: product id is required", ErrInvalidInput)
	}
	if err := s.check(in); err != nil {
		return nil, err
	}
	urls, err := s.upload(ctx, images)
	if err != nil {
		return nil, err
	}
	if len(urls) > 0 {
		in.Image = urls
	}
	if err := s.backend.UpdateProduct(ctx, token, in); err != nil {
		return nil, err
	}
	s.reloadCatalog(ctx)
	return s.Products(ctx, catalog.AdminProductFilter{Stock: catalog.StockAll})
}

func (s *Service) RemoveProduct(ctx context.Context, token, id string, confirm bool) (*ProductList, error) {
	if !confirm {
		return nil, ErrNotConfirmed
	}
	if err := s.backend.RemoveProduct(ctx, token, id); err != nil {
		return nil, err
	}
	s.reloadCatalog(ctx)
	return s.Products(ctx, catalog.AdminProductFilter{Stock: catalog.StockAll})
}
