package admin

import (
	"context"
	"fmt"

	"github.com/Kariqs/amana-storefront/models"
)

type VendorList struct {
	Vendors []models.Vendor `json:"vendors"`
	Total   int             `json:"total"`
}

func (s *Service) Vendors(ctx context.Context, token string, f VendorFilter) (*VendorList, error) {
	vendors, err := s.backend.ListVendors(ctx, token)
	if err != nil {
		return nil, err
	}
	return &VendorList{Vendors: f.Apply(vendors), Total: len(vendors)}, nil
}

func (s *Service) UpdateVendor(ctx context.Context, token, vendorID string, in models.VendorUpdate, f VendorFilter) (*VendorList, error) {
	if vendorID == "" {
		return nil, fmt.Errorf("%w: vendor id is required", ErrInvalidInput)
	}
	if err := s.check(in); err != nil {
		return nil, err
	}
	if err := s.backend.UpdateVendor(ctx, token, vendorID, in); err != nil {
		return nil, err
	}
	return s.Vendors(ctx, token, f)
}

func (s *Service) DeleteVendor(ctx context.Context, token, vendorID string, confirm bool, f VendorFilter) (*VendorList, error) {
	if !confirm {
		return nil, ErrNotConfirmed
	}
	if err := s.backend.DeleteVendor(ctx, token, vendorID); err != nil {
		return nil, err
	}
	return s.Vendors(ctx, token, f)
}
