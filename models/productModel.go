package models

type Product struct {
	ID          string   `json:"_id" validate:"required"`
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`
	Price       float64  `json:"price" validate:"gte=0"`
	Category    string   `json:"category"`
	SubCategory string   `json:"subCategory"`
	Stock       int      `json:"stock" validate:"gte=0"`
	Image       []string `json:"image"`
	Bestseller  bool     `json:"bestseller"`
	Slug        string   `json:"slug"`
	Date        int64    `json:"date,omitempty"`
}

// FirstImage returns the cover image, or "" when the product has none.
func (p Product) FirstImage() string {
	if len(p.Image) == 0 {
		return ""
	}
	return p.Image[0]
}

// ProductInput is the admin form for creating or editing a product.
type ProductInput struct {
	ID          string   `json:"id,omitempty" form:"id"`
	Name        string   `json:"name" form:"name" validate:"required"`
	Description string   `json:"description" form:"description" validate:"required"`
	Price       float64  `json:"price" form:"price" validate:"gt=0"`
	Category    string   `json:"category" form:"category" validate:"required"`
	SubCategory string   `json:"subCategory" form:"subCategory"`
	Stock       int      `json:"stock" form:"stock" validate:"gte=0"`
	Bestseller  bool     `json:"bestseller" form:"bestseller"`
	Image       []string `json:"image,omitempty" form:"-"`
}
