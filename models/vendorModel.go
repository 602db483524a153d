package models

type VendorStatus string

const (
	VendorStatusActive    VendorStatus = "active"
	VendorStatusInactive  VendorStatus = "inactive"
	VendorStatusSuspended VendorStatus = "suspended"
)

type Vendor struct {
	ID        string       `json:"_id" validate:"required"`
	StoreName string       `json:"storeName"`
	OwnerName string       `json:"ownerName"`
	Email     string       `json:"email"`
	Phone     string       `json:"phone"`
	Address   string       `json:"address"`
	Status    VendorStatus `json:"status"`
}

type VendorUpdate struct {
	StoreName string       `json:"storeName" validate:"required"`
	OwnerName string       `json:"ownerName" validate:"required"`
	Email     string       `json:"email" validate:"required,email"`
	Phone     string       `json:"phone"`
	Address   string       `json:"address"`
	Status    VendorStatus `json:"status" validate:"oneof=active inactive suspended"`
}
