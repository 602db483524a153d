package models

import "strings"

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusConfirmed  OrderStatus = "confirmed"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// Normalize lower-cases and trims a status as received from the backend.
func (s OrderStatus) Normalize() OrderStatus {
	return OrderStatus(strings.ToLower(strings.TrimSpace(string(s))))
}

const PaymentMethodCOD = "COD"

type Address struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	City    string `json:"city"`
}

type OrderItem struct {
	ProductID string  `json:"productId" validate:"required"`
	Name      string  `json:"name"`
	Price     float64 `json:"price" validate:"gte=0"`
	Quantity  int     `json:"quantity" validate:"gte=1"`
	Image     string  `json:"image"`
}

type GuestInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type Order struct {
	ID            string      `json:"_id" validate:"required"`
	UserID        string      `json:"userId,omitempty"`
	Items         []OrderItem `json:"items" validate:"dive"`
	Amount        float64     `json:"amount" validate:"gte=0"`
	Address       Address     `json:"address"`
	PaymentMethod string      `json:"paymentMethod"`
	Payment       bool        `json:"payment"`
	Status        OrderStatus `json:"status"`
	Date          int64       `json:"date"`
	CreatedAt     string      `json:"createdAt,omitempty"`
}

// PlaceOrderRequest is the payload sent to the backend's order placement
// endpoint. Exactly one of UserID and GuestInfo is set.
type PlaceOrderRequest struct {
	Items         []OrderItem `json:"items"`
	Amount        float64     `json:"amount"`
	Address       Address     `json:"address"`
	PaymentMethod string      `json:"paymentMethod"`
	Payment       bool        `json:"payment"`
	Date          int64       `json:"date"`
	UserID        string      `json:"userId,omitempty"`
	GuestInfo     *GuestInfo  `json:"guestInfo,omitempty"`
}

type OrderStatusUpdate struct {
	OrderID string      `json:"orderId"`
	Status  OrderStatus `json:"status" binding:"required" validate:"oneof=pending confirmed processing shipped delivered cancelled"`
}

type TrackingUpdate struct {
	Status            string `json:"status" binding:"required" validate:"oneof=Processing Shipped 'Out for Delivery' Delivered"`
	Comment           string `json:"comment"`
	EstimatedDelivery string `json:"estimatedDelivery"`
}
