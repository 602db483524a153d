package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to the Amana organic store API. Every route is a JSON endpoint; the visitor is identified by the "sid" cookie.

The following are the endpoints for this API:

PRODUCT
- GET "/api/products" - Browse the collection (search, category, subCategory, minPrice, maxPrice, sort)
- GET "/api/products/home" - Latest arrivals and bestsellers
- GET "/api/products/:slug" - Product detail with related products

CART
- GET "/api/cart" - Cart lines, subtotal, delivery fee and total
- POST "/api/cart/add" - Add a product to the cart
- POST "/api/cart/update" - Set the quantity of a cart line (0 removes it)
- DELETE "/api/cart" - Empty the cart

AUTH
- POST "/api/auth/login" - Log in; the server cart replaces the guest cart
- POST "/api/auth/logout" - Log out
- GET "/api/auth/me" - Current visitor and cart summary

ORDER
- GET "/api/checkout" - Checkout summary and delivery form prefill
- POST "/api/checkout" - Place a cash-on-delivery order
- GET "/api/orders/track" - Track an order by orderId and/or email

ADMIN
- GET "/api/admin/dashboard" - Headline totals
- GET|POST "/api/admin/products" - List or add products
- PUT|DELETE "/api/admin/products/:id" - Update or remove a product
- GET "/api/admin/orders" - List orders
- PATCH "/api/admin/orders/:orderId/status" - Update order status
- PUT "/api/admin/orders/:orderId/tracking" - Update tracking details
- GET "/api/admin/users", PUT|DELETE "/api/admin/users/:userId"
- GET "/api/admin/vendors", PUT|DELETE "/api/admin/vendors/:vendorId"`

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message": message,
	})
}
