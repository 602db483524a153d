package routes

import (
	"github.com/Kariqs/amana-storefront/controllers"
	"github.com/Kariqs/amana-storefront/middlewares"
	"github.com/gin-gonic/gin"
)

func AdminRoutes(api *gin.RouterGroup, h *controllers.Handler) {
	admin := api.Group("/admin", middlewares.RequireAdmin(h.Shop))
	{
		admin.GET("/dashboard", h.GetDashboard)

		admin.GET("/products", h.AdminListProducts)
		admin.POST("/products", h.AdminAddProduct)
		admin.PUT("/products/:id", h.AdminUpdateProduct)
		admin.DELETE("/products/:id", h.AdminRemoveProduct)

		admin.GET("/orders", h.AdminListOrders)
		admin.PATCH("/orders/:orderId/status", h.AdminUpdateOrderStatus)
		admin.PUT("/orders/:orderId/tracking", h.AdminUpdateTracking)

		admin.GET("/users", h.AdminListUsers)
		admin.PUT("/users/:userId", h.AdminUpdateUser)
		admin.DELETE("/users/:userId", h.AdminDeleteUser)

		admin.GET("/vendors", h.AdminListVendors)
		admin.PUT("/vendors/:vendorId", h.AdminUpdateVendor)
		admin.DELETE("/vendors/:vendorId", h.AdminDeleteVendor)
	}
}
