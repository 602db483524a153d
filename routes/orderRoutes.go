package routes

import (
	"github.com/Kariqs/amana-storefront/controllers"
	"github.com/gin-gonic/gin"
)

func OrderRoutes(api *gin.RouterGroup, h *controllers.Handler) {
	api.GET("/checkout", h.GetCheckout)
	api.POST("/checkout", h.PlaceOrder)
	api.GET("/orders/track", h.TrackOrder)
}
