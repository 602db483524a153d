package routes

import (
	"github.com/Kariqs/amana-storefront/controllers"
	"github.com/gin-gonic/gin"
)

func CartRoutes(api *gin.RouterGroup, h *controllers.Handler) {
	cart := api.Group("/cart")
	{
		cart.GET("", h.GetCart)
		cart.POST("/add", h.AddToCart)
		cart.POST("/update", h.UpdateCart)
		cart.DELETE("", h.ClearCart)
	}
}
