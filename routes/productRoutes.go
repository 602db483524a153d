package routes

import (
	"github.com/Kariqs/amana-storefront/controllers"
	"github.com/gin-gonic/gin"
)

func ProductRoutes(api *gin.RouterGroup, h *controllers.Handler) {
	api.GET("/products", h.GetProducts)
	api.GET("/products/home", h.GetHomeProducts)
	api.GET("/products/:slug", h.GetProduct)
}
