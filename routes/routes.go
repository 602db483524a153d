package routes

import (
	"github.com/Kariqs/amana-storefront/controllers"
	"github.com/Kariqs/amana-storefront/middlewares"
	"github.com/gin-gonic/gin"
)

// Register mounts every route on server. sessionMaxAge is the sid cookie
// lifetime in seconds.
func Register(server *gin.Engine, h *controllers.Handler, sessionMaxAge int, secureCookie bool) {
	DefaultRoutes(server)

	api := server.Group("/api", middlewares.Session(sessionMaxAge, secureCookie))
	ProductRoutes(api, h)
	CartRoutes(api, h)
	AuthRoutes(api, h)
	OrderRoutes(api, h)
	AdminRoutes(api, h)
}
