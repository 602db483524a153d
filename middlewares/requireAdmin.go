package middlewares

import (
	"net/http"

	"github.com/Kariqs/amana-storefront/shop"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const loginRedirect = "/login"

// RequireAdmin lets through sessions whose stored profile has the admin
// role. The backend still authorizes every call made with the token.
func RequireAdmin(s *shop.Service) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		v, err := s.Visitor(ctx.Request.Context(), SID(ctx))
		if err != nil {
			logrus.Errorf("RequireAdmin: failed to load session err = %v", err)
			ctx.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
			return
		}
		if !v.Authenticated {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Please login to continue", "redirect": loginRedirect})
			return
		}
		if !v.User.IsAdmin() {
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Admin access required", "redirect": loginRedirect})
			return
		}

		ctx.Set(visitorKey, v)
		ctx.Next()
	}
}

// Visitor returns the session resolved by RequireAdmin.
func Visitor(ctx *gin.Context) *shop.Visitor {
	v, _ := ctx.Get(visitorKey)
	visitor, _ := v.(*shop.Visitor)
	return visitor
}
