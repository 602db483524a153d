package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	SessionCookie = "sid"
	sessionKey    = "sid"
	visitorKey    = "visitor"
)

// Session makes sure every request carries a visitor id, issuing a new
// cookie when the browser has none.
func Session(maxAge int, secure bool) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		sid, err := ctx.Cookie(SessionCookie)
		if err != nil || uuid.Validate(sid) != nil {
			sid = uuid.NewString()
		}
		ctx.SetSameSite(http.SameSiteLaxMode)
		ctx.SetCookie(SessionCookie, sid, maxAge, "/", "", secure, true)
		ctx.Set(sessionKey, sid)
		ctx.Next()
	}
}

// SID returns the visitor id set by Session.
func SID(ctx *gin.Context) string {
	return ctx.GetString(sessionKey)
}
