package middlewares

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Kariqs/amana-storefront/models"
	"github.com/Kariqs/amana-storefront/session"
	"github.com/Kariqs/amana-storefront/shop"
	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) (*gin.Engine, session.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	store := session.NewRedisStoreFromClient(client, time.Hour)
	svc := shop.NewService(nil, store, shop.Options{})

	r := gin.New()
	r.Use(Session(3600, false))
	r.GET("/sid", func(ctx *gin.Context) { ctx.String(http.StatusOK, SID(ctx)) })
	admin := r.Group("/admin", RequireAdmin(svc))
	admin.GET("/ping", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"user": Visitor(ctx).User.ID})
	})
	return r, store
}

func login(t *testing.T, store session.Store, sid string, role models.Role) {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id": "u1", "exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	local := session.NewLocal(store, sid)
	require.NoError(t, local.SetToken(context.Background(), token))
	require.NoError(t, local.SetUser(context.Background(), models.User{ID: "u1", Role: role}))
}

func get(r *gin.Engine, path, sid string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if sid != "" {
		req.AddCookie(&http.Cookie{Name: SessionCookie, Value: sid})
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSessionIssuesAndKeepsCookie(t *testing.T) {
	r, _ := newTestRouter(t)

	w := get(r, "/sid", "")
	require.Equal(t, http.StatusOK, w.Code)
	issued := w.Body.String()
	assert.NoError(t, uuid.Validate(issued))
	assert.Contains(t, w.Header().Get("Set-Cookie"), "sid="+issued)

	sid := uuid.NewString()
	w = get(r, "/sid", sid)
	assert.Equal(t, sid, w.Body.String())

	w = get(r, "/sid", "forged")
	assert.NotEqual(t, "forged", w.Body.String())
}

func TestRequireAdmin(t *testing.T) {
	r, store := newTestRouter(t)

	w := get(r, "/admin/ping", uuid.NewString())
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"message":"Please login to continue","redirect":"/login"}`, w.Body.String())

	shopper := uuid.NewString()
	login(t, store, shopper, models.RoleUser)
	w = get(r, "/admin/ping", shopper)
	assert.Equal(t, http.StatusForbidden, w.Code)

	admin := uuid.NewString()
	login(t, store, admin, models.RoleAdmin)
	w = get(r, "/admin/ping", admin)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user":"u1"}`, w.Body.String())
}
