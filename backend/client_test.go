package backend

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Kariqs/amana-storefront/cart"
	"github.com/Kariqs/amana-storefront/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, register func(r *gin.Engine)) *Client {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	register(r)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return New(srv.URL, 5*time.Second)
}

func TestListProductsDecodesAndValidates(t *testing.T) {
	c := newTestClient(t, func(r *gin.Engine) {
		r.GET("/api/product/list", func(ctx *gin.Context) {
			ctx.JSON(http.StatusOK, gin.H{"success": true, "products": []gin.H{
				{"_id": "p1", "name": "Honey", "price": 100, "stock": 5, "image": []string{"a.jpg"}},
			}})
		})
	})

	products, err := c.ListProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Honey", products[0].Name)
	assert.Equal(t, "a.jpg", products[0].FirstImage())
}

func TestListProductsRejectsMalformedProducts(t *testing.T) {
	c := newTestClient(t, func(r *gin.Engine) {
		r.GET("/api/product/list", func(ctx *gin.Context) {
			ctx.JSON(http.StatusOK, gin.H{"success": true, "products": []gin.H{{"_id": "p1", "price": -3}}})
		})
	})

	_, err := c.ListProducts(context.Background())
	assert.ErrorIs(t, err, ErrMalformedPayload)
}

func TestDeclinedCallSurfacesBackendMessage(t *testing.T) {
	c := newTestClient(t, func(r *gin.Engine) {
		r.POST("/api/order/place", func(ctx *gin.Context) {
			ctx.JSON(http.StatusOK, gin.H{"success": false, "message": "Delivery not available in your city"})
		})
	})

	_, err := c.PlaceOrder(context.Background(), "", models.PlaceOrderRequest{})
	var be *Error
	require.True(t, errors.As(err, &be))
	assert.True(t, be.Declined)
	assert.Equal(t, "Delivery not available in your city", UserMessage(err, "Failed to place order"))
}

func TestHTTPErrorsMapToSentinels(t *testing.T) {
	c := newTestClient(t, func(r *gin.Engine) {
		r.POST("/api/cart/get", func(ctx *gin.Context) {
			ctx.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Not Authorized Login Again"})
		})
		r.GET("/api/order/track", func(ctx *gin.Context) {
			ctx.String(http.StatusNotFound, "<html>nope</html>")
		})
	})

	_, err := c.GetCart(context.Background(), "tok")
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, "Not Authorized Login Again", UserMessage(err, ""))

	_, err = c.TrackOrder(context.Background(), "o1", "")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "fallback", UserMessage(err, "fallback"))
}

func TestUnreachableBackend(t *testing.T) {
	c := New("http://127.0.0.1:1", time.Second)
	_, err := c.ListProducts(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestCartMutationsForwardTokenAndIdempotencyKey(t *testing.T) {
	var keys []string
	var auth []string
	c := newTestClient(t, func(r *gin.Engine) {
		r.POST("/api/cart/add", func(ctx *gin.Context) {
			keys = append(keys, ctx.GetHeader(IdempotencyHeader))
			auth = append(auth, ctx.GetHeader("Authorization"))
			var body struct {
				ItemID string `json:"itemId"`
			}
			assert.NoError(t, ctx.ShouldBindJSON(&body))
			assert.Equal(t, "p1", body.ItemID)
			ctx.JSON(http.StatusOK, gin.H{"success": true, "message": "Added To Cart"})
		})
	})

	require.NoError(t, c.AddToCart(context.Background(), "tok", "p1"))
	require.NoError(t, c.AddToCart(context.Background(), "tok", "p1"))

	require.Len(t, keys, 2)
	assert.NotEmpty(t, keys[0])
	assert.NotEqual(t, keys[0], keys[1])
	assert.Equal(t, []string{"Bearer tok", "Bearer tok"}, auth)
}

func TestGetCart(t *testing.T) {
	c := newTestClient(t, func(r *gin.Engine) {
		r.POST("/api/cart/get", func(ctx *gin.Context) {
			ctx.JSON(http.StatusOK, gin.H{"success": true, "cartData": gin.H{"p1": 2, "p2": 0}})
		})
	})

	got, err := c.GetCart(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, cart.Cart{"p1": 2}, got)
}

func TestGetProductUsesStatusFlag(t *testing.T) {
	c := newTestClient(t, func(r *gin.Engine) {
		r.GET("/api/product/:slug", func(ctx *gin.Context) {
			if ctx.Param("slug") != "honey" {
				ctx.JSON(http.StatusOK, gin.H{"status": false})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"status": true, "product": gin.H{"_id": "p1", "name": "Honey", "slug": "honey"}})
		})
	})

	p, err := c.GetProduct(context.Background(), "honey")
	require.NoError(t, err)
	assert.Equal(t, "p1", p.ID)

	_, err = c.GetProduct(context.Background(), "ghee")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPlaceOrderReadsEitherIDField(t *testing.T) {
	c := newTestClient(t, func(r *gin.Engine) {
		r.POST("/api/order/place", func(ctx *gin.Context) {
			ctx.JSON(http.StatusOK, gin.H{"success": true, "order": gin.H{"_id": "o-42"}})
		})
	})

	id, err := c.PlaceOrder(context.Background(), "", models.PlaceOrderRequest{})
	require.NoError(t, err)
	assert.Equal(t, "o-42", id)
}

func TestLoginDefaultsRole(t *testing.T) {
	c := newTestClient(t, func(r *gin.Engine) {
		r.POST("/api/user/login", func(ctx *gin.Context) {
			ctx.JSON(http.StatusOK, gin.H{"success": true, "token": "tok", "user": gin.H{"_id": "u1", "email": "a@b.co"}})
		})
	})

	token, user, err := c.Login(context.Background(), models.LoginData{Email: "a@b.co", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "tok", token)
	assert.Equal(t, models.RoleUser, user.Role)
}

func TestUpdateAndDeleteBodies(t *testing.T) {
	var userBody, vendorBody map[string]any
	c := newTestClient(t, func(r *gin.Engine) {
		r.PUT("/api/user/update", func(ctx *gin.Context) {
			assert.NoError(t, ctx.ShouldBindJSON(&userBody))
			ctx.JSON(http.StatusOK, gin.H{"success": true})
		})
		r.DELETE("/api/vendor/delete", func(ctx *gin.Context) {
			assert.NoError(t, ctx.ShouldBindJSON(&vendorBody))
			ctx.JSON(http.StatusOK, gin.H{"success": true})
		})
	})

	require.NoError(t, c.UpdateUser(context.Background(), "tok", "u1", models.UserUpdate{Name: "A", Email: "a@b.co", Role: models.RoleAdmin}))
	assert.Equal(t, "u1", userBody["userId"])
	assert.Equal(t, "admin", userBody["role"])

	require.NoError(t, c.DeleteVendor(context.Background(), "tok", "v1"))
	assert.Equal(t, map[string]any{"vendorId": "v1"}, vendorBody)
}
