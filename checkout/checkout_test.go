package checkout

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Kariqs/amana-storefront/backend"
	"github.com/Kariqs/amana-storefront/cart"
	"github.com/Kariqs/amana-storefront/models"
	"github.com/Kariqs/amana-storefront/session"
	"github.com/Kariqs/amana-storefront/shop"
	"github.com/Kariqs/amana-storefront/utils"
	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeShopBackend struct {
	placed     atomic.Int32
	lastOrder  models.PlaceOrderRequest
	placeReply gin.H
}

func (f *fakeShopBackend) router(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/product/list", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"success": true, "products": []gin.H{
			{"_id": "p1", "name": "Honey", "price": 100, "stock": 5, "image": []string{"honey.jpg"}},
			{"_id": "p2", "name": "Ghee", "price": 250, "stock": 2},
		}})
	})
	r.POST("/api/order/place", func(ctx *gin.Context) {
		f.placed.Add(1)
		assert.NoError(t, ctx.ShouldBindJSON(&f.lastOrder))
		ctx.JSON(http.StatusOK, f.placeReply)
	})
	return r
}

type recordingMailer struct {
	mu      sync.Mutex
	to      string
	data    utils.OrderEmailData
	release chan struct{} // when set, sends block until it is closed
}

func (m *recordingMailer) SendOrderConfirmation(to string, data utils.OrderEmailData) error {
	if m.release != nil {
		<-m.release
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.to, m.data = to, data
	return nil
}

func (m *recordingMailer) sentTo() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.to
}

func newTestCheckout(t *testing.T) (*Service, *shop.Service, *fakeShopBackend, *recordingMailer, session.Store) {
	t.Helper()
	fb := &fakeShopBackend{placeReply: gin.H{"success": true, "orderId": "o-1"}}
	srv := httptest.NewServer(fb.router(t))
	t.Cleanup(srv.Close)

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	store := session.NewRedisStoreFromClient(client, time.Hour)

	bc := backend.New(srv.URL, 5*time.Second)
	sh := shop.NewService(bc, store, shop.Options{Currency: "Rs.", DeliveryFee: 10})
	require.NoError(t, sh.LoadProducts(context.Background()))

	mailer := &recordingMailer{}
	return NewService(sh, bc, mailer, "http://localhost:5173/"), sh, fb, mailer, store
}

func validForm() Form {
	return Form{Name: "Asha Rao", Email: "asha@example.com", Phone: "98765 43210", Address: "12 Lake Rd", City: "Pune"}
}

func TestValidateMessages(t *testing.T) {
	assert.NoError(t, Validate(validForm()))

	err := Validate(Form{})
	var fe FieldErrors
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, FieldErrors{
		"name":    "Full name is required",
		"email":   "Email is required",
		"phone":   "Phone number is required",
		"address": "Address is required",
		"city":    "City is required",
	}, fe)

	f := validForm()
	f.Email = "not-an-email"
	f.Phone = "12345"
	require.ErrorAs(t, Validate(f), &fe)
	assert.Equal(t, "Please enter a valid email", fe["email"])
	assert.Equal(t, "Please enter a valid phone number", fe["phone"])
	assert.Len(t, fe, 2)

	f = validForm()
	f.Name = "   "
	f.Phone = "+91 (020) 555-1234"
	require.ErrorAs(t, Validate(f), &fe)
	assert.Equal(t, FieldErrors{"name": "Full name is required", "phone": "Please enter a valid phone number"}, fe)
}

func TestPrefill(t *testing.T) {
	assert.Equal(t, Form{}, Prefill(nil))
	f := Prefill(&models.User{Name: "Asha", Email: "a@b.co", Phone: "9876543210", City: "Pune"})
	assert.Equal(t, "Asha", f.Name)
	assert.Equal(t, "Pune", f.City)
}

func TestBuildOrder(t *testing.T) {
	lines := []cart.Line{
		{ProductID: "p1", Name: "Honey", Price: 100, Quantity: 2, Image: "honey.jpg"},
		{ProductID: "p2", Name: "Ghee", Price: 250, Quantity: 1},
	}
	guest := BuildOrder(lines, validForm(), nil)
	assert.Equal(t, 450.0, guest.Amount)
	assert.Equal(t, "COD", guest.PaymentMethod)
	assert.False(t, guest.Payment)
	require.NotNil(t, guest.GuestInfo)
	assert.Equal(t, "asha@example.com", guest.GuestInfo.Email)
	assert.Empty(t, guest.UserID)
	assert.Equal(t, "honey.jpg", guest.Items[0].Image)

	authed := BuildOrder(lines, validForm(), &models.User{ID: "u1"})
	assert.Equal(t, "u1", authed.UserID)
	assert.Nil(t, authed.GuestInfo)
}

func TestPlaceMissingEmailMakesNoCall(t *testing.T) {
	svc, sh, fb, _, _ := newTestCheckout(t)
	ctx := context.Background()
	_, err := sh.AddToCart(ctx, "sid", "p1", 1)
	require.NoError(t, err)

	f := validForm()
	f.Email = ""
	_, err = svc.Place(ctx, "sid", f)
	var fe FieldErrors
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "Email is required", fe["email"])
	assert.Zero(t, fb.placed.Load())
}

func TestPlaceEmptyCart(t *testing.T) {
	svc, _, fb, _, _ := newTestCheckout(t)
	_, err := svc.Place(context.Background(), "sid", validForm())
	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Zero(t, fb.placed.Load())
}

func TestPlaceUnavailableItems(t *testing.T) {
	svc, _, fb, _, store := newTestCheckout(t)
	ctx := context.Background()
	require.NoError(t, session.NewLocal(store, "sid").SetGuestCart(ctx, cart.Cart{"gone": 1}))

	_, err := svc.Place(ctx, "sid", validForm())
	assert.ErrorIs(t, err, ErrUnavailableItems)
	assert.Zero(t, fb.placed.Load())
}

func TestPlaceGuestOrder(t *testing.T) {
	svc, sh, fb, mailer, _ := newTestCheckout(t)
	ctx := context.Background()
	_, err := sh.AddToCart(ctx, "sid", "p1", 2)
	require.NoError(t, err)
	_, err = sh.AddToCart(ctx, "sid", "p2", 1)
	require.NoError(t, err)

	conf, err := svc.Place(ctx, "sid", validForm())
	require.NoError(t, err)
	assert.Equal(t, "o-1", conf.OrderID)
	assert.Equal(t, 450.0, conf.Amount)
	assert.Equal(t, "http://localhost:5173/track-order?email=asha%40example.com&orderId=o-1", conf.TrackingURL)

	assert.EqualValues(t, 1, fb.placed.Load())
	assert.Equal(t, 450.0, fb.lastOrder.Amount)
	assert.Len(t, fb.lastOrder.Items, 2)
	require.NotNil(t, fb.lastOrder.GuestInfo)
	assert.Equal(t, "Asha Rao", fb.lastOrder.GuestInfo.Name)
	assert.NotZero(t, fb.lastOrder.Date)

	st, err := sh.State(ctx, "sid")
	require.NoError(t, err)
	assert.Empty(t, st.Cart)

	svc.Wait()
	assert.Equal(t, "asha@example.com", mailer.sentTo())
	assert.Equal(t, "Rs.", mailer.data.Currency)
}

func TestPlaceDoesNotWaitForMail(t *testing.T) {
	svc, sh, _, mailer, _ := newTestCheckout(t)
	ctx := context.Background()
	mailer.release = make(chan struct{})
	_, err := sh.AddToCart(ctx, "sid", "p1", 1)
	require.NoError(t, err)

	conf, err := svc.Place(ctx, "sid", validForm())
	require.NoError(t, err)
	assert.Equal(t, "o-1", conf.OrderID)
	assert.Empty(t, mailer.sentTo())

	close(mailer.release)
	svc.Wait()
	assert.Equal(t, "asha@example.com", mailer.sentTo())
}

func TestPlaceDeclinedKeepsCart(t *testing.T) {
	svc, sh, fb, _, _ := newTestCheckout(t)
	ctx := context.Background()
	fb.placeReply = gin.H{"success": false, "message": "Delivery not available in your area"}
	_, err := sh.AddToCart(ctx, "sid", "p1", 1)
	require.NoError(t, err)

	_, err = svc.Place(ctx, "sid", validForm())
	require.Error(t, err)
	assert.Equal(t, "Delivery not available in your area", backend.UserMessage(err, "Failed to place order"))

	st, err := sh.State(ctx, "sid")
	require.NoError(t, err)
	assert.Equal(t, 1, st.Count)
}
