package checkout

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/Kariqs/amana-storefront/cart"
	"github.com/Kariqs/amana-storefront/models"
	"github.com/Kariqs/amana-storefront/shop"
	"github.com/Kariqs/amana-storefront/utils"
	"github.com/sirupsen/logrus"
)

var (
	ErrEmptyCart        = errors.New("Your cart is empty!")
	ErrUnavailableItems = errors.New("Some items in your cart are no longer available")
)

type Backend interface {
	PlaceOrder(ctx context.Context, token string, in models.PlaceOrderRequest) (string, error)
}

type Mailer interface {
	SendOrderConfirmation(emailTo string, data utils.OrderEmailData) error
}

type Confirmation struct {
	OrderID     string  `json:"orderId"`
	Email       string  `json:"email"`
	Amount      float64 `json:"amount"`
	TrackingURL string  `json:"trackingUrl"`
}

// BuildOrder turns the priced cart lines and the delivery form into a COD
// order. The amount is recomputed from the lines.
func BuildOrder(lines []cart.Line, form Form, user *models.User) models.PlaceOrderRequest {
	form = form.Normalize()
	req := models.PlaceOrderRequest{
		Items:         make([]models.OrderItem, 0, len(lines)),
		Address:       form.ToAddress(),
		PaymentMethod: models.PaymentMethodCOD,
		Payment:       false,
	}
	for _, l := range lines {
		req.Items = append(req.Items, models.OrderItem{
			ProductID: l.ProductID,
			Name:      l.Name,
			Price:     l.Price,
			Quantity:  l.Quantity,
			Image:     l.Image,
		})
		req.Amount += l.Price * float64(l.Quantity)
	}
	if user != nil {
		req.UserID = user.ID
	} else {
		req.GuestInfo = &models.GuestInfo{Name: form.Name, Email: form.Email, Phone: form.Phone}
	}
	return req
}

type Service struct {
	shop        *shop.Service
	backend     Backend
	mailer      Mailer
	frontendURL string
	now         func() time.Time
	mails       sync.WaitGroup
}

// NewService wires checkout. mailer may be nil.
func NewService(s *shop.Service, b Backend, mailer Mailer, frontendURL string) *Service {
	return &Service{
		shop:        s,
		backend:     b,
		mailer:      mailer,
		frontendURL: strings.TrimRight(frontendURL, "/"),
		now:         time.Now,
	}
}

type Summary struct {
	Cart    shop.View `json:"cart"`
	Prefill Form      `json:"prefill"`
}

func (s *Service) Summary(ctx context.Context, sid string) (Summary, error) {
	view, err := s.shop.CartView(ctx, sid)
	if err != nil {
		return Summary{}, err
	}
	return Summary{Cart: view, Prefill: Prefill(view.User)}, nil
}

func (s *Service) TrackingURL(orderID, email string) string {
	q := url.Values{}
	q.Set("orderId", orderID)
	q.Set("email", email)
	return s.frontendURL + "/track-order?" + q.Encode()
}

// Place validates the form, submits the order and clears the cart. Nothing
// is sent to the backend when validation fails. The confirmation email goes
// out in the background.
func (s *Service) Place(ctx context.Context, sid string, form Form) (*Confirmation, error) {
	form = form.Normalize()
	if err := Validate(form); err != nil {
		return nil, err
	}

	view, err := s.shop.CartView(ctx, sid)
	if err != nil {
		return nil, err
	}
	if len(view.Unavailable) > 0 {
		return nil, ErrUnavailableItems
	}
	if len(view.Lines) == 0 {
		return nil, ErrEmptyCart
	}
	v, err := s.shop.Visitor(ctx, sid)
	if err != nil {
		return nil, err
	}

	var user *models.User
	if v.Authenticated {
		user = v.User
	}
	req := BuildOrder(view.Lines, form, user)
	req.Date = s.now().UnixMilli()

	orderID, err := s.backend.PlaceOrder(ctx, v.Token, req)
	if err != nil {
		logrus.Errorf("Place: failed to place order err = %v", err)
		return nil, err
	}
	logrus.WithFields(logrus.Fields{"order": orderID, "amount": req.Amount}).Info("order placed")

	if err := s.shop.ClearCart(ctx, sid); err != nil {
		logrus.Errorf("Place: order %s placed but cart not cleared err = %v", orderID, err)
	}

	conf := &Confirmation{
		OrderID:     orderID,
		Email:       form.Email,
		Amount:      req.Amount,
		TrackingURL: s.TrackingURL(orderID, form.Email),
	}
	if s.mailer != nil {
		data := utils.OrderEmailData{
			Name:        form.Name,
			OrderID:     orderID,
			Items:       req.Items,
			Amount:      req.Amount,
			Currency:    s.shop.Options().Currency,
			TrackingURL: conf.TrackingURL,
		}
		s.mails.Add(1)
		go func(to string) {
			defer s.mails.Done()
			if err := s.mailer.SendOrderConfirmation(to, data); err != nil {
				logrus.Errorf("Place: failed to send confirmation for order %s err = %v", data.OrderID, err)
			}
		}(form.Email)
	}
	return conf, nil
}

// Wait blocks until every confirmation email started by Place has been sent
// or has failed.
func (s *Service) Wait() {
	s.mails.Wait()
}
