package shop

import (
	"context"

	"github.com/Kariqs/amana-storefront/cart"
	"github.com/Kariqs/amana-storefront/models"
	"github.com/Kariqs/amana-storefront/session"
	"github.com/sirupsen/logrus"
)

// Visitor is the resolved session of one browser.
type Visitor struct {
	Local         *session.Local
	Token         string
	User          *models.User
	Authenticated bool
}

// Visitor loads the session for sid. A visitor is authenticated when both a
// usable token and a user profile are stored.
func (s *Service) Visitor(ctx context.Context, sid string) (*Visitor, error) {
	local := session.NewLocal(s.store, sid)
	token, ok, err := local.ValidToken(ctx)
	if err != nil {
		return nil, err
	}
	user, err := local.User(ctx)
	if err != nil {
		return nil, err
	}
	v := &Visitor{Local: local, User: user}
	if ok && user != nil {
		v.Token = token
		v.Authenticated = true
	}
	return v, nil
}

func (v *Visitor) cart(ctx context.Context) (cart.Cart, error) {
	if v.Authenticated {
		return v.Local.Mirror(ctx)
	}
	return v.Local.GuestCart(ctx)
}

func (v *Visitor) save(ctx context.Context, c cart.Cart) error {
	if v.Authenticated {
		return v.Local.SetMirror(ctx, c)
	}
	return v.Local.SetGuestCart(ctx, c)
}

type State struct {
	Cart          cart.Cart    `json:"cartItems"`
	Count         int          `json:"count"`
	Amount        float64      `json:"amount"`
	Authenticated bool         `json:"authenticated"`
	User          *models.User `json:"user,omitempty"`
}

func (s *Service) state(v *Visitor, c cart.Cart) State {
	return State{
		Cart:          c,
		Count:         cart.Count(c),
		Amount:        cart.Amount(c, s.Products()),
		Authenticated: v.Authenticated,
		User:          v.User,
	}
}

// State is the current cart snapshot with its derived count and amount.
func (s *Service) State(ctx context.Context, sid string) (State, error) {
	v, err := s.Visitor(ctx, sid)
	if err != nil {
		return State{}, err
	}
	c, err := v.cart(ctx)
	if err != nil {
		return State{}, err
	}
	return s.state(v, c), nil
}

func (s *Service) CartCount(ctx context.Context, sid string) (int, error) {
	st, err := s.State(ctx, sid)
	return st.Count, err
}

func (s *Service) CartAmount(ctx context.Context, sid string) (float64, error) {
	st, err := s.State(ctx, sid)
	return st.Amount, err
}

// syncMirror refreshes the server cart mirror of a logged-in visitor. A
// failed fetch is logged and the stale mirror kept.
func (s *Service) syncMirror(ctx context.Context, v *Visitor) cart.Cart {
	mirror, err := v.Local.Mirror(ctx)
	if err != nil {
		logrus.Warnf("syncMirror: failed to read cart mirror err = %v", err)
		mirror = cart.Cart{}
	}
	server, err := s.backend.GetCart(ctx, v.Token)
	if err != nil {
		logrus.Warnf("syncMirror: failed to fetch server cart err = %v", err)
		return mirror
	}
	if err := v.Local.SetMirror(ctx, server); err != nil {
		logrus.Warnf("syncMirror: failed to store cart mirror err = %v", err)
	}
	return server
}

type View struct {
	Lines         []cart.Line  `json:"items"`
	Unavailable   []string     `json:"unavailable,omitempty"`
	Count         int          `json:"count"`
	Subtotal      float64      `json:"subtotal"`
	DeliveryFee   float64      `json:"deliveryFee"`
	Total         float64      `json:"total"`
	Currency      string       `json:"currency"`
	Authenticated bool         `json:"authenticated"`
	User          *models.User `json:"user,omitempty"`
}

// CartView joins the cart with product data for the cart and checkout pages.
// Logged-in visitors get a fresh copy of the server cart.
func (s *Service) CartView(ctx context.Context, sid string) (View, error) {
	v, err := s.Visitor(ctx, sid)
	if err != nil {
		return View{}, err
	}
	var c cart.Cart
	if v.Authenticated {
		release := s.lanes.acquire(sid)
		c = s.syncMirror(ctx, v)
		release()
	} else if c, err = v.cart(ctx); err != nil {
		return View{}, err
	}
	return s.view(v, c), nil
}

func (s *Service) view(v *Visitor, c cart.Cart) View {
	products := s.Products()
	lines, missing := cart.Lines(c, products)
	subtotal := cart.Amount(c, products)
	view := View{
		Lines:         lines,
		Unavailable:   missing,
		Count:         cart.Count(c),
		Subtotal:      subtotal,
		Currency:      s.opts.Currency,
		Authenticated: v.Authenticated,
		User:          v.User,
	}
	if len(lines) > 0 {
		view.DeliveryFee = s.opts.DeliveryFee
	}
	view.Total = view.Subtotal + view.DeliveryFee
	return view
}
