package shop

import (
	"context"

	"github.com/Kariqs/amana-storefront/cart"
	"github.com/Kariqs/amana-storefront/models"
	"github.com/Kariqs/amana-storefront/session"
	"github.com/sirupsen/logrus"
)

func (s *Service) stocked(id string) (models.Product, error) {
	p, ok := s.product(id)
	if !ok {
		return p, ErrUnknownProduct
	}
	if p.Stock == 0 {
		return p, ErrOutOfStock
	}
	return p, nil
}

// AddToCart adds quantity units of a product on top of what the cart holds.
// A single request may not ask for more than the product's stock. Logged-in
// visitors add one unit per backend call; the mirror reflects only the calls
// that succeeded.
func (s *Service) AddToCart(ctx context.Context, sid, itemID string, quantity int) (State, error) {
	if quantity < 0 {
		return State{}, ErrInvalidQuantity
	}
	if quantity == 0 {
		return s.State(ctx, sid)
	}
	p, err := s.stocked(itemID)
	if err != nil {
		return State{}, err
	}
	if quantity > p.Stock {
		return State{}, ErrInsufficientStock
	}

	release := s.lanes.acquire(sid)
	defer release()

	v, err := s.Visitor(ctx, sid)
	if err != nil {
		return State{}, err
	}
	c, err := v.cart(ctx)
	if err != nil {
		return State{}, err
	}

	if !v.Authenticated {
		c = cart.Add(c, itemID, quantity)
		if err := v.save(ctx, c); err != nil {
			return State{}, err
		}
		return s.state(v, c), nil
	}

	var callErr error
	for i := 0; i < quantity; i++ {
		if callErr = s.backend.AddToCart(ctx, v.Token, itemID); callErr != nil {
			logrus.Errorf("AddToCart: backend add failed after %d of %d units err = %v", i, quantity, callErr)
			break
		}
		c = cart.Add(c, itemID, 1)
	}
	if err := v.save(ctx, c); err != nil {
		return State{}, err
	}
	return s.state(v, c), callErr
}

// UpdateQuantity sets the quantity of a line; zero or less removes it.
func (s *Service) UpdateQuantity(ctx context.Context, sid, itemID string, quantity int) (State, error) {
	if quantity > 0 {
		p, ok := s.product(itemID)
		if !ok {
			return State{}, ErrUnknownProduct
		}
		if quantity > p.Stock {
			return State{}, ErrInsufficientStock
		}
	} else {
		quantity = 0
	}

	release := s.lanes.acquire(sid)
	defer release()

	v, err := s.Visitor(ctx, sid)
	if err != nil {
		return State{}, err
	}
	c, err := v.cart(ctx)
	if err != nil {
		return State{}, err
	}
	if v.Authenticated {
		if err := s.backend.UpdateCart(ctx, v.Token, itemID, quantity); err != nil {
			logrus.Errorf("UpdateQuantity: backend update failed err = %v", err)
			return s.state(v, c), err
		}
	}
	c = cart.SetQuantity(c, itemID, quantity)
	if err := v.save(ctx, c); err != nil {
		return State{}, err
	}
	return s.state(v, c), nil
}

// ClearCart empties the visitor's cart, on the server too when logged in.
func (s *Service) ClearCart(ctx context.Context, sid string) error {
	release := s.lanes.acquire(sid)
	defer release()

	v, err := s.Visitor(ctx, sid)
	if err != nil {
		return err
	}
	if !v.Authenticated {
		return v.Local.ClearGuestCart(ctx)
	}
	if err := s.backend.ClearCart(ctx, v.Token); err != nil {
		logrus.Errorf("ClearCart: backend clear failed err = %v", err)
		return err
	}
	return v.Local.SetMirror(ctx, cart.Cart{})
}

// Login authenticates against the backend, stores the session and loads the
// server cart. With the replace policy the guest cart is left untouched and
// unused. Other policies push the merged quantities to the server and then
// drop the guest cart; when the server cart cannot be read or a push fails
// the guest cart is kept.
func (s *Service) Login(ctx context.Context, sid string, in models.LoginData) (State, error) {
	token, user, err := s.backend.Login(ctx, in)
	if err != nil {
		return State{}, err
	}

	release := s.lanes.acquire(sid)
	defer release()

	v, err := s.Visitor(ctx, sid)
	if err != nil {
		return State{}, err
	}
	if err := v.Local.SetToken(ctx, token); err != nil {
		return State{}, err
	}
	if err := v.Local.SetUser(ctx, *user); err != nil {
		return State{}, err
	}
	v.Token, v.User, v.Authenticated = token, user, true

	server, err := s.backend.GetCart(ctx, token)
	fetched := err == nil
	if !fetched {
		logrus.Warnf("Login: failed to fetch server cart err = %v", err)
		server = cart.Cart{}
	}
	mirror := server

	// Without the server cart a merge would overwrite its lines, so the guest
	// cart is kept for a later login instead.
	if s.opts.MergePolicy != cart.MergeReplace && fetched {
		guest, err := v.Local.GuestCart(ctx)
		if err != nil {
			return State{}, err
		}
		merged := cart.Merge(guest, server, s.opts.MergePolicy)
		pushed := true
		for id, q := range cart.Diff(server, merged) {
			if err := s.backend.UpdateCart(ctx, token, id, q); err != nil {
				logrus.Errorf("Login: failed to push merged cart line %s err = %v", id, err)
				pushed = false
				break
			}
			mirror = cart.SetQuantity(mirror, id, q)
		}
		if pushed {
			if err := v.Local.ClearGuestCart(ctx); err != nil {
				return State{}, err
			}
		}
	}

	if err := v.Local.SetMirror(ctx, mirror); err != nil {
		return State{}, err
	}
	logrus.WithField("user", user.ID).Info("visitor logged in")
	return s.state(v, mirror), nil
}

// Logout forgets the token, the user and the server cart mirror. The guest
// cart survives.
func (s *Service) Logout(ctx context.Context, sid string) error {
	release := s.lanes.acquire(sid)
	defer release()
	return session.NewLocal(s.store, sid).Forget(ctx)
}
