package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Kariqs/amana-storefront/cart"
	"github.com/Kariqs/amana-storefront/models"
	"github.com/golang-jwt/jwt/v5"
)

const (
	keyToken     = "token"
	keyUser      = "user"
	keyCartItems = "cartItems"
	keyMirror    = "cartMirror"
)

// Local is the key-value view of one visitor.
type Local struct {
	store Store
	sid   string
}

func NewLocal(store Store, sid string) *Local {
	return &Local{store: store, sid: sid}
}

func (l *Local) SID() string { return l.sid }

func (l *Local) key(name string) string {
	return l.sid + ":" + name
}

func (l *Local) get(ctx context.Context, name string, v any) (bool, error) {
	raw, err := l.store.Get(ctx, l.key(name))
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return false, fmt.Errorf("decode %s: %w", name, err)
	}
	return true, nil
}

func (l *Local) set(ctx context.Context, name string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	return l.store.Set(ctx, l.key(name), raw)
}

func (l *Local) Token(ctx context.Context) (string, error) {
	var token string
	_, err := l.get(ctx, keyToken, &token)
	return token, err
}

func (l *Local) SetToken(ctx context.Context, token string) error {
	return l.set(ctx, keyToken, token)
}

// ValidToken returns the stored token when it is present and not expired.
// The signature is not checked here; the backend verifies every request.
func (l *Local) ValidToken(ctx context.Context) (string, bool, error) {
	token, err := l.Token(ctx)
	if err != nil || token == "" {
		return "", false, err
	}
	return token, TokenUsable(token, time.Now()), nil
}

// TokenUsable reports whether token is a well-formed JWT whose exp claim,
// when present, lies after now.
func TokenUsable(token string, now time.Time) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil {
		return false
	}
	return exp == nil || exp.After(now)
}

func (l *Local) User(ctx context.Context) (*models.User, error) {
	var user models.User
	ok, err := l.get(ctx, keyUser, &user)
	if err != nil || !ok {
		return nil, err
	}
	return &user, nil
}

func (l *Local) SetUser(ctx context.Context, user models.User) error {
	return l.set(ctx, keyUser, user)
}

func (l *Local) cart(ctx context.Context, name string) (cart.Cart, error) {
	raw, err := l.store.Get(ctx, l.key(name))
	if errors.Is(err, ErrNotFound) {
		return cart.Cart{}, nil
	}
	if err != nil {
		return nil, err
	}
	return cart.Parse(raw)
}

func (l *Local) GuestCart(ctx context.Context) (cart.Cart, error) {
	return l.cart(ctx, keyCartItems)
}

func (l *Local) SetGuestCart(ctx context.Context, c cart.Cart) error {
	return l.store.Set(ctx, l.key(keyCartItems), c.Encode())
}

func (l *Local) ClearGuestCart(ctx context.Context) error {
	return l.store.Delete(ctx, l.key(keyCartItems))
}

// Mirror is the last known copy of the server cart of a logged-in visitor.
func (l *Local) Mirror(ctx context.Context) (cart.Cart, error) {
	return l.cart(ctx, keyMirror)
}

func (l *Local) SetMirror(ctx context.Context, c cart.Cart) error {
	return l.store.Set(ctx, l.key(keyMirror), c.Encode())
}

// Forget drops the login: token, profile and server cart mirror. The guest
// cart is left alone.
func (l *Local) Forget(ctx context.Context) error {
	return l.store.Delete(ctx, l.key(keyToken), l.key(keyUser), l.key(keyMirror))
}
