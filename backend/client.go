// Package backend is the JSON/HTTP client for the remote shop API. Every
// payload is decoded into the typed models and validated at this boundary.
package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

const IdempotencyHeader = "Idempotency-Key"

type Client struct {
	http     *resty.Client
	validate *validator.Validate
}

type envelope struct {
	Success *bool  `json:"success"`
	Message string `json:"message"`
}

// New builds a client for baseURL. There is no retry policy: a failed call
// is reported once to the caller.
func New(baseURL string, timeout time.Duration) *Client {
	rc := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
	return NewWithResty(rc)
}

func NewWithResty(rc *resty.Client) *Client {
	return &Client{http: rc, validate: validator.New(validator.WithRequiredStructEnabled())}
}

func (c *Client) request(ctx context.Context, token string) *resty.Request {
	req := c.http.R().SetContext(ctx)
	if token != "" {
		req.SetAuthToken(token)
	}
	return req
}

// mutation marks a cart mutation with a fresh idempotency key so a replayed
// request can be recognised by the backend.
func (c *Client) mutation(ctx context.Context, token string) *resty.Request {
	return c.request(ctx, token).SetHeader(IdempotencyHeader, uuid.NewString())
}

// do sends req and decodes the body into out. A body carrying
// success:false is a declined call even on a 2xx status.
func (c *Client) do(op string, req *resty.Request, method, path string, out any) error {
	resp, err := req.Execute(method, path)
	if err != nil {
		return &Error{Op: op, Err: fmt.Errorf("%w: %v", ErrUnavailable, err)}
	}

	var env envelope
	body := resp.Body()
	if len(body) > 0 {
		if err := json.Unmarshal(body, &env); err != nil {
			if resp.IsError() {
				return &Error{Op: op, Status: resp.StatusCode()}
			}
			return &Error{Op: op, Status: resp.StatusCode(), Err: fmt.Errorf("%w: %v", ErrMalformedPayload, err)}
		}
	}
	if resp.IsError() {
		return &Error{Op: op, Status: resp.StatusCode(), Message: env.Message}
	}
	if env.Success != nil && !*env.Success {
		return &Error{Op: op, Status: resp.StatusCode(), Message: env.Message, Declined: true}
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return &Error{Op: op, Status: resp.StatusCode(), Err: fmt.Errorf("%w: %v", ErrMalformedPayload, err)}
	}
	return nil
}

func (c *Client) check(op string, v any) error {
	if err := c.validate.Struct(v); err != nil {
		return &Error{Op: op, Err: fmt.Errorf("%w: %v", ErrMalformedPayload, err)}
	}
	return nil
}
