// Package api is the HTTP collaborator for the Café Delights backend.
// It owns request construction, bearer attachment and error decoding;
// everything above it works with domain types only.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"cafe-delights/internal/common/logger"
	"cafe-delights/internal/domain"
)

type Client struct {
	baseURL string
	http    *http.Client
	lg      *logger.Logger

	// token is mutated only from the UI event loop; no locking needed.
	token string
}

func NewClient(baseURL string, hc *http.Client, lg *logger.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    hc,
		lg:      lg,
	}
}

// SetToken makes token the default bearer attachment for all later calls.
func (c *Client) SetToken(token string) { c.token = token }

// ClearToken removes the bearer attachment; later calls go out anonymous.
func (c *Client) ClearToken() { c.token = "" }

// HasToken reports whether calls currently carry a bearer credential.
func (c *Client) HasToken() bool { return c.token != "" }

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + "/api" + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, rd)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Request-ID", uuid.NewString())
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.lg.Error("request_failed", err, map[string]any{"method": method, "path": path})
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		ae := &APIError{Status: resp.StatusCode}
		var detail struct {
			Detail string `json:"detail"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&detail); err == nil {
			ae.Detail = detail.Detail
		}
		c.lg.Debug("request_rejected", map[string]any{
			"method": method, "path": path, "status": resp.StatusCode, "detail": ae.Detail,
		})
		return ae
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

func (c *Client) Login(ctx context.Context, email, password string) (domain.AuthResult, error) {
	var res domain.AuthResult
	err := c.do(ctx, http.MethodPost, "/login", nil, domain.LoginRequest{Email: email, Password: password}, &res)
	return res, err
}

func (c *Client) Register(ctx context.Context, req domain.RegisterRequest) (domain.AuthResult, error) {
	var res domain.AuthResult
	err := c.do(ctx, http.MethodPost, "/register", nil, req, &res)
	return res, err
}

func (c *Client) Profile(ctx context.Context) (domain.User, error) {
	var u domain.User
	err := c.do(ctx, http.MethodGet, "/profile", nil, nil, &u)
	return u, err
}

// Products lists available products, optionally filtered by category.
func (c *Client) Products(ctx context.Context, category domain.Category) ([]domain.Product, error) {
	var q url.Values
	if category != "" {
		q = url.Values{"category": {string(category)}}
	}
	var ps []domain.Product
	err := c.do(ctx, http.MethodGet, "/products", q, nil, &ps)
	return ps, err
}

func (c *Client) Product(ctx context.Context, id string) (domain.Product, error) {
	var p domain.Product
	err := c.do(ctx, http.MethodGet, "/products/"+id, nil, nil, &p)
	return p, err
}

func (c *Client) SearchProducts(ctx context.Context, query string) ([]domain.Product, error) {
	var ps []domain.Product
	err := c.do(ctx, http.MethodGet, "/search/products", url.Values{"q": {query}}, nil, &ps)
	return ps, err
}

func (c *Client) CreateOrder(ctx context.Context, req domain.CreateOrderRequest) (domain.Order, error) {
	var o domain.Order
	err := c.do(ctx, http.MethodPost, "/orders", nil, req, &o)
	return o, err
}

// Orders returns the current user's orders; admins get every order.
func (c *Client) Orders(ctx context.Context) ([]domain.Order, error) {
	var os []domain.Order
	err := c.do(ctx, http.MethodGet, "/orders", nil, nil, &os)
	return os, err
}

func (c *Client) Order(ctx context.Context, id string) (domain.Order, error) {
	var o domain.Order
	err := c.do(ctx, http.MethodGet, "/orders/"+id, nil, nil, &o)
	return o, err
}

func (c *Client) UpdateOrderStatus(ctx context.Context, id string, status domain.OrderStatus) error {
	q := url.Values{"status": {string(status)}}
	return c.do(ctx, http.MethodPut, "/orders/"+id+"/status", q, nil, nil)
}

func (c *Client) DashboardStats(ctx context.Context) (domain.DashboardStats, error) {
	var s domain.DashboardStats
	err := c.do(ctx, http.MethodGet, "/dashboard/stats", nil, nil, &s)
	return s, err
}

func (c *Client) ProductReviews(ctx context.Context, productID string) ([]domain.Review, error) {
	var rs []domain.Review
	err := c.do(ctx, http.MethodGet, "/products/"+productID+"/reviews", nil, nil, &rs)
	return rs, err
}

func (c *Client) CreateReview(ctx context.Context, req domain.CreateReviewRequest) (domain.Review, error) {
	var r domain.Review
	err := c.do(ctx, http.MethodPost, "/reviews", nil, req, &r)
	return r, err
}
