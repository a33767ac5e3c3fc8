package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cafe-delights/internal/common/httpx"
	"cafe-delights/internal/common/logger"
	"cafe-delights/internal/domain"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, httpx.NewClient(0), logger.New("api-test"))
}

func TestBearerAttachment(t *testing.T) {
	var got string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode([]domain.Product{})
	})

	_, err := c.Products(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, got, "anonymous calls must carry no bearer header")

	c.SetToken("tok-1")
	_, err = c.Products(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-1", got)

	c.ClearToken()
	_, err = c.Products(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRequestIDHeader(t *testing.T) {
	seen := map[string]bool{}
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		assert.NotEmpty(t, id)
		seen[id] = true
		_ = json.NewEncoder(w).Encode([]domain.Product{})
	})
	for i := 0; i < 3; i++ {
		_, err := c.Products(context.Background(), "")
		require.NoError(t, err)
	}
	assert.Len(t, seen, 3, "each call gets a fresh request id")
}

func TestProductsQueryParams(t *testing.T) {
	var path, rawQuery string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		path, rawQuery = r.URL.Path, r.URL.RawQuery
		_ = json.NewEncoder(w).Encode([]domain.Product{})
	})

	_, err := c.Products(context.Background(), domain.CategoryCoffee)
	require.NoError(t, err)
	assert.Equal(t, "/api/products", path)
	assert.Equal(t, "category=coffee", rawQuery)

	_, err = c.SearchProducts(context.Background(), "chocolate cake")
	require.NoError(t, err)
	assert.Equal(t, "/api/search/products", path)
	assert.Equal(t, "q=chocolate+cake", rawQuery)
}

func TestErrorDetailExtraction(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"detail": "Invalid credentials"})
	})

	_, err := c.Login(context.Background(), "a@b.c", "nope")
	require.Error(t, err)
	assert.Equal(t, "Invalid credentials", Reason(err))
	assert.True(t, IsUnauthorized(err))
}

func TestReasonDefaultsToGenericMessage(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	_, err := c.Orders(context.Background())
	require.Error(t, err)
	assert.Equal(t, GenericFailure, Reason(err))
	assert.False(t, IsUnauthorized(err))
}

func TestCreateOrderPayload(t *testing.T) {
	var got domain.CreateOrderRequest
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/orders", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_ = json.NewEncoder(w).Encode(domain.Order{ID: "o1", Status: domain.StatusPending, TotalAmount: 12})
	})

	req := domain.CreateOrderRequest{
		Items: []domain.OrderLine{
			{ProductID: "p1", Quantity: 2, Price: 4.50, ProductName: "Latte"},
		},
		DeliveryAddr: "Pickup at store",
	}
	o, err := c.CreateOrder(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "o1", o.ID)
	assert.Equal(t, req, got, "order lines go over the wire exactly as snapshotted")
}

func TestUpdateOrderStatus(t *testing.T) {
	var method, path, status string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		method, path, status = r.Method, r.URL.Path, r.URL.Query().Get("status")
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "Order status updated"})
	})

	require.NoError(t, c.UpdateOrderStatus(context.Background(), "o1", domain.StatusReady))
	assert.Equal(t, http.MethodPut, method)
	assert.Equal(t, "/api/orders/o1/status", path)
	assert.Equal(t, "ready", status)
}

func TestContextCancellationAbortsCall(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.Profile(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
