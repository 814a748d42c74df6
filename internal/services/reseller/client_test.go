package reseller

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL, "test-key", 5*time.Second)
}

func parseForm(t *testing.T, r *http.Request) url.Values {
	t.Helper()
	require.NoError(t, r.ParseForm())
	return r.PostForm
}

func TestAddOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("submits a form-encoded add request", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			form := parseForm(t, r)
			assert.Equal(t, "add", form.Get("action"))
			assert.Equal(t, "test-key", form.Get("key"))
			assert.Equal(t, "42", form.Get("service"))
			assert.Equal(t, "https://example.com/p/1", form.Get("link"))
			assert.Equal(t, "500", form.Get("quantity"))
			assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))

			w.Write([]byte(`{"order": 9001}`))
		})

		orderID, err := client.AddOrder(ctx, 42, "https://example.com/p/1", 500)
		require.NoError(t, err)
		assert.Equal(t, int64(9001), orderID)
	})

	t.Run("panel error field rejects the order despite HTTP 200", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"error": "not enough funds"}`))
		})

		_, err := client.AddOrder(ctx, 42, "link", 500)
		assert.ErrorIs(t, err, ErrOrderRejected)
		assert.Contains(t, err.Error(), "not enough funds")
	})

	t.Run("empty order id is a rejection", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{}`))
		})

		_, err := client.AddOrder(ctx, 42, "link", 500)
		assert.ErrorIs(t, err, ErrOrderRejected)
	})

	t.Run("non-2xx status is a transport error", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		})

		_, err := client.AddOrder(ctx, 42, "link", 500)
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrOrderRejected)
	})
}

func TestGetOrderStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("decodes the numeric status payload", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			form := parseForm(t, r)
			assert.Equal(t, "status", form.Get("action"))
			assert.Equal(t, "9001", form.Get("order"))

			w.Write([]byte(`{"status": 2, "charge": "1.10", "start_count": 120, "remains": 0}`))
		})

		status, err := client.GetOrderStatus(ctx, 9001)
		require.NoError(t, err)
		assert.Equal(t, 2, status.Status)
		assert.Equal(t, "1.10", status.Charge)
		assert.Equal(t, 120, status.StartCount)
		assert.Equal(t, 0, status.Remains)
	})

	t.Run("error field returns an error", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"error": "Incorrect order ID"}`))
		})

		_, err := client.GetOrderStatus(ctx, 1)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Incorrect order ID")
	})
}

func TestListServices(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		form := parseForm(t, r)
		assert.Equal(t, "services", form.Get("action"))

		w.Write([]byte(`[
			{"service": 1, "name": "Instagram Followers", "category": "followers", "rate": "1.00", "min": 100, "max": 10000},
			{"service": 2, "name": "Instagram Likes", "category": "likes", "rate": "0.50", "min": 50, "max": 5000}
		]`))
	})

	services, err := client.ListServices(context.Background())
	require.NoError(t, err)
	require.Len(t, services, 2)
	assert.Equal(t, 1, services[0].ID)
	assert.Equal(t, "Instagram Followers", services[0].Name)
	assert.Equal(t, "0.50", services[1].Rate)
}

func TestNotConfigured(t *testing.T) {
	client := NewClient("", "", time.Second)

	_, err := client.AddOrder(context.Background(), 1, "link", 100)
	assert.ErrorIs(t, err, ErrNotConfigured)
}
