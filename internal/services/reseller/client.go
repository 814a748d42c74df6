// Package reseller is the HTTP client for the upstream SMM panel API. The
// panel speaks form-encoded POST requests with an action parameter and
// responds with JSON; errors come back as an "error" field with HTTP 200.
package reseller

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"boostify/internal/metrics"
)

type Client struct {
	apiURL string
	apiKey string
	http   *http.Client
}

func NewClient(apiURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		apiURL: apiURL,
		apiKey: apiKey,
		http:   &http.Client{Timeout: timeout},
	}
}

// AddOrder submits an order and returns the panel's order id.
func (c *Client) AddOrder(ctx context.Context, serviceID int, link string, quantity int) (int64, error) {
	form := url.Values{}
	form.Set("action", "add")
	form.Set("service", strconv.Itoa(serviceID))
	form.Set("link", link)
	form.Set("quantity", strconv.Itoa(quantity))

	var resp addOrderResponse
	if err := c.post(ctx, form, &resp); err != nil {
		return 0, err
	}
	if resp.Error != "" {
		return 0, fmt.Errorf("%w: %s", ErrOrderRejected, resp.Error)
	}
	if resp.Order == 0 {
		return 0, fmt.Errorf("%w: empty order id", ErrOrderRejected)
	}
	return resp.Order, nil
}

// GetOrderStatus fetches the numeric status of a previously submitted order.
func (c *Client) GetOrderStatus(ctx context.Context, orderID int64) (*OrderStatus, error) {
	form := url.Values{}
	form.Set("action", "status")
	form.Set("order", strconv.FormatInt(orderID, 10))

	var resp statusResponse
	if err := c.post(ctx, form, &resp); err != nil {
		return nil, err
	}
	if resp.Error != "" {
		return nil, fmt.Errorf("reseller status error: %s", resp.Error)
	}
	return &resp.OrderStatus, nil
}

// ListServices fetches the panel's service catalog, used by the admin import.
func (c *Client) ListServices(ctx context.Context) ([]RemoteService, error) {
	form := url.Values{}
	form.Set("action", "services")

	var services []RemoteService
	if err := c.post(ctx, form, &services); err != nil {
		return nil, err
	}
	return services, nil
}

func (c *Client) post(ctx context.Context, form url.Values, out interface{}) error {
	if c.apiURL == "" || c.apiKey == "" {
		return ErrNotConfigured
	}
	form.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	start := time.Now()
	resp, err := c.http.Do(req)
	metrics.ResellerRequestDuration.WithLabelValues(form.Get("action")).Observe(time.Since(start).Seconds())
	if err != nil {
		return fmt.Errorf("reseller request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("reseller returned status %d", resp.StatusCode)
	}
	return json.Unmarshal(body, out)
}
