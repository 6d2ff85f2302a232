package orderclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"manox/internal/checkout"
	"manox/internal/domain"
)

// Client talks to the order service REST API. It implements
// checkout.OrderPlacer. Timeout policy belongs to the injected
// http.Client.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *log.Logger
}

// New builds a Client for the given API base URL (e.g.
// "http://localhost:3002/api"). A nil httpClient gets a 15s timeout
// default.
func New(baseURL string, httpClient *http.Client, logger *log.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		logger:     logger,
	}
}

type errorResponse struct {
	Message string `json:"message"`
}

// PlaceOrder POSTs the order and decodes the authoritative copy from
// the 201 response. Any non-2xx status is an error carrying the
// server's message when one is present.
func (c *Client) PlaceOrder(ctx context.Context, req checkout.OrderRequest) (*domain.Order, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encode order: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/orders", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("post order: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
		var errResp errorResponse
		if json.Unmarshal(raw, &errResp) == nil && errResp.Message != "" {
			return nil, fmt.Errorf("order service: %s (status %d)", errResp.Message, resp.StatusCode)
		}
		return nil, fmt.Errorf("order service: unexpected status %d", resp.StatusCode)
	}

	var order domain.Order
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return nil, fmt.Errorf("decode order: %w", err)
	}
	c.logger.Printf("order client: placed order id=%s total=%s", order.ID, order.Total)
	return &order, nil
}
