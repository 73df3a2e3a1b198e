package razorpay

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"aidforpaws/internal/domain"
	"aidforpaws/internal/infra"
)

// ErrMissingCredentials indicates that the client was configured without API keys.
var ErrMissingCredentials = errors.New("razorpay: key id and secret are required")

// Gateway opens payment orders. *Client and *StubGateway implement it.
type Gateway interface {
	CreateOrder(ctx context.Context, req domain.OrderRequest) (*domain.Order, error)
}

// Options configures the Razorpay Orders API client.
type Options struct {
	KeyID          string
	KeySecret      string
	BaseURL        string
	HTTPClient     *http.Client
	Logger         *infra.Logger
	RequestTimeout time.Duration
}

// Client performs HTTP calls to the Razorpay REST API.
type Client struct {
	keyID      string
	keySecret  string
	baseURL    string
	httpClient *http.Client
	logger     *infra.Logger
}

type orderPayload struct {
	Amount         int64        `json:"amount"`
	Currency       string       `json:"currency"`
	Receipt        string       `json:"receipt,omitempty"`
	PaymentCapture int          `json:"payment_capture"`
	Notes          domain.Notes `json:"notes,omitempty"`
}

type errorResponse struct {
	Error struct {
		Code        string `json:"code"`
		Description string `json:"description"`
	} `json:"error"`
}

// NewClient constructs a client with sane defaults and injected dependencies.
func NewClient(opts Options) (*Client, error) {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.RequestTimeout
		if timeout <= 0 {
			timeout = 15 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = "https://api.razorpay.com/v1"
	}
	var logger *infra.Logger
	if opts.Logger != nil {
		logger = opts.Logger
	} else {
		discard := zerolog.New(io.Discard)
		l := infra.Logger(discard)
		logger = &l
	}
	return &Client{
		keyID:      strings.TrimSpace(opts.KeyID),
		keySecret:  strings.TrimSpace(opts.KeySecret),
		baseURL:    baseURL,
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

// HasCredentials reports whether the client can perform remote calls.
func (c *Client) HasCredentials() bool {
	return c.keyID != "" && c.keySecret != ""
}

// CreateOrder opens an auto-captured order for req.Amount minor units.
func (c *Client) CreateOrder(ctx context.Context, req domain.OrderRequest) (*domain.Order, error) {
	if !c.HasCredentials() {
		return nil, ErrMissingCredentials
	}
	if req.Amount <= 0 {
		return nil, errors.New("razorpay: amount must be positive")
	}
	currency := strings.ToUpper(strings.TrimSpace(req.Currency))
	if currency == "" {
		return nil, errors.New("razorpay: currency is required")
	}

	body, err := json.Marshal(orderPayload{
		Amount:         req.Amount,
		Currency:       currency,
		Receipt:        req.Receipt,
		PaymentCapture: 1,
		Notes:          req.Notes,
	})
	if err != nil {
		return nil, fmt.Errorf("razorpay: encode request: %w", err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/orders", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("razorpay: build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.SetBasicAuth(c.keyID, c.keySecret)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("razorpay: http request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("razorpay: read response: %w", err)
	}

	if resp.StatusCode >= 300 {
		var detail errorResponse
		if err := json.Unmarshal(raw, &detail); err == nil && detail.Error.Description != "" {
			return nil, fmt.Errorf("razorpay: %s (%s)", detail.Error.Description, detail.Error.Code)
		}
		return nil, fmt.Errorf("razorpay: status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var order domain.Order
	if err := json.Unmarshal(raw, &order); err != nil {
		return nil, fmt.Errorf("razorpay: decode response: %w", err)
	}
	if order.ID == "" {
		return nil, errors.New("razorpay: empty order id")
	}
	c.logger.Debug().
		Str("order_id", order.ID).
		Int64("amount", order.Amount).
		Str("currency", order.Currency).
		Msg("razorpay: created order")
	return &order, nil
}

var _ Gateway = (*Client)(nil)
