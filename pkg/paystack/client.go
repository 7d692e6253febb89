// Package paystack wraps the Paystack hosted-checkout REST API. Transport and
// decode failures never surface as errors: every call returns a Response whose
// Status field the caller must check.
package paystack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/shopspring/decimal"
)

const defaultBaseURL = "https://api.paystack.co"

var minorUnitFactor = decimal.NewFromInt(100)

type Config struct {
	// BaseURL overrides the production API endpoint, mainly for tests.
	BaseURL   string
	SecretKey string
	PublicKey string
}

type Client struct {
	baseURL   string
	secretKey string
	publicKey string
	hc        *http.Client
}

func NewClient(cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL:   baseURL,
		secretKey: cfg.SecretKey,
		publicKey: cfg.PublicKey,
		hc: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// PublicKey returns the publishable key for embedding in checkout pages.
func (c *Client) PublicKey() string {
	return c.publicKey
}

type Response struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    TransactionData `json:"data"`
}

type TransactionData struct {
	AuthorizationURL string `json:"authorization_url"`
	AccessCode       string `json:"access_code"`
	Reference        string `json:"reference"`
	Status           string `json:"status"`
	Amount           int64  `json:"amount"`
	GatewayResponse  string `json:"gateway_response"`
	PaidAt           string `json:"paid_at"`
	Channel          string `json:"channel"`
	Currency         string `json:"currency"`
}

// InitializeTransaction starts a hosted-checkout session. The amount is in
// major currency units and is transmitted in minor units (pesewas), per the
// Paystack contract.
func (c *Client) InitializeTransaction(ctx context.Context, email string, amount decimal.Decimal, reference, callbackURL string, metadata map[string]any) *Response {
	body := map[string]any{
		"email":        email,
		"amount":       amount.Mul(minorUnitFactor).IntPart(),
		"reference":    reference,
		"callback_url": callbackURL,
	}
	if metadata != nil {
		body["metadata"] = metadata
	}

	return c.post(ctx, "/transaction/initialize", body)
}

// VerifyTransaction fetches the outcome of a transaction by its reference.
func (c *Client) VerifyTransaction(ctx context.Context, reference string) *Response {
	return c.get(ctx, "/transaction/verify/"+url.PathEscape(reference))
}

// GetTransaction fetches a transaction by Paystack's own transaction id.
func (c *Client) GetTransaction(ctx context.Context, transactionID string) *Response {
	return c.get(ctx, "/transaction/"+url.PathEscape(transactionID))
}

func (c *Client) post(ctx context.Context, path string, body map[string]any) *Response {
	payload, err := json.Marshal(body)
	if err != nil {
		return failure(fmt.Errorf("paystack: marshal request: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return failure(fmt.Errorf("paystack: build request: %w", err))
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Content-Type", "application/json")

	return c.do(req)
}

func (c *Client) get(ctx context.Context, path string) *Response {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return failure(fmt.Errorf("paystack: build request: %w", err))
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)

	return c.do(req)
}

func (c *Client) do(req *http.Request) *Response {
	resp, err := c.hc.Do(req)
	if err != nil {
		return failure(fmt.Errorf("paystack: %w", err))
	}
	defer resp.Body.Close()

	var out Response
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return failure(fmt.Errorf("paystack: decode response: %w", err))
	}
	return &out
}

func failure(err error) *Response {
	return &Response{Status: false, Message: err.Error()}
}
