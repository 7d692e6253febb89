// Package sms wraps the mNotify bulk-SMS REST API. Like the payment client,
// transport failures are normalized into a failure-shaped Response instead of
// propagating as errors.
package sms

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	defaultBaseURL  = "https://api.mnotify.com/api"
	defaultSenderID = "Rehoboth"

	// countryCallingCode is the Ghana prefix applied during normalization.
	countryCallingCode = "233"
)

type Config struct {
	// BaseURL overrides the production API endpoint, mainly for tests.
	BaseURL  string
	APIKey   string
	SenderID string
}

type Client struct {
	baseURL  string
	apiKey   string
	senderID string
	hc       *http.Client
}

func NewClient(cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	senderID := cfg.SenderID
	if senderID == "" {
		senderID = defaultSenderID
	}
	return &Client{
		baseURL:  baseURL,
		apiKey:   cfg.APIKey,
		senderID: senderID,
		hc: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type Response struct {
	Status  string `json:"status"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
	Balance string `json:"balance,omitempty"`
}

// OK reports whether the gateway accepted the request.
func (r *Response) OK() bool {
	return r.Status == "success"
}

// SendSMS delivers one message to one recipient. An empty senderID falls back
// to the configured default.
func (c *Client) SendSMS(ctx context.Context, recipient, message, senderID string) *Response {
	if senderID == "" {
		senderID = c.senderID
	}

	form := url.Values{}
	form.Set("key", c.apiKey)
	form.Set("to", FormatPhoneNumber(recipient))
	form.Set("msg", message)
	form.Set("sender_id", senderID)

	return c.postForm(ctx, "/sms/quick", form)
}

// SendBulkSMS delivers one message to several recipients in a single call.
func (c *Client) SendBulkSMS(ctx context.Context, recipients []string, message, senderID string) *Response {
	if senderID == "" {
		senderID = c.senderID
	}

	formatted := make([]string, len(recipients))
	for i, num := range recipients {
		formatted[i] = FormatPhoneNumber(num)
	}

	form := url.Values{}
	form.Set("key", c.apiKey)
	form.Set("to", strings.Join(formatted, ","))
	form.Set("msg", message)
	form.Set("sender_id", senderID)

	return c.postForm(ctx, "/sms/quick", form)
}

// CheckBalance queries the remaining SMS credit.
func (c *Client) CheckBalance(ctx context.Context) *Response {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/balance?key="+url.QueryEscape(c.apiKey), nil)
	if err != nil {
		return failure(fmt.Errorf("sms: build request: %w", err))
	}
	return c.do(req)
}

// FormatPhoneNumber normalizes a phone number to international digit-only
// form: non-digits are stripped, a national trunk "0" becomes the country
// code, and a missing country code is prepended.
func FormatPhoneNumber(phone string) string {
	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	normalized := digits.String()

	if strings.HasPrefix(normalized, "0") {
		normalized = countryCallingCode + normalized[1:]
	}
	if !strings.HasPrefix(normalized, countryCallingCode) {
		normalized = countryCallingCode + normalized
	}

	return normalized
}

func (c *Client) postForm(ctx context.Context, path string, form url.Values) *Response {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, strings.NewReader(form.Encode()))
	if err != nil {
		return failure(fmt.Errorf("sms: build request: %w", err))
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	return c.do(req)
}

func (c *Client) do(req *http.Request) *Response {
	resp, err := c.hc.Do(req)
	if err != nil {
		return failure(fmt.Errorf("sms: %w", err))
	}
	defer resp.Body.Close()

	var out Response
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return failure(fmt.Errorf("sms: decode response: %w", err))
	}
	return &out
}

func failure(err error) *Response {
	return &Response{Status: "error", Message: err.Error()}
}
