// Package razorpay implements the PaymentGateway port against the Razorpay
// Orders API. The server creates the gateway order and verifies the signed
// checkout callback; amounts are integer paise throughout.
package razorpay

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"localcrust/internal/core/domain/model/kernel"
	"localcrust/internal/core/ports"
)

const defaultBaseURL = "https://api.razorpay.com/v1"

// ErrSignatureMismatch is returned when a payment callback carries a
// signature that was not produced with our key secret. It wraps
// ports.ErrPaymentVerificationFailed so callers can match on the port error.
var ErrSignatureMismatch = fmt.Errorf("razorpay: payment signature mismatch: %w", ports.ErrPaymentVerificationFailed)

// Client calls the Razorpay REST API with key-pair basic auth.
type Client struct {
	keyID      string
	keySecret  string
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API endpoint. Used in tests.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) { c.baseURL = baseURL }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) { c.httpClient = httpClient }
}

// NewClient creates a Razorpay API client.
func NewClient(keyID, keySecret string, opts ...Option) *Client {
	c := &Client{
		keyID:      keyID,
		keySecret:  keySecret,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type createOrderRequest struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

type createOrderResponse struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

type apiError struct {
	Error struct {
		Code        string `json:"code"`
		Description string `json:"description"`
	} `json:"error"`
}

// CreateOrder registers the amount with Razorpay and returns the gateway
// order the client SDK pays against.
func (c *Client) CreateOrder(ctx context.Context, amount kernel.Money, receipt string) (ports.GatewayOrder, error) {
	body, err := json.Marshal(createOrderRequest{
		Amount:   amount.Paise(),
		Currency: "INR",
		Receipt:  receipt,
	})
	if err != nil {
		return ports.GatewayOrder{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/orders", bytes.NewReader(body))
	if err != nil {
		return ports.GatewayOrder{}, err
	}
	req.SetBasicAuth(c.keyID, c.keySecret)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return ports.GatewayOrder{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ports.GatewayOrder{}, decodeError(resp)
	}

	var created createOrderResponse
	if err = json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return ports.GatewayOrder{}, err
	}

	collected, err := kernel.NewMoney(created.Amount)
	if err != nil {
		return ports.GatewayOrder{}, err
	}

	return ports.GatewayOrder{
		ID:       created.ID,
		Amount:   collected,
		Currency: created.Currency,
	}, nil
}

// VerifyPaymentSignature checks the HMAC-SHA256 signature Razorpay computes
// over "<order_id>|<payment_id>" with the key secret.
func (c *Client) VerifyPaymentSignature(gatewayOrderID, paymentID, signature string) error {
	mac := hmac.New(sha256.New, []byte(c.keySecret))
	mac.Write([]byte(gatewayOrderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return ErrSignatureMismatch
	}
	return nil
}

func decodeError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	var decoded apiError
	if err := json.Unmarshal(raw, &decoded); err == nil && decoded.Error.Description != "" {
		return fmt.Errorf("razorpay: %s (%s)", decoded.Error.Description, decoded.Error.Code)
	}
	return fmt.Errorf("razorpay: unexpected status %d", resp.StatusCode)
}
