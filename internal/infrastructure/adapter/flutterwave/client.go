package flutterwave

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"time"

	coreport "github.com/Akachukwuu/earnquiza/internal/domain/port/core"
	"github.com/Akachukwuu/earnquiza/internal/domain/port/gateway"
)

// DefaultBaseURL is the production Flutterwave API endpoint
const DefaultBaseURL = "https://api.flutterwave.com"

const defaultTimeout = 15 * time.Second

// Client calls the Flutterwave transaction verification API
type Client struct {
	baseURL    string
	secretKey  string
	httpClient *http.Client
	logger     coreport.Logger
}

// Option customizes the client
type Option func(*Client)

// WithBaseURL overrides the API endpoint, mainly for tests
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient overrides the underlying HTTP client
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient creates a new Flutterwave API client
func NewClient(secretKey string, logger coreport.Logger, opts ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		secretKey:  secretKey,
		httpClient: &http.Client{Timeout: defaultTimeout},
		logger:     logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// verifyResponse mirrors the Flutterwave verification payload
type verifyResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    *struct {
		Status   string  `json:"status"`
		TxRef    string  `json:"tx_ref"`
		Amount   float64 `json:"amount"`
		Currency string  `json:"currency"`
		Customer struct {
			Email string `json:"email"`
		} `json:"customer"`
	} `json:"data"`
}

// VerifyTransaction fetches the verification status for a transaction ID.
// A reachable API that rejects the transaction is a non-error result; only
// transport failures and unparseable payloads return an error.
func (c *Client) VerifyTransaction(ctx context.Context, transactionID string) (*gateway.VerifyResult, error) {
	endpoint := fmt.Sprintf("%s/v3/transactions/%s/verify", c.baseURL, url.PathEscape(transactionID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build verification request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("verification request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read verification response: %w", err)
	}

	var parsed verifyResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode verification response: %w", err)
	}

	result := &gateway.VerifyResult{
		Success: resp.StatusCode == http.StatusOK && parsed.Status == "success" && parsed.Data != nil,
		Raw:     string(body),
	}
	if parsed.Data != nil {
		result.Data = &gateway.ChargeData{
			Status:        parsed.Data.Status,
			TxRef:         parsed.Data.TxRef,
			AmountCents:   amountToCents(parsed.Data.Amount),
			Currency:      parsed.Data.Currency,
			CustomerEmail: parsed.Data.Customer.Email,
		}
	}

	if !result.Success {
		c.logger.Warn("Flutterwave verification was not successful", map[string]any{
			"transaction_id": transactionID,
			"http_status":    resp.StatusCode,
			"api_status":     parsed.Status,
			"message":        parsed.Message,
		})
	}

	return result, nil
}

func amountToCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
