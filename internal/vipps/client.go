package vipps

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/mindebamsen/checkout-service/internal/config"
	"github.com/mindebamsen/checkout-service/internal/entities"
)

const (
	systemName    = "MindebamsenWebapp"
	systemVersion = "1.0.0"
	pluginName    = "MindebamsenCheckout"
	pluginVersion = "1.0.0"

	// The provider rejects Idempotency-Key headers longer than this.
	maxIdempotencyKeyLen = 50
)

// APIError is returned for any transport failure or non-2xx provider
// response. StatusCode is zero when the request never got a response.
type APIError struct {
	Op         string
	StatusCode int
	Body       []byte
	Err        error
}

func (e *APIError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("vipps: %s failed: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("vipps: %s failed with status %d: %s", e.Op, e.StatusCode, e.Body)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

func (e *APIError) Is(target error) bool {
	return target == entities.ErrProviderUnavailable
}

// Client issues authenticated calls to the Vipps MobilePay checkout and
// ePayment APIs. It holds no mutable state and never retries; retry policy
// belongs to the caller.
type Client struct {
	cfg    config.Vipps
	http   *http.Client
	logger *slog.Logger
}

func NewClient(logger *slog.Logger, cfg config.Vipps) *Client {
	return &Client{
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.Timeout},
		logger: logger.With(slog.String("client", "vipps")),
	}
}

// OpenSession creates a checkout session. A fresh callback token is
// generated per call and registered with the provider; webhooks for this
// order must present it in the Authorization header.
func (c *Client) OpenSession(ctx context.Context, req SessionRequest) (SessionResult, error) {
	callbackToken := newCallbackToken()

	payload := sessionPayload{
		MerchantInfo: merchantInfoPayload{
			CallbackURL:                req.CallbackURL,
			ReturnURL:                  req.ReturnURL,
			CallbackAuthorizationToken: callbackToken,
		},
		Transaction: transactionPayload{
			Amount:             amountPayload{Value: req.Amount, Currency: req.Currency},
			Reference:          req.Reference,
			PaymentDescription: req.Description,
		},
	}

	body, err := c.do(ctx, http.MethodPost, c.cfg.BaseURL+"/checkout/v3/session", c.baseHeaders(), payload, "open session")
	if err != nil {
		return SessionResult{}, err
	}

	return SessionResult{CallbackToken: callbackToken, Payload: body}, nil
}

// GetSession returns the raw checkout session snapshot.
func (c *Client) GetSession(ctx context.Context, reference string) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, c.cfg.BaseURL+"/checkout/v3/session/"+reference, c.baseHeaders(), nil, "get session")
}

// FetchState returns the authoritative payment state from the ePayment API.
func (c *Client) FetchState(ctx context.Context, reference string) (entities.PaymentState, error) {
	headers, err := c.bearerHeaders(ctx, "")
	if err != nil {
		return entities.PaymentState{}, err
	}

	body, err := c.do(ctx, http.MethodGet, c.paymentURL(reference, ""), headers, nil, "fetch payment state")
	if err != nil {
		return entities.PaymentState{}, err
	}

	var details struct {
		State string `json:"state"`
	}
	if err := json.Unmarshal(body, &details); err != nil {
		return entities.PaymentState{}, fmt.Errorf("failed to decode payment details: %w", err)
	}

	return entities.PaymentState{
		State:            normalizeState(details.State),
		AuthorizedAmount: authorizedAmount(body),
		Raw:              body,
	}, nil
}

// Capture finalizes a previously authorized payment. Amount is in minor
// units of the order currency.
func (c *Client) Capture(ctx context.Context, reference string, amount int64, currency, description string) (json.RawMessage, error) {
	return c.modify(ctx, "cap", reference, "capture", &amount, currency, description)
}

// Cancel voids an authorization before capture.
func (c *Client) Cancel(ctx context.Context, reference string) (json.RawMessage, error) {
	return c.modify(ctx, "cnl", reference, "cancel", nil, "", "")
}

// Refund returns captured funds to the customer.
func (c *Client) Refund(ctx context.Context, reference string, amount int64, currency, description string) (json.RawMessage, error) {
	return c.modify(ctx, "ref", reference, "refund", &amount, currency, description)
}

func (c *Client) modify(ctx context.Context, keyPrefix, reference, action string, amount *int64, currency, description string) (json.RawMessage, error) {
	headers, err := c.bearerHeaders(ctx, idempotencyKey(keyPrefix, reference))
	if err != nil {
		return nil, err
	}

	payload := modificationPayload{Description: description}
	if amount != nil {
		payload.ModificationAmount = &amountPayload{Value: *amount, Currency: currency}
	}

	return c.do(ctx, http.MethodPost, c.paymentURL(reference, "/"+action), headers, payload, action+" payment")
}

func (c *Client) paymentURL(reference, suffix string) string {
	return c.cfg.BaseURL + "/epayment/v1/payments/" + reference + suffix
}

// accessToken fetches a fresh token from the token endpoint. Tokens are not
// cached, so provider-side rotation can never leave us with a stale one.
func (c *Client) accessToken(ctx context.Context) (string, error) {
	headers := map[string]string{
		"Content-Type":              "application/json",
		"client_id":                 c.cfg.ClientID,
		"client_secret":             c.cfg.ClientSecret,
		"Ocp-Apim-Subscription-Key": c.cfg.SubscriptionKey,
	}

	body, err := c.do(ctx, http.MethodPost, c.cfg.BaseURL+"/accesstoken/get", headers, nil, "fetch access token")
	if err != nil {
		return "", err
	}

	var token tokenResponse
	if err := json.Unmarshal(body, &token); err != nil {
		return "", fmt.Errorf("failed to decode token response: %w", err)
	}
	if token.AccessToken == "" {
		return "", &APIError{Op: "fetch access token", Err: errors.New("empty access_token in response")}
	}

	return token.AccessToken, nil
}

func (c *Client) baseHeaders() map[string]string {
	return map[string]string{
		"Content-Type":                "application/json",
		"client_id":                   c.cfg.ClientID,
		"client_secret":               c.cfg.ClientSecret,
		"Ocp-Apim-Subscription-Key":   c.cfg.SubscriptionKey,
		"Merchant-Serial-Number":      c.cfg.MerchantSerialNumber,
		"Vipps-System-Name":           systemName,
		"Vipps-System-Version":        systemVersion,
		"Vipps-System-Plugin-Name":    pluginName,
		"Vipps-System-Plugin-Version": pluginVersion,
	}
}

func (c *Client) bearerHeaders(ctx context.Context, idempotency string) (map[string]string, error) {
	token, err := c.accessToken(ctx)
	if err != nil {
		return nil, err
	}

	headers := map[string]string{
		"Content-Type":                "application/json",
		"Authorization":               "Bearer " + token,
		"Ocp-Apim-Subscription-Key":   c.cfg.SubscriptionKey,
		"Merchant-Serial-Number":      c.cfg.MerchantSerialNumber,
		"Vipps-System-Name":           systemName,
		"Vipps-System-Version":        systemVersion,
		"Vipps-System-Plugin-Name":    pluginName,
		"Vipps-System-Plugin-Version": pluginVersion,
	}
	if idempotency != "" {
		headers["Idempotency-Key"] = idempotency
	}
	return headers, nil
}

func (c *Client) do(ctx context.Context, method, url string, headers map[string]string, payload any, op string) ([]byte, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal %s payload: %w", op, err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build %s request: %w", op, err)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.ErrorContext(ctx, "provider request failed", slog.String("op", op), slog.Any("error", err))
		return nil, &APIError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s response: %w", op, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.ErrorContext(ctx, "provider returned error",
			slog.String("op", op), slog.Int("status", resp.StatusCode))
		return nil, &APIError{Op: op, StatusCode: resp.StatusCode, Body: data}
	}

	return data, nil
}

// idempotencyKey builds "{prefix}-{reference}-{8 hex}" capped at 50 chars.
// Over-long keys are shortened by truncating the reference, never the random
// suffix, so uniqueness survives long references.
func idempotencyKey(prefix, reference string) string {
	suffix := randomHex(4)

	key := prefix + "-" + reference + "-" + suffix
	if len(key) > maxIdempotencyKeyLen {
		refMax := maxIdempotencyKeyLen - len(prefix) - len(suffix) - 2
		key = prefix + "-" + reference[:refMax] + "-" + suffix
	}
	return key
}

func newCallbackToken() string {
	return randomHex(16)
}

func randomHex(n int) string {
	buf := make([]byte, n)
	rand.Read(buf)
	return hex.EncodeToString(buf)
}
