package client

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"greencart-api/internal/config"
	"greencart-api/internal/model"
)

type StripeClient interface {
	CreateCheckoutSession(ctx context.Context, params *CheckoutSessionParams) (*CheckoutSession, error)
	SessionByPaymentIntent(ctx context.Context, paymentIntentID string) (*CheckoutSession, error)
	ConstructEvent(payload []byte, sigHeader string) (*model.StripeEvent, error)
}

type CheckoutLineItem struct {
	Name       string
	UnitAmount int64 // minor currency units
	Quantity   int64
}

type CheckoutSessionParams struct {
	LineItems  []CheckoutLineItem
	SuccessURL string
	CancelURL  string
	Metadata   map[string]string
}

type CheckoutSession struct {
	ID            string            `json:"id"`
	URL           string            `json:"url"`
	PaymentIntent string            `json:"payment_intent"`
	Metadata      map[string]string `json:"metadata"`
}

type sessionList struct {
	Data []*CheckoutSession `json:"data"`
}

type stripeClientImpl struct {
	httpClient    *http.Client
	baseApiURL    string
	secretKey     string
	webhookSecret string

	// signed timestamps older than this are rejected
	signatureTolerance time.Duration
}

func NewStripeClient(stripeCfg *config.Stripe) StripeClient {
	return &stripeClientImpl{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseApiURL:         stripeCfg.BaseApiURL,
		secretKey:          stripeCfg.SecretKey,
		webhookSecret:      stripeCfg.WebhookSecret,
		signatureTolerance: 5 * time.Minute,
	}
}

func (c *stripeClientImpl) CreateCheckoutSession(ctx context.Context, params *CheckoutSessionParams) (*CheckoutSession, error) {
	form := url.Values{}
	form.Set("mode", "payment")
	form.Set("success_url", params.SuccessURL)
	form.Set("cancel_url", params.CancelURL)

	for i, item := range params.LineItems {
		prefix := fmt.Sprintf("line_items[%d]", i)
		form.Set(prefix+"[price_data][currency]", "usd")
		form.Set(prefix+"[price_data][product_data][name]", item.Name)
		form.Set(prefix+"[price_data][unit_amount]", strconv.FormatInt(item.UnitAmount, 10))
		form.Set(prefix+"[quantity]", strconv.FormatInt(item.Quantity, 10))
	}

	for key, value := range params.Metadata {
		form.Set(fmt.Sprintf("metadata[%s]", key), value)
	}

	var session CheckoutSession
	if err := c.do(ctx, http.MethodPost, "/v1/checkout/sessions", form, &session); err != nil {
		return nil, err
	}

	return &session, nil
}

func (c *stripeClientImpl) SessionByPaymentIntent(ctx context.Context, paymentIntentID string) (*CheckoutSession, error) {
	path := "/v1/checkout/sessions?payment_intent=" + url.QueryEscape(paymentIntentID)

	var list sessionList
	if err := c.do(ctx, http.MethodGet, path, nil, &list); err != nil {
		return nil, err
	}

	if len(list.Data) == 0 {
		return nil, fmt.Errorf("no checkout session for payment intent %s", paymentIntentID)
	}

	return list.Data[0], nil
}

// ConstructEvent verifies the stripe-signature header against the raw
// payload and decodes the event. The header carries a signed timestamp
// and one or more v1 HMAC-SHA256 signatures over "<timestamp>.<payload>".
func (c *stripeClientImpl) ConstructEvent(payload []byte, sigHeader string) (*model.StripeEvent, error) {
	timestamp, signatures, err := parseSignatureHeader(sigHeader)
	if err != nil {
		return nil, err
	}

	if time.Since(time.Unix(timestamp, 0)) > c.signatureTolerance {
		return nil, fmt.Errorf("signature timestamp outside tolerance")
	}

	expected := computeSignature(c.webhookSecret, timestamp, payload)
	verified := false
	for _, sig := range signatures {
		if hmac.Equal(sig, expected) {
			verified = true
			break
		}
	}
	if !verified {
		return nil, fmt.Errorf("no valid signature found in stripe-signature header")
	}

	var event model.StripeEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return nil, fmt.Errorf("decode webhook payload: %w", err)
	}

	return &event, nil
}

func (c *stripeClientImpl) do(ctx context.Context, method, path string, form url.Values, out any) error {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseApiURL+path, body)
	if err != nil {
		return fmt.Errorf("http new request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("stripe error %d: %s", resp.StatusCode, string(b))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode stripe response: %w", err)
	}

	return nil
}

func parseSignatureHeader(header string) (int64, [][]byte, error) {
	if header == "" {
		return 0, nil, fmt.Errorf("missing stripe-signature header")
	}

	var timestamp int64 = -1
	var signatures [][]byte

	for _, part := range strings.Split(header, ",") {
		kv := strings.SplitN(strings.TrimSpace(part), "=", 2)
		if len(kv) != 2 {
			continue
		}
		switch kv[0] {
		case "t":
			t, err := strconv.ParseInt(kv[1], 10, 64)
			if err != nil {
				return 0, nil, fmt.Errorf("invalid signature timestamp: %w", err)
			}
			timestamp = t
		case "v1":
			sig, err := hex.DecodeString(kv[1])
			if err != nil {
				continue
			}
			signatures = append(signatures, sig)
		}
	}

	if timestamp < 0 || len(signatures) == 0 {
		return 0, nil, fmt.Errorf("malformed stripe-signature header")
	}

	return timestamp, signatures, nil
}

func computeSignature(secret string, timestamp int64, payload []byte) []byte {
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.", timestamp)
	mac.Write(payload)
	return mac.Sum(nil)
}
