package payments

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
)

// StripeProcessor creates hosted Checkout Sessions over Stripe's
// form-encoded API. One session per tip, mode=payment, single line item.
type StripeProcessor struct {
	BaseURL   string
	SecretKey string
	Client    *http.Client
}

// NewStripeProcessor builds a processor with a bounded request timeout.
// There is no retry: retrying session creation risks charging twice.
func NewStripeProcessor(baseURL, secretKey string, timeout time.Duration) *StripeProcessor {
	return &StripeProcessor{
		BaseURL:   strings.TrimRight(baseURL, "/"),
		SecretKey: secretKey,
		Client: &http.Client{
			Timeout: timeout,
		},
	}
}

type stripeSession struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

func (s *StripeProcessor) CreateSession(ctx context.Context, p SessionParams) (*Session, error) {
	form := url.Values{}
	form.Set("mode", "payment")
	form.Set("line_items[0][quantity]", "1")
	form.Set("line_items[0][price_data][currency]", p.Currency)
	form.Set("line_items[0][price_data][unit_amount]", strconv.FormatInt(p.AmountMinor, 10))
	form.Set("line_items[0][price_data][product_data][name]", p.Description)
	form.Set("success_url", p.SuccessURL)
	form.Set("cancel_url", p.CancelURL)
	form.Set("metadata[qr_token]", p.Token)
	if p.Note != "" {
		form.Set("metadata[note]", p.Note)
	}

	endpoint := s.BaseURL + "/v1/checkout/sessions"
	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create session request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Bearer "+s.SecretKey)

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("checkout session request failed: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 64*1024))

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("checkout session creation returned %d: %s", resp.StatusCode, string(body))
	}

	var sess stripeSession
	if err := json.Unmarshal(body, &sess); err != nil {
		return nil, fmt.Errorf("failed to decode session response: %w", err)
	}
	if sess.URL == "" {
		return nil, fmt.Errorf("session %s has no redirect url", sess.ID)
	}

	return &Session{URL: sess.URL}, nil
}
