// Package payments abstracts the hosted payment-session collaborator.
// The orchestrator only ever talks to the Processor interface; whether a
// real charge happens is decided once, at construction time.
package payments

import "context"

// SessionParams is everything a processor needs to open a hosted
// payment page for one tip.
type SessionParams struct {
	Description string  // line item, e.g. `Tip for Alice (Table 5)`
	Note        string  // optional payer note, already truncated
	Amount      float64 // amount as entered, major units
	AmountMinor int64   // amount in the processor's minor unit
	Currency    string  // lowercase ISO 4217
	Token       string  // QR token, carried as metadata
	SuccessURL  string
	CancelURL   string
}

// Session is the result of opening a payment flow: a URL to redirect the
// payer to. Simulated sessions never charge anything.
type Session struct {
	URL       string
	Simulated bool
}

type Processor interface {
	CreateSession(ctx context.Context, p SessionParams) (*Session, error)
}
