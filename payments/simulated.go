package payments

import "context"

// SimulatedProcessor is the no-credentials fallback: it redirects straight
// to the success URL without any charge. Selected at boot when no Stripe
// key is configured, and used by tests.
type SimulatedProcessor struct{}

func (SimulatedProcessor) CreateSession(_ context.Context, p SessionParams) (*Session, error) {
	return &Session{URL: p.SuccessURL, Simulated: true}, nil
}
