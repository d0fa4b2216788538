package models

import "time"

// TipRecord is one collected tip. The ledger is append-only; there is no
// idempotency key, so recording the same payment twice produces two entries.
// A webhook-driven flow keyed on a processor-issued session id would close
// that gap, but lives outside this service.
type TipRecord struct {
	ID         string    `json:"id"`
	Token      string    `json:"token"`
	Amount     float64   `json:"amount"`
	RecordedAt time.Time `json:"recordedAt"`
}
