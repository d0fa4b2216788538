package models

import "time"

// QrBinding ties a printed QR token to a staff member at a physical point
// (table, room, vehicle). Bindings never expire and are never edited —
// reprinting a code means minting a new one.
type QrBinding struct {
	Token      string    `json:"token"`
	StaffID    string    `json:"staffId"`
	PointType  string    `json:"pointType"`  // e.g. "Table"
	PointLabel string    `json:"pointLabel"` // e.g. "5"
	PointSlug  string    `json:"pointSlug"`  // URL-safe display form, e.g. "table-5"
	CreatedAt  time.Time `json:"createdAt"`
}
