package models

import "time"

// Bid is one row of the Bids table. A participant may bid on multiple
// bundles and re-bid over time; a corrected bid is a new row, not an edit.
type Bid struct {
	Timestamp     time.Time
	ParticipantID string
	Email         string
	BundleSlug    string
	BidAmount     *float64 // nil when the bidder left the amount open
	Notes         string
	ClientIP      string
	UserAgent     string
}
