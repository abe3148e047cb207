package models

import "time"

// Download is one row of the Downloads table, written once per authenticated
// catalogue download.
type Download struct {
	Timestamp      time.Time
	ParticipantID  string
	Email          string
	CatalogueSlug  string
	CatalogueTitle string
	ClientIP       string
	UserAgent      string
}
