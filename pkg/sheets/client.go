// Package sheets is the append-only adapter over the record spreadsheet.
// Three tabs back the three logical tables: Registrations, Downloads, Bids.
package sheets

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/oauth2/google"
	oauthjwt "golang.org/x/oauth2/jwt"
	"google.golang.org/api/option"
	sheetsv4 "google.golang.org/api/sheets/v4"
)

// Tab names inside the spreadsheet. Column order within each tab is the
// contract with downstream consumers; reordering fields is a breaking change.
const (
	TabRegistrations = "Registrations"
	TabDownloads     = "Downloads"
	TabBids          = "Bids"
)

// callTimeout bounds every call to the Sheets API so a hung append surfaces
// as an error instead of pinning the request.
const callTimeout = 10 * time.Second

// Config identifies the spreadsheet and the service account allowed to write
// to it. All fields are injected; nothing here reads the environment or the
// filesystem.
type Config struct {
	ServiceAccountEmail string
	PrivateKey          string // PEM, already normalized
	SpreadsheetID       string
}

// Client appends rows to one spreadsheet. Build it once at startup and share
// it; it is safe for concurrent use and never rebuilt per request.
type Client struct {
	srv           *sheetsv4.Service
	spreadsheetID string
	logger        *zap.Logger
}

// NewClient builds the Sheets service from the service-account identity.
func NewClient(ctx context.Context, cfg Config, logger *zap.Logger) (*Client, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	conf := &oauthjwt.Config{
		Email:      cfg.ServiceAccountEmail,
		PrivateKey: []byte(cfg.PrivateKey),
		Scopes:     []string{sheetsv4.SpreadsheetsScope},
		TokenURL:   google.JWTTokenURL,
	}
	srv, err := sheetsv4.NewService(ctx, option.WithTokenSource(conf.TokenSource(ctx)))
	if err != nil {
		return nil, fmt.Errorf("sheets service: %w", err)
	}
	return &Client{srv: srv, spreadsheetID: cfg.SpreadsheetID, logger: logger}, nil
}
