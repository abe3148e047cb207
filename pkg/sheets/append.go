package sheets

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	sheetsv4 "google.golang.org/api/sheets/v4"

	"github.com/nos-auction/backend/internal/models"
)

func (c *Client) appendRow(ctx context.Context, tab string, row []interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	vr := &sheetsv4.ValueRange{Values: [][]interface{}{row}}
	_, err := c.srv.Spreadsheets.Values.Append(c.spreadsheetID, tab+"!A:Z", vr).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("append %s: %w", tab, err)
	}
	return nil
}

// AppendRegistration writes one Registrations row.
func (c *Client) AppendRegistration(ctx context.Context, r models.Registration) error {
	return c.appendRow(ctx, TabRegistrations, []interface{}{
		r.Timestamp.UTC().Format(time.RFC3339),
		r.ParticipantID,
		r.FullName,
		r.CompanyName,
		r.Email,
		r.Phone,
		r.Country,
		strings.Join(r.Interests, ","),
		r.ClientIP,
		r.UserAgent,
	})
}

// AppendBid writes one Bids row. An absent bid amount becomes an empty cell.
func (c *Client) AppendBid(ctx context.Context, b models.Bid) error {
	amount := ""
	if b.BidAmount != nil {
		amount = strconv.FormatFloat(*b.BidAmount, 'f', -1, 64)
	}
	return c.appendRow(ctx, TabBids, []interface{}{
		b.Timestamp.UTC().Format(time.RFC3339),
		b.ParticipantID,
		b.Email,
		b.BundleSlug,
		amount,
		b.Notes,
		b.ClientIP,
		b.UserAgent,
	})
}

// AppendDownload writes one Downloads row.
func (c *Client) AppendDownload(ctx context.Context, d models.Download) error {
	return c.appendRow(ctx, TabDownloads, []interface{}{
		d.Timestamp.UTC().Format(time.RFC3339),
		d.ParticipantID,
		d.Email,
		d.CatalogueSlug,
		d.CatalogueTitle,
		d.ClientIP,
		d.UserAgent,
	})
}

// EnsureTabs creates any missing tabs. Best-effort maintenance: failures are
// logged and swallowed, and a still-missing tab makes the next append fail
// where it is reported normally.
func (c *Client) EnsureTabs(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	ss, err := c.srv.Spreadsheets.Get(c.spreadsheetID).Context(ctx).Do()
	if err != nil {
		c.logger.Warn("ensure tabs: read spreadsheet", zap.Error(err))
		return
	}
	existing := make(map[string]bool)
	for _, sh := range ss.Sheets {
		if sh.Properties != nil {
			existing[sh.Properties.Title] = true
		}
	}

	var reqs []*sheetsv4.Request
	for _, tab := range []string{TabRegistrations, TabDownloads, TabBids} {
		if !existing[tab] {
			reqs = append(reqs, &sheetsv4.Request{
				AddSheet: &sheetsv4.AddSheetRequest{
					Properties: &sheetsv4.SheetProperties{Title: tab},
				},
			})
		}
	}
	if len(reqs) == 0 {
		return
	}

	_, err = c.srv.Spreadsheets.BatchUpdate(c.spreadsheetID, &sheetsv4.BatchUpdateSpreadsheetRequest{
		Requests: reqs,
	}).Context(ctx).Do()
	if err != nil {
		c.logger.Warn("ensure tabs: create", zap.Error(err))
		return
	}
	c.logger.Info("created missing tabs", zap.Int("count", len(reqs)))
}
