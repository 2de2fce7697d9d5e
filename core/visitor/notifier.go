// Package visitor reports inbound requests to the site owner by email.
// It is a side channel: it contributes nothing to any HTTP response and its
// failures are logged and swallowed.
package visitor

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/katakurijs/gradify/core"
	"github.com/katakurijs/gradify/core/htmltable"
)

type (
	// Location is the coarse geolocation of a client address.
	Location struct {
		Country string
		City    string
	}

	// GeoResolver is any service that can locate an IP address.
	GeoResolver interface {
		Resolve(ctx context.Context, ip string) (Location, error)
	}

	Notifier struct {
		geo     GeoResolver
		mailSvc core.EmailService
		to      mail.Address
		logger  core.Logger
	}
)

// NewNotifier wires the side channel. An empty recipient address disables it.
func NewNotifier(geo GeoResolver, mailSvc core.EmailService, to string, logger core.Logger) *Notifier {
	return &Notifier{
		geo:     geo,
		mailSvc: mailSvc,
		to:      mail.Address{Address: to},
		logger:  logger,
	}
}

func (n *Notifier) Enabled() bool { return n.to.Address != "" }

// Notify resolves the event's geolocation and dispatches the email report.
// Callers run it off the request path; every failure is degraded to Unknown
// fields or a log line, never an error.
func (n *Notifier) Notify(ctx context.Context, evt Event) {
	if !n.Enabled() {
		return
	}

	if loc, err := n.geo.Resolve(ctx, evt.IP); err != nil {
		n.logger.Warn(fmt.Sprintf("visitor: geolocation lookup for %s failed: %v", evt.IP, err))
	} else {
		if loc.Country != "" {
			evt.Country = loc.Country
		}
		if loc.City != "" {
			evt.City = loc.City
		}
	}

	n.mailSvc.SendMessages(&core.EmailMessage{
		To:          []mail.Address{n.to},
		Subject:     fmt.Sprintf("New visit on %s from %s", evt.Path, evt.IP),
		TextContent: textReport(evt),
		HTMLContent: htmlReport(evt),
	})
}

func reportRows(evt Event) [][]string {
	return [][]string{
		{"Field", "Value"},
		{"IP", evt.IP},
		{"Country", evt.Country},
		{"City", evt.City},
		{"Device", evt.Device},
		{"Browser", evt.Browser},
		{"OS", evt.OS},
		{"Referrer", evt.Referrer},
		{"Path", evt.Path},
		{"Time", evt.Timestamp.Format(time.RFC1123Z)},
		{"User-Agent", evt.UserAgent},
	}
}

func htmlReport(evt Event) string {
	return htmltable.Render(reportRows(evt))
}

func textReport(evt Event) string {
	rows := reportRows(evt)
	b := new(strings.Builder)
	for _, row := range rows[1:] {
		fmt.Fprintf(b, "%s: %s\n", row[0], row[1])
	}
	return b.String()
}
