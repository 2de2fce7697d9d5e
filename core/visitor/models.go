package visitor

import (
	"net"
	"strings"
	"time"

	"github.com/google/uuid"
	ua "github.com/mileusna/useragent"
)

// Unknown fills any field that could not be resolved; a lookup failure never
// fails the request that triggered it.
const Unknown = "Unknown"

// Event is a transient, per-request visit report. It is never persisted; it
// exists only for the duration of one outbound notification attempt.
type Event struct {
	ID        string
	IP        string
	Country   string
	City      string
	Device    string
	Browser   string
	OS        string
	Referrer  string
	Path      string
	Timestamp time.Time
	UserAgent string // raw header value
}

// NewEvent assembles an Event from request data, parsing the user-agent
// best-effort. Geolocation fields start out Unknown until resolved.
func NewEvent(ip, userAgent, referrer, path string) Event {
	evt := Event{
		ID:        uuid.NewString(),
		IP:        ip,
		Country:   Unknown,
		City:      Unknown,
		Device:    "Desktop",
		Browser:   Unknown,
		OS:        Unknown,
		Referrer:  referrer,
		Path:      path,
		Timestamp: time.Now().UTC(),
		UserAgent: userAgent,
	}

	parsed := ua.Parse(userAgent)
	switch {
	case parsed.Mobile:
		evt.Device = "Mobile"
	case parsed.Tablet:
		evt.Device = "Tablet"
	case parsed.Bot:
		evt.Device = "Bot"
	}
	if parsed.Name != "" {
		evt.Browser = parsed.Name
	}
	if parsed.OS != "" {
		evt.OS = parsed.OS
	}
	return evt
}

// ClientIP resolves the client address, preferring the X-Forwarded-For header
// over the raw connection address. Only the first entry of a comma-separated
// chain counts; the rest are proxies.
func ClientIP(forwardedFor, remoteAddr string) string {
	if forwardedFor != "" {
		first := forwardedFor
		if idx := strings.Index(forwardedFor, ","); idx >= 0 {
			first = forwardedFor[:idx]
		}
		return strings.TrimSpace(first)
	}
	if host, _, err := net.SplitHostPort(remoteAddr); err == nil {
		return host
	}
	return remoteAddr
}
