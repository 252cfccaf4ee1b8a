package farcaster

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/Beyond-Network-AI/beyond-mcp-server/internal/neynar"
)

const probeAttempts = 3

// probeWait pauses between probe attempts.  It is a variable so tests can
// remove the delay.
var probeWait = func(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

// IsAvailable implements social.Provider.  It issues a cheap read against the
// Neynar API, retrying transient server errors (502, 503, 504) up to
// probeAttempts times with linear backoff.  Any other error class fails
// immediately.  Without a credential the probe reports unavailable with no
// network call.
func (p *Provider) IsAvailable(ctx context.Context) bool {
	if !p.hasKey() {
		p.lg.InfoContext(ctx, "farcaster provider unavailable: no API key")
		return false
	}
	for attempt := 1; attempt <= probeAttempts; attempt++ {
		_, err := p.client.UsersByFID(ctx, []int64{1})
		if err == nil {
			return true
		}
		var apiErr *neynar.APIError
		if !errors.As(err, &apiErr) || !apiErr.Temporary() {
			p.lg.InfoContext(ctx, "farcaster provider unavailable", "error", err)
			return false
		}
		p.lg.WarnContext(ctx, "neynar server error during availability probe",
			slog.Int("attempt", attempt), "error", err)
		if attempt < probeAttempts {
			probeWait(ctx, time.Duration(attempt)*time.Second)
		}
	}
	p.lg.WarnContext(ctx, "farcaster provider unavailable after retries", slog.Int("attempts", probeAttempts))
	if p.dev {
		p.lg.InfoContext(ctx, "development mode, reporting farcaster provider as available despite probe failure")
		return true
	}
	return false
}
