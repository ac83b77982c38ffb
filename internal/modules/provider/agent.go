// README: Provider agent capability contract and session states.
package provider

import (
	"context"

	"cabnav/internal/modules/prefs"
)

// SessionState tracks where a provider session is in its lifecycle.
// Every failure drops the session straight back to Closed.
type SessionState string

const (
	StateClosed           SessionState = "closed"
	StateOpen             SessionState = "open"
	StateQuoteFetched     SessionState = "quote_fetched"
	StateBookingConfirmed SessionState = "booking_confirmed"
)

// Agent is the per-provider capability the orchestrator drives.
// Operations never return errors: a failed open/close reports false,
// a failed fetch or booking reports nil. This keeps every provider
// uniform at the orchestrator boundary; failures are contained here.
type Agent interface {
	// Name returns the provider key this agent serves (e.g. "uber").
	Name() string

	// Open foregrounds the provider app and readies the session.
	Open(ctx context.Context) bool

	// FetchQuote retrieves one priced offer, or nil on any failure.
	FetchQuote(ctx context.Context, pickup, destination string, p prefs.RidePreferences) *PriceQuote

	// Book places a booking for a previously fetched quote, or nil on failure.
	Book(ctx context.Context, pickup, destination string, p prefs.RidePreferences, quote PriceQuote) *BookingConfirmation

	// Close tears down the session best-effort.
	Close(ctx context.Context) bool
}
