// README: Automation-backed provider agent implementing the Agent contract.
package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"

	"cabnav/internal/automation"
	"cabnav/internal/config"
	"cabnav/internal/modules/prefs"
)

// AppAgent drives one provider's mobile app through the automation
// executor. One AppAgent serves one session; sessions are not shared
// across concurrent comparisons.
type AppAgent struct {
	profile  Profile
	executor automation.Executor
	timeouts config.TimeoutConfig
	logger   *log.Logger
	state    SessionState
}

// NewAppAgent builds a fresh, closed session for the given profile.
func NewAppAgent(profile Profile, executor automation.Executor, timeouts config.TimeoutConfig, logger *log.Logger) *AppAgent {
	if logger == nil {
		logger = log.Default()
	}
	return &AppAgent{
		profile:  profile,
		executor: executor,
		timeouts: timeouts,
		logger:   logger,
		state:    StateClosed,
	}
}

func (a *AppAgent) Name() string { return a.profile.Name }

// State exposes the session state for tests and diagnostics.
func (a *AppAgent) State() SessionState { return a.state }

// Open foregrounds the provider app. Returns false on any failure
// without surfacing an error past the agent boundary.
func (a *AppAgent) Open(ctx context.Context) bool {
	goal := automation.Goal{
		Text:    fmt.Sprintf("Open the %s app (package %s) and wait until its home screen is ready.", a.profile.DisplayName, a.profile.Package),
		Timeout: a.timeouts.Open,
	}

	res, err := a.executor.Execute(ctx, goal)
	if err != nil {
		a.logger.Printf("%s: open failed: %v", a.profile.Name, err)
		a.state = StateClosed
		return false
	}
	if !res.Success {
		a.logger.Printf("%s: could not open app: %s", a.profile.Name, res.FailureReason)
		a.state = StateClosed
		return false
	}
	a.state = StateOpen
	return true
}

// FetchQuote retrieves one priced offer. Any failure (timeout, missing
// structured result, automation error, invalid price) yields nil and
// drops the session back to Closed.
func (a *AppAgent) FetchQuote(ctx context.Context, pickup, destination string, p prefs.RidePreferences) *PriceQuote {
	goal := automation.Goal{
		Text:         a.profile.QuoteGoal(pickup, destination, p),
		ResultSchema: quoteResultSchema,
		Timeout:      a.timeouts.Quote,
	}

	res, err := a.executor.Execute(ctx, goal)
	if err != nil {
		a.logger.Printf("%s: quote fetch failed: %v", a.profile.Name, err)
		a.state = StateClosed
		return nil
	}
	if !res.Success || len(res.Structured) == 0 {
		a.logger.Printf("%s: could not extract price: %s", a.profile.Name, res.FailureReason)
		a.state = StateClosed
		return nil
	}

	var quote PriceQuote
	if err := json.Unmarshal(res.Structured, &quote); err != nil {
		a.logger.Printf("%s: malformed quote payload: %v", a.profile.Name, err)
		a.state = StateClosed
		return nil
	}
	if !validPrice(quote.EstimatedPrice) {
		a.logger.Printf("%s: rejected quote with invalid price %v", a.profile.Name, quote.EstimatedPrice)
		a.state = StateClosed
		return nil
	}

	// The quote always carries the provider key it will be stored under.
	quote.Provider = a.profile.Name
	if quote.Currency == "" {
		quote.Currency = DefaultCurrency
	}

	a.state = StateQuoteFetched
	return &quote
}

// Book places a booking for the quoted offer. Nil means the booking
// did not happen; the caller decides whether to retry.
func (a *AppAgent) Book(ctx context.Context, pickup, destination string, p prefs.RidePreferences, quote PriceQuote) *BookingConfirmation {
	goal := automation.Goal{
		Text:         a.profile.BookingGoal(pickup, destination, p, quote),
		ResultSchema: bookingResultSchema,
		Timeout:      a.timeouts.Book,
	}

	res, err := a.executor.Execute(ctx, goal)
	if err != nil {
		a.logger.Printf("%s: booking failed: %v", a.profile.Name, err)
		a.state = StateClosed
		return nil
	}
	if !res.Success || len(res.Structured) == 0 {
		a.logger.Printf("%s: booking not confirmed: %s", a.profile.Name, res.FailureReason)
		a.state = StateClosed
		return nil
	}

	var booking BookingConfirmation
	if err := json.Unmarshal(res.Structured, &booking); err != nil {
		a.logger.Printf("%s: malformed booking payload: %v", a.profile.Name, err)
		a.state = StateClosed
		return nil
	}
	if booking.BookingID == "" || !validPrice(booking.EstimatedPrice) {
		a.logger.Printf("%s: rejected booking payload (id=%q price=%v)", a.profile.Name, booking.BookingID, booking.EstimatedPrice)
		a.state = StateClosed
		return nil
	}

	booking.Provider = a.profile.Name
	if booking.Status == "" {
		booking.Status = "confirmed"
	}
	booking.Pickup = pickup
	booking.Destination = destination

	a.state = StateBookingConfirmed
	return &booking
}

// Close tears the session down best-effort; never fatal.
func (a *AppAgent) Close(ctx context.Context) bool {
	a.state = StateClosed
	goal := automation.Goal{
		Text:    fmt.Sprintf("Return to the device home screen, leaving the %s app in the background.", a.profile.DisplayName),
		Timeout: a.timeouts.Open,
	}
	res, err := a.executor.Execute(ctx, goal)
	if err != nil {
		a.logger.Printf("%s: close failed: %v", a.profile.Name, err)
		return false
	}
	return res.Success
}

func validPrice(p float64) bool {
	return p >= 0 && !math.IsInf(p, 0) && !math.IsNaN(p)
}
