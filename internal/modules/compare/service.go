// README: Comparison orchestrator: concurrent quote fan-out, cheapest selection, booking.
package compare

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"cabnav/internal/modules/prefs"
	"cabnav/internal/modules/provider"
)

var (
	// ErrNoQuotes means every requested provider failed to produce a quote.
	ErrNoQuotes = errors.New("no quotes available from any provider")
	// ErrTimeout means the comparison exceeded its wall-clock deadline;
	// partial in-flight results are discarded, never merged.
	ErrTimeout = errors.New("comparison timed out")
	// ErrBookingFailed means the winning provider's booking call failed.
	// No alternate provider is attempted.
	ErrBookingFailed = errors.New("booking failed on selected provider")
)

// AgentFactory mints fresh provider sessions. Satisfied by provider.Registry.
type AgentFactory interface {
	New(name string) (provider.Agent, bool)
	Names() []string
}

// Recorder persists the quotes of a finished comparison. Optional.
type Recorder interface {
	RecordComparison(ctx context.Context, pickup, destination string, quotes []provider.PriceQuote) error
}

// RouteEstimator backfills a quote's missing distance. Optional.
type RouteEstimator interface {
	EstimateDistance(ctx context.Context, pickup, destination string) (string, error)
}

// Orchestrator composes provider agents into one comparison/booking flow.
type Orchestrator struct {
	agents   AgentFactory
	logger   *log.Logger
	deadline time.Duration

	recorder Recorder
	routes   RouteEstimator
}

// Option configures optional orchestrator collaborators.
type Option func(*Orchestrator)

// WithRecorder persists each comparison's quotes through r.
func WithRecorder(r Recorder) Option {
	return func(o *Orchestrator) { o.recorder = r }
}

// WithRouteEstimator fills missing quote distances through e.
func WithRouteEstimator(e RouteEstimator) Option {
	return func(o *Orchestrator) { o.routes = e }
}

// NewOrchestrator builds an orchestrator. deadline bounds one whole
// comparison; zero disables the internal deadline (the caller's ctx
// still applies).
func NewOrchestrator(agents AgentFactory, deadline time.Duration, logger *log.Logger, opts ...Option) *Orchestrator {
	if logger == nil {
		logger = log.Default()
	}
	o := &Orchestrator{agents: agents, logger: logger, deadline: deadline}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// ComparePrices fans out one quote fetch per requested provider,
// joins at a barrier, and selects the cheapest quote. Ties resolve to
// the earliest provider in the requested order. providers nil means
// all configured providers.
func (o *Orchestrator) ComparePrices(ctx context.Context, pickup, destination string, p prefs.RidePreferences, providers []string) (*ComparisonResult, error) {
	if providers == nil {
		providers = o.agents.Names()
	}

	type task struct {
		name  string
		agent provider.Agent
	}
	var tasks []task
	for _, name := range providers {
		agent, ok := o.agents.New(name)
		if !ok {
			o.logger.Printf("compare: unknown provider %q requested, skipping", name)
			continue
		}
		tasks = append(tasks, task{name: name, agent: agent})
	}
	if len(tasks) == 0 {
		return nil, ErrNoQuotes
	}

	o.logger.Printf("compare: fetching quotes from %d providers (%s -> %s)", len(tasks), pickup, destination)

	// One slot per task; each goroutine writes only its own index, so
	// no shared mutable state crosses task boundaries. On timeout the
	// slots are never read, which keeps late completions harmless.
	slots := make([]*provider.PriceQuote, len(tasks))
	var wg sync.WaitGroup
	for i, t := range tasks {
		wg.Add(1)
		go func(i int, t task) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					o.logger.Printf("compare: %s task panicked: %v", t.name, r)
				}
			}()
			slots[i] = o.fetchQuote(ctx, t.agent, pickup, destination, p)
		}(i, t)
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	var deadline <-chan time.Time
	if o.deadline > 0 {
		timer := time.NewTimer(o.deadline)
		defer timer.Stop()
		deadline = timer.C
	}

	select {
	case <-done:
	case <-ctx.Done():
		o.logger.Printf("compare: cancelled, abandoning in-flight providers")
		return nil, ErrTimeout
	case <-deadline:
		o.logger.Printf("compare: deadline exceeded after %s, abandoning in-flight providers", o.deadline)
		return nil, ErrTimeout
	}

	quotes := make([]provider.PriceQuote, 0, len(tasks))
	for i := range tasks {
		if slots[i] == nil {
			continue
		}
		q := *slots[i]
		if q.Distance == nil && o.routes != nil {
			if d, err := o.routes.EstimateDistance(ctx, pickup, destination); err == nil && d != "" {
				q.Distance = &d
			}
		}
		quotes = append(quotes, q)
	}
	if len(quotes) == 0 {
		return nil, ErrNoQuotes
	}

	// Strict comparison with earliest-in-order tie-break: a later quote
	// replaces the winner only when strictly cheaper.
	cheapest := quotes[0]
	for _, q := range quotes[1:] {
		if q.EstimatedPrice < cheapest.EstimatedPrice {
			cheapest = q
		}
	}

	result := &ComparisonResult{
		Prices:        quotes,
		Cheapest:      cheapest.Provider,
		CheapestPrice: cheapest.EstimatedPrice,
	}
	result.Summary = buildSummary(result)

	if o.recorder != nil {
		if err := o.recorder.RecordComparison(ctx, pickup, destination, quotes); err != nil {
			o.logger.Printf("compare: recording history failed: %v", err)
		}
	}

	o.logger.Printf("compare: cheapest is %s at %.2f", result.Cheapest, result.CheapestPrice)
	return result, nil
}

// fetchQuote runs one provider's open → fetch → close cycle. Failures
// are contained here: the task contributes nil and nothing else.
func (o *Orchestrator) fetchQuote(ctx context.Context, agent provider.Agent, pickup, destination string, p prefs.RidePreferences) *provider.PriceQuote {
	if !agent.Open(ctx) {
		o.logger.Printf("compare: could not open %s", agent.Name())
		return nil
	}
	quote := agent.FetchQuote(ctx, pickup, destination, p)
	agent.Close(ctx)
	return quote
}

// BookCheapest books on exactly the winning provider of the
// comparison, running ComparePrices first when none is supplied.
// A failed booking surfaces as ErrBookingFailed; the second-cheapest
// provider is never attempted automatically.
func (o *Orchestrator) BookCheapest(ctx context.Context, pickup, destination string, p prefs.RidePreferences, comparison *ComparisonResult) (*provider.BookingConfirmation, error) {
	if comparison == nil {
		var err error
		comparison, err = o.ComparePrices(ctx, pickup, destination, p, nil)
		if err != nil {
			return nil, err
		}
	}

	quote, ok := comparison.Quote(comparison.Cheapest)
	if !ok {
		// Constructed results always reference an existing entry.
		return nil, ErrBookingFailed
	}

	agent, ok := o.agents.New(comparison.Cheapest)
	if !ok {
		return nil, ErrBookingFailed
	}

	o.logger.Printf("compare: booking on %s at %.2f", comparison.Cheapest, quote.EstimatedPrice)

	if !agent.Open(ctx) {
		return nil, ErrBookingFailed
	}
	booking := agent.Book(ctx, pickup, destination, p, quote)
	agent.Close(ctx)
	if booking == nil {
		return nil, ErrBookingFailed
	}

	o.logger.Printf("compare: booking confirmed %s on %s", booking.BookingID, booking.Provider)
	return booking, nil
}
