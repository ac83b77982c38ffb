// README: Device automation capability consumed by provider agents.
package automation

import (
	"context"
	"encoding/json"
	"time"
)

// Goal is one natural-language task for the device automation layer.
type Goal struct {
	// Text is the full step-by-step instruction for the automation run.
	Text string

	// ResultSchema hints the JSON shape expected back. Empty means the
	// run is judged on success/failure alone (e.g. foregrounding an app).
	ResultSchema string

	// Timeout bounds the whole run including device init.
	Timeout time.Duration
}

// Result is the outcome of one automation run.
type Result struct {
	Success       bool
	Structured    json.RawMessage
	FailureReason string
}

// Executor runs a goal against a live device and reports the outcome.
// Implementations must honor ctx and Goal.Timeout; a failed run is a
// Result with Success=false, not an error. Errors are reserved for the
// executor itself being unusable (client teardown, transport loss).
type Executor interface {
	Execute(ctx context.Context, goal Goal) (*Result, error)
}
