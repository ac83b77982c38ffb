package automation

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiExecutor drives device automation through Google's Gemini models.
type GeminiExecutor struct {
	client   *genai.Client
	model    *genai.GenerativeModel
	serial   string
	platform string
}

// NewGeminiExecutor initializes a new Gemini-backed executor.
// apiKey should be provided from environment variables.
func NewGeminiExecutor(ctx context.Context, apiKey, serial, platform string) (*GeminiExecutor, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	// Use Gemini 2.0 Flash for low latency and cost efficiency.
	model := client.GenerativeModel("gemini-2.0-flash")

	// Force JSON response for structured parsing.
	model.ResponseMIMEType = "application/json"

	// Keep the operator deterministic; UI flows leave little room for creativity.
	model.SetTemperature(0.2)

	return &GeminiExecutor{
		client:   client,
		model:    model,
		serial:   serial,
		platform: platform,
	}, nil
}

// Close cleans up the Gemini client resources.
func (e *GeminiExecutor) Close() {
	e.client.Close()
}

// wireResult is the envelope every automation run reports back in.
type wireResult struct {
	Success       bool            `json:"success"`
	Result        json.RawMessage `json:"result,omitempty"`
	FailureReason string          `json:"failure_reason,omitempty"`
}

// Execute runs one goal with its own deadline and returns the structured outcome.
func (e *GeminiExecutor) Execute(ctx context.Context, goal Goal) (*Result, error) {
	if goal.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, goal.Timeout)
		defer cancel()
	}

	prompt := e.buildPrompt(goal)

	resp, err := e.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("gemini generation error: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("no response candidates from Gemini")
	}

	var responseText strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			responseText.WriteString(string(txt))
		}
	}

	// Clean up potential markdown formatting (though json mode should handle this, safety first).
	cleanJSON := cleanJSONString(responseText.String())

	var wire wireResult
	if err := json.Unmarshal([]byte(cleanJSON), &wire); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w. Raw: %s", err, cleanJSON)
	}

	return &Result{
		Success:       wire.Success,
		Structured:    wire.Result,
		FailureReason: wire.FailureReason,
	}, nil
}

// buildPrompt constructs the operator instructions for one run.
func (e *GeminiExecutor) buildPrompt(goal Goal) string {
	serial := e.serial
	if serial == "" {
		serial = "DEFAULT_DEVICE"
	}

	var b strings.Builder
	fmt.Fprintf(&b, `Role: You are a mobile UI automation operator controlling a live %s device (serial: %s).
You receive one task, perform it against the foreground app, and report the outcome.

RULES:
1. Follow the task steps in order. Do not invent extra steps.
2. If a step cannot be completed (element missing, app not installed, screen unreadable), stop and report failure.
3. Never fabricate on-screen values. Extract only what is actually visible.
4. Prices are plain numbers without currency symbols or thousand separators.

TASK:
%s
`, e.platform, serial, goal.Text)

	if goal.ResultSchema != "" {
		fmt.Fprintf(&b, `
On success, "result" MUST match this shape:
%s
`, goal.ResultSchema)
	}

	b.WriteString(`
Output JSON Schema:
{
  "success": boolean,
  "result": object or null,
  "failure_reason": "string (empty when success is true)"
}
`)
	return b.String()
}

// cleanJSONString removes markdown code blocks if present (e.g. ```json ... ```)
func cleanJSONString(input string) string {
	input = strings.TrimSpace(input)
	input = strings.TrimPrefix(input, "```json")
	input = strings.TrimPrefix(input, "```")
	input = strings.TrimSuffix(input, "```")
	return strings.TrimSpace(input)
}
