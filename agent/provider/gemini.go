package provider

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	gapi "google.golang.org/api/option"

	contractx "github.com/careloop/techcare-agents/agent/contract"
	promptx "github.com/careloop/techcare-agents/agent/prompt"
)

// DefaultBlockingTimeout bounds one call to the blocking backend.
const DefaultBlockingTimeout = 30 * time.Second

// blockingGenerate is the synchronous entry point of the backend. It has no
// native asynchronous form, so Complete runs it on its own goroutine and
// awaits the result under a deadline.
type blockingGenerate func(ctx context.Context, prompt string, params Params) (string, error)

type geminiClient struct {
	generate blockingGenerate
	timeout  time.Duration
}

// GeminiOption customizes the blocking backend client.
type GeminiOption func(*geminiClient)

// WithBlockingTimeout overrides the wall-clock bound on a single call.
func WithBlockingTimeout(d time.Duration) GeminiOption {
	return func(c *geminiClient) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// NewGemini builds the client for the blocking generation backend.
func NewGemini(ctx context.Context, apiKey string, opts ...GeminiOption) (Client, error) {
	sdk, err := genai.NewClient(ctx, gapi.WithAPIKey(strings.TrimSpace(apiKey)))
	if err != nil {
		return nil, fmt.Errorf("%w: create gemini client: %v", contractx.ErrProvider, err)
	}

	c := &geminiClient{
		generate: func(ctx context.Context, prompt string, params Params) (string, error) {
			model := sdk.GenerativeModel(params.Model)
			model.SetTemperature(params.Temperature)
			model.SetMaxOutputTokens(int32(params.MaxOutputTokens))

			resp, err := model.GenerateContent(ctx, genai.Text(prompt))
			if err != nil {
				return "", err
			}
			return candidateText(resp)
		},
		timeout: DefaultBlockingTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *geminiClient) Kind() Kind { return KindGemini }

// Complete flattens the request into a single prompt string (the backend has
// no multi-message structure) and runs the blocking call on a worker
// goroutine. The wait is bounded by the configured timeout and released on
// caller cancellation; the worker observes the same context and exits on its
// own.
func (c *geminiClient) Complete(ctx context.Context, req Request, params Params) (string, error) {
	prompt := promptx.Flatten(req.SystemPrompt, req.UserTurn, req.Window)

	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	type outcome struct {
		text string
		err  error
	}
	done := make(chan outcome, 1)
	go func() {
		text, err := c.generate(callCtx, prompt, params)
		done <- outcome{text: text, err: err}
	}()

	select {
	case <-callCtx.Done():
		if errors.Is(callCtx.Err(), context.DeadlineExceeded) && ctx.Err() == nil {
			return "", fmt.Errorf("%w: after %s", contractx.ErrProviderTimeout, c.timeout)
		}
		return "", ctx.Err()
	case out := <-done:
		if out.err != nil {
			return "", fmt.Errorf("%w: %v", contractx.ErrProvider, out.err)
		}
		return out.text, nil
	}
}

func candidateText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", errors.New("response has no candidates")
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}
	return b.String(), nil
}
