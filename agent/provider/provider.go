package provider

import (
	"context"
	"strings"

	contractx "github.com/careloop/techcare-agents/agent/contract"
)

// Kind is the resolved backend binding for an agent profile. Exactly one kind
// is selected per profile at construction time and never changes afterwards.
type Kind string

const (
	KindNone   Kind = "none"
	KindOpenAI Kind = "openai"
	KindGemini Kind = "gemini"
)

// Classify picks the backend family for a model identifier. The identifier is
// matched by case-insensitive substring, and a live binding additionally
// requires the matching credential; otherwise the profile stays offline for
// the process lifetime.
func Classify(modelID, openAIKey, geminiKey string) Kind {
	m := strings.ToLower(modelID)
	switch {
	case strings.Contains(m, "gemini") && strings.TrimSpace(geminiKey) != "":
		return KindGemini
	case strings.Contains(m, "gpt") && strings.TrimSpace(openAIKey) != "":
		return KindOpenAI
	default:
		return KindNone
	}
}

// Params are the generation parameters for a single call.
type Params struct {
	Model           string
	Temperature     float32
	MaxOutputTokens int
}

// Request is one composed prompt ready for a backend call. Window holds the
// bounded recent-conversation turns, oldest first.
type Request struct {
	SystemPrompt string
	Window       []contractx.Turn
	UserTurn     string
}

// Client is the uniform asynchronous contract over the generative-text
// backends. Complete returns the completion text verbatim; failures surface
// as ErrProviderTimeout or ErrProvider, never as a raw SDK error. Retry and
// fallback policy live above this boundary.
type Client interface {
	Kind() Kind
	Complete(ctx context.Context, req Request, params Params) (string, error)
}
