package agents

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	contractx "github.com/careloop/techcare-agents/agent/contract"
	llmx "github.com/careloop/techcare-agents/agent/llm"
	promptx "github.com/careloop/techcare-agents/agent/prompt"
	providerx "github.com/careloop/techcare-agents/agent/provider"
)

// windowSize bounds the recent-conversation turns handed to a backend.
const windowSize = 3

// Responder owns one provider binding and one prompt template for a role. It
// orchestrates compose -> provider -> confidence and turns every outcome of a
// generation attempt into a well-formed envelope.
type Responder struct {
	profile llmx.AgentProfile
	client  providerx.Client
	offline OfflineScript
	log     zerolog.Logger
}

var _ contractx.Generator = (*Responder)(nil)

// NewResponder binds a role profile to a provider client. client may be nil
// when the profile's binding is absent; every call then takes the offline
// path.
func NewResponder(profile llmx.AgentProfile, client providerx.Client, offline OfflineScript) *Responder {
	if offline == nil {
		offline = DefaultOfflineScript()
	}
	return &Responder{
		profile: profile,
		client:  client,
		offline: offline,
		log:     log.With().Str("agent", string(profile.Role)).Logger(),
	}
}

// Generate never fails: every failure kind from composition or the provider
// call terminates in an offline envelope, and degraded quality is reported
// only through the provenance field and the fixed confidence value.
func (r *Responder) Generate(ctx context.Context, req contractx.GenerateRequest) (envelope contractx.ResponseEnvelope) {
	// Last-resort safety net: a panic below still degrades instead of
	// propagating past the generation boundary.
	defer func() {
		if rec := recover(); rec != nil {
			r.log.Error().Interface("panic", rec).Msg("generation panicked, degrading to offline response")
			envelope = r.offlineEnvelope(fmt.Sprintf("mock: error:%v", rec))
		}
	}()

	if r.client == nil || r.profile.Binding == providerx.KindNone {
		return r.offlineEnvelope("mock: no credential")
	}

	systemPrompt, userTurn := promptx.Compose(r.profile.Role, req.UserMessage, req.Context)
	text, err := r.client.Complete(ctx, providerx.Request{
		SystemPrompt: systemPrompt,
		Window:       req.Context.RecentWindow(windowSize),
		UserTurn:     userTurn,
	}, r.profile.Params)

	switch {
	case errors.Is(err, contractx.ErrProviderTimeout):
		r.log.Warn().Err(err).Msg("provider timed out, degrading to offline response")
		return r.offlineEnvelope("mock: timeout")
	case err != nil:
		r.log.Error().Err(err).Msg("provider call failed, degrading to offline response")
		return r.offlineEnvelope("mock: error:" + summarize(err))
	case strings.TrimSpace(text) == "":
		r.log.Warn().Msg("provider returned empty text, degrading to offline response")
		return r.offlineEnvelope("mock: error:empty completion")
	}

	return contractx.ResponseEnvelope{
		Text:       text,
		AgentRole:  r.profile.Role,
		ToolsUsed:  passthroughTools(req.ToolsUsed),
		Confidence: estimateConfidence(text),
		Provenance: "live:" + string(r.client.Kind()),
	}
}

func (r *Responder) offlineEnvelope(provenance string) contractx.ResponseEnvelope {
	return contractx.ResponseEnvelope{
		Text:       r.offline.Line(r.profile.Role),
		AgentRole:  r.profile.Role,
		ToolsUsed:  []string{},
		Confidence: mockConfidence,
		Provenance: provenance,
	}
}

func passthroughTools(tools []string) []string {
	if len(tools) == 0 {
		return []string{}
	}
	out := make([]string, len(tools))
	copy(out, tools)
	return out
}

// summarize keeps provenance a single bounded line.
func summarize(err error) string {
	msg := err.Error()
	if i := strings.IndexByte(msg, '\n'); i >= 0 {
		msg = msg[:i]
	}
	const maxSummary = 120
	if len(msg) > maxSummary {
		msg = msg[:maxSummary]
	}
	return msg
}
