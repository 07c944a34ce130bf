package agents

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	contractx "github.com/careloop/techcare-agents/agent/contract"
	llmx "github.com/careloop/techcare-agents/agent/llm"
	providerx "github.com/careloop/techcare-agents/agent/provider"
)

type registryImpl struct {
	byRole map[contractx.AgentRole]*Responder
}

func (r *registryImpl) Order() contractx.Generator        { return r.byRole[contractx.AgentRoleOrder] }
func (r *registryImpl) TechSupport() contractx.Generator  { return r.byRole[contractx.AgentRoleTechSupport] }
func (r *registryImpl) Product() contractx.Generator      { return r.byRole[contractx.AgentRoleProduct] }
func (r *registryImpl) Solutions() contractx.Generator    { return r.byRole[contractx.AgentRoleSolutions] }
func (r *registryImpl) Orchestrator() contractx.Generator { return r.byRole[contractx.AgentRoleOrchestrator] }

// ByRole is total: unknown roles resolve to the orchestrator.
func (r *registryImpl) ByRole(role contractx.AgentRole) contractx.Generator {
	if g, ok := r.byRole[role]; ok {
		return g
	}
	return r.byRole[contractx.AgentRoleOrchestrator]
}

// NewRegistry builds one responder per role. Provider clients are constructed
// once and shared by every role bound to the same backend family.
func NewRegistry(ctx context.Context, cfg llmx.Config) (contractx.Registry, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	offline := DefaultOfflineScript()
	clients := make(map[providerx.Kind]providerx.Client, 2)

	byRole := make(map[contractx.AgentRole]*Responder, len(contractx.Roles()))
	for _, role := range contractx.Roles() {
		profile := cfg.ProfileFor(role)

		client, err := clientFor(ctx, cfg, profile.Binding, clients)
		if err != nil {
			return nil, err
		}

		if client == nil {
			log.Warn().
				Str("agent", string(role)).
				Str("model", profile.Params.Model).
				Msg("no credential for model, agent will use offline responses")
		} else {
			log.Info().
				Str("agent", string(role)).
				Str("model", profile.Params.Model).
				Str("provider", string(profile.Binding)).
				Msg("agent initialized")
		}

		byRole[role] = NewResponder(profile, client, offline)
	}

	return &registryImpl{byRole: byRole}, nil
}

func clientFor(ctx context.Context, cfg llmx.Config, kind providerx.Kind, cache map[providerx.Kind]providerx.Client) (providerx.Client, error) {
	if kind == providerx.KindNone {
		return nil, nil
	}
	if client, ok := cache[kind]; ok {
		return client, nil
	}

	var (
		client providerx.Client
		err    error
	)
	switch kind {
	case providerx.KindOpenAI:
		client = providerx.NewOpenAI(cfg.OpenAIAPIKey)
	case providerx.KindGemini:
		client, err = providerx.NewGemini(ctx, cfg.GeminiAPIKey, providerx.WithBlockingTimeout(cfg.BlockingTimeout))
	default:
		err = fmt.Errorf("%w: unknown provider kind %q", contractx.ErrValidation, kind)
	}
	if err != nil {
		return nil, fmt.Errorf("create %s client: %w", kind, err)
	}

	cache[kind] = client
	return client, nil
}
