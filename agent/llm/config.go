package llm

import (
	"fmt"
	"strings"
	"time"

	contractx "github.com/careloop/techcare-agents/agent/contract"
	providerx "github.com/careloop/techcare-agents/agent/provider"
)

// Config carries the provider credentials, the default model, and per-role
// model overrides. Values load from the environment through pkg/config.
type Config struct {
	OpenAIAPIKey string `envconfig:"OPENAI_API_KEY"`
	GeminiAPIKey string `envconfig:"GEMINI_API_KEY"`

	Model string `envconfig:"MODEL" split_words:"true" default:"models/gemini-2.5-flash"`

	BlockingTimeout time.Duration `envconfig:"BLOCKING_TIMEOUT" split_words:"true" default:"30s"`

	OrderModel        string `envconfig:"ORDER_MODEL" split_words:"true"`
	TechSupportModel  string `envconfig:"TECH_SUPPORT_MODEL" split_words:"true"`
	ProductModel      string `envconfig:"PRODUCT_MODEL" split_words:"true"`
	SolutionsModel    string `envconfig:"SOLUTIONS_MODEL" split_words:"true"`
	OrchestratorModel string `envconfig:"ORCHESTRATOR_MODEL" split_words:"true"`
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.Model) == "" {
		return fmt.Errorf("%w: default model is required", contractx.ErrValidation)
	}
	return nil
}

// AgentProfile is the immutable per-role configuration resolved once at
// construction. Binding is chosen by inspecting the model identifier and the
// matching credential; KindNone routes every call to the offline path.
type AgentProfile struct {
	Role    contractx.AgentRole
	Binding providerx.Kind
	Params  providerx.Params
}

type roleParams struct {
	temperature     float32
	maxOutputTokens int
}

var paramsByRole = map[contractx.AgentRole]roleParams{
	contractx.AgentRoleOrchestrator: {temperature: 0.3, maxOutputTokens: 1000},
	contractx.AgentRoleOrder:        {temperature: 0.1, maxOutputTokens: 500},
	contractx.AgentRoleTechSupport:  {temperature: 0.2, maxOutputTokens: 800},
	contractx.AgentRoleProduct:      {temperature: 0.2, maxOutputTokens: 600},
	contractx.AgentRoleSolutions:    {temperature: 0.3, maxOutputTokens: 700},
}

// ProfileFor resolves the profile for one role: the model identifier (role
// override or the shared default), the role's generation parameters, and the
// provider binding.
func (c Config) ProfileFor(role contractx.AgentRole) AgentProfile {
	model := strings.TrimSpace(c.modelOverride(role))
	if model == "" {
		model = strings.TrimSpace(c.Model)
	}

	p, ok := paramsByRole[role]
	if !ok {
		p = paramsByRole[contractx.AgentRoleOrchestrator]
	}

	return AgentProfile{
		Role:    role,
		Binding: providerx.Classify(model, c.OpenAIAPIKey, c.GeminiAPIKey),
		Params: providerx.Params{
			Model:           model,
			Temperature:     p.temperature,
			MaxOutputTokens: p.maxOutputTokens,
		},
	}
}

func (c Config) modelOverride(role contractx.AgentRole) string {
	switch role {
	case contractx.AgentRoleOrder:
		return c.OrderModel
	case contractx.AgentRoleTechSupport:
		return c.TechSupportModel
	case contractx.AgentRoleProduct:
		return c.ProductModel
	case contractx.AgentRoleSolutions:
		return c.SolutionsModel
	case contractx.AgentRoleOrchestrator:
		return c.OrchestratorModel
	default:
		return ""
	}
}
