package contract

import "context"

// Generator is the single entry point exposed by the generation core.
// Implementations never fail: every outcome is a well-formed envelope.
type Generator interface {
	Generate(ctx context.Context, req GenerateRequest) ResponseEnvelope
}

// Registry resolves the generator bound to a role.
type Registry interface {
	Order() Generator
	TechSupport() Generator
	Product() Generator
	Solutions() Generator
	Orchestrator() Generator
	ByRole(role AgentRole) Generator
}

// ToolGateway runs the deterministic tool playbook for a role before
// generation. Results are reported in execution order.
type ToolGateway interface {
	Execute(ctx context.Context, role AgentRole, userMessage string, convo ConversationContext) []ToolResult
}
