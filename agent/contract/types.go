package contract

// AgentRole identifies one role-bound generation unit.
type AgentRole string

const (
	AgentRoleOrder        AgentRole = "order"
	AgentRoleTechSupport  AgentRole = "tech_support"
	AgentRoleProduct      AgentRole = "product"
	AgentRoleSolutions    AgentRole = "solutions"
	AgentRoleOrchestrator AgentRole = "orchestrator"
)

// Roles lists every known role in a stable order.
func Roles() []AgentRole {
	return []AgentRole{
		AgentRoleOrder,
		AgentRoleTechSupport,
		AgentRoleProduct,
		AgentRoleSolutions,
		AgentRoleOrchestrator,
	}
}

// TurnRole tags one conversation turn.
type TurnRole string

const (
	TurnUser      TurnRole = "user"
	TurnAssistant TurnRole = "assistant"
)

// Turn is a single entry of the recent-conversation window.
type Turn struct {
	Role    TurnRole `json:"role"`
	Content string   `json:"content"`
}

// ConversationContext is the caller-supplied, read-only request context.
type ConversationContext struct {
	CustomerContext    string   `json:"customer_context,omitempty"`
	OrdersDiscussed    []string `json:"orders_discussed,omitempty"`
	IssuesMentioned    []string `json:"issues_mentioned,omitempty"`
	ProductsDiscussed  []string `json:"products_discussed,omitempty"`
	RecentConversation []Turn   `json:"recent_conversation,omitempty"`
}

// RecentWindow returns at most the last n conversation turns, oldest first.
func (c ConversationContext) RecentWindow(n int) []Turn {
	if n <= 0 || len(c.RecentConversation) == 0 {
		return nil
	}
	if len(c.RecentConversation) <= n {
		return c.RecentConversation
	}
	return c.RecentConversation[len(c.RecentConversation)-n:]
}

// GenerateRequest is the input of one generation attempt.
type GenerateRequest struct {
	UserMessage string              `json:"user_message"`
	Context     ConversationContext `json:"context"`
	ToolsUsed   []string            `json:"tools_used,omitempty"`
}

// ResponseEnvelope is the normalized result of a generation attempt.
// Text is never empty and Confidence is always a finite value in [0,1].
type ResponseEnvelope struct {
	Text       string    `json:"text"`
	AgentRole  AgentRole `json:"agent_role"`
	ToolsUsed  []string  `json:"tools_used"`
	Confidence float64   `json:"confidence"`
	Provenance string    `json:"provenance"`
}

// ToolResult is one executed tool call reported by the tool gateway.
type ToolResult struct {
	Tool    string `json:"tool"`
	Summary string `json:"summary,omitempty"`
}
