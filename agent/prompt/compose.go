package prompt

import (
	"fmt"
	"strings"

	contractx "github.com/careloop/techcare-agents/agent/contract"
)

// Compose builds the system instruction and the labeled user turn for one
// generation attempt.
func Compose(role contractx.AgentRole, userMessage string, convo contractx.ConversationContext) (systemPrompt, userTurn string) {
	return SystemPrompt(role), UserTurn(userMessage, convo)
}

// UserTurn renders the current customer message followed by the context
// blocks. A block is emitted only when its source field is non-empty, and the
// block order (customer context, orders, issues) is fixed so composed prompts
// stay byte-for-byte reproducible.
func UserTurn(userMessage string, convo contractx.ConversationContext) string {
	var b strings.Builder
	b.WriteString("Customer Message: ")
	b.WriteString(userMessage)
	b.WriteString("\n\n")

	if convo.CustomerContext != "" {
		b.WriteString("Customer Context: ")
		b.WriteString(convo.CustomerContext)
		b.WriteString("\n\n")
	}
	if len(convo.OrdersDiscussed) > 0 {
		b.WriteString("Orders Previously Discussed: ")
		b.WriteString(strings.Join(convo.OrdersDiscussed, ", "))
		b.WriteString("\n\n")
	}
	if len(convo.IssuesMentioned) > 0 {
		b.WriteString("Issues Previously Mentioned: ")
		b.WriteString(strings.Join(convo.IssuesMentioned, ", "))
		b.WriteString("\n\n")
	}
	return b.String()
}

// Flatten renders a single-string prompt for backends that have no native
// multi-message structure. The bounded window, when present, sits between the
// system prompt and the current turn, oldest entry first.
func Flatten(systemPrompt, userTurn string, window []contractx.Turn) string {
	if len(window) == 0 {
		return systemPrompt + "\n\n" + userTurn
	}

	var b strings.Builder
	b.WriteString(systemPrompt)
	b.WriteString("\n\nRecent conversation:\n")
	for _, turn := range window {
		fmt.Fprintf(&b, "%s: %s\n", titleRole(turn.Role), turn.Content)
	}
	b.WriteString("\n\nCurrent request:\n")
	b.WriteString(userTurn)
	return b.String()
}

func titleRole(role contractx.TurnRole) string {
	s := string(role)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
