package tool

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	contractx "github.com/careloop/techcare-agents/agent/contract"
)

// Gateway runs the keyword-driven tool playbook for a role. Playbooks are
// deterministic: which tools run depends only on the message text and the
// conversation context, never on a model decision.
type Gateway struct {
	log zerolog.Logger
}

var _ contractx.ToolGateway = (*Gateway)(nil)

func NewGateway() *Gateway {
	return &Gateway{log: log.With().Str("component", "tool_gateway").Logger()}
}

func (g *Gateway) Execute(ctx context.Context, role contractx.AgentRole, userMessage string, convo contractx.ConversationContext) []contractx.ToolResult {
	var results []contractx.ToolResult
	switch role {
	case contractx.AgentRoleOrder:
		results = g.orderPlaybook(userMessage, convo)
	case contractx.AgentRoleTechSupport:
		results = g.techSupportPlaybook(userMessage)
	case contractx.AgentRoleProduct:
		results = g.productPlaybook(userMessage, convo)
	case contractx.AgentRoleSolutions:
		results = g.solutionsPlaybook(userMessage, convo)
	default:
		return nil
	}
	if len(results) > 0 {
		g.log.Debug().Str("agent", string(role)).Strs("tools", Names(results)).Msg("tool playbook executed")
	}
	return results
}

var orderIDPattern = regexp.MustCompile(`order\s*#?(\d+)`)

func (g *Gateway) orderPlaybook(userMessage string, convo contractx.ConversationContext) []contractx.ToolResult {
	orderID := extractOrderID(userMessage, convo)
	if orderID == "" {
		return nil
	}
	order, ok := LookupOrder(orderID)
	if !ok {
		return []contractx.ToolResult{{
			Tool:    ToolOrderLookup,
			Summary: fmt.Sprintf("no order found with number %s", orderID),
		}}
	}

	lower := strings.ToLower(userMessage)
	results := []contractx.ToolResult{{
		Tool: ToolOrderLookup,
		Summary: fmt.Sprintf("order %s: %s for %s, $%.2f, status %s",
			orderID, order.Product, order.Customer, order.Price, order.Status),
	}}

	if strings.Contains(lower, "warranty") {
		if summary, ok := CheckWarranty(orderID); ok {
			results = append(results, contractx.ToolResult{Tool: ToolWarrantyCheck, Summary: summary})
		}
	}
	if containsAny(lower, "track", "shipping", "delivery", "where is") {
		if summary, ok := TrackShipment(orderID); ok {
			results = append(results, contractx.ToolResult{Tool: ToolShipmentTracking, Summary: summary})
		}
	}
	if containsAny(lower, "return", "exchange", "refund") {
		if summary, ok := InitiateReturn(orderID, returnReason(lower)); ok {
			results = append(results, contractx.ToolResult{Tool: ToolReturnProcessing, Summary: summary})
		}
	}
	return results
}

func (g *Gateway) techSupportPlaybook(userMessage string) []contractx.ToolResult {
	steps := KnowledgeSteps(userMessage)
	return []contractx.ToolResult{{
		Tool:    ToolKnowledgeSearch,
		Summary: "troubleshooting steps: " + strings.Join(steps, "; "),
	}}
}

func (g *Gateway) productPlaybook(userMessage string, convo contractx.ConversationContext) []contractx.ToolResult {
	query := userMessage
	if len(convo.ProductsDiscussed) > 0 {
		query += " " + strings.Join(convo.ProductsDiscussed, " ")
	}
	found := SearchProducts(query)
	if len(found) == 0 {
		return nil
	}
	summaries := make([]string, 0, len(found))
	for _, p := range found {
		summaries = append(summaries, p.Summary())
	}
	return []contractx.ToolResult{{
		Tool:    ToolProductSearch,
		Summary: strings.Join(summaries, " | "),
	}}
}

func (g *Gateway) solutionsPlaybook(userMessage string, convo contractx.ConversationContext) []contractx.ToolResult {
	lower := strings.ToLower(userMessage)

	kind := ""
	switch {
	case containsAny(lower, "return", "refund"):
		kind = "return"
	case strings.Contains(lower, "exchange"):
		kind = "exchange"
	case strings.Contains(lower, "warranty"):
		kind = "warranty"
	}
	if kind == "" {
		return nil
	}

	lines, ok := Policy(kind)
	if !ok {
		return nil
	}
	results := []contractx.ToolResult{{
		Tool:    ToolPolicyLookup,
		Summary: kind + " policy: " + strings.Join(lines, "; "),
	}}

	if orderID := extractOrderID(userMessage, convo); orderID != "" {
		if order, ok := LookupOrder(orderID); ok {
			results = append(results, contractx.ToolResult{
				Tool: ToolOrderLookup,
				Summary: fmt.Sprintf("order %s: %s delivered %s, warranty expires %s",
					orderID, order.Product, order.DeliveryDate, order.WarrantyExpires),
			})
		}
	}
	return results
}

// Names lists the executed tool names in order.
func Names(results []contractx.ToolResult) []string {
	if len(results) == 0 {
		return nil
	}
	names := make([]string, 0, len(results))
	for _, r := range results {
		names = append(names, r.Tool)
	}
	return names
}

// RenderFindings joins tool summaries into the single context line handed to
// the prompt composer. Empty summaries are skipped.
func RenderFindings(results []contractx.ToolResult) string {
	parts := make([]string, 0, len(results))
	for _, r := range results {
		if r.Summary != "" {
			parts = append(parts, r.Summary)
		}
	}
	return strings.Join(parts, ". ")
}

// extractOrderID prefers an order number written in the message and falls
// back to the most recently discussed one.
func extractOrderID(userMessage string, convo contractx.ConversationContext) string {
	if match := orderIDPattern.FindStringSubmatch(strings.ToLower(userMessage)); match != nil {
		return match[1]
	}
	if n := len(convo.OrdersDiscussed); n > 0 {
		return convo.OrdersDiscussed[n-1]
	}
	return ""
}

var returnReasons = []struct {
	keyword string
	reason  string
}{
	{"defective", "defective"},
	{"broken", "defective"},
	{"damaged", "damaged_shipping"},
	{"wrong", "wrong_item"},
	{"not working", "defective"},
	{"doesn't work", "defective"},
	{"won't turn on", "defective"},
	{"performance", "performance_issue"},
	{"slow", "performance_issue"},
	{"changed mind", "customer_preference"},
	{"don't need", "customer_preference"},
	{"size", "size_issue"},
}

func returnReason(lower string) string {
	for _, rr := range returnReasons {
		if strings.Contains(lower, rr.keyword) {
			return rr.reason
		}
	}
	return "other"
}

func containsAny(lower string, hints ...string) bool {
	for _, hint := range hints {
		if strings.Contains(lower, hint) {
			return true
		}
	}
	return false
}
